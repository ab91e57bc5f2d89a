// Package render stamps timestamp text onto images: typeface loading with a
// fallback chain, anchor-preset placement, and contrast-shadow drawing. The
// decoded source image is never mutated; stamping works on an NRGBA clone.
package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/backmassage/datemark/internal/config"
)

// Shadow offset from the main text, in pixels (both axes).
const shadowOffset = 2

// palette maps the fixed color names to their drawn values.
var palette = map[config.TextColor]color.NRGBA{
	config.ColorWhite: {R: 255, G: 255, B: 255, A: 255},
	config.ColorBlack: {R: 0, G: 0, B: 0, A: 255},
	config.ColorRed:   {R: 255, G: 0, B: 0, A: 255},
	config.ColorBlue:  {R: 0, G: 0, B: 255, A: 255},
	config.ColorGreen: {R: 0, G: 128, B: 0, A: 255},
}

// Renderer holds the loaded typeface and watermark settings for one run.
// Close releases the face when the run is done.
type Renderer struct {
	face   font.Face
	text   color.NRGBA
	shadow color.NRGBA
	pos    config.Position
	margin int
}

// NewRenderer builds a Renderer from cfg. The typeface is resolved through the
// fallback chain custom file → embedded Go Regular → bitmap face; the chosen
// source is returned so the caller can warn when a custom font was requested
// but unusable.
func NewRenderer(cfg *config.Config) (*Renderer, FaceSource, error) {
	face, source := resolveFace(cfg.FontPath, cfg.FontSize)

	text := palette[cfg.Color]
	// Contrast shadow: black under white text, white under everything else.
	shadow := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if cfg.Color == config.ColorWhite {
		shadow = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	}

	return &Renderer{
		face:   face,
		text:   text,
		shadow: shadow,
		pos:    cfg.Position,
		margin: cfg.Margin,
	}, source, nil
}

func resolveFace(fontPath string, size int) (font.Face, FaceSource) {
	if fontPath != "" {
		if face, err := LoadFace(fontPath, size); err == nil {
			return face, FaceCustom
		}
	}
	if face, err := EmbeddedFace(size); err == nil {
		return face, FaceEmbedded
	}
	return basicfont.Face7x13, FaceBitmap
}

// Close releases the typeface resources.
func (r *Renderer) Close() error {
	return r.face.Close()
}

// Measure returns the pixel dimensions of text in the loaded face. Width is
// the advance width; height is ascent plus descent.
func (r *Renderer) Measure(text string) (w, h int) {
	m := r.face.Metrics()
	return font.MeasureString(r.face, text).Ceil(), m.Ascent.Ceil() + m.Descent.Ceil()
}

// Stamp draws text onto an NRGBA clone of src at the configured anchor and
// returns the clone. src is left untouched.
func (r *Renderer) Stamp(src image.Image, text string) *image.NRGBA {
	canvas := imaging.Clone(src)
	b := canvas.Bounds()

	tw, th := r.Measure(text)
	origin := anchorOrigin(r.pos, b.Dx(), b.Dy(), tw, th, r.margin)
	baseline := origin.Y + r.face.Metrics().Ascent.Ceil()

	d := &font.Drawer{
		Dst:  canvas,
		Src:  image.NewUniform(r.shadow),
		Face: r.face,
		Dot:  fixed.P(origin.X+shadowOffset, baseline+shadowOffset),
	}
	d.DrawString(text)

	d.Src = image.NewUniform(r.text)
	d.Dot = fixed.P(origin.X, baseline)
	d.DrawString(text)

	return canvas
}

// anchorOrigin computes the top-left corner of the text box for an anchor
// preset, keeping the box margin pixels from the anchored edges. The result
// is clamped so the origin never leaves the image, even when the text is
// wider than the image itself.
func anchorOrigin(pos config.Position, imgW, imgH, textW, textH, margin int) image.Point {
	var p image.Point
	switch pos {
	case config.PosTopLeft:
		p = image.Pt(margin, margin)
	case config.PosTopRight:
		p = image.Pt(imgW-textW-margin, margin)
	case config.PosBottomLeft:
		p = image.Pt(margin, imgH-textH-margin)
	case config.PosBottomRight:
		p = image.Pt(imgW-textW-margin, imgH-textH-margin)
	case config.PosCenter:
		p = image.Pt((imgW-textW)/2, (imgH-textH)/2)
	default:
		p = image.Pt(margin, margin)
	}
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}
