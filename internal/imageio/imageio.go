// Package imageio decodes input images and encodes stamped results. Encoders
// are matched to the output extension; JPEG output is flattened against a
// white background first because the format carries no alpha channel.
package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	// WebP is decode-only in this stack; register the decoder so
	// imaging.Open can read .webp inputs.
	_ "golang.org/x/image/webp"
)

// Open decodes the image at path. EXIF orientation is applied so the stamped
// text lands on the corner the viewer actually sees.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return img, nil
}

// Save encodes img to path, choosing the encoder from the extension.
func Save(img image.Image, path string, jpegQuality int) error {
	if isJPEG(path) {
		img = flattenOpaque(img)
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return fmt.Errorf("save %s: %w", filepath.Base(path), err)
	}
	return nil
}

func isJPEG(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".jpg" || ext == ".jpeg"
}

// flattenOpaque composites img over a white background, discarding alpha.
func flattenOpaque(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := imaging.New(b.Dx(), b.Dy(), color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Over)
	return out
}
