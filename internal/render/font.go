package render

import (
	"fmt"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceSource identifies which typeface ended up loaded.
type FaceSource int

const (
	FaceCustom   FaceSource = iota // --font file parsed successfully.
	FaceEmbedded                   // Embedded Go Regular.
	FaceBitmap                     // basicfont fallback; fixed 7x13, ignores size.
)

func (s FaceSource) String() string {
	switch s {
	case FaceCustom:
		return "custom"
	case FaceEmbedded:
		return "embedded"
	default:
		return "bitmap"
	}
}

// Face DPI matches the original tool: point size equals pixel size.
const faceDPI = 72

// LoadFace parses a TTF/OTF file and builds a face at the given point size.
func LoadFace(path string, size int) (font.Face, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	return buildFace(b, size)
}

// EmbeddedFace builds a face from the embedded Go Regular typeface.
func EmbeddedFace(size int) (font.Face, error) {
	return buildFace(goregular.TTF, size)
}

func buildFace(data []byte, size int) (font.Face, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     faceDPI,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("build face: %w", err)
	}
	return face, nil
}
