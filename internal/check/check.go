// Package check provides the --check diagnostics: typeface loading, a smoke
// render, and output encoder coverage.
package check

import (
	"image/color"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/backmassage/datemark/internal/config"
	"github.com/backmassage/datemark/internal/render"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// Input formats accepted by the pipeline. WebP is decode-only; its stamped
// output is written as PNG.
var inputFormats = []string{"jpg", "jpeg", "png", "bmp", "tif", "tiff", "webp"}

// RunCheck runs the interactive --check flow: typeface availability at the
// configured size, the custom font if one was given, and a small smoke
// render. Returns false when a check failed hard.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== System Check ===")

	ok := checkEmbeddedFace(cfg, log)
	checkCustomFont(cfg, log)
	if !checkSmokeRender(cfg, log) {
		ok = false
	}
	listFormats(log)

	return ok
}

// checkEmbeddedFace verifies the embedded typeface builds a face at the
// configured size.
func checkEmbeddedFace(cfg *config.Config, log Logger) bool {
	face, err := render.EmbeddedFace(cfg.FontSize)
	if err != nil {
		log.Error("Embedded typeface unusable at %dpt: %v", cfg.FontSize, err)
		return false
	}
	defer face.Close()
	log.Success("Embedded typeface works (%dpt)", cfg.FontSize)
	return true
}

// checkCustomFont reports whether the --font file (if any) loads. A failure
// is informational; the pipeline falls back to the embedded face.
func checkCustomFont(cfg *config.Config, log Logger) {
	if cfg.FontPath == "" {
		log.Info("Custom font: none configured")
		return
	}
	face, err := render.LoadFace(cfg.FontPath, cfg.FontSize)
	if err != nil {
		log.Warn("Custom font %s unusable (%v); embedded face would be used", cfg.FontPath, err)
		return
	}
	face.Close()
	log.Success("Custom font works: %s", cfg.FontPath)
}

// checkSmokeRender stamps sample text onto a tiny canvas and verifies that
// pixels actually changed.
func checkSmokeRender(cfg *config.Config, log Logger) bool {
	r, _, err := render.NewRenderer(cfg)
	if err != nil {
		log.Error("Renderer init failed: %v", err)
		return false
	}
	defer r.Close()

	bg := color.NRGBA{R: 90, G: 90, B: 90, A: 255}
	src := imaging.New(64, 64, bg)
	out := r.Stamp(src, "2006-01-02")

	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			if out.NRGBAAt(x, y) != bg {
				log.Success("Smoke render works")
				return true
			}
		}
	}
	log.Error("Smoke render drew nothing")
	return false
}

func listFormats(log Logger) {
	formats := make([]string, len(inputFormats))
	copy(formats, inputFormats)
	sort.Strings(formats)
	log.Info("Input formats: %s", strings.Join(formats, ", "))
	log.Info("WebP output is re-encoded as PNG (no WebP encoder)")
}
