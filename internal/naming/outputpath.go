// Package naming maps input image paths to output paths and resolves the
// collisions the extension mapping can introduce.
package naming

import (
	"path/filepath"
	"strings"
)

// OutputPath builds the output file path for an input filename: the same base
// filename inside outputDir. WebP has no encoder in this stack, so ".webp"
// inputs map to ".png" outputs; everything else keeps its extension.
func OutputPath(outputDir, filename string) string {
	ext := filepath.Ext(filename)
	if strings.EqualFold(ext, ".webp") {
		filename = strings.TrimSuffix(filename, ext) + ".png"
	}
	return filepath.Join(outputDir, filename)
}

// Reencoded reports whether the output for filename uses a different encoding
// than the input (currently only WebP → PNG).
func Reencoded(filename string) bool {
	return strings.EqualFold(filepath.Ext(filename), ".webp")
}
