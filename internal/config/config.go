// Package config holds runtime configuration: defaults, CLI flag parsing, and
// validation. Defaults match the behavior of the original watermark tool.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// --- Enum types for validated string fields ---

// TextColor is the watermark text color, from a fixed palette.
type TextColor string

const (
	ColorWhite TextColor = "white" // Default.
	ColorBlack TextColor = "black"
	ColorRed   TextColor = "red"
	ColorBlue  TextColor = "blue"
	ColorGreen TextColor = "green"
)

// Position is the watermark anchor preset: four corners plus center.
type Position string

const (
	PosTopLeft     Position = "top-left"
	PosTopRight    Position = "top-right"
	PosBottomLeft  Position = "bottom-left"
	PosBottomRight Position = "bottom-right" // Default.
	PosCenter      Position = "center"
)

// ColorMode controls ANSI color output on the terminal. It is unrelated to
// TextColor, which is the color drawn onto images.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then mutated by [ParseFlags] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Paths. InputDir is the positional arg; OutputDir is either --out or
	// derived as a sibling "<input>_watermark" directory.
	InputDir  string
	OutputDir string

	// Watermark settings.
	FontSize int       // Default: 36 (points at 72 DPI).
	Color    TextColor // Default: white.
	Position Position  // Default: bottom-right.
	Margin   int       // Default: 20 px from the anchored edges.
	FontPath string    // Optional TTF/OTF file; empty means embedded face.

	// Output encoding.
	JPEGQuality int // Default: 95.

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: false. Existing outputs are overwritten.

	// Display and logging.
	Verbose   bool
	ColorMode ColorMode // Default: "auto".
	LogFile   string    // Optional log file path.
	CheckOnly bool      // Run --check diagnostics and exit.
}

// DefaultConfig returns a Config with all defaults matching the original
// watermark tool. Used as the base before [ParseFlags] applies CLI overrides.
func DefaultConfig() Config {
	return Config{
		FontSize:     36,
		Color:        ColorWhite,
		Position:     PosBottomRight,
		Margin:       20,
		JPEGQuality:  95,
		DryRun:       false,
		SkipExisting: false,
		Verbose:      false,
		ColorMode:    ColorAuto,
		CheckOnly:    false,
	}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks that enum fields hold valid values and that numeric fields
// are in range. When not in CheckOnly mode, it also requires an input path.
func (c *Config) Validate() error {
	switch c.Color {
	case ColorWhite, ColorBlack, ColorRed, ColorBlue, ColorGreen:
		// valid
	default:
		return errors.New("invalid color (use white, black, red, blue or green)")
	}

	switch c.Position {
	case PosTopLeft, PosTopRight, PosBottomLeft, PosBottomRight, PosCenter:
		// valid
	default:
		return errors.New("invalid position (use top-left, top-right, bottom-left, bottom-right or center)")
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return errors.New("invalid log-color mode (use 'auto', 'always' or 'never')")
	}

	if c.FontSize <= 0 {
		return fmt.Errorf("font size must be positive (got %d)", c.FontSize)
	}
	if c.Margin < 0 {
		return fmt.Errorf("margin must not be negative (got %d)", c.Margin)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("jpeg quality must be 1-100 (got %d)", c.JPEGQuality)
	}

	if c.CheckOnly {
		return nil
	}
	if c.InputDir == "" {
		return errors.New("need exactly one input directory")
	}
	return nil
}

// DeriveOutputDir fills OutputDir from InputDir when --out was not given:
// a sibling directory named "<input>_watermark".
func (c *Config) DeriveOutputDir() {
	if c.OutputDir != "" {
		return
	}
	c.OutputDir = filepath.Clean(c.InputDir) + "_watermark"
}

// ValidatePaths ensures the resolved output directory is not inside (or equal
// to) the resolved input directory. This prevents a run from discovering its
// own output files. Both arguments must be absolute, symlink-resolved paths.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory must not be inside input directory")
	}
	return nil
}
