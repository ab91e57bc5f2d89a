package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into watermark, output, behavior, and utility sections.
// GNU-style long/short flags come from spf13/pflag.

import (
	"fmt"
	"os"
	"strings"

	flag "github.com/spf13/pflag"
)

// ParseFlags parses os.Args into cfg. On --help or --version it prints and exits.
// On error it returns non-nil (e.g. unknown flag, missing input directory).
func ParseFlags(cfg *Config, version string) error {
	fs := flag.NewFlagSet("datemark", flag.ContinueOnError)
	fs.Usage = func() { printUsage(version) }
	fs.SortFlags = false

	var showHelp, showVersion bool

	defineWatermarkFlags(fs, cfg)
	defineOutputFlags(fs, cfg)
	defineBehaviorFlags(fs, cfg)
	defineUtilityFlags(fs, &showHelp, &showVersion)

	if err := fs.Parse(os.Args[1:]); err != nil {
		return err
	}

	if showHelp {
		printUsage(version)
		os.Exit(0)
	}
	if showVersion {
		fmt.Fprintln(os.Stdout, "datemark v"+version)
		os.Exit(0)
	}

	return parsePositionalArgs(fs, cfg)
}

// defineWatermarkFlags registers -s/--font-size, -c/--color, -p/--position, --margin, --font.
func defineWatermarkFlags(fs *flag.FlagSet, cfg *Config) {
	fs.IntVarP(&cfg.FontSize, "font-size", "s", cfg.FontSize, "Watermark font size in points")
	fs.VarP(&textColorValue{&cfg.Color}, "color", "c", "Text color: white | black | red | blue | green")
	fs.VarP(&positionValue{&cfg.Position}, "position", "p", "Anchor: top-left | top-right | bottom-left | bottom-right | center")
	fs.IntVar(&cfg.Margin, "margin", cfg.Margin, "Margin from the anchored edges in pixels")
	fs.StringVar(&cfg.FontPath, "font", "", "Path to a TTF/OTF font file (default: embedded face)")
}

// defineOutputFlags registers -o/--out and --jpeg-quality.
func defineOutputFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVarP(&cfg.OutputDir, "out", "o", "", "Output directory (default: <input>_watermark)")
	fs.IntVar(&cfg.JPEGQuality, "jpeg-quality", cfg.JPEGQuality, "JPEG encode quality (1-100)")
}

// defineBehaviorFlags registers dry-run, skip-existing, verbose, log, log-color, check.
func defineBehaviorFlags(fs *flag.FlagSet, cfg *Config) {
	fs.BoolVarP(&cfg.DryRun, "dry-run", "d", false, "Preview only; do not write any files")
	fs.BoolVar(&cfg.SkipExisting, "skip-existing", false, "Skip files whose output already exists")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Verbose output")
	fs.StringVarP(&cfg.LogFile, "log", "l", "", "Append logs to file")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "log-color", "ANSI colors: auto | always | never")
	fs.BoolVar(&cfg.CheckOnly, "check", false, "Run font/encoder diagnostics and exit")
}

// defineUtilityFlags registers --version and --help (exit after printing).
func defineUtilityFlags(fs *flag.FlagSet, showHelp, showVersion *bool) {
	fs.BoolVarP(showVersion, "version", "V", false, "Print version and exit")
	fs.BoolVarP(showHelp, "help", "h", false, "Show this help and exit")
}

// parsePositionalArgs sets InputDir from the single positional arg when not in
// CheckOnly mode.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if cfg.CheckOnly {
		return nil
	}
	if len(args) != 1 {
		return fmt.Errorf("need exactly one input directory")
	}
	cfg.InputDir = NormalizeDirArg(args[0])
	return nil
}

// printUsage writes the help text to stderr. Column-aligned for readability.
func printUsage(version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "Datemark v" + version + " - EXIF date watermark tool"},
		{"", ""},
		{"  datemark [OPTIONS] <input_dir>", ""},
		{"", ""},
		{"Watermark", ""},
		{"  -s, --font-size <int>", "Font size in points (default: 36)"},
		{"  -c, --color <name>", "white | black | red | blue | green (default: white)"},
		{"  -p, --position <preset>", "top-left | top-right | bottom-left | bottom-right | center"},
		{"  --margin <int>", "Margin from anchored edges in pixels (default: 20)"},
		{"  --font <path>", "TTF/OTF font file (default: embedded face)"},
		{"", ""},
		{"Output", ""},
		{"  -o, --out <path>", "Output directory (default: <input>_watermark)"},
		{"  --jpeg-quality <int>", "JPEG encode quality 1-100 (default: 95)"},
		{"  --skip-existing", "Skip files whose output already exists"},
		{"  -d, --dry-run", "Preview only; do not write any files"},
		{"", ""},
		{"Display", ""},
		{"  --log-color <mode>", "ANSI colors: auto | always | never (default: auto)"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --check", "Font and encoder diagnostics"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(os.Stderr)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(os.Stderr, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(os.Stderr, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(os.Stderr, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}

// pflag.Value adapters so we can use enum types (TextColor, Position,
// ColorMode) with fs.Var.

type textColorValue struct{ p *TextColor }

func (t *textColorValue) String() string { return string(*t.p) }
func (t *textColorValue) Type() string   { return "name" }
func (t *textColorValue) Set(s string) error {
	switch TextColor(strings.ToLower(s)) {
	case ColorWhite, ColorBlack, ColorRed, ColorBlue, ColorGreen:
		*t.p = TextColor(strings.ToLower(s))
	default:
		return fmt.Errorf("invalid color %q (use white, black, red, blue or green)", s)
	}
	return nil
}

type positionValue struct{ p *Position }

func (p *positionValue) String() string { return string(*p.p) }
func (p *positionValue) Type() string   { return "preset" }
func (p *positionValue) Set(s string) error {
	switch Position(strings.ToLower(s)) {
	case PosTopLeft, PosTopRight, PosBottomLeft, PosBottomRight, PosCenter:
		*p.p = Position(strings.ToLower(s))
	default:
		return fmt.Errorf("invalid position %q (use top-left, top-right, bottom-left, bottom-right or center)", s)
	}
	return nil
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string { return string(*c.p) }
func (c *colorModeValue) Type() string   { return "mode" }
func (c *colorModeValue) Set(s string) error {
	switch ColorMode(strings.ToLower(s)) {
	case ColorAuto, ColorAlways, ColorNever:
		*c.p = ColorMode(strings.ToLower(s))
	default:
		return fmt.Errorf("invalid log-color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
