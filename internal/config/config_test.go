package config

import (
	"testing"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/vacation", "/photos/vacation"},
		{"single trailing slash", "/photos/vacation/", "/photos/vacation"},
		{"multiple trailing slashes", "/photos/vacation///", "/photos/vacation"},
		{"root path", "/", "/"},
		{"relative path", "photos", "photos"},
		{"relative with slash", "photos/", "photos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDirArg(tt.in)
			if got != tt.want {
				t.Errorf("NormalizeDirArg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestValidate_Color(t *testing.T) {
	tests := []struct {
		name    string
		color   TextColor
		wantErr bool
	}{
		{"white is valid", ColorWhite, false},
		{"black is valid", ColorBlack, false},
		{"red is valid", ColorRed, false},
		{"blue is valid", ColorBlue, false},
		{"green is valid", ColorGreen, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "magenta", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true // skip path requirement
			cfg.Color = tt.color
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_Position(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		wantErr bool
	}{
		{"top-left is valid", PosTopLeft, false},
		{"top-right is valid", PosTopRight, false},
		{"bottom-left is valid", PosBottomLeft, false},
		{"bottom-right is valid", PosBottomRight, false},
		{"center is valid", PosCenter, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "middle-left", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			cfg.Position = tt.pos
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_NumericRanges(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults pass", func(c *Config) {}, false},
		{"zero font size", func(c *Config) { c.FontSize = 0 }, true},
		{"negative font size", func(c *Config) { c.FontSize = -12 }, true},
		{"negative margin", func(c *Config) { c.Margin = -1 }, true},
		{"zero margin is fine", func(c *Config) { c.Margin = 0 }, false},
		{"quality too low", func(c *Config) { c.JPEGQuality = 0 }, true},
		{"quality too high", func(c *Config) { c.JPEGQuality = 101 }, true},
		{"quality boundary low", func(c *Config) { c.JPEGQuality = 1 }, false},
		{"quality boundary high", func(c *Config) { c.JPEGQuality = 100 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.CheckOnly = true
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidate_RequiresInputDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InputDir = ""
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() should fail when InputDir is empty and CheckOnly is false")
	}

	cfg.InputDir = "photos"
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() unexpected error: %v", err)
	}
}

func TestValidate_CheckOnlySkipsInput(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CheckOnly = true
	cfg.InputDir = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() should pass with empty input when CheckOnly is true, got: %v", err)
	}
}

func TestDeriveOutputDir(t *testing.T) {
	tests := []struct {
		name  string
		input string
		out   string
		want  string
	}{
		{"sibling of relative input", "photos", "", "photos_watermark"},
		{"sibling of absolute input", "/data/photos", "", "/data/photos_watermark"},
		{"cleans dot segments", "./photos", "", "photos_watermark"},
		{"explicit out wins", "photos", "/tmp/out", "/tmp/out"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.InputDir = tt.input
			cfg.OutputDir = tt.out
			cfg.DeriveOutputDir()
			if cfg.OutputDir != tt.want {
				t.Errorf("DeriveOutputDir() = %q, want %q", cfg.OutputDir, tt.want)
			}
		})
	}
}

func TestValidatePaths(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		wantErr bool
	}{
		{"sibling directories", "/data/photos", "/data/photos_watermark", false},
		{"output equals input", "/data/photos", "/data/photos", true},
		{"output inside input", "/data/photos", "/data/photos/out", true},
		{"output is parent of input", "/data/photos/sub", "/data/photos", false},
		{"similar prefix not nested", "/data/photos", "/data/photos2", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			err := cfg.ValidatePaths(tt.input, tt.output)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePaths(%q, %q) error = %v, wantErr %v",
					tt.input, tt.output, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FontSize != 36 {
		t.Errorf("default FontSize = %d, want 36", cfg.FontSize)
	}
	if cfg.Color != ColorWhite {
		t.Errorf("default Color = %q, want %q", cfg.Color, ColorWhite)
	}
	if cfg.Position != PosBottomRight {
		t.Errorf("default Position = %q, want %q", cfg.Position, PosBottomRight)
	}
	if cfg.Margin != 20 {
		t.Errorf("default Margin = %d, want 20", cfg.Margin)
	}
	if cfg.JPEGQuality != 95 {
		t.Errorf("default JPEGQuality = %d, want 95", cfg.JPEGQuality)
	}
	if cfg.SkipExisting {
		t.Error("default SkipExisting should be false (overwrite on conflict)")
	}
	if cfg.DryRun {
		t.Error("default DryRun should be false")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("default ColorMode = %q, want %q", cfg.ColorMode, ColorAuto)
	}
}
