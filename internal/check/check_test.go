package check

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/datemark/internal/config"
)

// recordLogger captures log lines by level for assertions.
type recordLogger struct {
	lines []string
}

func (r *recordLogger) record(level, format string, args ...interface{}) {
	r.lines = append(r.lines, level+": "+fmt.Sprintf(format, args...))
}

func (r *recordLogger) Info(f string, a ...interface{})          { r.record("INFO", f, a...) }
func (r *recordLogger) Success(f string, a ...interface{})       { r.record("SUCCESS", f, a...) }
func (r *recordLogger) Warn(f string, a ...interface{})          { r.record("WARN", f, a...) }
func (r *recordLogger) Error(f string, a ...interface{})         { r.record("ERROR", f, a...) }
func (r *recordLogger) Debug(v bool, f string, a ...interface{}) { r.record("DEBUG", f, a...) }

func (r *recordLogger) has(level, substr string) bool {
	for _, l := range r.lines {
		if strings.HasPrefix(l, level+": ") && strings.Contains(l, substr) {
			return true
		}
	}
	return false
}

func TestRunCheck_Defaults(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CheckOnly = true

	log := &recordLogger{}
	if !RunCheck(&cfg, log) {
		t.Fatalf("RunCheck() failed: %v", log.lines)
	}
	if !log.has("SUCCESS", "Embedded typeface") {
		t.Error("missing embedded typeface success line")
	}
	if !log.has("SUCCESS", "Smoke render") {
		t.Error("missing smoke render success line")
	}
	if !log.has("INFO", "webp") {
		t.Error("missing input format listing")
	}
}

func TestRunCheck_BadCustomFontWarns(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.CheckOnly = true
	cfg.FontPath = filepath.Join(t.TempDir(), "missing.ttf")

	log := &recordLogger{}
	if !RunCheck(&cfg, log) {
		t.Fatalf("RunCheck() should still pass overall: %v", log.lines)
	}
	if !log.has("WARN", "Custom font") {
		t.Error("missing custom font warning")
	}
}
