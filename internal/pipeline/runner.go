// Package pipeline orchestrates file discovery, per-file stamping, and batch
// summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/backmassage/datemark/internal/capture"
	"github.com/backmassage/datemark/internal/config"
	"github.com/backmassage/datemark/internal/display"
	"github.com/backmassage/datemark/internal/imageio"
	"github.com/backmassage/datemark/internal/logging"
	"github.com/backmassage/datemark/internal/naming"
	"github.com/backmassage/datemark/internal/render"
)

// Run is the top-level batch entry point. It discovers files, loads the
// typeface once for the run, processes each file sequentially, and returns
// aggregate stats.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	if stats.Total == 0 {
		log.Warn("No supported images found in %s", cfg.InputDir)
		return stats
	}

	r, faceSource, err := render.NewRenderer(cfg)
	if err != nil {
		log.Error("Cannot initialize renderer: %v", err)
		return stats
	}
	defer r.Close()

	if cfg.FontPath != "" && faceSource != render.FaceCustom {
		log.Warn("Cannot use font %s, falling back to %s face", cfg.FontPath, faceSource)
	}

	resolver := naming.NewCollisionResolver()

	logBatchHeader(cfg, log, &stats, faceSource)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warn("Interrupted")
			break
		}

		processFile(cfg, log, r, resolver, path, &stats)
	}

	logSummary(cfg, log, &stats)
	return stats
}

// processFile handles one image: resolve date → decode → stamp → save.
// Every failure is per-file; the batch always continues.
func processFile(
	cfg *config.Config,
	log *logging.Logger,
	r *render.Renderer,
	resolver *naming.CollisionResolver,
	path string,
	stats *RunStats,
) {
	basename := filepath.Base(path)
	log.Info("[%d/%d] %s", stats.Current, stats.Total, basename)

	fi, err := os.Stat(path)
	if err != nil {
		log.Warn("Skip (unreadable): %s: %v", basename, err)
		stats.Skipped++
		fmt.Println()
		return
	}

	// --- Resolve capture date (never fails; EXIF → mtime → now) ---
	ts, source := capture.Resolve(path)
	text := capture.Format(ts)
	log.Debug(cfg.Verbose, "  Date: %s (from %s)", text, source)
	if capture.Suspicious(ts, time.Now()) {
		log.Outlier("  Capture date %s looks implausible (from %s); using it anyway", text, source)
	}

	// --- Decode ---
	img, err := imageio.Open(path)
	if err != nil {
		log.Warn("Skip (corrupt image): %v", err)
		stats.Skipped++
		fmt.Println()
		return
	}
	b := img.Bounds()

	// --- Resolve output path ---
	outPath := resolver.Resolve(path, naming.OutputPath(cfg.OutputDir, basename))
	if naming.Reencoded(basename) {
		log.Debug(cfg.Verbose, "  WebP has no encoder; writing %s", filepath.Base(outPath))
	}

	if cfg.SkipExisting {
		if _, err := os.Stat(outPath); err == nil {
			log.Warn("Skip (exists): %s", filepath.Base(outPath))
			stats.Skipped++
			fmt.Println()
			return
		}
	}

	// --- Stamp ---
	log.Render("Stamping %q at %s (%s, %s)",
		text, cfg.Position, display.FormatDimensions(b.Dx(), b.Dy()), cfg.Color)
	stamped := r.Stamp(img, text)

	// --- Dry-run ---
	if cfg.DryRun {
		log.Success("[DRY] Would write %s", filepath.Base(outPath))
		stats.Stamped++
		fmt.Println()
		return
	}

	// --- Save ---
	if err := imageio.Save(stamped, outPath, cfg.JPEGQuality); err != nil {
		log.Warn("Cannot write output: %v", err)
		stats.Failed++
		fmt.Println()
		return
	}

	var outSize int64
	if outInfo, err := os.Stat(outPath); err == nil {
		outSize = outInfo.Size()
	}
	stats.TotalInputBytes += fi.Size()
	stats.TotalOutputBytes += outSize
	stats.Stamped++

	log.Success("Stamped -> %s (%s)", filepath.Base(outPath), display.FormatBytes(outSize))
	fmt.Println()
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats, faceSource render.FaceSource) {
	log.Info("Found %d images", stats.Total)
	log.Info("Watermark: %s text, %s, %dpt, %dpx margin", cfg.Color, cfg.Position, cfg.FontSize, cfg.Margin)
	log.Info("Typeface: %s", faceSource)
	log.Info("Output: %s", cfg.OutputDir)
	if cfg.SkipExisting {
		log.Info("Existing outputs: skip")
	} else {
		log.Info("Existing outputs: overwrite")
	}
	if cfg.DryRun {
		log.Warn("DRY RUN: no files will be written")
	}
	fmt.Println()
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d stamped, %d skipped, %d failed", stats.Stamped, stats.Skipped, stats.Failed)
	log.Info("  Total files processed: %d", stats.Current)

	if cfg.DryRun {
		log.Info("  Total written: n/a (dry run)")
		return
	}

	log.Info("  Total written: %s (%s vs input)",
		display.FormatBytes(stats.TotalOutputBytes),
		display.FormatBytesWithSign(stats.BytesDelta()))
}
