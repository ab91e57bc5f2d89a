// Package capture resolves the capture date of an image file: EXIF metadata
// when present, the file's modification time otherwise. Resolution never
// fails; the fallback chain always yields a usable date.
package capture

import (
	"os"
	"time"

	"github.com/rwcarlsen/goexif/exif"
)

// DisplayFormat is the layout used for watermark text.
const DisplayFormat = "2006-01-02"

// Source identifies where a resolved date came from, for logging.
type Source int

const (
	SourceEXIF    Source = iota // EXIF DateTimeOriginal or DateTime tag.
	SourceModTime               // Filesystem modification time.
	SourceNow                   // Wall clock; only when even Stat fails.
)

func (s Source) String() string {
	switch s {
	case SourceEXIF:
		return "exif"
	case SourceModTime:
		return "mtime"
	default:
		return "now"
	}
}

// Resolve returns the capture date for path and where it came from.
// Priority: EXIF DateTimeOriginal (with DateTime fallback inside the tag
// lookup), then file modification time, then the current time. Errors at any
// stage select the next fallback; none escape this boundary.
func Resolve(path string) (time.Time, Source) {
	if t, err := exifDate(path); err == nil {
		return t, SourceEXIF
	}
	if fi, err := os.Stat(path); err == nil {
		return fi.ModTime(), SourceModTime
	}
	return time.Now(), SourceNow
}

// exifDate extracts the capture date from a photo's EXIF metadata.
// goexif's DateTime() prefers DateTimeOriginal and falls back to DateTime.
func exifDate(path string) (time.Time, error) {
	f, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return time.Time{}, err
	}
	return x.DateTime()
}

// Format renders t as the watermark display string (YYYY-MM-DD).
func Format(t time.Time) string {
	return t.Format(DisplayFormat)
}

// Suspicious reports whether a resolved date is implausible for a photo:
// before 1990 or more than a day past now. Such dates are still used; the
// caller flags them at OUTLIER level.
func Suspicious(t, now time.Time) bool {
	if t.Year() < 1990 {
		return true
	}
	return t.After(now.Add(24 * time.Hour))
}
