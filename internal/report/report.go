// Package report renders the memory report tables from a snapshot.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/and161185/memstat/internal/errs"
	"github.com/and161185/memstat/model"
)

// Formatting dimensions shared by all tables. sizeWidth fits the longest
// scaled value, xxxx.xx.
const (
	sizeWidth = 7
	sizeDec   = 2
)

// PrettySize formats a byte count with the largest unit that scales it to at
// least 1.0, GB down to KB, and falls back to the raw count in bytes. The
// number is right-aligned to width with dec fractional digits.
func PrettySize(size int64, width, dec int) string {
	sizeGB := float64(size) / (1 << 30)
	if sizeGB >= 1.0 {
		return fmt.Sprintf("%*.*f GB", width, dec, sizeGB)
	}

	sizeMB := float64(size) / (1 << 20)
	if sizeMB >= 1.0 {
		return fmt.Sprintf("%*.*f MB", width, dec, sizeMB)
	}

	sizeKB := float64(size) / (1 << 10)
	if sizeKB >= 1.0 {
		return fmt.Sprintf("%*.*f KB", width, dec, sizeKB)
	}

	return fmt.Sprintf("%*d B", width, size)
}

func totalPhysical(s *model.Snapshot) int64 {
	return s.Active + s.Inactive + s.Free + s.Wired + s.Throttled + s.Speculative + s.CompressorOccupied
}

// compressorSavings is how much the compressor keeps out of RAM; clamped at
// zero since metadata overhead can put occupancy above the stored amount.
func compressorSavings(s *model.Snapshot) int64 {
	saved := s.CompressorStored - s.CompressorOccupied
	if saved < 0 {
		return 0
	}
	return saved
}

func appMemory(s *model.Snapshot) int64 {
	return s.Anonymous - s.Purgeable
}

func cachedFiles(s *model.Snapshot) int64 {
	return s.FileBacked + s.Purgeable
}

// topUsed mirrors the "used" figure reported by top.
func topUsed(s *model.Snapshot) int64 {
	return s.Active + s.Inactive + s.Wired + s.Throttled + s.CompressorOccupied
}

func dirtyPages(s *model.Snapshot) int64 {
	return s.DirtyInternal + s.DirtyExternal
}

func availableBytes(total, freePercent int64) int64 {
	return total * freePercent / 100
}

func pressureLabel(level int64) (string, error) {
	switch level {
	case 1:
		return "Normal", nil
	case 2:
		return "Warn", nil
	case 3:
		return "Critical", nil
	default:
		return "", fmt.Errorf("level %d: %w", level, errs.ErrUnknownPressureLevel)
	}
}

// tableWriter keeps the first write error so row printing stays linear.
type tableWriter struct {
	w   io.Writer
	err error
}

func (tw *tableWriter) printf(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.w, format, args...)
}

func (tw *tableWriter) row(labelWidth int, label string, bytes int64) {
	tw.printf("%*s:%s\n", labelWidth, label, PrettySize(bytes, sizeWidth, sizeDec))
}

// rule sizes the separator to cover the heading or the table columns,
// whichever is wider; 4 accounts for the colon and the " GB" unit suffix.
func rule(heading string, labelWidth int) string {
	n := labelWidth + sizeWidth + 4
	if len(heading) > n {
		n = len(heading)
	}
	return strings.Repeat("-", n)
}

// Write renders the three report tables to w: the physical memory breakdown,
// swap usage, and the derived additional stats.
func Write(w io.Writer, snap *model.Snapshot) error {
	pressure, err := pressureLabel(snap.PressureLevel)
	if err != nil {
		return err
	}

	tw := &tableWriter{w: w}
	total := totalPhysical(snap)

	labelWidth := 12
	heading := "Breakdown of physical memory:"
	dashes := rule(heading, labelWidth)
	tw.printf("%s\n", heading)
	tw.printf("%s\n", dashes)
	tw.row(labelWidth, "Active", snap.Active)
	tw.row(labelWidth, "Inactive", snap.Inactive)
	tw.row(labelWidth, "Free", snap.Free)
	tw.row(labelWidth, "Wired", snap.Wired)
	tw.row(labelWidth, "Throttled", snap.Throttled)
	tw.row(labelWidth, "Speculative", snap.Speculative)
	tw.printf("%*s:%s (Uncompressed:%s)\n", labelWidth, "Compressor",
		PrettySize(snap.CompressorOccupied, sizeWidth, sizeDec),
		PrettySize(snap.CompressorStored, sizeWidth, sizeDec))
	tw.printf("%s\n", dashes)
	tw.row(labelWidth, "Total", total)

	labelWidth = 5
	heading = "Swap usage:"
	dashes = rule(heading, labelWidth)
	tw.printf("\n")
	tw.printf("%s\n", heading)
	tw.printf("%s\n", dashes)
	tw.row(labelWidth, "Used", snap.SwapUsed)
	tw.row(labelWidth, "Free", snap.SwapFree)
	tw.printf("%s\n", dashes)
	tw.row(labelWidth, "Total", snap.SwapTotal)

	labelWidth = 25
	heading = "Additional stats:"
	dashes = rule(heading, labelWidth)
	tw.printf("\n")
	tw.printf("%s\n", heading)
	tw.printf("%s\n", dashes)
	tw.row(labelWidth, "Compressor is saving", compressorSavings(snap))
	tw.row(labelWidth, "Application memory usage", appMemory(snap))
	tw.row(labelWidth, "Cached files", cachedFiles(snap))
	tw.row(labelWidth, "top's used", topUsed(snap))
	tw.row(labelWidth, "Dirty pages", dirtyPages(snap))
	tw.row(labelWidth, "Available memory", availableBytes(total, snap.FreePercent))
	tw.printf("%*s:%*d %% (%s)\n", labelWidth, "Memory pressure", sizeWidth, 100-snap.FreePercent, pressure)

	return tw.err
}
