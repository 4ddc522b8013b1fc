// Package model contains core data types for the project.
package model

import (
	"fmt"

	"github.com/and161185/memstat/internal/errs"
)

// Metric keys as emitted by the external commands. The key is the exact label
// text from the command's output, embedded spaces included.
const (
	KeyPagesActive        = "Pages active"
	KeyPagesInactive      = "Pages inactive"
	KeyPagesFree          = "Pages free"
	KeyPagesWired         = "Pages wired down"
	KeyPagesThrottled     = "Pages throttled"
	KeyPagesSpeculative   = "Pages speculative"
	KeyPagesPurgeable     = "Pages purgeable"
	KeyAnonymousPages     = "Anonymous pages"
	KeyFileBackedPages    = "File-backed pages"
	KeyCompressorOccupied = "Pages occupied by compressor"
	KeyCompressorStored   = "Pages stored in compressor"

	KeyDirtyInternal = "vm.pageout_inactive_dirty_internal"
	KeyDirtyExternal = "vm.pageout_inactive_dirty_external"
	KeyPressureLevel = "kern.memorystatus_vm_pressure_level"

	KeySwapTotal = "Swap total"
	KeySwapUsed  = "Swap used"
	KeySwapFree  = "Swap free"

	KeyFreePercent = "Free memory percent"
)

// Snapshot is a validated view of one collection run. All sizes are bytes;
// PressureLevel is the raw 1..3 classification and FreePercent is 0..100.
type Snapshot struct {
	Active             int64
	Inactive           int64
	Free               int64
	Wired              int64
	Throttled          int64
	Speculative        int64
	Purgeable          int64
	Anonymous          int64
	FileBacked         int64
	CompressorOccupied int64
	CompressorStored   int64

	DirtyInternal int64
	DirtyExternal int64
	PressureLevel int64

	SwapTotal int64
	SwapUsed  int64
	SwapFree  int64

	FreePercent int64
}

// NewSnapshot builds a Snapshot from collected metrics, checking every
// required key up front so a truncated or reshaped command output surfaces
// as one parse failure instead of scattered lookup errors.
func NewSnapshot(metrics map[string]int64) (*Snapshot, error) {
	s := &Snapshot{}

	fields := []struct {
		key string
		dst *int64
	}{
		{KeyPagesActive, &s.Active},
		{KeyPagesInactive, &s.Inactive},
		{KeyPagesFree, &s.Free},
		{KeyPagesWired, &s.Wired},
		{KeyPagesThrottled, &s.Throttled},
		{KeyPagesSpeculative, &s.Speculative},
		{KeyPagesPurgeable, &s.Purgeable},
		{KeyAnonymousPages, &s.Anonymous},
		{KeyFileBackedPages, &s.FileBacked},
		{KeyCompressorOccupied, &s.CompressorOccupied},
		{KeyCompressorStored, &s.CompressorStored},
		{KeyDirtyInternal, &s.DirtyInternal},
		{KeyDirtyExternal, &s.DirtyExternal},
		{KeyPressureLevel, &s.PressureLevel},
		{KeySwapTotal, &s.SwapTotal},
		{KeySwapUsed, &s.SwapUsed},
		{KeySwapFree, &s.SwapFree},
		{KeyFreePercent, &s.FreePercent},
	}

	for _, f := range fields {
		v, ok := metrics[f.key]
		if !ok {
			return nil, fmt.Errorf("metric %q: %w", f.key, errs.ErrMetricNotFound)
		}
		*f.dst = v
	}

	return s, nil
}
