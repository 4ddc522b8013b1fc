package model

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/memstat/internal/errs"
)

func fullMetrics() map[string]int64 {
	return map[string]int64{
		KeyPagesActive:        1,
		KeyPagesInactive:      2,
		KeyPagesFree:          3,
		KeyPagesWired:         4,
		KeyPagesThrottled:     5,
		KeyPagesSpeculative:   6,
		KeyPagesPurgeable:     7,
		KeyAnonymousPages:     8,
		KeyFileBackedPages:    9,
		KeyCompressorOccupied: 10,
		KeyCompressorStored:   11,
		KeyDirtyInternal:      12,
		KeyDirtyExternal:      13,
		KeyPressureLevel:      1,
		KeySwapTotal:          14,
		KeySwapUsed:           15,
		KeySwapFree:           16,
		KeyFreePercent:        50,
	}
}

func TestNewSnapshot(t *testing.T) {
	snap, err := NewSnapshot(fullMetrics())
	require.NoError(t, err)

	require.Equal(t, int64(1), snap.Active)
	require.Equal(t, int64(4), snap.Wired)
	require.Equal(t, int64(10), snap.CompressorOccupied)
	require.Equal(t, int64(11), snap.CompressorStored)
	require.Equal(t, int64(1), snap.PressureLevel)
	require.Equal(t, int64(16), snap.SwapFree)
	require.Equal(t, int64(50), snap.FreePercent)
}

func TestNewSnapshot_MissingKey(t *testing.T) {
	metrics := fullMetrics()
	delete(metrics, KeyAnonymousPages)

	_, err := NewSnapshot(metrics)
	require.ErrorIs(t, err, errs.ErrMetricNotFound)
	require.Contains(t, err.Error(), KeyAnonymousPages)
}

func TestNewSnapshot_EveryKeyRequired(t *testing.T) {
	for key := range fullMetrics() {
		metrics := fullMetrics()
		delete(metrics, key)

		_, err := NewSnapshot(metrics)
		require.ErrorIs(t, err, errs.ErrMetricNotFound, "key %q must be required", key)
	}
}
