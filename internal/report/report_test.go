package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/and161185/memstat/internal/errs"
	"github.com/and161185/memstat/model"
)

func TestPrettySize(t *testing.T) {
	tests := []struct {
		name string
		size int64
		want string
	}{
		{"zero", 0, "      0 B"},
		{"bytes", 512, "    512 B"},
		{"bytes upper bound", 1023, "   1023 B"},
		{"one KB", 1 << 10, "   1.00 KB"},
		{"KB range", 1536, "   1.50 KB"},
		{"one MB", 1 << 20, "   1.00 MB"},
		{"MB range", 400 << 20, " 400.00 MB"},
		{"one GB", 1 << 30, "   1.00 GB"},
		{"GB range", 5 << 30, "   5.00 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, PrettySize(tt.size, 7, 2))
		})
	}
}

func TestPrettySize_UnitSelection(t *testing.T) {
	// largest unit scaling the value to >= 1.0 wins
	require.True(t, strings.HasSuffix(PrettySize(1<<30, 7, 2), " GB"))
	require.True(t, strings.HasSuffix(PrettySize(123<<20, 7, 2), " MB"))
	require.True(t, strings.HasSuffix(PrettySize(123<<10, 7, 2), " KB"))
	require.True(t, strings.HasSuffix(PrettySize(123, 7, 2), " B"))
}

func TestPrettySize_Width(t *testing.T) {
	require.Equal(t, "0 B", PrettySize(0, 1, 2))
	require.Equal(t, "1.00 KB", PrettySize(1<<10, 1, 2))
}

func TestTotalPhysical(t *testing.T) {
	snap := &model.Snapshot{
		Active:             1000000,
		Inactive:           500000,
		Free:               200000,
		Wired:              300000,
		Throttled:          0,
		Speculative:        0,
		CompressorOccupied: 100000,
	}

	require.Equal(t, int64(2100000), totalPhysical(snap))
}

func TestCompressorSavings(t *testing.T) {
	snap := &model.Snapshot{CompressorStored: 300000, CompressorOccupied: 100000}
	require.Equal(t, int64(200000), compressorSavings(snap))

	// occupancy above the stored amount must clamp to zero, never go negative
	snap = &model.Snapshot{CompressorStored: 50000, CompressorOccupied: 100000}
	require.Equal(t, int64(0), compressorSavings(snap))
}

func TestDerivedStats(t *testing.T) {
	snap := &model.Snapshot{
		Active:             100,
		Inactive:           200,
		Wired:              300,
		Throttled:          400,
		CompressorOccupied: 500,
		Anonymous:          1000,
		Purgeable:          250,
		FileBacked:         600,
		DirtyInternal:      10,
		DirtyExternal:      20,
	}

	require.Equal(t, int64(750), appMemory(snap))
	require.Equal(t, int64(850), cachedFiles(snap))
	require.Equal(t, int64(1500), topUsed(snap))
	require.Equal(t, int64(30), dirtyPages(snap))
}

func TestAvailableBytes(t *testing.T) {
	require.Equal(t, int64(2000000000), availableBytes(8000000000, 25))

	// integer floor
	require.Equal(t, int64(33), availableBytes(101, 33))
}

func TestPressureLabel(t *testing.T) {
	tests := []struct {
		level int64
		want  string
	}{
		{1, "Normal"},
		{2, "Warn"},
		{3, "Critical"},
	}

	for _, tt := range tests {
		got, err := pressureLabel(tt.level)
		require.NoError(t, err)
		require.Equal(t, tt.want, got)
	}

	for _, level := range []int64{0, 4, -1, 100} {
		_, err := pressureLabel(level)
		require.ErrorIs(t, err, errs.ErrUnknownPressureLevel, "level %d", level)
	}
}

func TestWrite_UnknownPressureLevelFails(t *testing.T) {
	snap := &model.Snapshot{PressureLevel: 7}

	err := Write(&strings.Builder{}, snap)
	require.ErrorIs(t, err, errs.ErrUnknownPressureLevel)
}

func TestWrite_TableLayout(t *testing.T) {
	snap := &model.Snapshot{
		Active:             2 << 30,
		Inactive:           3 << 29, // 1.5 GB
		Free:               400 << 20,
		Wired:              1 << 30,
		Throttled:          0,
		Speculative:        200 << 20,
		Purgeable:          100 << 20,
		Anonymous:          1280 << 20,
		FileBacked:         600 << 20,
		CompressorOccupied: 256 << 20,
		CompressorStored:   768 << 20,
		DirtyInternal:      50 << 20,
		DirtyExternal:      10 << 20,
		PressureLevel:      1,
		SwapTotal:          3 << 30,
		SwapUsed:           1 << 30,
		SwapFree:           2 << 30,
		FreePercent:        25,
	}

	var sb strings.Builder
	require.NoError(t, Write(&sb, snap))
	out := sb.String()

	lines := strings.Split(out, "\n")
	require.Equal(t, "Breakdown of physical memory:", lines[0])
	require.Equal(t, strings.Repeat("-", 29), lines[1])
	require.Equal(t, "      Active:   2.00 GB", lines[2])
	require.Equal(t, "  Compressor: 256.00 MB (Uncompressed: 768.00 MB)", lines[8])
	require.Equal(t, strings.Repeat("-", 29), lines[9])
	require.Equal(t, "       Total:   5.34 GB", lines[10])

	require.Equal(t, "", lines[11])
	require.Equal(t, "Swap usage:", lines[12])
	require.Equal(t, strings.Repeat("-", 16), lines[13])
	require.Equal(t, " Used:   1.00 GB", lines[14])
	require.Equal(t, "Total:   3.00 GB", lines[17])

	require.Equal(t, "", lines[18])
	require.Equal(t, "Additional stats:", lines[19])
	require.Equal(t, strings.Repeat("-", 36), lines[20])
	require.Equal(t, "     Compressor is saving: 512.00 MB", lines[21])
	require.Equal(t, " Application memory usage:   1.15 GB", lines[22])
	require.Equal(t, "             Cached files: 700.00 MB", lines[23])
	require.Equal(t, "               top's used:   4.75 GB", lines[24])
	require.Equal(t, "              Dirty pages:  60.00 MB", lines[25])
	require.Equal(t, "         Available memory:   1.33 GB", lines[26])
	require.Equal(t, "          Memory pressure:     75 % (Normal)", lines[27])
}
