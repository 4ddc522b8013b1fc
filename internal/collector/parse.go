package collector

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/and161185/memstat/internal/errs"
	"github.com/and161185/memstat/model"
	"github.com/and161185/memstat/storage"
)

// pageSize converts the commands' page counts to bytes.
const pageSize = 4096

// counterSep splits "<name>:<whitespace><value>" lines. The name may contain
// spaces and dots, so only the colon separates the fields.
var counterSep = regexp.MustCompile(`:\s+`)

func splitCounter(line string) (string, string, error) {
	fields := counterSep.Split(strings.TrimSpace(line), 2)
	if len(fields) != 2 {
		return "", "", fmt.Errorf("line %q: %w", line, errs.ErrMalformedOutput)
	}
	return fields[0], fields[1], nil
}

// parseVMStat reads the paging statistics output. The first line is a header
// and the last seven lines are fault/pagein summaries, neither holds a page
// counter. Counts are reported in pages and stored as bytes.
func parseVMStat(raw string, store *storage.Store) error {
	lines := strings.Split(raw, "\n")
	if len(lines) < 9 {
		return fmt.Errorf("%d lines: %w", len(lines), errs.ErrMalformedOutput)
	}

	for _, line := range lines[1 : len(lines)-7] {
		name, value, err := splitCounter(line)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(strings.TrimSuffix(value, "."), 10, 64)
		if err != nil {
			return fmt.Errorf("counter %q: %w", name, err)
		}
		store.Save(name, n*pageSize)
	}

	return nil
}

// parseSysctl reads the kernel-parameter output. Every line except the last
// two is "<param>: <integer>", in pages apart from the pressure level. The
// second-to-last line is the swap usage summary; the last is empty.
func parseSysctl(raw string, store *storage.Store) error {
	lines := strings.Split(raw, "\n")
	if len(lines) < 3 {
		return fmt.Errorf("%d lines: %w", len(lines), errs.ErrMalformedOutput)
	}

	for _, line := range lines[:len(lines)-2] {
		name, value, err := splitCounter(line)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("parameter %q: %w", name, err)
		}
		if name == model.KeyPressureLevel {
			store.Save(name, n)
		} else {
			store.Save(name, n*pageSize)
		}
	}

	swapLine := lines[len(lines)-2]
	for label, key := range map[string]string{
		"total": model.KeySwapTotal,
		"used":  model.KeySwapUsed,
		"free":  model.KeySwapFree,
	} {
		v, err := extractSwapStat(swapLine, label)
		if err != nil {
			return err
		}
		store.Save(key, v)
	}

	return nil
}

// extractSwapStat pulls one "<label> = <X.XX>M" value out of the swap usage
// summary line and converts megabytes to bytes. The reported values only
// carry 0.01M precision, so truncating to whole bytes loses nothing real.
func extractSwapStat(line, label string) (int64, error) {
	idx := strings.Index(line, label)
	if idx < 0 {
		return 0, fmt.Errorf("swap %q missing in %q: %w", label, line, errs.ErrMalformedOutput)
	}

	start := idx + len(label) + len(" = ")
	if start >= len(line) {
		return 0, fmt.Errorf("swap %q truncated in %q: %w", label, line, errs.ErrMalformedOutput)
	}
	end := strings.Index(line[start:], "M")
	if end < 0 {
		return 0, fmt.Errorf("swap %q has no unit in %q: %w", label, line, errs.ErrMalformedOutput)
	}

	mb, err := strconv.ParseFloat(line[start:start+end], 64)
	if err != nil {
		return 0, fmt.Errorf("swap %q: %w", label, err)
	}

	return int64(mb * 1024 * 1024), nil
}

// parseVMMetrics reads the free-memory-percentage output: "<name>: <integer>"
// lines followed by a blank line, values stored as-is.
func parseVMMetrics(raw string, store *storage.Store) error {
	lines := strings.Split(raw, "\n")
	if len(lines) < 2 {
		return fmt.Errorf("%d lines: %w", len(lines), errs.ErrMalformedOutput)
	}

	for _, line := range lines[:len(lines)-1] {
		name, value, err := splitCounter(line)
		if err != nil {
			return err
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("metric %q: %w", name, err)
		}
		store.Save(name, n)
	}

	return nil
}
