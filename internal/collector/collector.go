// Package collector invokes the OS memory reporting commands and parses their
// output into the metrics store.
package collector

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/and161185/memstat/internal/config"
	"github.com/and161185/memstat/storage"
)

// sysctlParams is the fixed argument list for the kernel-parameter query.
// vm.swapusage must stay last: its summary line has a different shape and the
// parser locates it as the second-to-last output line.
var sysctlParams = []string{
	// Dirty pages holding app data and memory mapped files.
	"vm.pageout_inactive_dirty_internal",
	// Dirty pages holding file data.
	"vm.pageout_inactive_dirty_external",
	// Memory pressure level: 1 (Normal), 2 (Warn) or 3 (Critical).
	"kern.memorystatus_vm_pressure_level",
	"vm.swapusage",
}

// Runner abstracts child process execution so tests can feed canned output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands through os/exec, capturing stdout.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", fmt.Errorf("running %s: %w", name, err)
	}
	return string(out), nil
}

// Collector gathers one snapshot worth of memory metrics.
type Collector struct {
	runner    Runner
	vmStat    string
	sysctl    string
	vmMetrics string
}

func New(cfg *config.Config, runner Runner) *Collector {
	return &Collector{
		runner:    runner,
		vmStat:    cfg.VMStatCmd,
		sysctl:    cfg.SysctlCmd,
		vmMetrics: cfg.VMMetricsCmd,
	}
}

// Collect runs the three commands in sequence and returns the filled store.
// Each call blocks until its child exits; there is no retry and no timeout,
// any failure aborts the run.
func (c *Collector) Collect(ctx context.Context) (*storage.Store, error) {
	store := storage.New()

	raw, err := c.runner.Run(ctx, c.vmStat)
	if err != nil {
		return nil, err
	}
	if err := parseVMStat(raw, store); err != nil {
		return nil, fmt.Errorf("%s: %w", c.vmStat, err)
	}

	raw, err = c.runner.Run(ctx, c.sysctl, sysctlParams...)
	if err != nil {
		return nil, err
	}
	if err := parseSysctl(raw, store); err != nil {
		return nil, fmt.Errorf("%s: %w", c.sysctl, err)
	}

	raw, err = c.runner.Run(ctx, c.vmMetrics)
	if err != nil {
		return nil, err
	}
	if err := parseVMMetrics(raw, store); err != nil {
		return nil, fmt.Errorf("%s: %w", c.vmMetrics, err)
	}

	return store, nil
}
