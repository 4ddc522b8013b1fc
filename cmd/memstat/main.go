// memstat prints a report of the macOS memory subsystem: the physical memory
// breakdown, swap usage and a few derived statistics. It takes no arguments.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/and161185/memstat/internal/buildinfo"
	"github.com/and161185/memstat/internal/collector"
	"github.com/and161185/memstat/internal/config"
	"github.com/and161185/memstat/internal/report"
	"github.com/and161185/memstat/model"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildinfo.Print(os.Stderr, buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.New()

	if err := run(ctx, cfg, collector.ExecRunner{}, os.Stdout); err != nil {
		cfg.Logger.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, runner collector.Runner, out io.Writer) error {
	store, err := collector.New(cfg, runner).Collect(ctx)
	if err != nil {
		return fmt.Errorf("collecting metrics: %w", err)
	}

	snap, err := model.NewSnapshot(store.All())
	if err != nil {
		return fmt.Errorf("building snapshot: %w", err)
	}

	if err := report.Write(out, snap); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}
