// Package config provides application configuration structures and helpers.
package config

import (
	"go.uber.org/zap"
)

// Config holds the settings for one memstat run. The tool takes no flags or
// environment variables; the command set is fixed, but lives here so main and
// the tests share one source of truth.
type Config struct {
	Logger       *zap.SugaredLogger
	VMStatCmd    string // paging statistics
	SysctlCmd    string // kernel parameters and swap usage
	VMMetricsCmd string // free memory percentage (custom host binary)
}

// New creates a Config with the fixed command set and a production logger.
// The logger writes to stderr only: stdout carries the report.
func New() *Config {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stderr"}

	logger := zap.Must(logCfg.Build())

	return &Config{
		Logger:       logger.Sugar(),
		VMStatCmd:    "vm_stat",
		SysctlCmd:    "sysctl",
		VMMetricsCmd: "vmmetrics",
	}
}
