// Package probe sweeps a running dashboard and checks the invariants of its
// chart tables.
package probe

import (
	"fmt"
	"io"
	"os"

	"github.com/alexdes2202/inf8808-team7-deploy/pkg/logger"
)

const logFilePermission = 0600

// SetupLogging configures logging to the console, and to logFile as well
// when it is set.
func SetupLogging(logFile string, verbose bool) error {
	var out io.Writer = os.Stdout
	if logFile != "" {
		file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePermission)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}
	if err := logger.Init(logger.WithWriter(out)); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the probe.
func ShowHelp(w io.Writer) {
	_, _ = io.WriteString(w, `Olympic Dashboard Probe
=======================

Sweeps every sport offered by a running dashboard and checks that each
performance flow conserves its counts and that relative shares add up to 100.

Usage:
  go run ./cmd/probe [options]

Options:
  -url string
        Base URL of the dashboard (default "http://localhost:8050")
  -workers int
        Number of concurrent workers (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 30s)
  -mode string
        Size mode, Absolute or Relative (default "Relative")
  -country string
        Country selected for the performance flow (default "USA")
  -sport string
        Sweep a single sport instead of every offered one
  -log string
        Also write the log to this file
  -verbose
        Log every verified chart
  -help
        Show this help message

Examples:
  # Sweep a local dashboard
  go run ./cmd/probe

  # Check absolute counts for Canada with more workers
  go run ./cmd/probe -mode Absolute -country Canada -workers 16
`)
}
