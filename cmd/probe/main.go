package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/alexdes2202/inf8808-team7-deploy/internal/probe"
)

// Default configuration constants.
const (
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultProbeTimeout = 10 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:8050", "Base URL of the dashboard")
		workers = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		mode    = flag.String("mode", "Relative", "Size mode, Absolute or Relative")
		country = flag.String("country", "USA", "Country selected for the performance flow")
		sport   = flag.String("sport", "", "Sweep a single sport instead of every offered one")
		logFile = flag.String("log", "", "Also write the log to this file")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		probe.ShowHelp(os.Stdout)
		return
	}

	if err := probe.SetupLogging(*logFile, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultProbeTimeout)
	defer cancel()

	config := &probe.Config{
		BaseURL: *baseURL,
		Workers: *workers,
		Timeout: *timeout,
		Mode:    *mode,
		Country: *country,
		Verbose: *verbose,
	}
	if *sport != "" {
		config.Sports = []string{*sport}
	}

	if _, err := probe.Run(ctx, config); err != nil {
		os.Stderr.WriteString("Probe failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
