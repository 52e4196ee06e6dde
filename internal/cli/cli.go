package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mhellwig/vvcal/internal/calendar"
	"github.com/mhellwig/vvcal/internal/config"
	"github.com/mhellwig/vvcal/internal/export"
	"github.com/mhellwig/vvcal/internal/logger"
	"github.com/mhellwig/vvcal/internal/scraper"
	"github.com/mhellwig/vvcal/internal/storage"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig    string
	flagOutDir    string
	flagFormat    string
	flagKeepGoing bool
	flagVerbose   bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vvcal",
		Short: "Export university course schedules as iCalendar files",
		Long: `Fetches course pages from the FU Berlin course catalog and writes one .ics
calendar per course, with every session linked into its series.
Without a config file the built-in course list is exported.`,
		RunE: runExport,
	}

	// Define flags
	cmd.Flags().StringVar(&flagConfig, "config", "", "YAML config naming the courses to export")
	cmd.Flags().StringVar(&flagOutDir, "out-dir", ".", "Directory the .ics files are written to")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Report format: text or json")
	cmd.Flags().BoolVar(&flagKeepGoing, "keep-going", false, "Attempt every course even after a failure")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runExport is the main command logic
func runExport(cmd *cobra.Command, args []string) error {
	// Validate format
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stderr))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Initialize storage
	store, err := storage.New(flagOutDir)
	if err != nil {
		return fmt.Errorf("initializing storage: %w", err)
	}

	runner := &export.Runner{
		Scraper:   scraper.NewWithBaseURL(cfg.BaseURL, cfg.Locale),
		Store:     store,
		Options:   calendar.Options{LinkFirstEventToSelf: cfg.SelfLink()},
		KeepGoing: flagKeepGoing,
	}

	report, runErr := runner.Run(cfg.Courses)

	if report != nil {
		result := &ExportResult{
			GeneratedAt: time.Now().UTC(),
			Results:     report.Results,
			Exported:    report.Exported(),
			Failed:      report.Failed,
		}
		if flagVerbose {
			result.Metrics = logger.GetMetricsSnapshot()
		}

		if err := WriteOutput(os.Stdout, result, format, flagVerbose); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}

	return runErr
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
