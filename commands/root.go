package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-timeline-core/internal/config"
	"github.com/penwyp/go-timeline-core/internal/presentation/formatter"
	"github.com/penwyp/go-timeline-core/internal/util"
)

var (
	// Logging related
	debug   bool
	logFile string

	// Configuration
	configPath string

	// Display formatting
	dayFirst     bool
	outputFormat string

	// Camera
	viewWidth float64
	panX      float64
	zoom      float64
	pxPerDay  float64

	rootCmd = &cobra.Command{
		Use:   "timeline-core",
		Short: "Timeline layout computation tool",
		Long: `timeline-core computes timeline card layouts from date-ranged records.

It parses record dates across an astronomically large range, assigns each
record a non-overlapping visual lane, positions cards against a camera, and
generates time-ruler markers for the current zoom.

Examples:
  timeline-core layout --input records.json                 # Lay out a record batch
  timeline-core layout --input records.yaml --output json   # JSON layout output
  timeline-core layout --input records.json --watch         # Recompute on file change
  timeline-core markers --zoom 0.05 --width 1200            # Ruler markers only
  timeline-core date "5000 BCE-01-01"                       # Normalize one date`,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"YAML config file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&dayFirst, "day-first", false,
		"Render day-precision dates as DD/MM/YYYY instead of MM/DD/YYYY")
}

// initRun loads the config file and brings up logging; flags the user set
// explicitly override file values.
func initRun(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("day-first") || dayFirst {
		cfg.DayFirst = dayFirst
	}
	if cmd.Flags().Changed("output") {
		cfg.Output = outputFormat
	}
	if cmd.Flags().Changed("width") {
		cfg.Viewport.Width = viewWidth
	}
	if cmd.Flags().Changed("pan") {
		cfg.Viewport.PanX = panX
	}
	if cmd.Flags().Changed("zoom") {
		cfg.Viewport.Zoom = zoom
	}
	if cmd.Flags().Changed("px-per-day") {
		cfg.BasePxPerDay = pxPerDay
	}

	logLevel := cfg.Log.Level
	if debug {
		logLevel = "debug"
	}
	file := cfg.Log.File
	if logFile != "" {
		file = logFile
	}
	util.InitLogger(logLevel, file, debug)
	return cfg, nil
}

// newFormatter maps a format name to its implementation.
func newFormatter(format string, writer io.Writer) (formatter.Formatter, error) {
	switch format {
	case "table", "":
		return formatter.NewTableFormatter(writer), nil
	case "json":
		return formatter.NewJSONFormatter(writer), nil
	case "csv":
		return formatter.NewCSVFormatter(writer), nil
	case "summary":
		return formatter.NewSummaryFormatter(writer), nil
	default:
		return nil, fmt.Errorf("unknown output format: %s (expected table, json, csv or summary)", format)
	}
}

func stdout() io.Writer { return os.Stdout }
