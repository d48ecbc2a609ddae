package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/surveyscope/internal/config"
	"github.com/KaramelBytes/surveyscope/internal/logging"
)

var (
	// Global flags
	cfgFile     string
	debug       bool
	flagData    string
	flagBackend string
	noColor     bool

	// Loaded configuration
	cfg *cfgpkg.Global
	log = slog.Default()
)

// errReported marks failures whose message was already printed to the user.
var errReported = errors.New("already reported")

var rootCmd = &cobra.Command{
	Use:   "surveyscope",
	Short: "Explore music survey responses from the command line",
	Long: `surveyscope loads a survey export (CSV, TSV or XLSX), groups its columns into
questions, open-ended answers, sentiment scores and demographics, and prints
response distributions, sample answers and missing-data statistics.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			color.New(color.FgRed).Fprintln(os.Stderr, "✗ Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.surveyscope/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().StringVar(&flagData, "data", "", "dataset path (overrides config data_path)")
	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "dataset backend: rows|frame (default depends on command)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func loadConfig() {
	if noColor {
		color.NoColor = true
	}
	c, err := cfgpkg.Load(cfgFile)
	var verr *cfgpkg.ValidationError
	switch {
	case err == nil:
	case errors.As(err, &verr) && c != nil:
		// Keep what decoded; only the offending keys fall back to defaults
		keys := c.Repair()
		fmt.Fprintf(os.Stderr, "⚠ Warning: %v; using defaults for %s\n", err, strings.Join(keys, ", "))
	default:
		// Non-fatal: fall back to defaults so the reports still run
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	if flagData != "" {
		cfg.DataPath = flagData
	}
	if debug {
		cfg.LogLevel = "debug"
	}
	log = logging.New(os.Stderr, logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	slog.SetDefault(log)
	log.Debug("config loaded", "config_file", cfgFile, "data_path", cfg.DataPath)
}
