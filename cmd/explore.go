package cmd

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyscope/internal/analysis"
	"github.com/KaramelBytes/surveyscope/internal/dataset"
	"github.com/KaramelBytes/surveyscope/internal/report"
	"github.com/KaramelBytes/surveyscope/internal/utils"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Print the full exploration report",
	Long: `Print the full exploration report: overview with date range, column groups,
response distributions, sample answers and a missing-data summary.
Uses the dataframe backend unless --backend is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		report.Banner(out, "Data Exploration Script")
		src, err := loadDataset(out, dataset.BackendFrame)
		if err != nil {
			return err
		}
		s, err := analysis.Summarize(src, classifier())
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
		report.Explore(out, report.Source{Path: src.Path, Size: src.Size}, s, reportOptions())
		log.Info("report written", "cmd", "explore", "rows", s.Rows, "columns", len(s.Headers))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
}

// dataPath returns the configured dataset path, or the default location found
// by walking up from the working directory.
func dataPath() string {
	if cfg != nil && cfg.DataPath != "" {
		return cfg.DataPath
	}
	if p, err := utils.FindUp("", dataset.DefaultPath); err == nil {
		return p
	}
	return dataset.DefaultPath
}

// loadDataset loads the dataset and prints the load status line. Load failures
// are printed here and returned as errReported.
func loadDataset(w io.Writer, def dataset.Backend) (*dataset.Source, error) {
	backend, err := dataset.ParseBackend(flagBackend, def)
	if err != nil {
		return nil, err
	}
	opt := dataset.Options{Backend: backend, Logger: log}
	if cfg != nil {
		opt.Sheet = cfg.Sheet
	}
	path := dataPath()
	src, err := dataset.Load(path, opt)
	if err != nil {
		fail := color.New(color.FgRed)
		var nf *dataset.NotFoundError
		if errors.As(err, &nf) {
			fail.Fprintf(w, "❌ Dataset not found at %s\n", nf.Path)
			fmt.Fprintln(w, "Please ensure the dataset is in the correct location")
		} else {
			fail.Fprintf(w, "❌ Error loading dataset: %v\n", err)
		}
		log.Debug("load failed", "path", path, "err", err)
		return nil, errReported
	}
	color.New(color.FgGreen).Fprintln(w, "✅ Dataset loaded successfully")
	return src, nil
}

func classifier() *analysis.Classifier {
	if cfg == nil {
		return analysis.NewClassifier(nil)
	}
	return analysis.NewClassifier(cfg.DemographicColumns)
}

// reportOptions overlays positive config values on the report defaults.
func reportOptions() report.Options {
	opt := report.DefaultOptions()
	if cfg == nil {
		return opt
	}
	set := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	set(&opt.TopValues, cfg.TopValues)
	set(&opt.TopOpenEnded, cfg.TopOpenEnded)
	set(&opt.SampleColumns, cfg.SampleColumns)
	set(&opt.TopMissing, cfg.TopMissing)
	set(&opt.HeaderPreview, cfg.HeaderPreview)
	set(&opt.PreviewChars, cfg.PreviewChars)
	return opt
}
