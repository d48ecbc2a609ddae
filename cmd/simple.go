package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyscope/internal/analysis"
	"github.com/KaramelBytes/surveyscope/internal/dataset"
	"github.com/KaramelBytes/surveyscope/internal/report"
)

var simpleCmd = &cobra.Command{
	Use:   "simple",
	Short: "Print the basic exploration report",
	Long: `Print the basic report: overview with the first column names, category
counts and sample answers. Uses the plain rows backend unless --backend is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		report.Banner(out, "Simple Data Exploration Script")
		src, err := loadDataset(out, dataset.BackendRows)
		if err != nil {
			return err
		}
		s, err := analysis.Summarize(src, classifier())
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
		report.Simple(out, report.Source{Path: src.Path, Size: src.Size}, s, reportOptions())
		log.Info("report written", "cmd", "simple", "rows", s.Rows, "columns", len(s.Headers))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(simpleCmd)
}
