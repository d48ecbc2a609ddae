package cmd

import (
	"github.com/spf13/cobra"

	"github.com/KaramelBytes/surveyscope/internal/dataset"
	"github.com/KaramelBytes/surveyscope/internal/report"
)

var columnsCmd = &cobra.Command{
	Use:   "columns",
	Short: "List dataset columns with their categories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		src, err := loadDataset(out, dataset.BackendRows)
		if err != nil {
			return err
		}
		report.ColumnList(out, src.Headers(), classifier())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
}
