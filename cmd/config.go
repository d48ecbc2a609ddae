package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/KaramelBytes/surveyscope/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set surveyscope configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if cfg == nil {
			fmt.Fprintln(out, "No config loaded")
			return nil
		}
		fmt.Fprintf(out, "data_path: %s\n", dataPath())
		if cfg.Sheet != "" {
			fmt.Fprintf(out, "sheet: %s\n", cfg.Sheet)
		}
		fmt.Fprintf(out, "preview_chars: %d\n", cfg.PreviewChars)
		fmt.Fprintf(out, "top_values: %d\n", cfg.TopValues)
		fmt.Fprintf(out, "top_open_ended: %d\n", cfg.TopOpenEnded)
		fmt.Fprintf(out, "sample_columns: %d\n", cfg.SampleColumns)
		fmt.Fprintf(out, "top_missing: %d\n", cfg.TopMissing)
		fmt.Fprintf(out, "header_preview: %d\n", cfg.HeaderPreview)
		fmt.Fprintf(out, "demographic_columns: %s\n", strings.Join(cfg.DemographicColumns, ","))
		fmt.Fprintf(out, "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(out, "log_format: %s\n", cfg.LogFormat)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		// Persist only file and default values, not --data/--debug overrides.
		c, err := cfgpkg.Load(cfgFile)
		var verr *cfgpkg.ValidationError
		if errors.As(err, &verr) && c != nil {
			if keys := c.Repair(); len(keys) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: resetting invalid keys to defaults: %s\n", strings.Join(keys, ", "))
			}
		} else if err != nil {
			return err
		}
		switch key {
		case "data_path":
			c.DataPath = val
		case "sheet":
			c.Sheet = val
		case "preview_chars":
			if c.PreviewChars, err = positiveInt(key, val); err != nil {
				return err
			}
		case "top_values":
			if c.TopValues, err = positiveInt(key, val); err != nil {
				return err
			}
		case "top_open_ended":
			if c.TopOpenEnded, err = positiveInt(key, val); err != nil {
				return err
			}
		case "sample_columns":
			if c.SampleColumns, err = positiveInt(key, val); err != nil {
				return err
			}
		case "top_missing":
			if c.TopMissing, err = positiveInt(key, val); err != nil {
				return err
			}
		case "header_preview":
			if c.HeaderPreview, err = positiveInt(key, val); err != nil {
				return err
			}
		case "demographic_columns":
			var cols []string
			for _, s := range strings.Split(val, ",") {
				if s = strings.TrimSpace(s); s != "" {
					cols = append(cols, s)
				}
			}
			if len(cols) == 0 {
				return fmt.Errorf("demographic_columns needs at least one column name")
			}
			c.DemographicColumns = cols
		case "log_level":
			switch strings.ToLower(val) {
			case "debug", "info", "warn", "error":
				c.LogLevel = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
			}
		case "log_format":
			switch strings.ToLower(val) {
			case "text", "json":
				c.LogFormat = strings.ToLower(val)
			default:
				return fmt.Errorf("invalid log_format: %s (use text|json)", val)
			}
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func positiveInt(key, val string) (int, error) {
	i, err := strconv.Atoi(val)
	if err != nil || i <= 0 {
		return 0, fmt.Errorf("invalid positive int for %s: %v", key, val)
	}
	return i, nil
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
