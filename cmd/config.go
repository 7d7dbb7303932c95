package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/repobook/internal/encoding"
	"github.com/inovacc/repobook/internal/model"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage repobook configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		api := cfg.APIBaseURL
		if api == "" {
			api = "https://api.github.com"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Current Configuration:")
		fmt.Fprintln(out, "=====================")
		fmt.Fprintf(out, "Catalog Document:   %s\n", cfg.StorePath)
		fmt.Fprintf(out, "Generated Document: %s\n", cfg.ReadmePath)
		fmt.Fprintf(out, "API Base URL:       %s\n", api)
		fmt.Fprintf(out, "Fetch Timeout:      %d seconds\n", cfg.FetchTimeoutSeconds)

		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the configuration to defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}

		if err := encoding.SaveJSON(path, model.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to reset configuration: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration reset to defaults.")

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := configFilePath()
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	configCmd.AddCommand(configPathCmd)
}
