package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/inovacc/repobook/internal/application"
)

var (
	flagStore  string
	flagReadme string
	flagConfig string
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Manage GitHub repo links like a digital phonebook",
	Long: `RepoBook keeps a local catalog of repository links, optionally enriched
with metadata from the GitHub API, and regenerates a Markdown directory of
the catalog after every change.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "", "Path to the catalog document (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagReadme, "readme", "", "Path to the generated Markdown directory (default from config)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the configuration file")
}
