package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/repobook/internal/application"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", application.AppName, application.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
