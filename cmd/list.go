package cmd

import "github.com/spf13/cobra"

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all saved repos",
	Long:  `Display every bookmarked repository grouped by section, with stars, description, and tags when metadata was fetched.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := newCatalog(cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}

		return catalog.List()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
