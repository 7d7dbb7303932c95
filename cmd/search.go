package cmd

import "github.com/spf13/cobra"

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search repos by keyword, tag, or section",
	Long:  `Case-insensitive substring search over URLs, tags, fetched names, and sections. Matches are shown in the stored order.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := newCatalog(cmd.OutOrStdout(), false)
		if err != nil {
			return err
		}

		return catalog.Search(args[0])
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
