package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/inovacc/repobook/internal/core"
)

var (
	addTags    []string
	addFetch   bool
	addSection string
)

var addCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Add a GitHub repo to the catalog",
	Long: `Bookmark a repository URL. With --fetch the entry is enriched with name,
description, stars, and last-updated metadata from the GitHub API; lookup
failures are reported and the entry is stored without metadata.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		catalog, err := newCatalog(out, addFetch)
		if err != nil {
			return err
		}

		record, err := catalog.Add(cmd.Context(), args[0], core.AddOptions{
			Tags:    addTags,
			Section: addSection,
			Fetch:   addFetch,
		})
		if err != nil {
			if reportNonFatal(out, err) {
				return nil
			}

			return err
		}

		fmt.Fprintf(out, "✅ Repo added! %s\n", record.DisplayName())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Optional tags")
	addCmd.Flags().BoolVar(&addFetch, "fetch", false, "Fetch metadata using the GitHub API")
	addCmd.Flags().StringVar(&addSection, "section", "", "Optional section/category name")
}
