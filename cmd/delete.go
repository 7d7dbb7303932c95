package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <index>",
	Short: "Delete a repo by index",
	Long: `Remove the catalog entry at the given 1-based index. The index follows the
stored insertion order, which can differ from the per-section numbering that
list displays.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid index %q: expected a number", args[0])
		}

		out := cmd.OutOrStdout()

		catalog, err := newCatalog(out, false)
		if err != nil {
			return err
		}

		removed, err := catalog.Delete(index)
		if err != nil {
			if reportNonFatal(out, err) {
				return nil
			}

			return err
		}

		fmt.Fprintf(out, "🗑️ Deleted: %s\n", removed.URL)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
