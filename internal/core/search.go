package core

import (
	"fmt"
	"strings"
)

// Search prints the bookmarks whose URL, tags, fetched name, or section
// contain the query, case-insensitively. Matches keep the stored order and
// carry a global 1-based index. Read-only.
func (c *Catalog) Search(query string) error {
	records, err := c.store.Load()
	if err != nil {
		return err
	}

	q := strings.ToLower(query)
	n := 0

	for _, r := range records {
		if !r.MatchesQuery(q) {
			continue
		}

		n++
		fmt.Fprintf(c.out, "%d. %s - %s (Section: %s)\n", n, r.DisplayName(), r.URL, r.SectionOrDefault())
	}

	if n == 0 {
		fmt.Fprintln(c.out, "🔍 No matches found.")
	}

	return nil
}
