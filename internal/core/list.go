package core

import (
	"fmt"
	"strings"

	"github.com/inovacc/repobook/internal/model"
)

// List prints every bookmark grouped by section. Sections come out in
// lexicographic order with per-section 1-based numbering. Read-only.
func (c *Catalog) List() error {
	records, err := c.store.Load()
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(c.out, "📭 No repos yet.")

		return nil
	}

	sections, groups := model.GroupBySection(records)
	for _, name := range sections {
		fmt.Fprintln(c.out, sectionStyle.Render(fmt.Sprintf("== %s ==", name)))

		for i, r := range groups[name] {
			line := fmt.Sprintf("%d. %s - %s", i+1, r.DisplayName(), r.URL)
			if r.Metadata.Stars != nil {
				line = fmt.Sprintf("%s ⭐ %d", line, *r.Metadata.Stars)
			}

			fmt.Fprintln(c.out, line)

			if r.Metadata.Description != nil && *r.Metadata.Description != "" {
				fmt.Fprintf(c.out, "   📝 %s\n", *r.Metadata.Description)
			}

			if len(r.Tags) > 0 {
				fmt.Fprintf(c.out, "   🔖 Tags: %s\n", strings.Join(r.Tags, ", "))
			}

			fmt.Fprintln(c.out)
		}
	}

	return nil
}
