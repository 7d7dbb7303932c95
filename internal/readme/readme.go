// Package readme renders the generated Markdown directory of the catalog.
// The document is derived output only: it is fully rebuilt after every
// mutation and never read back as an input.
package readme

import (
	"fmt"
	"strings"

	"github.com/inovacc/repobook/internal/encoding"
	"github.com/inovacc/repobook/internal/model"
)

// Generator writes the rendered document to a fixed path.
type Generator struct {
	path string
}

// NewGenerator returns a Generator writing to the given path.
func NewGenerator(path string) *Generator {
	return &Generator{path: path}
}

// Write renders the records and overwrites the document.
func (g *Generator) Write(records []model.Record) error {
	return encoding.WriteFile(g.path, Render(records), 0644)
}

// Render produces the Markdown directory. Output is deterministic for a
// given record list; sections appear in lexicographic order and records in
// stored order within each section.
func Render(records []model.Record) []byte {
	var b strings.Builder

	b.WriteString("# 📚 RepoBook Directory\n\n")
	b.WriteString("A curated list of GitHub repositories managed by RepoBook CLI tool.\n\n")
	b.WriteString("## Repositories\n\n")

	if len(records) == 0 {
		b.WriteString("_No repositories added yet._\n")

		return []byte(b.String())
	}

	sections, groups := model.GroupBySection(records)
	for _, name := range sections {
		fmt.Fprintf(&b, "## %s\n\n", name)

		for _, r := range groups[name] {
			heading := fmt.Sprintf("### [%s](%s)", r.DisplayName(), r.URL)
			if r.Metadata.Stars != nil {
				heading = fmt.Sprintf("%s ⭐ %d", heading, *r.Metadata.Stars)
			}

			b.WriteString(heading + "\n")

			if r.Metadata.Description != nil && *r.Metadata.Description != "" {
				fmt.Fprintf(&b, "> %s\n", *r.Metadata.Description)
			}

			if len(r.Tags) > 0 {
				fmt.Fprintf(&b, "**Tags:** %s\n", strings.Join(r.Tags, ", "))
			}

			b.WriteString("\n")
		}

		b.WriteString("---\n\n")
	}

	return []byte(b.String())
}
