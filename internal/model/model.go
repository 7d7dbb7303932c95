package model

import (
	"sort"
	"strings"
	"time"
)

// DefaultSection is the catalog section for records added without one.
const DefaultSection = "Uncategorized"

// Metadata holds descriptive fields fetched from the GitHub API.
// Every field is optional; fields absent in the API response stay nil
// and are omitted from the persisted document.
type Metadata struct {
	// Name is the repository name as reported by the API
	Name *string `json:"name,omitempty"`

	// Description is the repository description
	Description *string `json:"description,omitempty"`

	// Stars is the stargazer count
	Stars *int `json:"stars,omitempty"`

	// LastUpdated is the API's updated_at timestamp, RFC 3339
	LastUpdated *string `json:"last_updated,omitempty"`
}

// IsEmpty reports whether no metadata field is set.
func (m Metadata) IsEmpty() bool {
	return m.Name == nil && m.Description == nil && m.Stars == nil && m.LastUpdated == nil
}

// Record is one bookmarked repository entry.
type Record struct {
	// URL is the remote repository URL and the unique key of the record
	URL string `json:"url"`

	// Tags are free-text labels in the order they were given
	Tags []string `json:"tags"`

	// Section is the free-text grouping label used for display
	Section string `json:"section"`

	// Added is the creation timestamp, set once
	Added time.Time `json:"added"`

	// Metadata is fetcher-derived and best-effort; empty when never fetched
	Metadata Metadata `json:"metadata"`
}

// DisplayName returns the fetched repository name when available, otherwise
// the repository name derived from the URL's last path segment, otherwise
// the URL itself.
func (r Record) DisplayName() string {
	if r.Metadata.Name != nil && *r.Metadata.Name != "" {
		return *r.Metadata.Name
	}

	trimmed := strings.TrimSuffix(r.URL, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 && i+1 < len(trimmed) {
		return strings.TrimSuffix(trimmed[i+1:], ".git")
	}

	return r.URL
}

// SectionOrDefault returns the record's section, falling back to
// DefaultSection for records persisted without one.
func (r Record) SectionOrDefault() string {
	if r.Section == "" {
		return DefaultSection
	}

	return r.Section
}

// MatchesQuery reports whether the already-lowercased query is a substring
// of the record's URL, any tag, the fetched name, or the section.
func (r Record) MatchesQuery(query string) bool {
	if strings.Contains(strings.ToLower(r.URL), query) {
		return true
	}

	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}

	if r.Metadata.Name != nil && strings.Contains(strings.ToLower(*r.Metadata.Name), query) {
		return true
	}

	return strings.Contains(strings.ToLower(r.SectionOrDefault()), query)
}

// GroupBySection builds the section-to-records view used by list output and
// the generated document. Section names come back sorted; records keep their
// stored order within each section. The grouping is recomputed on demand and
// never persisted.
func GroupBySection(records []Record) ([]string, map[string][]Record) {
	groups := make(map[string][]Record)

	for _, r := range records {
		sec := r.SectionOrDefault()
		groups[sec] = append(groups[sec], r)
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}

	sort.Strings(names)

	return names, groups
}
