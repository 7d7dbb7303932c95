package core

import (
	"context"
	"fmt"

	"github.com/inovacc/repobook/internal/model"
)

// AddOptions carries the optional parts of an add.
type AddOptions struct {
	Tags    []string
	Section string
	Fetch   bool
}

// Add appends a new bookmark and returns the stored record. A URL already
// present is rejected with a *DuplicateURLError without mutating the
// catalog. A failed metadata lookup is reported as a warning and the record
// is stored with empty metadata; it never fails the add.
func (c *Catalog) Add(ctx context.Context, url string, opts AddOptions) (*model.Record, error) {
	records, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	for _, r := range records {
		if r.URL == url {
			return nil, &DuplicateURLError{URL: url}
		}
	}

	var meta model.Metadata

	if opts.Fetch && c.fetcher != nil {
		meta, err = c.fetcher.Fetch(ctx, url)
		if err != nil {
			fmt.Fprintln(c.out, warnStyle.Render(fmt.Sprintf("⚠️ Error fetching metadata: %v", err)))
			meta = model.Metadata{}
		}
	}

	section := opts.Section
	if section == "" {
		section = model.DefaultSection
	}

	tags := opts.Tags
	if tags == nil {
		tags = []string{}
	}

	record := model.Record{
		URL:      url,
		Tags:     tags,
		Section:  section,
		Added:    c.now(),
		Metadata: meta,
	}

	records = append(records, record)

	if err := c.persist(records); err != nil {
		return nil, err
	}

	return &record, nil
}
