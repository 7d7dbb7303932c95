package core

import "github.com/inovacc/repobook/internal/model"

// Delete removes the record at the given 1-based index and returns it.
// The index follows the full stored insertion order, not the
// section-grouped display order of list. An index outside [1, len] is a
// *InvalidIndexError and leaves the catalog untouched.
func (c *Catalog) Delete(index int) (*model.Record, error) {
	records, err := c.store.Load()
	if err != nil {
		return nil, err
	}

	if index < 1 || index > len(records) {
		return nil, &InvalidIndexError{Index: index, Count: len(records)}
	}

	removed := records[index-1]
	records = append(records[:index-1], records[index:]...)

	if err := c.persist(records); err != nil {
		return nil, err
	}

	return &removed, nil
}
