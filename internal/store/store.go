// Package store persists the repository catalog as one whole document:
// loads read the full record list, saves overwrite it. There are no partial
// updates and no indexes; insertion order is the canonical order.
//
// The default backend keeps the catalog as a single JSON text file. Building
// with the "bolt" tag swaps in a BoltDB-backed store with the same
// whole-document semantics.
package store

import "github.com/inovacc/repobook/internal/model"

// Store defines the persistence operations used by the catalog.
type Store interface {
	// Load returns the full record list. A missing document is the
	// first-run case and yields an empty list; a malformed document is
	// an error and is never silently replaced by an empty list.
	Load() ([]model.Record, error)

	// Save serializes the full record list and overwrites the document.
	Save(records []model.Record) error
}
