// Package core implements the catalog operations: add, list, search, delete.
//
// Every operation loads the full stored record list, applies at most one
// transformation, and for mutations saves the list back and regenerates the
// Markdown directory. There is no concurrent access model; one process runs
// one operation at a time.
package core

import (
	"context"
	"io"
	"time"

	"github.com/inovacc/repobook/internal/model"
	"github.com/inovacc/repobook/internal/readme"
	"github.com/inovacc/repobook/internal/store"
)

// Fetcher looks up repository metadata. Lookups are best-effort: the
// catalog downgrades a failure to empty metadata and a console warning.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (model.Metadata, error)
}

// Catalog implements the bookmark operations over a store, an optional
// metadata fetcher, and the generated document.
type Catalog struct {
	store   store.Store
	fetcher Fetcher
	readme  *readme.Generator
	out     io.Writer
	now     func() time.Time
}

// New wires a Catalog. The fetcher may be nil when no operation will
// request metadata. Display output and warnings go to out.
func New(st store.Store, fetcher Fetcher, gen *readme.Generator, out io.Writer) *Catalog {
	return &Catalog{
		store:   st,
		fetcher: fetcher,
		readme:  gen,
		out:     out,
		now:     time.Now,
	}
}

// persist saves the record list and rebuilds the generated document.
func (c *Catalog) persist(records []model.Record) error {
	if err := c.store.Save(records); err != nil {
		return err
	}

	return c.readme.Write(records)
}
