//go:build !bolt

package store

import (
	"github.com/inovacc/repobook/internal/encoding"
	"github.com/inovacc/repobook/internal/model"
)

// JSONStore keeps the catalog in a single JSON document on disk.
type JSONStore struct {
	path string
}

// Open returns the store backend for the given path.
func Open(path string) (Store, error) {
	return &JSONStore{path: path}, nil
}

func (s *JSONStore) Load() ([]model.Record, error) {
	records, err := encoding.LoadJSON[[]model.Record](s.path)
	if err != nil {
		return nil, err
	}

	if records == nil {
		return []model.Record{}, nil
	}

	return *records, nil
}

func (s *JSONStore) Save(records []model.Record) error {
	return encoding.SaveJSON(s.path, records)
}
