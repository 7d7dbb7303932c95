//go:build bolt

package store

import (
	"time"

	"go.etcd.io/bbolt"

	"github.com/inovacc/repobook/internal/encoding"
	"github.com/inovacc/repobook/internal/model"
)

const (
	boltBucketCatalog = "catalog" // key: "records" -> record list JSON
	boltKeyRecords    = "records"
)

// BoltStore keeps the serialized catalog in a BoltDB file. The record list
// is stored as a single value, so loads and saves keep the same
// whole-document semantics as the JSON backend.
type BoltStore struct {
	db *bbolt.DB
}

// Open returns the store backend for the given path.
func Open(path string) (Store, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, err
	}

	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketCatalog))
		return err
	}); err != nil {
		_ = db.Close()

		return nil, err
	}

	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Load() ([]model.Record, error) {
	var raw []byte

	if err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(boltBucketCatalog)).Get([]byte(boltKeyRecords)); v != nil {
			raw = append([]byte(nil), v...)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	if raw == nil {
		return []model.Record{}, nil
	}

	records, err := encoding.ParseJSON[[]model.Record](raw)
	if err != nil {
		return nil, err
	}

	return *records, nil
}

func (s *BoltStore) Save(records []model.Record) error {
	data, err := encoding.ToJSONIndent(records)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketCatalog)).Put([]byte(boltKeyRecords), data)
	})
}
