package repositories

import (
	"errors"
	"strings"

	"faredash/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerDatasetRepository implements DatasetRepository using BadgerDB
type BadgerDatasetRepository struct {
	db *badger.DB
}

// NewBadgerDatasetRepository creates a new BadgerDatasetRepository
func NewBadgerDatasetRepository(db *badger.DB) *BadgerDatasetRepository {
	return &BadgerDatasetRepository{db: db}
}

// Get retrieves a dataset by key
func (r *BadgerDatasetRepository) Get(key string) (*models.Dataset, error) {
	var dataset models.Dataset

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(DatasetKeyPrefix + key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &dataset)
		})
	})
	if err != nil {
		return nil, err
	}
	return &dataset, nil
}

// Save stores a dataset under its key, replacing any previous one
func (r *BadgerDatasetRepository) Save(dataset *models.Dataset) error {
	if err := dataset.Validate(); err != nil {
		return err
	}

	data, err := marshalEntity(dataset)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(DatasetKeyPrefix+dataset.Key), data)
	})
}

// Delete removes a dataset by key
func (r *BadgerDatasetRepository) Delete(key string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		k := []byte(DatasetKeyPrefix + key)

		_, err := txn.Get(k)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(k)
	})
}

// Keys lists the keys of all stored datasets
func (r *BadgerDatasetRepository) Keys() ([]string, error) {
	var keys []string
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(DatasetKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, strings.TrimPrefix(string(it.Item().Key()), DatasetKeyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// Clear removes every stored dataset
func (r *BadgerDatasetRepository) Clear() error {
	return r.db.DropPrefix([]byte(DatasetKeyPrefix))
}
