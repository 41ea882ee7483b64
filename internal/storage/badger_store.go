package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
)

// BadgerStore keeps collections in an embedded badger database, one key per
// collection. This is the default backend.
type BadgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a badger database at path.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path).WithLogger(nil)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("opening badger store at %s: %w", path, err)
	}
	return &BadgerStore{db: db}, nil
}

func (s *BadgerStore) Get(collection string, into interface{}) error {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(collection))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, into)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading collection %s: %w", collection, err)
	}
	return nil
}

func (s *BadgerStore) Put(collection string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding collection %s: %w", collection, err)
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(collection), data)
	})
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", collection, err)
	}
	return nil
}

func (s *BadgerStore) Close() error {
	return s.db.Close()
}
