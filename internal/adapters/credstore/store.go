// Package credstore is the CLI host's credential store. The core never
// persists credentials; this lives strictly on the host side of that
// boundary, keeping service credential fields in a local badger database.
package credstore

import (
	"errors"
	"log/slog"

	"github.com/dgraph-io/badger/v3"

	"github.com/adityasai1234/jam-nodes/internal/domain"
	"github.com/adityasai1234/jam-nodes/internal/ports"
	"github.com/adityasai1234/jam-nodes/internal/xjson"
)

const keyPrefix = "creds:"

type Store struct {
	db     *badger.DB
	logger *slog.Logger
}

// Open opens (or creates) the store at dir.
func Open(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Store{
		db:     db,
		logger: logger.With("component", "credstore"),
	}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Set stores the credential fields for a service, replacing any previous
// value.
func (s *Store) Set(service string, fields map[string]string) error {
	if service == "" {
		return domain.ErrInvalidInput
	}

	data, err := xjson.Marshal(fields)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPrefix+service), data)
	})
}

// Get returns the credential fields for a service, or domain.ErrNotFound.
func (s *Store) Get(service string) (map[string]string, error) {
	var fields map[string]string

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + service))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return domain.NewNodeError(service, "get credentials", domain.ErrNotFound)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			return xjson.Unmarshal(val, &fields)
		})
	})
	if err != nil {
		return nil, err
	}

	return fields, nil
}

// Delete removes the credentials for a service; deleting an absent service
// is not an error.
func (s *Store) Delete(service string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(keyPrefix + service))
	})
}

// All returns every stored credential set keyed by service name, in the
// shape the service builder consumes.
func (s *Store) All() (ports.Credentials, error) {
	creds := ports.Credentials{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			service := string(item.Key()[len(keyPrefix):])

			var fields map[string]string
			if err := item.Value(func(val []byte) error {
				return xjson.Unmarshal(val, &fields)
			}); err != nil {
				return err
			}
			creds[service] = fields
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return creds, nil
}
