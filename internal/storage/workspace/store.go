// Package workspace keeps named interpreter snapshots in a Badger database so
// a REPL session can resume where the last one stopped.
package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/oklog/ulid/v2"

	"github.com/yndnr/bpls-go/internal/storage/snapshot"
	"github.com/yndnr/bpls-go/internal/telemetry/logger"
)

// Common errors
var (
	ErrNotFound    = errors.New("workspace: not found")
	ErrInvalidName = errors.New("workspace: name must not be empty")
)

const keyPrefix = "ws/"

// Options configures the store.
type Options struct {
	// Dir is the Badger directory. Ignored when InMemory is set.
	Dir string
	// InMemory keeps everything in RAM; used by tests and --sandbox runs.
	InMemory bool
}

// Record is one saved workspace.
type Record struct {
	Name     string             `json:"name" yaml:"name"`
	Revision string             `json:"revision" yaml:"revision"`
	SavedAt  time.Time          `json:"saved_at" yaml:"saved_at"`
	Snapshot *snapshot.Snapshot `json:"snapshot" yaml:"snapshot"`
}

// Store is a Badger-backed workspace store.
type Store struct {
	db       *badger.DB
	inMemory bool
	log      logger.Logger
	now      func() time.Time
}

// Open opens or creates the store.
func Open(opts Options, log logger.Logger) (*Store, error) {
	if !opts.InMemory && opts.Dir == "" {
		return nil, fmt.Errorf("workspace: dir is required")
	}
	if log == nil {
		log = logger.Nop()
	}

	bopts := badger.DefaultOptions(opts.Dir)
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	}
	bopts.Logger = &badgerLogger{log: log}

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("workspace: open db: %w", err)
	}

	log.Debug("workspace store opened", "dir", opts.Dir, "in_memory", opts.InMemory)
	return &Store{db: db, inMemory: opts.InMemory, log: log, now: time.Now}, nil
}

// Put saves snap under name, replacing any previous record.
func (s *Store) Put(_ context.Context, name string, snap *snapshot.Snapshot) (*Record, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	rec := &Record{
		Name:     name,
		Revision: ulid.Make().String(),
		SavedAt:  s.now().UTC(),
		Snapshot: snap,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("workspace: marshal %q: %w", name, err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), data)
	})
	if err != nil {
		return nil, fmt.Errorf("workspace: put %q: %w", name, err)
	}
	s.log.Debug("workspace saved", "name", name, "revision", rec.Revision)
	return rec, nil
}

// Get returns the record stored under name.
func (s *Store) Get(_ context.Context, name string) (*Record, error) {
	var rec *Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", ErrNotFound, name)
			}
			return err
		}
		return item.Value(func(val []byte) error {
			rec, err = decode(val)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every record ordered by name.
func (s *Store) List(_ context.Context) ([]*Record, error) {
	var out []*Record
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			val, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			rec, err := decode(val)
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("workspace: list: %w", err)
	}
	return out, nil
}

// Delete removes the record stored under name.
func (s *Store) Delete(_ context.Context, name string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("%w: %q", ErrNotFound, name)
			}
			return err
		}
		return txn.Delete(key(name))
	})
}

// Close runs one value log GC pass (on-disk stores only) and closes the db.
func (s *Store) Close() error {
	if !s.inMemory {
		if err := s.db.RunValueLogGC(0.5); err != nil && !errors.Is(err, badger.ErrNoRewrite) {
			s.log.Debug("workspace gc skipped", "error", err)
		}
	}
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("workspace: close db: %w", err)
	}
	return nil
}

func key(name string) []byte {
	return []byte(keyPrefix + name)
}

func decode(val []byte) (*Record, error) {
	var rec Record
	if err := json.Unmarshal(val, &rec); err != nil {
		return nil, fmt.Errorf("workspace: decode record: %w", err)
	}
	if rec.Snapshot == nil {
		rec.Snapshot = &snapshot.Snapshot{}
	}
	rec.Snapshot.Normalize()
	return &rec, nil
}
