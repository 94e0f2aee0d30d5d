// File: badger.go
// Role: BadgerDB-backed Store.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/core"
)

// keyPrefix namespaces snapshot keys inside the database.
const keyPrefix = "snapshot/"

// Config holds configuration for a BadgerStore.
type Config struct {
	// Path is the database directory. Required unless InMemory is true.
	Path string

	// InMemory keeps the database in RAM only. Useful for tests.
	InMemory bool

	// SyncWrites makes every commit durable before returning.
	SyncWrites bool

	// Logger receives store and BadgerDB logs. Nil disables both.
	Logger *slog.Logger

	// Codec options applied to every Save and Load.
	Codec []codec.Option
}

// DefaultConfig returns a durable on-disk configuration; Path must be set.
func DefaultConfig() Config {
	return Config{SyncWrites: true}
}

// InMemoryConfig returns a configuration for tests.
func InMemoryConfig() Config {
	return Config{InMemory: true}
}

// badgerLogger adapts slog.Logger to badger.Logger.
type badgerLogger struct {
	logger *slog.Logger
}

func (l *badgerLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Warningf(format string, args ...interface{}) {
	l.logger.Warn(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Infof(format string, args ...interface{}) {
	l.logger.Info(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *badgerLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

// BadgerStore keeps snapshots in an embedded BadgerDB.
type BadgerStore struct {
	db     *badger.DB
	codec  []codec.Option
	logger *slog.Logger
}

// OpenBadger opens the database described by cfg. The caller must Close
// the store.
func OpenBadger(cfg Config) (*BadgerStore, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("snapshot: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("snapshot: create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	logger := cfg.Logger
	if logger != nil {
		opts = opts.WithLogger(&badgerLogger{logger: logger})
	} else {
		opts = opts.WithLogger(nil)
		logger = slog.New(slog.DiscardHandler)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("snapshot: open badger database: %w", err)
	}

	return &BadgerStore{db: db, codec: cfg.Codec, logger: logger}, nil
}

func key(name string) []byte { return []byte(keyPrefix + name) }

// Save implements Store.
func (s *BadgerStore) Save(ctx context.Context, name string, g *core.Graph) error {
	if err := begin(ctx, name); err != nil {
		return err
	}
	b, err := encode(g, s.codec)
	if err != nil {
		return err
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key(name), b)
	})
	if err != nil {
		return fmt.Errorf("snapshot: save %q: %w", name, err)
	}
	s.logger.Debug("snapshot saved", slog.String("name", name), slog.Int("bytes", len(b)))

	return nil
}

// Load implements Store.
func (s *BadgerStore) Load(ctx context.Context, name string) (*core.Graph, error) {
	if err := begin(ctx, name); err != nil {
		return nil, err
	}
	var b []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key(name))
		if err != nil {
			return err
		}
		b, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %q: %w", name, err)
	}

	return decode(name, b, s.codec)
}

// List implements Store. Badger iterates keys in byte order, which for the
// allowed alphabet is ascending name order.
func (s *BadgerStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	var names []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			names = append(names, strings.TrimPrefix(string(it.Item().Key()), keyPrefix))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("snapshot: list: %w", err)
	}

	return names, nil
}

// Delete implements Store.
func (s *BadgerStore) Delete(ctx context.Context, name string) error {
	if err := begin(ctx, name); err != nil {
		return err
	}
	err := s.db.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(key(name)); err != nil {
			return err
		}
		return txn.Delete(key(name))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("snapshot: delete %q: %w", name, err)
	}
	s.logger.Debug("snapshot deleted", slog.String("name", name))

	return nil
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	if err := s.db.Close(); err != nil {
		return fmt.Errorf("snapshot: close: %w", err)
	}

	return nil
}
