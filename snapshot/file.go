// File: file.go
// Role: directory-backed Store.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/core"
)

const fileExt = ".bin"

// FileStore keeps each snapshot as "<dir>/<name>.bin" in codec layout.
// Writes go through codec.WriteFile (temp file + rename).
type FileStore struct {
	dir    string
	codec  []codec.Option
	logger *slog.Logger
}

// NewFileStore opens (creating if needed) a snapshot directory. A nil
// logger discards log output; codecOpts apply to every Save and Load.
func NewFileStore(dir string, logger *slog.Logger, codecOpts ...codec.Option) (*FileStore, error) {
	if dir == "" {
		return nil, errors.New("snapshot: directory is required")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("snapshot: create directory %s: %w", dir, err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &FileStore{dir: dir, codec: codecOpts, logger: logger}, nil
}

// Dir returns the snapshot directory.
func (s *FileStore) Dir() string { return s.dir }

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, name string, g *core.Graph) error {
	if err := begin(ctx, name); err != nil {
		return err
	}
	if err := codec.WriteFile(s.path(name), g, s.codec...); err != nil {
		return fmt.Errorf("snapshot: save %q: %w", name, err)
	}
	s.logger.Debug("snapshot saved", slog.String("name", name), slog.Int("vertices", g.Len()))

	return nil
}

// Load implements Store.
func (s *FileStore) Load(ctx context.Context, name string) (*core.Graph, error) {
	if err := begin(ctx, name); err != nil {
		return nil, err
	}
	g, err := codec.ReadFile(s.path(name), s.codec...)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("snapshot: load %q: %w", name, err)
	}
	s.logger.Debug("snapshot loaded", slog.String("name", name), slog.Int("vertices", g.Len()))

	return g, nil
}

// List implements Store. Files without the .bin suffix or with names that
// fail validation (e.g. leftover temp files) are skipped.
func (s *FileStore) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("snapshot: list %s: %w", s.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		name := strings.TrimSuffix(e.Name(), fileExt)
		if ValidateName(name) == nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return names, nil
}

// Delete implements Store.
func (s *FileStore) Delete(ctx context.Context, name string) error {
	if err := begin(ctx, name); err != nil {
		return err
	}
	err := os.Remove(s.path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("snapshot: delete %q: %w", name, err)
	}
	s.logger.Debug("snapshot deleted", slog.String("name", name))

	return nil
}

// Close implements Store; FileStore holds no open handles.
func (s *FileStore) Close() error { return nil }
