// File: store.go
// Role: Store interface, name validation and shared encode/decode helpers.
package snapshot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/katalvlaran/antennas/codec"
	"github.com/katalvlaran/antennas/core"
)

var (
	// ErrNotFound indicates no snapshot exists under the given name.
	ErrNotFound = errors.New("snapshot: not found")

	// ErrInvalidName indicates a name outside the allowed alphabet or length.
	ErrInvalidName = errors.New("snapshot: invalid name")
)

// Store saves and restores named graphs. Implementations are safe for
// concurrent use; the graphs passed in are only read.
type Store interface {
	// Save stores g under name, replacing any previous snapshot.
	Save(ctx context.Context, name string, g *core.Graph) error

	// Load restores the graph stored under name.
	Load(ctx context.Context, name string) (*core.Graph, error)

	// List returns all snapshot names in ascending order.
	List(ctx context.Context) ([]string, error)

	// Delete removes the snapshot stored under name.
	Delete(ctx context.Context, name string) error

	// Close releases resources held by the store.
	Close() error
}

var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// ValidateName reports ErrInvalidName for names a Store cannot hold.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	return nil
}

// begin is the common prologue of every Store operation.
func begin(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}

	return ValidateName(name)
}

func encode(g *core.Graph, opts []codec.Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := codec.Encode(&buf, g, opts...); err != nil {
		return nil, fmt.Errorf("snapshot: encode: %w", err)
	}

	return buf.Bytes(), nil
}

func decode(name string, b []byte, opts []codec.Option) (*core.Graph, error) {
	g, err := codec.Decode(bytes.NewReader(b), opts...)
	if err != nil {
		return nil, fmt.Errorf("snapshot: decode %q: %w", name, err)
	}

	return g, nil
}
