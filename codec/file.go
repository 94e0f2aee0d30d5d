// File: file.go
// Role: whole-file WriteFile / ReadFile helpers.
package codec

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/antennas/core"
)

// WriteFile encodes g into path. The data goes to a temporary file in the
// same directory which is renamed over path once complete, so readers never
// see a partial file.
func WriteFile(path string, g *core.Graph, opts ...Option) (err error) {
	if g == nil {
		return ErrGraphNil
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("codec: create temp for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = Encode(tmp, g, opts...); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("codec: sync %s: %w", tmp.Name(), err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("codec: close %s: %w", tmp.Name(), err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("codec: rename to %s: %w", path, err)
	}

	return nil
}

// ReadFile decodes the graph stored at path. A missing file yields an error
// wrapping fs.ErrNotExist and no graph.
func ReadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("codec: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("codec: %s: %w", path, err)
	}

	return g, nil
}
