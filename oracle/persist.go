package oracle

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// cacheVersion is bumped whenever the on-disk schema changes, so a stale
// cache is rejected rather than silently misread (spec.md §9 "Serialisation:
// ... include a version tag and map dimensions so stale caches are
// detected"). No binary-serialization library exists anywhere in the example
// pack (see DESIGN.md); encoding/gob is the idiomatic stdlib choice for a
// single self-contained Go struct with no cross-language consumer.
const cacheVersion = 1

// cacheFile is the on-disk shape of the oracle cache, matching spec.md §6
// "Oracle cache ... binary serialisation of source -> [Rect]".
type cacheFile struct {
	Version  int
	Width    int
	Height   int
	BySource [][]Rect
}

// Save writes o to w in the oracle cache format. Failures here are fatal
// per spec.md §7 ("Serialisation I/O ... fatal on write").
func (o *Oracle) Save(w io.Writer) error {
	cf := cacheFile{Version: cacheVersion, Width: o.width, Height: o.height, BySource: o.bySource}
	if err := gob.NewEncoder(w).Encode(cf); err != nil {
		return fmt.Errorf("oracle: Save: %w", err)
	}
	return nil
}

// Load reads an oracle previously written by Save. A version or dimension
// mismatch against (width,height) returns ErrVersionMismatch; per spec.md §7
// this is recoverable by the caller falling back to Build.
func Load(r io.Reader, width, height int) (*Oracle, error) {
	var cf cacheFile
	if err := gob.NewDecoder(r).Decode(&cf); err != nil {
		return nil, fmt.Errorf("oracle: Load: %w", err)
	}
	if cf.Version != cacheVersion || cf.Width != width || cf.Height != height {
		return nil, ErrVersionMismatch
	}
	return &Oracle{width: cf.Width, height: cf.Height, bySource: cf.BySource}, nil
}

// SaveToFile writes o to the sibling "<mapfile>.dist" cache file named by
// spec.md §6, combining any write and close failure via multierr so callers
// see both rather than only whichever happened first.
func (o *Oracle) SaveToFile(path string) (err error) {
	f, ferr := os.Create(path)
	if ferr != nil {
		return fmt.Errorf("oracle: SaveToFile: %w", ferr)
	}
	defer func() {
		err = multierr.Append(err, f.Close())
	}()
	return o.Save(f)
}

// LoadFromFile reads an oracle cache previously written by SaveToFile. A
// missing file, a version mismatch, or a dimension mismatch are all
// recoverable by the caller falling back to Build (spec.md §7).
func LoadFromFile(path string, width, height int) (*Oracle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("oracle: LoadFromFile: %w", err)
	}
	defer f.Close()
	return Load(f, width, height)
}
