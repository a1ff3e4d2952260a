// Package manifest reads and writes item manifests: JSON files listing
// the media items of a library with their natural dimensions. Manifests
// are the offline input to the layout, window, and serve commands, and a
// convenient interchange format for hosts that already know their items.
package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tessellate/mosaic/pkg/errors"
	"github.com/tessellate/mosaic/pkg/masonry"
)

// Manifest is an ordered item list with an optional display name. The
// item order is significant: it is the packing order of the grid.
type Manifest struct {
	Name  string         `json:"name,omitempty"`
	Items []masonry.Item `json:"items"`
}

// Read decodes a manifest from r and validates it.
//
// Read returns an error if:
//   - The JSON is malformed
//   - An item id is empty, overlong, or contains control characters
//   - Two items share an id
//   - An item carries negative dimensions
//
// Items with zero dimensions are valid; they model media whose metadata
// has not been probed yet and are skipped by the layout engine until
// their dimensions resolve.
func Read(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode manifest")
	}

	seen := make(map[string]struct{}, len(m.Items))
	for i, it := range m.Items {
		if err := errors.ValidateItemID(it.ID); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "item %d", i)
		}
		if err := errors.ValidateDimensions(it.NaturalWidth, it.NaturalHeight); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "item %q", it.ID)
		}
		if _, dup := seen[it.ID]; dup {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "duplicate item id %q", it.ID)
		}
		seen[it.ID] = struct{}{}
	}
	return &m, nil
}

// ReadFile reads and validates the manifest at path.
func ReadFile(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Write encodes m as pretty-printed JSON to w.
func Write(m *Manifest, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}

// WriteFile writes m to a JSON file at path.
func WriteFile(m *Manifest, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(m, f)
}
