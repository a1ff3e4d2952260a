package manifest

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/tessellate/mosaic/pkg/masonry"
)

// WriteLayout encodes a layout Result as pretty-printed JSON to w. This
// is the output format of `mosaic layout` and the inspection API; hosts
// use it for hit-testing and scrollbar sizing without recomputing.
func WriteLayout(res masonry.Result, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	return nil
}

// WriteLayoutFile writes a layout Result to a JSON file at path.
func WriteLayoutFile(res masonry.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteLayout(res, f)
}

// ReadLayout decodes a layout Result from r.
func ReadLayout(r io.Reader) (masonry.Result, error) {
	var res masonry.Result
	if err := json.NewDecoder(r).Decode(&res); err != nil {
		return masonry.Result{}, fmt.Errorf("decode layout: %w", err)
	}
	if res.Positions == nil {
		res.Positions = map[string]masonry.Position{}
	}
	return res, nil
}

// ReadLayoutFile reads a layout Result from the JSON file at path.
func ReadLayoutFile(path string) (masonry.Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return masonry.Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadLayout(f)
}
