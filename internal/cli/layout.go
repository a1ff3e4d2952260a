package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tessellate/mosaic/pkg/cache"
	"github.com/tessellate/mosaic/pkg/manifest"
	"github.com/tessellate/mosaic/pkg/masonry"
	"github.com/tessellate/mosaic/pkg/observability"
)

// layoutCommand creates the layout command for computing item positions.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		configFile string
		width      float64
		columns    int
		minColumn  float64
		gap        float64
	)

	cmd := &cobra.Command{
		Use:   "layout [manifest.json]",
		Short: "Compute masonry positions for a manifest",
		Long: `Compute masonry positions for a manifest.

The layout command takes a manifest file listing items with their natural
dimensions and computes their positions in a masonry grid: each item goes
to the currently shortest column, scaled to the column width. The output
is a layout.json file consumed by 'window' and by rendering hosts.

Results are cached locally, keyed on the manifest contents and the layout
parameters, so re-running on an unchanged manifest is instant.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], layoutParams{
				output:     output,
				noCache:    noCache,
				configFile: configFile,
				width:      width,
				columns:    columns,
				minColumn:  minColumn,
				gap:        gap,
				changed:    cmd.Flags().Changed,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/mosaic/config.toml)")
	cmd.Flags().Float64VarP(&width, "width", "w", 1200, "container width in pixels")
	cmd.Flags().IntVar(&columns, "columns", 0, "column count (default: derived from width)")
	cmd.Flags().Float64Var(&minColumn, "min-column-width", masonry.DefaultMinColumnWidth, "minimum column width in pixels")
	cmd.Flags().Float64Var(&gap, "gap", masonry.DefaultGap, "gap between items in pixels")

	return cmd
}

// layoutParams bundles the layout command's flag values.
type layoutParams struct {
	output     string
	noCache    bool
	configFile string
	width      float64
	columns    int
	minColumn  float64
	gap        float64
	changed    func(name string) bool
}

// runLayout loads the manifest, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, p layoutParams) error {
	m, err := manifest.ReadFile(input)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(p.configFile, func(cfg *masonry.Config) {
		if p.changed("min-column-width") {
			cfg.MinColumnWidth = p.minColumn
		}
		if p.changed("gap") {
			cfg.Gap = p.gap
		}
	})
	if err != nil {
		return err
	}

	store, err := newCache(p.noCache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}
	defer store.Close()

	columnCount := p.columns
	if columnCount < 1 {
		columnCount = masonry.ColumnCount(p.width, cfg.MinColumnWidth, cfg.Gap)
	}

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()
	prog := newProgress(c.Logger)

	res, cacheHit, err := computeLayout(ctx, store, manifestKeyer(m), m.Items, columnCount, p.width, cfg.Gap)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Positioned %d of %d items", len(res.Positions), len(m.Items)))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := p.output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := manifest.WriteLayoutFile(res, outputPath); err != nil {
		return err
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(m.Items), len(res.Positions), res.ColumnCount, cacheHit)
	printNewline()
	printNextStep("Inspect a window", "mosaic window "+input+" --scroll 0 --height 800")

	return nil
}

// manifestKeyer scopes cache keys by library name, so manifests that share
// a cache directory cannot collide on identical item lists.
func manifestKeyer(m *manifest.Manifest) cache.Keyer {
	keyer := cache.NewDefaultKeyer()
	if m.Name != "" {
		keyer = cache.NewScopedKeyer(keyer, "lib:"+m.Name+":")
	}
	return keyer
}

// computeLayout returns the layout for items, consulting the cache first.
// The cache key covers the item list and every parameter that affects
// positions.
func computeLayout(ctx context.Context, store cache.Cache, keyer cache.Keyer, items []masonry.Item, columnCount int, width, gap float64) (masonry.Result, bool, error) {
	encoded, err := json.Marshal(items)
	if err != nil {
		return masonry.Result{}, false, err
	}
	key := keyer.LayoutKey(cache.Hash(encoded), cache.LayoutKeyOpts{
		ColumnCount:    columnCount,
		ContainerWidth: width,
		Gap:            gap,
	})

	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		res, err := manifest.ReadLayout(bytes.NewReader(data))
		if err == nil {
			observability.Cache().OnCacheHit(ctx, key)
			return res, true, nil
		}
		// Unreadable entry; fall through and recompute.
		_ = store.Delete(ctx, key)
	}
	observability.Cache().OnCacheMiss(ctx, key)

	res := masonry.Layout(items, columnCount, width, gap)

	var buf bytes.Buffer
	if err := manifest.WriteLayout(res, &buf); err == nil {
		if err := store.Set(ctx, key, buf.Bytes(), layoutCacheTTL); err == nil {
			observability.Cache().OnCacheSet(ctx, key, buf.Len())
		}
	}
	return res, false, nil
}
