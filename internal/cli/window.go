package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tessellate/mosaic/pkg/errors"
	"github.com/tessellate/mosaic/pkg/manifest"
	"github.com/tessellate/mosaic/pkg/masonry"
)

// windowCommand creates the window command for computing visible subsets.
func (c *CLI) windowCommand() *cobra.Command {
	var (
		noCache    bool
		configFile string
		width      float64
		columns    int
		scrollTop  float64
		height     float64
		buffer     float64
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "window [manifest.json]",
		Short: "Compute the items visible in a viewport",
		Long: `Compute the items visible in a viewport.

The window command lays out the manifest and then intersects each item's
vertical extent with the viewport band [scroll - buffer, scroll + height
+ buffer]. Only intersecting items are printed; this is the same windowing
the browse TUI and the serve API perform per frame.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.ReadFile(args[0])
			if err != nil {
				return err
			}
			if height <= 0 {
				return errors.New(errors.ErrCodeInvalidViewport, "viewport height must be positive, got %v", height)
			}
			if scrollTop < 0 {
				scrollTop = 0
			}

			cfg, err := resolveConfig(configFile, func(cfg *masonry.Config) {
				if cmd.Flags().Changed("buffer") {
					cfg.Buffer = buffer
				}
			})
			if err != nil {
				return err
			}

			store, err := newCache(noCache)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			defer store.Close()

			columnCount := columns
			if columnCount < 1 {
				columnCount = masonry.ColumnCount(width, cfg.MinColumnWidth, cfg.Gap)
			}

			res, cacheHit, err := computeLayout(cmd.Context(), store, manifestKeyer(m), m.Items, columnCount, width, cfg.Gap)
			if err != nil {
				return fmt.Errorf("compute layout: %w", err)
			}

			vp := masonry.Viewport{
				ContainerWidth:  width,
				ContainerHeight: height,
				ScrollTop:       scrollTop,
			}
			visible := masonry.Visible(m.Items, res, vp, cfg.Buffer)

			if asJSON {
				return writeWindowJSON(os.Stdout, res, vp, cfg.Buffer, visible)
			}

			printSuccess("Window computed")
			printKeyValue("viewport", fmt.Sprintf("scroll %.0f, height %.0f, buffer %.0f", scrollTop, height, cfg.Buffer))
			printKeyValue("content", fmt.Sprintf("%.0fpx in %d columns", res.TotalHeight, res.ColumnCount))
			printStats(len(m.Items), len(visible), res.ColumnCount, cacheHit)
			printNewline()
			for _, it := range visible {
				pos := res.Positions[it.ID]
				printDetail("%-36s  x=%-7.1f y=%-9.1f %.0fx%.0f", it.ID, pos.X, pos.Y, pos.Width, pos.Height)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/mosaic/config.toml)")
	cmd.Flags().Float64VarP(&width, "width", "w", 1200, "container width in pixels")
	cmd.Flags().IntVar(&columns, "columns", 0, "column count (default: derived from width)")
	cmd.Flags().Float64VarP(&scrollTop, "scroll", "s", 0, "scroll offset in pixels")
	cmd.Flags().Float64Var(&height, "height", 800, "viewport height in pixels")
	cmd.Flags().Float64VarP(&buffer, "buffer", "b", masonry.DefaultBuffer, "pre-render margin in pixels")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the window as JSON")

	return cmd
}

// windowOutput is the JSON shape shared by the window command and the
// serve API's /window endpoint.
type windowOutput struct {
	Viewport struct {
		ScrollTop float64 `json:"scrollTop"`
		Height    float64 `json:"height"`
		Buffer    float64 `json:"buffer"`
	} `json:"viewport"`
	ColumnCount int            `json:"columnCount"`
	TotalHeight float64        `json:"totalHeight"`
	Visible     []windowedItem `json:"visible"`
}

type windowedItem struct {
	masonry.Item
	Position masonry.Position `json:"position"`
}

func newWindowOutput(res masonry.Result, vp masonry.Viewport, buffer float64, visible []masonry.Item) windowOutput {
	out := windowOutput{
		ColumnCount: res.ColumnCount,
		TotalHeight: res.TotalHeight,
		Visible:     make([]windowedItem, 0, len(visible)),
	}
	out.Viewport.ScrollTop = vp.ScrollTop
	out.Viewport.Height = vp.ContainerHeight
	out.Viewport.Buffer = buffer
	for _, it := range visible {
		out.Visible = append(out.Visible, windowedItem{Item: it, Position: res.Positions[it.ID]})
	}
	return out
}

func writeWindowJSON(w *os.File, res masonry.Result, vp masonry.Viewport, buffer float64, visible []masonry.Item) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(newWindowOutput(res, vp, buffer, visible))
}
