package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tessellate/mosaic/pkg/library"
	"github.com/tessellate/mosaic/pkg/manifest"
)

// browseCommand creates the browse command for the interactive TUI.
func (c *CLI) browseCommand() *cobra.Command {
	var (
		configFile string
		count      int
		seed       int64
		pageSize   int
	)

	cmd := &cobra.Command{
		Use:   "browse [manifest.json]",
		Short: "Browse a library as an interactive masonry grid",
		Long: `Browse a library as an interactive masonry grid.

With a manifest argument the browser pages through its items; without one
it generates a synthetic library, which is handy for trying out the grid
and for eyeballing scroll performance.

Items scale to their column's width preserving aspect ratio, scrolling
windows the layout so only on-screen items render, and nearing the bottom
loads the next page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(configFile, nil)
			if err != nil {
				return err
			}

			var pager library.Pager
			if len(args) == 1 {
				m, err := manifest.ReadFile(args[0])
				if err != nil {
					return err
				}
				pager = library.NewSlicePager(m.Items)
			} else {
				pager = library.NewSyntheticPager(count, seed)
			}

			store := library.NewStore(pager, pageSize)
			model := newBrowseModel(c, store, cfg)

			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run browser: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configFile, "config", "", "config file (default: ~/.config/mosaic/config.toml)")
	cmd.Flags().IntVar(&count, "count", 2000, "synthetic library size (no manifest)")
	cmd.Flags().Int64Var(&seed, "seed", 1, "synthetic library seed (no manifest)")
	cmd.Flags().IntVar(&pageSize, "page-size", library.DefaultPageSize, "items fetched per page")

	return cmd
}
