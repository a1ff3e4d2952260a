package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tessellate/mosaic/pkg/grid"
	"github.com/tessellate/mosaic/pkg/library"
	"github.com/tessellate/mosaic/pkg/masonry"
)

// Terminal cells are not square; the browser maps layout pixels onto
// cells at a fixed scale so item aspect ratios survive roughly intact.
const (
	pxPerCellX = 10.0
	pxPerCellY = 20.0

	// chromeRows is the number of rows reserved for the header and the
	// status bar.
	chromeRows = 3

	// thumbStep is the min-column-width change per zoom keypress.
	thumbStep = 40.0
)

// kindStyles colors item blocks by media kind.
var kindStyles = map[masonry.Kind]lipgloss.Style{
	masonry.KindImage: lipgloss.NewStyle().Foreground(colorCyan),
	masonry.KindVideo: lipgloss.NewStyle().Foreground(colorBlue),
	masonry.KindAudio: lipgloss.NewStyle().Foreground(colorGreen),
	masonry.KindFont:  lipgloss.NewStyle().Foreground(colorYellow),
	masonry.KindModel: lipgloss.NewStyle().Foreground(colorRed),
}

var (
	styleBlockDefault  = lipgloss.NewStyle().Foreground(colorGray)
	styleBlockSelected = lipgloss.NewStyle().Foreground(colorWhite).Bold(true)
	styleItemLabel     = lipgloss.NewStyle().Foreground(colorWhite)
)

// itemsLoadedMsg reports a completed page fetch.
type itemsLoadedMsg struct {
	loaded bool
	err    error
}

// loadSignal carries the pagination trigger out of the grid callback.
// The grid invokes LoadMore synchronously inside Update, so no locking
// is needed; the flag just survives the bubbletea model copy.
type loadSignal struct {
	fired bool
}

// browseModel is the bubbletea model for the masonry browser.
type browseModel struct {
	cli       *CLI
	grid      *grid.Grid
	store     *library.Store
	selection *library.Selection
	priority  *library.PrioritySet
	signal    *loadSignal

	cols, rows int // terminal size
	fetching   bool
	err        error
}

// newBrowseModel wires the store, grid, and selection together.
func newBrowseModel(c *CLI, store *library.Store, cfg masonry.Config) browseModel {
	signal := &loadSignal{}
	priority := library.NewPrioritySet()
	g := grid.New(grid.Options{
		Config:   cfg,
		LoadMore: func() { signal.fired = true },
		Priority: priority,
		Logger:   c.Logger,
	})
	return browseModel{
		cli:       c,
		grid:      g,
		store:     store,
		selection: library.NewSelection(),
		priority:  priority,
		signal:    signal,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.loadMore()
}

// loadMore fetches the next page off the event loop.
func (m browseModel) loadMore() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		loaded, err := store.LoadMore(context.Background())
		return itemsLoadedMsg{loaded: loaded, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.rows = msg.Height
		m.grid.Resize(float64(msg.Width)*pxPerCellX, float64(msg.Height-chromeRows)*pxPerCellY)

	case itemsLoadedMsg:
		m.fetching = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if msg.loaded {
			m.grid.SetItems(m.store.Items())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.grid.Close()
			return m, tea.Quit
		case "down", "j":
			m.grid.ScrollBy(pxPerCellY)
		case "up", "k":
			m.grid.ScrollBy(-pxPerCellY)
		case "pgdown", "f":
			m.grid.ScrollBy(m.grid.Viewport().ContainerHeight)
		case "pgup", "b":
			m.grid.ScrollBy(-m.grid.Viewport().ContainerHeight)
		case "g", "home":
			m.grid.SetScrollTop(0)
		case "G", "end":
			m.grid.SetScrollTop(m.grid.MaxScroll())
		case "+", "=":
			m.zoom(-thumbStep) // narrower columns, more of them
		case "-", "_":
			m.zoom(thumbStep)
		case " ":
			m.toggleCenter(true)
		case "enter":
			m.toggleCenter(false)
		case "c":
			m.selection.Clear()
		}
	}

	if m.signal.fired && !m.fetching {
		m.signal.fired = false
		m.fetching = true
		return m, m.loadMore()
	}
	m.signal.fired = false
	return m, nil
}

// zoom adjusts the min column width, which changes the column count on
// the next layout pass.
func (m *browseModel) zoom(delta float64) {
	cfg := m.grid.Config()
	cfg.MinColumnWidth += delta
	if cfg.MinColumnWidth < 80 {
		cfg.MinColumnWidth = 80
	}
	if cfg.MinColumnWidth > 960 {
		cfg.MinColumnWidth = 960
	}
	m.grid.SetConfig(cfg)
}

// toggleCenter toggles selection of the item under the viewport center.
func (m *browseModel) toggleCenter(additive bool) {
	vp := m.grid.Viewport()
	id := m.grid.HitTest(vp.ContainerWidth/2, vp.ScrollTop+vp.ContainerHeight/2)
	if id == "" {
		return
	}
	m.selection.Toggle(id, additive)
}

func (m browseModel) View() string {
	if m.cols == 0 || m.rows <= chromeRows {
		return "measuring..."
	}

	frame := m.grid.Frame()
	canvasRows := m.rows - chromeRows

	var b strings.Builder
	b.WriteString(m.headerView(frame))
	b.WriteString("\n")
	b.WriteString(m.canvasView(frame, canvasRows))
	b.WriteString(m.statusView(frame))
	return b.String()
}

func (m browseModel) headerView(frame grid.Frame) string {
	title := StyleTitle.Render("mosaic")
	info := StyleDim.Render(fmt.Sprintf("  %d items · %d columns · %d visible",
		m.store.Len(), frame.Layout.ColumnCount, len(frame.Visible)))
	return title + info
}

// canvasView rasterizes the visible window onto the terminal cell grid.
func (m browseModel) canvasView(frame grid.Frame, canvasRows int) string {
	type cell struct {
		ch    string
		style lipgloss.Style
	}
	canvas := make([][]cell, canvasRows)
	for y := range canvas {
		canvas[y] = make([]cell, m.cols)
		for x := range canvas[y] {
			canvas[y][x] = cell{ch: " "}
		}
	}

	scrollTop := frame.Viewport.ScrollTop
	for _, it := range frame.Visible {
		pos, ok := frame.Layout.Positions[it.ID]
		if !ok {
			continue
		}
		x0 := int(pos.X / pxPerCellX)
		x1 := int((pos.X + pos.Width) / pxPerCellX)
		y0 := int((pos.Y - scrollTop) / pxPerCellY)
		y1 := int((pos.Y + pos.Height - scrollTop) / pxPerCellY)

		style, ok := kindStyles[it.Kind]
		if !ok {
			style = styleBlockDefault
		}
		block := "░"
		if m.selection.Selected(it.ID) {
			style = styleBlockSelected
			block = "▓"
		}

		for y := max(y0, 0); y < y1 && y < canvasRows; y++ {
			for x := max(x0, 0); x < x1 && x < m.cols; x++ {
				canvas[y][x] = cell{ch: block, style: style}
			}
		}

		// Item name on the block's first visible row.
		if y0 >= 0 && y0 < canvasRows && it.Name != "" {
			label := []rune(truncateLabel(it.Name, x1-x0-2))
			for i, r := range label {
				x := x0 + 1 + i
				if x >= x1-1 || x >= m.cols {
					break
				}
				canvas[y0][x] = cell{ch: string(r), style: styleItemLabel}
			}
		}
	}

	var b strings.Builder
	for _, row := range canvas {
		for _, c := range row {
			if c.ch == " " {
				b.WriteString(" ")
				continue
			}
			b.WriteString(c.style.Render(c.ch))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m browseModel) statusView(frame grid.Frame) string {
	maxScroll := m.grid.MaxScroll()
	pct := 100.0
	if maxScroll > 0 {
		pct = 100 * frame.Viewport.ScrollTop / maxScroll
	}

	parts := []string{
		fmt.Sprintf("%.0f%%", pct),
		fmt.Sprintf("%d selected", m.selection.Len()),
	}
	if m.fetching {
		parts = append(parts, "loading...")
	} else if m.store.Exhausted() {
		parts = append(parts, "end of library")
	}
	if m.err != nil {
		parts = append(parts, styleIconError.Render("✗ "+m.err.Error()))
	}

	left := StyleDim.Render(strings.Join(parts, " · "))
	help := StyleDim.Render("j/k scroll  f/b page  g/G ends  +/- size  ␣ select  c clear  q quit")
	return left + "  " + help
}

// truncateLabel shortens s to fit width runes, with an ellipsis.
func truncateLabel(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
