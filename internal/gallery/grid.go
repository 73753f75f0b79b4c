package gallery

import "github.com/i-asim/my-portfolio/internal/apperr"

// LoadState tracks the lifecycle of a grid cell's media.
type LoadState int

const (
	Loading LoadState = iota
	Ready
	Failed
)

// Viewport breakpoints, in CSS pixels, below which the effective
// column count collapses.
const (
	breakpointNarrow = 640
	breakpointMedium = 1024
	breakpointWide   = 1280
)

// Grid is the gallery grid model. Each cell tracks its own load state
// so one failed image never blocks its neighbours.
type Grid struct {
	gallery *Gallery
	states  []LoadState
}

// NewGrid builds the grid model for a validated gallery.
func NewGrid(g *Gallery) *Grid {
	return &Grid{gallery: g, states: make([]LoadState, len(g.Items))}
}

// Items returns the ordered item set.
func (g *Grid) Items() []Item { return g.gallery.Items }

// Config returns the display configuration.
func (g *Grid) Config() Config { return g.gallery.Config }

// Columns reports the effective column count for a viewport width.
// Narrow viewports collapse toward a single column; the configured
// count is an upper bound, never exceeded.
func (g *Grid) Columns(viewportWidth int) int {
	cols := g.gallery.Config.Columns
	switch {
	case viewportWidth < breakpointNarrow:
		return 1
	case viewportWidth < breakpointMedium:
		return min(cols, 2)
	case viewportWidth < breakpointWide:
		return min(cols, 3)
	default:
		return cols
	}
}

// State returns the load state of the item at i.
func (g *Grid) State(i int) LoadState {
	if i < 0 || i >= len(g.states) {
		return Failed
	}
	return g.states[i]
}

// MediaReady marks the item at i as fully loaded.
func (g *Grid) MediaReady(i int) {
	if i >= 0 && i < len(g.states) {
		g.states[i] = Ready
	}
}

// MediaFailed marks the item at i as failed. The cell renders a
// placeholder; the rest of the grid is unaffected.
func (g *Grid) MediaFailed(i int) {
	if i >= 0 && i < len(g.states) {
		g.states[i] = Failed
	}
}

// Open starts a lightbox session at item i. It fails when the
// configuration disables the lightbox or the index is out of range.
func (g *Grid) Open(i int, opts ...SessionOption) (*Session, error) {
	if !g.gallery.Config.EnableLightbox {
		return nil, apperr.ErrValidation
	}
	if i < 0 || i >= len(g.gallery.Items) {
		return nil, apperr.ErrNotFound
	}
	s := NewSession(g.gallery.Items, opts...)
	s.Open(i)
	return s, nil
}
