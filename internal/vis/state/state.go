// Package state manages the canvas presentation state: the tile layout, the
// category filter, the zoom stage machine and the active tile latch.
package state

import (
	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/layout"
)

// State holds the tiles of the current layout pass and the filter applied to
// them.
type State struct {
	Device core.Device
	Tiles  []core.TileDescriptor
	Grid   layout.Grid
	Filter *Filter

	// Live is true once real content replaced the placeholders.
	Live bool
}

// NewState creates an empty state for a device class.
func NewState(device core.Device) *State {
	return &State{
		Device: device,
		Filter: NewFilter(),
	}
}

// SetLayout replaces the tiles and their placement. The previous slices are
// never modified.
func (s *State) SetLayout(device core.Device, tiles []core.TileDescriptor, grid layout.Grid) {
	s.Device = device
	s.Tiles = tiles
	s.Grid = grid
}

// Rebuild runs a layout pass for items and places the tiles for the viewport
// width. Empty items give placeholder tiles.
func (s *State) Rebuild(items []core.Content, device core.Device, p config.Profile, viewportWidth float64) {
	tiles := layout.Build(items, device, layout.OptionsFor(p))
	grid := layout.Place(tiles, layout.MetricsFor(p, viewportWidth))
	s.SetLayout(device, tiles, grid)
	s.Live = len(items) > 0
}

// Views returns the tiles with visibility computed from the filter.
func (s *State) Views() []TileView {
	return ComputeVisibility(s.Tiles, s.Filter.Active())
}

// Categories returns the filter choices for the current tiles. Live content
// offers the project categories; placeholder tiles offer only the categories
// they carry, in order of first appearance.
func (s *State) Categories() []core.Category {
	if s.Live {
		return core.ProjectCategories()
	}
	var out []core.Category
	seen := make(map[core.Category]bool)
	for _, t := range s.Tiles {
		if !seen[t.Category] {
			seen[t.Category] = true
			out = append(out, t.Category)
		}
	}
	return out
}

// HitTest returns the visible tile under a world-space point. Tiles hidden by
// the filter do not take pointer input.
func (s *State) HitTest(world core.Vec) (int, bool) {
	i, ok := s.Grid.HitTest(world)
	if !ok || i >= len(s.Tiles) {
		return -1, false
	}
	if !s.Filter.Includes(s.Tiles[i].Category) {
		return -1, false
	}
	return i, true
}

// Rect returns the world rectangle of tile i.
func (s *State) Rect(i int) (core.Rect, bool) {
	if i < 0 || i >= len(s.Grid.Rects) {
		return core.Rect{}, false
	}
	return s.Grid.Rects[i], true
}
