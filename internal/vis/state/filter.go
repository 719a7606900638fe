package state

import (
	"sort"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// TileView is a tile plus its filter eligibility.
type TileView struct {
	core.TileDescriptor
	Visible bool // Full opacity and eligible for pointer input
}

// ComputeVisibility marks each tile visible or not for the active category set.
// An empty set, or one containing CategoryAll, shows everything. The result has
// the same length and order as tiles; tiles is not modified.
func ComputeVisibility(tiles []core.TileDescriptor, active []core.Category) []TileView {
	all := len(active) == 0
	set := make(map[core.Category]bool, len(active))
	for _, c := range active {
		if c == core.CategoryAll {
			all = true
		}
		set[c] = true
	}

	views := make([]TileView, len(tiles))
	for i, t := range tiles {
		views[i] = TileView{TileDescriptor: t, Visible: all || set[t.Category]}
	}
	return views
}

// Filter is the active category filter set.
type Filter struct {
	active map[core.Category]bool
}

// NewFilter creates a filter with nothing selected (everything visible).
func NewFilter() *Filter {
	return &Filter{active: make(map[core.Category]bool)}
}

// Toggle flips cat in the set. Toggling CategoryAll resets the filter.
func (f *Filter) Toggle(cat core.Category) {
	if cat == core.CategoryAll {
		f.Reset()
		return
	}
	if f.active[cat] {
		delete(f.active, cat)
	} else {
		f.active[cat] = true
	}
}

// Set replaces the active set.
func (f *Filter) Set(cats ...core.Category) {
	f.Reset()
	for _, c := range cats {
		if c == core.CategoryAll {
			f.Reset()
			return
		}
		f.active[c] = true
	}
}

// Reset clears the filter.
func (f *Filter) Reset() {
	f.active = make(map[core.Category]bool)
}

// Active returns the selected categories in declaration order.
func (f *Filter) Active() []core.Category {
	cats := make([]core.Category, 0, len(f.active))
	for c := range f.active {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })
	return cats
}

// Includes reports whether tiles of cat are currently shown.
func (f *Filter) Includes(cat core.Category) bool {
	return len(f.active) == 0 || f.active[cat]
}

// Selected reports whether cat was explicitly chosen.
func (f *Filter) Selected(cat core.Category) bool {
	return f.active[cat]
}
