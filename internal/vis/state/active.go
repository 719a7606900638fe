package state

// ActiveTile latches the focused tile until enough pan distance accrues.
type ActiveTile struct {
	ClearThreshold float64

	index    int
	active   bool
	distance float64
}

// NewActiveTile creates an empty tracker.
func NewActiveTile(clearThreshold float64) *ActiveTile {
	return &ActiveTile{ClearThreshold: clearThreshold}
}

// Set activates tile index and resets the distance counter.
func (a *ActiveTile) Set(index int) {
	a.index, a.active = index, true
	a.distance = 0
}

// Clear deactivates the current tile.
func (a *ActiveTile) Clear() {
	a.index, a.active = 0, false
	a.distance = 0
}

// Index returns the active tile, if any.
func (a *ActiveTile) Index() (int, bool) {
	return a.index, a.active
}

// Is reports whether index is the active tile.
func (a *ActiveTile) Is(index int) bool {
	return a.active && a.index == index
}

// Accumulate adds pan distance and reports whether it cleared the tile.
func (a *ActiveTile) Accumulate(d float64) bool {
	if !a.active || !(d > 0) {
		return false
	}
	a.distance += d
	if a.distance >= a.ClearThreshold {
		a.Clear()
		return true
	}
	return false
}
