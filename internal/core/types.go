// Package core defines domain models for the portfolio canvas.
package core

import "strings"

// Category classifies a project tile.
type Category int

const (
	Photography    Category = iota // Still work
	Cinematography                 // Camera work on moving image
	Direction                      // Directed pieces
	Mixed                          // Placeholder taxonomy: unclassified
	Photo                          // Placeholder taxonomy: still
	Video                          // Placeholder taxonomy: moving

	// CategoryAll is the filter sentinel. No tile carries it.
	CategoryAll Category = -1
)

func (c Category) String() string {
	if c == CategoryAll {
		return "All"
	}
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

var categoryNames = [...]string{"Photography", "Cinematography", "Direction", "Mixed", "Photo", "Video"}

// ProjectCategories are the categories offered as filters for real content.
func ProjectCategories() []Category {
	return []Category{Photography, Cinematography, Direction}
}

// ParseCategory maps a content type field to a Category.
// Matching is case-insensitive; unknown values map to Mixed.
func ParseCategory(s string) Category {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "photography":
		return Photography
	case "cinematography":
		return Cinematography
	case "direction":
		return Direction
	case "photo":
		return Photo
	case "video":
		return Video
	case "all":
		return CategoryAll
	default:
		return Mixed
	}
}

// InputSource identifies where a pan delta came from.
type InputSource int

const (
	SourceWheel InputSource = iota
	SourceDrag
	SourceTouch
)

func (s InputSource) String() string {
	return [...]string{"wheel", "drag", "touch"}[s]
}

// Device is the device class used to pick layout and zoom constants.
type Device struct {
	Mobile bool
}

func (d Device) String() string {
	if d.Mobile {
		return "mobile"
	}
	return "desktop"
}

// DeviceFor classifies a viewport width against the mobile breakpoint.
func DeviceFor(viewportWidth, breakpoint float64) Device {
	return Device{Mobile: viewportWidth > 0 && viewportWidth < breakpoint}
}
