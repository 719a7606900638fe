package draw

import (
	"image"
	"testing"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/vis/state"
)

func TestCategoryColorDistinct(t *testing.T) {
	seen := map[[3]uint8]core.Category{}
	for _, c := range core.ProjectCategories() {
		col := CategoryColor(c)
		key := [3]uint8{col.R, col.G, col.B}
		if prev, ok := seen[key]; ok {
			t.Errorf("%v and %v share a color", prev, c)
		}
		seen[key] = c
	}
	if CategoryColor(core.Mixed) != ColorPlaceholder {
		t.Errorf("Mixed should use the placeholder color")
	}
}

func TestScreenRectCoversFractionalBounds(t *testing.T) {
	got := screenRect(core.Rect{X: 10.4, Y: -2.5, W: 20.2, H: 5})
	want := image.Rect(10, -3, 31, 3)
	if got != want {
		t.Errorf("screenRect = %v, want %v", got, want)
	}
}

func TestLighten(t *testing.T) {
	c := lighten(ColorPlaceholder, 1)
	if c.R != 255 || c.G != 255 || c.B != 255 || c.A != ColorPlaceholder.A {
		t.Errorf("full lighten = %v", c)
	}
	if lighten(ColorPlaceholder, 0) != ColorPlaceholder {
		t.Errorf("zero lighten changed the color")
	}
}

func TestShowsPlayMarker(t *testing.T) {
	video := &core.Media{Kind: core.MediaVideo, URL: "https://cdn/x.mp4"}
	still := &core.Media{Kind: core.MediaImage, URL: "https://cdn/x.jpg"}
	tests := []struct {
		name string
		view state.TileView
		want bool
	}{
		{"visible video", state.TileView{TileDescriptor: core.TileDescriptor{Media: video}, Visible: true}, true},
		{"hidden video", state.TileView{TileDescriptor: core.TileDescriptor{Media: video}}, false},
		{"image", state.TileView{TileDescriptor: core.TileDescriptor{Media: still}, Visible: true}, false},
		{"placeholder", state.TileView{Visible: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := showsPlayMarker(tt.view); got != tt.want {
				t.Errorf("showsPlayMarker() = %v, want %v", got, tt.want)
			}
		})
	}
}
