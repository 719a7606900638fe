// Package layout builds the tile grid of the canvas: which item goes in
// which cell, with what aspect ratio, and where each cell sits in world space.
package layout

import (
	"hash/fnv"
	"math/rand"
	"sort"

	"github.com/elektrokombinacija/portfolio-canvas/internal/config"
	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// PlaceholderRatios is the aspect-ratio cycle used when there is no content.
var PlaceholderRatios = []core.Ratio{core.Square, core.Portrait, core.Landscape, core.Widescreen}

// DefaultRatio is used when an item carries no usable media metadata.
var DefaultRatio = core.Square

// Options controls how many tiles a layout pass produces.
type Options struct {
	MinTiles int  // Minimum tile count (placeholder count when there is no content)
	Grid     bool // Produce exactly rows x Columns tiles
	Columns  int
	MinRows  int
}

// OptionsFor derives build options from a device profile.
func OptionsFor(p config.Profile) Options {
	return Options{
		MinTiles: p.MinTiles,
		Grid:     p.GridMode,
		Columns:  p.Columns,
		MinRows:  p.MinRows,
	}
}

// Build produces the tile descriptors for one layout pass. The same items,
// device and options always yield the same slice.
func Build(items []core.Content, device core.Device, opts Options) []core.TileDescriptor {
	if len(items) == 0 {
		n := opts.MinTiles
		if n < 0 {
			n = 0
		}
		return placeholders(n)
	}

	ordered := orderByHash(items)
	n := opts.count(len(ordered))
	seed := seedFor(ordered, device)

	tiles := make([]core.TileDescriptor, 0, n)
	prev := ""
	for rep := 0; len(tiles) < n; rep++ {
		cycle := ordered
		if rep > 0 {
			cycle = permute(ordered, seed+int64(rep), prev)
		}
		for _, item := range cycle {
			if len(tiles) == n {
				break
			}
			tiles = append(tiles, descriptorFor(len(tiles), item))
			prev = item.ID
		}
	}
	return tiles
}

// count returns the number of tiles for itemCount distinct items.
func (o Options) count(itemCount int) int {
	minTiles := o.MinTiles
	if minTiles < 0 {
		minTiles = 0
	}
	if !o.Grid || o.Columns <= 0 {
		if itemCount > minTiles {
			return itemCount
		}
		return minTiles
	}

	rows := (itemCount + o.Columns - 1) / o.Columns
	if rows < o.MinRows {
		rows = o.MinRows
	}
	return rows * o.Columns
}

func placeholders(n int) []core.TileDescriptor {
	tiles := make([]core.TileDescriptor, n)
	for i := range tiles {
		r := PlaceholderRatios[i%len(PlaceholderRatios)]
		tiles[i] = core.TileDescriptor{
			Index:       i,
			Category:    core.Mixed,
			AspectRatio: r,
			WidthFactor: r.Float(),
		}
	}
	return tiles
}

func descriptorFor(index int, item core.Content) core.TileDescriptor {
	r := AspectRatioOf(item.Media)
	return core.TileDescriptor{
		Index:       index,
		Category:    core.ParseCategory(item.Type),
		AspectRatio: r,
		WidthFactor: r.Float(),
		Media:       item.Media,
		SourceID:    item.ID,
	}
}

// AspectRatioOf resolves the aspect ratio for a media bundle: an external
// video link is always 16:9, then the explicit ratio, then width/height,
// then DefaultRatio.
func AspectRatioOf(m *core.Media) core.Ratio {
	if m == nil {
		return DefaultRatio
	}
	if m.IsExternalVideo() {
		return core.Widescreen
	}
	if r := core.ApproxRatio(m.AspectRatio, 100); !r.IsZero() {
		return r
	}
	if m.Width > 0 && m.Height > 0 {
		return core.Ratio{W: m.Width, H: m.Height}.Reduce()
	}
	return DefaultRatio
}

// orderByHash sorts a copy of items by the FNV-1a hash of their ID so the
// arrangement is independent of authoring order.
func orderByHash(items []core.Content) []core.Content {
	ordered := make([]core.Content, len(items))
	copy(ordered, items)

	keys := make(map[string]uint64, len(ordered))
	for _, it := range ordered {
		keys[it.ID] = hashID(it.ID)
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		ki, kj := keys[ordered[i].ID], keys[ordered[j].ID]
		if ki != kj {
			return ki < kj
		}
		return ordered[i].ID < ordered[j].ID
	})
	return ordered
}

func hashID(id string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(id))
	return h.Sum64()
}

func seedFor(ordered []core.Content, device core.Device) int64 {
	h := fnv.New64a()
	for _, it := range ordered {
		h.Write([]byte(it.ID))
		h.Write([]byte{0})
	}
	h.Write([]byte(device.String()))
	return int64(h.Sum64() >> 1)
}

// permute returns a seeded shuffle of items. The first element is swapped
// away when it equals prev so a cycle boundary never repeats an item.
func permute(items []core.Content, seed int64, prev string) []core.Content {
	out := make([]core.Content, len(items))
	copy(out, items)

	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	if len(out) > 1 && out[0].ID == prev {
		out[0], out[len(out)-1] = out[len(out)-1], out[0]
	}
	return out
}
