package content

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
	"github.com/elektrokombinacija/portfolio-canvas/internal/logutil"
)

// ProbeDimensions fills Width and Height of local images that carry neither
// dimensions nor an explicit aspect ratio. At most limit files are read at
// once. An unreadable file is logged and left as is; only cancellation of ctx
// is returned as an error.
func ProbeDimensions(ctx context.Context, items []core.Content, limit int) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range items {
		m := items[i].Media
		if !needsProbe(m) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			w, h, err := ImageSize(m.File)
			if err != nil {
				logutil.Warnf("content: %s: %v", items[i].ID, err)
				return nil
			}
			m.Width, m.Height = w, h
			return nil
		})
	}
	return g.Wait()
}

func needsProbe(m *core.Media) bool {
	return m != nil && m.Kind != core.MediaVideo && m.File != "" &&
		m.AspectRatio <= 0 && (m.Width <= 0 || m.Height <= 0)
}

// ImageSize reads the pixel size from an image header.
func ImageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}
