package content

import (
	"context"
	"time"

	"github.com/elektrokombinacija/portfolio-canvas/internal/core"
)

// Result is one completed store query.
type Result struct {
	Items   []core.Content
	Elapsed time.Duration
}

// Load queries s in the background. The returned channel delivers exactly
// one Result and is then closed.
func Load(ctx context.Context, s Store) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		start := time.Now()
		items := s.Projects(ctx)
		ch <- Result{Items: items, Elapsed: time.Since(start)}
	}()
	return ch
}
