package guard

import (
	"context"
	"sync"

	domain "github.com/BruksfildServices01/gamers-hub/internal/domain/booking"
)

// LocalGuard is the single-process fallback used when no redis is configured.
type LocalGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

func NewLocalGuard() *LocalGuard {
	return &LocalGuard{held: make(map[string]struct{})}
}

func (g *LocalGuard) Acquire(_ context.Context, key string) (func(), bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, busy := g.held[key]; busy {
		return nil, false, nil
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, true, nil
}

var _ domain.Guard = (*LocalGuard)(nil)
