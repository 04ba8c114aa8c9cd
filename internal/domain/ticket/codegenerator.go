package ticket

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// CodeGenerator produces the human-readable ticket codes used as external
// identifiers (e.g. "TICK-2025-0001").
type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultCodeGenerator issues codes from a process-local counter, one
// sequence per calendar year. Seed the counter from the store's highest
// issued code so restarts do not reuse codes.
type DefaultCodeGenerator struct {
	mu      sync.Mutex
	year    int
	counter int
}

func NewDefaultCodeGenerator(seed int) *DefaultCodeGenerator {
	return &DefaultCodeGenerator{
		year:    time.Now().UTC().Year(),
		counter: seed,
	}
}

func (g *DefaultCodeGenerator) Generate(ctx context.Context) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	year := time.Now().UTC().Year()
	if year != g.year {
		g.year = year
		g.counter = 0
	}

	g.counter++
	return fmt.Sprintf("TICK-%d-%04d", g.year, g.counter), nil
}
