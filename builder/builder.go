package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlrank/digraph"
)

// Sentinel errors for fixture construction.
var (
	// ErrTooFewVertices indicates a topology was requested on fewer
	// vertices than it needs.
	ErrTooFewVertices = errors.New("builder: too few vertices for topology")

	// ErrInvalidProbability indicates a probability outside [0, 1].
	ErrInvalidProbability = errors.New("builder: probability must be in [0,1]")

	// ErrNilConstructor indicates a nil Constructor was passed to Build.
	ErrNilConstructor = errors.New("builder: nil constructor")
)

// Constructor applies a deterministic topology to a digraph.Builder.
// Constructors MUST validate parameters early, return sentinel errors
// rather than panic, and emit edges in a stable order.
type Constructor func(b *digraph.Builder) error

// Build creates a digraph.Builder for n vertices, applies all
// constructors in order, and freezes the result. Any constructor error
// is wrapped with "Build: %w" and returned immediately; no partial
// cleanup is attempted.
func Build(n int, cons ...Constructor) (*digraph.Digraph, error) {
	b, err := digraph.NewBuilder(n)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err = fn(b); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return b.Build(), nil
}
