package searcher

import (
	"fmt"

	"minimax/experiments/metrics"
	"minimax/game"
)

// Strategy picks a move for the player to move in a non-terminal state.
type Strategy[M comparable] interface {
	FindMove(state game.State[M]) (M, metrics.SearchMetric)
}

type Option func(c *config)

type config struct {
	iterative bool
	collect   bool
}

// WithIterative evaluates with an explicit stack instead of native recursion.
func WithIterative() Option {
	return func(c *config) {
		c.iterative = true
	}
}

func WithMetrics() Option {
	return func(c *config) {
		c.collect = true
	}
}

func newConfig(options []Option) config {
	c := config{}
	for _, option := range options {
		option(&c)
	}
	return c
}

func (c config) collector() metrics.Collector {
	if c.collect {
		return metrics.NewCollector()
	}
	return metrics.NewDummyCollector()
}

// Names of the strategies New can build.
var Names = []string{"recursive", "iterative", "rough", "random"}

// New builds the strategy with the given name. The seed is only used by the
// random strategy.
func New[M comparable](name string, seed uint64, options ...Option) (Strategy[M], error) {
	switch name {
	case "recursive":
		return NewMinimax[M](options...), nil
	case "iterative":
		return NewMinimax[M](append(options[:len(options):len(options)], WithIterative())...), nil
	case "rough":
		return NewRoughOutcome[M](options...), nil
	case "random":
		return NewRandom[M](seed, options...), nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}
