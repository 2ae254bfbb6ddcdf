package searcher

import (
	"minimax/experiments/metrics"
	"minimax/game"

	"github.com/rs/zerolog/log"
)

// Minimax finds game-theoretically optimal moves by searching the entire game
// tree below the current state. Among equally good moves it picks the first in
// enumeration order.
type Minimax[M comparable] struct {
	iterative bool
	metrics   metrics.Collector
}

func NewMinimax[M comparable](options ...Option) *Minimax[M] {
	c := newConfig(options)
	return &Minimax[M]{
		iterative: c.iterative,
		metrics:   c.collector(),
	}
}

func (m *Minimax[M]) Name() string {
	if m.iterative {
		return "iterative"
	}
	return "recursive"
}

// FindMove returns the optimal move for the player to move in state. Calling
// it on a terminal state panics.
func (m *Minimax[M]) FindMove(state game.State[M]) (M, metrics.SearchMetric) {
	if game.IsOver(state) {
		panic("cannot find a move from a terminal state")
	}

	root, scoreOf := m.search(state)
	best, value := negamax(root, scoreOf)
	metric := m.metrics.Complete()

	log.Debug().Msgf("%s minimax picked move %v with value %d for %s after %d nodes",
		m.Name(), root.moves[best], value, state.Player(), metric.Nodes+metric.Terminals)
	return root.moves[best], metric
}

// Evaluate returns the value of state for its player to move under optimal
// play by both sides: 1 for a win, -1 for a loss and 0 for a draw.
func (m *Minimax[M]) Evaluate(state game.State[M]) game.Score {
	root, _ := m.search(state)
	m.metrics.Complete()
	return root.mustScore()
}

// search scores the whole tree rooted at state. The returned lookup yields the
// score of any node in that tree.
func (m *Minimax[M]) search(state game.State[M]) (*node[M], func(*node[M]) game.Score) {
	root := newNode(state)
	m.metrics.Start(m.Name())

	if !m.iterative {
		recurse(root, 1, m.metrics)
		return root, (*node[M]).mustScore
	}

	scored := iterate(root, m.metrics)
	return root, func(n *node[M]) game.Score {
		score, ok := scored[n]
		if !ok {
			panic("node was never scored")
		}
		return score
	}
}
