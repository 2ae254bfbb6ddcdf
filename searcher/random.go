package searcher

import (
	"minimax/experiments/metrics"
	"minimax/game"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move. It is the baseline opponent in
// experiments.
type Random[M comparable] struct {
	rng     *rand.Rand
	metrics metrics.Collector
}

func NewRandom[M comparable](seed uint64, options ...Option) *Random[M] {
	return &Random[M]{
		rng:     rand.New(rand.NewSource(seed)),
		metrics: newConfig(options).collector(),
	}
}

func (r *Random[M]) Name() string {
	return "random"
}

func (r *Random[M]) FindMove(state game.State[M]) (M, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("cannot find a move from a terminal state")
	}

	r.metrics.Start(r.Name())
	move := moves[r.rng.Intn(len(moves))]
	return move, r.metrics.Complete()
}
