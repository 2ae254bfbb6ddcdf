package searcher

import (
	"minimax/experiments/metrics"
	"minimax/game"
)

// RoughOutcome looks at most two moves ahead and picks the move leaving the
// opponent with the worst rough outcome. It is better than random but worse
// than minimax.
type RoughOutcome[M comparable] struct {
	metrics metrics.Collector
}

func NewRoughOutcome[M comparable](options ...Option) *RoughOutcome[M] {
	return &RoughOutcome[M]{metrics: newConfig(options).collector()}
}

func (r *RoughOutcome[M]) Name() string {
	return "rough"
}

func (r *RoughOutcome[M]) FindMove(state game.State[M]) (M, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("cannot find a move from a terminal state")
	}

	r.metrics.Start(r.Name())
	best := 0
	bestScore := game.Loss - 1
	for i, move := range moves {
		// A state that's bad for the opponent is good for us
		if score := -r.roughOutcome(state.Play(move)); score > bestScore {
			bestScore = score
			best = i
		}
	}
	return moves[best], r.metrics.Complete()
}

// roughOutcome guesses the value of s for its player to move:
//   - a terminal state scores its payoff,
//   - a move that wins on the spot scores 1,
//   - if every move lets the opponent win immediately it scores -1,
//   - anything else scores 0.
func (r *RoughOutcome[M]) roughOutcome(s game.State[M]) game.Score {
	moves := s.LegalMoves()
	if len(moves) == 0 {
		r.metrics.AddTerminal()
		return game.Outcome(s, s.Player())
	}
	r.metrics.AddNode()

	player := s.Player()
	allLose := true
	for _, move := range moves {
		next := s.Play(move)
		if game.IsOver(next) {
			switch game.Outcome(next, player) {
			case game.Win:
				return game.Win
			case game.Draw:
				allLose = false
			}
			continue
		}
		if !r.winsImmediately(next) {
			allLose = false
		}
	}

	if allLose {
		return game.Loss
	}
	return game.Draw
}

// winsImmediately reports whether the player to move in s has a move that ends
// the game in their favour.
func (r *RoughOutcome[M]) winsImmediately(s game.State[M]) bool {
	player := s.Player()
	for _, move := range s.LegalMoves() {
		next := s.Play(move)
		if game.IsOver(next) && game.Outcome(next, player) == game.Win {
			return true
		}
	}
	return false
}
