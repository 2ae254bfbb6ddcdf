package game

import "fmt"

// Score is the game-theoretic value of a state from one player's perspective.
type Score int

const (
	Loss Score = -1
	Draw Score = 0
	Win  Score = 1
)

// IsOver reports whether no legal moves remain.
func IsOver[M comparable](s State[M]) bool {
	return len(s.LegalMoves()) == 0
}

// IsWinner reports whether player has won s. A game in progress has no winner.
func IsWinner[M comparable](s State[M], player string) bool {
	return IsOver(s) && s.Winner() == player
}

// Outcome scores a terminal state from player's perspective.
//
// Under normal play the mover of a terminal state has lost, so its winner is
// the opponent. A terminal state without a winner is a draw.
func Outcome[M comparable](s State[M], player string) Score {
	if !IsOver(s) {
		panic(fmt.Sprintf("outcome of a state with legal moves for player %s", player))
	}

	switch s.Winner() {
	case player:
		return Win
	case "":
		return Draw
	default:
		return Loss
	}
}
