package subtractsquare

import (
	"fmt"
	"strconv"
	"strings"

	"minimax/game"
)

// SubtractSquare implements game.Game. Players take turns subtracting a
// positive square from a count; whoever reaches 0 wins.
type SubtractSquare struct {
	Count int
}

func (g SubtractSquare) Name() string {
	return "subtractsquare"
}

func (g SubtractSquare) Instructions() string {
	return "Players take turns subtracting square numbers from the starting number. " +
		"The winner is the person who subtracts to 0."
}

func (g SubtractSquare) Start(p1Starts bool) game.State[int] {
	player := game.P1
	if !p1Starts {
		player = game.P2
	}
	return New(player, g.Count)
}

func (g SubtractSquare) ParseMove(input string) (int, error) {
	move, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid move %q: %w", input, err)
	}
	return move, nil
}

// State is an immutable subtract-square position.
type State struct {
	player string
	count  int
}

func New(player string, count int) State {
	if count < 0 {
		panic(fmt.Sprintf("negative count %d", count))
	}
	return State{player: player, count: count}
}

func (s State) Count() int {
	return s.count
}

func (s State) Player() string {
	return s.player
}

// LegalMoves returns the squares no greater than the count, smallest first.
func (s State) LegalMoves() []int {
	var moves []int
	for i := 1; i*i <= s.count; i++ {
		moves = append(moves, i*i)
	}
	return moves
}

func (s State) Play(move int) game.State[int] {
	if move <= 0 || move > s.count {
		panic(fmt.Sprintf("illegal move %d from count %d", move, s.count))
	}
	return State{player: game.Opponent(s.player), count: s.count - move}
}

// Winner is the player who subtracted to 0, i.e. the one not to move.
func (s State) Winner() string {
	if s.count == 0 {
		return game.Opponent(s.player)
	}
	return ""
}

func (s State) String() string {
	return fmt.Sprintf("The current value is: %d", s.count)
}
