package stonehenge

import (
	"testing"

	"minimax/game"
	"minimax/searcher"

	"github.com/stretchr/testify/require"
)

// play applies moves in order from state.
func play(state game.State[string], moves ...string) State {
	for _, move := range moves {
		state = state.Play(move)
	}
	return state.(State)
}

func TestNew(t *testing.T) {
	t.Run("cells and ley-lines per side length", func(t *testing.T) {
		for side, cells := range map[int]int{1: 3, 2: 7, 3: 12, 4: 18, 5: 25} {
			state := New(game.P1, side)
			require.Equal(t, cells, state.Cells())
			require.Len(t, state.LeyLines(), 3*(side+1))
			require.Len(t, state.LegalMoves(), cells)
		}
	})

	t.Run("panics outside the supported side lengths", func(t *testing.T) {
		require.Panics(t, func() { New(game.P1, 0) })
		require.Panics(t, func() { New(game.P1, 6) })
	})
}

func TestLayout(t *testing.T) {
	l := layouts[2]

	require.Equal(t, [][]int{
		{0, 1}, {2, 3, 4}, {5, 6}, // rows
		{0, 2}, {1, 3, 5}, {4, 6}, // left
		{2, 5}, {0, 3, 6}, {1, 4}, // right
	}, l.lines)

	for side := MinSideLength; side <= MaxSideLength; side++ {
		for cell, through := range layouts[side].linesOf {
			require.Len(t, through, 3, "Every cell lies on one row and two diagonals")
			for _, line := range through {
				require.Contains(t, layouts[side].lines[line], cell)
			}
		}
	}
}

func TestLegalMoves(t *testing.T) {
	t.Run("unclaimed letters in order", func(t *testing.T) {
		require.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, New(game.P1, 2).LegalMoves())
		require.Equal(t, []string{"A", "C", "E", "G"}, play(New(game.P1, 2), "D", "B", "F").LegalMoves())
	})

	t.Run("no moves once the game is won", func(t *testing.T) {
		require.Empty(t, play(New(game.P1, 1), "A").LegalMoves())
	})
}

func TestPlay(t *testing.T) {
	t.Run("any opening move wins at side length 1", func(t *testing.T) {
		for _, move := range []string{"A", "B", "C"} {
			next := play(New(game.P1, 1), move)

			require.Equal(t, game.P1, next.Winner())
			require.Equal(t, game.P2, next.Player())
		}
	})

	t.Run("captures ley-lines at half of their cells", func(t *testing.T) {
		state := New(game.P1, 1)

		next := play(state, "A")

		require.Equal(t, []string{"1", "@", "1", "@", "1", "@"}, next.LeyLines())
		require.Equal(t, []string{"@", "@", "@", "@", "@", "@"}, state.LeyLines(), "Receiver should not change")
	})

	t.Run("captured ley-lines stay captured", func(t *testing.T) {
		state := play(New(game.P1, 2), "D", "B", "F")
		require.Equal(t, "1", state.LeyLines()[2], "p1 holds F on the bottom row")

		state = play(state, "G")

		require.Equal(t, []string{"2", "@", "1", "@", "1", "2", "1", "@", "2"}, state.LeyLines(),
			"p2 also holds half of the bottom row now but p1 keeps it")
		require.Empty(t, state.Winner())
	})

	t.Run("half of the ley-lines wins", func(t *testing.T) {
		state := play(New(game.P1, 2), "D", "B", "F", "G", "C")

		require.Equal(t, game.P1, state.Winner())
		require.Equal(t, game.Loss, game.Outcome[string](state, game.P2))
		require.True(t, game.IsOver[string](state))
	})

	t.Run("panics on a claimed cell", func(t *testing.T) {
		require.Panics(t, func() { play(New(game.P1, 2), "D", "D") })
	})

	t.Run("panics on a letter off the board", func(t *testing.T) {
		require.Panics(t, func() { New(game.P1, 1).Play("D") })
		require.Panics(t, func() { New(game.P1, 1).Play("a") })
	})

	t.Run("panics after the game is won", func(t *testing.T) {
		require.Panics(t, func() { play(New(game.P1, 1), "A", "B") })
	})
}

func TestString(t *testing.T) {
	require.Equal(t,
		"@ - A - B\n      @ - C\nLeft ley-lines: @ @\nRight ley-lines: @ @",
		New(game.P1, 1).String())
	require.Equal(t,
		"1 - 1 - B\n      @ - C\nLeft ley-lines: 1 @\nRight ley-lines: 1 @",
		play(New(game.P1, 1), "A").String())
}

func TestGame(t *testing.T) {
	g := Stonehenge{SideLength: 2}

	t.Run("start sets the first player", func(t *testing.T) {
		require.Equal(t, game.P1, g.Start(true).Player())
		require.Equal(t, game.P2, g.Start(false).Player())
		require.Equal(t, 7, g.Start(true).(State).Cells())
	})

	t.Run("parses letters in either case", func(t *testing.T) {
		move, err := g.ParseMove(" a\n")
		require.NoError(t, err)
		require.Equal(t, "A", move)

		move, err = g.ParseMove("G")
		require.NoError(t, err)
		require.Equal(t, "G", move)
	})

	t.Run("rejects letters off the board", func(t *testing.T) {
		_, err := g.ParseMove("h")
		require.ErrorContains(t, err, "cells are A to G")

		_, err = g.ParseMove("AB")
		require.Error(t, err)

		_, err = g.ParseMove("")
		require.Error(t, err)
	})
}

func TestSearch(t *testing.T) {
	recursive := searcher.NewMinimax[string]()
	iterative := searcher.NewMinimax[string](searcher.WithIterative())

	t.Run("first mover wins at side length 1", func(t *testing.T) {
		start := New(game.P1, 1)

		require.Equal(t, game.Win, recursive.Evaluate(start))
		move, _ := recursive.FindMove(start)
		require.Equal(t, "A", move, "Earliest winning move")
	})

	for _, side := range []int{1, 2} {
		start := New(game.P1, side)
		positions := []game.State[string]{start}
		for _, move := range start.LegalMoves() {
			if next := start.Play(move); !game.IsOver(next) {
				positions = append(positions, next)
			}
		}

		for _, state := range positions {
			require.Equal(t, recursive.Evaluate(state), iterative.Evaluate(state),
				"Evaluators should agree at side length %d on\n%v", side, state)

			recursiveMove, _ := recursive.FindMove(state)
			iterativeMove, _ := iterative.FindMove(state)
			require.Equal(t, recursiveMove, iterativeMove, "Side length %d on\n%v", side, state)
		}
	}
}
