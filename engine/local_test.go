package engine

import (
	"bytes"
	"testing"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/game/subtractsquare"
	"minimax/game/tictactoe"
	"minimax/searcher"

	"github.com/stretchr/testify/require"
)

// fixedStrategy always plays the same move, legal or not.
type fixedStrategy struct {
	move int
}

func (f fixedStrategy) FindMove(game.State[int]) (int, metrics.SearchMetric) {
	return f.move, metrics.SearchMetric{Strategy: "fixed"}
}

func TestLocalRun(t *testing.T) {
	t.Run("optimal players on a losing start", func(t *testing.T) {
		start := subtractsquare.New(game.P1, 20)
		e := NewLocal[int]("subtractsquare", start,
			searcher.NewMinimax[int](searcher.WithMetrics()),
			searcher.NewMinimax[int](searcher.WithIterative(), searcher.WithMetrics()),
		)

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.P2, winner, "20 is a losing position for the first mover")
		require.Equal(t, "subtractsquare", gameMetric.Game)
		require.Equal(t, game.P1, gameMetric.StartingPlayer)
		require.Equal(t, winner, gameMetric.Winner)
		require.Equal(t, len(moveMetrics), gameMetric.TotalMoves)
		require.True(t, game.IsOver(e.State()))

		for i, mm := range moveMetrics {
			require.Equal(t, i+1, mm.Step)
			if i%2 == 0 {
				require.Equal(t, game.P1, mm.Player)
				require.Equal(t, "recursive", mm.Strategy)
			} else {
				require.Equal(t, game.P2, mm.Player)
				require.Equal(t, "iterative", mm.Strategy)
			}
			require.Positive(t, mm.Nodes+mm.Terminals)
		}
	})

	t.Run("second player starting", func(t *testing.T) {
		start := subtractsquare.SubtractSquare{Count: 20}.Start(false)
		e := NewLocal[int]("subtractsquare", start, searcher.NewMinimax[int](), searcher.NewMinimax[int]())

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.P2, gameMetric.StartingPlayer)
		require.Equal(t, game.P1, winner)
	})

	t.Run("tic-tac-toe between optimal players is a draw", func(t *testing.T) {
		start := tictactoe.TicTacToe{}.Start(true).Play(4)
		e := NewLocal[int]("tictactoe", start, searcher.NewMinimax[int](searcher.WithIterative()), searcher.NewMinimax[int]())

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		require.Empty(t, winner)
		require.Empty(t, gameMetric.Winner)
		require.True(t, game.IsOver(e.State()), "Board should be full")
	})

	t.Run("illegal move", func(t *testing.T) {
		start := subtractsquare.New(game.P1, 3)
		e := NewLocal[int]("subtractsquare", start, fixedStrategy{move: 4}, fixedStrategy{move: 1})

		_, _, moveMetrics, err := e.Run()

		require.ErrorContains(t, err, "illegal move 4")
		require.Empty(t, moveMetrics)
		require.Equal(t, start, e.State(), "Illegal move should not be applied")
	})

	t.Run("turn limit", func(t *testing.T) {
		start := subtractsquare.New(game.P1, 20)
		e := NewLocal[int]("subtractsquare", start, fixedStrategy{move: 1}, fixedStrategy{move: 1}, WithMaxTurns(3))

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Empty(t, winner)
		require.Len(t, moveMetrics, 3)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Equal(t, 17, e.State().(subtractsquare.State).Count())
	})

	t.Run("output", func(t *testing.T) {
		var out bytes.Buffer
		start := subtractsquare.New(game.P1, 1)
		e := NewLocal[int]("subtractsquare", start, fixedStrategy{move: 1}, fixedStrategy{move: 1}, WithOutput(&out))

		_, _, _, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, "The current value is: 1\np1 played 1\nThe current value is: 0\np1 wins!\n", out.String())
	})
}
