package subtractsquare

import (
	"testing"

	"minimax/game"

	"github.com/stretchr/testify/require"
)

func TestLegalMoves(t *testing.T) {
	t.Run("squares up to the count in ascending order", func(t *testing.T) {
		require.Equal(t, []int{1, 4, 9, 16, 25}, New(game.P1, 30).LegalMoves())
		require.Equal(t, []int{1, 4}, New(game.P1, 4).LegalMoves())
		require.Equal(t, []int{1}, New(game.P1, 1).LegalMoves())
	})

	t.Run("no moves at zero", func(t *testing.T) {
		require.Empty(t, New(game.P1, 0).LegalMoves())
	})
}

func TestPlay(t *testing.T) {
	t.Run("subtracts the move and passes the turn", func(t *testing.T) {
		state := New(game.P1, 4)

		next := state.Play(4).(State)

		require.Equal(t, 0, next.Count())
		require.Equal(t, game.P2, next.Player())
		require.Equal(t, 4, state.Count(), "Receiver should not change")
	})

	t.Run("panics on a move larger than the count", func(t *testing.T) {
		require.Panics(t, func() { New(game.P1, 3).Play(4) })
	})
}

func TestWinner(t *testing.T) {
	require.Equal(t, "", New(game.P1, 5).Winner(), "Game in progress has no winner")
	require.Equal(t, game.P1, New(game.P2, 0).Winner(), "Player who subtracted to 0 wins")
	require.True(t, game.IsWinner[int](New(game.P2, 0), game.P1))
}

func TestGame(t *testing.T) {
	g := SubtractSquare{Count: 20}

	t.Run("start sets the first player", func(t *testing.T) {
		require.Equal(t, game.P1, g.Start(true).Player())
		require.Equal(t, game.P2, g.Start(false).Player())
		require.Equal(t, 20, g.Start(true).(State).Count())
	})

	t.Run("parses numeric moves", func(t *testing.T) {
		move, err := g.ParseMove(" 9\n")
		require.NoError(t, err)
		require.Equal(t, 9, move)

		_, err = g.ParseMove("nine")
		require.Error(t, err)
	})
}
