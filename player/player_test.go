package player

import (
	"bytes"
	"strings"
	"testing"

	"minimax/game"
	"minimax/game/subtractsquare"
	"minimax/game/tictactoe"

	"github.com/stretchr/testify/require"
)

func TestHumanFindMove(t *testing.T) {
	t.Run("reads a legal move", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman[int](subtractsquare.SubtractSquare{Count: 10}, strings.NewReader("4\n"), &out)

		move, metric := h.FindMove(subtractsquare.New(game.P1, 10))

		require.Equal(t, 4, move)
		require.Equal(t, "human", metric.Strategy)
		require.Equal(t, "Enter a move: ", out.String())
	})

	t.Run("re-prompts until the move is legal", func(t *testing.T) {
		var out bytes.Buffer
		input := strings.NewReader("two\n2\n 1 \n")
		h := NewHuman[int](subtractsquare.SubtractSquare{Count: 10}, input, &out)

		move, _ := h.FindMove(subtractsquare.New(game.P1, 10))

		require.Equal(t, 1, move)
		require.Equal(t, 3, strings.Count(out.String(), "Enter a move: "))
		require.Contains(t, out.String(), `invalid move "two"`)
		require.Contains(t, out.String(), "Illegal move: 2", "2 is not a square")
	})

	t.Run("rejects occupied cells", func(t *testing.T) {
		var out bytes.Buffer
		state := tictactoe.TicTacToe{}.Start(true).Play(4)
		h := NewHuman[int](tictactoe.TicTacToe{}, strings.NewReader("4\n9\n0\n"), &out)

		move, _ := h.FindMove(state)

		require.Equal(t, 0, move)
		require.Contains(t, out.String(), "Illegal move: 4")
		require.Contains(t, out.String(), "cell 9 out of range")
	})

	t.Run("panics when input ends", func(t *testing.T) {
		var out bytes.Buffer
		h := NewHuman[int](subtractsquare.SubtractSquare{Count: 10}, strings.NewReader("3\n"), &out)

		require.PanicsWithValue(t, ErrInputClosed, func() { h.FindMove(subtractsquare.New(game.P1, 10)) })
	})

	t.Run("panics on a terminal state", func(t *testing.T) {
		h := NewHuman[int](subtractsquare.SubtractSquare{}, strings.NewReader(""), &bytes.Buffer{})

		require.Panics(t, func() { h.FindMove(subtractsquare.New(game.P1, 0)) })
	})
}
