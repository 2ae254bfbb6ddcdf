package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/utils"
)

// ErrInputClosed is the panic value of FindMove when the input ends before a
// legal move was read.
var ErrInputClosed = errors.New("input closed before a legal move was entered")

// Human is a strategy that asks a person for every move.
type Human[M comparable] struct {
	game    game.Game[M]
	scanner *bufio.Scanner
	out     io.Writer
	metrics metrics.Collector
}

// NewHuman reads moves line by line from in and writes prompts to out.
func NewHuman[M comparable](g game.Game[M], in io.Reader, out io.Writer) *Human[M] {
	return &Human[M]{
		game:    g,
		scanner: bufio.NewScanner(in),
		out:     out,
		metrics: metrics.NewCollector(),
	}
}

func (h *Human[M]) Name() string {
	return "human"
}

// FindMove prompts until the input parses to a legal move.
func (h *Human[M]) FindMove(state game.State[M]) (M, metrics.SearchMetric) {
	moves := state.LegalMoves()
	if len(moves) == 0 {
		panic("cannot find a move from a terminal state")
	}

	h.metrics.Start(h.Name())
	for {
		fmt.Fprint(h.out, "Enter a move: ")
		if !h.scanner.Scan() {
			if err := h.scanner.Err(); err != nil {
				panic(fmt.Errorf("%w: %w", ErrInputClosed, err))
			}
			panic(ErrInputClosed)
		}

		move, err := h.game.ParseMove(h.scanner.Text())
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if utils.FindIndex(moves, move) < 0 {
			fmt.Fprintf(h.out, "Illegal move: %v\n", move)
			continue
		}
		return move, h.metrics.Complete()
	}
}
