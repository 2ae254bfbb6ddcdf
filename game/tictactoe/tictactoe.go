package tictactoe

import (
	"fmt"
	"strconv"
	"strings"

	"minimax/game"
)

// TicTacToe implements game.Game. p1 plays X and p2 plays O.
type TicTacToe struct{}

func (t TicTacToe) Name() string {
	return "tictactoe"
}

func (t TicTacToe) Instructions() string {
	return "Players take turns marking empty cells 0-8, row by row. " +
		"Three marks in a row, column or diagonal win; a full board is a draw."
}

func (t TicTacToe) Start(p1Starts bool) game.State[int] {
	if p1Starts {
		return State{turn: 0}
	}
	return State{turn: 1}
}

func (t TicTacToe) ParseMove(input string) (int, error) {
	cell, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("invalid cell %q: %w", input, err)
	}
	if cell < 0 || cell > 8 {
		return 0, fmt.Errorf("cell %d out of range", cell)
	}
	return cell, nil
}

var players = [2]string{game.P1, game.P2}

var winLines = [][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8}, // rows
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8}, // cols
	{0, 4, 8}, {2, 4, 6}, // diags
}

// State is an immutable board. Board values are 0=empty, 1=p1(X), 2=p2(O).
type State struct {
	board [9]int
	turn  int // index into players
}

// FromBoard builds a state from a board and the player to move.
func FromBoard(board [9]int, player string) State {
	turn := 0
	if player == game.P2 {
		turn = 1
	}
	return State{board: board, turn: turn}
}

func (s State) Board() [9]int {
	return s.board
}

func (s State) Player() string {
	return players[s.turn]
}

func (s State) LegalMoves() []int {
	if s.winnerIndex() >= 0 {
		return nil
	}
	var moves []int
	for i, v := range s.board {
		if v == 0 {
			moves = append(moves, i)
		}
	}
	return moves
}

func (s State) Play(cell int) game.State[int] {
	if cell < 0 || cell > 8 || s.board[cell] != 0 {
		panic(fmt.Sprintf("illegal move on cell %d", cell))
	}
	next := s // arrays are copied by value
	next.board[cell] = s.turn + 1
	next.turn = 1 - s.turn
	return next
}

func (s State) Winner() string {
	if i := s.winnerIndex(); i >= 0 {
		return players[i]
	}
	return ""
}

func (s State) winnerIndex() int {
	for _, line := range winLines {
		mark := s.board[line[0]]
		if mark != 0 && s.board[line[1]] == mark && s.board[line[2]] == mark {
			return mark - 1
		}
	}
	return -1
}

func (s State) String() string {
	marks := [3]string{".", "X", "O"}
	var b strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			b.WriteString(marks[s.board[row*3+col]])
		}
		if row < 2 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
