package stonehenge

import (
	"fmt"
	"strings"

	"minimax/game"
)

// Side lengths supported by the board layouts.
const (
	MinSideLength = 1
	MaxSideLength = 5
)

const (
	maxCells = 25 // cells at side length 5
	maxLines = 18 // ley-lines at side length 5
)

// Stonehenge implements game.Game. Players claim cells by letter; holding at
// least half of a ley-line's cells captures it for good, and capturing at
// least half of the ley-lines wins.
type Stonehenge struct {
	SideLength int
}

func (g Stonehenge) Name() string {
	return "stonehenge"
}

func (g Stonehenge) Instructions() string {
	return "Players take turns claiming cells (in the diagram: capital letters). " +
		"When a player captures at least half of the cells in a ley-line " +
		"(in the diagram: @ markers joined to the cells), the player captures that ley-line. " +
		"The first player to capture at least half of the ley-lines is the winner. " +
		"A ley-line, once captured, cannot be taken by the other player."
}

func (g Stonehenge) Start(p1Starts bool) game.State[string] {
	player := game.P1
	if !p1Starts {
		player = game.P2
	}
	return New(player, g.SideLength)
}

// ParseMove reads a cell letter in either case.
func (g Stonehenge) ParseMove(input string) (string, error) {
	move := strings.ToUpper(strings.TrimSpace(input))
	if len(move) != 1 {
		return "", fmt.Errorf("invalid move %q: expected a single letter", input)
	}
	if g.SideLength >= MinSideLength && g.SideLength <= MaxSideLength {
		if cells := layouts[g.SideLength].cells; move[0] < 'A' || int(move[0]-'A') >= cells {
			return "", fmt.Errorf("invalid move %q: cells are A to %c", input, 'A'+cells-1)
		}
	}
	return move, nil
}

// layout is the fixed geometry of a board: which cells each ley-line runs
// through. Lines are stored rows first, then left diagonals, then right ones.
type layout struct {
	side    int
	cells   int
	rows    [][]int // cell indices of each row, top to bottom
	lines   [][]int // cell indices of each ley-line
	linesOf [][]int // ley-line indices through each cell
}

var layouts [MaxSideLength + 1]*layout

func init() {
	for side := MinSideLength; side <= MaxSideLength; side++ {
		layouts[side] = newLayout(side)
	}
}

// newLayout numbers cells row by row. Row r < side has r+2 cells in columns
// 0..r+1; the last row has side cells in columns 1..side. A cell in row r
// and column c lies on left diagonal c and right diagonal c-r+side-1.
func newLayout(side int) *layout {
	l := &layout{
		side:  side,
		rows:  make([][]int, side+1),
		lines: make([][]int, 3*(side+1)),
	}
	for r := 0; r <= side; r++ {
		first, last := 0, r+1
		if r == side {
			first, last = 1, side
		}
		for c := first; c <= last; c++ {
			cell := l.cells
			l.cells++
			l.rows[r] = append(l.rows[r], cell)

			through := []int{r, side + 1 + c, 2*(side+1) + c - r + side - 1}
			for _, line := range through {
				l.lines[line] = append(l.lines[line], cell)
			}
			l.linesOf = append(l.linesOf, through)
		}
	}
	return l
}

var players = [2]string{game.P1, game.P2}

// State is an immutable board. Cell and ley-line values are 0=unclaimed,
// 1=p1, 2=p2. Fixed-size arrays keep states comparable and cheap to copy.
type State struct {
	side     int
	turn     int // index into players
	cells    [maxCells]int8
	captured [maxLines]int8
}

// New returns an empty board of the given side length with player to move.
func New(player string, side int) State {
	if side < MinSideLength || side > MaxSideLength {
		panic(fmt.Sprintf("side length %d out of range %d-%d", side, MinSideLength, MaxSideLength))
	}
	turn := 0
	if player == game.P2 {
		turn = 1
	}
	return State{side: side, turn: turn}
}

func (s State) layout() *layout {
	return layouts[s.side]
}

func (s State) Player() string {
	return players[s.turn]
}

// Cells returns the number of cells on the board.
func (s State) Cells() int {
	return s.layout().cells
}

// LeyLines returns the owner marker of every ley-line: "@" while unclaimed,
// otherwise the capturing player's number. Rows come first, then the left
// and right diagonals.
func (s State) LeyLines() []string {
	markers := make([]string, len(s.layout().lines))
	for i := range markers {
		markers[i] = marker(s.captured[i])
	}
	return markers
}

// LegalMoves returns the unclaimed cell letters in alphabetical order, or
// nothing once a player holds half of the ley-lines.
func (s State) LegalMoves() []string {
	if s.Winner() != "" {
		return nil
	}
	var moves []string
	for i := 0; i < s.layout().cells; i++ {
		if s.cells[i] == 0 {
			moves = append(moves, letter(i))
		}
	}
	return moves
}

// Play claims a cell for the player to move and captures every ley-line
// through it where that player now holds at least half of the cells.
func (s State) Play(move string) game.State[string] {
	l := s.layout()
	if len(move) != 1 || move[0] < 'A' || int(move[0]-'A') >= l.cells {
		panic(fmt.Sprintf("illegal move %q on a board of %d cells", move, l.cells))
	}
	cell := int(move[0] - 'A')
	if s.cells[cell] != 0 {
		panic(fmt.Sprintf("illegal move %q: cell already claimed", move))
	}
	if s.Winner() != "" {
		panic(fmt.Sprintf("illegal move %q: game is over", move))
	}

	next := s // arrays are copied
	owner := int8(s.turn + 1)
	next.cells[cell] = owner
	for _, line := range l.linesOf[cell] {
		if next.captured[line] != 0 {
			continue
		}
		held := 0
		for _, c := range l.lines[line] {
			if next.cells[c] == owner {
				held++
			}
		}
		if 2*held >= len(l.lines[line]) {
			next.captured[line] = owner
		}
	}
	next.turn = 1 - s.turn
	return next
}

// Winner is the player holding at least half of the ley-lines. The game
// ends as soon as one player gets there, so at most one player can.
func (s State) Winner() string {
	lines := len(s.layout().lines)
	var held [3]int
	for i := 0; i < lines; i++ {
		held[s.captured[i]]++
	}
	for turn, player := range players {
		if 2*held[turn+1] >= lines {
			return player
		}
	}
	return ""
}

// String draws the board as hexagon rows, each led by its ley-line marker,
// followed by the diagonal markers. Claimed cells show the owner's number.
func (s State) String() string {
	l := s.layout()
	var b strings.Builder
	for r, row := range l.rows {
		indent := 2 * (l.side - 1 - r)
		if r == l.side {
			indent = 6
		}
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString(marker(s.captured[r]))
		for _, cell := range row {
			b.WriteString(" - ")
			if s.cells[cell] == 0 {
				b.WriteString(letter(cell))
			} else {
				b.WriteString(marker(s.cells[cell]))
			}
		}
		b.WriteString("\n")
	}
	markers := s.LeyLines()
	n := l.side + 1
	fmt.Fprintf(&b, "Left ley-lines: %s\n", strings.Join(markers[n:2*n], " "))
	fmt.Fprintf(&b, "Right ley-lines: %s", strings.Join(markers[2*n:], " "))
	return b.String()
}

func letter(cell int) string {
	return string(rune('A' + cell))
}

func marker(owner int8) string {
	if owner == 0 {
		return "@"
	}
	return fmt.Sprint(owner)
}
