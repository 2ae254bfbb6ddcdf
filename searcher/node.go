package searcher

import (
	"fmt"
	"reflect"

	"minimax/game"
)

// node wraps a state with its lazily created children and its score.
// A node is expanded iff children is non-nil and scored iff scored is set.
type node[M comparable] struct {
	state    game.State[M]
	moves    []M
	children []*node[M]
	score    game.Score
	scored   bool
}

func newNode[M comparable](state game.State[M]) *node[M] {
	return &node[M]{state: state}
}

func (n *node[M]) isTerminal() bool {
	return len(n.state.LegalMoves()) == 0
}

func (n *node[M]) isExpanded() bool {
	return n.children != nil
}

// expand creates one child per legal move, in move order.
func (n *node[M]) expand() []*node[M] {
	if n.isExpanded() {
		panic("node is already expanded")
	}

	moves := n.state.LegalMoves()
	if len(moves) == 0 {
		panic("cannot expand a terminal node")
	}

	children := make([]*node[M], len(moves))
	for i, move := range moves {
		child := n.state.Play(move)
		if sameState(child, n.state) {
			panic(fmt.Sprintf("move %v did not change the state", move))
		}
		children[i] = newNode(child)
	}
	n.moves = moves
	n.children = children
	return children
}

// terminalScore applies the payoff rule from the mover's perspective.
func (n *node[M]) terminalScore() game.Score {
	return game.Outcome(n.state, n.state.Player())
}

func (n *node[M]) setScore(score game.Score) {
	if n.scored {
		panic("node is already scored")
	}
	n.score = score
	n.scored = true
}

func (n *node[M]) mustScore() game.Score {
	if !n.scored {
		panic("node has not been scored")
	}
	return n.score
}

// negamax returns the index of the first child maximizing the negated child
// score, together with that maximum.
func negamax[M comparable](n *node[M], scoreOf func(*node[M]) game.Score) (int, game.Score) {
	if len(n.children) == 0 {
		panic("node has no children")
	}

	bestIndex := 0
	bestValue := -scoreOf(n.children[0])
	for i, child := range n.children[1:] {
		// Strictly greater keeps the earliest move on ties
		if value := -scoreOf(child); value > bestValue {
			bestValue = value
			bestIndex = i + 1
		}
	}
	return bestIndex, bestValue
}

// sameState reports whether two states are the same comparable value.
// States holding non-comparable values, even behind interface fields, are
// never considered equal.
func sameState[M comparable](a, b game.State[M]) bool {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !va.IsValid() || !vb.IsValid() || va.Type() != vb.Type() || !va.Comparable() || !vb.Comparable() {
		return false
	}
	return a == b
}
