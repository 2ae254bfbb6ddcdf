package searcher

import (
	"fmt"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/utils"
)

// iterate scores root and its whole subtree without native recursion by
// simulating a postorder traversal on an explicit stack. Each expanded node is
// pushed back before its children so it is only revisited once every child
// has been scored.
//
// The returned table holds the score of every node in the tree, keyed by node
// identity: two distinct positions are never merged even if their states
// compare equal.
func iterate[M comparable](root *node[M], collector metrics.Collector) map[*node[M]]game.Score {
	scored := make(map[*node[M]]game.Score)
	scoreOf := func(child *node[M]) game.Score {
		score, ok := scored[child]
		if !ok {
			panic("child was revisited before being scored")
		}
		return score
	}
	record := func(n *node[M], score game.Score) {
		n.setScore(score)
		scored[n] = score
	}

	stack := utils.NewStack[*node[M]]()
	stack.Push(root)
	frontier := 1
	collector.ObserveFrontier(frontier)

	for !stack.IsEmpty() {
		n := stack.Pop()
		frontier--

		switch {
		case n.isTerminal():
			if n.isExpanded() {
				panic(fmt.Sprintf("state reported %d legal moves and later none", len(n.moves)))
			}
			record(n, n.terminalScore())
			collector.AddTerminal()

		case !n.isExpanded():
			children := n.expand()
			stack.Push(n)
			for _, child := range children {
				stack.Push(child)
			}
			frontier += 1 + len(children)
			collector.ObserveFrontier(frontier)

		default: // Revisited after all children were scored
			_, value := negamax(n, scoreOf)
			record(n, value)
			collector.AddNode()
		}
	}

	return scored
}
