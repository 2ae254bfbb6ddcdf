package searcher

import (
	"minimax/experiments/metrics"
	"minimax/game"
)

// recurse scores n and its whole subtree using native recursion. The call
// depth equals the remaining game length from n.
func recurse[M comparable](n *node[M], depth int, collector metrics.Collector) game.Score {
	collector.ObserveFrontier(depth)

	if n.isTerminal() {
		score := n.terminalScore()
		n.setScore(score)
		collector.AddTerminal()
		return score
	}

	for _, child := range n.expand() {
		recurse(child, depth+1, collector)
	}
	_, value := negamax(n, (*node[M]).mustScore)
	n.setScore(value)
	collector.AddNode()
	return value
}
