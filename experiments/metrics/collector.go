package metrics

import (
	"time"
)

type SearchMetric struct {
	Strategy    string
	Duration    time.Duration
	Nodes       int // Interior states expanded
	Terminals   int // Terminal states scored
	MaxFrontier int // Peak stack size or recursion depth
}

type MoveMetric struct {
	Step   int
	Player string
	Move   string
	SearchMetric
}

type GameMetric struct {
	Game           string
	StartingPlayer string
	Winner         string // "" for a draw or an unfinished game
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records statistics for a single search. Searches are
// single-threaded, so collectors are not safe for concurrent use.
type Collector interface {
	Start(strategy string)
	AddNode()
	AddTerminal()
	ObserveFrontier(size int)
	Complete() SearchMetric
}

type collector struct {
	strategy    string
	startTime   time.Time
	nodes       int
	terminals   int
	maxFrontier int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(strategy string) {
	*m = collector{strategy: strategy, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddTerminal() {
	m.terminals++
}

func (m *collector) ObserveFrontier(size int) {
	if size > m.maxFrontier {
		m.maxFrontier = size
	}
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Strategy:    m.strategy,
		Duration:    time.Since(m.startTime),
		Nodes:       m.nodes,
		Terminals:   m.terminals,
		MaxFrontier: m.maxFrontier,
	}
}

type dummyCollector struct {
	strategy string
}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(strategy string) { m.strategy = strategy }
func (m *dummyCollector) AddNode()              {}
func (m *dummyCollector) AddTerminal()          {}
func (m *dummyCollector) ObserveFrontier(int)   {}
func (m *dummyCollector) Complete() SearchMetric {
	return SearchMetric{Strategy: m.strategy}
}
