package engine

import (
	"fmt"
	"io"
	"time"

	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"
	"minimax/searcher"
	"minimax/utils"

	"github.com/rs/zerolog/log"
)

type Option func(c *config)

type config struct {
	maxTurns int
	out      io.Writer
}

// WithMaxTurns stops the game after the given number of moves.
func WithMaxTurns(maxTurns int) Option {
	return func(c *config) {
		c.maxTurns = maxTurns
	}
}

// WithOutput prints the state and every move played to out.
func WithOutput(out io.Writer) Option {
	return func(c *config) {
		c.out = out
	}
}

// Local plays a game in-process, asking each player's strategy for a move in
// turn.
type Local[M comparable] struct {
	name       string
	state      game.State[M]
	strategies map[string]searcher.Strategy[M]
	config
}

var _ Engine = (*Local[int])(nil)

func NewLocal[M comparable](name string, start game.State[M], p1, p2 searcher.Strategy[M], options ...Option) *Local[M] {
	c := config{maxTurns: meta.MAX_TURNS}
	for _, option := range options {
		option(&c)
	}

	return &Local[M]{
		name:  name,
		state: start,
		strategies: map[string]searcher.Strategy[M]{
			game.P1: p1,
			game.P2: p2,
		},
		config: c,
	}
}

// State returns the current state of the game.
func (e *Local[M]) State() game.State[M] {
	return e.state
}

// Run executes the entire game loop until the game is over or the turn limit
// is reached. A strategy returning an illegal move ends the game with an
// error.
func (e *Local[M]) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		Game:           e.name,
		StartingPlayer: e.state.Player(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s is starting %s", e.state.Player(), e.name)

	turnCount := 1
	for !game.IsOver(e.state) && turnCount <= e.maxTurns {
		player := e.state.Player()
		strategy, ok := e.strategies[player]
		if !ok {
			return "", gameMetric, moveMetrics, fmt.Errorf("no strategy for player %q", player)
		}
		e.print("%v\n", e.state)

		move, searchMetric := strategy.FindMove(e.state)
		if utils.FindIndex(e.state.LegalMoves(), move) < 0 {
			return "", gameMetric, moveMetrics, fmt.Errorf("%s played illegal move %v on turn %d", player, move, turnCount)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turnCount,
			Player:       player,
			Move:         fmt.Sprint(move),
			SearchMetric: searchMetric,
		})

		log.Debug().Msgf("turn %d: %s played %v", turnCount, player, move)
		e.print("%s played %v\n", player, move)

		e.state = e.state.Play(move)
		turnCount++
	}

	winner := e.state.Winner()
	switch {
	case winner != "":
		log.Info().Msgf("game ended after %d moves with winner: %s", len(moveMetrics), winner)
		e.print("%v\n%s wins!\n", e.state, winner)
	case game.IsOver(e.state):
		log.Info().Msgf("game ended after %d moves in a draw", len(moveMetrics))
		e.print("%v\nIt's a draw!\n", e.state)
	default:
		log.Warn().Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics, nil
}

func (e *Local[M]) print(format string, args ...any) {
	if e.out != nil {
		fmt.Fprintf(e.out, format, args...)
	}
}
