package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"minimax/engine"
	"minimax/experiments"
	"minimax/game"
	"minimax/game/stonehenge"
	"minimax/game/subtractsquare"
	"minimax/game/tictactoe"
	"minimax/meta"
	"minimax/player"
	"minimax/searcher"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// settings holds the flags shared by every game.
type settings struct {
	p1, p2     string
	p1Starts   bool
	seed       uint64
	experiment bool
	numGames   int
	out, db    string
}

func main() {
	gameName := flag.String("game", "subtractsquare", "Game to play: subtractsquare, tictactoe or stonehenge")
	start := flag.Int("start", meta.START_COUNT, "Starting value of subtract square")
	side := flag.Int("side", meta.SIDE_LENGTH, "Side length of the stonehenge board, 1 to 5")
	p1 := flag.String("p1", "human", "Strategy of p1: human, recursive, iterative, rough or random")
	p2 := flag.String("p2", "iterative", "Strategy of p2: human, recursive, iterative, rough or random")
	p2Starts := flag.Bool("p2-starts", false, "Let p2 make the first move")
	seed := flag.Uint64("seed", meta.SEED, "Seed of the random strategy")
	experiment := flag.Bool("experiment", false, "Match every strategy against iterative minimax instead of playing one game")
	numGames := flag.Int("games", meta.NUM_GAMES, "Number of games per matchup in an experiment")
	out := flag.String("out", "experiments", "Directory for experiment CSV files, empty to skip")
	db := flag.String("db", "", "SQLite database for experiment results, empty to skip")
	level := flag.String("log-level", "info", "Log level: debug, info, warn or error")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel, err := zerolog.ParseLevel(*level)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(logLevel)

	if *numGames < 0 {
		log.Fatal().Msgf("number of games must not be negative, got %d", *numGames)
	}
	s := settings{
		p1:         *p1,
		p2:         *p2,
		p1Starts:   !*p2Starts,
		seed:       *seed,
		experiment: *experiment,
		numGames:   *numGames,
		out:        *out,
		db:         *db,
	}

	switch *gameName {
	case "subtractsquare":
		if *start < 0 {
			log.Fatal().Msgf("starting value must not be negative, got %d", *start)
		}
		run[int](subtractsquare.SubtractSquare{Count: *start}, s)
	case "tictactoe":
		run[int](tictactoe.TicTacToe{}, s)
	case "stonehenge":
		if *side < stonehenge.MinSideLength || *side > stonehenge.MaxSideLength {
			log.Fatal().Msgf("side length must be between %d and %d, got %d", stonehenge.MinSideLength, stonehenge.MaxSideLength, *side)
		}
		run[string](stonehenge.Stonehenge{SideLength: *side}, s)
	default:
		log.Fatal().Msgf("unknown game %q", *gameName)
	}
}

// run either plays one game of g or runs the evaluator experiment on it.
func run[M comparable](g game.Game[M], s settings) {
	if s.experiment {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := experiments.RunEvaluatorExperiment(ctx, g, s.numGames, s.out, s.db); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
		return
	}

	if err := play(g, s.p1, s.p2, s.p1Starts, s.seed); err != nil {
		log.Fatal().Err(err).Msg("game failed")
	}
}

// play runs a single game, printing the state before every move.
func play[M comparable](g game.Game[M], p1, p2 string, p1Starts bool, seed uint64) (err error) {
	// Both players share the human so a single reader consumes stdin
	human := player.NewHuman(g, os.Stdin, os.Stdout)
	strategy1, err := newStrategy(human, p1, seed)
	if err != nil {
		return err
	}
	strategy2, err := newStrategy(human, p2, seed+1)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.Is(e, player.ErrInputClosed) {
				err = e
				return
			}
			panic(r)
		}
	}()

	fmt.Println(g.Instructions())
	e := engine.NewLocal(g.Name(), g.Start(p1Starts), strategy1, strategy2, engine.WithOutput(os.Stdout))
	_, _, _, err = e.Run()
	return err
}

func newStrategy[M comparable](human *player.Human[M], name string, seed uint64) (searcher.Strategy[M], error) {
	if name == "human" {
		return human, nil
	}
	return searcher.New[M](name, seed)
}
