package experiments

import (
	"context"
	"fmt"

	"minimax/engine"
	"minimax/experiments/metrics"
	"minimax/game"
	"minimax/meta"
	"minimax/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// The first config is the baseline every other agent is matched against.
var evaluatorConfigs = []metrics.AgentConfig{
	{ID: 1, Strategy: "iterative"},
	{ID: 2, Strategy: "recursive"},
	{ID: 3, Strategy: "rough"},
	{ID: 4, Strategy: "random", Seed: meta.SEED},
}

// RunEvaluatorExperiment pairs every strategy against iterative minimax on g
// and stores the results as CSV files under out and in the SQLite database at
// db. Either destination is skipped when empty.
func RunEvaluatorExperiment[M comparable](ctx context.Context, g game.Game[M], numGames int, out, db string) error {
	baseline := evaluatorConfigs[0]
	matchUps := [][2]metrics.AgentConfig{}
	for _, config := range evaluatorConfigs[1:] {
		matchUps = append(matchUps, [2]metrics.AgentConfig{baseline, config})
	}

	name := fmt.Sprintf("evaluators_%s", g.Name())
	log.Info().Msgf("starting %s experiment...", name)

	gameRecords, moveRecords, err := Run(ctx, g, matchUps, numGames)
	if err != nil {
		return fmt.Errorf("failed to run %s experiment: %w", name, err)
	}

	log.Info().Msgf("completed %s experiment", name)
	for id, wins := range Wins(gameRecords) {
		log.Info().Msgf("agent %d (%s) won %d games", id, evaluatorConfigs[id-1].Strategy, wins)
	}

	if out != "" {
		if err := writeCSV(out, name, evaluatorConfigs, gameRecords, moveRecords); err != nil {
			return err
		}
	}
	if db != "" {
		if err := writeDB(db, name, evaluatorConfigs, gameRecords, moveRecords); err != nil {
			return err
		}
	}
	return nil
}

// Run plays numGames games for each matchup, at most meta.GO_ROUTINES at a
// time. The first agent of a matchup always plays p1; odd-numbered games are
// started by p2. Records are numbered by matchup, then by game.
func Run[M comparable](ctx context.Context, g game.Game[M], matchUps [][2]metrics.AgentConfig, numGames int) ([]metrics.GameRecord, []metrics.MoveRecord, error) {
	if numGames < 0 {
		return nil, nil, fmt.Errorf("number of games must not be negative, got %d", numGames)
	}

	type result struct {
		gameMetric  metrics.GameMetric
		moveMetrics []metrics.MoveMetric
	}
	results := make([]result, len(matchUps)*numGames)

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(meta.GO_ROUTINES)

	for mi, matchUp := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), matchUp[0], matchUp[1])

		for i := 0; i < numGames; i++ {
			group.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}

				winner, gameMetric, moveMetrics, err := runGame(g, matchUp[0], matchUp[1], i)
				if err != nil {
					return fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
				}
				results[mi*numGames+i] = result{gameMetric: gameMetric, moveMetrics: moveMetrics}

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
				return nil
			})
		}
	}

	if err := group.Wait(); err != nil {
		return nil, nil, err
	}

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for i, r := range results {
		matchUp := matchUps[i/numGames]
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         i + 1,
			Agent1:     matchUp[0].ID,
			Agent2:     matchUp[1].ID,
			GameMetric: r.gameMetric,
		})
		for _, mm := range r.moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       i + 1,
				MoveMetric: mm,
			})
		}
	}
	return gameRecords, moveRecords, nil
}

// Wins counts the games won by each agent ID. Draws and unfinished games are
// not counted.
func Wins(records []metrics.GameRecord) map[int]int {
	wins := make(map[int]int)
	for _, record := range records {
		switch record.Winner {
		case game.P1:
			wins[record.Agent1]++
		case game.P2:
			wins[record.Agent2]++
		}
	}
	return wins
}

// runGame executes a single game between two agents and returns the winner.
// Strategies are built per game since they are not safe for concurrent use.
func runGame[M comparable](g game.Game[M], config1, config2 metrics.AgentConfig, i int) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	strategy1, err := searcher.New[M](config1.Strategy, config1.Seed+uint64(i), searcher.WithMetrics())
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	strategy2, err := searcher.New[M](config2.Strategy, config2.Seed+uint64(i), searcher.WithMetrics())
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}

	e := engine.NewLocal(g.Name(), g.Start(i%2 == 0), strategy1, strategy2)
	return e.Run()
}

func writeCSV(out, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	writer, err := metrics.NewWriter(out, name)
	if err != nil {
		return fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteAgentConfigs(configs)
	if err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", writer.Dir())
	return nil
}

func writeDB(path, name string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) error {
	store, err := metrics.NewStore(path)
	if err != nil {
		return fmt.Errorf("failed to open experiment store: %w", err)
	}
	defer store.Close()

	id, err := store.SaveExperiment(name, configs, gameRecords, moveRecords)
	if err != nil {
		return fmt.Errorf("failed to save experiment: %w", err)
	}
	log.Info().Msgf("stored experiment %s in %s", id, path)
	return nil
}
