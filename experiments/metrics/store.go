package metrics

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// GameRow is a game as stored in the database, with agent IDs resolved to
// strategy names.
type GameRow struct {
	ID             uuid.UUID
	Number         int // GameRecord.ID within the experiment
	Game           string
	Agent1         string
	Agent2         string
	StartingPlayer string
	Winner         string
	Duration       time.Duration
	TotalMoves     int
}

// Store handles SQLite persistence of experiment results.
type Store struct {
	db *sql.DB
}

// NewStore opens (or creates) the database and runs migrations.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	// Every connection to ":memory:" would otherwise see its own database
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS experiments (
			id         TEXT PRIMARY KEY,
			name       TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS agents (
			experiment_id TEXT NOT NULL REFERENCES experiments(id),
			id            INTEGER NOT NULL,
			strategy      TEXT NOT NULL,
			seed          TEXT NOT NULL, -- decimal, seeds use the full uint64 range
			PRIMARY KEY (experiment_id, id)
		);
		CREATE TABLE IF NOT EXISTS games (
			id              TEXT PRIMARY KEY,
			experiment_id   TEXT NOT NULL REFERENCES experiments(id),
			number          INTEGER NOT NULL,
			game            TEXT NOT NULL,
			agent1          INTEGER NOT NULL,
			agent2          INTEGER NOT NULL,
			starting_player TEXT NOT NULL,
			winner          TEXT NOT NULL,
			start_time      INTEGER NOT NULL,
			end_time        INTEGER NOT NULL,
			duration        INTEGER NOT NULL,
			total_moves     INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS moves (
			game_id      TEXT NOT NULL REFERENCES games(id),
			step         INTEGER NOT NULL,
			player       TEXT NOT NULL,
			move         TEXT NOT NULL,
			strategy     TEXT NOT NULL,
			duration     INTEGER NOT NULL,
			nodes        INTEGER NOT NULL,
			terminals    INTEGER NOT NULL,
			max_frontier INTEGER NOT NULL,
			PRIMARY KEY (game_id, step)
		);
	`)
	return err
}

// SaveExperiment stores an experiment's agents, games and moves in a single
// transaction and returns the new experiment's ID.
func (s *Store) SaveExperiment(name string, configs []AgentConfig, games []GameRecord, moves []MoveRecord) (uuid.UUID, error) {
	experimentID := uuid.New()

	tx, err := s.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec("INSERT INTO experiments (id, name, created_at) VALUES (?, ?, ?)",
		experimentID, name, time.Now().UnixNano())
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert experiment: %w", err)
	}

	for _, config := range configs {
		_, err = tx.Exec("INSERT INTO agents (experiment_id, id, strategy, seed) VALUES (?, ?, ?, ?)",
			experimentID, config.ID, config.Strategy, strconv.FormatUint(config.Seed, 10))
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert agent %d: %w", config.ID, err)
		}
	}

	gameIDs := make(map[int]uuid.UUID, len(games))
	for _, g := range games {
		id := uuid.New()
		gameIDs[g.ID] = id
		_, err = tx.Exec(`
			INSERT INTO games (id, experiment_id, number, game, agent1, agent2, starting_player, winner, start_time, end_time, duration, total_moves)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, experimentID, g.ID, g.Game, g.Agent1, g.Agent2, g.StartingPlayer, g.Winner,
			g.StartTime.UnixNano(), g.EndTime.UnixNano(), int64(g.Duration), g.TotalMoves)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert game %d: %w", g.ID, err)
		}
	}

	for _, m := range moves {
		gameID, ok := gameIDs[m.Game]
		if !ok {
			return uuid.Nil, fmt.Errorf("move %d refers to unknown game %d", m.Step, m.Game)
		}
		_, err = tx.Exec(`
			INSERT INTO moves (game_id, step, player, move, strategy, duration, nodes, terminals, max_frontier)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, gameID, m.Step, m.Player, m.Move, m.Strategy, int64(m.Duration), m.Nodes, m.Terminals, m.MaxFrontier)
		if err != nil {
			return uuid.Nil, fmt.Errorf("insert move %d of game %d: %w", m.Step, m.Game, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("commit: %w", err)
	}
	return experimentID, nil
}

// Experiments returns the IDs of the experiments with the given name, oldest
// first.
func (s *Store) Experiments(name string) ([]uuid.UUID, error) {
	rows, err := s.db.Query("SELECT id FROM experiments WHERE name = ? ORDER BY created_at", name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, rows.Err()
}

// Agents returns the agent configurations of an experiment ordered by ID.
func (s *Store) Agents(experimentID uuid.UUID) ([]AgentConfig, error) {
	rows, err := s.db.Query("SELECT id, strategy, seed FROM agents WHERE experiment_id = ? ORDER BY id", experimentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []AgentConfig
	for rows.Next() {
		var config AgentConfig
		var seed string
		if err := rows.Scan(&config.ID, &config.Strategy, &seed); err != nil {
			return nil, err
		}
		if config.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("agent %d seed: %w", config.ID, err)
		}
		result = append(result, config)
	}
	return result, rows.Err()
}

// Games returns the games of an experiment in the order they were numbered.
func (s *Store) Games(experimentID uuid.UUID) ([]GameRow, error) {
	rows, err := s.db.Query(`
		SELECT g.id, g.number, g.game, a1.strategy, a2.strategy, g.starting_player, g.winner, g.duration, g.total_moves
		FROM games g
		JOIN agents a1 ON a1.experiment_id = g.experiment_id AND a1.id = g.agent1
		JOIN agents a2 ON a2.experiment_id = g.experiment_id AND a2.id = g.agent2
		WHERE g.experiment_id = ?
		ORDER BY g.number
	`, experimentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []GameRow
	for rows.Next() {
		var gr GameRow
		var duration int64
		err := rows.Scan(&gr.ID, &gr.Number, &gr.Game, &gr.Agent1, &gr.Agent2, &gr.StartingPlayer, &gr.Winner, &duration, &gr.TotalMoves)
		if err != nil {
			return nil, err
		}
		gr.Duration = time.Duration(duration)
		result = append(result, gr)
	}
	return result, rows.Err()
}

// Moves returns the moves of a game in the order they were played.
func (s *Store) Moves(gameID uuid.UUID) ([]MoveMetric, error) {
	rows, err := s.db.Query(`
		SELECT step, player, move, strategy, duration, nodes, terminals, max_frontier
		FROM moves WHERE game_id = ? ORDER BY step
	`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []MoveMetric
	for rows.Next() {
		var mm MoveMetric
		var duration int64
		err := rows.Scan(&mm.Step, &mm.Player, &mm.Move, &mm.Strategy, &duration, &mm.Nodes, &mm.Terminals, &mm.MaxFrontier)
		if err != nil {
			return nil, err
		}
		mm.Duration = time.Duration(duration)
		result = append(result, mm)
	}
	return result, rows.Err()
}

// Wins counts the games of an experiment won by each agent ID.
func (s *Store) Wins(experimentID uuid.UUID) (map[int]int, error) {
	rows, err := s.db.Query(`
		SELECT CASE winner WHEN 'p1' THEN agent1 ELSE agent2 END, COUNT(*)
		FROM games WHERE experiment_id = ? AND winner != ''
		GROUP BY 1
	`, experimentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	wins := make(map[int]int)
	for rows.Next() {
		var agent, count int
		if err := rows.Scan(&agent, &count); err != nil {
			return nil, err
		}
		wins[agent] = count
	}
	return wins, rows.Err()
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
