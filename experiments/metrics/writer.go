package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type AgentConfig struct {
	ID       int
	Strategy string
	Seed     uint64 // Only used by the random strategy
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, always plays p1
	Agent2 int // AgentConfig.ID, always plays p2
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>/ to hold the experiment files.
// A numeric suffix is appended when another writer already took the timestamp.
func NewWriter(root, name string) (*Writer, error) {
	parent := filepath.Join(root, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	// Create a subfolder named by current timestamp
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	baseDir := filepath.Join(parent, timestamp)
	for i := 1; ; i++ {
		err = os.Mkdir(baseDir, 0755)
		if !errors.Is(err, fs.ErrExist) {
			break
		}
		baseDir = filepath.Join(parent, fmt.Sprintf("%s-%d", timestamp, i))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "strategy", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Strategy,
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "game", "agent1", "agent2", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			record.Game,
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.StartingPlayer,
			record.Winner,
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "move", "strategy", "duration", "nodes", "terminals", "max_frontier"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			record.Strategy,
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Terminals),
			strconv.Itoa(record.MaxFrontier),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(file string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", file, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", file, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", file, err)
	}

	return nil
}
