package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type SolveRecord struct {
	Rows    int
	Columns int
	Move    string // Winning move label, "" if none
	SearchMetric
}

type GameRecord struct {
	GameMetric
}

type MoveRecord struct {
	Game string // GameMetric.ID
	MoveMetric
}

type Writer struct {
	dir string
}

// NewWriter creates <baseDir>/<name>/<timestamp> to hold the CSV files.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000000000Z")
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		dir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.dir
}

func (w *Writer) WriteSolveRecords(records []SolveRecord) error {
	header := []string{"rows", "columns", "move", "found", "cached", "squares", "nodes", "cache_hits", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Rows),
			strconv.Itoa(record.Columns),
			record.Move,
			strconv.FormatBool(record.Found),
			strconv.FormatBool(record.Cached),
			strconv.Itoa(record.Squares),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.CacheHits),
			record.Duration.String(),
		})
	}
	return w.write("solve_records.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "rows", "columns", "starting_player", "winner", "start_time", "end_time", "duration", "total_moves"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.ID,
			strconv.Itoa(record.Rows),
			strconv.Itoa(record.Columns),
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
	header := []string{"game", "step", "player", "move", "found", "nodes", "cache_hits", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Game,
			strconv.Itoa(record.Step),
			record.Player,
			record.Move,
			strconv.FormatBool(record.Found),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.CacheHits),
			record.Duration.String(),
		})
	}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) error {
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
