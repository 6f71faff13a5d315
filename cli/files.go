package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"myplanner/calendar"
	"myplanner/kanban"
)

// boardFile is the YAML layout of a board: columns in display order.
//
//	columns:
//	  - id: todo
//	    title: To do
//	    tasks: [write-spec, review]
type boardFile struct {
	Columns []kanban.Column `yaml:"columns"`
}

type eventsFile struct {
	Events []calendar.Event `yaml:"events"`
}

func loadBoard(path string) (*kanban.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f boardFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode board %s: %w", path, err)
	}
	b := kanban.NewBoard(f.Columns...)
	if len(b.ColumnOrder) != len(b.Columns) {
		return nil, fmt.Errorf("board %s: duplicate column id", path)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("board %s: %w", path, err)
	}
	return b, nil
}

func saveBoard(path string, b *kanban.Board) error {
	f := boardFile{Columns: make([]kanban.Column, 0, len(b.ColumnOrder))}
	for _, id := range b.ColumnOrder {
		f.Columns = append(f.Columns, b.Columns[id])
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func loadEvents(path string) ([]calendar.Event, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f eventsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode events %s: %w", path, err)
	}
	return f.Events, nil
}

// parseLocation reads "column:index". "none" stands for a drop outside every
// column and returns nil.
func parseLocation(s string) (*kanban.Location, error) {
	if s == "" || s == "none" {
		return nil, nil
	}
	i := strings.LastIndex(s, ":")
	if i <= 0 {
		return nil, fmt.Errorf("location %q: want column:index", s)
	}
	idx, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return nil, fmt.Errorf("location %q: bad index: %w", s, err)
	}
	return &kanban.Location{ColumnID: s[:i], Index: idx}, nil
}
