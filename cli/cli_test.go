package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boardYAML = `columns:
  - id: todo
    title: To do
    tasks: [t1, t2]
  - id: done
    title: Done
    tasks: [t3]
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestBoardShow(t *testing.T) {
	path := writeFile(t, "board.yaml", boardYAML)

	out, _, err := run(t, "board", "show", "-f", path)
	require.NoError(t, err)
	assert.Contains(t, out, "To do (2)")
	assert.Contains(t, out, "Done (1)")
	assert.Contains(t, out, "t3")
}

func TestBoardMoveWrite(t *testing.T) {
	path := writeFile(t, "board.yaml", boardYAML)

	out, _, err := run(t, "board", "move", "-f", path, "--from", "todo:0", "--to", "done:1", "--task", "t1", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "To do (1)")
	assert.Contains(t, out, "Done (2)")
	assert.Contains(t, out, "saved "+path)

	b, err := loadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"todo", "done"}, b.ColumnOrder)
	assert.Equal(t, []string{"t2"}, b.Columns["todo"].TaskIDs)
	assert.Equal(t, []string{"t3", "t1"}, b.Columns["done"].TaskIDs)
}

func TestBoardMoveWithoutWriteLeavesFile(t *testing.T) {
	path := writeFile(t, "board.yaml", boardYAML)

	_, _, err := run(t, "board", "move", "-f", path, "--from", "todo:0", "--to", "todo:1")
	require.NoError(t, err)

	b, err := loadBoard(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, b.Columns["todo"].TaskIDs)
}

func TestBoardMoveNoChange(t *testing.T) {
	path := writeFile(t, "board.yaml", boardYAML)

	for _, to := range []string{"none", "todo:1"} {
		out, _, err := run(t, "board", "move", "-f", path, "--from", "todo:1", "--to", to)
		require.NoError(t, err)
		assert.Contains(t, out, "no change")
	}
}

func TestBoardMoveErrors(t *testing.T) {
	path := writeFile(t, "board.yaml", boardYAML)

	tests := []struct {
		name string
		args []string
	}{
		{"missing from", []string{"--to", "done:0"}},
		{"bad location", []string{"--from", "todo", "--to", "done:0"}},
		{"bad index", []string{"--from", "todo:x", "--to", "done:0"}},
		{"out of range", []string{"--from", "todo:9", "--to", "done:0"}},
		{"unknown column", []string{"--from", "todo:0", "--to", "later:0"}},
		{"stale task", []string{"--from", "todo:0", "--to", "done:0", "--task", "t2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"board", "move", "-f", path}, tt.args...)...)
			assert.Error(t, err)
		})
	}
}

func TestLoadBoardRejectsDuplicates(t *testing.T) {
	path := writeFile(t, "board.yaml", `columns:
  - id: todo
    tasks: [t1]
  - id: done
    tasks: [t1]
`)
	_, err := loadBoard(path)
	assert.Error(t, err)
}

func TestCalendarCommand(t *testing.T) {
	events := writeFile(t, "events.yaml", `events:
  - id: e1
    title: Review
    date: "2023-07-31"
    time: "14:00"
  - id: e2
    title: Kickoff
    date: "2023-06-26"
  - id: bad
    title: Broken
    date: "someday"
`)

	out, errOut, err := run(t, "calendar", "--year", "2023", "--month", "7", "-f", events, "--today", "2023-07-15")
	require.NoError(t, err)
	assert.Contains(t, out, "July 2023")
	assert.Contains(t, out, "(25)")
	assert.Contains(t, out, "15*")
	assert.Contains(t, out, "31 +1")
	assert.Contains(t, out, "(26) +1")
	assert.Contains(t, out, "Review")
	assert.Contains(t, errOut, "1 event(s) skipped")
}

func TestCalendarRejectsMonth(t *testing.T) {
	_, _, err := run(t, "calendar", "--year", "2023", "--month", "13")
	assert.Error(t, err)
}
