package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"myplanner/calendar"
	"myplanner/kanban"
)

var weekdays = table.Row{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.Style().Title.Format = text.FormatDefault
	return t
}

// renderBoard prints one table column per board column, tasks top to bottom.
func renderBoard(w io.Writer, b *kanban.Board) {
	t := newTable(w)

	header := table.Row{}
	depth := 0
	for _, id := range b.ColumnOrder {
		c := b.Columns[id]
		title := c.Title
		if title == "" {
			title = id
		}
		header = append(header, fmt.Sprintf("%s (%d)", title, len(c.TaskIDs)))
		if len(c.TaskIDs) > depth {
			depth = len(c.TaskIDs)
		}
	}
	t.AppendHeader(header)

	for i := 0; i < depth; i++ {
		row := table.Row{}
		for _, id := range b.ColumnOrder {
			ids := b.Columns[id].TaskIDs
			if i < len(ids) {
				row = append(row, ids[i])
			} else {
				row = append(row, "")
			}
		}
		t.AppendRow(row)
	}
	t.Render()
}

// renderMonth prints the grid as six weeks followed by the event list.
// Days outside the month are bracketed, today carries a star and the number
// of events follows a plus sign.
func renderMonth(w io.Writer, g *calendar.MonthGrid) {
	t := newTable(w)
	t.SetTitle(fmt.Sprintf("%s %d", g.Month, g.Year))
	t.AppendHeader(weekdays)
	for _, week := range g.Weeks() {
		row := table.Row{}
		for _, c := range week {
			row = append(row, dayLabel(c))
		}
		t.AppendRow(row)
	}
	t.Render()

	events := newTable(w)
	events.AppendHeader(table.Row{"Date", "Time", "Title", "Type"})
	n := 0
	for _, c := range g.Cells {
		for _, e := range c.Events {
			events.AppendRow(table.Row{calendar.FormatDay(c.Date), e.Time, e.Title, e.Type})
			n++
		}
	}
	if n == 0 {
		return
	}
	events.Render()
}

func dayLabel(c calendar.Cell) string {
	label := strconv.Itoa(c.Date.Day())
	if !c.IsCurrentMonth {
		label = "(" + label + ")"
	}
	if c.IsToday {
		label += "*"
	}
	if len(c.Events) > 0 {
		label += fmt.Sprintf(" +%d", len(c.Events))
	}
	return label
}
