package widget

import (
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"matui/material"
)

// SortDirection orders a sorted table column.
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// Table is a sortable data table. Sort state lives on the value; SortBy
// returns a new table, the rows themselves are never reordered in place.
type Table struct {
	Columns []string
	Rows    [][]string
	SortCol int // -1 when unsorted
	SortDir SortDirection
}

// NewTable returns an unsorted table over the given columns and rows.
func NewTable(columns []string, rows [][]string) Table {
	return Table{Columns: columns, Rows: rows, SortCol: -1}
}

// SortBy sorts on column col. Sorting the already-sorted column flips the
// direction; sorting a new column starts ascending. Out-of-range columns
// leave the table unchanged.
func (t Table) SortBy(col int) Table {
	if col < 0 || col >= len(t.Columns) {
		return t
	}
	if col == t.SortCol {
		if t.SortDir == Ascending {
			t.SortDir = Descending
		} else {
			t.SortDir = Ascending
		}
	} else {
		t.SortCol = col
		t.SortDir = Ascending
	}
	return t
}

// SortedRows returns the rows in display order. Cells that both parse as
// numbers compare numerically, otherwise lexicographically.
func (t Table) SortedRows() [][]string {
	rows := make([][]string, len(t.Rows))
	copy(rows, t.Rows)
	if t.SortCol < 0 || t.SortCol >= len(t.Columns) {
		return rows
	}
	col := t.SortCol
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := cell(rows[i], col), cell(rows[j], col)
		if t.SortDir == Descending {
			a, b = b, a
		}
		return cellLess(a, b)
	})
	return rows
}

// Render draws the table with the active sort column marked by a direction
// arrow in its header.
func (t Table) Render(st material.TableStyle) string {
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		if i == t.SortCol {
			if t.SortDir == Ascending {
				headers[i] = c + " ▲"
			} else {
				headers[i] = c + " ▼"
			}
		} else {
			headers[i] = c
		}
	}
	sortCol := t.SortCol
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(st.Border).
		Headers(headers...).
		Rows(t.SortedRows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col == sortCol {
					return st.SortHeader
				}
				return st.Header
			}
			return st.Cell
		})
	return tbl.Render()
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return row[col]
}

func cellLess(a, b string) bool {
	fa, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	fb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if errA == nil && errB == nil {
		return fa < fb
	}
	return a < b
}
