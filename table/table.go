package table

import (
	"fmt"
	"strconv"

	"github.com/spf13/cast"
	"google.golang.org/api/sheets/v4"
)

// Table is a rectangular, column oriented view of a worksheet. Every column has the same
// number of values.
type Table struct {
	Title   string
	Named   bool
	Columns []Column
}

// Build assembles a table from the grid rows of a worksheet. If header is true, the first
// row supplies the column names and is excluded from the data, otherwise the rows are used
// verbatim and the columns are positional. Short rows are padded with Missing values.
func Build(title string, rows []*sheets.RowData, header bool) *Table {
	grid := make([][]Value, len(rows))
	for i, row := range rows {
		grid[i] = ParseRow(row)
	}

	return FromValues(title, grid, header)
}

// FromValues assembles a table from already parsed cell values.
func FromValues(title string, grid [][]Value, header bool) *Table {
	t := Table{
		Title:   title,
		Named:   header,
		Columns: []Column{},
	}

	if len(grid) == 0 {
		return &t
	}

	var labels []Value
	data := grid

	if header {
		labels = grid[0]
		data = grid[1:]
	}

	width := len(labels)
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}

	names := []string{}
	if header {
		names = makeNames(labels, width)
	}

	for c := 0; c < width; c++ {
		values := make([]Value, len(data))
		for r, row := range data {
			if c < len(row) && row[c] != nil {
				values[r] = row[c]
			} else {
				values[r] = Missing{}
			}
		}

		column := Column{
			Index:  c,
			Values: values,
		}

		if header {
			column.Name = names[c]
		}

		column.Type, column.Values = infer(values)
		t.Columns = append(t.Columns, column)
	}

	return &t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}

	return len(t.Columns[0].Values)
}

// Width returns the number of columns.
func (t *Table) Width() int {
	if t == nil {
		return 0
	}

	return len(t.Columns)
}

// Empty is true for a table without data rows or without columns.
func (t *Table) Empty() bool {
	return t.Len() == 0 || t.Width() == 0
}

// Header returns the column names or, for an unnamed table, the column positions.
func (t *Table) Header() []string {
	header := make([]string, t.Width())
	for i, c := range t.Columns {
		if t.Named {
			header[i] = c.Name
		} else {
			header[i] = strconv.Itoa(c.Index)
		}
	}

	return header
}

// Row returns the values of data row r.
func (t *Table) Row(r int) []Value {
	row := make([]Value, t.Width())
	for i, c := range t.Columns {
		row[i] = c.Values[r]
	}

	return row
}

// Column returns the column with the given name.
func (t *Table) Column(name string) (*Column, bool) {
	if t == nil {
		return nil, false
	}

	for i := range t.Columns {
		if t.Named && t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}

	return nil, false
}

func (t *Table) String() string {
	return fmt.Sprintf("%s (%d rows x %d columns)", t.Title, t.Len(), t.Width())
}

// makeNames converts the header row to column names. Blank labels and labels for columns
// beyond the header are 'Unnamed: <i>', repeated labels are suffixed with '.<n>'.
func makeNames(labels []Value, width int) []string {
	names := make([]string, width)
	seen := map[string]int{}

	for i := 0; i < width; i++ {
		name := ""
		if i < len(labels) && !IsMissing(labels[i]) {
			name = cast.ToString(labels[i])
		}

		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		if n, ok := seen[name]; ok {
			base := name
			for {
				n++
				name = fmt.Sprintf("%s.%d", base, n)
				if _, taken := seen[name]; !taken {
					break
				}
			}

			seen[base] = n
		}

		seen[name] = 0
		names[i] = name
	}

	return names
}
