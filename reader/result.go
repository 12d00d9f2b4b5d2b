package reader

import (
	"github.com/sheets2table/sheets2table/table"
)

// Result is the ordered set of tables produced by Reader.Fetch.
type Result struct {
	tables []*table.Table
}

// Single returns the table if the result holds exactly one table.
func (r Result) Single() (*table.Table, bool) {
	if len(r.tables) == 1 {
		return r.tables[0], true
	}

	return nil, false
}

// Tables returns the tables in sheet order.
func (r Result) Tables() []*table.Table {
	return append([]*table.Table{}, r.tables...)
}

func (r Result) Len() int {
	return len(r.tables)
}

// IsCollection is true if the result holds more than one table.
func (r Result) IsCollection() bool {
	return len(r.tables) > 1
}
