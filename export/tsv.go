package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/sheets2table/sheets2table/table"
)

// Option customises the TSV output.
type Option func(*options)

type options struct {
	serialDates bool
}

// SerialDates renders timestamps as spreadsheet serial day numbers instead of
// 'yyyy-mm-dd HH:MM:SS'.
func SerialDates() Option {
	return func(o *options) {
		o.serialDates = true
	}
}

// TSV writes the table as a header line followed by the data rows, tab separated. Missing
// values are written as empty fields.
func TSV(f io.Writer, t *table.Table, opts ...Option) error {
	if t == nil {
		return errors.New("nil table")
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	if err := w.Write(t.Header()); err != nil {
		return err
	}

	for r := 0; r < t.Len(); r++ {
		record := make([]string, t.Width())
		for i := range t.Columns {
			record[i] = format(&t.Columns[i], r, o)
		}

		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}

func format(c *table.Column, row int, o options) string {
	switch v := c.Interface(row).(type) {
	case nil:
		return ""

	case int64:
		return strconv.FormatInt(v, 10)

	case time.Time:
		if o.serialDates {
			return strconv.FormatFloat(table.ToSerial(v), 'f', -1, 64)
		}
		return table.Timestamp(v).String()

	default:
		return c.Values[row].String()
	}
}
