package table

import (
	"google.golang.org/api/sheets/v4"
)

// Number format types that mark a numeric cell as a serial date.
const (
	FormatDate     = "DATE"
	FormatDateTime = "DATE_TIME"
)

// ParseCell extracts the typed value of a cell. Cells without an effective value (and
// cells holding a formula error) are Missing. Numbers formatted as a date or date-time
// are reconstructed as timestamps.
func ParseCell(cell *sheets.CellData) Value {
	if cell == nil || cell.EffectiveValue == nil {
		return Missing{}
	}

	v := cell.EffectiveValue

	switch {
	case v.BoolValue != nil:
		return Boolean(*v.BoolValue)

	case v.StringValue != nil:
		return Text(*v.StringValue)

	case v.NumberValue != nil:
		if isDate(cell.EffectiveFormat) {
			return Timestamp(FromSerial(*v.NumberValue))
		}

		return Number(*v.NumberValue)

	default:
		return Missing{}
	}
}

func isDate(format *sheets.CellFormat) bool {
	if format == nil || format.NumberFormat == nil {
		return false
	}

	switch format.NumberFormat.Type {
	case FormatDate, FormatDateTime:
		return true

	default:
		return false
	}
}

// ParseRow extracts the typed values of a row. A nil row is an empty row.
func ParseRow(row *sheets.RowData) []Value {
	if row == nil {
		return []Value{}
	}

	values := make([]Value, len(row.Values))
	for i, cell := range row.Values {
		values[i] = ParseCell(cell)
	}

	return values
}
