package table

import (
	"time"

	"github.com/spf13/cast"
)

// Column holds the values of one table column. Values are either Missing or of the
// column's Type: Number for Integer and Float columns, Boolean, Text or Timestamp. A String
// column inferred from mixed kinds keeps each cell's own value and reads as text.
type Column struct {
	Name   string
	Index  int
	Type   Type
	Values []Value
}

func (c *Column) Missing(row int) bool {
	return IsMissing(c.Values[row])
}

func (c *Column) Int(row int) (int64, bool) {
	if n, ok := c.Values[row].(Number); ok && c.Type == TypeInteger {
		return cast.ToInt64(float64(n)), true
	}

	return 0, false
}

func (c *Column) Float(row int) (float64, bool) {
	if n, ok := c.Values[row].(Number); ok {
		return float64(n), true
	}

	return 0, false
}

func (c *Column) Bool(row int) (bool, bool) {
	if b, ok := c.Values[row].(Boolean); ok {
		return bool(b), true
	}

	return false, false
}

func (c *Column) Text(row int) (string, bool) {
	switch v := c.Values[row].(type) {
	case Text:
		return string(v), true

	case Number, Boolean, Timestamp:
		if c.Type == TypeString {
			return v.String(), true
		}
	}

	return "", false
}

func (c *Column) Time(row int) (time.Time, bool) {
	if t, ok := c.Values[row].(Timestamp); ok {
		return time.Time(t), true
	}

	return time.Time{}, false
}

// Interface returns the value at row as a plain Go value (int64, float64, bool, string,
// time.Time or nil for a missing value). Every value of a String column is a string.
func (c *Column) Interface(row int) any {
	if c.Type == TypeString {
		if v, ok := c.Text(row); ok {
			return v
		}

		return nil
	}

	switch v := c.Values[row].(type) {
	case Number:
		if c.Type == TypeInteger {
			return cast.ToInt64(float64(v))
		}
		return float64(v)

	case Boolean:
		return bool(v)

	case Text:
		return string(v)

	case Timestamp:
		return time.Time(v)

	default:
		return nil
	}
}
