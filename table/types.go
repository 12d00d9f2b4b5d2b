package table

import (
	"math"
)

// Type is the semantic type inferred for a column.
type Type int

const (
	TypeFloat Type = iota
	TypeInteger
	TypeBoolean
	TypeString
	TypeTimestamp
)

func (t Type) String() string {
	switch t {
	case TypeInteger:
		return "integer"
	case TypeFloat:
		return "float"
	case TypeBoolean:
		return "boolean"
	case TypeString:
		return "string"
	case TypeTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// infer returns the column type for a set of values. Columns holding only missing values
// are Float, columns mixing kinds are String and keep the individual cell values.
func infer(values []Value) (Type, []Value) {
	var numbers, integers, texts, booleans, timestamps, present int

	for _, v := range values {
		switch n := v.(type) {
		case Number:
			numbers++
			if isIntegral(float64(n)) {
				integers++
			}

		case Text:
			texts++

		case Boolean:
			booleans++

		case Timestamp:
			timestamps++

		default:
			continue
		}

		present++
	}

	switch {
	case present == 0:
		return TypeFloat, values

	case numbers == present && integers == present:
		return TypeInteger, values

	case numbers == present:
		return TypeFloat, values

	case booleans == present:
		return TypeBoolean, values

	case timestamps == present:
		return TypeTimestamp, values

	case texts == present:
		return TypeString, values
	}

	return TypeString, values
}

func isIntegral(f float64) bool {
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}
