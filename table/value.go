package table

import (
	"strconv"
	"time"
)

// Value is a single typed cell value. The concrete type is one of Missing, Number, Text,
// Boolean or Timestamp.
type Value interface {
	String() string
	value()
}

// Missing marks an empty cell. It is never equivalent to zero or to an empty string.
type Missing struct{}

type Number float64

type Text string

type Boolean bool

type Timestamp time.Time

const TimestampFormat = "2006-01-02 15:04:05"

func (Missing) value()   {}
func (Number) value()    {}
func (Text) value()      {}
func (Boolean) value()   {}
func (Timestamp) value() {}

func (Missing) String() string {
	return ""
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (t Text) String() string {
	return string(t)
}

func (b Boolean) String() string {
	if b {
		return "TRUE"
	}

	return "FALSE"
}

func (t Timestamp) String() string {
	tt := time.Time(t)
	if tt.Nanosecond() != 0 {
		return tt.Format("2006-01-02 15:04:05.000000")
	}

	return tt.Format(TimestampFormat)
}

// IsMissing returns true if v is nil or a Missing marker.
func IsMissing(v Value) bool {
	switch v.(type) {
	case nil, Missing:
		return true
	default:
		return false
	}
}
