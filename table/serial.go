package table

import (
	"math"
	"time"
)

// Epoch is day zero of the spreadsheet serial date system (December 30, 1899). Serial
// numbers count days from this instant and the fractional part is the time of day.
var Epoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

const microsPerDay = 24 * 60 * 60 * 1000 * 1000

// FromSerial converts a spreadsheet serial date number to a UTC timestamp, rounded to the
// nearest microsecond.
func FromSerial(serial float64) time.Time {
	days := math.Floor(serial)
	micros := math.Round((serial - days) * microsPerDay)

	return Epoch.AddDate(0, 0, int(days)).Add(time.Duration(micros) * time.Microsecond)
}

// ToSerial is the inverse of FromSerial.
func ToSerial(t time.Time) float64 {
	t = t.UTC()
	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	days := float64((midnight.Unix() - Epoch.Unix()) / 86400)
	fraction := float64(t.Sub(midnight).Microseconds()) / microsPerDay

	return days + fraction
}
