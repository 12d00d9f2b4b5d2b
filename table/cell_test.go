package table

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/sheets/v4"
)

func number(v float64) *float64 { return &v }
func text(v string) *string     { return &v }
func boolean(v bool) *bool      { return &v }

func TestParseCell(t *testing.T) {
	tests := map[string]struct {
		cell     *sheets.CellData
		expected Value
	}{
		"nil cell": {
			cell:     nil,
			expected: Missing{},
		},
		"no effective value": {
			cell:     &sheets.CellData{},
			expected: Missing{},
		},
		"no effective value with date format": {
			cell: &sheets.CellData{
				EffectiveFormat: &sheets.CellFormat{NumberFormat: &sheets.NumberFormat{Type: "DATE"}},
			},
			expected: Missing{},
		},
		"error value": {
			cell: &sheets.CellData{
				EffectiveValue: &sheets.ExtendedValue{ErrorValue: &sheets.ErrorValue{Type: "DIVIDE_BY_ZERO"}},
			},
			expected: Missing{},
		},
		"number": {
			cell:     &sheets.CellData{EffectiveValue: &sheets.ExtendedValue{NumberValue: number(12.5)}},
			expected: Number(12.5),
		},
		"zero": {
			cell:     &sheets.CellData{EffectiveValue: &sheets.ExtendedValue{NumberValue: number(0)}},
			expected: Number(0),
		},
		"string": {
			cell:     &sheets.CellData{EffectiveValue: &sheets.ExtendedValue{StringValue: text(" qwerty ")}},
			expected: Text(" qwerty "),
		},
		"empty string": {
			cell:     &sheets.CellData{EffectiveValue: &sheets.ExtendedValue{StringValue: text("")}},
			expected: Text(""),
		},
		"boolean": {
			cell:     &sheets.CellData{EffectiveValue: &sheets.ExtendedValue{BoolValue: boolean(false)}},
			expected: Boolean(false),
		},
		"number with currency format": {
			cell: &sheets.CellData{
				EffectiveValue:  &sheets.ExtendedValue{NumberValue: number(44197)},
				EffectiveFormat: &sheets.CellFormat{NumberFormat: &sheets.NumberFormat{Type: "CURRENCY"}},
			},
			expected: Number(44197),
		},
		"number with format but no number format": {
			cell: &sheets.CellData{
				EffectiveValue:  &sheets.ExtendedValue{NumberValue: number(44197)},
				EffectiveFormat: &sheets.CellFormat{},
			},
			expected: Number(44197),
		},
		"date": {
			cell: &sheets.CellData{
				EffectiveValue:  &sheets.ExtendedValue{NumberValue: number(44197)},
				EffectiveFormat: &sheets.CellFormat{NumberFormat: &sheets.NumberFormat{Type: "DATE"}},
			},
			expected: Timestamp(time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)),
		},
		"date-time": {
			cell: &sheets.CellData{
				EffectiveValue:  &sheets.ExtendedValue{NumberValue: number(44197.75)},
				EffectiveFormat: &sheets.CellFormat{NumberFormat: &sheets.NumberFormat{Type: "DATE_TIME"}},
			},
			expected: Timestamp(time.Date(2021, time.January, 1, 18, 0, 0, 0, time.UTC)),
		},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseCell(test.cell))
		})
	}
}

func TestParseRow(t *testing.T) {
	row := &sheets.RowData{
		Values: []*sheets.CellData{
			{EffectiveValue: &sheets.ExtendedValue{StringValue: text("Gate")}},
			{},
			{EffectiveValue: &sheets.ExtendedValue{NumberValue: number(7)}},
		},
	}

	expected := []Value{Text("Gate"), Missing{}, Number(7)}

	assert.Equal(t, expected, ParseRow(row))
	assert.Equal(t, []Value{}, ParseRow(nil))
}

func TestFromSerial(t *testing.T) {
	tests := []struct {
		serial   float64
		expected time.Time
	}{
		{0, time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)},
		{1, time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{2, time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{61, time.Date(1900, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{0.5, time.Date(1899, time.December, 30, 12, 0, 0, 0, time.UTC)},
		{-1, time.Date(1899, time.December, 29, 0, 0, 0, 0, time.UTC)},
		{-0.25, time.Date(1899, time.December, 29, 18, 0, 0, 0, time.UTC)},
		{44197, time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{45658.5625, time.Date(2025, time.January, 1, 13, 30, 0, 0, time.UTC)},
		{2958465, time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)},
	}

	for _, test := range tests {
		if dt := FromSerial(test.serial); !dt.Equal(test.expected) {
			t.Errorf("Incorrect timestamp for serial %v\n   expected: %v\n   got:      %v", test.serial, test.expected, dt)
		}
	}
}

func TestFromSerialRoundsToMicroseconds(t *testing.T) {
	// 1 second past midnight is not exactly representable as a fraction of a day
	serial := 44197 + 1.0/86400
	expected := time.Date(2021, time.January, 1, 0, 0, 1, 0, time.UTC)

	assert.True(t, FromSerial(serial).Equal(expected), "got %v", FromSerial(serial))
}

func TestToSerial(t *testing.T) {
	for _, serial := range []float64{0, 1, 0.5, 44197, 44197.75, 2958465} {
		assert.InDelta(t, serial, ToSerial(FromSerial(serial)), 1e-9)
	}
}
