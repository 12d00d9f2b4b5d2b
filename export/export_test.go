package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sheets2table/sheets2table/table"
)

func acl() *table.Table {
	date := func(y int, m time.Month, d int) table.Value {
		return table.Timestamp(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	}

	return table.FromValues("ACL", [][]table.Value{
		{table.Text("Card Number"), table.Text("From"), table.Text("To"), table.Text("Gate"), table.Text("Rate")},
		{table.Number(6001001), date(2020, time.January, 1), date(2020, time.December, 31), table.Boolean(true), table.Number(1.5)},
		{table.Number(6001002), date(2020, time.February, 3), table.Missing{}, table.Boolean(false), table.Number(2)},
	}, true)
}

func TestTSV(t *testing.T) {
	expected := `Card Number	From	To	Gate	Rate
6001001	2020-01-01 00:00:00	2020-12-31 00:00:00	TRUE	1.5
6001002	2020-02-03 00:00:00		FALSE	2
`

	var f strings.Builder

	if err := TSV(&f, acl()); err != nil {
		t.Fatalf("Unexpected error returned from TSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestTSVWithSerialDates(t *testing.T) {
	expected := `Card Number	From	To	Gate	Rate
6001001	43831	44196	TRUE	1.5
6001002	43864		FALSE	2
`

	var f strings.Builder

	if err := TSV(&f, acl(), SerialDates()); err != nil {
		t.Fatalf("Unexpected error returned from TSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestTSVWithoutHeader(t *testing.T) {
	expected := "0\t1\nA\tB\n1\t\n"

	var f strings.Builder
	tsv := table.FromValues("Sheet1", [][]table.Value{
		{table.Text("A"), table.Text("B")},
		{table.Number(1)},
	}, false)

	if err := TSV(&f, tsv); err != nil {
		t.Fatalf("Unexpected error returned from TSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %q\n   got:      %q\n", expected, f.String())
	}
}

func TestTSVQuotesFields(t *testing.T) {
	var f strings.Builder
	tsv := table.FromValues("Notes", [][]table.Value{
		{table.Text("Note")},
		{table.Text("line 1\nline 2")},
		{table.Text(`"quoted"`)},
	}, true)

	require.NoError(t, TSV(&f, tsv))
	assert.Equal(t, "Note\n\"line 1\nline 2\"\n\"\"\"quoted\"\"\"\n", f.String())
}

func TestTSVEmptyTable(t *testing.T) {
	var f strings.Builder

	require.NoError(t, TSV(&f, table.FromValues("Empty", nil, true)))
	assert.Equal(t, "\n", f.String())
}

func TestXLSX(t *testing.T) {
	var b bytes.Buffer

	other := table.FromValues("ACL", [][]table.Value{
		{table.Text("Name")},
		{table.Text("Eve")},
	}, true)

	require.NoError(t, XLSX(&b, acl(), other))

	f, err := excelize.OpenReader(&b)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"ACL", "ACL (2)"}, f.GetSheetList())

	cells := map[string]string{
		"A1": "Card Number",
		"E1": "Rate",
		"A2": "6001001",
		"B2": "43831",
		"C3": "",
		"D2": "1",
		"D3": "0",
		"E2": "1.5",
	}

	for cell, expected := range cells {
		v, err := f.GetCellValue("ACL", cell, excelize.Options{RawCellValue: true})
		require.NoError(t, err)
		assert.Equalf(t, expected, v, "cell %v", cell)
	}

	kind, err := f.GetCellType("ACL", "D2")
	require.NoError(t, err)
	assert.Equal(t, excelize.CellTypeBool, kind)

	v, err := f.GetCellValue("ACL (2)", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Eve", v)
}

func TestXLSXWithoutTables(t *testing.T) {
	var b bytes.Buffer

	assert.Error(t, XLSX(&b))
	assert.Zero(t, b.Len())
}

func TestSheetName(t *testing.T) {
	used := map[string]bool{}

	assert.Equal(t, "Q1_Q2 _draft_", sheetName("Q1/Q2 [draft]", 0, used))
	assert.Equal(t, "Sheet2", sheetName("  ", 1, used))
	assert.Equal(t, "sheet2 (2)", sheetName("sheet2", 2, used))
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz01234", sheetName("abcdefghijklmnopqrstuvwxyz0123456789", 3, used))
	assert.Equal(t, "abcdefghijklmnopqrstuvwxyz0 (2)", sheetName("abcdefghijklmnopqrstuvwxyz0123456789", 4, used))
}
