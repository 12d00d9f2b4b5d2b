package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/sheets2table/sheets2table/table"
)

const (
	DateTimeFormat = "yyyy-mm-dd hh:mm:ss"

	maxSheetName = 31
)

// XLSX writes the tables to an Excel workbook with one worksheet per table, in order. Cells
// are typed: numbers, booleans and strings are written as such and timestamps as date
// formatted serial numbers. Missing values are left blank.
func XLSX(w io.Writer, tables ...*table.Table) error {
	if len(tables) == 0 {
		return errors.New("no tables to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	format := DateTimeFormat
	style, err := f.NewStyle(&excelize.Style{CustomNumFmt: &format})
	if err != nil {
		return errors.Wrap(err, "error creating date style")
	}

	used := map[string]bool{}
	for i, t := range tables {
		if t == nil {
			return errors.Errorf("nil table at position %d", i)
		}

		name := sheetName(t.Title, i, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return err
		}

		if err := worksheet(f, name, t, style); err != nil {
			return errors.Wrapf(err, "error writing worksheet '%v'", name)
		}
	}

	f.SetActiveSheet(0)

	return f.Write(w)
}

func worksheet(f *excelize.File, sheet string, t *table.Table, style int) error {
	for col, label := range t.Header() {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}

		if err := f.SetCellValue(sheet, cell, label); err != nil {
			return err
		}
	}

	for i := range t.Columns {
		c := &t.Columns[i]
		for row := 0; row < t.Len(); row++ {
			v := c.Interface(row)
			if v == nil {
				continue
			}

			cell, err := excelize.CoordinatesToCellName(i+1, row+2)
			if err != nil {
				return err
			}

			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}

			if c.Type == table.TypeTimestamp {
				if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// sheetName converts a table title to a unique, valid worksheet name.
func sheetName(title string, index int, used map[string]bool) string {
	name := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`[]:*?/\`, r) {
			return '_'
		}
		return r
	}, strings.TrimSpace(title))

	name = strings.Trim(name, "'")
	if name == "" {
		name = fmt.Sprintf("Sheet%d", index+1)
	}

	name = truncate(name, maxSheetName)
	unique := name
	for n := 2; used[strings.ToLower(unique)]; n++ {
		suffix := fmt.Sprintf(" (%d)", n)
		unique = truncate(name, maxSheetName-len(suffix)) + suffix
	}

	used[strings.ToLower(unique)] = true

	return unique
}

func truncate(s string, n int) string {
	if runes := []rune(s); len(runes) > n {
		return string(runes[:n])
	}

	return s
}
