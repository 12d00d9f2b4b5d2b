package reader

import (
	"context"
	"sort"

	"github.com/pkg/errors"
	"google.golang.org/api/sheets/v4"

	"github.com/sheets2table/sheets2table/table"
)

type Options struct {
	PromoteHeader bool
}

func DefaultOptions() Options {
	return Options{
		PromoteHeader: true,
	}
}

type Reader struct {
	source Source
}

func New(source Source) *Reader {
	return &Reader{
		source: source,
	}
}

// Sheets returns the sheet titles of a spreadsheet in sheet order.
func (r *Reader) Sheets(ctx context.Context, spreadsheetID string) ([]string, error) {
	info, err := r.source.Info(ctx, spreadsheetID)
	if err != nil {
		return nil, err
	} else if info == nil {
		return nil, &TransportError{Op: "get spreadsheet info", Err: errors.New("empty response")}
	}

	return titles(ordered(info.Sheets)), nil
}

// Fetch retrieves the selected worksheets and converts each one to a table. The selector
// is resolved against the spreadsheet's sheet names before any cell data is retrieved.
//
// A selector naming a single sheet always yields exactly that table, even if it is empty.
// Otherwise empty tables are discarded from the result.
func (r *Reader) Fetch(ctx context.Context, spreadsheetID string, selector Selector, options Options) (Result, error) {
	names, err := r.Sheets(ctx, spreadsheetID)
	if err != nil {
		return Result{}, err
	}

	selected, err := Resolve(names, selector)
	if err != nil {
		return Result{}, err
	}

	var response *sheets.Spreadsheet
	if selector.Explicit() {
		response, err = r.source.Fetch(ctx, spreadsheetID, selected...)
	} else {
		response, err = r.source.Fetch(ctx, spreadsheetID)
	}

	if err != nil {
		return Result{}, err
	} else if response == nil {
		return Result{}, &TransportError{Op: "get spreadsheet data", Err: errors.New("empty response")}
	}

	tables := []*table.Table{}
	for _, sheet := range ordered(response.Sheets) {
		if sheet.Properties == nil || !contains(selected, sheet.Properties.Title) {
			continue
		}

		tables = append(tables, table.Build(sheet.Properties.Title, rows(sheet), options.PromoteHeader))
	}

	if selector.Explicit() {
		if len(tables) != 1 {
			return Result{}, &TransportError{
				Op:  "get spreadsheet data",
				Err: errors.Errorf("expected 1 sheet for %v, got %d", selector, len(tables)),
			}
		}

		return Result{tables: tables}, nil
	}

	return aggregate(tables), nil
}

// aggregate discards empty tables from a multi-sheet result.
func aggregate(tables []*table.Table) Result {
	if len(tables) <= 1 {
		return Result{tables: tables}
	}

	nonempty := []*table.Table{}
	for _, t := range tables {
		if !t.Empty() {
			nonempty = append(nonempty, t)
		}
	}

	return Result{tables: nonempty}
}

// rows concatenates the grid data of a sheet. A sheet without data has no rows.
func rows(sheet *sheets.Sheet) []*sheets.RowData {
	list := []*sheets.RowData{}
	for _, grid := range sheet.Data {
		if grid != nil {
			list = append(list, grid.RowData...)
		}
	}

	return list
}

func ordered(list []*sheets.Sheet) []*sheets.Sheet {
	sorted := []*sheets.Sheet{}
	for _, sheet := range list {
		if sheet != nil && sheet.Properties != nil {
			sorted = append(sorted, sheet)
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Properties.Index < sorted[j].Properties.Index
	})

	return sorted
}

func titles(list []*sheets.Sheet) []string {
	names := []string{}
	for _, sheet := range list {
		names = append(names, sheet.Properties.Title)
	}

	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}

	return false
}
