package reader

import (
	"context"

	"google.golang.org/api/sheets/v4"
)

//go:generate mockgen -destination=mocks/mock_source.go -package=mocks github.com/sheets2table/sheets2table/reader Source

// Source supplies the raw spreadsheet data. Info returns the sheet properties only, Fetch
// returns the grid data for the named sheets (or for all sheets if no names are given).
type Source interface {
	Info(ctx context.Context, spreadsheetID string) (*sheets.Spreadsheet, error)
	Fetch(ctx context.Context, spreadsheetID string, names ...string) (*sheets.Spreadsheet, error)
}
