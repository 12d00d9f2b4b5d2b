package commands

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sheets2table/sheets2table/export"
	"github.com/sheets2table/sheets2table/reader"
	"github.com/sheets2table/sheets2table/session"
	"github.com/sheets2table/sheets2table/table"
)

var GetCmd = Get{
	command: command{
		clientSecret: "",
		credentials:  "",
		debug:        false,
	},

	sheet:            "",
	index:            position{},
	noHeader:         false,
	format:           "tsv",
	file:             "",
	serialDates:      false,
	queriesPerMinute: 0,
}

type Get struct {
	command
	spreadsheet
	sheet            string
	index            position
	noHeader         bool
	format           string
	file             string
	serialDates      bool
	queriesPerMinute int
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves one or all worksheets of a Google Sheets spreadsheet as typed tables"
}

func (cmd *Get) Usage() string {
	return "--url <url> | --id <id> [--sheet <name> | --index <n>] [--no-header] [--format tsv|xlsx] [--file <file>]"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] get [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Retrieves the worksheets of a Google Sheets spreadsheet and writes them as TSV or XLSX.")
	fmt.Println("  Without --sheet or --index all non-empty worksheets are retrieved. TSV output is written")
	fmt.Println("  to the console if --file is not specified, with one file per worksheet if the spreadsheet")
	fmt.Println("  has more than one.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s get --url \"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\" \\\n", APP)
	fmt.Println(`                      --sheet "Class Data" \`)
	fmt.Println(`                      --file "class-data.tsv"`)
	fmt.Println()
	fmt.Printf("    %s get --id 1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms --format xlsx --file \"class-data.xlsx\"\n", APP)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("get")

	cmd.spreadsheet.flags(flagset)

	flagset.StringVar(&cmd.sheet, "sheet", cmd.sheet, "Worksheet name")
	flagset.Var(&cmd.index, "index", "Worksheet position (zero-based)")
	flagset.BoolVar(&cmd.noHeader, "no-header", cmd.noHeader, "Uses the first row as data rather than as the column names")
	flagset.StringVar(&cmd.format, "format", cmd.format, "Output format (tsv or xlsx)")
	flagset.StringVar(&cmd.file, "file", cmd.file, "Output file. Required for xlsx")
	flagset.BoolVar(&cmd.serialDates, "serial-dates", cmd.serialDates, "Writes TSV dates and times as spreadsheet serial numbers")
	flagset.IntVar(&cmd.queriesPerMinute, "qpm", cmd.queriesPerMinute, "Maximum Google Sheets API requests per minute (0 for unlimited)")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	id, err := cmd.spreadsheetID()
	if err != nil {
		return err
	}

	selector, err := selectorOf(cmd.sheet, cmd.index)
	if err != nil {
		return err
	}

	format := strings.ToLower(strings.TrimSpace(cmd.format))
	if format != "tsv" && format != "xlsx" {
		return fmt.Errorf("invalid --format '%v' - expected 'tsv' or 'xlsx'", cmd.format)
	}

	if format == "xlsx" && strings.TrimSpace(cmd.file) == "" {
		return fmt.Errorf("--file is a required option for xlsx")
	}

	if cmd.debug {
		debugf("spreadsheet - ID:%s  sheet:%v  header:%v", id, selector, !cmd.noHeader)
	}

	// ... fetch
	config := cmd.config()
	config.QueriesPerMinute = cmd.queriesPerMinute

	ctx, cancel := interruptible()
	defer cancel()

	s, err := session.Obtain(ctx, config, nil)
	if err != nil {
		return fmt.Errorf("authorisation error (%v) - run '%v authorise' to authorise access to Google Sheets", err, APP)
	}

	result, err := reader.New(s).Fetch(ctx, id, selector, reader.Options{PromoteHeader: !cmd.noHeader})
	if err != nil {
		return fmt.Errorf("unable to retrieve spreadsheet (%v)", err)
	}

	if result.Len() == 0 {
		warnf("spreadsheet %v has no data", id)
		return nil
	}

	// ... write
	tables := result.Tables()

	if format == "xlsx" {
		if err := write(cmd.file, func(w io.Writer) error { return export.XLSX(w, tables...) }); err != nil {
			return fmt.Errorf("error creating XLSX file (%v)", err)
		}

		infof("retrieved %v to file %s", describe(tables), cmd.file)

		return nil
	}

	var opts []export.Option
	if cmd.serialDates {
		opts = append(opts, export.SerialDates())
	}

	if strings.TrimSpace(cmd.file) == "" {
		return tsv(os.Stdout, tables, opts...)
	}

	for _, t := range tables {
		file := filename(cmd.file, t.Title, result.IsCollection())
		if err := write(file, func(w io.Writer) error { return export.TSV(w, t, opts...) }); err != nil {
			return fmt.Errorf("error creating TSV file (%v)", err)
		}

		infof("retrieved %v to file %s", t, file)
	}

	return nil
}

func selectorOf(sheet string, index position) (reader.Selector, error) {
	switch {
	case sheet != "" && index.set:
		return reader.Selector{}, fmt.Errorf("--sheet and --index are mutually exclusive")

	case sheet != "":
		return reader.ByName(sheet), nil

	case index.set:
		return reader.ByIndex(index.value), nil

	default:
		return reader.All(), nil
	}
}

// position is the --index flag value. Any integer is accepted and checked against the
// worksheets by reader.Resolve.
type position struct {
	value int
	set   bool
}

func (p *position) String() string {
	if p == nil || !p.set {
		return ""
	}

	return strconv.Itoa(p.value)
}

func (p *position) Set(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid worksheet position '%v'", s)
	}

	p.value = v
	p.set = true

	return nil
}

// tsv writes the tables to the console, each preceded by its title when there are several.
func tsv(w io.Writer, tables []*table.Table, opts ...export.Option) error {
	for i, t := range tables {
		if len(tables) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}

			fmt.Fprintf(w, "# %v\n", t.Title)
		}

		if err := export.TSV(w, t, opts...); err != nil {
			return err
		}
	}

	return nil
}

// filename returns the output file for a table, suffixed with the worksheet title when a
// spreadsheet produced several tables e.g. 'class.tsv' -> 'class - Sheet1.tsv'.
func filename(file, title string, many bool) string {
	if !many {
		return file
	}

	suffix := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`/\:*?"<>|`, r) {
			return '_'
		}
		return r
	}, title)

	ext := filepath.Ext(file)

	return fmt.Sprintf("%s - %s%s", strings.TrimSuffix(file, ext), suffix, ext)
}

func describe(tables []*table.Table) string {
	if len(tables) == 1 {
		return tables[0].String()
	}

	return fmt.Sprintf("%d worksheets", len(tables))
}
