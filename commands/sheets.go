package commands

import (
	"flag"
	"fmt"

	"github.com/sheets2table/sheets2table/reader"
	"github.com/sheets2table/sheets2table/session"
)

var SheetsCmd = Sheets{
	command: command{
		clientSecret: "",
		credentials:  "",
		debug:        false,
	},
}

type Sheets struct {
	command
	spreadsheet
}

func (cmd *Sheets) Name() string {
	return "sheets"
}

func (cmd *Sheets) Description() string {
	return "Lists the worksheets of a Google Sheets spreadsheet"
}

func (cmd *Sheets) Usage() string {
	return "--url <url> | --id <id>"
}

func (cmd *Sheets) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] sheets [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Lists the worksheet names of a Google Sheets spreadsheet with their zero-based positions,")
	fmt.Println("  for use with the 'get' command --sheet and --index options.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s sheets --url \"https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms\"\n", APP)
	fmt.Println()
}

func (cmd *Sheets) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("sheets")

	cmd.spreadsheet.flags(flagset)

	return flagset
}

func (cmd *Sheets) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	id, err := cmd.spreadsheetID()
	if err != nil {
		return err
	}

	ctx, cancel := interruptible()
	defer cancel()

	s, err := session.Obtain(ctx, cmd.config(), nil)
	if err != nil {
		return fmt.Errorf("authorisation error (%v) - run '%v authorise' to authorise access to Google Sheets", err, APP)
	}

	names, err := reader.New(s).Sheets(ctx, id)
	if err != nil {
		return fmt.Errorf("unable to retrieve spreadsheet (%v)", err)
	}

	for i, name := range names {
		fmt.Printf("%3d  %s\n", i, name)
	}

	return nil
}
