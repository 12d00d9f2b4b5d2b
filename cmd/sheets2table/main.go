package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	uhppoted "github.com/uhppoted/uhppoted-lib/command"

	"github.com/sheets2table/sheets2table/commands"
)

var cli = []uhppoted.Command{
	&commands.AuthoriseCmd,
	&commands.GetCmd,
	&commands.SheetsCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Debug: false,
}

var env = ""

var help = uhppoted.NewHelp(commands.APP, cli, nil)

func main() {
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.StringVar(&env, "env", env, "Loads environment variables (e.g. CLIENT_SECRET_PATH) from a .env file")
	flag.Parse()

	if env != "" {
		if err := godotenv.Load(env); err != nil {
			fmt.Printf("\nError loading environment file %v (%v)\n\n", env, err)
			os.Exit(1)
		}
	}

	cmd, err := uhppoted.Parse(cli, nil, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute()
		os.Exit(1)
	}

	if err = cmd.Execute(&options); err != nil {
		log.Fatalf("%-5s %v", "ERROR", err)
	}
}
