package commands

import (
	"flag"
	"fmt"
	"os"

	"github.com/sheets2table/sheets2table/session"
)

var AuthoriseCmd = Authorise{
	command: command{
		clientSecret: "",
		credentials:  "",
		debug:        false,
	},

	paste:   false,
	address: "127.0.0.1:0",
}

type Authorise struct {
	command
	paste   bool
	address string
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises sheets2table to read Google Sheets spreadsheets on behalf of the user"
}

func (cmd *Authorise) Usage() string {
	return "[--client-secret <file>] [--credentials <file>] [--paste]"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] authorise [options]\n", APP)
	fmt.Println()
	fmt.Println("  Runs the Google OAuth2 consent flow for read-only access to Google Sheets and saves")
	fmt.Println("  the authorised user credentials for subsequent (unattended) use by the other commands.")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf("    %s authorise\n", APP)
	fmt.Printf("    %s authorise --client-secret \"client_secret.json\" --credentials \"credentials.json\" --paste\n", APP)
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("authorise")

	flagset.BoolVar(&cmd.paste, "paste", cmd.paste, "Prompts for the authorization code instead of receiving it on a local HTTP server")
	flagset.StringVar(&cmd.address, "address", cmd.address, "Local HTTP server bind address for the OAuth2 redirect")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	config := cmd.config()

	var consent session.Consent = session.Loopback{
		Address: cmd.address,
	}

	if cmd.paste {
		consent = session.Prompt{
			In:  os.Stdin,
			Out: os.Stdout,
		}
	}

	ctx, cancel := interruptible()
	defer cancel()

	if err := session.Authorise(ctx, config, consent); err != nil {
		return fmt.Errorf("authorisation error (%v)", err)
	}

	if cmd.debug {
		debugf("saved credentials to %v", config.Credentials)
	}

	return nil
}
