package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/ycwei/folio"
)

// accountCmd declares a new account or lists the existing ones.
type accountCmd struct {
	id       string
	name     string
	currency string
	sub      bool
}

func (*accountCmd) Name() string     { return "account" }
func (*accountCmd) Synopsis() string { return "declare an account or list existing ones" }
func (*accountCmd) Usage() string {
	return `fol account [-id <id>] -name <name> [-currency <code>] [-sub]

  Declares a new account in the ledger. Without -name, lists all accounts.

Usage Examples:
# Declare a TWD brokerage account.
$ fol account -id tw1 -name "Broker TW" -currency TWD

`
}

func (c *accountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Account identifier. Generated when empty.")
	f.StringVar(&c.name, "name", "", "Account display name.")
	f.StringVar(&c.currency, "currency", folio.CurrencyTWD, "Account currency (TWD, USD, JPY).")
	f.BoolVar(&c.sub, "sub", false, "Mark the account as a sub-brokerage account.")
}

func (c *accountCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	if c.name == "" {
		printMarkdown(renderAccounts(ledger))
		return subcommands.ExitSuccess
	}

	account, err := folio.ValidateAccount(folio.Account{
		ID:             c.id,
		Name:           c.name,
		Currency:       c.currency,
		IsSubBrokerage: c.sub,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid account:", err)
		return subcommands.ExitUsageError
	}

	ledger.AddAccount(account)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Declared account %q (%s)\n", account.Name, account.ID)
	return subcommands.ExitSuccess
}

func renderAccounts(l *folio.Ledger) string {
	var b strings.Builder
	b.WriteString("# Accounts\n\n")
	b.WriteString("| ID | Name | Currency | Sub-brokerage |\n")
	b.WriteString("|---|---|---|---|\n")
	for a := range l.Accounts() {
		sub := ""
		if a.IsSubBrokerage {
			sub = "yes"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", a.ID, a.Name, a.Currency, sub)
	}
	return b.String()
}
