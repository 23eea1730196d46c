package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ycwei/folio"
)

// fmtCmd validates and rewrites the ledger file in canonical form.
type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "validates and formats the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `fol fmt

  Validates and formats the ledger file. This command reads all records,
  validates them, applies available quick-fixes (like assigning missing
  ids), sorts them by date, and writes them back in a canonical JSONL
  format.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (c *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	formatted := folio.NewLedger()
	for a := range ledger.Accounts() {
		account, err := folio.ValidateAccount(a)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid account %q: %v\n", a.ID, err)
			return subcommands.ExitFailure
		}
		formatted.AddAccount(account)
	}
	for _, tx := range ledger.Transactions() {
		tx, err := formatted.Validate(tx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid transaction %q: %v\n", tx.ID, err)
			return subcommands.ExitFailure
		}
		formatted.Append(tx)
	}
	for _, flow := range ledger.CashFlows() {
		flow, err := formatted.ValidateFlow(flow)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Invalid cash flow %q: %v\n", flow.ID, err)
			return subcommands.ExitFailure
		}
		formatted.AddFlow(flow)
	}

	if err := SaveLedger(formatted); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(os.Stderr, "Successfully formatted ledger.")
	return subcommands.ExitSuccess
}
