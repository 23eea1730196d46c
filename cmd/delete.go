package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteCmd removes a record from the ledger by id. Records are immutable:
// corrections are made by deleting and re-adding.
type deleteCmd struct {
	id string
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a transaction or cash flow by id" }
func (*deleteCmd) Usage() string {
	return `fol delete -id <id>

  Deletes the transaction or cash flow with the given id.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Identifier of the record to delete.")
}

func (c *deleteCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "the -id flag is required")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	if !ledger.DeleteTransaction(c.id) && !ledger.DeleteCashFlow(c.id) {
		fmt.Fprintf(os.Stderr, "no record with id %q\n", c.id)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Deleted record %s\n", c.id)
	return subcommands.ExitSuccess
}
