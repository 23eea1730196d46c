package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/ycwei/folio"
)

// flowCmd records a cash movement in the ledger.
type flowCmd struct {
	flowType  string
	date      string
	account   string
	target    string
	amount    string
	amountTWD string
	rate      string
	category  string
}

func (*flowCmd) Name() string     { return "flow" }
func (*flowCmd) Synopsis() string { return "record a cash deposit, withdrawal, transfer or interest" }
func (*flowCmd) Usage() string {
	return `fol flow -type <type> -account <id> -amount <a> [-d <date>] [-to <id>] [-rate <r>] [-twd <a>] [-category <c>]

  Records a cash flow. Types: DEPOSIT, WITHDRAW, TRANSFER, INTEREST.
  TRANSFER requires -to; -rate records the TWD rate observed at the time.

Usage Examples:
# Wire 3000 USD from the TWD account at a rate of 31.5.
$ fol flow -type TRANSFER -account tw1 -to us1 -amount 94500 -rate 31.5

`
}

func (c *flowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.flowType, "type", "", "Cash flow type.")
	f.StringVar(&c.date, "d", "", "Flow date (defaults to today).")
	f.StringVar(&c.account, "account", "", "Source account.")
	f.StringVar(&c.target, "to", "", "Target account, for transfers.")
	f.StringVar(&c.amount, "amount", "0", "Amount in the source account's currency.")
	f.StringVar(&c.amountTWD, "twd", "", "Fixed TWD valuation of the flow.")
	f.StringVar(&c.rate, "rate", "", "TWD exchange rate observed at flow time.")
	f.StringVar(&c.category, "category", "", "Free-form category.")
}

func (c *flowCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	flow := folio.CashFlow{
		Type:            folio.FlowType(c.flowType),
		AccountID:       c.account,
		TargetAccountID: c.target,
		Category:        c.category,
	}
	if c.date != "" {
		if flow.Date, err = folio.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing date:", err)
			return subcommands.ExitUsageError
		}
	}
	if flow.Amount, err = decimal.NewFromString(c.amount); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing amount:", err)
		return subcommands.ExitUsageError
	}
	if c.amountTWD != "" {
		twd, err := decimal.NewFromString(c.amountTWD)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing twd amount:", err)
			return subcommands.ExitUsageError
		}
		flow.AmountTWD = &twd
	}
	if c.rate != "" {
		rate, err := decimal.NewFromString(c.rate)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing rate:", err)
			return subcommands.ExitUsageError
		}
		flow.ExchangeRate = &rate
	}

	flow, err = ledger.ValidateFlow(flow)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid cash flow:", err)
		return subcommands.ExitUsageError
	}

	ledger.AddFlow(flow)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s on %s (%s)\n", flow.Type, flow.Amount, flow.AccountID, flow.ID)
	return subcommands.ExitSuccess
}
