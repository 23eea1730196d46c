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

// txCmd records a security transaction in the ledger.
type txCmd struct {
	txType   string
	date     string
	ticker   string
	market   string
	price    string
	quantity string
	fees     string
	account  string
	amount   string
	note     string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "record a security transaction" }
func (*txCmd) Usage() string {
	return `fol tx -type <type> -ticker <ticker> -market <market> -account <id> -quantity <q> [-price <p>] [-fees <f>] [-d <date>] [-amount <a>] [-note <text>]

  Records a transaction. Types: BUY, SELL, DIVIDEND, CASH_DIVIDEND,
  TRANSFER_IN, TRANSFER_OUT. -amount overrides the computed cash effect.

Usage Examples:
# Buy 1000 shares of 2330 at 10 TWD with 15 TWD of fees.
$ fol tx -type BUY -ticker 2330 -market TW -account tw1 -quantity 1000 -price 10 -fees 15

`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.txType, "type", "", "Transaction type.")
	f.StringVar(&c.date, "d", "", "Transaction date (defaults to today).")
	f.StringVar(&c.ticker, "ticker", "", "Security ticker.")
	f.StringVar(&c.market, "market", "TW", "Market the security trades on (TW, US, UK, JP).")
	f.StringVar(&c.price, "price", "0", "Price per share in the market currency.")
	f.StringVar(&c.quantity, "quantity", "0", "Number of shares.")
	f.StringVar(&c.fees, "fees", "0", "Fees in the market currency.")
	f.StringVar(&c.account, "account", "", "Account the transaction belongs to.")
	f.StringVar(&c.amount, "amount", "", "Explicit total amount, overriding price*quantity.")
	f.StringVar(&c.note, "note", "", "Free-form note.")
}

func (c *txCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}

	tx := folio.Transaction{
		Ticker:    c.ticker,
		Market:    folio.Market(c.market),
		Type:      folio.TxType(c.txType),
		AccountID: c.account,
		Note:      c.note,
	}
	if c.date != "" {
		if tx.Date, err = folio.ParseDate(c.date); err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing date:", err)
			return subcommands.ExitUsageError
		}
	}
	if tx.Price, err = decimal.NewFromString(c.price); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing price:", err)
		return subcommands.ExitUsageError
	}
	if tx.Quantity, err = decimal.NewFromString(c.quantity); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing quantity:", err)
		return subcommands.ExitUsageError
	}
	if tx.Fees, err = decimal.NewFromString(c.fees); err != nil {
		fmt.Fprintln(os.Stderr, "Error parsing fees:", err)
		return subcommands.ExitUsageError
	}
	if c.amount != "" {
		amount, err := decimal.NewFromString(c.amount)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error parsing amount:", err)
			return subcommands.ExitUsageError
		}
		tx.Amount = &amount
	}

	tx, err = ledger.Validate(tx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid transaction:", err)
		return subcommands.ExitUsageError
	}

	ledger.Append(tx)
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving ledger:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s of %s %s (%s)\n", tx.Type, tx.Quantity, tx.Ticker, tx.ID)
	return subcommands.ExitSuccess
}
