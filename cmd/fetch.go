package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"

	"github.com/google/subcommands"
	"github.com/ycwei/folio"
	"github.com/ycwei/folio/histprice"
	"github.com/ycwei/folio/quote"
)

// fetchCmd retrieves quotes. Without -year it probes the live quote service;
// with -year it asks the historical service for a Dec-31 snapshot and merges
// it into the history file.
type fetchCmd struct {
	year int
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch live quotes or a historical year-end snapshot" }
func (*fetchCmd) Usage() string {
	return `fol fetch [-year <y>]

  Without -year, fetches live prices for every ticker in the ledger and
  prints them. With -year, fetches that year's Dec-31 closing prices and
  exchange rates and merges them into the history file, filling only
  missing values.

Usage Examples:
# Backfill 2023 for the net-worth reconstruction.
$ fol fetch -year 2023

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.year, "year", 0, "Year to fetch a historical snapshot for.")
}

func (c *fetchCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	keys := slices.Collect(ledger.Tickers())

	if c.year == 0 {
		return c.fetchLive(ctx, keys)
	}
	return c.fetchYear(ctx, keys)
}

func (c *fetchCmd) fetchLive(ctx context.Context, keys []folio.SecurityKey) subcommands.ExitStatus {
	quotes, err := quote.NewService().Fetch(ctx, keys)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning, some quotes could not be fetched:", err)
	}
	for symbol, price := range quotes.Prices {
		fmt.Printf("%s: %v\n", symbol, price)
	}
	fmt.Printf("USD/TWD: %v\n", quotes.USDTWD)
	fmt.Printf("JPY/TWD: %v\n", quotes.JPYTWD)
	return subcommands.ExitSuccess
}

func (c *fetchCmd) fetchYear(ctx context.Context, keys []folio.SecurityKey) subcommands.ExitStatus {
	hist, err := DecodeHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading history:", err)
		return subcommands.ExitFailure
	}

	service, err := histprice.NewService(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error starting historical price service:", err)
		return subcommands.ExitFailure
	}
	snapshot, err := service.YearEnd(ctx, c.year, keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching year %d: %v\n", c.year, err)
		return subcommands.ExitFailure
	}

	hist.Merge(folio.HistoricalData{c.year: snapshot})
	if err := SaveHistory(hist); err != nil {
		fmt.Fprintln(os.Stderr, "Error saving history:", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Merged %d prices for %d into %s\n", len(snapshot.Prices), c.year, *historyFile)
	return subcommands.ExitSuccess
}
