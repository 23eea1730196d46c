// Package cmd implements the CLI application to manage the ledger.
package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"slices"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/ycwei/folio"
	"github.com/ycwei/folio/quote"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&accountCmd{}, "ledger")
	c.Register(&txCmd{}, "ledger")
	c.Register(&flowCmd{}, "ledger")
	c.Register(&deleteCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&holdingsCmd{}, "reports")
	c.Register(&summaryCmd{}, "reports")
	c.Register(&networthCmd{}, "reports")
	c.Register(&annualCmd{}, "reports")
	c.Register(&allocationCmd{}, "reports")
	c.Register(&performanceCmd{}, "reports")
	c.Register(&chartCmd{}, "reports")

	c.Register(&fetchCmd{}, "quotes")
	c.Register(&topicCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", "ledger.jsonl", "Path to the ledger file (JSONL format)")
var historyFile = flag.String("history-file", "history.json", "Path to the historical year-end prices file (JSON)")
var configFile = flag.String("config-file", defaultConfigPath(), "Path to the configuration file (YAML)")

// DecodeLedger loads the app ledger file. A missing file yields an empty
// ledger so the first command can bootstrap it.
func DecodeLedger() (*folio.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return folio.NewLedger(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return folio.DecodeLedger(f)
}

// SaveLedger rewrites the app ledger file in canonical form.
func SaveLedger(l *folio.Ledger) error {
	f, err := os.Create(*ledgerFile)
	if err != nil {
		return err
	}
	if err := folio.EncodeLedger(f, l); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// DecodeHistory loads the historical year-end snapshots. A missing file
// yields an empty map.
func DecodeHistory() (folio.HistoricalData, error) {
	content, err := os.ReadFile(*historyFile)
	if errors.Is(err, fs.ErrNotExist) {
		return make(folio.HistoricalData), nil
	}
	if err != nil {
		return nil, err
	}
	hist := make(folio.HistoricalData)
	if err := json.Unmarshal(content, &hist); err != nil {
		return nil, fmt.Errorf("invalid history file %q: %w", *historyFile, err)
	}
	return hist, nil
}

// SaveHistory persists the historical snapshots.
func SaveHistory(hist folio.HistoricalData) error {
	content, err := json.MarshalIndent(hist, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(*historyFile, content, 0644)
}

// loadQuotes builds the quotes for a report: configured prices and rates
// first, then live quotes fetched for every ticker the ledger knows, filling
// whatever the configuration left unset. Fetch failures degrade to the
// configured values with a warning.
func loadQuotes(ctx context.Context, l *folio.Ledger) *folio.Quotes {
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		log.Printf("warning, ignoring configuration: %v", err)
		cfg = &Config{}
	}
	quotes := cfg.Quotes()

	fetched, err := quote.NewService().Fetch(ctx, slices.Collect(l.Tickers()))
	if err != nil {
		log.Printf("warning, some quotes could not be fetched: %v", err)
	}
	quotes.Merge(fetched)
	return &quotes
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text when rendering is not possible.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(110))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
