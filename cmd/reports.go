package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/ycwei/folio"
	"github.com/ycwei/folio/render"
)

// holdingsCmd displays the current positions.
type holdingsCmd struct{}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "display the current positions" }
func (*holdingsCmd) Usage() string {
	return `fol holdings

  Displays every open position with its average cost, current value,
  unrealized P/L and annualized return.
`
}
func (*holdingsCmd) SetFlags(_ *flag.FlagSet) {}

func (c *holdingsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	quotes := loadQuotes(ctx, ledger)
	printMarkdown(render.HoldingsMarkdown(folio.Holdings(ledger, quotes)))
	return subcommands.ExitSuccess
}

// summaryCmd displays the headline portfolio figures.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display a portfolio performance summary" }
func (*summaryCmd) Usage() string {
	return `fol summary

  Displays the headline figures: net invested, total value, P/L, cash,
  annualized return and accumulated dividends, all in TWD.
`
}
func (*summaryCmd) SetFlags(_ *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	quotes := loadQuotes(ctx, ledger)
	printMarkdown(render.SummaryMarkdown(folio.Summarize(ledger, quotes)))
	return subcommands.ExitSuccess
}

// networthCmd displays the year-by-year reconstruction.
type networthCmd struct{}

func (*networthCmd) Name() string     { return "networth" }
func (*networthCmd) Synopsis() string { return "display the year-by-year net-worth reconstruction" }
func (*networthCmd) Usage() string {
	return `fol networth

  Displays one line per calendar year since the first ledger activity:
  cumulative cost, profit, total assets and the 8% counterfactual baseline.
  Years backed by a historical snapshot or live quotes are marked as real.
`
}
func (*networthCmd) SetFlags(_ *flag.FlagSet) {}

func (c *networthCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	hist, err := DecodeHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading history:", err)
		return subcommands.ExitFailure
	}
	quotes := loadQuotes(ctx, ledger)
	printMarkdown(render.NetWorthMarkdown(folio.NetWorthSeries(ledger, quotes, hist)))
	return subcommands.ExitSuccess
}

// annualCmd displays year-over-year performance.
type annualCmd struct{}

func (*annualCmd) Name() string     { return "annual" }
func (*annualCmd) Synopsis() string { return "display year-over-year performance" }
func (*annualCmd) Usage() string {
	return `fol annual

  Displays each year's net inflow, profit and return derived from the
  net-worth curve.
`
}
func (*annualCmd) SetFlags(_ *flag.FlagSet) {}

func (c *annualCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	hist, err := DecodeHistory()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading history:", err)
		return subcommands.ExitFailure
	}
	quotes := loadQuotes(ctx, ledger)
	points := folio.NetWorthSeries(ledger, quotes, hist)
	printMarkdown(render.AnnualMarkdown(folio.AnnualPerformance(points)))
	return subcommands.ExitSuccess
}

// allocationCmd displays the asset allocation.
type allocationCmd struct{}

func (*allocationCmd) Name() string     { return "allocation" }
func (*allocationCmd) Synopsis() string { return "display the asset allocation" }
func (*allocationCmd) Usage() string {
	return `fol allocation

  Displays the portfolio's allocation by asset in TWD, cash first.
`
}
func (*allocationCmd) SetFlags(_ *flag.FlagSet) {}

func (c *allocationCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	quotes := loadQuotes(ctx, ledger)
	printMarkdown(render.AllocationMarkdown(folio.AssetAllocation(ledger, quotes)))
	return subcommands.ExitSuccess
}

// performanceCmd displays the per-account breakdown.
type performanceCmd struct{}

func (*performanceCmd) Name() string     { return "performance" }
func (*performanceCmd) Synopsis() string { return "display per-account performance" }
func (*performanceCmd) Usage() string {
	return `fol performance

  Displays each account's assets, net invested, profit and returns in TWD.
`
}
func (*performanceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *performanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading ledger:", err)
		return subcommands.ExitFailure
	}
	quotes := loadQuotes(ctx, ledger)
	printMarkdown(render.PerformanceMarkdown(folio.AccountPerformances(ledger, quotes)))
	return subcommands.ExitSuccess
}
