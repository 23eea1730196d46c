// Package render turns report structures into markdown for terminal display.
package render

import (
	"fmt"
	"strings"

	"github.com/ycwei/folio"
)

// HoldingsMarkdown renders the positions table.
func HoldingsMarkdown(holdings []folio.Holding) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Holdings\n\n")
	fmt.Fprintln(&b, "| Account | Ticker | Quantity | Avg Cost | Price | Value | Unrealized P/L | % | Weight | Annualized |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|---:|---:|")
	for _, h := range holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s | %s | %s |\n",
			h.AccountID,
			h.Market.Symbol(h.Ticker),
			h.Quantity,
			h.AvgCost,
			h.CurrentPrice,
			h.CurrentValue,
			h.UnrealizedPL.SignedString(),
			h.UnrealizedPLPercent.SignedString(),
			h.Weight,
			h.AnnualizedReturn.SignedString(),
		)
	}
	return b.String()
}

// SummaryMarkdown renders the headline portfolio figures.
func SummaryMarkdown(s folio.PortfolioSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Summary\n\n")
	fmt.Fprintf(&b, "- Net invested: %s TWD\n", amount(s.NetInvested))
	fmt.Fprintf(&b, "- Total value: %s TWD\n", amount(s.TotalValue))
	fmt.Fprintf(&b, "- Total P/L: %s TWD (%s)\n", amount(s.TotalPL), s.TotalPLPercent.SignedString())
	fmt.Fprintf(&b, "- Cash: %s TWD\n", amount(s.CashBalance))
	fmt.Fprintf(&b, "- Annualized return: %s\n", s.AnnualizedReturn.SignedString())
	fmt.Fprintf(&b, "- Accumulated dividends: %s TWD\n", amount(s.AccumulatedDividends))
	if s.AvgExchangeRate > 0 {
		fmt.Fprintf(&b, "- Average USD/TWD paid: %.3f\n", s.AvgExchangeRate)
	}
	return b.String()
}

// NetWorthMarkdown renders the year-by-year reconstruction.
func NetWorthMarkdown(points []folio.ChartDataPoint) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Net worth\n\n")
	fmt.Fprintln(&b, "| Year | Cost | Profit | Total | vs 8% | Ratio | Source |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|---:|---:|:---|")
	for _, p := range points {
		source := "interpolated"
		if p.IsRealData {
			source = "real"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %.2f | %s |\n",
			p.Year,
			amount(p.Cost),
			amount(p.Profit),
			amount(p.TotalAssets),
			amount(p.EstTotalAssets),
			p.AssetCostRatio,
			source,
		)
	}
	return b.String()
}

// AnnualMarkdown renders year-over-year performance.
func AnnualMarkdown(items []folio.AnnualPerformanceItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Annual performance\n\n")
	fmt.Fprintln(&b, "| Year | Net inflow | Profit | ROI | Source |")
	fmt.Fprintln(&b, "|---:|---:|---:|---:|:---|")
	for _, item := range items {
		source := "interpolated"
		if item.IsRealData {
			source = "real"
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
			item.Year,
			amount(item.NetInflow),
			amount(item.Profit),
			item.ROI.SignedString(),
			source,
		)
	}
	return b.String()
}

// AllocationMarkdown renders the allocation pie as a table.
func AllocationMarkdown(items []folio.AssetAllocationItem) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Asset allocation\n\n")
	fmt.Fprintln(&b, "| Asset | Value (TWD) | Weight |")
	fmt.Fprintln(&b, "|:---|---:|---:|")
	for _, item := range items {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", item.Ticker, amount(item.Value), item.Weight)
	}
	return b.String()
}

// PerformanceMarkdown renders the per-account breakdown.
func PerformanceMarkdown(reports []folio.AccountPerformance) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Account performance\n\n")
	fmt.Fprintln(&b, "| Account | Currency | Assets (TWD) | Invested (TWD) | Profit | ROI | Annualized |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|")
	for _, r := range reports {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Name,
			r.Currency,
			amount(r.TotalAssets),
			amount(r.NetInvested),
			amount(r.Profit),
			r.ROI.SignedString(),
			r.AnnualizedReturn.SignedString(),
		)
	}
	return b.String()
}

// amount formats a TWD value with thousands separators and no decimals.
func amount(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
