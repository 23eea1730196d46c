package folio

import "sort"

// AnnualPerformanceItem is the year-over-year delta between two adjacent
// points of the net-worth curve.
type AnnualPerformanceItem struct {
	Year      int     `json:"year"`
	NetInflow float64 `json:"netInflow"`
	Profit    float64 `json:"profit"`
	ROI       Percent `json:"roi"`
	// IsRealData is carried over from the year's chart point.
	IsRealData bool `json:"isRealData"`
}

// AnnualPerformance derives yearly inflow, profit and return from the
// net-worth curve. The first year is measured against an empty portfolio.
func AnnualPerformance(points []ChartDataPoint) []AnnualPerformanceItem {
	var items []AnnualPerformanceItem
	var start ChartDataPoint
	for _, end := range points {
		netInflow := end.Cost - start.Cost
		profit := end.TotalAssets - start.TotalAssets - netInflow
		var roi Percent
		if base := start.TotalAssets + netInflow; base > 0 {
			roi = Percent(100 * profit / base)
		}
		items = append(items, AnnualPerformanceItem{
			Year:       end.Year,
			NetInflow:  netInflow,
			Profit:     profit,
			ROI:        roi,
			IsRealData: end.IsRealData,
		})
		start = end
	}
	return items
}

// AccountPerformance is one account's standing in TWD: what it holds, what
// was put into it, and how that money performed.
type AccountPerformance struct {
	AccountID        string  `json:"accountId"`
	Name             string  `json:"name"`
	Currency         string  `json:"currency"`
	TotalAssets      float64 `json:"totalAssets"`
	NetInvested      float64 `json:"netInvested"`
	Profit           float64 `json:"profit"`
	ROI              Percent `json:"roi"`
	AnnualizedReturn Percent `json:"annualizedReturn"`
}

// AccountPerformances reports every account separately. Net invested replays
// only the flows touching the account, crediting cross-account transfers to
// the receiving side.
func AccountPerformances(l *Ledger, q *Quotes) []AccountPerformance {
	holdings := Holdings(l, q)
	balances := CashBalances(l)

	var reports []AccountPerformance
	for a := range l.Accounts() {
		var assets float64
		for _, h := range holdings {
			if h.AccountID == a.ID {
				assets += h.CurrentValue.AsFloat() * q.RateFor(h.Market)
			}
		}
		assets += balances[a.ID].InexactFloat64() * q.RateForCurrency(a.Currency)

		invested, flows := accountInvested(l, q, a.ID)
		flows = append(flows, Flow{Amount: assets, Date: Today()})

		var roi Percent
		if invested > 0 {
			roi = Percent(100 * (assets - invested) / invested)
		}
		reports = append(reports, AccountPerformance{
			AccountID:        a.ID,
			Name:             a.Name,
			Currency:         a.Currency,
			TotalAssets:      assets,
			NetInvested:      invested,
			Profit:           assets - invested,
			ROI:              roi,
			AnnualizedReturn: Percent(100 * Xirr(flows)),
		})
	}
	sort.SliceStable(reports, func(i, j int) bool { return reports[i].AccountID < reports[j].AccountID })
	return reports
}

// accountInvested replays deposits, withdrawals, transfers and security
// transfers touching one account. It returns the net TWD invested and the
// signed flow series for the account's XIRR (outflows negative).
func accountInvested(l *Ledger, q *Quotes, accountID string) (float64, []Flow) {
	var invested float64
	var flows []Flow

	for _, f := range l.CashFlows(FlowTouching(accountID)) {
		var twd float64
		switch {
		case f.Type == FlowDeposit && f.AccountID == accountID:
			twd = flowTWD(l, q, f)
		case f.Type == FlowWithdraw && f.AccountID == accountID:
			twd = -flowTWD(l, q, f)
		case f.Type == FlowTransfer && f.AccountID == accountID:
			twd = -flowTWD(l, q, f)
		case f.Type == FlowTransfer && f.TargetAccountID == accountID:
			// credit the receiving side with the same TWD amount that left
			// the source.
			twd = flowTWD(l, q, f)
		default:
			continue
		}
		invested += twd
		flows = append(flows, Flow{Amount: -twd, Date: f.Date})
	}

	for _, tx := range l.Transactions(ByAccount(accountID)) {
		switch tx.Type {
		case TxTransferIn:
			twd := tx.Cost().InexactFloat64() * q.RateFor(tx.Market)
			invested += twd
			flows = append(flows, Flow{Amount: -twd, Date: tx.Date})
		case TxTransferOut:
			twd := tx.Proceeds().InexactFloat64() * q.RateFor(tx.Market)
			invested -= twd
			flows = append(flows, Flow{Amount: twd, Date: tx.Date})
		}
	}
	return invested, flows
}

// AssetAllocationItem is one slice of the portfolio pie, in TWD.
type AssetAllocationItem struct {
	Ticker string  `json:"ticker"`
	Value  float64 `json:"value"`
	Weight Percent `json:"weight"`
}

// CashTicker labels the aggregated cash slice of the allocation report.
const CashTicker = "CASH"

// AssetAllocation groups holdings by ticker across accounts and markets,
// with total cash pinned as the first slice.
func AssetAllocation(l *Ledger, q *Quotes) []AssetAllocationItem {
	values := make(map[string]float64)
	var order []string
	for _, h := range Holdings(l, q) {
		if _, ok := values[h.Ticker]; !ok {
			order = append(order, h.Ticker)
		}
		values[h.Ticker] += h.CurrentValue.AsFloat() * q.RateFor(h.Market)
	}

	var cash float64
	for accountID, balance := range CashBalances(l) {
		currency := CurrencyTWD
		if a := l.Account(accountID); a != nil {
			currency = a.Currency
		}
		cash += balance.InexactFloat64() * q.RateForCurrency(currency)
	}

	sort.Strings(order)
	items := make([]AssetAllocationItem, 0, len(order)+1)
	items = append(items, AssetAllocationItem{Ticker: CashTicker, Value: cash})
	total := cash
	for _, ticker := range order {
		items = append(items, AssetAllocationItem{Ticker: ticker, Value: values[ticker]})
		total += values[ticker]
	}
	if total > 0 {
		for i := range items {
			items[i].Weight = Percent(100 * items[i].Value / total)
		}
	}
	return items
}
