package folio

// assumedMarketRate compounds the counterfactual baseline: "what if every
// inflow had grown at a flat 8% per year instead".
const assumedMarketRate = 0.08

// ChartDataPoint is one calendar year of the reconstructed net-worth curve.
// The invariant TotalAssets == Cost + Profit holds exactly on every point.
type ChartDataPoint struct {
	Year           int     `json:"year"`
	Cost           float64 `json:"cost"`
	Profit         float64 `json:"profit"`
	TotalAssets    float64 `json:"totalAssets"`
	EstTotalAssets float64 `json:"estTotalAssets"`
	AssetCostRatio float64 `json:"assetCostRatio"`
	// IsRealData is true when the year was valued against live quotes or a
	// complete historical snapshot, false when interpolated.
	IsRealData bool `json:"isRealData"`
}

// NetWorthSeries reconstructs the portfolio's net worth year by year, from
// the earliest ledger activity through today. Years covered by a complete
// historical snapshot are valued exactly via point-in-time replay; the
// current year always uses live quotes; everything else is interpolated
// between cumulative cost and a proportional share of the live profit.
func NetWorthSeries(l *Ledger, q *Quotes, hist HistoricalData) []ChartDataPoint {
	oldest := l.OldestActivity()
	if oldest.IsZero() {
		return nil
	}
	now := Today()
	firstYear, lastYear := oldest.Year(), now.Year()

	liveTotal := liveTotalTWD(l, q)

	var points []ChartDataPoint
	var cost, est float64
	totalYears := lastYear - firstYear + 1

	for year := firstYear; year <= lastYear; year++ {
		inflow := yearInflowTWD(l, q, year)
		cost += inflow
		est = (est + inflow) * (1 + assumedMarketRate)
		if est < 0 {
			est = 0
		}

		p := ChartDataPoint{Year: year, Cost: cost, EstTotalAssets: est}

		switch {
		case year == lastYear:
			p.TotalAssets = liveTotal
			p.IsRealData = true
		default:
			if snap, ok := hist[year]; ok {
				if total, ok := snapshotTotalTWD(l, q, snap, year); ok {
					p.TotalAssets = total
					p.IsRealData = true
				}
			}
		}
		points = append(points, p)
	}

	// interpolation needs the live profit, known only after the cost loop.
	finalProfit := liveTotal - cost
	for i := range points {
		p := &points[i]
		if !p.IsRealData {
			progress := float64(i+1) / float64(totalYears)
			p.TotalAssets = p.Cost + finalProfit*progress
		}
		p.Profit = p.TotalAssets - p.Cost
		if p.Cost > 0 {
			p.AssetCostRatio = p.TotalAssets / p.Cost
		}
	}
	return points
}

// yearInflowTWD sums the year's external inflows in TWD: deposits minus
// withdrawals, plus securities transferred in, minus securities transferred
// out. Internal transfers and interest move no money across the boundary.
func yearInflowTWD(l *Ledger, q *Quotes, year int) float64 {
	var inflow float64
	for _, f := range l.CashFlows() {
		if f.Date.Year() != year {
			continue
		}
		switch f.Type {
		case FlowDeposit:
			inflow += flowTWD(l, q, f)
		case FlowWithdraw:
			inflow -= flowTWD(l, q, f)
		}
	}
	for _, tx := range l.Transactions() {
		if tx.Date.Year() != year {
			continue
		}
		switch tx.Type {
		case TxTransferIn:
			inflow += tx.Cost().InexactFloat64() * q.RateFor(tx.Market)
		case TxTransferOut:
			inflow -= tx.Proceeds().InexactFloat64() * q.RateFor(tx.Market)
		}
	}
	return inflow
}

// flowTWD converts a cash flow to TWD. Precedence: the recorded TWD amount,
// then the recorded rate at flow time, then the current rate. The recorded
// rate only applies to foreign amounts; a TWD flow may still carry it as the
// rate of the other leg of a transfer.
func flowTWD(l *Ledger, q *Quotes, f CashFlow) float64 {
	if f.AmountTWD != nil && !f.AmountTWD.IsZero() {
		return f.AmountTWD.InexactFloat64()
	}
	amount := f.Amount.InexactFloat64()
	currency := CurrencyTWD
	if a := l.Account(f.AccountID); a != nil {
		currency = a.Currency
	}
	if currency == CurrencyTWD {
		return amount
	}
	if f.ExchangeRate != nil && !f.ExchangeRate.IsZero() {
		return amount * f.ExchangeRate.InexactFloat64()
	}
	return amount * q.RateForCurrency(currency)
}

// liveTotalTWD is the authoritative current total: stock value plus cash,
// all in TWD.
func liveTotalTWD(l *Ledger, q *Quotes) float64 {
	var total float64
	for _, h := range Holdings(l, q) {
		total += h.CurrentValue.AsFloat() * q.RateFor(h.Market)
	}
	for accountID, balance := range CashBalances(l) {
		currency := CurrencyTWD
		if a := l.Account(accountID); a != nil {
			currency = a.Currency
		}
		total += balance.InexactFloat64() * q.RateForCurrency(currency)
	}
	return total
}

// snapshotTotalTWD values the portfolio as of Dec-31 of the given year
// against a historical snapshot. All-or-nothing: a single held ticker
// missing from the snapshot demotes the whole year to interpolation.
func snapshotTotalTWD(l *Ledger, q *Quotes, snap YearSnapshot, year int) (float64, bool) {
	state := StateAt(l, YearEnd(year))
	resolver := NewResolver(snap.Prices)

	var total float64
	for key, qty := range state.Shares {
		shares := qty.InexactFloat64()
		if shares <= positionEpsilon {
			continue
		}
		price, ok := resolver.Lookup(key.Market, key.Ticker)
		if !ok {
			return 0, false
		}
		total += shares * price * snap.rateFor(key.Market, q)
	}
	for accountID, balance := range state.Cash {
		currency := CurrencyTWD
		if a := l.Account(accountID); a != nil {
			currency = a.Currency
		}
		total += balance.InexactFloat64() * snap.rateForCurrency(currency, q)
	}
	return total, true
}
