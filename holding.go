package folio

import (
	"sort"

	"github.com/shopspring/decimal"
)

// positionEpsilon is the quantity below which a position is considered
// closed and filtered out of reports.
const positionEpsilon = 1e-6

// Holding is the derived state of one (account, ticker) position. It is
// recomputed from the full transaction log on every call, never stored.
type Holding struct {
	AccountID string
	Ticker    string
	Market    Market
	Quantity  Quantity
	AvgCost   Money
	TotalCost Money
	// CurrentPrice falls back to AvgCost when no quote is known, assuming no
	// unrealized move.
	CurrentPrice        Money
	CurrentValue        Money
	UnrealizedPL        Money
	UnrealizedPLPercent Percent
	// Weight is this position's share of the portfolio's TWD stock value.
	Weight             Percent
	AnnualizedReturn   Percent
	DailyChange        Money
	DailyChangePercent Percent
}

// position accumulates one (account, ticker) pair while folding the log.
type position struct {
	accountID string
	ticker    string
	market    Market
	quantity  decimal.Decimal
	totalCost decimal.Decimal
	flows     []Flow // signed, in the market currency
}

// posKey keys positions the way the ledger does: per account and ticker.
type posKey struct {
	accountID string
	ticker    string
}

// Holdings folds the transaction log into per-(account, ticker) positions
// with weighted-average cost and values them against the current quotes.
// Dispositions remove cost proportionally to quantity; no lots are tracked.
func Holdings(l *Ledger, q *Quotes) []Holding {
	positions := make(map[posKey]*position)
	var order []posKey

	for _, tx := range l.Transactions() {
		key := posKey{accountID: tx.AccountID, ticker: tx.Ticker}
		pos, ok := positions[key]
		if !ok {
			pos = &position{accountID: tx.AccountID, ticker: tx.Ticker, market: tx.Market}
			positions[key] = pos
			order = append(order, key)
		}

		switch {
		case tx.Acquires():
			cost := tx.Cost()
			pos.totalCost = pos.totalCost.Add(cost)
			pos.quantity = pos.quantity.Add(tx.Quantity)
			pos.flows = append(pos.flows, Flow{Amount: -cost.InexactFloat64(), Date: tx.Date})
		case tx.Disposes():
			pos.dispose(tx)
		case tx.Type == TxCashDividend:
			pos.flows = append(pos.flows, Flow{Amount: tx.Proceeds().InexactFloat64(), Date: tx.Date})
		}
	}

	resolver := NewResolver(q.Prices)
	now := Today()

	var holdings []Holding
	for _, key := range order {
		pos := positions[key]
		if pos.quantity.InexactFloat64() <= positionEpsilon {
			continue
		}
		holdings = append(holdings, pos.value(resolver, q, now))
	}

	weigh(holdings, q)

	sort.SliceStable(holdings, func(i, j int) bool {
		if holdings[i].AccountID != holdings[j].AccountID {
			return holdings[i].AccountID < holdings[j].AccountID
		}
		return holdings[i].Ticker < holdings[j].Ticker
	})
	return holdings
}

// dispose removes sold quantity and its proportional share of cost. On the
// TW market the removed cost is rounded to whole TWD.
func (p *position) dispose(tx Transaction) {
	if !p.quantity.IsPositive() {
		// selling out of an empty position has no cost to remove.
		p.quantity = p.quantity.Sub(tx.Quantity)
		p.flows = append(p.flows, Flow{Amount: tx.Proceeds().InexactFloat64(), Date: tx.Date})
		return
	}
	ratio := tx.Quantity.Div(p.quantity)
	costRemoved := p.totalCost.Mul(ratio)
	if p.market.WholeCurrency() {
		costRemoved = costRemoved.Round(0)
	}
	p.totalCost = p.totalCost.Sub(costRemoved)
	p.quantity = p.quantity.Sub(tx.Quantity)
	p.flows = append(p.flows, Flow{Amount: tx.Proceeds().InexactFloat64(), Date: tx.Date})
}

// value prices the surviving position and computes its return from the
// accumulated flow series plus a synthetic terminal flow worth the position
// today.
func (p *position) value(resolver *Resolver, q *Quotes, now Date) Holding {
	currency := p.market.Currency()
	avgCost := decimal.Zero
	if p.quantity.IsPositive() {
		avgCost = p.totalCost.Div(p.quantity)
	}

	price, ok := resolver.Lookup(p.market, p.ticker)
	priceDec := decimal.NewFromFloat(price)
	if !ok {
		// no quote: assume no unrealized move.
		priceDec = avgCost
	}

	currentValue := priceDec.Mul(p.quantity)
	if p.market.WholeCurrency() {
		currentValue = currentValue.Round(0)
	}
	unrealized := currentValue.Sub(p.totalCost)

	var plPercent Percent
	if p.totalCost.IsPositive() {
		plPercent = Percent(100 * unrealized.InexactFloat64() / p.totalCost.InexactFloat64())
	}

	flows := append(append([]Flow(nil), p.flows...), Flow{Amount: currentValue.InexactFloat64(), Date: now})

	h := Holding{
		AccountID:           p.accountID,
		Ticker:              p.ticker,
		Market:              p.market,
		Quantity:            Q(p.quantity),
		AvgCost:             M(avgCost, currency),
		TotalCost:           M(p.totalCost, currency),
		CurrentPrice:        M(priceDec, currency),
		CurrentValue:        M(currentValue, currency),
		UnrealizedPL:        M(unrealized, currency),
		UnrealizedPLPercent: plPercent,
		AnnualizedReturn:    Percent(100 * Xirr(flows)),
	}

	if detail, ok := lookupDetail(q.Details, p.market, p.ticker); ok {
		h.DailyChange = M(sane(detail.Change), currency)
		h.DailyChangePercent = Percent(sane(detail.ChangePercent))
	}
	return h
}

// weigh assigns each holding its share of the total TWD stock value.
func weigh(holdings []Holding, q *Quotes) {
	var total float64
	values := make([]float64, len(holdings))
	for i, h := range holdings {
		values[i] = h.CurrentValue.AsFloat() * q.RateFor(h.Market)
		total += values[i]
	}
	if total <= 0 {
		return
	}
	for i := range holdings {
		holdings[i].Weight = Percent(100 * values[i] / total)
	}
}

func lookupDetail(details map[string]PriceDetail, m Market, ticker string) (PriceDetail, bool) {
	for _, key := range aliases(m, ticker) {
		if d, ok := details[key]; ok {
			return d, true
		}
	}
	return PriceDetail{}, false
}
