package folio

import "math"

// PriceDetail carries the daily move of a quoted security.
type PriceDetail struct {
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// Quotes bundles the market inputs of a valuation pass: current prices keyed
// by market-prefixed ticker, optional daily moves, and the TWD conversion
// rates. It is plain data; fetching it is the caller's concern.
type Quotes struct {
	Prices  map[string]float64     `json:"prices"`
	Details map[string]PriceDetail `json:"details,omitempty"`
	// USDTWD is the TWD value of one USD.
	USDTWD float64 `json:"exchangeRate"`
	// JPYTWD is the TWD value of one JPY; zero means unknown.
	JPYTWD float64 `json:"jpyExchangeRate,omitempty"`
}

// RateFor returns the TWD conversion rate for values priced on a market:
// TW is identity, US and UK use the USD rate, JP uses the JPY rate falling
// back to the USD rate when absent.
func (q *Quotes) RateFor(m Market) float64 {
	switch m {
	case MarketTW:
		return 1
	case MarketJP:
		if q.JPYTWD > 0 {
			return q.JPYTWD
		}
		return sane(q.USDTWD)
	default:
		return sane(q.USDTWD)
	}
}

// RateForCurrency returns the TWD conversion rate for a cash currency.
func (q *Quotes) RateForCurrency(currency string) float64 {
	switch currency {
	case CurrencyTWD:
		return 1
	case CurrencyJPY:
		return q.RateFor(MarketJP)
	default:
		return q.RateFor(MarketUS)
	}
}

// Merge fills this bundle from a freshly fetched one without ever
// overwriting a value that is already set: prices and rates only land in
// zero or missing fields, so user-resolved data always wins.
func (q *Quotes) Merge(fresh Quotes) {
	if q.Prices == nil {
		q.Prices = make(map[string]float64)
	}
	for symbol, price := range fresh.Prices {
		if q.Prices[symbol] == 0 {
			q.Prices[symbol] = sane(price)
		}
	}
	for symbol, detail := range fresh.Details {
		if _, ok := q.Details[symbol]; !ok {
			if q.Details == nil {
				q.Details = make(map[string]PriceDetail)
			}
			q.Details[symbol] = PriceDetail{
				Change:        sane(detail.Change),
				ChangePercent: sane(detail.ChangePercent),
			}
		}
	}
	if q.USDTWD == 0 {
		q.USDTWD = sane(fresh.USDTWD)
	}
	if q.JPYTWD == 0 {
		q.JPYTWD = sane(fresh.JPYTWD)
	}
}

// sane maps NaN and infinities from upstream parsing to 0 before they can
// reach any arithmetic.
func sane(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
