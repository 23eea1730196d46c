package folio

// YearSnapshot is a user- or AI-supplied record of year-end prices and
// rates. It is used only to improve the reconstruction of the year it
// describes, never as authority beyond it.
type YearSnapshot struct {
	// Prices maps tickers (bare or market-prefixed) to year-end closing
	// prices in their market currency.
	Prices map[string]float64 `json:"prices"`
	// ExchangeRate is the TWD value of one USD at year end.
	ExchangeRate float64 `json:"exchangeRate,omitempty"`
	// JPYExchangeRate is the TWD value of one JPY at year end.
	JPYExchangeRate float64 `json:"jpyExchangeRate,omitempty"`
}

// HistoricalData maps calendar years to their year-end snapshots.
type HistoricalData map[int]YearSnapshot

// Merge fills h from fetched snapshots without overwriting anything already
// set: a year the user corrected keeps every non-zero price and rate, only
// holes are filled.
func (h HistoricalData) Merge(fetched HistoricalData) {
	for year, snap := range fetched {
		existing, ok := h[year]
		if !ok {
			h[year] = sanitizeSnapshot(snap)
			continue
		}
		if existing.Prices == nil {
			existing.Prices = make(map[string]float64)
		}
		for ticker, price := range snap.Prices {
			if existing.Prices[ticker] == 0 {
				existing.Prices[ticker] = sane(price)
			}
		}
		if existing.ExchangeRate == 0 {
			existing.ExchangeRate = sane(snap.ExchangeRate)
		}
		if existing.JPYExchangeRate == 0 {
			existing.JPYExchangeRate = sane(snap.JPYExchangeRate)
		}
		h[year] = existing
	}
}

func sanitizeSnapshot(snap YearSnapshot) YearSnapshot {
	out := YearSnapshot{
		Prices:          make(map[string]float64, len(snap.Prices)),
		ExchangeRate:    sane(snap.ExchangeRate),
		JPYExchangeRate: sane(snap.JPYExchangeRate),
	}
	for ticker, price := range snap.Prices {
		out.Prices[ticker] = sane(price)
	}
	return out
}

// rateFor returns the TWD conversion rate for a market at this snapshot's
// year end, falling back to the live rates for anything the snapshot does
// not carry.
func (s YearSnapshot) rateFor(m Market, live *Quotes) float64 {
	switch m {
	case MarketTW:
		return 1
	case MarketJP:
		if s.JPYExchangeRate > 0 {
			return s.JPYExchangeRate
		}
		if s.ExchangeRate > 0 {
			return s.ExchangeRate
		}
		return live.RateFor(MarketJP)
	default:
		if s.ExchangeRate > 0 {
			return s.ExchangeRate
		}
		return live.RateFor(MarketUS)
	}
}

// rateForCurrency returns the TWD conversion rate for a cash currency at
// this snapshot's year end.
func (s YearSnapshot) rateForCurrency(currency string, live *Quotes) float64 {
	switch currency {
	case CurrencyTWD:
		return 1
	case CurrencyJPY:
		return s.rateFor(MarketJP, live)
	default:
		return s.rateFor(MarketUS, live)
	}
}
