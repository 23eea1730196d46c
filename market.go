package folio

import "fmt"

// Market identifies the exchange a security trades on.
type Market string

const (
	MarketTW Market = "TW"
	MarketUS Market = "US"
	MarketUK Market = "UK"
	MarketJP Market = "JP"
)

// ParseMarket parses a string into a Market.
func ParseMarket(s string) (Market, error) {
	switch Market(s) {
	case MarketTW, MarketUS, MarketUK, MarketJP:
		return Market(s), nil
	default:
		return "", fmt.Errorf("unknown market: %q", s)
	}
}

// Currency returns the currency securities are priced in on this market.
// UK-listed positions in this ledger are USD lines, so they share the US rate.
func (m Market) Currency() string {
	switch m {
	case MarketTW:
		return "TWD"
	case MarketJP:
		return "JPY"
	default:
		return "USD"
	}
}

// Prefix returns the exchange prefix used to key tickers in price maps,
// Google Finance style (e.g. "TPE:2330").
func (m Market) Prefix() string {
	switch m {
	case MarketTW:
		return "TPE:"
	case MarketUS:
		return "NASDAQ:"
	case MarketUK:
		return "LON:"
	case MarketJP:
		return "TYO:"
	default:
		return ""
	}
}

// WholeCurrency reports whether monetary bases on this market are kept in
// whole currency units: trade bases are floored and cost-of-sold removals
// rounded at trade time.
func (m Market) WholeCurrency() bool { return m == MarketTW }

// Symbol returns the market-prefixed form of a ticker.
func (m Market) Symbol(ticker string) string { return m.Prefix() + ticker }
