package folio

import "strings"

// backupSuffix marks a duplicated ticker entry (for example "2330-backup"
// after a broker migration). Price maps key the original ticker, so lookups
// must also try the stripped form.
const backupSuffix = "-backup"

// Resolver resolves a held security against a price map whose keys may be
// market-prefixed, bare, or carry a backup suffix. It is built once per
// valuation pass.
type Resolver struct {
	prices map[string]float64
}

// NewResolver creates a resolver over a price map.
func NewResolver(prices map[string]float64) *Resolver {
	return &Resolver{prices: prices}
}

// aliases returns the candidate keys for a held (market, ticker) pair in a
// fixed order, so lookups are deterministic whatever shape the map keys have.
func aliases(m Market, ticker string) []string {
	out := []string{m.Symbol(ticker), ticker}
	if stripped := strings.TrimSuffix(ticker, backupSuffix); stripped != ticker {
		out = append(out, m.Symbol(stripped), stripped)
	}
	return out
}

// Lookup returns the price of a held security, trying each alias in order.
func (r *Resolver) Lookup(m Market, ticker string) (float64, bool) {
	for _, key := range aliases(m, ticker) {
		if price, ok := r.prices[key]; ok && price != 0 {
			return sane(price), true
		}
	}
	return 0, false
}
