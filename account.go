package folio

import "fmt"

// account currencies supported by the ledger.
const (
	CurrencyTWD = "TWD"
	CurrencyUSD = "USD"
	CurrencyJPY = "JPY"
)

// Account is a brokerage or bank account holding cash in a single currency.
type Account struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Currency       string `json:"currency"`
	IsSubBrokerage bool   `json:"isSubBrokerage,omitempty"`
}

// ValidateCurrency checks that a currency code is one the ledger supports.
func ValidateCurrency(currency string) error {
	switch currency {
	case CurrencyTWD, CurrencyUSD, CurrencyJPY:
		return nil
	default:
		return fmt.Errorf("unsupported currency: %q", currency)
	}
}
