package folio

import "github.com/shopspring/decimal"

// FlowType is a typed string identifying the kind of a cash movement.
type FlowType string

const (
	FlowDeposit  FlowType = "DEPOSIT"
	FlowWithdraw FlowType = "WITHDRAW"
	FlowTransfer FlowType = "TRANSFER"
	FlowInterest FlowType = "INTEREST"
)

// CashFlow is an immutable cash movement on an account, in the account's own
// currency.
type CashFlow struct {
	ID        string          `json:"id"`
	Date      Date            `json:"date"`
	AccountID string          `json:"accountId"`
	Type      FlowType        `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	// AmountTWD is a fixed TWD valuation of the flow; when set it takes
	// precedence over any rate conversion.
	AmountTWD *decimal.Decimal `json:"amountTWD,omitempty"`
	// ExchangeRate is the TWD-per-unit rate observed at the time of the flow.
	ExchangeRate *decimal.Decimal `json:"exchangeRate,omitempty"`
	// TargetAccountID is the receiving account; required for TRANSFER.
	TargetAccountID string `json:"targetAccountId,omitempty"`
	Category        string `json:"category,omitempty"`
}
