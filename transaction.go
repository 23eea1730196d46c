package folio

import (
	"github.com/shopspring/decimal"
)

// TxType is a typed string identifying the kind of a ledger transaction.
type TxType string

const (
	TxBuy          TxType = "BUY"
	TxSell         TxType = "SELL"
	TxDividend     TxType = "DIVIDEND" // stock dividend, shares reinvested
	TxCashDividend TxType = "CASH_DIVIDEND"
	TxTransferIn   TxType = "TRANSFER_IN"
	TxTransferOut  TxType = "TRANSFER_OUT"
)

// Transaction is an immutable ledger entry for a security trade or corporate
// action. Entries are never mutated, only deleted wholesale; every derived
// figure is recomputed from the full list.
type Transaction struct {
	ID        string          `json:"id"`
	Date      Date            `json:"date"`
	Ticker    string          `json:"ticker"`
	Market    Market          `json:"market"`
	Type      TxType          `json:"type"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	Fees      decimal.Decimal `json:"fees"`
	AccountID string          `json:"accountId"`
	// Amount, when set, overrides the computed cash effect of the transaction.
	Amount *decimal.Decimal `json:"amount,omitempty"`
	Note   string           `json:"note,omitempty"`
}

// Acquires reports whether the transaction adds shares to a position.
func (t Transaction) Acquires() bool {
	return t.Type == TxBuy || t.Type == TxTransferIn || t.Type == TxDividend
}

// Disposes reports whether the transaction removes shares from a position.
func (t Transaction) Disposes() bool {
	return t.Type == TxSell || t.Type == TxTransferOut
}

// base is price*quantity, floored to whole currency units on markets that
// trade in them (TW).
func (t Transaction) base() decimal.Decimal {
	base := t.Price.Mul(t.Quantity)
	if t.Market.WholeCurrency() {
		base = base.Floor()
	}
	return base
}

// Cost returns the cash cost of an acquiring transaction: the explicit
// amount override when present, otherwise base plus fees.
func (t Transaction) Cost() decimal.Decimal {
	if t.Amount != nil {
		return *t.Amount
	}
	return t.base().Add(t.Fees)
}

// Proceeds returns the cash proceeds of a disposing or cash-dividend
// transaction: the explicit amount override when present, otherwise base
// minus fees.
func (t Transaction) Proceeds() decimal.Decimal {
	if t.Amount != nil {
		return *t.Amount
	}
	return t.base().Sub(t.Fees)
}

// CashEffect returns the signed effect of the transaction on its account's
// cash balance, in the market currency. Share transfers move no cash beyond
// their fees; a stock dividend is cash-neutral.
func (t Transaction) CashEffect() decimal.Decimal {
	switch t.Type {
	case TxBuy:
		return t.Cost().Neg()
	case TxSell, TxCashDividend:
		return t.Proceeds()
	case TxTransferIn, TxTransferOut:
		return t.Fees.Neg()
	default:
		return decimal.Zero
	}
}
