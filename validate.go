package folio

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Validate checks a transaction against the ledger for correctness and
// applies quick fixes where applicable (assigning an ID, defaulting the
// date). It returns the validated (and potentially modified) transaction or
// an error detailing the failure.
func (l *Ledger) Validate(tx Transaction) (Transaction, error) {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	if tx.Date.IsZero() {
		tx.Date = Today()
	}
	if tx.Ticker == "" {
		return tx, errors.New("ticker is missing")
	}
	if _, err := ParseMarket(string(tx.Market)); err != nil {
		return tx, err
	}
	if l.Account(tx.AccountID) == nil {
		return tx, fmt.Errorf("account %q not declared in ledger", tx.AccountID)
	}

	switch tx.Type {
	case TxBuy, TxSell, TxDividend, TxTransferIn, TxTransferOut:
		if !tx.Quantity.IsPositive() {
			return tx, fmt.Errorf("%s of %q: quantity must be positive, got %s", tx.Type, tx.Ticker, tx.Quantity)
		}
		if tx.Price.IsNegative() {
			return tx, fmt.Errorf("%s of %q: price cannot be negative, got %s", tx.Type, tx.Ticker, tx.Price)
		}
	case TxCashDividend:
		if tx.Amount == nil && !tx.Price.Mul(tx.Quantity).IsPositive() {
			return tx, fmt.Errorf("cash dividend of %q: amount is missing", tx.Ticker)
		}
	default:
		return tx, fmt.Errorf("unknown transaction type %q", tx.Type)
	}

	if tx.Fees.IsNegative() {
		return tx, fmt.Errorf("%s of %q: fees cannot be negative, got %s", tx.Type, tx.Ticker, tx.Fees)
	}
	return tx, nil
}

// ValidateFlow checks a cash flow against the ledger, assigning an ID and
// defaulting the date like Validate does for transactions.
func (l *Ledger) ValidateFlow(f CashFlow) (CashFlow, error) {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	if f.Date.IsZero() {
		f.Date = Today()
	}
	if l.Account(f.AccountID) == nil {
		return f, fmt.Errorf("account %q not declared in ledger", f.AccountID)
	}
	if !f.Amount.IsPositive() {
		return f, fmt.Errorf("%s: amount must be positive, got %s", f.Type, f.Amount)
	}

	switch f.Type {
	case FlowDeposit, FlowWithdraw, FlowInterest:
		if f.TargetAccountID != "" {
			return f, fmt.Errorf("%s: target account only applies to transfers", f.Type)
		}
	case FlowTransfer:
		if f.TargetAccountID == "" {
			return f, errors.New("transfer: target account is missing")
		}
		if l.Account(f.TargetAccountID) == nil {
			return f, fmt.Errorf("transfer: account %q not declared in ledger", f.TargetAccountID)
		}
		if f.TargetAccountID == f.AccountID {
			return f, errors.New("transfer: source and target accounts are the same")
		}
	default:
		return f, fmt.Errorf("unknown cash flow type %q", f.Type)
	}

	if f.ExchangeRate != nil && f.ExchangeRate.IsNegative() {
		return f, fmt.Errorf("%s: exchange rate cannot be negative, got %s", f.Type, f.ExchangeRate)
	}
	return f, nil
}

// ValidateAccount checks an account declaration, assigning an ID when
// missing.
func ValidateAccount(a Account) (Account, error) {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Name == "" {
		return a, errors.New("account name is missing")
	}
	if err := ValidateCurrency(a.Currency); err != nil {
		return a, err
	}
	return a, nil
}
