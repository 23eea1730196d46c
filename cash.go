package folio

import "github.com/shopspring/decimal"

// SecurityKey identifies a security across accounts.
type SecurityKey struct {
	Market Market
	Ticker string
}

// PortfolioState is a point-in-time view of the ledger obtained by replaying
// every record up to a cutoff date: per-account cash balances in each
// account's own currency, and raw net share quantities per security.
type PortfolioState struct {
	Cash   map[string]decimal.Decimal
	Shares map[SecurityKey]decimal.Decimal
}

// CashBalances replays the full ledger and returns the cash balance of every
// account in its own currency.
func CashBalances(l *Ledger) map[string]decimal.Decimal {
	return StateAt(l, Today()).Cash
}

// StateAt replays every cash flow and transaction cash effect up to and
// including the given date. The replay rules are identical to the full
// balance: the cutoff is the only difference.
func StateAt(l *Ledger, on Date) PortfolioState {
	state := PortfolioState{
		Cash:   make(map[string]decimal.Decimal),
		Shares: make(map[SecurityKey]decimal.Decimal),
	}
	for a := range l.Accounts() {
		state.Cash[a.ID] = decimal.Zero
	}

	for _, f := range l.CashFlows(func(f CashFlow) bool { return !f.Date.After(on) }) {
		switch f.Type {
		case FlowDeposit, FlowInterest:
			state.Cash[f.AccountID] = state.Cash[f.AccountID].Add(f.Amount)
		case FlowWithdraw:
			state.Cash[f.AccountID] = state.Cash[f.AccountID].Sub(f.Amount)
		case FlowTransfer:
			state.Cash[f.AccountID] = state.Cash[f.AccountID].Sub(f.Amount)
			if f.TargetAccountID != "" {
				state.Cash[f.TargetAccountID] = state.Cash[f.TargetAccountID].Add(transferCredit(l, f))
			}
		}
	}

	for _, tx := range l.Transactions(OnOrBefore(on)) {
		state.Cash[tx.AccountID] = state.Cash[tx.AccountID].Add(tx.CashEffect())

		key := SecurityKey{Market: tx.Market, Ticker: tx.Ticker}
		switch {
		case tx.Acquires():
			state.Shares[key] = state.Shares[key].Add(tx.Quantity)
		case tx.Disposes():
			state.Shares[key] = state.Shares[key].Sub(tx.Quantity)
		}
	}

	return state
}

// transferCredit converts the transferred amount into the target account's
// currency. Only the USD/TWD cross is converted through the flow's recorded
// rate; without an explicit rate the amount moves 1:1, a known
// simplification.
func transferCredit(l *Ledger, f CashFlow) decimal.Decimal {
	if f.ExchangeRate == nil || f.ExchangeRate.IsZero() {
		return f.Amount
	}
	src, tgt := l.Account(f.AccountID), l.Account(f.TargetAccountID)
	if src == nil || tgt == nil || src.Currency == tgt.Currency {
		return f.Amount
	}
	switch {
	case src.Currency == CurrencyUSD && tgt.Currency == CurrencyTWD:
		return f.Amount.Mul(*f.ExchangeRate)
	case src.Currency == CurrencyTWD && tgt.Currency == CurrencyUSD:
		return f.Amount.Div(*f.ExchangeRate)
	default:
		return f.Amount
	}
}
