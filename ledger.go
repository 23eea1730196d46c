package folio

import (
	"iter"
	"sort"
)

// Ledger is the append-only record of accounts, security transactions and
// cash flows. Transactions and cash flows are always kept in chronological
// order; every derived figure is recomputed from the full record.
type Ledger struct {
	accounts     []Account
	transactions []Transaction
	cashflows    []CashFlow
	accountIndex map[string]int // account id -> index in accounts
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{accountIndex: make(map[string]int)}
}

// AddAccount registers an account. A re-registration with a known id
// replaces the previous record.
func (l *Ledger) AddAccount(accounts ...Account) {
	for _, a := range accounts {
		if i, ok := l.accountIndex[a.ID]; ok {
			l.accounts[i] = a
			continue
		}
		l.accountIndex[a.ID] = len(l.accounts)
		l.accounts = append(l.accounts, a)
	}
}

// Account returns the account with this id, or nil if unknown.
func (l *Ledger) Account(id string) *Account {
	i, ok := l.accountIndex[id]
	if !ok {
		return nil
	}
	return &l.accounts[i]
}

// Accounts returns an iterator over all accounts in registration order.
func (l *Ledger) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, a := range l.accounts {
			if !yield(a) {
				return
			}
		}
	}
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// AddFlow appends cash flows to this ledger and maintains their
// chronological order.
func (l *Ledger) AddFlow(flows ...CashFlow) {
	l.cashflows = append(l.cashflows, flows...)
	l.stableSort()
}

// DeleteTransaction removes the transaction with the given id wholesale.
// It reports whether a transaction was removed.
func (l *Ledger) DeleteTransaction(id string) bool {
	for i, tx := range l.transactions {
		if tx.ID == id {
			l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
			return true
		}
	}
	return false
}

// DeleteCashFlow removes the cash flow with the given id wholesale.
// It reports whether a flow was removed.
func (l *Ledger) DeleteCashFlow(id string) bool {
	for i, f := range l.cashflows {
		if f.ID == id {
			l.cashflows = append(l.cashflows[:i], l.cashflows[i+1:]...)
			return true
		}
	}
	return false
}

// stableSort sorts transactions and cash flows by date. The sort is stable,
// entries on the same day keep their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		return l.transactions[i].Date.Before(l.transactions[j].Date)
	})
	sort.SliceStable(l.cashflows, func(i, j int) bool {
		return l.cashflows[i].Date.Before(l.cashflows[j].Date)
	})
}

// Transactions returns an iterator over transactions in chronological order,
// restricted to those accepted by at least one filter. With no filter every
// transaction is yielded.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if !accepts(tx, filters) {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// CashFlows returns an iterator over cash flows in chronological order,
// restricted to those accepted by at least one filter. With no filter every
// flow is yielded.
func (l *Ledger) CashFlows(filters ...func(CashFlow) bool) iter.Seq2[int, CashFlow] {
	return func(yield func(int, CashFlow) bool) {
		for i, f := range l.cashflows {
			if !acceptsFlow(f, filters) {
				continue
			}
			if !yield(i, f) {
				return
			}
		}
	}
}

func accepts(tx Transaction, filters []func(Transaction) bool) bool {
	if len(filters) == 0 {
		return true
	}
	for _, f := range filters {
		if f(tx) {
			return true
		}
	}
	return false
}

func acceptsFlow(f CashFlow, filters []func(CashFlow) bool) bool {
	if len(filters) == 0 {
		return true
	}
	for _, filter := range filters {
		if filter(f) {
			return true
		}
	}
	return false
}

// ByAccount returns a predicate that filters transactions by account.
func ByAccount(accountID string) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.AccountID == accountID }
}

// FlowTouching returns a predicate that accepts cash flows debiting or
// crediting the given account, including transfers into it.
func FlowTouching(accountID string) func(CashFlow) bool {
	return func(f CashFlow) bool {
		return f.AccountID == accountID || f.TargetAccountID == accountID
	}
}

// OnOrBefore returns a predicate that accepts transactions up to and
// including a cutoff date.
func OnOrBefore(on Date) func(Transaction) bool {
	return func(tx Transaction) bool { return !tx.Date.After(on) }
}

// OldestActivity returns the date of the earliest transaction or cash flow
// in the ledger, or the zero date if the ledger is empty.
func (l *Ledger) OldestActivity() Date {
	var oldest Date
	if len(l.transactions) > 0 {
		oldest = l.transactions[0].Date
	}
	if len(l.cashflows) > 0 {
		if oldest.IsZero() || l.cashflows[0].Date.Before(oldest) {
			oldest = l.cashflows[0].Date
		}
	}
	return oldest
}

// Tickers returns an iterator over the distinct (market, ticker) pairs that
// appear in the ledger, in order of first appearance.
func (l *Ledger) Tickers() iter.Seq[SecurityKey] {
	return func(yield func(SecurityKey) bool) {
		seen := make(map[SecurityKey]struct{})
		for _, tx := range l.transactions {
			key := SecurityKey{Market: tx.Market, Ticker: tx.Ticker}
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			if !yield(key) {
				return
			}
		}
	}
}
