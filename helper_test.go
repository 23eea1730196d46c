package folio

import "github.com/shopspring/decimal"

// helpers to keep test fixtures terse.

func day(s string) Date                 { return MustParseDate(s) }
func dec(v float64) decimal.Decimal     { return decimal.NewFromFloat(v) }
func decp(v float64) *decimal.Decimal   { d := decimal.NewFromFloat(v); return &d }
func twdAccount(id, name string) Account { return Account{ID: id, Name: name, Currency: CurrencyTWD} }
func usdAccount(id, name string) Account { return Account{ID: id, Name: name, Currency: CurrencyUSD} }

func trade(txType TxType, d, account, ticker string, m Market, price, qty, fees float64) Transaction {
	return Transaction{
		ID:        string(txType) + "-" + d + "-" + ticker,
		Date:      day(d),
		Ticker:    ticker,
		Market:    m,
		Type:      txType,
		Price:     dec(price),
		Quantity:  dec(qty),
		Fees:      dec(fees),
		AccountID: account,
	}
}

func deposit(d, account string, amount float64) CashFlow {
	return CashFlow{ID: "dep-" + d + "-" + account, Date: day(d), AccountID: account, Type: FlowDeposit, Amount: dec(amount)}
}

func withdraw(d, account string, amount float64) CashFlow {
	return CashFlow{ID: "wdr-" + d + "-" + account, Date: day(d), AccountID: account, Type: FlowWithdraw, Amount: dec(amount)}
}

func transfer(d, from, to string, amount float64, rate float64) CashFlow {
	f := CashFlow{ID: "trf-" + d + "-" + from, Date: day(d), AccountID: from, Type: FlowTransfer, Amount: dec(amount), TargetAccountID: to}
	if rate != 0 {
		f.ExchangeRate = decp(rate)
	}
	return f
}
