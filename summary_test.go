package folio

import (
	"math"
	"testing"
)

func TestSummarize(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddFlow(
		deposit("2024-01-02", "tw1", 100000),
		withdraw("2024-06-01", "tw1", 10000),
	)
	l.Append(trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 0))
	q := &Quotes{Prices: map[string]float64{"TPE:2330": 12}}

	s := Summarize(l, q)
	if math.Abs(s.NetInvested-90000) > 1e-6 {
		t.Errorf("NetInvested = %v, want 90000", s.NetInvested)
	}
	// stock 12000 + cash 80000.
	if math.Abs(s.TotalValue-92000) > 1e-6 {
		t.Errorf("TotalValue = %v, want 92000", s.TotalValue)
	}
	if math.Abs(s.TotalPL-2000) > 1e-6 {
		t.Errorf("TotalPL = %v, want 2000", s.TotalPL)
	}
	if math.Abs(s.CashBalance-80000) > 1e-6 {
		t.Errorf("CashBalance = %v, want 80000", s.CashBalance)
	}
	if s.AnnualizedReturn <= 0 {
		t.Errorf("AnnualizedReturn = %v, want > 0", s.AnnualizedReturn)
	}
}

func TestSummarizeDividends(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddFlow(deposit("2023-01-02", "tw1", 100000))
	l.Append(
		trade(TxBuy, "2023-01-10", "tw1", "2330", MarketTW, 10, 1000, 0),
		trade(TxCashDividend, "2024-01-10", "tw1", "2330", MarketTW, 2, 1000, 0),
	)
	q := &Quotes{Prices: map[string]float64{"TPE:2330": 10}}

	s := Summarize(l, q)
	if math.Abs(s.AccumulatedDividends-2000) > 1e-6 {
		t.Errorf("AccumulatedDividends = %v, want 2000", s.AccumulatedDividends)
	}
}

func TestSummarizeAvgExchangeRate(t *testing.T) {
	l := NewLedger()
	l.AddAccount(usdAccount("us1", "Broker US"))
	f1 := deposit("2024-01-02", "us1", 1000)
	f1.ExchangeRate = decp(31)
	f2 := deposit("2024-06-01", "us1", 3000)
	f2.ExchangeRate = decp(33)
	l.AddFlow(f1, f2)
	q := &Quotes{USDTWD: 32}

	s := Summarize(l, q)
	// (1000*31 + 3000*33) / 4000 = 32.5
	if math.Abs(s.AvgExchangeRate-32.5) > 1e-9 {
		t.Errorf("AvgExchangeRate = %v, want 32.5", s.AvgExchangeRate)
	}
}

func TestSummarizeAvgExchangeRateIgnoresWithdrawals(t *testing.T) {
	l := NewLedger()
	l.AddAccount(usdAccount("us1", "Broker US"))
	f1 := deposit("2024-01-02", "us1", 1000)
	f1.ExchangeRate = decp(31)
	f2 := withdraw("2024-06-01", "us1", 1000)
	f2.ExchangeRate = decp(35)
	l.AddFlow(f1, f2)
	q := &Quotes{USDTWD: 32}

	s := Summarize(l, q)
	// only the deposit counts towards the rate paid.
	if math.Abs(s.AvgExchangeRate-31) > 1e-9 {
		t.Errorf("AvgExchangeRate = %v, want 31", s.AvgExchangeRate)
	}
}
