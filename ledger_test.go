package folio

import (
	"slices"
	"testing"
)

func TestLedgerSortsByDate(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.Append(
		trade(TxSell, "2024-03-01", "tw1", "2330", MarketTW, 12, 500, 10),
		trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 15),
	)

	var dates []string
	for _, tx := range l.Transactions() {
		dates = append(dates, tx.Date.String())
	}
	want := []string{"2024-01-10", "2024-03-01"}
	if !slices.Equal(dates, want) {
		t.Errorf("transaction order = %v, want %v", dates, want)
	}
}

func TestLedgerDelete(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.Append(trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 15))
	l.AddFlow(deposit("2024-01-02", "tw1", 100000))

	if !l.DeleteTransaction("BUY-2024-01-10-2330") {
		t.Error("DeleteTransaction() = false, want true")
	}
	if l.DeleteTransaction("BUY-2024-01-10-2330") {
		t.Error("DeleteTransaction() deleted twice")
	}
	if !l.DeleteCashFlow("dep-2024-01-02-tw1") {
		t.Error("DeleteCashFlow() = false, want true")
	}
	if l.DeleteCashFlow("nope") {
		t.Error("DeleteCashFlow() = true for an unknown id")
	}
}

func TestLedgerFilters(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddAccount(usdAccount("us1", "Broker US"))
	l.Append(
		trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 15),
		trade(TxBuy, "2024-01-11", "us1", "VT", MarketUS, 100, 10, 1),
	)
	l.AddFlow(
		deposit("2024-01-02", "tw1", 100000),
		transfer("2024-01-05", "tw1", "us1", 31500, 31.5),
	)

	var got []string
	for _, tx := range l.Transactions(ByAccount("us1")) {
		got = append(got, tx.Ticker)
	}
	if !slices.Equal(got, []string{"VT"}) {
		t.Errorf("ByAccount(us1) yielded %v, want [VT]", got)
	}

	var touching int
	for range l.CashFlows(FlowTouching("us1")) {
		touching++
	}
	// the transfer touches us1 as target; the deposit does not.
	if touching != 1 {
		t.Errorf("FlowTouching(us1) yielded %d flows, want 1", touching)
	}

	var upTo []string
	for _, tx := range l.Transactions(OnOrBefore(day("2024-01-10"))) {
		upTo = append(upTo, tx.Ticker)
	}
	// the cutoff is inclusive; the next day's trade is out.
	if !slices.Equal(upTo, []string{"2330"}) {
		t.Errorf("OnOrBefore(2024-01-10) yielded %v, want [2330]", upTo)
	}
}

func TestLedgerTickers(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.Append(
		trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 15),
		trade(TxBuy, "2024-02-10", "tw1", "2330", MarketTW, 11, 1000, 15),
		trade(TxBuy, "2024-03-10", "tw1", "0050", MarketTW, 100, 10, 5),
	)

	got := slices.Collect(l.Tickers())
	want := []SecurityKey{
		{Market: MarketTW, Ticker: "2330"},
		{Market: MarketTW, Ticker: "0050"},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Tickers() = %v, want %v", got, want)
	}
}

func TestLedgerOldestActivity(t *testing.T) {
	l := NewLedger()
	if !l.OldestActivity().IsZero() {
		t.Error("OldestActivity() of empty ledger is not zero")
	}
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.Append(trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 15))
	l.AddFlow(deposit("2023-06-01", "tw1", 100000))
	if got, want := l.OldestActivity(), day("2023-06-01"); got != want {
		t.Errorf("OldestActivity() = %v, want %v", got, want)
	}
}
