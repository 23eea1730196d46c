package folio

import (
	"math"
	"testing"
)

func TestNetWorthSeriesIdentityAndLiveYear(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddFlow(deposit("2024-01-02", "tw1", 100000))
	q := &Quotes{Prices: map[string]float64{}}

	points := NetWorthSeries(l, q, nil)
	wantYears := Today().Year() - 2024 + 1
	if len(points) != wantYears {
		t.Fatalf("NetWorthSeries() returned %d points, want %d", len(points), wantYears)
	}

	for _, p := range points {
		if p.TotalAssets != p.Cost+p.Profit {
			t.Errorf("year %d: totalAssets = %v, cost+profit = %v", p.Year, p.TotalAssets, p.Cost+p.Profit)
		}
	}

	last := points[len(points)-1]
	if !last.IsRealData {
		t.Errorf("current year IsRealData = false, want true")
	}
	// no securities, no withdrawals: the live total is the cash balance.
	if math.Abs(last.TotalAssets-100000) > 1e-6 {
		t.Errorf("current year totalAssets = %v, want 100000", last.TotalAssets)
	}
	if math.Abs(points[0].Cost-100000) > 1e-6 {
		t.Errorf("first year cost = %v, want 100000", points[0].Cost)
	}
}

func TestNetWorthSeriesBaseline(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddFlow(deposit("2024-01-02", "tw1", 100000))
	q := &Quotes{Prices: map[string]float64{}}

	points := NetWorthSeries(l, q, nil)
	if math.Abs(points[0].EstTotalAssets-108000) > 1e-6 {
		t.Errorf("first year baseline = %v, want 108000", points[0].EstTotalAssets)
	}
	if len(points) > 1 {
		if math.Abs(points[1].EstTotalAssets-116640) > 1e-6 {
			t.Errorf("second year baseline = %v, want 116640", points[1].EstTotalAssets)
		}
	}
}

func TestNetWorthSeriesSnapshotYear(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddFlow(deposit("2024-01-02", "tw1", 100000))
	l.Append(trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 0))
	q := &Quotes{Prices: map[string]float64{}}
	hist := HistoricalData{
		2024: {Prices: map[string]float64{"TPE:2330": 15}},
	}

	points := NetWorthSeries(l, q, hist)
	first := points[0]
	if first.Year != 2024 {
		t.Fatalf("first point year = %d, want 2024", first.Year)
	}
	if len(points) == 1 {
		t.Skip("2024 is still the current year")
	}
	if !first.IsRealData {
		t.Fatalf("snapshot-backed year IsRealData = false, want true")
	}
	// 1000 shares at the snapshot price of 15, plus 90000 of cash.
	if math.Abs(first.TotalAssets-105000) > 1e-6 {
		t.Errorf("snapshot year totalAssets = %v, want 105000", first.TotalAssets)
	}
}

func TestNetWorthSeriesPartialSnapshotDemoted(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddFlow(deposit("2024-01-02", "tw1", 100000))
	l.Append(
		trade(TxBuy, "2024-01-10", "tw1", "2330", MarketTW, 10, 1000, 0),
		trade(TxBuy, "2024-02-10", "tw1", "2603", MarketTW, 20, 100, 0),
	)
	q := &Quotes{Prices: map[string]float64{}}
	hist := HistoricalData{
		2024: {Prices: map[string]float64{"TPE:2330": 15}}, // 2603 missing
	}

	points := NetWorthSeries(l, q, hist)
	if len(points) == 1 {
		t.Skip("2024 is still the current year")
	}
	first := points[0]
	if first.IsRealData {
		t.Errorf("partially priced year IsRealData = true, want false (demoted)")
	}
	if first.TotalAssets != first.Cost+first.Profit {
		t.Errorf("demoted year loses the cost+profit identity")
	}
}

func TestNetWorthSeriesSnapshotResolvesBackupAlias(t *testing.T) {
	l := NewLedger()
	l.AddAccount(twdAccount("tw1", "Broker TW"))
	l.AddFlow(deposit("2024-01-02", "tw1", 100000))
	l.Append(trade(TxBuy, "2024-01-10", "tw1", "2330-backup", MarketTW, 10, 1000, 0))
	q := &Quotes{Prices: map[string]float64{}}
	hist := HistoricalData{
		2024: {Prices: map[string]float64{"TPE:2330": 15}},
	}

	points := NetWorthSeries(l, q, hist)
	if len(points) == 1 {
		t.Skip("2024 is still the current year")
	}
	if !points[0].IsRealData {
		t.Errorf("backup-suffixed ticker did not resolve against the snapshot")
	}
}

func TestNetWorthSeriesEmptyLedger(t *testing.T) {
	if points := NetWorthSeries(NewLedger(), &Quotes{}, nil); points != nil {
		t.Errorf("NetWorthSeries(empty) = %v, want nil", points)
	}
}
