package folio

import (
	"math"
	"testing"
)

func TestHistoricalMergeFillsOnlyHoles(t *testing.T) {
	h := HistoricalData{
		2023: {Prices: map[string]float64{"TPE:2330": 500}, ExchangeRate: 31},
	}
	h.Merge(HistoricalData{
		2023: {Prices: map[string]float64{"TPE:2330": 999, "NASDAQ:VT": 100}, ExchangeRate: 99, JPYExchangeRate: 0.21},
		2024: {Prices: map[string]float64{"TPE:2330": 600}},
	})

	got := h[2023]
	// user-resolved values win.
	if got.Prices["TPE:2330"] != 500 {
		t.Errorf("existing price overwritten: %v, want 500", got.Prices["TPE:2330"])
	}
	if got.ExchangeRate != 31 {
		t.Errorf("existing rate overwritten: %v, want 31", got.ExchangeRate)
	}
	// holes are filled.
	if got.Prices["NASDAQ:VT"] != 100 {
		t.Errorf("missing price not filled: %v, want 100", got.Prices["NASDAQ:VT"])
	}
	if got.JPYExchangeRate != 0.21 {
		t.Errorf("missing JPY rate not filled: %v, want 0.21", got.JPYExchangeRate)
	}
	// new years land whole.
	if h[2024].Prices["TPE:2330"] != 600 {
		t.Errorf("new year not merged: %v", h[2024])
	}
}

func TestHistoricalMergeSanitizes(t *testing.T) {
	h := make(HistoricalData)
	h.Merge(HistoricalData{
		2023: {Prices: map[string]float64{"VT": math.NaN()}, ExchangeRate: math.Inf(1)},
	})
	if got := h[2023].Prices["VT"]; got != 0 {
		t.Errorf("NaN price = %v, want 0", got)
	}
	if got := h[2023].ExchangeRate; got != 0 {
		t.Errorf("Inf rate = %v, want 0", got)
	}
}

func TestSnapshotRateFallbacks(t *testing.T) {
	live := &Quotes{USDTWD: 32, JPYTWD: 0.22}

	full := YearSnapshot{ExchangeRate: 30, JPYExchangeRate: 0.2}
	if got := full.rateFor(MarketUS, live); got != 30 {
		t.Errorf("US rate = %v, want 30", got)
	}
	if got := full.rateFor(MarketJP, live); got != 0.2 {
		t.Errorf("JP rate = %v, want 0.2", got)
	}
	if got := full.rateFor(MarketTW, live); got != 1 {
		t.Errorf("TW rate = %v, want 1", got)
	}

	// a snapshot without a JPY rate falls back to its USD rate, then live.
	usdOnly := YearSnapshot{ExchangeRate: 30}
	if got := usdOnly.rateFor(MarketJP, live); got != 30 {
		t.Errorf("JP rate without JPY = %v, want 30", got)
	}
	empty := YearSnapshot{}
	if got := empty.rateFor(MarketJP, live); got != 0.22 {
		t.Errorf("JP rate of empty snapshot = %v, want live 0.22", got)
	}
	if got := empty.rateForCurrency(CurrencyUSD, live); got != 32 {
		t.Errorf("USD currency rate of empty snapshot = %v, want live 32", got)
	}
}

func TestQuotesMerge(t *testing.T) {
	q := Quotes{Prices: map[string]float64{"TPE:2330": 1000}, USDTWD: 31}
	q.Merge(Quotes{
		Prices: map[string]float64{"TPE:2330": 999, "NASDAQ:VT": 120},
		USDTWD: 99,
		JPYTWD: 0.21,
	})
	if q.Prices["TPE:2330"] != 1000 {
		t.Errorf("existing price overwritten: %v", q.Prices["TPE:2330"])
	}
	if q.Prices["NASDAQ:VT"] != 120 {
		t.Errorf("missing price not filled: %v", q.Prices["NASDAQ:VT"])
	}
	if q.USDTWD != 31 {
		t.Errorf("existing rate overwritten: %v", q.USDTWD)
	}
	if q.JPYTWD != 0.21 {
		t.Errorf("missing rate not filled: %v", q.JPYTWD)
	}
}

func TestQuotesRateFor(t *testing.T) {
	q := &Quotes{USDTWD: 31}
	if got := q.RateFor(MarketTW); got != 1 {
		t.Errorf("RateFor(TW) = %v, want 1", got)
	}
	if got := q.RateFor(MarketUK); got != 31 {
		t.Errorf("RateFor(UK) = %v, want the USD rate 31", got)
	}
	// JPY falls back to the USD rate when unset.
	if got := q.RateFor(MarketJP); got != 31 {
		t.Errorf("RateFor(JP) = %v, want 31", got)
	}
	q.JPYTWD = 0.21
	if got := q.RateFor(MarketJP); got != 0.21 {
		t.Errorf("RateFor(JP) = %v, want 0.21", got)
	}
}
