// Package quote fetches live prices and exchange rates from Yahoo Finance.
// It is the asynchronous boundary of the system: results are merged into the
// caller's quotes defensively, never trusted to be complete.
package quote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/ycwei/folio"
)

// yahooChart is the v8 chart endpoint; one minute bars are enough since only
// the meta block is read.
const yahooChart = "https://query2.finance.yahoo.com/v8/finance/chart/%s?interval=1m&range=1d"

// rate symbols on Yahoo.
const (
	symbolUSDTWD = "TWD=X"
	symbolJPYTWD = "JPYTWD=X"
)

type cachedQuote struct {
	price, change, changePercent float64
	fetched                      time.Time
}

// Service fetches quotes with a short-lived in-memory cache, so repeated
// report commands within a minute reuse one round trip per symbol.
type Service struct {
	client *http.Client
	ttl    time.Duration

	mu    sync.RWMutex
	cache map[string]cachedQuote
}

func NewService() *Service {
	return &Service{
		client: &http.Client{Timeout: 8 * time.Second},
		ttl:    60 * time.Second,
		cache:  make(map[string]cachedQuote),
	}
}

// Fetch retrieves current prices for every given security plus the USD/TWD
// and JPY/TWD rates. Failures are joined and returned alongside whatever was
// fetched successfully; the caller merges the partial result.
func (s *Service) Fetch(ctx context.Context, keys []folio.SecurityKey) (folio.Quotes, error) {
	quotes := folio.Quotes{
		Prices:  make(map[string]float64),
		Details: make(map[string]folio.PriceDetail),
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	errs := make([]error, len(keys)+2)

	for i, key := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q, err := s.quote(ctx, yahooSymbol(key))
			if err != nil {
				errs[i] = fmt.Errorf("quote %s: %w", key.Market.Symbol(key.Ticker), err)
				return
			}
			mu.Lock()
			defer mu.Unlock()
			quotes.Prices[key.Market.Symbol(key.Ticker)] = q.price
			quotes.Details[key.Market.Symbol(key.Ticker)] = folio.PriceDetail{
				Change:        q.change,
				ChangePercent: q.changePercent,
			}
		}()
	}

	wg.Add(2)
	go func() {
		defer wg.Done()
		q, err := s.quote(ctx, symbolUSDTWD)
		if err != nil {
			errs[len(keys)] = fmt.Errorf("rate USD/TWD: %w", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		quotes.USDTWD = q.price
	}()
	go func() {
		defer wg.Done()
		q, err := s.quote(ctx, symbolJPYTWD)
		if err != nil {
			errs[len(keys)+1] = fmt.Errorf("rate JPY/TWD: %w", err)
			return
		}
		mu.Lock()
		defer mu.Unlock()
		quotes.JPYTWD = q.price
	}()

	wg.Wait()
	return quotes, errors.Join(errs...)
}

// quote returns the latest price for a Yahoo symbol, from cache when fresh.
func (s *Service) quote(ctx context.Context, symbol string) (cachedQuote, error) {
	s.mu.RLock()
	c, ok := s.cache[symbol]
	s.mu.RUnlock()
	if ok && time.Since(c.fetched) < s.ttl {
		return c, nil
	}

	var jobj any
	if err := s.jwget(ctx, fmt.Sprintf(yahooChart, symbol), &jobj); err != nil {
		return cachedQuote{}, err
	}

	price, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	if err != nil {
		return cachedQuote{}, err
	}
	c = cachedQuote{price: price, fetched: time.Now()}
	// previous close is best-effort, only the daily change depends on it.
	if prev, err := jfloat(jobj, "$.chart.result[0].meta.chartPreviousClose"); err == nil && prev > 0 {
		c.change = price - prev
		c.changePercent = 100 * c.change / prev
	}

	s.mu.Lock()
	s.cache[symbol] = c
	s.mu.Unlock()
	return c, nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into
// the provided data structure.
func (s *Service) jwget(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "folio/1.0")

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return err
	}
	return json.Unmarshal(buf.Bytes(), data)
}

// jfloat extracts a float from a decoded JSON document by path.
func jfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of one answer
	// or a single answer; keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("error parsing %q: not a float: %v", path, jval)
	}
	return val, nil
}

// yahooSymbol maps a security to its Yahoo Finance symbol.
func yahooSymbol(key folio.SecurityKey) string {
	switch key.Market {
	case folio.MarketTW:
		return key.Ticker + ".TW"
	case folio.MarketJP:
		return key.Ticker + ".T"
	case folio.MarketUK:
		return key.Ticker + ".L"
	default:
		return key.Ticker
	}
}
