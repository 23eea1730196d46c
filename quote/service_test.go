package quote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ycwei/folio"
)

const chartPayload = `{
  "chart": {
    "result": [
      {
        "meta": {
          "regularMarketPrice": 1045.0,
          "chartPreviousClose": 1000.0
        }
      }
    ],
    "error": null
  }
}`

func TestJwget(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(chartPayload))
	}))
	defer server.Close()

	s := NewService()
	var jobj any
	err := s.jwget(context.Background(), server.URL, &jobj)
	require.NoError(t, err)

	price, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	require.NoError(t, err)
	assert.Equal(t, 1045.0, price)

	prev, err := jfloat(jobj, "$.chart.result[0].meta.chartPreviousClose")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, prev)
}

func TestJwgetHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusTooManyRequests)
	}))
	defer server.Close()

	var jobj any
	err := NewService().jwget(context.Background(), server.URL, &jobj)
	assert.Error(t, err)
}

func TestJfloatMissingPath(t *testing.T) {
	var jobj any
	require.NoError(t, json.Unmarshal([]byte(`{"chart":{"result":[]}}`), &jobj))
	_, err := jfloat(jobj, "$.chart.result[0].meta.regularMarketPrice")
	assert.Error(t, err)
}

func TestYahooSymbol(t *testing.T) {
	cases := []struct {
		key  folio.SecurityKey
		want string
	}{
		{folio.SecurityKey{Market: folio.MarketTW, Ticker: "2330"}, "2330.TW"},
		{folio.SecurityKey{Market: folio.MarketJP, Ticker: "7203"}, "7203.T"},
		{folio.SecurityKey{Market: folio.MarketUK, Ticker: "VUSA"}, "VUSA.L"},
		{folio.SecurityKey{Market: folio.MarketUS, Ticker: "VT"}, "VT"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, yahooSymbol(c.key))
	}
}
