package histprice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSnapshot(t *testing.T) {
	snap, err := parseSnapshot(`{"prices":{"TPE:2330":593.0,"NASDAQ:VT":95.2},"exchangeRate":30.7,"jpyExchangeRate":0.218}`)
	require.NoError(t, err)
	assert.Equal(t, 593.0, snap.Prices["TPE:2330"])
	assert.Equal(t, 95.2, snap.Prices["NASDAQ:VT"])
	assert.Equal(t, 30.7, snap.ExchangeRate)
	assert.Equal(t, 0.218, snap.JPYExchangeRate)
}

func TestParseSnapshotTrimsFence(t *testing.T) {
	text := "```json\n{\"prices\":{\"TPE:2330\":593.0},\"exchangeRate\":30.7}\n```"
	snap, err := parseSnapshot(text)
	require.NoError(t, err)
	assert.Equal(t, 593.0, snap.Prices["TPE:2330"])
}

func TestParseSnapshotGarbage(t *testing.T) {
	_, err := parseSnapshot("I could not find any prices, sorry.")
	assert.Error(t, err)
}
