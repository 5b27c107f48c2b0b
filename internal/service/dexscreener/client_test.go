package dexscreener

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pairsBody = `{"schemaVersion":"1.0.0","pairs":[
 {"chainId":"bsc","dexId":"pancakeswap","pairAddress":"0xpair1",
  "baseToken":{"address":"0xToken","name":"Pepe","symbol":"PEPE"},
  "priceUsd":"0.0000123","priceChange":{"h1":-2.5,"h24":12.1},
  "volume":{"h24":150000},"liquidity":{"usd":420000},
  "txns":{"h24":{"buys":120,"sells":80}},"marketCap":1000000},
 {"chainId":"bsc","dexId":"biswap","pairAddress":"0xpair2",
  "baseToken":{"address":"0xToken","name":"Pepe","symbol":"PEPE"}}]}`

func TestTokenPairReturnsFirstPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/latest/dex/tokens/0xToken", r.URL.Path)
		_, _ = w.Write([]byte(pairsBody))
	}))
	defer srv.Close()

	p, err := New(srv.URL, nil).TokenPair(context.Background(), "0xToken")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "0xpair1", p.PairAddress)
	require.NotNil(t, p.PriceUsd)
	assert.Equal(t, "0.0000123", *p.PriceUsd)
	require.NotNil(t, p.PriceChange)
	assert.Nil(t, p.PriceChange.M5)
	assert.Nil(t, p.Fdv)
	require.NotNil(t, p.MarketCap)
	assert.Equal(t, 1000000.0, *p.MarketCap)
}

func TestTokenPairNotFound(t *testing.T) {
	for _, body := range []string{`{"schemaVersion":"1.0.0","pairs":null}`, `{"pairs":[]}`, `{}`} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		}))
		p, err := New(srv.URL, nil).TokenPair(context.Background(), "0xnone")
		srv.Close()
		require.NoError(t, err)
		assert.Nil(t, p, body)
	}
}

func TestTokenPairUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).TokenPair(context.Background(), "0xToken")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 429")
}

func TestSearchPairsAndBoosts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/latest/dex/search":
			assert.Equal(t, "pepe", r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(pairsBody))
		case "/token-boosts/top/v1":
			_, _ = w.Write([]byte(`[{"chainId":"solana","tokenAddress":"So1","totalAmount":500,"url":"https://dexscreener.com/solana/so1"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(srv.URL+"/", nil)
	pairs, err := c.SearchPairs(context.Background(), "pepe")
	require.NoError(t, err)
	assert.Len(t, pairs, 2)

	boosts, err := c.TopBoosts(context.Background())
	require.NoError(t, err)
	require.Len(t, boosts, 1)
	assert.Equal(t, "So1", boosts[0].TokenAddress)
	assert.Equal(t, 500.0, boosts[0].TotalAmount)
}
