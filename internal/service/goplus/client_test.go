package goplus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChainID(t *testing.T) {
	cases := map[string]string{
		"ethereum": "1", "bsc": "56", "polygon": "137", "arbitrum": "42161",
		"optimism": "10", "avalanche": "43114", "fantom": "250", "base": "8453",
		" BSC ": "56",
	}
	for chain, want := range cases {
		got, ok := ChainID(chain)
		require.True(t, ok, chain)
		assert.Equal(t, want, got, chain)
	}

	_, ok := ChainID("solana")
	assert.False(t, ok)
}

func TestTokenSecurityLooksUpLowercasedAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/token_security/56", r.URL.Path)
		assert.Equal(t, "0xABCdef", r.URL.Query().Get("contract_addresses"))
		_, _ = w.Write([]byte(`{"code":1,"message":"OK","result":{"0xabcdef":{
			"is_honeypot":"1","is_open_source":"1","sell_tax":"0.35",
			"holders":[{"address":"0x1","percent":"0.3","is_contract":0}]}}}`))
	}))
	defer srv.Close()

	sec, err := New(srv.URL, nil).TokenSecurity(context.Background(), "bsc", "0xABCdef")
	require.NoError(t, err)
	require.NotNil(t, sec)
	assert.True(t, sec.IsHoneypot.True())
	assert.False(t, sec.IsMintable.True())
	assert.Equal(t, "0.35", sec.SellTax)
	require.Len(t, sec.Holders, 1)
	assert.Equal(t, "0.3", sec.Holders[0].Percent)
}

func TestTokenSecurityMissingRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":1,"message":"OK","result":{}}`))
	}))
	defer srv.Close()

	sec, err := New(srv.URL, nil).TokenSecurity(context.Background(), "ethereum", "0xnothing")
	require.NoError(t, err)
	assert.Nil(t, sec)
}

func TestTokenSecurityUnsupportedChainMakesNoRequest(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer srv.Close()

	sec, err := New(srv.URL, nil).TokenSecurity(context.Background(), "solana", "So1111")
	require.NoError(t, err)
	assert.Nil(t, sec)
	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestTokenSecurityErrorCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"code":4029,"message":"too many requests"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).TokenSecurity(context.Background(), "base", "0x1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "too many requests")
}
