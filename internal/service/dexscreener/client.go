package dexscreener

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	xhttp "TokenScope/pkg/http"
)

const DefaultBaseURL = "https://api.dexscreener.com"

// Client reads market data from the DexScreener public API.
type Client struct {
	baseURL string
	http    *xhttp.Client
}

func New(baseURL string, hc *xhttp.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if hc == nil {
		hc = xhttp.NewClient()
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// TokenPair returns the first pair listed for address, or nil if DexScreener knows none.
func (c *Client) TokenPair(ctx context.Context, address string) (*Pair, error) {
	var resp TokensResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/latest/dex/tokens/" + url.PathEscape(address),
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("dexscreener tokens: %w", err)
	}
	if len(resp.Pairs) == 0 {
		return nil, nil
	}
	p := resp.Pairs[0]
	return &p, nil
}

// SearchPairs runs a free-text pair search.
func (c *Client) SearchPairs(ctx context.Context, query string) ([]Pair, error) {
	var resp TokensResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/latest/dex/search",
		QueryParams: map[string][]string{"q": {query}},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("dexscreener search: %w", err)
	}
	return resp.Pairs, nil
}

// TopBoosts lists the tokens with the most active boosts.
func (c *Client) TopBoosts(ctx context.Context) ([]Boost, error) {
	var resp []Boost
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/token-boosts/top/v1",
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("dexscreener boosts: %w", err)
	}
	return resp, nil
}
