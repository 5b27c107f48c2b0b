package goplus

import (
	"context"
	"fmt"
	"strings"

	xhttp "TokenScope/pkg/http"
)

const DefaultBaseURL = "https://api.gopluslabs.io/api/v1"

// Client reads token-security scans from the GoPlus public API.
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

// TokenSecurity returns the scan for address on chain. Unsupported chains and
// tokens GoPlus has no record for yield (nil, nil); unsupported chains make no request.
func (c *Client) TokenSecurity(ctx context.Context, chain, address string) (*TokenSecurity, error) {
	chainID, ok := ChainID(chain)
	if !ok {
		return nil, nil
	}

	var resp Response
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method:      xhttp.MethodGet,
		URL:         c.baseURL + "/token_security/" + chainID,
		QueryParams: map[string][]string{"contract_addresses": {address}},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("goplus token_security: %w", err)
	}
	if resp.Code != 1 {
		return nil, fmt.Errorf("goplus token_security: code %d: %s", resp.Code, resp.Message)
	}

	sec, ok := resp.Result[strings.ToLower(address)]
	if !ok {
		return nil, nil
	}
	return &sec, nil
}
