package dexscreener

// Payload shapes of the DexScreener public API. Every numeric field is optional;
// defaulting happens once, in the analysis merger.

type TokensResponse struct {
	SchemaVersion string `json:"schemaVersion"`
	Pairs         []Pair `json:"pairs"`
}

type Pair struct {
	ChainID     string     `json:"chainId"`
	DexID       string     `json:"dexId"`
	URL         string     `json:"url"`
	PairAddress string     `json:"pairAddress"`
	BaseToken   Token      `json:"baseToken"`
	QuoteToken  Token      `json:"quoteToken"`
	PriceNative string     `json:"priceNative"`
	PriceUsd    *string    `json:"priceUsd"`
	Txns        *Txns      `json:"txns"`
	Volume      *Windows   `json:"volume"`
	PriceChange *Windows   `json:"priceChange"`
	Liquidity   *Liquidity `json:"liquidity"`
	Fdv         *float64   `json:"fdv"`
	MarketCap   *float64   `json:"marketCap"`
	CreatedAt   *int64     `json:"pairCreatedAt"`
}

type Token struct {
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

type Windows struct {
	M5  *float64 `json:"m5"`
	H1  *float64 `json:"h1"`
	H6  *float64 `json:"h6"`
	H24 *float64 `json:"h24"`
}

type Liquidity struct {
	Usd   *float64 `json:"usd"`
	Base  *float64 `json:"base"`
	Quote *float64 `json:"quote"`
}

type TxnCount struct {
	Buys  *int `json:"buys"`
	Sells *int `json:"sells"`
}

type Txns struct {
	M5  *TxnCount `json:"m5"`
	H1  *TxnCount `json:"h1"`
	H6  *TxnCount `json:"h6"`
	H24 *TxnCount `json:"h24"`
}

// Boost is an entry of the top-boosted tokens list.
type Boost struct {
	URL          string  `json:"url"`
	ChainID      string  `json:"chainId"`
	TokenAddress string  `json:"tokenAddress"`
	Amount       float64 `json:"amount"`
	TotalAmount  float64 `json:"totalAmount"`
	Description  string  `json:"description"`
}
