package models

import "time"

// TokenSummary is one search hit.
type TokenSummary struct {
	Token          TokenIdentity `json:"token"`
	PairAddress    string        `json:"pairAddress,omitempty"`
	DexID          string        `json:"dexId,omitempty"`
	Price          float64       `json:"price"`
	PriceChange24h float64       `json:"priceChange24h"`
	Volume24h      float64       `json:"volume24h"`
	Liquidity      float64       `json:"liquidity"`
	MarketCap      *float64      `json:"marketCap,omitempty"`
}

// TrendingToken is one entry of a trending list.
type TrendingToken struct {
	Chain       string  `json:"chain"`
	Address     string  `json:"address"`
	Name        string  `json:"name,omitempty"`
	Symbol      string  `json:"symbol,omitempty"`
	Description string  `json:"description,omitempty"`
	URL         string  `json:"url,omitempty"`
	Boost       float64 `json:"boost,omitempty"`
}

// WatchlistEntry is a token the user follows.
type WatchlistEntry struct {
	Chain   string    `json:"chain"`
	Address string    `json:"address"`
	Note    string    `json:"note,omitempty"`
	AddedAt time.Time `json:"addedAt"`
}
