package models

import "time"

// TokenIdentity identifies a token on a chain.
type TokenIdentity struct {
	Chain   string `json:"chain"`
	Address string `json:"address"`
	Name    string `json:"name"`
	Symbol  string `json:"symbol"`
}

// Windowed holds a metric over the 5m/1h/6h/24h windows.
type Windowed struct {
	M5  float64 `json:"m5"`
	H1  float64 `json:"h1"`
	H6  float64 `json:"h6"`
	H24 float64 `json:"h24"`
}

// TxnCounts are buy/sell transaction counts for a window.
type TxnCounts struct {
	Buys  int `json:"buys"`
	Sells int `json:"sells"`
}

// ContractSecurity summarizes a contract-security scan. Taxes are percentages in [0,100].
type ContractSecurity struct {
	Verified  bool    `json:"verified"`
	Renounced bool    `json:"renounced"`
	Honeypot  bool    `json:"honeypot"`
	Mintable  bool    `json:"mintable"`
	Pausable  bool    `json:"pausable"`
	Blacklist bool    `json:"blacklist"`
	BuyTax    float64 `json:"buyTax"`
	SellTax   float64 `json:"sellTax"`
}

// AnalysisResult is the unified per-token analysis record.
// RiskScore is always derived from Signals; Contract is nil when no security data was available.
type AnalysisResult struct {
	Token       TokenIdentity     `json:"token"`
	Price       float64           `json:"price"`
	PriceChange Windowed          `json:"priceChange"`
	Volume      Windowed          `json:"volume"`
	Txns24h     TxnCounts         `json:"txns24h"`
	Liquidity   float64           `json:"liquidity"`
	MarketCap   *float64          `json:"marketCap,omitempty"`
	FDV         *float64          `json:"fdv,omitempty"`
	Contract    *ContractSecurity `json:"contract,omitempty"`
	Signals     []Signal          `json:"signals"`
	RiskScore   int               `json:"riskScore"`
	Timestamp   time.Time         `json:"timestamp"`
}
