package models

// Requests for the HTTP surface. Defined in domain for reuse by the CLI.

type TokenRequest struct {
	Chain   string `param:"chain" json:"chain" validate:"required,max=32"`
	Address string `param:"address" json:"address" validate:"required,min=8,max=128"`
}

type SearchRequest struct {
	Query string `query:"q" json:"q" validate:"required,min=2,max=64"`
}

type TrendingRequest struct {
	Chain string `query:"chain" json:"chain" validate:"omitempty,max=32"`
	Limit int    `query:"limit" json:"limit" default:"20" validate:"gte=1,lte=100"`
}

type WatchlistAddRequest struct {
	Chain   string `json:"chain" validate:"required,max=32"`
	Address string `json:"address" validate:"required,min=8,max=128"`
	Note    string `json:"note" validate:"max=256"`
}
