package usecase

import (
	"strings"
	"time"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/service/dexscreener"
	"TokenScope/internal/services/analysis"
)

// summarize keeps the first pair per token, in DexScreener's ranking order.
func summarize(pairs []dexscreener.Pair) []models.TokenSummary {
	out := make([]models.TokenSummary, 0, len(pairs))
	seen := make(map[string]bool, len(pairs))
	for i := range pairs {
		p := &pairs[i]
		key := p.ChainID + ":" + strings.ToLower(p.BaseToken.Address)
		if seen[key] {
			continue
		}
		seen[key] = true

		m := analysis.Merge(p.ChainID, p.BaseToken.Address, p, nil, time.Time{})
		out = append(out, models.TokenSummary{
			Token:          m.Token,
			PairAddress:    p.PairAddress,
			DexID:          p.DexID,
			Price:          m.Price,
			PriceChange24h: m.PriceChange.H24,
			Volume24h:      m.Volume.H24,
			Liquidity:      m.Liquidity,
			MarketCap:      m.MarketCap,
		})
	}
	return out
}

func trending(boosts []dexscreener.Boost, chain string, limit int) []models.TrendingToken {
	out := make([]models.TrendingToken, 0, len(boosts))
	for _, b := range boosts {
		if chain != "" && !strings.EqualFold(b.ChainID, chain) {
			continue
		}
		out = append(out, models.TrendingToken{
			Chain:       strings.ToLower(b.ChainID),
			Address:     b.TokenAddress,
			Description: b.Description,
			URL:         b.URL,
			Boost:       b.TotalAmount,
		})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
