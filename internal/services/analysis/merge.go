package analysis

import (
	"strings"
	"time"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/service/dexscreener"
	"TokenScope/internal/service/goplus"
)

const zeroAddress = "0x0000000000000000000000000000000000000000"

// Merge normalizes a DEX pair and an optional security scan into an analysis record.
// It never fails: absent or malformed numbers become zero, except MarketCap and FDV
// which stay nil when absent. Signals and RiskScore are left empty; see Assemble.
func Merge(chain, address string, pair *dexscreener.Pair, sec *goplus.TokenSecurity, now time.Time) *models.AnalysisResult {
	res := &models.AnalysisResult{
		Token:     models.TokenIdentity{Chain: chain, Address: address},
		Signals:   []models.Signal{},
		Timestamp: now,
	}

	if pair != nil {
		// Identity comes from the base token; every market figure describes it.
		tok := pair.BaseToken
		res.Token.Name = tok.Name
		res.Token.Symbol = tok.Symbol
		if res.Token.Address == "" {
			res.Token.Address = tok.Address
		}

		if pair.PriceUsd != nil {
			res.Price = parseFloat(*pair.PriceUsd)
		}
		res.PriceChange = windows(pair.PriceChange)
		res.Volume = windows(pair.Volume)
		if pair.Liquidity != nil {
			res.Liquidity = floatOr0(pair.Liquidity.Usd)
		}
		if pair.Txns != nil && pair.Txns.H24 != nil {
			res.Txns24h = models.TxnCounts{
				Buys:  intOr0(pair.Txns.H24.Buys),
				Sells: intOr0(pair.Txns.H24.Sells),
			}
		}
		res.MarketCap = pair.MarketCap
		res.FDV = pair.Fdv
	}

	res.Contract = ContractSummary(sec)
	return res
}

// Assemble merges, derives signals and attaches the matching risk score.
func Assemble(chain, address string, pair *dexscreener.Pair, sec *goplus.TokenSecurity, now time.Time) *models.AnalysisResult {
	res := Merge(chain, address, pair, sec, now)
	res.Signals = DeriveSignals(sec, now)
	res.RiskScore = Score(res.Signals)
	return res
}

// ContractSummary maps a raw scan field-for-field; nil in, nil out.
func ContractSummary(sec *goplus.TokenSecurity) *models.ContractSecurity {
	if sec == nil {
		return nil
	}
	owner := strings.TrimSpace(sec.OwnerAddress)
	return &models.ContractSecurity{
		Verified:  sec.IsOpenSource.True(),
		Renounced: owner == "" || strings.EqualFold(owner, zeroAddress),
		Honeypot:  sec.IsHoneypot.True(),
		Mintable:  sec.IsMintable.True(),
		Pausable:  sec.TransferPause.True(),
		Blacklist: sec.IsBlacklisted.True(),
		BuyTax:    clamp(percent(sec.BuyTax), 0, 100),
		SellTax:   clamp(percent(sec.SellTax), 0, 100),
	}
}

func windows(w *dexscreener.Windows) models.Windowed {
	if w == nil {
		return models.Windowed{}
	}
	return models.Windowed{
		M5:  floatOr0(w.M5),
		H1:  floatOr0(w.H1),
		H6:  floatOr0(w.H6),
		H24: floatOr0(w.H24),
	}
}
