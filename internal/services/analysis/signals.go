package analysis

import (
	"fmt"
	"time"

	"TokenScope/internal/domain/models"
	"TokenScope/internal/service/goplus"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const topHolders = 10

// NewID generates signal identifiers.
var NewID = uuid.NewString

type rule func(sec *goplus.TokenSecurity) (models.Signal, bool)

// rules run in this order; output order follows it.
var rules = []rule{
	honeypotRule,
	mintableRule,
	hiddenOwnerRule,
	unverifiedRule,
	sellTaxRule,
	blacklistRule,
	concentrationRule,
}

// DeriveSignals evaluates every rule against sec. A nil record yields no signals.
func DeriveSignals(sec *goplus.TokenSecurity, now time.Time) []models.Signal {
	signals := make([]models.Signal, 0, len(rules))
	if sec == nil {
		return signals
	}
	for _, r := range rules {
		s, ok := r(sec)
		if !ok {
			continue
		}
		s.ID = NewID()
		s.Timestamp = now
		signals = append(signals, s)
	}
	return signals
}

func honeypotRule(sec *goplus.TokenSecurity) (models.Signal, bool) {
	if !sec.IsHoneypot.True() {
		return models.Signal{}, false
	}
	return models.Signal{
		Type:     models.SignalHoneypot,
		Severity: models.SeverityCritical,
		Title:    "Honeypot detected",
		Summary:  "This token cannot be sold after purchase",
	}, true
}

func mintableRule(sec *goplus.TokenSecurity) (models.Signal, bool) {
	if !sec.IsMintable.True() {
		return models.Signal{}, false
	}
	return models.Signal{
		Type:     models.SignalContractRisk,
		Severity: models.SeverityHigh,
		Title:    "Mintable token",
		Summary:  "Owner can mint new tokens and dilute holders",
	}, true
}

func hiddenOwnerRule(sec *goplus.TokenSecurity) (models.Signal, bool) {
	if !sec.HiddenOwner.True() {
		return models.Signal{}, false
	}
	return models.Signal{
		Type:     models.SignalContractRisk,
		Severity: models.SeverityHigh,
		Title:    "Hidden owner",
		Summary:  "Contract keeps a hidden owner with privileged access",
	}, true
}

func unverifiedRule(sec *goplus.TokenSecurity) (models.Signal, bool) {
	if sec.IsOpenSource.True() {
		return models.Signal{}, false
	}
	return models.Signal{
		Type:     models.SignalContractRisk,
		Severity: models.SeverityMedium,
		Title:    "Unverified contract",
		Summary:  "Contract source code is not verified",
	}, true
}

func sellTaxRule(sec *goplus.TokenSecurity) (models.Signal, bool) {
	tax := percent(sec.SellTax)
	if tax <= 10 {
		return models.Signal{}, false
	}
	severity := models.SeverityHigh
	if tax > 30 {
		severity = models.SeverityCritical
	}
	return models.Signal{
		Type:     models.SignalContractRisk,
		Severity: severity,
		Title:    "High sell tax",
		Summary:  fmt.Sprintf("Sell tax is %.1f%%", tax),
	}, true
}

func blacklistRule(sec *goplus.TokenSecurity) (models.Signal, bool) {
	if !sec.IsBlacklisted.True() {
		return models.Signal{}, false
	}
	return models.Signal{
		Type:     models.SignalContractRisk,
		Severity: models.SeverityMedium,
		Title:    "Blacklist function",
		Summary:  "Contract can block addresses from trading",
	}, true
}

func concentrationRule(sec *goplus.TokenSecurity) (models.Signal, bool) {
	share := topHolderShare(sec.Holders)
	if share <= 50 {
		return models.Signal{}, false
	}
	severity := models.SeverityMedium
	if share > 70 {
		severity = models.SeverityHigh
	}
	return models.Signal{
		Type:     models.SignalHolderConcentration,
		Severity: severity,
		Title:    "Holder concentration",
		Summary:  fmt.Sprintf("Top 10 holders control %.1f%%", share),
	}, true
}

// topHolderShare sums the first ten holder fractions as a percentage.
func topHolderShare(holders []goplus.Holder) float64 {
	sum := decimal.Zero
	for i, h := range holders {
		if i == topHolders {
			break
		}
		sum = sum.Add(parseDecimal(h.Percent))
	}
	f, _ := sum.Mul(hundred).Float64()
	return f
}
