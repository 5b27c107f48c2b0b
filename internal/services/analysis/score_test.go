package analysis

import (
	"testing"

	"TokenScope/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

func sig(sev models.Severity) models.Signal { return models.Signal{Severity: sev} }

func TestScore(t *testing.T) {
	cases := []struct {
		name    string
		signals []models.Signal
		want    int
	}{
		{"empty", nil, 0},
		{"info", []models.Signal{sig(models.SeverityInfo)}, 0},
		{"low", []models.Signal{sig(models.SeverityLow)}, 5},
		{"medium+high", []models.Signal{sig(models.SeverityMedium), sig(models.SeverityHigh)}, 40},
		{"critical", []models.Signal{sig(models.SeverityCritical)}, 40},
		{"capped", []models.Signal{
			sig(models.SeverityCritical), sig(models.SeverityCritical), sig(models.SeverityHigh),
		}, 100},
		{"unknown severity", []models.Signal{sig("catastrophic")}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Score(tc.signals))
		})
	}
}

func TestScoreMonotonic(t *testing.T) {
	all := []models.Severity{
		models.SeverityInfo, models.SeverityLow, models.SeverityMedium,
		models.SeverityHigh, models.SeverityCritical,
	}
	var signals []models.Signal
	prev := Score(signals)
	for i := 0; i < 20; i++ {
		signals = append(signals, sig(all[i%len(all)]))
		cur := Score(signals)
		assert.GreaterOrEqual(t, cur, prev)
		assert.LessOrEqual(t, cur, MaxRiskScore)
		prev = cur
	}
}
