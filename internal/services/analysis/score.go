package analysis

import "TokenScope/internal/domain/models"

const MaxRiskScore = 100

var severityWeights = map[models.Severity]int{
	models.SeverityInfo:     0,
	models.SeverityLow:      5,
	models.SeverityMedium:   15,
	models.SeverityHigh:     25,
	models.SeverityCritical: 40,
}

// Weight returns the score contribution of a severity. Unknown severities weigh 0.
func Weight(s models.Severity) int {
	return severityWeights[s]
}

// Score sums signal weights, capped at MaxRiskScore.
func Score(signals []models.Signal) int {
	total := 0
	for _, s := range signals {
		total += Weight(s.Severity)
	}
	if total > MaxRiskScore {
		return MaxRiskScore
	}
	return total
}
