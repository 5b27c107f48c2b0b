package models

import "time"

type SignalType string

const (
	SignalHoneypot            SignalType = "honeypot"
	SignalContractRisk        SignalType = "contract_risk"
	SignalHolderConcentration SignalType = "holder_concentration"
)

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Signal is a single risk finding. Signals are generated fresh on every call.
type Signal struct {
	ID        string     `json:"id"`
	Type      SignalType `json:"type"`
	Severity  Severity   `json:"severity"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Timestamp time.Time  `json:"timestamp"`
}
