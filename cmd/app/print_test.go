package main

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TokenScope/pkg/client"
)

func TestUSD(t *testing.T) {
	assert.Equal(t, "$0", usd(0))
	assert.Equal(t, "$0.0125", usd(0.0125))
	assert.Equal(t, "$1,234.5", usd(1234.5))
}

func TestRenderJSON(t *testing.T) {
	jsonOutput = true
	defer func() { jsonOutput = false }()

	var buf bytes.Buffer
	res := client.Result[[]client.Signal]{Success: true, Data: []client.Signal{{Title: "Honeypot detected"}}, Timestamp: time.Now()}
	require.NoError(t, render(&buf, res, false, func() { t.Fatal("pretty printer used in JSON mode") }))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, true, decoded["success"])

	buf.Reset()
	failed := client.Result[[]client.Signal]{Error: "Token not found"}
	err := render(&buf, failed, false, func() {})
	assert.EqualError(t, err, "Token not found")
	assert.Contains(t, buf.String(), `"error": "Token not found"`)
}

func TestRenderPretty(t *testing.T) {
	var buf bytes.Buffer
	res := client.Result[*client.AnalysisResult]{
		Success: true,
		Data: &client.AnalysisResult{
			RiskScore: 55,
			Signals:   []client.Signal{{Severity: "critical", Title: "High sell tax", Summary: "Sell tax is 35.0%"}},
			Timestamp: time.Now(),
		},
	}
	require.NoError(t, render(&buf, res, false, func() { printAnalysis(&buf, res.Data) }))
	assert.Contains(t, buf.String(), "risk score 55/100")
	assert.Contains(t, buf.String(), "Sell tax is 35.0%")
}
