package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tradesYAML = `
logging:
  level: error
curves:
  discount:
    name: ois
    rate: 0.02
  survival:
    name: issuer
    rate: 0.05
trades:
  - trade_id: BUY-1
    notional: 10000000
    par_spread_bp: "100"
    direction: buy
    start_date: "2021-03-19"
    maturity_date: "2026-03-20"
    recovery_rate: 0.4
    include_accrued_premium: true
    integration_steps_per_year: 12
    calendar: target
    sector: financials
  - notional: 10000000
    par_spread_bp: "100"
    direction: sell
    start_date: "2021-03-19"
    maturity_date: "2026-03-20"
    recovery_rate: 0.4
    include_accrued_premium: true
    integration_steps_per_year: 12
    calendar: target
    sector: financials
`

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trades.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestRunPricesTrades(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeFile(t, tradesYAML)}, &stdout, &stderr)
	require.Equal(t, 0, code, stdout.String())

	var out batchOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	require.Empty(t, out.Error)
	require.Len(t, out.Trades, 2)

	buy, sell := out.Trades[0], out.Trades[1]
	assert.Equal(t, "BUY-1", buy.TradeID)
	assert.Equal(t, "BuyProtection", buy.Direction)
	assert.Equal(t, "SellProtection", sell.Direction)
	_, err := uuid.Parse(sell.TradeID)
	assert.NoError(t, err)

	assert.Greater(t, buy.PremiumLegPV, 0.0)
	assert.Greater(t, buy.AccruedPremiumPV, 0.0)
	assert.Greater(t, buy.ContingentLegPV, buy.PremiumLegPV)
	assert.InDelta(t, buy.ContingentLegPV-buy.PremiumLegPV, buy.PV, 1e-5)
	assert.InDelta(t, -buy.PV, sell.PV, 1e-5)
	assert.NotEmpty(t, buy.ParSpreadBP)
}

func TestRunReportsInvalidTrade(t *testing.T) {
	body := `
curves:
  discount:
    rate: 0.02
  survival:
    rate: 0.05
trades:
  - notional: 10000000
    par_spread_bp: "100"
    direction: hold
    start_date: "2021-03-19"
    maturity_date: "2026-03-20"
    integration_steps_per_year: 12
`
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", writeFile(t, body)}, &stdout, &stderr)
	assert.Equal(t, 1, code)

	var out batchOutput
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Contains(t, out.Error, "trades[0]")
	assert.Contains(t, out.Error, "direction")
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Usage")

	stderr.Reset()
	assert.Equal(t, 0, run([]string{"-h"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestRunMissingConfig(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, &stdout, &stderr)
	assert.Equal(t, 1, code)
	assert.Contains(t, stdout.String(), `"error"`)
}
