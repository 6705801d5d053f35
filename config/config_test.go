package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 75.0, cfg.MinConfidence)
	assert.Equal(t, 14, cfg.RSIPeriod)
	assert.Equal(t, 20, cfg.SMAShortPeriod)
	assert.Equal(t, 50, cfg.SMALongPeriod)
	assert.Equal(t, 12, cfg.MACDFast)
	assert.Equal(t, 26, cfg.MACDSlow)
	assert.Equal(t, 9, cfg.MACDSignal)
	assert.Equal(t, 14, cfg.ATRPeriod)
	assert.Equal(t, 2.0, cfg.StopATRMult)
	assert.Equal(t, 3.0, cfg.TakeATRMult)
	assert.False(t, cfg.AllowPartial)
}

func TestLoadFromFileYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
pairs:
  - EUR_USD
  - USD_JPY
min_confidence: 80
rsi_period: 10
sma_short_period: 5
sma_long_period: 30
macd_fast: 12
macd_slow: 26
macd_signal: 9
bollinger_period: 20
bollinger_mult: 2.0
atr_period: 14
stop_atr_mult: 1.5
take_atr_mult: 2.5
stop_pct: 0.004
take_pct: 0.006
allow_partial: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"EUR_USD", "USD_JPY"}, cfg.Pairs)
	assert.Equal(t, 80.0, cfg.MinConfidence)
	assert.Equal(t, 10, cfg.RSIPeriod)
	assert.Equal(t, 5, cfg.SMAShortPeriod)
	assert.Equal(t, 30, cfg.SMALongPeriod)
	assert.Equal(t, 1.5, cfg.StopATRMult)
	assert.True(t, cfg.AllowPartial)
}

func TestLoadFromFileJSON(t *testing.T) {
	path := writeConfig(t, "config.json", `{
  "pairs": ["GBP_USD"],
  "min_confidence": 70,
  "rsi_period": 14,
  "sma_short_period": 20,
  "sma_long_period": 50,
  "macd_fast": 12,
  "macd_slow": 26,
  "macd_signal": 9,
  "bollinger_period": 20,
  "bollinger_mult": 2.0,
  "atr_period": 0,
  "stop_pct": 0.005,
  "take_pct": 0.0075
}`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"GBP_USD"}, cfg.Pairs)
	assert.Equal(t, 70.0, cfg.MinConfidence)
	assert.Equal(t, 0, cfg.ATRPeriod)
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileInvalidValues(t *testing.T) {
	path := writeConfig(t, "bad.yaml", `
min_confidence: 120
rsi_period: 14
sma_short_period: 20
sma_long_period: 50
macd_fast: 12
macd_slow: 26
macd_signal: 9
bollinger_period: 20
bollinger_mult: 2.0
stop_pct: 0.005
take_pct: 0.0075
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_confidence")
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"confidence above 100", func(c *Config) { c.MinConfidence = 101 }},
		{"negative confidence", func(c *Config) { c.MinConfidence = -1 }},
		{"zero rsi period", func(c *Config) { c.RSIPeriod = 0 }},
		{"short sma not below long", func(c *Config) { c.SMAShortPeriod = 50 }},
		{"zero macd period", func(c *Config) { c.MACDSignal = 0 }},
		{"macd fast not below slow", func(c *Config) { c.MACDFast = 26 }},
		{"zero bollinger period", func(c *Config) { c.BollingerPeriod = 0 }},
		{"non-positive bollinger mult", func(c *Config) { c.BollingerMult = 0 }},
		{"negative atr period", func(c *Config) { c.ATRPeriod = -1 }},
		{"zero stop mult with atr", func(c *Config) { c.StopATRMult = 0 }},
		{"zero stop pct", func(c *Config) { c.StopPct = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

// ATR exits disabled: the multiplier checks do not apply.
func TestValidateATRDisabled(t *testing.T) {
	cfg := Default()
	cfg.ATRPeriod = 0
	cfg.StopATRMult = 0
	cfg.TakeATRMult = 0
	assert.NoError(t, cfg.Validate())
}
