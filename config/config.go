// Package config defines the structured configuration consumed by the signal
// evaluator and backtester: indicator periods, the confidence threshold, and
// stop/take sizing.
package config

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the complete analysis configuration.
type Config struct {
	// Pairs lists the currency pairs a caller intends to monitor.
	Pairs []string `json:"pairs" yaml:"pairs"`

	// MinConfidence is the directional strength (0-100) a snapshot must
	// reach before a BUY or SELL is emitted instead of HOLD.
	MinConfidence float64 `json:"min_confidence" yaml:"min_confidence"`

	RSIPeriod      int `json:"rsi_period" yaml:"rsi_period"`
	SMAShortPeriod int `json:"sma_short_period" yaml:"sma_short_period"`
	SMALongPeriod  int `json:"sma_long_period" yaml:"sma_long_period"`

	MACDFast   int `json:"macd_fast" yaml:"macd_fast"`
	MACDSlow   int `json:"macd_slow" yaml:"macd_slow"`
	MACDSignal int `json:"macd_signal" yaml:"macd_signal"`

	BollingerPeriod int     `json:"bollinger_period" yaml:"bollinger_period"`
	BollingerMult   float64 `json:"bollinger_mult" yaml:"bollinger_mult"`

	// ATRPeriod of 0 disables ATR-based exits; the percent fallbacks below
	// are used instead.
	ATRPeriod   int     `json:"atr_period" yaml:"atr_period"`
	StopATRMult float64 `json:"stop_atr_mult" yaml:"stop_atr_mult"`
	TakeATRMult float64 `json:"take_atr_mult" yaml:"take_atr_mult"`

	// StopPct/TakePct size exits as a fraction of entry price when ATR is
	// not available.
	StopPct float64 `json:"stop_pct" yaml:"stop_pct"`
	TakePct float64 `json:"take_pct" yaml:"take_pct"`

	// AllowPartial lets the evaluator skip votes whose indicator has not
	// warmed up yet instead of failing the evaluation.
	AllowPartial bool `json:"allow_partial" yaml:"allow_partial"`
}

// LoadFromFile loads configuration from a file (YAML or JSON).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.MinConfidence < 0 || c.MinConfidence > 100 {
		return fmt.Errorf("min_confidence must be between 0 and 100")
	}
	if c.RSIPeriod < 1 {
		return fmt.Errorf("rsi_period must be positive")
	}
	if c.SMAShortPeriod < 1 || c.SMALongPeriod < 1 {
		return fmt.Errorf("sma periods must be positive")
	}
	if c.SMAShortPeriod >= c.SMALongPeriod {
		return fmt.Errorf("sma_short_period must be below sma_long_period")
	}
	if c.MACDFast < 1 || c.MACDSlow < 1 || c.MACDSignal < 1 {
		return fmt.Errorf("macd periods must be positive")
	}
	if c.MACDFast >= c.MACDSlow {
		return fmt.Errorf("macd_fast must be below macd_slow")
	}
	if c.BollingerPeriod < 1 {
		return fmt.Errorf("bollinger_period must be positive")
	}
	if c.BollingerMult <= 0 {
		return fmt.Errorf("bollinger_mult must be positive")
	}
	if c.ATRPeriod < 0 {
		return fmt.Errorf("atr_period must not be negative")
	}
	if c.ATRPeriod > 0 && (c.StopATRMult <= 0 || c.TakeATRMult <= 0) {
		return fmt.Errorf("stop_atr_mult and take_atr_mult must be positive when atr_period is set")
	}
	if c.StopPct <= 0 || c.TakePct <= 0 {
		return fmt.Errorf("stop_pct and take_pct must be positive")
	}
	return nil
}

// Default returns a configuration with the conventional indicator settings:
// RSI(14), SMA 20/50, MACD 12/26/9, Bollinger 20/2 and ATR(14) exits at 2x
// stop / 3x take.
func Default() *Config {
	return &Config{
		Pairs:         []string{"EUR_USD", "GBP_USD", "USD_JPY"},
		MinConfidence: 75,

		RSIPeriod:      14,
		SMAShortPeriod: 20,
		SMALongPeriod:  50,

		MACDFast:   12,
		MACDSlow:   26,
		MACDSignal: 9,

		BollingerPeriod: 20,
		BollingerMult:   2.0,

		ATRPeriod:   14,
		StopATRMult: 2.0,
		TakeATRMult: 3.0,

		StopPct: 0.005,
		TakePct: 0.0075,
	}
}
