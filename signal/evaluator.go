package signal

import (
	"errors"
	"fmt"

	"github.com/phill-ed/forex-analytics-dashboard/config"
	"github.com/phill-ed/forex-analytics-dashboard/indicators"
	"github.com/phill-ed/forex-analytics-dashboard/market"
)

// ErrIndicatorUnavailable reports an evaluation requested at an index where
// a required indicator has not warmed up. Callers should evaluate only past
// the longest warm-up, or opt into partial evaluation via
// config.AllowPartial.
var ErrIndicatorUnavailable = errors.New("indicator unavailable")

// Vote weights. RSI carries double weight: an oversold/overbought reading is
// the strongest single condition in this rule set.
const (
	rsiWeight  = 2.0
	maWeight   = 1.0
	macdWeight = 1.0

	// maxNetWeight is the sum of all weights; confidence maps net weight
	// linearly so that an all-bullish snapshot lands exactly on 100.
	maxNetWeight = rsiWeight + maWeight + macdWeight
)

// RSI vote thresholds.
const (
	rsiOversold   = 30.0
	rsiOverbought = 70.0
)

// Evaluator derives one Signal per indicator snapshot. It is stateless
// between calls; the same series, index and configuration always produce
// the same signal.
type Evaluator struct {
	cfg *config.Config
}

// NewEvaluator builds an evaluator from a validated configuration.
func NewEvaluator(cfg *config.Config) (*Evaluator, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("evaluator config: %w", err)
	}
	return &Evaluator{cfg: cfg}, nil
}

// EvaluateLatest evaluates the most recent index of the series.
func (e *Evaluator) EvaluateLatest(s *market.Series) (Signal, error) {
	return e.Evaluate(s, s.Len()-1)
}

// Evaluate computes the configured indicators over the series and evaluates
// the snapshot at index i.
func (e *Evaluator) Evaluate(s *market.Series, i int) (Signal, error) {
	if i < 0 || i >= s.Len() {
		return Signal{}, fmt.Errorf("evaluate %s: index %d out of range [0,%d)", s.Pair(), i, s.Len())
	}

	snap, err := e.snapshotAt(s, i)
	if err != nil {
		return Signal{}, err
	}
	return e.EvaluateSnapshot(snap)
}

// snapshotAt builds the aligned indicator snapshot for index i. Indicators
// whose warm-up exceeds the whole series length are reported as not-OK
// rather than failing here, so AllowPartial still works on short history.
func (e *Evaluator) snapshotAt(s *market.Series, i int) (Snapshot, error) {
	snap := Snapshot{
		Pair:  s.Pair(),
		Time:  s.At(i).Time,
		Price: s.At(i).Close,
	}

	if rsi, err := indicators.RSI(s, e.cfg.RSIPeriod); err == nil {
		snap.RSI = valueAt(rsi, i)
	} else if !errors.Is(err, indicators.ErrInsufficientData) {
		return Snapshot{}, err
	}

	if short, err := indicators.SMA(s, e.cfg.SMAShortPeriod); err == nil {
		snap.SMAShort = valueAt(short, i)
	} else if !errors.Is(err, indicators.ErrInsufficientData) {
		return Snapshot{}, err
	}

	if long, err := indicators.SMA(s, e.cfg.SMALongPeriod); err == nil {
		snap.SMALong = valueAt(long, i)
	} else if !errors.Is(err, indicators.ErrInsufficientData) {
		return Snapshot{}, err
	}

	if macd, err := indicators.MACD(s, e.cfg.MACDFast, e.cfg.MACDSlow, e.cfg.MACDSignal); err == nil {
		snap.MACD = valueAt(macd.Line, i)
		snap.MACDSignal = valueAt(macd.Signal, i)
		snap.PrevMACD = valueAt(macd.Line, i-1)
		snap.PrevMACDSignal = valueAt(macd.Signal, i-1)
	} else if !errors.Is(err, indicators.ErrInsufficientData) {
		return Snapshot{}, err
	}

	if e.cfg.ATRPeriod > 0 {
		if atr, err := indicators.ATR(s, e.cfg.ATRPeriod); err == nil {
			snap.ATR = valueAt(atr, i)
		} else if !errors.Is(err, indicators.ErrInsufficientData) {
			return Snapshot{}, err
		}
	}

	return snap, nil
}

// EvaluateSnapshot applies the documented rule set to one snapshot:
//
//  1. Each indicator votes bullish, bearish or neutral.
//  2. Confidence maps the weighted net vote onto [0,100] centred at 50.
//  3. BUY needs a bullish net and confidence >= MinConfidence; SELL needs a
//     bearish net with the mirrored strength (100-confidence) over the same
//     threshold; anything else is HOLD.
//  4. Stop/take levels come from ATR when available, else from the percent
//     fallbacks. HOLD pins both to the entry price.
func (e *Evaluator) EvaluateSnapshot(snap Snapshot) (Signal, error) {
	var net float64
	var reasons []string

	// RSI vote
	switch {
	case !snap.RSI.OK:
		if !e.cfg.AllowPartial {
			return Signal{}, fmt.Errorf("%w: RSI(%d) at %s %s",
				ErrIndicatorUnavailable, e.cfg.RSIPeriod, snap.Pair, snap.Time)
		}
	case snap.RSI.V < rsiOversold:
		net += rsiWeight
		reasons = append(reasons, fmt.Sprintf("RSI oversold (%.1f)", snap.RSI.V))
	case snap.RSI.V > rsiOverbought:
		net -= rsiWeight
		reasons = append(reasons, fmt.Sprintf("RSI overbought (%.1f)", snap.RSI.V))
	}

	// Moving average vote
	switch {
	case !snap.SMAShort.OK || !snap.SMALong.OK:
		if !e.cfg.AllowPartial {
			return Signal{}, fmt.Errorf("%w: SMA(%d/%d) at %s %s",
				ErrIndicatorUnavailable, e.cfg.SMAShortPeriod, e.cfg.SMALongPeriod, snap.Pair, snap.Time)
		}
	case snap.SMAShort.V > snap.SMALong.V:
		net += maWeight
		reasons = append(reasons, "MA bullish (short above long)")
	case snap.SMAShort.V < snap.SMALong.V:
		net -= maWeight
		reasons = append(reasons, "MA bearish (short below long)")
	}

	// MACD vote: only an actual cross on this step counts. The first defined
	// index has no previous point, so no cross can be observed there.
	switch {
	case !snap.MACD.OK || !snap.MACDSignal.OK:
		if !e.cfg.AllowPartial {
			return Signal{}, fmt.Errorf("%w: MACD(%d,%d,%d) at %s %s",
				ErrIndicatorUnavailable, e.cfg.MACDFast, e.cfg.MACDSlow, e.cfg.MACDSignal, snap.Pair, snap.Time)
		}
	case snap.PrevMACD.OK && snap.PrevMACDSignal.OK:
		crossedUp := snap.PrevMACD.V <= snap.PrevMACDSignal.V && snap.MACD.V > snap.MACDSignal.V
		crossedDown := snap.PrevMACD.V >= snap.PrevMACDSignal.V && snap.MACD.V < snap.MACDSignal.V
		if crossedUp {
			net += macdWeight
			reasons = append(reasons, "MACD bullish crossover")
		} else if crossedDown {
			net -= macdWeight
			reasons = append(reasons, "MACD bearish crossover")
		}
	}

	confidence := clamp(50+50*net/maxNetWeight, 0, 100)

	typ := Hold
	if net > 0 && confidence >= e.cfg.MinConfidence {
		typ = Buy
	} else if net < 0 && (100-confidence) >= e.cfg.MinConfidence {
		typ = Sell
	}

	stop, take := e.exits(typ, snap)

	return Signal{
		Pair:       snap.Pair,
		Time:       snap.Time,
		Type:       typ,
		Confidence: confidence,
		Entry:      snap.Price,
		StopLoss:   stop,
		TakeProfit: take,
		Reasons:    reasons,
	}, nil
}

// exits derives stop-loss/take-profit prices. ATR-based when the snapshot
// carries an ATR reading, percent-of-entry otherwise. A HOLD signal has no
// position to protect, so both levels stay at entry.
func (e *Evaluator) exits(typ Type, snap Snapshot) (stop, take float64) {
	if typ == Hold {
		return snap.Price, snap.Price
	}

	stopDist := snap.Price * e.cfg.StopPct
	takeDist := snap.Price * e.cfg.TakePct
	if snap.ATR.OK {
		stopDist = e.cfg.StopATRMult * snap.ATR.V
		takeDist = e.cfg.TakeATRMult * snap.ATR.V
	}

	if typ == Buy {
		return snap.Price - stopDist, snap.Price + takeDist
	}
	return snap.Price + stopDist, snap.Price - takeDist
}

func valueAt(l indicators.Line, i int) Value {
	v, ok := l.ValueAt(i)
	return Value{V: v, OK: ok}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
