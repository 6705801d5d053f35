// Package signal turns point-in-time indicator snapshots into discrete
// trading signals with a confidence score and a human-readable rationale.
package signal

import "time"

// Type classifies a signal's direction.
type Type string

const (
	Buy  Type = "BUY"
	Sell Type = "SELL"
	Hold Type = "HOLD"
)

// Signal is a pure output value: one directional call for one pair at one
// point in time. It has no further lifecycle and is never mutated.
type Signal struct {
	Pair string
	Time time.Time
	Type Type

	// Confidence is the directional scale in [0,100]: 100 means every vote
	// was bullish, 0 means every vote was bearish, 50 is evenly mixed.
	Confidence float64

	Entry      float64
	StopLoss   float64
	TakeProfit float64

	// Reasons holds the rationale for each non-neutral vote, in the fixed
	// order RSI, moving average, MACD.
	Reasons []string
}

// Value is one indicator reading that may not have warmed up yet. A false OK
// is the explicit "not yet available" marker; V is meaningless then.
type Value struct {
	V  float64
	OK bool
}

// Snapshot is the aligned set of indicator readings at a single series
// index. PrevMACD/PrevMACDSignal come from the preceding index and feed the
// crossover check; on the first index where MACD is defined they are simply
// not OK and the MACD vote is neutral (no cross can be observed yet).
type Snapshot struct {
	Pair  string
	Time  time.Time
	Price float64

	RSI      Value
	SMAShort Value
	SMALong  Value

	MACD           Value
	MACDSignal     Value
	PrevMACD       Value
	PrevMACDSignal Value

	ATR Value
}
