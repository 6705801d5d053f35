package backtest

import (
	"fmt"
	"io"
	"time"
)

// Result is the immutable outcome of one crossover replay.
type Result struct {
	Pair  string
	Short int
	Long  int

	Events []Event
	Buys   int
	Sells  int

	// NetReturn is the naive one-unit long/flat replay return in price
	// units.
	NetReturn float64

	Start time.Time
	End   time.Time
}

// Print writes a plain-text report of the run.
func (res Result) Print(w io.Writer) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintln(w, " Crossover Backtest")
	fmt.Fprintln(w, "==================================================")

	fmt.Fprintf(w, "Pair:          %s\n", res.Pair)
	fmt.Fprintf(w, "Rule:          SMA(%d) x SMA(%d)\n", res.Short, res.Long)
	fmt.Fprintf(w, "Start:         %s\n", res.Start.Format(time.RFC3339))
	fmt.Fprintf(w, "End:           %s\n", res.End.Format(time.RFC3339))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Events")
	fmt.Fprintln(w, "--------------------------------------------------")
	for _, ev := range res.Events {
		fmt.Fprintf(w, "%s  %-4s  %.5f\n", ev.Time.Format(time.RFC3339), ev.Side, ev.Price)
	}
	if len(res.Events) == 0 {
		fmt.Fprintln(w, "(none)")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Summary")
	fmt.Fprintln(w, "--------------------------------------------------")
	fmt.Fprintf(w, "Buy Events:    %d\n", res.Buys)
	fmt.Fprintf(w, "Sell Events:   %d\n", res.Sells)
	fmt.Fprintf(w, "Net Return:    %.5f\n", res.NetReturn)
	fmt.Fprintln(w)
}
