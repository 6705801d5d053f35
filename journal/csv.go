// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	signals *csv.Writer
	events  *csv.Writer
	sf, ef  *os.File
}

func NewCSV(signalsPath, eventsPath string) (*CSVJournal, error) {
	sf, err := os.Create(signalsPath)
	if err != nil {
		return nil, err
	}
	ef, err := os.Create(eventsPath)
	if err != nil {
		sf.Close()
		return nil, err
	}

	sw := csv.NewWriter(sf)
	ew := csv.NewWriter(ef)

	if err := sw.Write([]string{"signal_id", "pair", "time", "type", "confidence", "entry_price", "stop_loss", "take_profit", "reasons"}); err != nil {
		return nil, err
	}
	if err := ew.Write([]string{"run_id", "idx", "time", "side", "price"}); err != nil {
		return nil, err
	}

	sw.Flush()
	if err := sw.Error(); err != nil {
		return nil, err
	}
	ew.Flush()
	if err := ew.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{sw, ew, sf, ef}, nil
}

func (j *CSVJournal) RecordSignal(r SignalRecord) error {
	err := j.signals.Write([]string{
		r.ID,
		r.Pair,
		r.Time.Format(time.RFC3339),
		r.Type,
		f(r.Confidence),
		f(r.Entry),
		f(r.StopLoss),
		f(r.TakeProfit),
		r.Reasons,
	})
	if err != nil {
		return err
	}

	j.signals.Flush()
	return j.signals.Error()
}

func (j *CSVJournal) RecordBacktest(run BacktestRun) error {
	for _, ev := range run.Events {
		err := j.events.Write([]string{
			run.RunID,
			strconv.Itoa(ev.Index),
			ev.Time.Format(time.RFC3339),
			string(ev.Side),
			f(ev.Price),
		})
		if err != nil {
			return err
		}
	}

	j.events.Flush()
	return j.events.Error()
}

func (j *CSVJournal) Close() error {
	j.signals.Flush()
	if err := j.signals.Error(); err != nil {
		return err
	}
	j.events.Flush()
	if err := j.events.Error(); err != nil {
		return err
	}

	if err := j.sf.Close(); err != nil {
		return err
	}
	if err := j.ef.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
