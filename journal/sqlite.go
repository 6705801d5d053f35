package journal

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/phill-ed/forex-analytics-dashboard/backtest"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordSignal(r SignalRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO signals
		(signal_id, pair, time, type, confidence, entry_price, stop_loss, take_profit, reasons)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Pair, r.Time, r.Type, r.Confidence,
		r.Entry, r.StopLoss, r.TakeProfit, r.Reasons,
	)
	return err
}

// RecordBacktest stores the run and its events in one transaction so a
// partially written run never appears in queries.
func (j *SQLiteJournal) RecordBacktest(run BacktestRun) error {
	tx, err := j.db.Begin()
	if err != nil {
		return err
	}

	_, err = tx.Exec(`
		INSERT INTO backtest_runs
		(run_id, created, pair, short_period, long_period, buys, sells, net_return, start_time, end_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Created, run.Pair, run.Short, run.Long,
		run.Buys, run.Sells, run.NetReturn, run.Start, run.End,
	)
	if err != nil {
		tx.Rollback()
		return err
	}

	for _, ev := range run.Events {
		_, err = tx.Exec(`
			INSERT INTO backtest_events (run_id, idx, time, side, price)
			VALUES (?, ?, ?, ?, ?)`,
			run.RunID, ev.Index, ev.Time, string(ev.Side), ev.Price,
		)
		if err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// ListSignalsByPair returns persisted signals for one pair, oldest first.
func (j *SQLiteJournal) ListSignalsByPair(pair string) ([]SignalRecord, error) {
	rows, err := j.db.Query(`
		SELECT signal_id, pair, time, type, confidence, entry_price, stop_loss, take_profit, reasons
		FROM signals WHERE pair = ? ORDER BY time`, pair)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SignalRecord
	for rows.Next() {
		var r SignalRecord
		if err := rows.Scan(&r.ID, &r.Pair, &r.Time, &r.Type, &r.Confidence,
			&r.Entry, &r.StopLoss, &r.TakeProfit, &r.Reasons); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetBacktestRun loads one run with its events.
func (j *SQLiteJournal) GetBacktestRun(runID string) (BacktestRun, error) {
	var run BacktestRun
	err := j.db.QueryRow(`
		SELECT run_id, created, pair, short_period, long_period, buys, sells, net_return, start_time, end_time
		FROM backtest_runs WHERE run_id = ?`, runID).
		Scan(&run.RunID, &run.Created, &run.Pair, &run.Short, &run.Long,
			&run.Buys, &run.Sells, &run.NetReturn, &run.Start, &run.End)
	if err != nil {
		return BacktestRun{}, fmt.Errorf("load run %s: %w", runID, err)
	}

	rows, err := j.db.Query(`
		SELECT idx, time, side, price FROM backtest_events
		WHERE run_id = ? ORDER BY idx`, runID)
	if err != nil {
		return BacktestRun{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var ev backtest.Event
		var side string
		if err := rows.Scan(&ev.Index, &ev.Time, &side, &ev.Price); err != nil {
			return BacktestRun{}, err
		}
		ev.Side = backtest.Side(side)
		run.Events = append(run.Events, ev)
	}

	return run, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
