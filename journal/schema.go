// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS signals (
	signal_id TEXT PRIMARY KEY,
	pair TEXT NOT NULL,
	time DATETIME NOT NULL,
	type TEXT NOT NULL,
	confidence REAL NOT NULL,
	entry_price REAL NOT NULL,
	stop_loss REAL NOT NULL,
	take_profit REAL NOT NULL,
	reasons TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS backtest_runs (
	run_id TEXT PRIMARY KEY,
	created DATETIME NOT NULL,
	pair TEXT NOT NULL,
	short_period INTEGER NOT NULL,
	long_period INTEGER NOT NULL,
	buys INTEGER NOT NULL,
	sells INTEGER NOT NULL,
	net_return REAL NOT NULL,
	start_time DATETIME NOT NULL,
	end_time DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS backtest_events (
	run_id TEXT NOT NULL,
	idx INTEGER NOT NULL,
	time DATETIME NOT NULL,
	side TEXT NOT NULL,
	price REAL NOT NULL,
	FOREIGN KEY(run_id) REFERENCES backtest_runs(run_id)
);

CREATE INDEX IF NOT EXISTS idx_signals_pair_time ON signals(pair, time);
CREATE INDEX IF NOT EXISTS idx_events_run ON backtest_events(run_id);
`
