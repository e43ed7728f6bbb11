package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	seq INTEGER PRIMARY KEY AUTOINCREMENT,
	trade_id TEXT NOT NULL UNIQUE,
	trade_date TEXT NOT NULL,
	pair TEXT NOT NULL,
	direction TEXT NOT NULL,
	result REAL NOT NULL,
	notes TEXT NOT NULL,
	created DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_date ON trades(trade_date);
`
