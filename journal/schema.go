// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS ticks (
	session TEXT NOT NULL,
	time DATETIME NOT NULL,
	kind TEXT NOT NULL,
	symbol TEXT NOT NULL,
	price REAL NOT NULL,
	change REAL NOT NULL,
	change_percent REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	session TEXT NOT NULL,
	order_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	type TEXT NOT NULL,
	quantity INTEGER NOT NULL,
	price REAL NOT NULL,
	status TEXT NOT NULL,
	time TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_ticks_symbol ON ticks(symbol);
CREATE INDEX IF NOT EXISTS idx_ticks_session ON ticks(session);
`
