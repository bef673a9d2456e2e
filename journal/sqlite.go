package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
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

func (j *SQLiteJournal) RecordTick(t TickRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO ticks
		(session, time, kind, symbol, price, change, change_percent)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.Session, t.Time, string(t.Kind), t.Symbol, t.Price, t.Change, t.ChangePercent,
	)
	return err
}

func (j *SQLiteJournal) RecordOrder(o OrderRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO orders
		(session, order_id, symbol, type, quantity, price, status, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.Session, o.ID, o.Symbol, o.Type, o.Quantity, o.Price, o.Status, o.Time,
	)
	return err
}

// TicksBySymbol returns all journaled ticks for symbol in insertion order.
func (j *SQLiteJournal) TicksBySymbol(symbol string) ([]TickRecord, error) {
	rows, err := j.db.Query(`
		SELECT session, time, kind, symbol, price, change, change_percent
		FROM ticks WHERE symbol = ? ORDER BY rowid`, symbol)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TickRecord
	for rows.Next() {
		var t TickRecord
		var kind string
		if err := rows.Scan(&t.Session, &t.Time, &kind, &t.Symbol, &t.Price, &t.Change, &t.ChangePercent); err != nil {
			return nil, err
		}
		t.Kind = TickKind(kind)
		out = append(out, t)
	}
	return out, rows.Err()
}

// Orders returns all journaled orders for session in insertion order.
func (j *SQLiteJournal) Orders(session string) ([]OrderRecord, error) {
	rows, err := j.db.Query(`
		SELECT session, order_id, symbol, type, quantity, price, status, time
		FROM orders WHERE session = ? ORDER BY rowid`, session)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OrderRecord
	for rows.Next() {
		var o OrderRecord
		if err := rows.Scan(&o.Session, &o.ID, &o.Symbol, &o.Type, &o.Quantity, &o.Price, &o.Status, &o.Time); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
