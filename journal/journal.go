// Package journal records what happened during a desk session: simulated
// price ticks and placed orders. The journal is write-only observability;
// the store never reads it back, and desk state still resets per session.
package journal

import (
	"time"

	"github.com/paperdesk/paperdesk/store"
)

// TickKind says which collection a tick landed on.
type TickKind string

const (
	KindStock TickKind = "STOCK"
	KindIndex TickKind = "INDEX"
)

// TickRecord is one applied price perturbation.
type TickRecord struct {
	Session       string
	Time          time.Time
	Kind          TickKind
	Symbol        string
	Price         float64
	Change        float64
	ChangePercent float64
}

// OrderRecord is one order as it entered the book.
type OrderRecord struct {
	Session  string
	ID       string
	Symbol   string
	Type     string
	Quantity int
	Price    float64
	Status   string
	Time     string
}

// NewOrderRecord converts a store order for journaling under session.
func NewOrderRecord(session string, o store.Order) OrderRecord {
	return OrderRecord{
		Session:  session,
		ID:       o.ID,
		Symbol:   o.Symbol,
		Type:     string(o.Type),
		Quantity: o.Quantity,
		Price:    o.Price,
		Status:   string(o.Status),
		Time:     o.Time,
	}
}

// Journal persists session records.
type Journal interface {
	RecordTick(TickRecord) error
	RecordOrder(OrderRecord) error
	Close() error
}
