package store

import (
	"time"

	"github.com/paperdesk/paperdesk/internal/id"
)

// NewOrder mints an order with a fresh ULID and the current wall-clock time.
// This is the supported path for the id-uniqueness caller contract on
// AddOrder: ids are time-sortable and monotonic within the process.
func NewOrder(symbol string, typ OrderType, quantity int, price float64, status OrderStatus) Order {
	return Order{
		ID:       id.New(),
		Symbol:   symbol,
		Type:     typ,
		Quantity: quantity,
		Price:    price,
		Status:   status,
		Time:     time.Now().Format("3:04 PM"),
	}
}
