package store

// Stock is a tradeable instrument tracked on the watchlist.
type Stock struct {
	Symbol        string
	Name          string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        string
	MarketCap     string
}

// Position is an intraday position. Positions are static for the life of a
// session; only the watchlist moves.
type Position struct {
	Symbol     string
	Quantity   int
	AvgPrice   float64
	LTP        float64
	PnL        float64
	PnLPercent float64
}

// Holding is a delivery holding with its valuation fields.
type Holding struct {
	Symbol          string
	Quantity        int
	AvgPrice        float64
	LTP             float64
	CurrentValue    float64
	InvestmentValue float64
	PnL             float64
	PnLPercent      float64
}

// OrderType is the side of an order.
type OrderType string

// OrderStatus is the terminal (or pending) state of an order.
type OrderStatus string

const (
	Buy  OrderType = "BUY"
	Sell OrderType = "SELL"

	StatusComplete OrderStatus = "COMPLETE"
	StatusPending  OrderStatus = "PENDING"
	StatusRejected OrderStatus = "REJECTED"
)

// Order is a placed order. Orders are append-only: once in the book they are
// never mutated or deleted. Id uniqueness is a caller contract; NewOrder is
// the supported way to mint one.
type Order struct {
	ID       string
	Symbol   string
	Type     OrderType
	Quantity int
	Price    float64
	Status   OrderStatus
	Time     string
}

// MarketIndex is a broad market index, keyed by name.
type MarketIndex struct {
	Name          string
	Value         float64
	Change        float64
	ChangePercent float64
}

// Funds is the account funds summary. Static in this core.
type Funds struct {
	Available float64
	Used      float64
	Total     float64
}

// UsedPercent reports how much of the total is deployed, 0 when no funds.
func (f Funds) UsedPercent() float64 {
	if f.Total == 0 {
		return 0
	}
	return f.Used / f.Total * 100
}

// Positions is a slice of positions with aggregate helpers.
type Positions []Position

// TotalPnL sums the P&L across all positions.
func (ps Positions) TotalPnL() float64 {
	var total float64
	for _, p := range ps {
		total += p.PnL
	}
	return total
}

// Holdings is a slice of holdings with aggregate helpers.
type Holdings []Holding

// TotalInvestment sums the invested value across all holdings.
func (hs Holdings) TotalInvestment() float64 {
	var total float64
	for _, h := range hs {
		total += h.InvestmentValue
	}
	return total
}

// TotalCurrentValue sums the marked value across all holdings.
func (hs Holdings) TotalCurrentValue() float64 {
	var total float64
	for _, h := range hs {
		total += h.CurrentValue
	}
	return total
}

// TotalPnL is current value minus investment.
func (hs Holdings) TotalPnL() float64 {
	return hs.TotalCurrentValue() - hs.TotalInvestment()
}

// TotalPnLPercent is the aggregate return, 0 when nothing is invested.
func (hs Holdings) TotalPnLPercent() float64 {
	inv := hs.TotalInvestment()
	if inv == 0 {
		return 0
	}
	return hs.TotalPnL() / inv * 100
}

// OrderMargin is the margin blocked for an order: 20% of order value.
func OrderMargin(quantity int, price float64) float64 {
	return float64(quantity) * price * 0.2
}
