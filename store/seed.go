package store

// Seed is the initial contents of a Store.
type Seed struct {
	Watchlist     []Stock
	Positions     Positions
	Holdings      Holdings
	Orders        []Order
	MarketIndices []MarketIndex
	Funds         Funds
}

// DefaultSeed returns the stock NSE demo book every session starts from.
func DefaultSeed() Seed {
	return Seed{
		Watchlist: []Stock{
			{Symbol: "RELIANCE", Name: "Reliance Industries", Price: 2456.75, Change: 45.30, ChangePercent: 1.88, Volume: "12.5M", MarketCap: "16.6T"},
			{Symbol: "TCS", Name: "Tata Consultancy Services", Price: 3587.90, Change: -23.45, ChangePercent: -0.65, Volume: "8.2M", MarketCap: "13.1T"},
			{Symbol: "INFY", Name: "Infosys Limited", Price: 1456.30, Change: 18.75, ChangePercent: 1.30, Volume: "15.3M", MarketCap: "6.0T"},
			{Symbol: "HDFCBANK", Name: "HDFC Bank", Price: 1645.25, Change: -12.80, ChangePercent: -0.77, Volume: "9.8M", MarketCap: "9.1T"},
			{Symbol: "ICICIBANK", Name: "ICICI Bank", Price: 987.50, Change: 8.45, ChangePercent: 0.86, Volume: "11.2M", MarketCap: "6.9T"},
			{Symbol: "SBIN", Name: "State Bank of India", Price: 598.70, Change: 12.30, ChangePercent: 2.10, Volume: "25.6M", MarketCap: "5.3T"},
			{Symbol: "BHARTIARTL", Name: "Bharti Airtel", Price: 876.45, Change: -5.60, ChangePercent: -0.63, Volume: "7.4M", MarketCap: "5.0T"},
			{Symbol: "ITC", Name: "ITC Limited", Price: 432.80, Change: 6.70, ChangePercent: 1.57, Volume: "18.9M", MarketCap: "5.4T"},
		},
		Positions: Positions{
			{Symbol: "RELIANCE", Quantity: 50, AvgPrice: 2400.00, LTP: 2456.75, PnL: 2837.50, PnLPercent: 2.37},
			{Symbol: "TCS", Quantity: 25, AvgPrice: 3620.00, LTP: 3587.90, PnL: -802.50, PnLPercent: -0.89},
			{Symbol: "INFY", Quantity: 100, AvgPrice: 1440.00, LTP: 1456.30, PnL: 1630.00, PnLPercent: 1.13},
		},
		Holdings: Holdings{
			{Symbol: "HDFCBANK", Quantity: 75, AvgPrice: 1580.00, LTP: 1645.25, CurrentValue: 123393.75, InvestmentValue: 118500.00, PnL: 4893.75, PnLPercent: 4.13},
			{Symbol: "ICICIBANK", Quantity: 150, AvgPrice: 945.00, LTP: 987.50, CurrentValue: 148125.00, InvestmentValue: 141750.00, PnL: 6375.00, PnLPercent: 4.50},
			{Symbol: "SBIN", Quantity: 200, AvgPrice: 580.00, LTP: 598.70, CurrentValue: 119740.00, InvestmentValue: 116000.00, PnL: 3740.00, PnLPercent: 3.22},
		},
		Orders: []Order{
			{ID: "001", Symbol: "RELIANCE", Type: Buy, Quantity: 10, Price: 2456.75, Status: StatusComplete, Time: "10:45 AM"},
			{ID: "002", Symbol: "TCS", Type: Sell, Quantity: 5, Price: 3587.90, Status: StatusComplete, Time: "11:20 AM"},
			{ID: "003", Symbol: "INFY", Type: Buy, Quantity: 20, Price: 1456.30, Status: StatusPending, Time: "12:05 PM"},
		},
		MarketIndices: []MarketIndex{
			{Name: "NIFTY 50", Value: 26084.70, Change: 148.50, ChangePercent: 0.57},
			{Name: "SENSEX", Value: 85050.61, Change: 422.45, ChangePercent: 0.50},
		},
		Funds: Funds{Available: 250000, Used: 750000, Total: 1000000},
	}
}
