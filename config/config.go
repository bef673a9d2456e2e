package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/paperdesk/paperdesk/store"
	"gopkg.in/yaml.v3"
)

// Config represents the complete desk configuration.
type Config struct {
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`
	Journal    JournalConfig    `json:"journal" yaml:"journal"`
	Seed       *SeedConfig      `json:"seed,omitempty" yaml:"seed,omitempty"`
}

// SimulationConfig contains tick-loop parameters.
type SimulationConfig struct {
	Interval      string  `json:"interval" yaml:"interval"` // e.g. "3s", "500ms"
	StockRangePct float64 `json:"stock_range_pct" yaml:"stock_range_pct"`
	IndexRangePct float64 `json:"index_range_pct" yaml:"index_range_pct"`
}

// ParseInterval converts the interval string to a time.Duration.
func (sc SimulationConfig) ParseInterval() (time.Duration, error) {
	return time.ParseDuration(sc.Interval)
}

// JournalConfig contains session-journal parameters.
type JournalConfig struct {
	Type       string `json:"type" yaml:"type"` // "none", "csv" or "sqlite"
	TicksFile  string `json:"ticks_file,omitempty" yaml:"ticks_file,omitempty"`
	OrdersFile string `json:"orders_file,omitempty" yaml:"orders_file,omitempty"`
	DBPath     string `json:"db_path,omitempty" yaml:"db_path,omitempty"`
}

// SeedConfig overrides parts of the built-in seed book. Sections left empty
// keep their defaults.
type SeedConfig struct {
	Watchlist []StockSeed `json:"watchlist,omitempty" yaml:"watchlist,omitempty"`
	Indices   []IndexSeed `json:"indices,omitempty" yaml:"indices,omitempty"`
	Funds     *FundsSeed  `json:"funds,omitempty" yaml:"funds,omitempty"`
}

// StockSeed is one watchlist entry in a config file.
type StockSeed struct {
	Symbol    string  `json:"symbol" yaml:"symbol"`
	Name      string  `json:"name" yaml:"name"`
	Price     float64 `json:"price" yaml:"price"`
	Volume    string  `json:"volume,omitempty" yaml:"volume,omitempty"`
	MarketCap string  `json:"market_cap,omitempty" yaml:"market_cap,omitempty"`
}

// IndexSeed is one market index in a config file.
type IndexSeed struct {
	Name  string  `json:"name" yaml:"name"`
	Value float64 `json:"value" yaml:"value"`
}

// FundsSeed is the account funds in a config file.
type FundsSeed struct {
	Available float64 `json:"available" yaml:"available"`
	Used      float64 `json:"used" yaml:"used"`
	Total     float64 `json:"total" yaml:"total"`
}

// ToSeed materializes the store seed: the defaults with any configured
// sections swapped in.
func (c *Config) ToSeed() store.Seed {
	seed := store.DefaultSeed()
	if c.Seed == nil {
		return seed
	}
	if len(c.Seed.Watchlist) > 0 {
		seed.Watchlist = make([]store.Stock, 0, len(c.Seed.Watchlist))
		for _, s := range c.Seed.Watchlist {
			seed.Watchlist = append(seed.Watchlist, store.Stock{
				Symbol:    s.Symbol,
				Name:      s.Name,
				Price:     s.Price,
				Volume:    s.Volume,
				MarketCap: s.MarketCap,
			})
		}
	}
	if len(c.Seed.Indices) > 0 {
		seed.MarketIndices = make([]store.MarketIndex, 0, len(c.Seed.Indices))
		for _, ix := range c.Seed.Indices {
			seed.MarketIndices = append(seed.MarketIndices, store.MarketIndex{
				Name:  ix.Name,
				Value: ix.Value,
			})
		}
	}
	if c.Seed.Funds != nil {
		seed.Funds = store.Funds{
			Available: c.Seed.Funds.Available,
			Used:      c.Seed.Funds.Used,
			Total:     c.Seed.Funds.Total,
		}
	}
	return seed
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content).
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension).
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	d, err := c.Simulation.ParseInterval()
	if err != nil {
		return fmt.Errorf("simulation.interval: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("simulation.interval must be positive")
	}
	if c.Simulation.StockRangePct <= 0 || c.Simulation.StockRangePct > 10 {
		return fmt.Errorf("simulation.stock_range_pct must be in (0, 10]")
	}
	if c.Simulation.IndexRangePct <= 0 || c.Simulation.IndexRangePct > 10 {
		return fmt.Errorf("simulation.index_range_pct must be in (0, 10]")
	}
	switch c.Journal.Type {
	case "none":
	case "csv":
		if c.Journal.TicksFile == "" || c.Journal.OrdersFile == "" {
			return fmt.Errorf("journal ticks_file and orders_file required for CSV type")
		}
	case "sqlite":
		if c.Journal.DBPath == "" {
			return fmt.Errorf("journal db_path required for SQLite type")
		}
	default:
		return fmt.Errorf("journal.type must be 'none', 'csv' or 'sqlite'")
	}
	if c.Seed != nil {
		seen := map[string]bool{}
		for _, s := range c.Seed.Watchlist {
			if s.Symbol == "" {
				return fmt.Errorf("seed.watchlist entries require a symbol")
			}
			if s.Price <= 0 {
				return fmt.Errorf("seed.watchlist %s: price must be positive", s.Symbol)
			}
			if seen[s.Symbol] {
				return fmt.Errorf("seed.watchlist has duplicate symbol %s", s.Symbol)
			}
			seen[s.Symbol] = true
		}
		for _, ix := range c.Seed.Indices {
			if ix.Name == "" || ix.Value <= 0 {
				return fmt.Errorf("seed.indices entries require a name and positive value")
			}
		}
	}
	return nil
}

// Default returns a configuration with the dashboard defaults.
func Default() *Config {
	return &Config{
		Simulation: SimulationConfig{
			Interval:      "3s",
			StockRangePct: 2,
			IndexRangePct: 1,
		},
		Journal: JournalConfig{
			Type: "none",
		},
	}
}
