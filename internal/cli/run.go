package cli

import (
	"fmt"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/paperdesk/paperdesk/config"
	"github.com/paperdesk/paperdesk/journal"
	"github.com/paperdesk/paperdesk/sim"
	"github.com/paperdesk/paperdesk/store"
)

func newRunCmd(rc *RootConfig) *cobra.Command {
	var (
		journalType string
		demoOrder   bool
		strict      bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the desk: seed the store, start the price simulator, print ticks until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if rc.ConfigPath != "" {
				loaded, err := config.LoadFromFile(rc.ConfigPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if journalType != "" {
				cfg.Journal.Type = journalType
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			interval, err := cfg.Simulation.ParseInterval()
			if err != nil {
				return err
			}

			opts := []store.Option{store.WithSeed(cfg.ToSeed())}
			if strict {
				opts = append(opts, store.StrictSelection())
			}
			st := store.New(opts...)

			session := uuid.NewString()
			j, err := openJournal(cfg.Journal)
			if err != nil {
				return err
			}

			simOpts := []sim.Option{
				sim.WithInterval(interval),
				sim.WithStockRange(cfg.Simulation.StockRangePct / 100),
				sim.WithIndexRange(cfg.Simulation.IndexRangePct / 100),
			}
			if j != nil {
				simOpts = append(simOpts, sim.WithJournal(j, session))
			}
			simulator := sim.New(st, simOpts...)

			if demoOrder && len(st.Watchlist()) > 0 {
				first := st.Watchlist()[0]
				order := store.NewOrder(first.Symbol, store.Buy, 10, first.Price, store.StatusComplete)
				st.AddOrder(order)
				if j != nil {
					if err := j.RecordOrder(journal.NewOrderRecord(session, order)); err != nil {
						return err
					}
				}
				fmt.Printf("order %s: %s %d %s @ %.2f\n", order.ID, order.Type, order.Quantity, order.Symbol, order.Price)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			updates, cancel := st.Subscribe()
			defer cancel()

			if err := simulator.Start(ctx); err != nil {
				return err
			}
			fmt.Printf("session %s: ticking every %s, ctrl-c to stop\n", session, interval)

			for {
				select {
				case <-ctx.Done():
					simulator.Stop()
					if j != nil {
						if err := j.Close(); err != nil {
							return err
						}
					}
					fmt.Println("stopped")
					return nil
				case snap := <-updates:
					printSnapshot(snap)
				}
			}
		},
	}

	cmd.Flags().StringVar(&journalType, "journal", "", "Journal backend: none|csv|sqlite (overrides config)")
	cmd.Flags().BoolVar(&demoOrder, "demo-order", false, "Place one sample order at startup")
	cmd.Flags().BoolVar(&strict, "strict-selection", false, "Reject selections not on the watchlist")

	return cmd
}

func openJournal(jc config.JournalConfig) (journal.Journal, error) {
	switch jc.Type {
	case "csv":
		return journal.NewCSV(jc.TicksFile, jc.OrdersFile)
	case "sqlite":
		return journal.NewSQLite(jc.DBPath)
	default:
		return nil, nil
	}
}

func printSnapshot(snap store.Snapshot) {
	parts := make([]string, 0, len(snap.MarketIndices))
	for _, ix := range snap.MarketIndices {
		parts = append(parts, fmt.Sprintf("%s %.2f (%+.2f%%)", ix.Name, ix.Value, ix.ChangePercent))
	}
	fmt.Printf("v%-6d %s\n", snap.Version, strings.Join(parts, "  "))
}
