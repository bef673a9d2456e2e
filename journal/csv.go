package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

type CSVJournal struct {
	ticks  *csv.Writer
	orders *csv.Writer
	tf, of *os.File
}

func NewCSV(ticksPath, ordersPath string) (*CSVJournal, error) {
	tf, err := os.Create(ticksPath)
	if err != nil {
		return nil, err
	}
	of, err := os.Create(ordersPath)
	if err != nil {
		tf.Close()
		return nil, err
	}

	tw := csv.NewWriter(tf)
	ow := csv.NewWriter(of)

	if err := tw.Write([]string{"session", "time", "kind", "symbol", "price", "change", "change_percent"}); err != nil {
		return nil, err
	}
	if err := ow.Write([]string{"session", "order_id", "symbol", "type", "quantity", "price", "status", "time"}); err != nil {
		return nil, err
	}

	tw.Flush()
	if err := tw.Error(); err != nil {
		return nil, err
	}
	ow.Flush()
	if err := ow.Error(); err != nil {
		return nil, err
	}

	return &CSVJournal{tw, ow, tf, of}, nil
}

func (j *CSVJournal) RecordTick(t TickRecord) error {
	err := j.ticks.Write([]string{
		t.Session,
		t.Time.Format(time.RFC3339),
		string(t.Kind),
		t.Symbol,
		f(t.Price),
		f(t.Change),
		f(t.ChangePercent),
	})
	if err != nil {
		return err
	}
	j.ticks.Flush()
	return j.ticks.Error()
}

func (j *CSVJournal) RecordOrder(o OrderRecord) error {
	err := j.orders.Write([]string{
		o.Session,
		o.ID,
		o.Symbol,
		o.Type,
		strconv.Itoa(o.Quantity),
		f(o.Price),
		o.Status,
		o.Time,
	})
	if err != nil {
		return err
	}
	j.orders.Flush()
	return j.orders.Error()
}

func (j *CSVJournal) Close() error {
	j.ticks.Flush()
	if err := j.ticks.Error(); err != nil {
		return err
	}
	j.orders.Flush()
	if err := j.orders.Error(); err != nil {
		return err
	}

	if err := j.tf.Close(); err != nil {
		return err
	}
	return j.of.Close()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
