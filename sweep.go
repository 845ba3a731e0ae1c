package rrsched

import (
	"fmt"
	"log/slog"
)

// Sweep runs the table once per quantum in [from, to] and returns the
// metrics in quantum order. Every run starts from a fresh copy of table.
func Sweep(table []Proc, from, to Ttick, logger *slog.Logger) ([]*Metrics, error) {
	if from == 0 {
		return nil, ErrZeroQuantum
	}
	if to < from {
		return nil, fmt.Errorf("empty quantum range [%d, %d]", from, to)
	}
	out := make([]*Metrics, 0, to-from+1)
	for q := from; q <= to; q++ {
		res, err := Simulate(table, q, logger)
		if err != nil {
			return nil, fmt.Errorf("quantum %d: %w", q, err)
		}
		out = append(out, NewMetrics(res))
	}
	return out, nil
}
