package rrsched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	// P1 runs [0,3) and [4,6), P2 runs [3,4)
	res := run(t, table([3]Ttick{1, 0, 5}, [3]Ttick{2, 1, 1}), 3)
	m := NewMetrics(res)

	assert.Equal(t, 2, m.NProcs)
	assert.Equal(t, Ttick(3), m.Quantum)
	assert.InDelta(t, 1.5, m.AvgWaiting, 1e-9)
	assert.InDelta(t, 1.0, m.AvgResponse, 1e-9)
	// turnarounds: 6 and 3
	assert.InDelta(t, 4.5, m.AvgTurnaround, 1e-9)
	// waits: 1 and 2
	assert.InDelta(t, 0.5, m.StdDevWaiting, 1e-9)
	assert.Equal(t, 2.0, m.MaxWaiting)
	assert.Equal(t, Ttick(6), m.BusyTicks)
	assert.Equal(t, Ttick(6), m.Makespan)
	assert.Equal(t, 3, m.Dispatches)
	assert.Equal(t, 2, m.ContextSwitches)
	assert.InDelta(t, 1.0, m.Utilization, 1e-9)
	assert.InDelta(t, 2.0/6.0, m.Throughput, 1e-9)
}

func TestNewMetrics_NonTruncatingAverages(t *testing.T) {
	// waits 0, 2, 3 -> 5/3
	res := run(t, table([3]Ttick{1, 0, 2}, [3]Ttick{2, 0, 2}, [3]Ttick{3, 1, 1}), 2)
	m := NewMetrics(res)
	assert.Equal(t, uint64(5), m.TotalWaiting)
	assert.InDelta(t, 5.0/3.0, m.AvgWaiting, 1e-12)
}

func TestRatio(t *testing.T) {
	assert.Equal(t, 0.0, ratio(10, 0))
	assert.Equal(t, 2.5, ratio(uint64(5), 2))
	assert.Equal(t, 1.5, ratio(3.0, 2))
}
