package rrsched

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Metrics summarises a finished run.
type Metrics struct {
	Quantum         Ttick   `json:"quantum" yaml:"quantum"`
	NProcs          int     `json:"procs" yaml:"procs"`
	TotalWaiting    uint64  `json:"total_waiting" yaml:"total_waiting"`
	TotalResponse   uint64  `json:"total_response" yaml:"total_response"`
	AvgWaiting      float64 `json:"avg_waiting" yaml:"avg_waiting"`
	AvgResponse     float64 `json:"avg_response" yaml:"avg_response"`
	AvgTurnaround   float64 `json:"avg_turnaround" yaml:"avg_turnaround"`
	StdDevWaiting   float64 `json:"stddev_waiting" yaml:"stddev_waiting"`
	MaxWaiting      float64 `json:"max_waiting" yaml:"max_waiting"`
	Makespan        Ttick   `json:"makespan" yaml:"makespan"`
	IdleTicks       Ttick   `json:"idle_ticks" yaml:"idle_ticks"`
	BusyTicks       Ttick   `json:"busy_ticks" yaml:"busy_ticks"`
	Dispatches      int     `json:"dispatches" yaml:"dispatches"`
	ContextSwitches int     `json:"context_switches" yaml:"context_switches"`
	Utilization     float64 `json:"utilization" yaml:"utilization"`
	Throughput      float64 `json:"throughput" yaml:"throughput"`
}

// NewMetrics aggregates the counters of r. The two headline averages are
// the run's totals divided by the number of procs.
func NewMetrics(r *Result) *Metrics {
	n := len(r.Procs)
	m := &Metrics{
		Quantum:       r.Quantum,
		NProcs:        n,
		TotalWaiting:  r.TotalWaiting,
		TotalResponse: r.TotalResponse,
		AvgWaiting:    ratio(r.TotalWaiting, n),
		AvgResponse:   ratio(r.TotalResponse, n),
		Makespan:      r.Makespan,
		IdleTicks:     r.IdleTicks,
		Dispatches:    len(r.Trace),
	}

	waits := make([]Ttick, n)
	turnarounds := make([]Ttick, n)
	for i := range r.Procs {
		waits[i] = r.Procs[i].WaitingTime()
		turnarounds[i] = r.Procs[i].TurnaroundTime()
	}
	if n > 0 {
		m.AvgTurnaround = stat.Mean(toFloats(turnarounds), nil)
		m.MaxWaiting = floats.Max(toFloats(waits))
	}
	if n > 1 {
		m.StdDevWaiting = stat.PopStdDev(toFloats(waits), nil)
	}

	lens := make([]Ttick, len(r.Trace))
	for i, ts := range r.Trace {
		lens[i] = ts.Len()
		if i > 0 && r.Trace[i-1].Index != ts.Index {
			m.ContextSwitches += 1
		}
	}
	m.BusyTicks = Ttick(floats.Sum(toFloats(lens)))

	if r.Makespan > 0 {
		m.Utilization = float64(m.BusyTicks) / float64(r.Makespan)
		m.Throughput = float64(n) / float64(r.Makespan)
	}
	return m
}
