package rrsched

import (
	"io"
	"log/slog"
)

// TimeSlice is one dispatch: the proc at table index Index held the CPU over
// [Start, Stop). Preempted is set when the quantum ran out before the burst.
type TimeSlice struct {
	Pid       Tpid  `json:"pid" yaml:"pid"`
	Index     int   `json:"index" yaml:"index"`
	Start     Ttick `json:"start" yaml:"start"`
	Stop      Ttick `json:"stop" yaml:"stop"`
	Preempted bool  `json:"preempted" yaml:"preempted"`
}

func (ts TimeSlice) Len() Ttick {
	return ts.Stop - ts.Start
}

// Sched is a round-robin scheduler over a fixed process table. It has the
// table to itself from NewSched until Run returns.
type Sched struct {
	quantum  Ttick
	procs    []Proc
	q        *Queue
	enqueued []bool // in the ready queue or running
	currTick Ttick
	nDone    int

	totWaiting  uint64
	totResponse uint64
	idleTicks   Ttick
	idleSince   Ttick
	idle        bool
	trace       []TimeSlice

	logger *slog.Logger
}

// Result is what a finished run leaves behind. Procs aliases the table that
// was handed to NewSched.
type Result struct {
	Quantum       Ttick
	Procs         []Proc
	Trace         []TimeSlice
	TotalWaiting  uint64
	TotalResponse uint64
	IdleTicks     Ttick
	Makespan      Ttick
}

func NewSched(procs []Proc, quantum Ttick, logger *slog.Logger) (*Sched, error) {
	if quantum == 0 {
		return nil, ErrZeroQuantum
	}
	if len(procs) == 0 {
		return nil, ErrNoProcesses
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	sd := &Sched{
		quantum:  quantum,
		procs:    procs,
		q:        newQueue(len(procs)),
		enqueued: make([]bool, len(procs)),
		logger:   logger.With("component", "sched"),
	}
	return sd, nil
}

func (sd *Sched) reset() {
	for i := range sd.procs {
		sd.procs[i].reset()
		sd.enqueued[i] = false
	}
	sd.q = newQueue(len(sd.procs))
	sd.currTick = 0
	sd.nDone = 0
	sd.totWaiting = 0
	sd.totResponse = 0
	sd.idleTicks = 0
	sd.idle = false
	sd.trace = make([]TimeSlice, 0, len(sd.procs))
}

// admit appends every proc that has arrived by now and is neither done nor
// already queued, in table order.
func (sd *Sched) admit() {
	for i := range sd.procs {
		p := &sd.procs[i]
		if !sd.enqueued[i] && !p.completed && p.ArrivalTime <= sd.currTick {
			sd.q.enq(i)
			sd.enqueued[i] = true
		}
	}
}

// Run simulates until every proc has completed. Each call starts over from
// tick 0 with fresh runtime fields.
func (sd *Sched) Run() *Result {
	sd.reset()
	sd.logger.Debug("run start", "procs", len(sd.procs), "quantum", uint64(sd.quantum))

	for sd.nDone < len(sd.procs) {
		sd.admit()
		idx, ok := sd.q.deq()
		if !ok {
			if !sd.idle {
				sd.idle = true
				sd.idleSince = sd.currTick
			}
			sd.currTick += 1
			sd.idleTicks += 1
			continue
		}
		if sd.idle {
			sd.idle = false
			sd.logger.Debug("cpu idle", "from", uint64(sd.idleSince), "to", uint64(sd.currTick))
		}
		sd.dispatch(idx)
	}

	sd.logger.Debug("run done", "makespan", uint64(sd.currTick), "dispatches", len(sd.trace),
		"idle", uint64(sd.idleTicks))

	return &Result{
		Quantum:       sd.quantum,
		Procs:         sd.procs,
		Trace:         sd.trace,
		TotalWaiting:  sd.totWaiting,
		TotalResponse: sd.totResponse,
		IdleTicks:     sd.idleTicks,
		Makespan:      sd.currTick,
	}
}

func (sd *Sched) dispatch(idx int) {
	p := &sd.procs[idx]
	if !p.Started() {
		p.markStarted(sd.currTick)
		sd.totResponse += uint64(sd.currTick - p.ArrivalTime)
	}

	start := sd.currTick
	used, done := p.runTillOutOrDone(sd.quantum)
	sd.currTick += used
	sd.trace = append(sd.trace, TimeSlice{
		Pid:       p.Pid,
		Index:     idx,
		Start:     start,
		Stop:      sd.currTick,
		Preempted: !done,
	})

	if !done {
		// procs that arrived during the slice go ahead of the preempted one
		sd.admit()
		sd.q.enq(idx)
		sd.logger.Debug("preempt", "pid", p.Pid, "start", uint64(start), "stop", uint64(sd.currTick),
			"remaining", uint64(p.remaining), "qlen", sd.q.qlen())
		return
	}

	p.markDone(sd.currTick)
	sd.totWaiting += uint64(sd.currTick - p.ArrivalTime - p.BurstTime)
	sd.enqueued[idx] = false
	sd.nDone += 1
	sd.logger.Debug("complete", "pid", p.Pid, "start", uint64(start), "stop", uint64(sd.currTick))
}

// Simulate copies table, runs it with the given quantum and returns the
// result. The caller's table is left untouched.
func Simulate(table []Proc, quantum Ttick, logger *slog.Logger) (*Result, error) {
	procs := make([]Proc, len(table))
	copy(procs, table)
	sd, err := NewSched(procs, quantum, logger)
	if err != nil {
		return nil, err
	}
	return sd.Run(), nil
}
