package rrsched

import (
	"strconv"

	"github.com/markphelps/optional"
)

// Proc is one row of the process table. Pid, ArrivalTime and BurstTime come
// from the input; the rest is owned by the scheduler while it runs.
type Proc struct {
	Pid         Tpid
	ArrivalTime Ttick
	BurstTime   Ttick

	remaining  Ttick
	completed  bool
	startTime  optional.Uint64
	finishTime optional.Uint64
}

func newProc(pid Tpid, arrival Ttick, burst Ttick) Proc {
	return Proc{
		Pid:         pid,
		ArrivalTime: arrival,
		BurstTime:   burst,
		remaining:   burst,
	}
}

func (p *Proc) String() string {
	return strconv.Itoa(int(p.Pid)) + ": " +
		"arrival: " + p.ArrivalTime.String() +
		", burst: " + p.BurstTime.String() +
		", remaining: " + p.remaining.String() +
		", start: " + optTick(p.startTime) +
		", done: " + optTick(p.finishTime)
}

func optTick(o optional.Uint64) string {
	if v, err := o.Get(); err == nil {
		return Ttick(v).String()
	}
	return "-"
}

// reset puts the runtime fields back into their pre-run state.
func (p *Proc) reset() {
	p.remaining = p.BurstTime
	p.completed = false
	p.startTime = optional.Uint64{}
	p.finishTime = optional.Uint64{}
}

func (p *Proc) Remaining() Ttick {
	return p.remaining
}

func (p *Proc) Completed() bool {
	return p.completed
}

func (p *Proc) Started() bool {
	return p.startTime.Present()
}

// StartTime is the tick of the first dispatch, if there was one.
func (p *Proc) StartTime() (Ttick, bool) {
	v, err := p.startTime.Get()
	return Ttick(v), err == nil
}

// CompletionTime is the tick at which the last burst unit ran, if it has.
func (p *Proc) CompletionTime() (Ttick, bool) {
	v, err := p.finishTime.Get()
	return Ttick(v), err == nil
}

func (p *Proc) markStarted(now Ttick) {
	p.startTime.Set(uint64(now))
}

// runTillOutOrDone runs the proc for at most quantum ticks and returns the
// ticks it actually used, plus whether it is now done.
func (p *Proc) runTillOutOrDone(quantum Ttick) (Ttick, bool) {
	if p.remaining > quantum {
		p.remaining -= quantum
		return quantum, false
	}
	used := p.remaining
	p.remaining = 0
	p.completed = true
	return used, true
}

func (p *Proc) markDone(now Ttick) {
	p.finishTime.Set(uint64(now))
}

// ResponseTime is the delay between arrival and first dispatch.
func (p *Proc) ResponseTime() Ttick {
	start, ok := p.StartTime()
	if !ok {
		return 0
	}
	return start - p.ArrivalTime
}

// TurnaroundTime is completion minus arrival.
func (p *Proc) TurnaroundTime() Ttick {
	done, ok := p.CompletionTime()
	if !ok {
		return 0
	}
	return done - p.ArrivalTime
}

// WaitingTime is the time spent eligible but not running. Zero until the
// proc completes.
func (p *Proc) WaitingTime() Ttick {
	if !p.completed {
		return 0
	}
	return p.TurnaroundTime() - p.BurstTime
}
