package rrsched

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaults characterizing the generated workload, in ticks
const (
	AVG_ARRIVAL_GAP = 2.0
	AVG_BURST       = 6.0
	STD_DEV_BURST   = 3.0
	MIN_BURST       = 1
	MAX_BURST       = 50
)

type LoadGenConfig struct {
	NProcs      int
	Seed        uint64
	AvgGap      float64 // mean of the exponential inter-arrival gap
	AvgBurst    float64
	StdDevBurst float64
	MinBurst    Ttick
	MaxBurst    Ttick
}

func DefaultLoadGenConfig() LoadGenConfig {
	return LoadGenConfig{
		NProcs:      10,
		Seed:        1,
		AvgGap:      AVG_ARRIVAL_GAP,
		AvgBurst:    AVG_BURST,
		StdDevBurst: STD_DEV_BURST,
		MinBurst:    MIN_BURST,
		MaxBurst:    MAX_BURST,
	}
}

// LoadGen draws random process tables. The same seed yields the same table.
type LoadGen struct {
	cfg   LoadGenConfig
	gap   distuv.Exponential
	burst distuv.Normal
}

func NewLoadGen(cfg LoadGenConfig) (*LoadGen, error) {
	if cfg.NProcs < 1 {
		return nil, fmt.Errorf("need at least one process, got %d", cfg.NProcs)
	}
	if cfg.AvgGap < 0 || cfg.AvgBurst <= 0 || cfg.StdDevBurst < 0 {
		return nil, fmt.Errorf("gap, burst and stddev must be positive")
	}
	if cfg.MinBurst > cfg.MaxBurst {
		return nil, fmt.Errorf("min burst %d above max burst %d", cfg.MinBurst, cfg.MaxBurst)
	}
	src := rand.NewSource(cfg.Seed)
	lg := &LoadGen{
		cfg:   cfg,
		burst: distuv.Normal{Mu: cfg.AvgBurst, Sigma: cfg.StdDevBurst, Src: src},
	}
	if cfg.AvgGap > 0 {
		lg.gap = distuv.Exponential{Rate: 1 / cfg.AvgGap, Src: src}
	}
	return lg, nil
}

// genLoad returns NProcs procs with pids 1..n and non-decreasing arrivals.
// The first proc always arrives at 0.
func (lg *LoadGen) genLoad() []Proc {
	procs := make([]Proc, lg.cfg.NProcs)
	arrival := 0.0
	for i := range procs {
		if i > 0 && lg.cfg.AvgGap > 0 {
			arrival += lg.gap.Rand()
		}
		b := math.Round(lg.burst.Rand())
		b = math.Max(math.Min(b, float64(lg.cfg.MaxBurst)), float64(lg.cfg.MinBurst))
		procs[i] = newProc(Tpid(i+1), Ttick(math.Floor(arrival)), Ttick(b))
	}
	return procs
}

func (lg *LoadGen) Generate() []Proc {
	return lg.genLoad()
}

// WriteProcesses writes procs in the format LoadProcesses reads: the count
// on its own line, then one "pid arrival burst" line per proc.
func WriteProcesses(w io.Writer, procs []Proc) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", len(procs))
	for _, p := range procs {
		fmt.Fprintf(bw, "%d, %d, %d\n", p.Pid, uint64(p.ArrivalTime), uint64(p.BurstTime))
	}
	return bw.Flush()
}
