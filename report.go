package rrsched

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// ProcRow is the per-process view used by the structured reports.
type ProcRow struct {
	Pid        Tpid  `json:"pid" yaml:"pid"`
	Arrival    Ttick `json:"arrival" yaml:"arrival"`
	Burst      Ttick `json:"burst" yaml:"burst"`
	Start      Ttick `json:"start" yaml:"start"`
	Completion Ttick `json:"completion" yaml:"completion"`
	Waiting    Ttick `json:"waiting" yaml:"waiting"`
	Response   Ttick `json:"response" yaml:"response"`
	Turnaround Ttick `json:"turnaround" yaml:"turnaround"`
}

type Report struct {
	Metrics *Metrics    `json:"metrics" yaml:"metrics"`
	Procs   []ProcRow   `json:"procs" yaml:"procs"`
	Trace   []TimeSlice `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func NewReport(r *Result) *Report {
	rows := make([]ProcRow, len(r.Procs))
	for i := range r.Procs {
		p := &r.Procs[i]
		start, _ := p.StartTime()
		done, _ := p.CompletionTime()
		rows[i] = ProcRow{
			Pid:        p.Pid,
			Arrival:    p.ArrivalTime,
			Burst:      p.BurstTime,
			Start:      start,
			Completion: done,
			Waiting:    p.WaitingTime(),
			Response:   p.ResponseTime(),
			Turnaround: p.TurnaroundTime(),
		}
	}
	return &Report{Metrics: NewMetrics(r), Procs: rows, Trace: r.Trace}
}

// WriteAverages prints the two headline lines.
func WriteAverages(w io.Writer, m *Metrics) error {
	_, err := fmt.Fprintf(w, "Average waiting time: %.2f\nAverage response time: %.2f\n", m.AvgWaiting, m.AvgResponse)
	return err
}

func (rep *Report) Write(w io.Writer, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		return WriteAverages(w, rep.Metrics)
	}
}

func tick(t Ttick) string {
	return fmt.Sprint(uint64(t))
}

// WriteTable renders one row per process with the averages in the footer.
func (rep *Report) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrival", "Burst", "Start", "Completion", "Waiting", "Response", "Turnaround"})
	for _, row := range rep.Procs {
		table.Append([]string{
			fmt.Sprint(row.Pid),
			tick(row.Arrival),
			tick(row.Burst),
			tick(row.Start),
			tick(row.Completion),
			tick(row.Waiting),
			tick(row.Response),
			tick(row.Turnaround),
		})
	}
	m := rep.Metrics
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", m.AvgWaiting),
		fmt.Sprintf("%.2f", m.AvgResponse),
		fmt.Sprintf("%.2f", m.AvgTurnaround)})
	table.Render()
}

// WriteGantt draws the trace as a Gantt chart. Gaps where the CPU was idle
// show up as "-".
func WriteGantt(w io.Writer, trace []TimeSlice) {
	type cell struct {
		label       string
		start, stop Ttick
	}
	cells := make([]cell, 0, len(trace))
	prev := Ttick(0)
	for _, ts := range trace {
		if ts.Start > prev {
			cells = append(cells, cell{"-", prev, ts.Start})
		}
		cells = append(cells, cell{fmt.Sprint(ts.Pid), ts.Start, ts.Stop})
		prev = ts.Stop
	}

	var top, bottom strings.Builder
	top.WriteString("|")
	for _, c := range cells {
		width := max(len(c.label)+2, len(tick(c.start))+1, 4)
		pad := width - len(c.label)
		top.WriteString(strings.Repeat(" ", pad/2) + c.label + strings.Repeat(" ", pad-pad/2) + "|")
		label := tick(c.start)
		bottom.WriteString(label + strings.Repeat(" ", width+1-len(label)))
	}
	if len(cells) > 0 {
		bottom.WriteString(tick(cells[len(cells)-1].stop))
	}
	fmt.Fprintln(w, "Gantt schedule")
	fmt.Fprintln(w, top.String())
	fmt.Fprintln(w, bottom.String())
}

// WriteSweep renders one row per quantum.
func WriteSweep(w io.Writer, ms []*Metrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Quantum", "Avg waiting", "Avg response", "Avg turnaround", "Switches", "Makespan"})
	for _, m := range ms {
		table.Append([]string{
			tick(m.Quantum),
			fmt.Sprintf("%.2f", m.AvgWaiting),
			fmt.Sprintf("%.2f", m.AvgResponse),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprint(m.ContextSwitches),
			tick(m.Makespan),
		})
	}
	table.Render()
}
