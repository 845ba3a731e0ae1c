package rrsched

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func twoProcReport(t *testing.T) (*Result, *Report) {
	t.Helper()
	res := run(t, table([3]Ttick{1, 0, 4}, [3]Ttick{2, 0, 4}), 2)
	return res, NewReport(res)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestReport_Text(t *testing.T) {
	_, rep := twoProcReport(t)
	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf, FormatText))
	assert.Equal(t, "Average waiting time: 3.00\nAverage response time: 1.00\n", buf.String())
}

func TestReport_Rows(t *testing.T) {
	_, rep := twoProcReport(t)
	assert.Equal(t, []ProcRow{
		{Pid: 1, Arrival: 0, Burst: 4, Start: 0, Completion: 6, Waiting: 2, Response: 0, Turnaround: 6},
		{Pid: 2, Arrival: 0, Burst: 4, Start: 2, Completion: 8, Waiting: 4, Response: 2, Turnaround: 8},
	}, rep.Procs)
}

func TestReport_JSONAndYAML(t *testing.T) {
	_, rep := twoProcReport(t)

	var buf bytes.Buffer
	require.NoError(t, rep.Write(&buf, FormatJSON))
	var fromJSON Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, rep.Procs, fromJSON.Procs)
	assert.Equal(t, rep.Trace, fromJSON.Trace)

	buf.Reset()
	require.NoError(t, rep.Write(&buf, FormatYAML))
	var fromYAML Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, rep.Procs, fromYAML.Procs)
	assert.InDelta(t, 3.0, fromYAML.Metrics.AvgWaiting, 1e-9)
}

func TestReport_Table(t *testing.T) {
	_, rep := twoProcReport(t)
	var buf bytes.Buffer
	rep.WriteTable(&buf)
	out := buf.String()
	assert.Contains(t, out, "PID")
	assert.Contains(t, out, "AVERAGE")
	assert.Contains(t, out, "3.00")
}

func TestWriteGantt(t *testing.T) {
	res := run(t, table([3]Ttick{1, 2, 3}, [3]Ttick{22, 2, 1}), 2)
	var buf bytes.Buffer
	WriteGantt(&buf, res.Trace)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Gantt schedule", lines[0])
	assert.Equal(t, "| -  | 1  | 22 | 1  |", lines[1])
	assert.Equal(t, "0    2    4    5    6", lines[2])
}

func TestWriteSweep(t *testing.T) {
	ms, err := Sweep(table([3]Ttick{1, 0, 4}, [3]Ttick{2, 0, 4}), 1, 2, nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	WriteSweep(&buf, ms)
	assert.Contains(t, buf.String(), "QUANTUM")
	assert.Contains(t, buf.String(), "3.50")
}
