package rrsched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweep(t *testing.T) {
	procs := table([3]Ttick{1, 0, 4}, [3]Ttick{2, 0, 4})
	ms, err := Sweep(procs, 1, 4, nil)
	require.NoError(t, err)
	require.Len(t, ms, 4)

	wantWait := []float64{3.5, 3.0, 3.5, 2.0}
	for i, m := range ms {
		assert.Equal(t, Ttick(i+1), m.Quantum)
		assert.InDelta(t, wantWait[i], m.AvgWaiting, 1e-9, "quantum %d", i+1)
	}
	assert.False(t, procs[0].Completed())
}

func TestSweep_BadRange(t *testing.T) {
	procs := table([3]Ttick{1, 0, 4})
	_, err := Sweep(procs, 0, 3, nil)
	assert.ErrorIs(t, err, ErrZeroQuantum)

	_, err = Sweep(procs, 4, 3, nil)
	assert.Error(t, err)

	_, err = Sweep(nil, 1, 2, nil)
	assert.ErrorIs(t, err, ErrNoProcesses)
}
