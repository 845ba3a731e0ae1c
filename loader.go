package rrsched

import (
	"fmt"
	"os"
)

// LoadProcesses parses a process count followed by that many
// (pid, arrival, burst) triples.
func LoadProcesses(data []byte) ([]Proc, error) {
	lx := NewLexer(data)

	n, err := lx.Next()
	if err != nil {
		return nil, fmt.Errorf("process count: %w", err)
	}

	// a record takes at least six bytes
	procs := make([]Proc, 0, min(int(n), len(data)/6+1))
	for i := 0; i < int(n); i++ {
		var vals [3]uint32
		for j := range vals {
			if vals[j], err = lx.Next(); err != nil {
				return nil, fmt.Errorf("process %d of %d: %w", i+1, n, err)
			}
		}
		procs = append(procs, newProc(Tpid(vals[0]), Ttick(vals[1]), Ttick(vals[2])))
	}
	return procs, nil
}

// LoadFile reads and parses the process description at path.
func LoadFile(path string) ([]Proc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	procs, err := LoadProcesses(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return procs, nil
}

// ParseQuantum parses a quantum given as a decimal string. Zero is rejected.
func ParseQuantum(arg string) (Ttick, error) {
	v, err := ParseUint(arg)
	if err != nil {
		return 0, fmt.Errorf("quantum %q: %w", arg, err)
	}
	if v == 0 {
		return 0, ErrZeroQuantum
	}
	return Ttick(v), nil
}
