package rrsched

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Ttick is a point or span on the virtual clock.
type Ttick uint64

func (t Ttick) String() string {
	return fmt.Sprintf("%dT", uint64(t))
}

type Tpid uint32

type Number interface {
	constraints.Integer | constraints.Float
}

// ratio divides total by n without truncating. n <= 0 yields 0.
func ratio[T Number](total T, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(total) / float64(n)
}

func toFloats[T Number](list []T) []float64 {
	out := make([]float64, len(list))
	for i, val := range list {
		out[i] = float64(val)
	}
	return out
}
