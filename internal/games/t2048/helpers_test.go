package t2048

import (
	"encoding/binary"

	"github.com/google/uuid"
)

// scriptedSource replays fixed random values. IntN results are taken
// modulo n; Float64 defaults to 0.5 (spawn a 2) when exhausted.
type scriptedSource struct {
	ints   []int
	floats []float64
}

func (s *scriptedSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func (s *scriptedSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

// counterIDs returns a deterministic identity generator.
func counterIDs() func() uuid.UUID {
	var n uint64
	return func() uuid.UUID {
		n++
		var id uuid.UUID
		binary.BigEndian.PutUint64(id[8:], n)
		return id
	}
}

// testEngine returns an engine that always spawns a 2 in the first empty cell.
func testEngine(opts ...Option) *Engine {
	base := []Option{WithSource(&scriptedSource{}), WithIDs(counterIDs())}
	return NewEngine(append(base, opts...)...)
}

// lineOf builds a line from values.
func lineOf(vals [BoardSize]int) line {
	var l line
	for i, v := range vals {
		if v != 0 {
			l[i] = Cell{Value: v, ID: uuid.New()}
		}
	}
	return l
}

// lineValues extracts the values of a line.
func lineValues(l line) [BoardSize]int {
	var out [BoardSize]int
	for i, c := range l {
		out[i] = c.Value
	}
	return out
}

// flipVertical returns the grid flipped top to bottom.
func flipVertical(g Grid) Grid {
	var out Grid
	for y := range BoardSize {
		out[y] = g[BoardSize-1-y]
	}
	return out
}
