package t2048

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// BoardSize is the board dimension.
const BoardSize = 4

// Meta holds per-move presentation hints. It is reset at the start of
// every move and never takes part in equality or adjacency checks.
type Meta struct {
	Merged  bool // Created by merging two tiles during the last move
	Spawned bool // Created by the spawn rule during the last move
}

// Cell is one board position.
type Cell struct {
	Value int       // 0 means empty, otherwise a power of two >= 2
	ID    uuid.UUID // Tile identity, uuid.Nil for empty cells
	Meta  Meta
}

// Empty reports whether the cell holds no tile.
func (c Cell) Empty() bool {
	return c.Value == 0
}

// Grid is a 4x4 board in row-major order.
// Grids are values: a move always produces a new Grid.
type Grid [BoardSize][BoardSize]Cell

// Rows is the numeric snapshot of a Grid.
type Rows [BoardSize][BoardSize]int

// Pos addresses a cell.
type Pos struct {
	X, Y int
}

// Rows returns the numeric snapshot of the grid.
func (g Grid) Rows() Rows {
	var rows Rows
	for y := range BoardSize {
		for x := range BoardSize {
			rows[y][x] = g[y][x].Value
		}
	}
	return rows
}

// Equal compares two grids by value and position only.
// Identities and move metadata are ignored.
func (g Grid) Equal(other Grid) bool {
	return g.Rows() == other.Rows()
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g Grid) EmptyCells() []Pos {
	var cells []Pos
	for y := range BoardSize {
		for x := range BoardSize {
			if g[y][x].Empty() {
				cells = append(cells, Pos{X: x, Y: y})
			}
		}
	}
	return cells
}

// Occupied returns the number of non-empty cells.
func (g Grid) Occupied() int {
	return BoardSize*BoardSize - len(g.EmptyCells())
}

// MaxTile returns the maximum tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for y := range BoardSize {
		for x := range BoardSize {
			if g[y][x].Value > maxVal {
				maxVal = g[y][x].Value
			}
		}
	}
	return maxVal
}

// clearMeta returns a copy of the grid with all move metadata reset.
func (g Grid) clearMeta() Grid {
	for y := range BoardSize {
		for x := range BoardSize {
			g[y][x].Meta = Meta{}
		}
	}
	return g
}

// String renders the grid as rows of numbers separated by '/'.
// The format is accepted by ParseGridString.
func (g Grid) String() string {
	return g.Rows().String()
}

// String renders the snapshot as "v v v v/v v v v/...".
func (r Rows) String() string {
	lines := make([]string, BoardSize)
	for y := range BoardSize {
		vals := make([]string, BoardSize)
		for x := range BoardSize {
			vals[x] = strconv.Itoa(r[y][x])
		}
		lines[y] = strings.Join(vals, " ")
	}
	return strings.Join(lines, "/")
}

// Slice returns the snapshot as nested slices (for YAML/JSON output).
func (r Rows) Slice() [][]int {
	out := make([][]int, BoardSize)
	for y := range BoardSize {
		out[y] = append([]int(nil), r[y][:]...)
	}
	return out
}

// ValidValue reports whether v may appear in a cell.
func ValidValue(v int) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}

// Validate checks every value of the snapshot.
func (r Rows) Validate() error {
	for y := range BoardSize {
		for x := range BoardSize {
			if !ValidValue(r[y][x]) {
				return fmt.Errorf("%w: value %d at (%d,%d)", ErrMalformedGrid, r[y][x], x, y)
			}
		}
	}
	return nil
}

// FromRows builds a Grid from a numeric snapshot. Every tile gets a fresh
// identity and cleared metadata.
func FromRows(rows Rows) (Grid, error) {
	var g Grid
	if err := rows.Validate(); err != nil {
		return g, err
	}
	for y := range BoardSize {
		for x := range BoardSize {
			if v := rows[y][x]; v != 0 {
				g[y][x] = Cell{Value: v, ID: uuid.New()}
			}
		}
	}
	return g, nil
}

// MustFromRows is like FromRows but panics on a malformed snapshot.
// Intended for tests and fixed fixtures.
func MustFromRows(rows Rows) Grid {
	g, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseRows converts dynamically sized rows into a snapshot,
// rejecting wrong dimensions and invalid values.
func ParseRows(rows [][]int) (Rows, error) {
	var out Rows
	if len(rows) != BoardSize {
		return out, fmt.Errorf("%w: %d rows, want %d", ErrMalformedGrid, len(rows), BoardSize)
	}
	for y, row := range rows {
		if len(row) != BoardSize {
			return out, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedGrid, y, len(row), BoardSize)
		}
		copy(out[y][:], row)
	}
	if err := out.Validate(); err != nil {
		return Rows{}, err
	}
	return out, nil
}

// ParseGridString parses the Rows.String format. Rows are separated by
// '/' or newlines, values by spaces or commas.
func ParseGridString(s string) (Grid, error) {
	lines := strings.FieldsFunc(s, func(r rune) bool { return r == '/' || r == '\n' || r == ';' })
	rows := make([][]int, 0, len(lines))
	for _, line := range lines {
		fields := strings.FieldsFunc(line, func(r rune) bool { return r == ' ' || r == ',' || r == '\t' })
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return Grid{}, fmt.Errorf("%w: %q is not a number", ErrMalformedGrid, f)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	parsed, err := ParseRows(rows)
	if err != nil {
		return Grid{}, err
	}
	return FromRows(parsed)
}
