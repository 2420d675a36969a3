package t2048

import "github.com/google/uuid"

// line is one row or column, ordered toward the direction of travel.
type line [BoardSize]Cell

// mergeLine compacts a line toward index 0 and merges equal neighbours.
// A tile merges at most once per pass: after a merge the scan resumes past
// both consumed tiles, so [2,2,4] becomes [4,4] and not [8].
// Returns the new line and the sum of the merged values.
func mergeLine(in line, newID func() uuid.UUID) (out line, score int) {
	tiles := make([]Cell, 0, BoardSize)
	for _, c := range in {
		if !c.Empty() {
			tiles = append(tiles, c)
		}
	}

	writePos := 0
	for i := 0; i < len(tiles); i++ {
		cur := tiles[i]
		if i+1 < len(tiles) && tiles[i+1].Value == cur.Value {
			val := cur.Value * 2
			out[writePos] = Cell{Value: val, ID: newID(), Meta: Meta{Merged: true}}
			score += val
			i++ // neighbour consumed
		} else {
			cur.Meta = Meta{}
			out[writePos] = cur
		}
		writePos++
	}

	// Remaining positions stay as zero-value (empty) cells.
	return out, score
}

// reverseLine reverses a line.
func reverseLine(in line) line {
	var out line
	for i := range BoardSize {
		out[i] = in[BoardSize-1-i]
	}
	return out
}

// Transpose returns the matrix transpose.
func (g Grid) Transpose() Grid {
	var out Grid
	for y := range BoardSize {
		for x := range BoardSize {
			out[y][x] = g[x][y]
		}
	}
	return out
}

// Mirror returns the grid flipped left to right.
func (g Grid) Mirror() Grid {
	var out Grid
	for y := range BoardSize {
		out[y] = reverseLine(g[y])
	}
	return out
}

// slideRows merges every row toward the left edge, or toward the right
// edge when reverse is set.
func slideRows(g Grid, reverse bool, newID func() uuid.UUID) (Grid, int) {
	var out Grid
	total := 0

	for y := range BoardSize {
		row := line(g[y])
		if reverse {
			row = reverseLine(row)
		}
		merged, score := mergeLine(row, newID)
		if reverse {
			merged = reverseLine(merged)
		}
		out[y] = merged
		total += score
	}

	return out, total
}

// slide applies the compact-and-merge rule to every line for dir.
// Columns are handled by transposing, sliding rows and transposing back.
func slide(g Grid, dir Direction, newID func() uuid.UUID) (Grid, int) {
	switch dir {
	case DirLeft:
		return slideRows(g, false, newID)
	case DirRight:
		return slideRows(g, true, newID)
	case DirUp:
		out, score := slideRows(g.Transpose(), false, newID)
		return out.Transpose(), score
	case DirDown:
		out, score := slideRows(g.Transpose(), true, newID)
		return out.Transpose(), score
	default:
		return g, 0
	}
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			if g[y][x].Empty() {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if two horizontally or vertically
// adjacent tiles share a value.
func HasPossibleMerge(g Grid) bool {
	for y := range BoardSize {
		for x := range BoardSize {
			val := g[y][x].Value
			if val == 0 {
				continue
			}
			// Right neighbour
			if x < BoardSize-1 && g[y][x+1].Value == val {
				return true
			}
			// Bottom neighbour
			if y < BoardSize-1 && g[y+1][x].Value == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// IsTerminal returns true if no legal move remains.
func IsTerminal(g Grid) bool {
	return !CanMove(g)
}

// ReachedTarget reports whether any tile is at least target.
// A non-positive target is never reached.
func ReachedTarget(g Grid, target int) bool {
	return target > 0 && g.MaxTile() >= target
}
