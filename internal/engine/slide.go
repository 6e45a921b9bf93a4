package engine

// compact moves non-zero tiles to the front of the row, keeping their
// order, and pads the tail with zeros.
func compact(row []int) []int {
	out := make([]int, len(row))
	n := 0
	for _, v := range row {
		if v != 0 {
			out[n] = v
			n++
		}
	}
	return out
}

// mergeRow does a single left-to-right pass over a compacted row.
// The first tile of an equal pair becomes 0 and the doubled value lands in
// the slot after it, so a tile never takes part in two merges.
func mergeRow(row []int) (result []int, score int) {
	result = make([]int, len(row))
	pending := false

	for i := range row {
		if pending {
			result[i] = 2 * row[i]
			score += result[i]
			pending = false
			continue
		}
		if i+1 < len(row) && row[i] != 0 && row[i] == row[i+1] {
			pending = true
			continue
		}
		result[i] = row[i]
	}

	return result, score
}

// slideRow slides and merges a single row to the left.
// Returns the updated row and the score gained from merges.
func slideRow(row []int) ([]int, int) {
	merged, score := mergeRow(compact(row))
	return compact(merged), score
}

// rowCanSlide reports whether slideRow would change the row: some tile has an
// empty cell to its left, or two equal tiles touch.
func rowCanSlide(row []int) bool {
	for i := 0; i+1 < len(row); i++ {
		if row[i] == 0 && row[i+1] != 0 {
			return true
		}
		if row[i] != 0 && row[i] == row[i+1] {
			return true
		}
	}
	return false
}

// slideLeft applies slideRow to every row.
func slideLeft(g Grid) (Grid, int) {
	out := make(Grid, len(g))
	total := 0
	for r, row := range g {
		newRow, score := slideRow(row)
		out[r] = newRow
		total += score
	}
	return out, total
}

// Slide performs a move in the given direction without touching any engine
// state. Right, Up and Down are derived from Left by reversing and
// transposing the grid. Unknown directions return an unchanged copy.
func Slide(g Grid, dir Direction) (Grid, int) {
	switch dir {
	case DirLeft:
		return slideLeft(g)
	case DirRight:
		slid, score := slideLeft(g.reversed())
		return slid.reversed(), score
	case DirUp:
		slid, score := slideLeft(g.transposed())
		return slid.transposed(), score
	case DirDown:
		slid, score := Slide(g.transposed(), DirRight)
		return slid.transposed(), score
	default:
		return g.Clone(), 0
	}
}

// CanSlide reports whether a move in dir would change the grid.
// Uses the same normalisation as Slide.
func CanSlide(g Grid, dir Direction) bool {
	switch dir {
	case DirLeft:
		for _, row := range g {
			if rowCanSlide(row) {
				return true
			}
		}
		return false
	case DirRight:
		return CanSlide(g.reversed(), DirLeft)
	case DirUp:
		return CanSlide(g.transposed(), DirLeft)
	case DirDown:
		return CanSlide(g.transposed(), DirRight)
	default:
		return false
	}
}
