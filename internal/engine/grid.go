package engine

// Grid is a rectangular board of tile values, indexed [row][col].
// Zero means empty.
type Grid [][]int

// Cell addresses a single grid position.
type Cell struct {
	Row int
	Col int
}

// NewGrid returns an all-empty grid with the given dimensions.
func NewGrid(height, width int) Grid {
	g := make(Grid, height)
	for r := range g {
		g[r] = make([]int, width)
	}
	return g
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return len(g)
}

// Width returns the number of columns.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	c := make(Grid, len(g))
	for r, row := range g {
		c[r] = append([]int(nil), row...)
	}
	return c
}

// Equal reports whether both grids have the same shape and contents.
func (g Grid) Equal(other Grid) bool {
	if len(g) != len(other) {
		return false
	}
	for r := range g {
		if len(g[r]) != len(other[r]) {
			return false
		}
		for c := range g[r] {
			if g[r][c] != other[r][c] {
				return false
			}
		}
	}
	return true
}

// transposed returns the matrix transpose (rows become columns).
func (g Grid) transposed() Grid {
	t := NewGrid(g.Width(), g.Height())
	for r, row := range g {
		for c, v := range row {
			t[c][r] = v
		}
	}
	return t
}

// reversed returns a copy with every row reversed.
func (g Grid) reversed() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		rev := make([]int, len(row))
		for i, v := range row {
			rev[len(row)-1-i] = v
		}
		out[r] = rev
	}
	return out
}

// EmptyCells returns the positions of all empty cells in row-major order.
func (g Grid) EmptyCells() []Cell {
	var cells []Cell
	for r, row := range g {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// MaxTile returns the highest tile value on the grid.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, row := range g {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
