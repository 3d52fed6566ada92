package maze

// Cell holds the wall state for a single grid position.
//
// A real cell stores only its right and bottom walls. Its left wall is the
// right wall of the cell at (x-1, y) and its top wall is the bottom wall of
// the cell at (x, y-1), so every wall between two neighbors has exactly one
// storage location and the neighbors can never disagree about it.
//
// A virtual cell stands in for a position the maze holds no cell at. Its
// walls are derived from the presence of adjacent real cells and it can
// never be mutated; virtual cells are produced on demand by Maze.GetCell and
// discarded after use.
type Cell struct {
	// X is the column of the cell in the maze.
	X int
	// Y is the row of the cell in the maze.
	Y int

	maze      *Maze
	wallBelow bool
	wallRight bool
	virtual   bool
}

// newCell creates a real cell with all walls present.
func newCell(m *Maze, x, y int) *Cell {
	return &Cell{
		X:         x,
		Y:         y,
		maze:      m,
		wallBelow: true,
		wallRight: true,
	}
}

// newVirtualCell creates a transient cell for a position outside the
// populated maze. Its walls mirror whether a real cell exists one step below
// and one step to the right, which is what makes the outer boundary render
// as a solid wall.
func newVirtualCell(m *Maze, x, y int) *Cell {
	return &Cell{
		X:         x,
		Y:         y,
		maze:      m,
		wallBelow: m.CellExists(x, y+1),
		wallRight: m.CellExists(x+1, y),
		virtual:   true,
	}
}

// IsVirtual reports whether this cell is a transient boundary stand-in
// rather than part of the maze.
func (c *Cell) IsVirtual() bool {
	return c.virtual
}

// HasWallRight reports whether there is a wall on the right side of the cell.
func (c *Cell) HasWallRight() bool {
	return c.wallRight
}

// HasWallBelow reports whether there is a wall on the bottom side of the cell.
func (c *Cell) HasWallBelow() bool {
	return c.wallBelow
}

// HasWallLeft reports whether there is a wall on the left side of the cell.
// The left wall is owned by the cell at (x-1, y).
func (c *Cell) HasWallLeft() bool {
	return c.maze.GetCell(c.X-1, c.Y).HasWallRight()
}

// HasWallAbove reports whether there is a wall on the top side of the cell.
// The top wall is owned by the cell at (x, y-1).
func (c *Cell) HasWallAbove() bool {
	return c.maze.GetCell(c.X, c.Y-1).HasWallBelow()
}

// BreakWallRight removes the right wall of the cell. It reports whether a
// wall was removed; breaking an absent wall or any wall of a virtual cell
// does nothing.
func (c *Cell) BreakWallRight() bool {
	if c.virtual || !c.wallRight {
		return false
	}
	c.wallRight = false
	return true
}

// BreakWallBelow removes the bottom wall of the cell. It reports whether a
// wall was removed; breaking an absent wall or any wall of a virtual cell
// does nothing.
func (c *Cell) BreakWallBelow() bool {
	if c.virtual || !c.wallBelow {
		return false
	}
	c.wallBelow = false
	return true
}

// BreakWallLeft removes the left wall of the cell by breaking the right wall
// of the cell at (x-1, y), which is the wall's single storage location.
func (c *Cell) BreakWallLeft() bool {
	return c.maze.GetCell(c.X-1, c.Y).BreakWallRight()
}

// BreakWallAbove removes the top wall of the cell by breaking the bottom
// wall of the cell at (x, y-1), which is the wall's single storage location.
func (c *Cell) BreakWallAbove() bool {
	return c.maze.GetCell(c.X, c.Y-1).BreakWallBelow()
}

// String renders the cell's bottom and right boundary as a two-character
// fragment: "_" for a present bottom wall, "|" for a present right wall.
// When the right wall is absent the bottom-wall character repeats so that
// corners line up; left and top walls are drawn by the adjacent cells.
func (c *Cell) String() string {
	bottom := " "
	if c.wallBelow {
		bottom = "_"
	}
	if c.wallRight {
		return bottom + "|"
	}
	return bottom + bottom
}
