// Package maze generates perfect mazes with a randomized depth-first
// carver. A maze starts empty and is populated one cell at a time from a
// seed coordinate; the finished passage graph is a spanning tree of the
// populated cells, so every pair of cells is connected by exactly one path.
package maze

import (
	"math/rand"
	"strings"
	"time"
)

// Maze is a sparse grid of cells bounded by maximum dimensions. Cells are
// created lazily during carving and are never removed; the bounding box of
// created cells only grows and determines the render extent.
type Maze struct {
	maxWidth  int
	maxHeight int
	rows      map[int]map[int]*Cell
	rng       *rand.Rand

	hasCells               bool
	minX, minY, maxX, maxY int
}

// New creates an empty maze with the given maximum dimensions. Coordinates
// outside [0, maxWidth) x [0, maxHeight) can never hold a cell; non-positive
// dimensions yield a maze that stays empty. A nil rng falls back to a
// time-seeded source, so tests pass a fixed-seed rand.Rand for reproducible
// carving.
func New(maxWidth, maxHeight int, rng *rand.Rand) *Maze {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Maze{
		maxWidth:  maxWidth,
		maxHeight: maxHeight,
		rows:      make(map[int]map[int]*Cell),
		rng:       rng,
	}
}

// MaxWidth returns the maximum width the maze was created with.
func (m *Maze) MaxWidth() int {
	return m.maxWidth
}

// MaxHeight returns the maximum height the maze was created with.
func (m *Maze) MaxHeight() int {
	return m.maxHeight
}

// CellCount returns the number of cells created so far.
func (m *Maze) CellCount() int {
	count := 0
	for _, row := range m.rows {
		count += len(row)
	}
	return count
}

// RandomPosition returns a uniformly random in-bounds coordinate. The maze
// dimensions must be positive.
func (m *Maze) RandomPosition() (int, int) {
	return m.rng.Intn(m.maxWidth), m.rng.Intn(m.maxHeight)
}

// CreateCell creates a cell at (x, y) with all walls present and returns
// it, or returns the existing cell if one is already stored there. It
// returns nil when (x, y) is out of bounds.
func (m *Maze) CreateCell(x, y int) *Cell {
	if x < 0 || x >= m.maxWidth {
		return nil
	}
	if y < 0 || y >= m.maxHeight {
		return nil
	}

	row, ok := m.rows[y]
	if !ok {
		row = make(map[int]*Cell)
		m.rows[y] = row
	}
	if cell, ok := row[x]; ok {
		return cell
	}

	cell := newCell(m, x, y)
	row[x] = cell
	m.growBounds(x, y)
	return cell
}

// CellExists reports whether a cell is stored at (x, y).
func (m *Maze) CellExists(x, y int) bool {
	row, ok := m.rows[y]
	if !ok {
		return false
	}
	_, ok = row[x]
	return ok
}

// GetCell returns the cell at (x, y). Positions without a stored cell,
// including positions outside the maximum bounds, yield a transient virtual
// cell, so the lookup never fails.
func (m *Maze) GetCell(x, y int) *Cell {
	if row, ok := m.rows[y]; ok {
		if cell, ok := row[x]; ok {
			return cell
		}
	}
	return newVirtualCell(m, x, y)
}

// PopulateFrom carves the maze depth-first starting at (x, y). It reports
// false without touching the maze when a cell already exists at the seed
// coordinate or the seed is out of bounds; otherwise the reachable region is
// fully carved and the result is true.
func (m *Maze) PopulateFrom(x, y int) bool {
	if m.CellExists(x, y) {
		return false
	}
	seed := m.CreateCell(x, y)
	if seed == nil {
		return false
	}
	m.carve(seed)
	return true
}

// carveTarget pairs a neighbor coordinate with the operation that breaks
// the wall between the current cell and that neighbor once it is created.
type carveTarget struct {
	x, y      int
	breakWall func(created *Cell) bool
}

// carveFrame tracks how far through its shuffled direction list one carved
// cell has progressed.
type carveFrame struct {
	targets [4]carveTarget
	next    int
}

// targets enumerates the four neighbors of a cell. Walls toward the left
// and upper neighbors are owned by those neighbors, so their break
// operations run on the newly created cell; walls toward the right and
// lower neighbors are owned by the current cell.
func (m *Maze) targets(c *Cell) [4]carveTarget {
	return [4]carveTarget{
		{c.X - 1, c.Y, func(created *Cell) bool { return created.BreakWallRight() }},
		{c.X, c.Y - 1, func(created *Cell) bool { return created.BreakWallBelow() }},
		{c.X + 1, c.Y, func(*Cell) bool { return c.BreakWallRight() }},
		{c.X, c.Y + 1, func(*Cell) bool { return c.BreakWallBelow() }},
	}
}

// shuffledTargets returns the cell's four neighbor targets in a fresh
// uniformly random order. Resampling the permutation for every cell is what
// gives the maze its per-turn randomness; a single maze-wide order would
// produce long straight corridors.
func (m *Maze) shuffledTargets(c *Cell) [4]carveTarget {
	targets := m.targets(c)
	m.rng.Shuffle(len(targets), func(i, j int) {
		targets[i], targets[j] = targets[j], targets[i]
	})
	return targets
}

// carve runs the randomized depth-first traversal from the seed cell. Each
// visited cell tries its four neighbors in random order, skipping neighbors
// that already exist or lie out of bounds, and otherwise creates the
// neighbor, breaks the connecting wall and descends into it before trying
// its own remaining directions. Because a cell is only ever entered once,
// the broken walls form a spanning tree of the populated region.
//
// The traversal runs on an explicit stack instead of native recursion; the
// recursion depth equals the populated cell count in the worst case, which
// for large mazes would overflow the call stack. Frame order reproduces the
// recursive order exactly.
func (m *Maze) carve(seed *Cell) {
	stack := []carveFrame{{targets: m.shuffledTargets(seed)}}
	for len(stack) > 0 {
		frame := &stack[len(stack)-1]
		if frame.next >= len(frame.targets) {
			stack = stack[:len(stack)-1]
			continue
		}
		target := frame.targets[frame.next]
		frame.next++

		if m.CellExists(target.x, target.y) {
			continue
		}
		created := m.CreateCell(target.x, target.y)
		if created == nil {
			continue
		}
		target.breakWall(created)
		stack = append(stack, carveFrame{targets: m.shuffledTargets(created)})
	}
}

// growBounds extends the bounding box of created cells to include (x, y).
func (m *Maze) growBounds(x, y int) {
	if !m.hasCells {
		m.minX, m.maxX = x, x
		m.minY, m.maxY = y, y
		m.hasCells = true
		return
	}
	if x < m.minX {
		m.minX = x
	}
	if x > m.maxX {
		m.maxX = x
	}
	if y < m.minY {
		m.minY = y
	}
	if y > m.maxY {
		m.maxY = y
	}
}

// String renders the maze as text, one line per row of cells. The scan
// starts one row above and one column left of the populated bounding box so
// that the virtual cells along that margin draw the solid top and left
// boundary; every other wall is drawn exactly once via each cell's own
// fragment. An empty maze renders as the empty string.
func (m *Maze) String() string {
	if !m.hasCells {
		return ""
	}

	var b strings.Builder
	for y := m.minY - 1; y <= m.maxY; y++ {
		for x := m.minX - 1; x <= m.maxX; x++ {
			b.WriteString(m.GetCell(x, y).String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
