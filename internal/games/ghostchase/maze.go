package ghostchase

import "math/rand"

// Maze is a grid of wall and floor cells. A handful of wall cells are
// ghost-permeable: the ghost walks through them, the runner does not.
// Generation is fully determined by the rng, so two mazes built from the
// same seed are identical.
type Maze struct {
	W, H  int
	walls [][]bool
	ghost [][]bool // Ghost-permeable wall cells
}

// Cardinal directions, in fixed order so generation stays deterministic.
var directions = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// NewMaze carves a maze and punches ghost paths through it.
func NewMaze(w, h int, pathsMin, pathsMax int, rng *rand.Rand) *Maze {
	m := &Maze{W: w, H: h}
	m.walls = make([][]bool, h)
	m.ghost = make([][]bool, h)
	for y := 0; y < h; y++ {
		m.walls[y] = make([]bool, w)
		m.ghost[y] = make([]bool, w)
		for x := 0; x < w; x++ {
			m.walls[y][x] = true
		}
	}

	m.carve(rng)

	// The runner corner sits off the odd carving lattice when dimensions are
	// even, so clear it explicitly and make sure it connects.
	rx, ry := m.RunnerStart()
	m.walls[ry][rx] = false
	if !m.hasPath(1, 1, rx, ry) {
		m.carveDirect(1, 1, rx, ry)
	}

	m.punchGhostPaths(rng, pathsMin, pathsMax)
	return m
}

// carve runs an iterative depth-first carve over the odd cell lattice.
func (m *Maze) carve(rng *rand.Rand) {
	m.walls[1][1] = false
	stack := [][2]int{{1, 1}}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		x, y := cur[0], cur[1]

		order := rng.Perm(4)
		moved := false
		for _, i := range order {
			d := directions[i]
			nx, ny := x+d[0]*2, y+d[1]*2
			if nx < 1 || ny < 1 || nx >= m.W-1 || ny >= m.H-1 {
				continue
			}
			if !m.walls[ny][nx] {
				continue
			}
			m.walls[y+d[1]][x+d[0]] = false
			m.walls[ny][nx] = false
			stack = append(stack, [2]int{nx, ny})
			moved = true
			break
		}
		if !moved {
			stack = stack[:len(stack)-1]
		}
	}
}

// carveDirect clears an L-shaped corridor between two cells. Fallback for
// the rare layout where the carve leaves the corners disconnected.
func (m *Maze) carveDirect(x1, y1, x2, y2 int) {
	x, y := x1, y1
	for x != x2 {
		if x < x2 {
			x++
		} else {
			x--
		}
		m.walls[y][x] = false
	}
	for y != y2 {
		if y < y2 {
			y++
		} else {
			y--
		}
		m.walls[y][x] = false
	}
}

// punchGhostPaths marks interior wall cells that separate two floor cells
// as ghost-permeable. These are shortcuts only the ghost can take.
func (m *Maze) punchGhostPaths(rng *rand.Rand, pathsMin, pathsMax int) {
	var candidates [][2]int
	for y := 1; y < m.H-1; y++ {
		for x := 1; x < m.W-1; x++ {
			if !m.walls[y][x] {
				continue
			}
			horizontal := !m.walls[y][x-1] && !m.walls[y][x+1]
			vertical := !m.walls[y-1][x] && !m.walls[y+1][x]
			if horizontal || vertical {
				candidates = append(candidates, [2]int{x, y})
			}
		}
	}

	n := pathsMin
	if pathsMax > pathsMin {
		n += rng.Intn(pathsMax - pathsMin + 1)
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	order := rng.Perm(len(candidates))
	for i := 0; i < n; i++ {
		c := candidates[order[i]]
		m.ghost[c[1]][c[0]] = true
	}
}

// GhostStart returns the ghost's spawn cell.
func (m *Maze) GhostStart() (int, int) {
	return 1, 1
}

// RunnerStart returns the runner's spawn cell, opposite the ghost.
func (m *Maze) RunnerStart() (int, int) {
	return m.W - 2, m.H - 2
}

// ExitCell returns the escape cell, in the ghost's corner so the runner
// has to cross the whole maze after the last orb.
func (m *Maze) ExitCell() (int, int) {
	return 1, 1
}

// InBounds reports whether a cell lies inside the grid.
func (m *Maze) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.W && y < m.H
}

// IsWall reports whether a cell is solid for the runner.
func (m *Maze) IsWall(x, y int) bool {
	return !m.InBounds(x, y) || m.walls[y][x]
}

// IsGhostPath reports whether a wall cell is ghost-permeable.
func (m *Maze) IsGhostPath(x, y int) bool {
	return m.InBounds(x, y) && m.ghost[y][x]
}

// Walkable reports whether an actor can enter a cell. The ghost also
// passes through ghost-permeable walls.
func (m *Maze) Walkable(x, y int, asGhost bool) bool {
	if !m.InBounds(x, y) {
		return false
	}
	if !m.walls[y][x] {
		return true
	}
	return asGhost && m.ghost[y][x]
}

// FloorCells returns all floor cells in row-major order.
func (m *Maze) FloorCells() [][2]int {
	var cells [][2]int
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			if !m.walls[y][x] {
				cells = append(cells, [2]int{x, y})
			}
		}
	}
	return cells
}

// hasPath reports whether the runner can walk between two cells.
func (m *Maze) hasPath(x1, y1, x2, y2 int) bool {
	_, _, ok := m.NextStepToward(x1, y1, x2, y2, false)
	return ok || (x1 == x2 && y1 == y2)
}

// NextStepToward returns the first step of a shortest path between two
// cells, found by breadth-first search. Reports false when no path exists
// or the cells coincide.
func (m *Maze) NextStepToward(x1, y1, x2, y2 int, asGhost bool) (int, int, bool) {
	if x1 == x2 && y1 == y2 {
		return x1, y1, false
	}

	type node struct{ x, y int }
	prev := make(map[node]node)
	start := node{x1, y1}
	queue := []node{start}
	prev[start] = start

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.x == x2 && cur.y == y2 {
			// Walk back to the step right after the start.
			for prev[cur] != start {
				cur = prev[cur]
			}
			return cur.x, cur.y, true
		}

		for _, d := range directions {
			nx, ny := cur.x+d[0], cur.y+d[1]
			next := node{nx, ny}
			if _, seen := prev[next]; seen {
				continue
			}
			if !m.Walkable(nx, ny, asGhost) {
				continue
			}
			prev[next] = cur
			queue = append(queue, next)
		}
	}
	return x1, y1, false
}
