package maze

import "math/rand"

// Braiding bounds: the share of eligible walls knocked out after carving.
const (
	minBraid = 0.25
	maxBraid = 0.40
)

// Generate carves a random rows×cols maze with a depth-first backtracker
// starting at (0,0), then removes part of the walls that touch two or more
// passages so the maze has loops to escape through. Every passage holds food.
// Start is (0,0) and the goal is the bottom-right corner. Even sizes are
// rounded down to odd so the corner lies on the carving lattice.
func Generate(rows, cols int, rng *rand.Rand) *Grid {
	rows = ensureOdd(max(rows, 3))
	cols = ensureOdd(max(cols, 3))

	open := make([]bool, rows*cols)
	at := func(x, y int) *bool { return &open[y*cols+x] }
	inBounds := func(x, y int) bool { return x >= 0 && x < cols && y >= 0 && y < rows }

	stack := []Point{{X: 0, Y: 0}}
	*at(0, 0) = true
	for len(stack) > 0 {
		cur := stack[len(stack)-1]

		var next []Point
		for _, d := range Directions {
			nx, ny := cur.X+2*d.X, cur.Y+2*d.Y
			if inBounds(nx, ny) && !*at(nx, ny) {
				next = append(next, d)
			}
		}
		if len(next) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		d := next[rng.Intn(len(next))]
		*at(cur.X+d.X, cur.Y+d.Y) = true
		n := Point{X: cur.X + 2*d.X, Y: cur.Y + 2*d.Y}
		*at(n.X, n.Y) = true
		stack = append(stack, n)
	}

	// Collect braid candidates before any wall is removed.
	var candidates []Point
	for y := 1; y < rows-1; y++ {
		for x := 1; x < cols-1; x++ {
			if *at(x, y) {
				continue
			}
			paths := 0
			for _, d := range Directions {
				if *at(x+d.X, y+d.Y) {
					paths++
				}
			}
			if paths >= 2 {
				candidates = append(candidates, Point{X: x, Y: y})
			}
		}
	}
	rate := minBraid + rng.Float64()*(maxBraid-minBraid)
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, p := range candidates[:int(float64(len(candidates))*rate)] {
		*at(p.X, p.Y) = true
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Kind, rows*cols),
		start: Point{X: 0, Y: 0},
		goal:  Point{X: cols - 1, Y: rows - 1},
	}
	for i, o := range open {
		if o {
			g.cells[i] = Food
		}
	}
	g.cells[g.index(g.start)] = Floor
	g.cells[g.index(g.goal)] = Goal
	return g
}

// SizeForLevel returns the square maze size for a generated level:
// 15 at level 1, growing by 2 per level, capped at 25.
func SizeForLevel(level int) int {
	return min(15+(max(level, 1)-1)*2, 25)
}

func ensureOdd(n int) int {
	if n%2 == 0 {
		return n - 1
	}
	return n
}
