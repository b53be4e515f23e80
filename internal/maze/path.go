package maze

// Directions in neighbour order. Breadth-first search expands neighbours in
// this order, which fixes the tie-break between equally short paths.
var Directions = [4]Point{
	{X: 0, Y: -1}, // up
	{X: 0, Y: 1},  // down
	{X: -1, Y: 0}, // left
	{X: 1, Y: 0},  // right
}

// Neighbors returns the walkable cells adjacent to p, in Directions order.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, 4)
	for _, d := range Directions {
		n := p.Add(d)
		if g.Walkable(n) {
			out = append(out, n)
		}
	}
	return out
}

func (g *Grid) index(p Point) int {
	return p.Y*g.cols + p.X
}

// ShortestPath returns a shortest walkable path from 'from' to 'to', both
// included. It returns nil if either end is a wall or no path exists.
func (g *Grid) ShortestPath(from, to Point) []Point {
	if !g.Walkable(from) || !g.Walkable(to) {
		return nil
	}
	if from == to {
		return []Point{from}
	}

	prev := make([]int, len(g.cells))
	for i := range prev {
		prev[i] = -1
	}
	start := g.index(from)
	prev[start] = start

	queue := []Point{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, d := range Directions {
			n := cur.Add(d)
			if !g.Walkable(n) {
				continue
			}
			ni := g.index(n)
			if prev[ni] >= 0 {
				continue
			}
			prev[ni] = g.index(cur)
			if n == to {
				return g.walkBack(prev, start, ni)
			}
			queue = append(queue, n)
		}
	}
	return nil
}

func (g *Grid) walkBack(prev []int, start, end int) []Point {
	var rev []Point
	for i := end; ; i = prev[i] {
		rev = append(rev, Point{X: i % g.cols, Y: i / g.cols})
		if i == start {
			break
		}
	}
	path := make([]Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}
	return path
}

// Distances returns the graph distance from 'from' to every cell, indexed
// [y][x]. Unreachable cells and walls hold -1.
func (g *Grid) Distances(from Point) [][]int {
	dist := make([][]int, g.rows)
	for y := range dist {
		dist[y] = make([]int, g.cols)
		for x := range dist[y] {
			dist[y][x] = -1
		}
	}
	if !g.Walkable(from) {
		return dist
	}

	dist[from.Y][from.X] = 0
	queue := []Point{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range g.Neighbors(cur) {
			if dist[n.Y][n.X] >= 0 {
				continue
			}
			dist[n.Y][n.X] = dist[cur.Y][cur.X] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Distance returns the graph distance between two cells, or -1 when
// there is no path.
func (g *Grid) Distance(from, to Point) int {
	p := g.ShortestPath(from, to)
	if p == nil {
		return -1
	}
	return len(p) - 1
}

// Reachable reports whether a walkable path connects the two cells.
func (g *Grid) Reachable(from, to Point) bool {
	return g.ShortestPath(from, to) != nil
}
