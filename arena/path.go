package arena

import "github.com/nstehr/rampart/rampart-core/model"

var (
	stepsUp    = []model.Location{{X: 0, Y: 1}, {X: 0, Y: -1}}
	stepsRight = []model.Location{{X: 1, Y: 0}, {X: -1, Y: 0}}
	neighbors  = []model.Location{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}
)

func (s *State) walkable(l model.Location) bool {
	return l.InArena() && !s.ContainsStationaryUnit(l)
}

// FindPathToEdge returns the cells a mobile unit spawned at start walks
// through, start included. When the target edge is walled off the path ends
// at the deepest reachable cell instead. A start cell that is blocked or off
// the board yields nil.
func (s *State) FindPathToEdge(start model.Location) []model.Location {
	if !s.walkable(start) {
		return nil
	}
	edge := model.TargetEdge(start)
	reach := s.flood(start)
	dist := s.distanceField(idealEndpoints(reach, edge))

	path := []model.Location{start}
	cur := start
	movedVertically := false
	for dist[cur] > 0 {
		next, vertical, ok := s.nextStep(cur, dist, movedVertically, edge)
		if !ok {
			break
		}
		path = append(path, next)
		cur, movedVertically = next, vertical
	}
	return path
}

// flood collects every cell reachable from start.
func (s *State) flood(start model.Location) map[model.Location]bool {
	seen := map[model.Location]bool{start: true}
	queue := []model.Location{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbors {
			n := cur.Add(d)
			if seen[n] || !s.walkable(n) {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}
	return seen
}

// idealEndpoints picks where a unit tries to go: every reachable cell of the
// target edge, or failing that the single reachable cell that got furthest
// toward it.
func idealEndpoints(reach map[model.Location]bool, edge model.Edge) []model.Location {
	var onEdge []model.Location
	for _, l := range model.EdgeLocations(edge) {
		if reach[l] {
			onEdge = append(onEdge, l)
		}
	}
	if len(onEdge) > 0 {
		return onEdge
	}

	var best model.Location
	bestDepth, bestLateral := 0, 0
	first := true
	for l := range reach {
		depth, lateral := progress(l, edge)
		if first || depth > bestDepth || (depth == bestDepth && lateral > bestLateral) {
			best, bestDepth, bestLateral, first = l, depth, lateral, false
		}
	}
	return []model.Location{best}
}

// progress scores how far l has advanced toward edge: rows first, then
// columns toward the edge's side.
func progress(l model.Location, edge model.Edge) (depth, lateral int) {
	switch edge {
	case model.TopRight:
		return l.Y, l.X
	case model.TopLeft:
		return l.Y, -l.X
	case model.BottomLeft:
		return -l.Y, -l.X
	default:
		return -l.Y, l.X
	}
}

// distanceField is a multi-source BFS from the endpoints over walkable cells.
func (s *State) distanceField(endpoints []model.Location) map[model.Location]int {
	dist := make(map[model.Location]int, len(endpoints))
	queue := make([]model.Location, 0, len(endpoints))
	for _, e := range endpoints {
		dist[e] = 0
		queue = append(queue, e)
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, d := range neighbors {
			n := cur.Add(d)
			if _, ok := dist[n]; ok || !s.walkable(n) {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// nextStep moves one cell closer to the endpoints. Units zig-zag: after a
// vertical move a horizontal one is preferred and vice versa, and within an
// axis the direction toward the target edge wins.
func (s *State) nextStep(cur model.Location, dist map[model.Location]int, movedVertically bool, edge model.Edge) (model.Location, bool, bool) {
	axes := [][]model.Location{towardEdge(stepsUp, edge), towardEdge(stepsRight, edge)}
	verticalFirst := !movedVertically
	if !verticalFirst {
		axes[0], axes[1] = axes[1], axes[0]
	}
	for i, axis := range axes {
		vertical := (i == 0) == verticalFirst
		for _, d := range axis {
			n := cur.Add(d)
			if nd, ok := dist[n]; ok && nd == dist[cur]-1 {
				return n, vertical, true
			}
		}
	}
	return model.Location{}, false, false
}

// towardEdge orders an axis' two steps so the one heading to edge comes first.
func towardEdge(steps []model.Location, edge model.Edge) []model.Location {
	forward := steps[0]
	backward := steps[1]
	var wantPositive bool
	if forward.Y != 0 {
		wantPositive = edge == model.TopRight || edge == model.TopLeft
	} else {
		wantPositive = edge == model.TopRight || edge == model.BottomRight
	}
	if wantPositive {
		return []model.Location{forward, backward}
	}
	return []model.Location{backward, forward}
}
