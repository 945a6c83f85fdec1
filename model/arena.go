package model

import (
	"fmt"
	"math"
)

// ArenaSize is the width and height of the diamond arena. Each player owns
// the half on their side of the horizontal center line.
const ArenaSize = 28

const halfArena = ArenaSize / 2

// Location is a single cell on the arena grid.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func Loc(x, y int) Location { return Location{X: x, Y: y} }

func (l Location) String() string { return fmt.Sprintf("[%d,%d]", l.X, l.Y) }

// Add returns l offset by d.
func (l Location) Add(d Location) Location {
	return Location{X: l.X + d.X, Y: l.Y + d.Y}
}

// Distance is the straight-line distance between two cell centers.
func Distance(a, b Location) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

// InArena reports whether l falls inside the diamond. Rows widen by one cell
// on each side until the center line, then narrow again.
func (l Location) InArena() bool {
	if l.Y < 0 || l.Y >= ArenaSize {
		return false
	}
	if l.Y < halfArena {
		return l.X >= halfArena-1-l.Y && l.X <= halfArena+l.Y
	}
	return l.X >= l.Y-halfArena && l.X <= ArenaSize-1+halfArena-l.Y
}

// InHalf reports whether l lies in the half owned by side.
func (l Location) InHalf(side Side) bool {
	if side == Self {
		return l.Y < halfArena
	}
	return l.Y >= halfArena
}

// Edge names one of the four diagonal borders of the arena.
type Edge int

const (
	TopRight Edge = iota
	TopLeft
	BottomLeft
	BottomRight
)

func (e Edge) String() string {
	switch e {
	case TopRight:
		return "top_right"
	case TopLeft:
		return "top_left"
	case BottomLeft:
		return "bottom_left"
	case BottomRight:
		return "bottom_right"
	}
	return fmt.Sprintf("edge(%d)", int(e))
}

// EdgeLocations returns the cells along e, starting next to the center line.
func EdgeLocations(e Edge) []Location {
	out := make([]Location, 0, halfArena)
	for i := 0; i < halfArena; i++ {
		switch e {
		case TopRight:
			out = append(out, Location{X: halfArena + i, Y: ArenaSize - 1 - i})
		case TopLeft:
			out = append(out, Location{X: halfArena - 1 - i, Y: ArenaSize - 1 - i})
		case BottomLeft:
			out = append(out, Location{X: halfArena - 1 - i, Y: i})
		case BottomRight:
			out = append(out, Location{X: halfArena + i, Y: i})
		}
	}
	return out
}

// OnEdge reports whether l is one of e's cells.
func OnEdge(l Location, e Edge) bool {
	for _, c := range EdgeLocations(e) {
		if c == l {
			return true
		}
	}
	return false
}

// TargetEdge returns the edge a mobile unit starting at l walks toward:
// the opposite diagonal across the arena.
func TargetEdge(l Location) Edge {
	if l.Y < halfArena {
		if l.X < halfArena {
			return TopRight
		}
		return TopLeft
	}
	if l.X < halfArena {
		return BottomRight
	}
	return BottomLeft
}

// DeployEdges are the edges side may launch mobile units from.
func DeployEdges(side Side) []Edge {
	if side == Self {
		return []Edge{BottomLeft, BottomRight}
	}
	return []Edge{TopLeft, TopRight}
}
