package rules

import "github.com/nstehr/rampart/rampart-core/model"

// Battlefield is everything the decision logic needs from the game engine.
// Spawns and upgrades are charged immediately so later queries see them.
type Battlefield interface {
	TurnNumber() int
	Resource(pool model.Pool) float64

	// AttemptSpawn places up to maxCount units at each location and returns
	// the number placed. Insufficient resources yield a partial count.
	AttemptSpawn(t model.UnitType, locs []model.Location, maxCount int) int
	AttemptUpgrade(locs []model.Location) int

	ContainsStationaryUnit(loc model.Location) bool
	Units(side model.Side, t model.UnitType) []model.Unit

	// FindPathToEdge is empty when loc cannot hold a mobile unit.
	FindPathToEdge(loc model.Location) []model.Location
	TargetEdge(loc model.Location) model.Edge
	EdgeLocations(edge model.Edge) []model.Location
	Attackers(loc model.Location, side model.Side) []model.Unit
	Distance(a, b model.Location) float64
}
