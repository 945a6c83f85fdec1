// Package arena is the local stand-in for the game engine's board: it replays
// a turn snapshot, charges spends against our resources, answers path and
// attacker queries, and queues the resulting orders for submission.
package arena

import (
	"log/slog"
	"slices"

	"github.com/nstehr/rampart/rampart-core/model"
)

// State is one turn's board. It is rebuilt from every snapshot and mutated
// only by AttemptSpawn and AttemptUpgrade.
type State struct {
	catalog    *model.UnitCatalog
	turn       int
	resources  [2]float64
	stationary map[model.Location]*model.Unit
	mobile     []model.Unit
	build      []model.Action
	deploy     []model.Action
}

// New seeds a board from snap. Only our own resources are tracked; the
// opponent's are never spent locally.
func New(catalog *model.UnitCatalog, snap model.Snapshot) *State {
	s := &State{
		catalog:    catalog,
		turn:       snap.Turn,
		stationary: make(map[model.Location]*model.Unit),
	}
	s.resources[model.StructurePool] = snap.Stats[model.Self].Cores
	s.resources[model.MobilePool] = snap.Stats[model.Self].Bits

	for _, u := range snap.Units {
		if u.Type.IsStationary() {
			unit := u
			s.stationary[u.Location] = &unit
			continue
		}
		s.mobile = append(s.mobile, u)
	}
	return s
}

func (s *State) TurnNumber() int { return s.turn }

func (s *State) Resource(pool model.Pool) float64 { return s.resources[pool] }

func (s *State) ContainsStationaryUnit(loc model.Location) bool {
	_, ok := s.stationary[loc]
	return ok
}

func (s *State) Distance(a, b model.Location) float64 { return model.Distance(a, b) }

func (s *State) TargetEdge(loc model.Location) model.Edge { return model.TargetEdge(loc) }

func (s *State) EdgeLocations(edge model.Edge) []model.Location { return model.EdgeLocations(edge) }

// Units lists side's units of type t in row-major order so callers iterate
// deterministically.
func (s *State) Units(side model.Side, t model.UnitType) []model.Unit {
	var out []model.Unit
	if t.IsStationary() {
		for _, u := range s.stationary {
			if u.Side == side && u.Type == t {
				out = append(out, *u)
			}
		}
		slices.SortFunc(out, func(a, b model.Unit) int {
			if a.Location.Y != b.Location.Y {
				return a.Location.Y - b.Location.Y
			}
			return a.Location.X - b.Location.X
		})
		return out
	}
	for _, u := range s.mobile {
		if u.Side == side && u.Type == t {
			out = append(out, u)
		}
	}
	return out
}

// Attackers returns the structures hostile to side that can fire on loc.
func (s *State) Attackers(loc model.Location, side model.Side) []model.Unit {
	var out []model.Unit
	for _, u := range s.stationary {
		if u.Side == side {
			continue
		}
		spec := s.catalog.SpecFor(*u)
		if spec.Damage <= 0 {
			continue
		}
		if model.Distance(loc, u.Location) <= spec.AttackRange {
			out = append(out, *u)
		}
	}
	return out
}

func (s *State) affordable(cost [2]float64) bool {
	return cost[model.StructurePool] <= s.resources[model.StructurePool] &&
		cost[model.MobilePool] <= s.resources[model.MobilePool]
}

func (s *State) charge(cost [2]float64) {
	s.resources[model.StructurePool] -= cost[model.StructurePool]
	s.resources[model.MobilePool] -= cost[model.MobilePool]
}

// CanSpawn reports whether one unit of type t may be placed at loc right now.
func (s *State) CanSpawn(t model.UnitType, loc model.Location) bool {
	if !loc.InArena() || s.ContainsStationaryUnit(loc) {
		return false
	}
	if !s.affordable(s.catalog.Spec(t).Cost) {
		return false
	}
	if t.IsStationary() {
		return loc.InHalf(model.Self)
	}
	for _, e := range model.DeployEdges(model.Self) {
		if model.OnEdge(loc, e) {
			return true
		}
	}
	return false
}

// AttemptSpawn places up to maxCount units of type t at each location in
// order and returns how many were placed. Running out of resources or
// hitting an occupied cell moves on to the next location; it is not an error.
func (s *State) AttemptSpawn(t model.UnitType, locs []model.Location, maxCount int) int {
	if maxCount < 1 {
		maxCount = 1
	}
	placed := 0
	for _, loc := range locs {
		for i := 0; i < maxCount; i++ {
			if !s.CanSpawn(t, loc) {
				break
			}
			s.spawn(t, loc)
			placed++
		}
	}
	if placed > 0 {
		slog.Debug("units spawned", "unit", t, "placed", placed, "requested", len(locs))
	}
	return placed
}

func (s *State) spawn(t model.UnitType, loc model.Location) {
	spec := s.catalog.Spec(t)
	s.charge(spec.Cost)
	u := model.Unit{Type: t, Side: model.Self, Location: loc, Health: spec.Health}
	action := model.Action{Shorthand: spec.Shorthand, At: loc}
	if t.IsStationary() {
		s.stationary[loc] = &u
		s.build = append(s.build, action)
		return
	}
	s.mobile = append(s.mobile, u)
	s.deploy = append(s.deploy, action)
}

// AttemptUpgrade upgrades our structures at locs and returns how many were
// upgraded. Empty cells, enemy units and already-upgraded units are skipped.
func (s *State) AttemptUpgrade(locs []model.Location) int {
	upgraded := 0
	for _, loc := range locs {
		u, ok := s.stationary[loc]
		if !ok || u.Side != model.Self || u.Upgraded {
			continue
		}
		cost := s.catalog.UpgradeCost(u.Type)
		if !s.affordable(cost) {
			continue
		}
		s.charge(cost)
		u.Upgraded = true
		s.build = append(s.build, model.Action{Shorthand: model.UpgradeShorthand, At: loc})
		upgraded++
	}
	if upgraded > 0 {
		slog.Debug("units upgraded", "upgraded", upgraded, "requested", len(locs))
	}
	return upgraded
}

// Actions returns the orders queued this turn: structures and upgrades first,
// then mobile deployments.
func (s *State) Actions() (build, deploy []model.Action) {
	return slices.Clone(s.build), slices.Clone(s.deploy)
}
