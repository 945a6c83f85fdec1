package rules

import (
	"math"

	"github.com/nstehr/rampart/rampart-core/model"
)

// PathRisk turns engine path and attacker queries into per-spawn risk numbers.
type PathRisk struct {
	board        Battlefield
	catalog      *model.UnitCatalog
	shieldRadius float64
}

func NewPathRisk(board Battlefield, catalog *model.UnitCatalog, shieldRadius float64) *PathRisk {
	return &PathRisk{board: board, catalog: catalog, shieldRadius: shieldRadius}
}

// PathHits counts, over every cell of loc's path, the enemy structures able
// to fire on that cell. Each structure is one hit regardless of its damage.
func (r *PathRisk) PathHits(loc model.Location) int {
	return r.hitsAlong(r.board.FindPathToEdge(loc))
}

func (r *PathRisk) hitsAlong(path []model.Location) int {
	hits := 0
	for _, cell := range path {
		hits += len(r.board.Attackers(cell, model.Self))
	}
	return hits
}

// MinHitCount is the smallest PathHits among locs.
func (r *PathRisk) MinHitCount(locs []model.Location) (int, error) {
	if len(locs) == 0 {
		return 0, &model.EmptyInputError{Op: "min hit count"}
	}
	best := math.MaxInt
	for _, loc := range locs {
		best = min(best, r.PathHits(loc))
	}
	return best, nil
}

// shieldAlong totals the bonus of every friendly shield that comes within
// range of the path. A shield counts once no matter how many cells it covers.
func (r *PathRisk) shieldAlong(path []model.Location) float64 {
	total := 0.0
	for _, s := range r.board.Units(model.Self, model.Shield) {
		for _, cell := range path {
			if r.board.Distance(s.Location, cell) <= r.shieldRadius {
				total += r.catalog.SpecFor(s).ShieldPerUnit
				break
			}
		}
	}
	return total
}

// ShieldMitigation is the smallest total shield bonus among locs' paths.
func (r *PathRisk) ShieldMitigation(locs []model.Location) (float64, error) {
	if len(locs) == 0 {
		return 0, &model.EmptyInputError{Op: "shield mitigation"}
	}
	best := math.Inf(1)
	for _, loc := range locs {
		best = math.Min(best, r.shieldAlong(r.board.FindPathToEdge(loc)))
	}
	return best, nil
}

// ExpectedDamage weights loc's path hits by the turret damage value.
func (r *PathRisk) ExpectedDamage(loc model.Location) float64 {
	return float64(r.PathHits(loc)) * r.catalog.Spec(model.Turret).Damage
}

// SafestSpawn returns the option with the lowest expected damage; the first
// one wins ties.
func (r *PathRisk) SafestSpawn(locs []model.Location) (model.Location, error) {
	if len(locs) == 0 {
		return model.Location{}, &model.EmptyInputError{Op: "safest spawn"}
	}
	best := locs[0]
	bestDamage := r.ExpectedDamage(best)
	for _, loc := range locs[1:] {
		if d := r.ExpectedDamage(loc); d < bestDamage {
			best, bestDamage = loc, d
		}
	}
	return best, nil
}

// EdgeTerminates reports whether loc's path finishes on the edge it was
// heading for. A blocked or empty path does not.
func (r *PathRisk) EdgeTerminates(loc model.Location) bool {
	path := r.board.FindPathToEdge(loc)
	if len(path) == 0 {
		return false
	}
	last := path[len(path)-1]
	for _, e := range r.board.EdgeLocations(r.board.TargetEdge(loc)) {
		if e == last {
			return true
		}
	}
	return false
}
