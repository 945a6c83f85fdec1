package rules

import (
	"math"

	"github.com/nstehr/rampart/rampart-core/model"
)

// RuleEnv wraps the turn's board and exposes helper methods callable from expr expressions.
type RuleEnv struct {
	Board    Battlefield
	Catalog  *model.UnitCatalog
	Memory   *Memory
	Posture  Posture
	Spawn    *SpawnEvaluation // nil until the attack evaluation has run
	Decision *AttackDecision  // filled in by the attack rules
}

func (e RuleEnv) Turn() int { return e.Board.TurnNumber() }

func (e RuleEnv) StructureResource() float64 {
	return e.Board.Resource(model.StructurePool)
}

func (e RuleEnv) MobileResource() float64 {
	return e.Board.Resource(model.MobilePool)
}

// MobileUnits is how many whole units the mobile pool can buy at one per unit.
func (e RuleEnv) MobileUnits() int {
	return int(math.Floor(e.MobileResource()))
}

// ReserveHint is the turn-scaled attacker count the bot grows toward.
func (e RuleEnv) ReserveHint() int {
	return e.Turn()/10 + 5
}

func (e RuleEnv) ShieldCount() int      { return e.Memory.ShieldCount }
func (e RuleEnv) EnemyShieldCount() int { return e.Memory.EnemyShieldCount }
func (e RuleEnv) EnemyHealth() float64  { return e.Memory.EnemyHealth }
func (e RuleEnv) NeedShields() bool     { return e.Memory.NeedShields }

// HasThreats reports whether any breach has ever been recorded.
func (e RuleEnv) HasThreats() bool { return e.Memory.Threats.Len() > 0 }

func (e RuleEnv) Occupied(x, y int) bool {
	return e.Board.ContainsStationaryUnit(model.Loc(x, y))
}

func (e RuleEnv) AttackViable() bool {
	return e.Spawn != nil && e.Spawn.Viable
}

// AttackProfitable is true when some reachable option had a positive net
// value, whether or not its path reached the edge.
func (e RuleEnv) AttackProfitable() bool {
	return e.Spawn != nil && e.Spawn.Profitable
}

// ranked orders locs by threat score once any breach is on record and keeps
// the declared order otherwise.
func (e RuleEnv) ranked(locs []model.Location) ([]model.Location, error) {
	if !e.HasThreats() {
		return append([]model.Location(nil), locs...), nil
	}
	return e.Memory.Threats.Rank(locs)
}
