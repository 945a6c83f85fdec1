package rules

import (
	"fmt"

	"github.com/nstehr/rampart/rampart-core/model"
)

// Rule categories.
const (
	CategoryDefense = "defense"
	CategoryAttack  = "attack"
	CategoryShields = "shields"
)

// CompileDefense generates the structure-spending ladder from a posture.
// Every rule is non-exclusive so the whole ladder runs each turn; each
// condition is checked when its step comes up, against whatever is left.
func CompileDefense(p Posture) []*Rule {
	p.Validate()
	var rules []*Rule

	rules = append(rules, &Rule{
		Name:         "first-shield",
		Priority:     1000,
		Category:     CategoryDefense,
		ConditionSrc: fmt.Sprintf(`ShieldCount() == 0 && Turn() > %d`, p.FirstShieldTurn),
		Action:       ActionFirstShield,
	})

	rules = append(rules, &Rule{
		Name:         "perimeter-turrets",
		Priority:     950,
		Category:     CategoryDefense,
		ConditionSrc: `true`,
		Action:       SpawnAt(model.Turret, PerimeterTurrets),
	})

	// A stronger unit may already hold the neighbouring cell, so the backfill
	// is only worth it while the anchor is empty.
	for _, gap := range GapBackfills {
		rules = append(rules, &Rule{
			Name:         fmt.Sprintf("backfill-%s-gap", gap.Side),
			Priority:     900,
			Category:     CategoryDefense,
			ConditionSrc: fmt.Sprintf(`!Occupied(%d, %d)`, gap.Anchor.X, gap.Anchor.Y),
			Action:       ActionBackfillGap(gap.Backfill),
		})
	}

	rules = append(rules, &Rule{
		Name:         "outer-wall",
		Priority:     850,
		Category:     CategoryDefense,
		ConditionSrc: `true`,
		Action:       SpawnAt(model.Wall, OuterWall),
	})

	rules = append(rules, &Rule{
		Name:         "inner-wall",
		Priority:     840,
		Category:     CategoryDefense,
		ConditionSrc: `true`,
		Action:       SpawnAt(model.Wall, InnerWall),
	})

	rules = append(rules, &Rule{
		Name:         "upgrade-inner-wall",
		Priority:     830,
		Category:     CategoryDefense,
		ConditionSrc: `true`,
		Action:       UpgradeAt(EarlyWallUpgrades),
	})

	rules = append(rules, &Rule{
		Name:         "turret-ring-priority",
		Priority:     800,
		Category:     CategoryDefense,
		ConditionSrc: `true`,
		Action:       SpawnRanked(model.Turret, TurretRing, p.PriorityRingSize),
	})

	rules = append(rules, &Rule{
		Name:         "shield-bank",
		Priority:     750,
		Category:     CategoryDefense,
		ConditionSrc: fmt.Sprintf(`StructureResource() >= %g || NeedShields()`, p.HighWaterMark),
		Action:       ShieldBank(p.ShieldCap),
	})

	rules = append(rules, &Rule{
		Name:         "turret-ring-backfill",
		Priority:     700,
		Category:     CategoryDefense,
		ConditionSrc: `true`,
		Action:       SpawnRanked(model.Turret, TurretRing, 0),
	})

	rules = append(rules, &Rule{
		Name:         "upgrade-frontline",
		Priority:     650,
		Category:     CategoryDefense,
		ConditionSrc: fmt.Sprintf(`Turn() > %d`, p.UpgradeTurn),
		Action:       UpgradeRanked(FrontlineWallUpgrades, TurretRing),
	})

	rules = append(rules, &Rule{
		Name:         "upgrade-reserve",
		Priority:     600,
		Category:     CategoryDefense,
		ConditionSrc: fmt.Sprintf(`StructureResource() >= %g`, p.HighWaterMark),
		Action:       ActionUpgradeReserve,
	})

	return rules
}

// CompileAttack generates the mobile-spending branches. The three spawn
// branches share an exclusive category, so at most one of them fires.
func CompileAttack(p Posture) []*Rule {
	p.Validate()
	var rules []*Rule

	rules = append(rules, &Rule{
		Name:         "stall",
		Priority:     300,
		Category:     CategoryAttack,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`AttackViable() && EnemyHealth() - MobileUnits() > 0 && EnemyHealth() - MobileUnits() < %g`, p.StallMargin),
		Action:       ActionStall,
	})

	rules = append(rules, &Rule{
		Name:         "fast-attack",
		Priority:     290,
		Category:     CategoryAttack,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`AttackViable() && MobileUnits() > %d`, p.FastAttackThreshold),
		Action:       FastAttack(p.MaxWaveSize),
	})

	rules = append(rules, &Rule{
		Name:         "heavy-attack",
		Priority:     280,
		Category:     CategoryAttack,
		Exclusive:    true,
		ConditionSrc: fmt.Sprintf(`!AttackViable() && MobileUnits() > %d`, p.HeavyAttackThreshold),
		Action:       HeavyAttack(p.MaxWaveSize),
	})

	// Enough attackers to strike but no profitable lane means our shields
	// are too thin; ask the defense ladder to bank more. It runs ahead of the
	// spawn branches so it sees the whole mobile pool.
	rules = append(rules, &Rule{
		Name:         "request-shields",
		Priority:     310,
		Category:     CategoryShields,
		ConditionSrc: fmt.Sprintf(`!AttackProfitable() && MobileUnits() > %d`, p.FastAttackThreshold),
		Action:       ActionRequestShields,
	})

	return rules
}
