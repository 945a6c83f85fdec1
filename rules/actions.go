package rules

import (
	"fmt"
	"log/slog"

	"github.com/nstehr/rampart/rampart-core/model"
)

// SpawnAt places one t at each location in order.
func SpawnAt(t model.UnitType, at []model.Location) ActionFunc {
	return func(env RuleEnv) error {
		n := env.Board.AttemptSpawn(t, at, 1)
		slog.Debug("placement", "unit", t, "requested", len(at), "placed", n)
		return nil
	}
}

// UpgradeAt upgrades whatever of ours stands at each location.
func UpgradeAt(at []model.Location) ActionFunc {
	return func(env RuleEnv) error {
		n := env.Board.AttemptUpgrade(at)
		slog.Debug("upgrade", "requested", len(at), "upgraded", n)
		return nil
	}
}

// SpawnRanked places t along at ordered by threat, keeping the first limit
// cells. A limit of zero or less keeps them all.
func SpawnRanked(t model.UnitType, at []model.Location, limit int) ActionFunc {
	return func(env RuleEnv) error {
		order, err := env.ranked(at)
		if err != nil {
			return fmt.Errorf("rank %s placements: %w", t, err)
		}
		if limit > 0 && limit < len(order) {
			order = order[:limit]
		}
		n := env.Board.AttemptSpawn(t, order, 1)
		slog.Debug("ranked placement", "unit", t, "requested", len(order), "placed", n)
		return nil
	}
}

// UpgradeRanked upgrades each group in turn, every group ordered by threat.
func UpgradeRanked(groups ...[]model.Location) ActionFunc {
	return func(env RuleEnv) error {
		for _, at := range groups {
			order, err := env.Memory.Threats.Rank(at)
			if err != nil {
				return fmt.Errorf("rank upgrades: %w", err)
			}
			n := env.Board.AttemptUpgrade(order)
			slog.Debug("ranked upgrade", "requested", len(order), "upgraded", n)
		}
		return nil
	}
}

// ActionUpgradeReserve spends a surplus on the turret ring, in threat order
// once breaches exist, and then on every shield anchor.
func ActionUpgradeReserve(env RuleEnv) error {
	ring, err := env.ranked(TurretRing)
	if err != nil {
		return fmt.Errorf("rank turret ring: %w", err)
	}
	turrets := env.Board.AttemptUpgrade(ring)
	shields := env.Board.AttemptUpgrade(ShieldAnchors)
	slog.Debug("reserve upgrade", "turrets", turrets, "shields", shields)
	return nil
}

// ActionBackfillGap builds a turret next to a gap anchor that is still empty.
func ActionBackfillGap(backfill model.Location) ActionFunc {
	return func(env RuleEnv) error {
		n := env.Board.AttemptSpawn(model.Turret, []model.Location{backfill}, 1)
		slog.Debug("gap backfill", "at", backfill, "placed", n)
		return nil
	}
}

// ActionFirstShield plants a single shield on the rally point.
func ActionFirstShield(env RuleEnv) error {
	n := env.Board.AttemptSpawn(model.Shield, ShieldAnchors[:1], 1)
	env.Memory.ShieldCount += n
	slog.Debug("first shield", "placed", n)
	return nil
}

// ShieldBank fills the shield anchors up to a cap that grows by one every
// two turns, never past shieldCap.
func ShieldBank(shieldCap int) ActionFunc {
	return func(env RuleEnv) error {
		count := min(shieldCap, 1+env.Turn()/2, len(ShieldAnchors))
		n := env.Board.AttemptSpawn(model.Shield, ShieldAnchors[:count], 1)
		env.Memory.ShieldCount += n
		slog.Debug("shield bank", "allowed", count, "placed", n, "total", env.Memory.ShieldCount)
		return nil
	}
}

// ActionStall holds the wave back when it would leave the opponent on a
// sliver of health.
func ActionStall(env RuleEnv) error {
	env.Decision.Branch = "stall"
	slog.Info("stalling",
		"enemyHealth", env.EnemyHealth(),
		"attackers", env.MobileUnits(),
		"location", env.Spawn.Location,
	)
	return nil
}

// FastAttack commits the whole mobile pool to fast attackers at the chosen spawn.
func FastAttack(maxWave int) ActionFunc {
	return func(env RuleEnv) error {
		loc := env.Spawn.Location
		n := env.Board.AttemptSpawn(model.FastAttacker, []model.Location{loc}, maxWave)
		*env.Decision = AttackDecision{
			Approve:  n > 0,
			Unit:     model.FastAttacker,
			Location: loc,
			Quantity: n,
			Branch:   "fast-attack",
		}
		env.Memory.NeedShields = false
		slog.Info("fast attack launched", "location", loc, "count", n)
		return nil
	}
}

// HeavyAttack dumps a large mobile pool into heavy attackers at the
// least-damage spawn. Profitability is not consulted.
func HeavyAttack(maxWave int) ActionFunc {
	return func(env RuleEnv) error {
		env.Decision.Branch = "heavy-attack"
		if !env.Spawn.HasRoute {
			slog.Warn("heavy attack skipped, no spawn option has a path")
			return nil
		}
		loc := env.Spawn.Fallback
		n := env.Board.AttemptSpawn(model.HeavyAttacker, []model.Location{loc}, maxWave)
		*env.Decision = AttackDecision{
			Approve:  n > 0,
			Unit:     model.HeavyAttacker,
			Location: loc,
			Quantity: n,
			Branch:   "heavy-attack",
		}
		slog.Info("heavy attack launched", "location", loc, "count", n)
		return nil
	}
}

// ActionRequestShields asks the defense ladder for more shields next turn.
func ActionRequestShields(env RuleEnv) error {
	if !env.Memory.NeedShields {
		slog.Info("requesting shields", "attackers", env.MobileUnits(), "shields", env.ShieldCount())
	}
	env.Memory.NeedShields = true
	return nil
}
