package rules

import (
	"testing"

	"github.com/nstehr/rampart/rampart-core/model"
)

func TestShieldBankGrowsWithTurn(t *testing.T) {
	tests := []struct {
		turn, cap int
		want      int
	}{
		{0, 12, 1},
		{5, 12, 3},
		{6, 12, 4},
		{6, 2, 2},
		{30, 12, 8}, // bounded by the anchors on the board
	}
	for _, tc := range tests {
		b := newFakeBoard(t)
		b.turn = tc.turn
		b.resources[model.StructurePool] = 100
		mem := NewMemory(3.5)
		mem.ShieldCount = 1

		if err := ShieldBank(tc.cap)(RuleEnv{Board: b, Memory: mem}); err != nil {
			t.Fatalf("ShieldBank: %v", err)
		}
		if len(b.spawns) != tc.want {
			t.Errorf("turn %d cap %d: placed %d shields, want %d", tc.turn, tc.cap, len(b.spawns), tc.want)
		}
		if mem.ShieldCount != 1+tc.want {
			t.Errorf("turn %d cap %d: ShieldCount = %d, want %d", tc.turn, tc.cap, mem.ShieldCount, 1+tc.want)
		}
	}
}

func TestSpawnRankedFollowsThreats(t *testing.T) {
	b := newFakeBoard(t)
	b.resources[model.StructurePool] = 100
	mem := NewMemory(3.5)
	mem.Threats.Record(model.Loc(24, 10))

	if err := SpawnRanked(model.Turret, TurretRing, 3)(RuleEnv{Board: b, Memory: mem}); err != nil {
		t.Fatalf("SpawnRanked: %v", err)
	}
	want := []model.Location{model.Loc(24, 10), model.Loc(25, 11), model.Loc(22, 10)}
	if len(b.spawns) != len(want) {
		t.Fatalf("spawns = %v, want %v", b.spawns, want)
	}
	for i, loc := range want {
		if b.spawns[i].at != loc {
			t.Errorf("spawn[%d] at %v, want %v", i, b.spawns[i].at, loc)
		}
	}
}

func TestSpawnRankedNoThreatsKeepsLayout(t *testing.T) {
	b := newFakeBoard(t)
	b.resources[model.StructurePool] = 100

	if err := SpawnRanked(model.Turret, TurretRing, 2)(RuleEnv{Board: b, Memory: NewMemory(3.5)}); err != nil {
		t.Fatalf("SpawnRanked: %v", err)
	}
	if len(b.spawns) != 2 || b.spawns[0].at != TurretRing[0] || b.spawns[1].at != TurretRing[1] {
		t.Errorf("spawns = %v, want the first two ring cells", b.spawns)
	}
}

func TestUpgradeRankedGroups(t *testing.T) {
	b := newFakeBoard(t)
	mem := NewMemory(3.5)
	mem.Threats.Record(model.Loc(26, 13))

	walls := []model.Location{model.Loc(1, 13), model.Loc(26, 13)}
	ring := []model.Location{model.Loc(1, 12), model.Loc(26, 12)}
	if err := UpgradeRanked(walls, ring)(RuleEnv{Board: b, Memory: mem}); err != nil {
		t.Fatalf("UpgradeRanked: %v", err)
	}
	want := []model.Location{model.Loc(26, 13), model.Loc(1, 13), model.Loc(26, 12), model.Loc(1, 12)}
	if len(b.upgrades) != len(want) {
		t.Fatalf("upgrades = %v, want %v", b.upgrades, want)
	}
	for i := range want {
		if b.upgrades[i] != want[i] {
			t.Errorf("upgrade[%d] = %v, want %v", i, b.upgrades[i], want[i])
		}
	}
}

func TestHeavyAttackWithoutRoute(t *testing.T) {
	b := newFakeBoard(t)
	b.resources[model.MobilePool] = 30
	decision := &AttackDecision{}
	env := RuleEnv{Board: b, Memory: NewMemory(3.5), Spawn: &SpawnEvaluation{}, Decision: decision}

	if err := HeavyAttack(1000)(env); err != nil {
		t.Fatalf("HeavyAttack: %v", err)
	}
	if decision.Approve || len(b.spawns) != 0 {
		t.Errorf("heavy attack with no route spawned %v", b.spawns)
	}
	if decision.Branch != "heavy-attack" {
		t.Errorf("Branch = %q, want heavy-attack", decision.Branch)
	}
}

func TestFastAttackCapsWave(t *testing.T) {
	b := newFakeBoard(t)
	b.resources[model.MobilePool] = 30
	mem := NewMemory(3.5)
	mem.NeedShields = true
	decision := &AttackDecision{}
	env := RuleEnv{Board: b, Memory: mem, Spawn: &SpawnEvaluation{Viable: true, Location: rightSpawn}, Decision: decision}

	if err := FastAttack(10)(env); err != nil {
		t.Fatalf("FastAttack: %v", err)
	}
	if decision.Quantity != 10 || decision.Location != rightSpawn {
		t.Errorf("decision = %+v, want 10 at %v", *decision, rightSpawn)
	}
	if mem.NeedShields {
		t.Error("NeedShields still set after a fast attack")
	}
}
