package model

import (
	"errors"
	"testing"
)

const testConfig = `{"unitInformation":[
	{"shorthand":"FF","cost1":1,"startHealth":60,"upgrade":{"startHealth":120}},
	{"shorthand":"EF","cost1":4,"shieldPerUnit":3,"shieldRange":3.5,"upgrade":{"cost1":2,"shieldPerUnit":5,"shieldRange":7}},
	{"shorthand":"DF","cost1":6,"attackDamageWalker":6,"attackRange":3.5,"upgrade":{"attackDamageWalker":14}},
	{"shorthand":"PI","cost2":1,"damageI":2,"attackRange":3.5,"startHealth":15},
	{"shorthand":"EI","cost2":3,"attackDamageWalker":8,"attackRange":4.5,"startHealth":5},
	{"shorthand":"SI","cost2":1,"attackRange":4.5,"startHealth":40}
]}`

func TestParseGameConfig(t *testing.T) {
	c, err := ParseGameConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("ParseGameConfig: %v", err)
	}

	if got := c.Shorthand(Turret); got != "DF" {
		t.Errorf("Shorthand(Turret) = %q, want DF", got)
	}
	if got := c.Spec(Turret).Damage; got != 6 {
		t.Errorf("Turret damage = %f, want 6", got)
	}
	if got := c.Spec(FastAttacker).Damage; got != 2 {
		t.Errorf("FastAttacker damage (damageI) = %f, want 2", got)
	}
	if got := c.Spec(HeavyAttacker).Cost[MobilePool]; got != 3 {
		t.Errorf("HeavyAttacker MP cost = %f, want 3", got)
	}

	shield := Unit{Type: Shield, Upgraded: true}
	if got := c.SpecFor(shield).ShieldPerUnit; got != 5 {
		t.Errorf("upgraded shield bonus = %f, want 5", got)
	}
	shield.Upgraded = false
	if got := c.SpecFor(shield).ShieldPerUnit; got != 3 {
		t.Errorf("base shield bonus = %f, want 3", got)
	}

	// Upgrade fields that are absent inherit the base values.
	if got := c.UpgradeCost(Turret); got[StructurePool] != 6 {
		t.Errorf("Turret upgrade cost = %v, want base cost 6", got)
	}
	if got := c.UpgradeCost(Shield); got[StructurePool] != 2 {
		t.Errorf("Shield upgrade cost = %v, want 2", got)
	}
	if got := c.SpecFor(Unit{Type: Turret, Upgraded: true}).AttackRange; got != 3.5 {
		t.Errorf("upgraded turret range = %f, want inherited 3.5", got)
	}
}

func TestParseGameConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `{"unitInformation":`},
		{"too few units", `{"unitInformation":[{"shorthand":"FF"}]}`},
		{"missing shorthand", `{"unitInformation":[{},{},{},{},{},{}]}`},
	}
	for _, tc := range tests {
		_, err := ParseGameConfig([]byte(tc.data))
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Errorf("%s: got %v, want *ParseError", tc.name, err)
		}
	}
}

func TestUnitTypeIsStationary(t *testing.T) {
	for _, ut := range []UnitType{Wall, Shield, Turret} {
		if !ut.IsStationary() {
			t.Errorf("%v should be stationary", ut)
		}
	}
	for _, ut := range []UnitType{FastAttacker, HeavyAttacker, Disruptor} {
		if ut.IsStationary() {
			t.Errorf("%v should be mobile", ut)
		}
	}
}
