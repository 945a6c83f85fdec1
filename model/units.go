package model

import (
	"encoding/json"
	"fmt"
)

// Side identifies the owner of a unit. The numbering matches the turn state's
// p1/p2 ordering, which is not the owner flag used inside combat events.
type Side int

const (
	Self  Side = 0
	Enemy Side = 1
)

func (s Side) Opponent() Side { return 1 - s }

// Pool selects one of the two resource counters.
type Pool int

const (
	StructurePool Pool = 0 // slow pool spent on walls, shields and turrets
	MobilePool    Pool = 1 // fast pool spent on attackers
)

// UnitType is the closed set of units in the game, in the order the engine
// config lists them.
type UnitType int

const (
	Wall UnitType = iota
	Shield
	Turret
	FastAttacker
	HeavyAttacker
	Disruptor
)

// unitTypeCount is the number of real unit kinds. The turn state carries two
// further marker lists (removal and upgrade) after these.
const unitTypeCount = 6

var unitTypeNames = [unitTypeCount]string{"wall", "shield", "turret", "fast_attacker", "heavy_attacker", "disruptor"}

func (t UnitType) String() string {
	if t < 0 || int(t) >= unitTypeCount {
		return fmt.Sprintf("unit(%d)", int(t))
	}
	return unitTypeNames[t]
}

// IsStationary reports whether t is a structure rather than a mobile unit.
func (t UnitType) IsStationary() bool {
	return t == Wall || t == Shield || t == Turret
}

// Unit is a single unit on the board.
type Unit struct {
	Type     UnitType
	Side     Side
	Location Location
	Health   float64
	ID       string
	Upgraded bool
}

// UnitSpec is the resolved stat block for one unit kind at one upgrade level.
type UnitSpec struct {
	Shorthand     string
	Cost          [2]float64 // indexed by Pool
	Damage        float64
	AttackRange   float64
	ShieldPerUnit float64
	ShieldRange   float64
	Health        float64
}

// UnitCatalog is the immutable per-game unit configuration. It is built once
// from the game config and shared by every component.
type UnitCatalog struct {
	base     [unitTypeCount]UnitSpec
	upgraded [unitTypeCount]UnitSpec
}

// unitInformation mirrors one entry of the config's unitInformation list.
// Older configs spell walker damage as damageI, so both are accepted.
type unitInformation struct {
	Shorthand          string           `json:"shorthand"`
	Cost1              *float64         `json:"cost1"`
	Cost2              *float64         `json:"cost2"`
	AttackDamageWalker *float64         `json:"attackDamageWalker"`
	DamageI            *float64         `json:"damageI"`
	AttackRange        *float64         `json:"attackRange"`
	ShieldPerUnit      *float64         `json:"shieldPerUnit"`
	ShieldRange        *float64         `json:"shieldRange"`
	StartHealth        *float64         `json:"startHealth"`
	Upgrade            *unitInformation `json:"upgrade"`
}

type gameConfig struct {
	UnitInformation []unitInformation `json:"unitInformation"`
}

// ParseGameConfig builds the catalog from the engine's game config message.
func ParseGameConfig(data []byte) (*UnitCatalog, error) {
	var cfg gameConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, &ParseError{Field: "config", Err: err}
	}
	if len(cfg.UnitInformation) < unitTypeCount {
		return nil, &ParseError{Field: "unitInformation", Err: fmt.Errorf("want %d entries, got %d", unitTypeCount, len(cfg.UnitInformation))}
	}

	var c UnitCatalog
	for i := 0; i < unitTypeCount; i++ {
		info := cfg.UnitInformation[i]
		if info.Shorthand == "" {
			return nil, &ParseError{Field: fmt.Sprintf("unitInformation[%d].shorthand", i)}
		}
		c.base[i] = info.apply(UnitSpec{})
		c.upgraded[i] = c.base[i]
		if info.Upgrade != nil {
			c.upgraded[i] = info.Upgrade.apply(c.base[i])
		}
	}
	return &c, nil
}

// apply overlays the fields present in info onto spec.
func (info unitInformation) apply(spec UnitSpec) UnitSpec {
	if info.Shorthand != "" {
		spec.Shorthand = info.Shorthand
	}
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&spec.Cost[StructurePool], info.Cost1)
	set(&spec.Cost[MobilePool], info.Cost2)
	set(&spec.Damage, info.DamageI)
	set(&spec.Damage, info.AttackDamageWalker)
	set(&spec.AttackRange, info.AttackRange)
	set(&spec.ShieldPerUnit, info.ShieldPerUnit)
	set(&spec.ShieldRange, info.ShieldRange)
	set(&spec.Health, info.StartHealth)
	return spec
}

// NewUnitCatalog builds a catalog directly from resolved specs, indexed by UnitType.
func NewUnitCatalog(base, upgraded [unitTypeCount]UnitSpec) *UnitCatalog {
	return &UnitCatalog{base: base, upgraded: upgraded}
}

// Spec returns the base stats for t.
func (c *UnitCatalog) Spec(t UnitType) UnitSpec {
	return c.base[t]
}

// SpecFor returns the stats that apply to u, honoring its upgrade.
func (c *UnitCatalog) SpecFor(u Unit) UnitSpec {
	if u.Upgraded {
		return c.upgraded[u.Type]
	}
	return c.base[u.Type]
}

// UpgradeCost is what upgrading a unit of type t charges. Configs that omit an
// upgrade cost charge the base cost again.
func (c *UnitCatalog) UpgradeCost(t UnitType) [2]float64 {
	return c.upgraded[t].Cost
}

func (c *UnitCatalog) Shorthand(t UnitType) string {
	return c.base[t].Shorthand
}
