package rules

import (
	"math"
	"testing"

	"github.com/nstehr/rampart/rampart-core/model"
)

const testConfig = `{"unitInformation":[
	{"shorthand":"FF","cost1":1,"startHealth":60},
	{"shorthand":"EF","cost1":4,"shieldPerUnit":3,"shieldRange":3.5,"upgrade":{"shieldPerUnit":5}},
	{"shorthand":"DF","cost1":6,"attackDamageWalker":6,"attackRange":3.5},
	{"shorthand":"PI","cost2":1,"attackDamageWalker":2,"attackRange":3.5},
	{"shorthand":"EI","cost2":3,"attackDamageWalker":8,"attackRange":4.5},
	{"shorthand":"SI","cost2":1,"attackRange":4.5}
]}`

func testCatalog(t *testing.T) *model.UnitCatalog {
	t.Helper()
	c, err := model.ParseGameConfig([]byte(testConfig))
	if err != nil {
		t.Fatalf("ParseGameConfig: %v", err)
	}
	return c
}

type spawnCall struct {
	unit   model.UnitType
	at     model.Location
	placed int
}

// fakeBoard answers path and attacker queries from fixed tables so risk
// numbers can be set directly.
type fakeBoard struct {
	catalog   *model.UnitCatalog
	turn      int
	resources [2]float64
	paths     map[model.Location][]model.Location
	hits      map[model.Location]int // enemy attackers covering a cell
	shields   []model.Unit
	occupied  map[model.Location]bool
	refused   map[model.Location]bool // cells the engine will not build on
	spawns    []spawnCall
	upgrades  []model.Location
}

func newFakeBoard(t *testing.T) *fakeBoard {
	return &fakeBoard{
		catalog:  testCatalog(t),
		paths:    make(map[model.Location][]model.Location),
		hits:     make(map[model.Location]int),
		occupied: make(map[model.Location]bool),
		refused:  make(map[model.Location]bool),
	}
}

func (b *fakeBoard) TurnNumber() int { return b.turn }
func (b *fakeBoard) Resource(pool model.Pool) float64 { return b.resources[pool] }
func (b *fakeBoard) ContainsStationaryUnit(loc model.Location) bool { return b.occupied[loc] }

func (b *fakeBoard) AttemptSpawn(t model.UnitType, locs []model.Location, maxCount int) int {
	cost := b.catalog.Spec(t).Cost
	maxCount = max(maxCount, 1)
	total := 0
	for _, loc := range locs {
		n := 0
		for n < maxCount && !b.occupied[loc] && !b.refused[loc] &&
			cost[model.StructurePool] <= b.resources[model.StructurePool] &&
			cost[model.MobilePool] <= b.resources[model.MobilePool] {
			b.resources[model.StructurePool] -= cost[model.StructurePool]
			b.resources[model.MobilePool] -= cost[model.MobilePool]
			n++
			if t.IsStationary() {
				b.occupied[loc] = true
			}
		}
		if n > 0 {
			b.spawns = append(b.spawns, spawnCall{unit: t, at: loc, placed: n})
		}
		total += n
	}
	return total
}

func (b *fakeBoard) AttemptUpgrade(locs []model.Location) int {
	b.upgrades = append(b.upgrades, locs...)
	return len(locs)
}

func (b *fakeBoard) Units(side model.Side, t model.UnitType) []model.Unit {
	if side != model.Self || t != model.Shield {
		return nil
	}
	return b.shields
}

func (b *fakeBoard) FindPathToEdge(loc model.Location) []model.Location { return b.paths[loc] }
func (b *fakeBoard) TargetEdge(loc model.Location) model.Edge { return model.TargetEdge(loc) }
func (b *fakeBoard) EdgeLocations(e model.Edge) []model.Location { return model.EdgeLocations(e) }
func (b *fakeBoard) Distance(a, c model.Location) float64 { return model.Distance(a, c) }

func (b *fakeBoard) Attackers(loc model.Location, side model.Side) []model.Unit {
	return make([]model.Unit, b.hits[loc])
}

var (
	leftSpawn  = model.Loc(11, 2)
	rightSpawn = model.Loc(16, 2)
)

// route gives loc a path ending at end, with the given attacker count on
// its midpoint.
func (b *fakeBoard) route(loc, end model.Location, hits int) {
	mid := model.Loc((loc.X+end.X)/2, (loc.Y+end.Y)/2)
	b.paths[loc] = []model.Location{loc, mid, end}
	b.hits[mid] += hits
}

func approxEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }
