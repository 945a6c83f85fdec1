package rules

import (
	"math"
	"sort"

	"github.com/nstehr/rampart/rampart-core/model"
)

// ThreatMemory is the append-only history of places our side was hit or
// breached. It is never pruned: a long game simply accumulates more points.
type ThreatMemory struct {
	radius   float64
	breaches []model.Location
}

func NewThreatMemory(radius float64) *ThreatMemory {
	return &ThreatMemory{radius: radius}
}

func (m *ThreatMemory) Record(loc model.Location) {
	m.breaches = append(m.breaches, loc)
}

func (m *ThreatMemory) Len() int { return len(m.breaches) }

// Breaches returns a copy of the history in recording order.
func (m *ThreatMemory) Breaches() []model.Location {
	return append([]model.Location(nil), m.breaches...)
}

// Score sums a linear falloff from every recorded breach: a breach on loc
// adds the full radius, one radius away or further adds nothing. Repeated
// breaches in one area stack.
func (m *ThreatMemory) Score(loc model.Location) float64 {
	score := 0.0
	for _, b := range m.breaches {
		score += math.Max(0, m.radius-model.Distance(b, loc))
	}
	return score
}

// Rank returns locs sorted by descending score. Equal scores keep their input order.
func (m *ThreatMemory) Rank(locs []model.Location) ([]model.Location, error) {
	if len(locs) == 0 {
		return nil, &model.EmptyInputError{Op: "rank threat locations"}
	}
	type scored struct {
		loc   model.Location
		score float64
	}
	items := make([]scored, len(locs))
	for i, l := range locs {
		items[i] = scored{loc: l, score: m.Score(l)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].score > items[j].score
	})
	out := make([]model.Location, len(items))
	for i, it := range items {
		out[i] = it.loc
	}
	return out, nil
}
