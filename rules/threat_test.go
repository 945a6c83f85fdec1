package rules

import (
	"errors"
	"testing"

	"github.com/nstehr/rampart/rampart-core/model"
)

func TestThreatScore(t *testing.T) {
	m := NewThreatMemory(3.5)
	if got := m.Score(model.Loc(5, 5)); got != 0 {
		t.Errorf("Score with no history = %f, want 0", got)
	}

	m.Record(model.Loc(5, 5))
	tests := []struct {
		at   model.Location
		want float64
	}{
		{model.Loc(5, 5), 3.5},
		{model.Loc(5, 7), 1.5},
		{model.Loc(8, 5), 0.5},
		{model.Loc(9, 5), 0},
		{model.Loc(20, 20), 0},
	}
	for _, tc := range tests {
		if got := m.Score(tc.at); !approxEqual(got, tc.want) {
			t.Errorf("Score(%v) = %f, want %f", tc.at, got, tc.want)
		}
	}
}

func TestThreatScoreStacks(t *testing.T) {
	m := NewThreatMemory(3.5)
	m.Record(model.Loc(3, 11))
	m.Record(model.Loc(3, 11))
	if got := m.Score(model.Loc(3, 11)); got != 7 {
		t.Errorf("Score after two breaches = %f, want 7", got)
	}
	if m.Len() != 2 {
		t.Errorf("Len = %d, want 2", m.Len())
	}
}

func TestThreatScoreMonotonic(t *testing.T) {
	m := NewThreatMemory(3.5)
	at := model.Loc(13, 13)
	prev := m.Score(at)
	for _, b := range []model.Location{model.Loc(12, 12), model.Loc(0, 0), model.Loc(13, 13), model.Loc(15, 12)} {
		m.Record(b)
		got := m.Score(at)
		if got < prev {
			t.Errorf("Score dropped from %f to %f after recording %v", prev, got, b)
		}
		prev = got
	}
}

func TestRank(t *testing.T) {
	m := NewThreatMemory(3.5)
	m.Record(model.Loc(0, 13))

	in := []model.Location{model.Loc(20, 10), model.Loc(1, 12), model.Loc(25, 11), model.Loc(2, 11)}
	got, err := m.Rank(in)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	// (1,12) is closest to the breach, (2,11) next; the rest tie at zero and
	// keep their input order.
	want := []model.Location{model.Loc(1, 12), model.Loc(2, 11), model.Loc(20, 10), model.Loc(25, 11)}
	if len(got) != len(want) {
		t.Fatalf("Rank returned %d locations, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Rank[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if in[0] != model.Loc(20, 10) {
		t.Error("Rank modified its input")
	}
}

func TestRankNoHistoryKeepsOrder(t *testing.T) {
	m := NewThreatMemory(3.5)
	got, err := m.Rank(TurretRing)
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	for i := range TurretRing {
		if got[i] != TurretRing[i] {
			t.Fatalf("Rank[%d] = %v, want %v", i, got[i], TurretRing[i])
		}
	}
}

func TestRankEmpty(t *testing.T) {
	m := NewThreatMemory(3.5)
	_, err := m.Rank(nil)
	var empty *model.EmptyInputError
	if !errors.As(err, &empty) {
		t.Errorf("Rank(nil) error = %v, want EmptyInputError", err)
	}
}
