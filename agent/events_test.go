package agent

import (
	"testing"

	"github.com/nstehr/rampart/rampart-core/model"
	"github.com/nstehr/rampart/rampart-core/rules"
)

// baseSnapshot returns a minimal turn state for testing.
func baseSnapshot(turn int) model.Snapshot {
	snap := model.Snapshot{
		Turn: turn,
		Units: []model.Unit{
			{Type: model.Wall, Side: model.Self, Location: model.Loc(1, 13)},
			{Type: model.Wall, Side: model.Self, Location: model.Loc(26, 13)},
			{Type: model.Turret, Side: model.Self, Location: model.Loc(0, 13)},
			{Type: model.Shield, Side: model.Self, Location: model.Loc(21, 9)},
			{Type: model.Shield, Side: model.Enemy, Location: model.Loc(13, 20)},
			{Type: model.FastAttacker, Side: model.Enemy, Location: model.Loc(13, 27)},
		},
	}
	snap.Stats[model.Self] = model.PlayerStats{Health: 30, Cores: 10, Bits: 5}
	snap.Stats[model.Enemy] = model.PlayerStats{Health: 30, Cores: 10, Bits: 5}
	return snap
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func TestDetectEvents_NoEvents(t *testing.T) {
	snap := baseSnapshot(3)
	prev := takeSnapshot(snap)

	// Same state next turn, no events.
	snap.Turn = 4
	events := detectEvents(snap, &prev)
	if len(events) != 0 {
		t.Errorf("expected 0 events, got %d: %+v", len(events), events)
	}
}

func TestDetectEvents_NilPrev(t *testing.T) {
	if events := detectEvents(baseSnapshot(0), nil); events != nil {
		t.Errorf("expected nil events for nil prev, got %+v", events)
	}
}

func TestDetectEvents_HealthChanges(t *testing.T) {
	snap := baseSnapshot(3)
	prev := takeSnapshot(snap)

	snap.Turn = 4
	snap.Stats[model.Self].Health = 26
	snap.Stats[model.Enemy].Health = 29
	events := detectEvents(snap, &prev)

	if !hasEvent(events, EventHealthLost) {
		t.Errorf("expected health_lost event, got %+v", events)
	}
	if !hasEvent(events, EventEnemyHealthLost) {
		t.Errorf("expected enemy_health_lost event, got %+v", events)
	}
}

func TestDetectEvents_StructuresLost(t *testing.T) {
	snap := baseSnapshot(3)
	prev := takeSnapshot(snap)

	// Both walls destroyed; the mobile unit leaving is not a loss.
	snap.Turn = 4
	snap.Units = snap.Units[2:5]
	events := detectEvents(snap, &prev)

	if len(events) != 1 || events[0].Kind != EventStructuresLost {
		t.Fatalf("expected one structures_lost event, got %+v", events)
	}
	if events[0].Detail != "2x wall" {
		t.Errorf("detail = %q, want %q", events[0].Detail, "2x wall")
	}
}

func TestDetectEvents_EnemyShieldsUp(t *testing.T) {
	snap := baseSnapshot(3)
	prev := takeSnapshot(snap)

	snap.Turn = 4
	snap.Units = append(snap.Units, model.Unit{Type: model.Shield, Side: model.Enemy, Location: model.Loc(14, 20)})
	if events := detectEvents(snap, &prev); !hasEvent(events, EventEnemyShieldsUp) {
		t.Errorf("expected enemy_shields_up event, got %+v", events)
	}
}

func TestIngestFrameIsAdditive(t *testing.T) {
	mem := rules.NewMemory(3.5)
	snap := baseSnapshot(5)
	snap.Events = model.CombatEvents{
		Damage: []model.CombatEvent{
			{Location: model.Loc(1, 13), Amount: 4, Owner: 1},
			{Location: model.Loc(13, 20), Amount: 2, Owner: 2},
		},
		Breach: []model.CombatEvent{
			{Location: model.Loc(4, 9), Amount: 1, Owner: 2},
		},
	}

	if n := ingestFrame(mem, snap); n != 2 {
		t.Errorf("first frame recorded %d, want 2", n)
	}
	if n := ingestFrame(mem, snap); n != 2 {
		t.Errorf("second frame recorded %d, want 2", n)
	}
	if mem.Threats.Len() != 4 {
		t.Errorf("history length = %d, want 4", mem.Threats.Len())
	}
	if mem.ShieldCount != 1 || mem.EnemyShieldCount != 1 || mem.EnemyHealth != 30 {
		t.Errorf("counters = %d/%d/%f, want 1/1/30", mem.ShieldCount, mem.EnemyShieldCount, mem.EnemyHealth)
	}
}

func TestFormatEvents(t *testing.T) {
	events := []Event{
		{Kind: EventHealthLost, Turn: 4, Detail: "lost 2 health (28 left)"},
		{Kind: EventStructuresLost, Turn: 4, Detail: "1x turret"},
	}
	want := "health_lost: lost 2 health (28 left); structures_lost: 1x turret"
	if got := formatEvents(events); got != want {
		t.Errorf("formatEvents = %q, want %q", got, want)
	}
}
