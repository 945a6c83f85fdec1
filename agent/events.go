package agent

import (
	"fmt"
	"strings"

	"github.com/nstehr/rampart/rampart-core/model"
	"github.com/nstehr/rampart/rampart-core/rules"
)

// refreshCounters copies the shield counts and the opponent's health from a
// snapshot into memory. It overwrites, so repeating it is harmless.
func refreshCounters(mem *rules.Memory, snap model.Snapshot) {
	mem.ShieldCount = snap.CountUnits(model.Self, model.Shield)
	mem.EnemyShieldCount = snap.CountUnits(model.Enemy, model.Shield)
	mem.EnemyHealth = snap.Stats[model.Enemy].Health
}

// ingestFrame is the only writer of breach history. Damage taken by our
// units and enemy units scoring on our edge both count as breaches. It
// returns how many locations were recorded.
func ingestFrame(mem *rules.Memory, snap model.Snapshot) int {
	refreshCounters(mem, snap)
	n := 0
	for _, e := range snap.Events.Damage {
		if e.OwnedBySelf() {
			mem.Threats.Record(e.Location)
			n++
		}
	}
	for _, e := range snap.Events.Breach {
		if !e.OwnedBySelf() {
			mem.Threats.Record(e.Location)
			n++
		}
	}
	return n
}

// EventKind identifies a notable change between two consecutive turns.
type EventKind string

const (
	EventHealthLost      EventKind = "health_lost"
	EventEnemyHealthLost EventKind = "enemy_health_lost"
	EventStructuresLost  EventKind = "structures_lost"
	EventEnemyShieldsUp  EventKind = "enemy_shields_up"
)

// Event is a change detected by diffing consecutive turn states. Events are
// logged with the turn summary.
type Event struct {
	Kind   EventKind
	Turn   int
	Detail string
}

// stateSnapshot captures the diffable fields of a turn state.
type stateSnapshot struct {
	turn         int
	health       float64
	enemyHealth  float64
	structures   map[model.Location]model.UnitType // our stationary units
	enemyShields int
}

func takeSnapshot(snap model.Snapshot) stateSnapshot {
	s := stateSnapshot{
		turn:         snap.Turn,
		health:       snap.Stats[model.Self].Health,
		enemyHealth:  snap.Stats[model.Enemy].Health,
		structures:   make(map[model.Location]model.UnitType),
		enemyShields: snap.CountUnits(model.Enemy, model.Shield),
	}
	for _, u := range snap.Units {
		if u.Side == model.Self && u.Type.IsStationary() {
			s.structures[u.Location] = u.Type
		}
	}
	return s
}

// detectEvents compares snap against the previous turn. Returns nil if prev
// is nil (first turn).
func detectEvents(snap model.Snapshot, prev *stateSnapshot) []Event {
	if prev == nil {
		return nil
	}

	var events []Event
	cur := takeSnapshot(snap)

	if lost := prev.health - cur.health; lost > 0 {
		events = append(events, Event{
			Kind:   EventHealthLost,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("lost %g health (%g left)", lost, cur.health),
		})
	}

	if dealt := prev.enemyHealth - cur.enemyHealth; dealt > 0 {
		events = append(events, Event{
			Kind:   EventEnemyHealthLost,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("scored %g (enemy at %g)", dealt, cur.enemyHealth),
		})
	}

	lost := make(map[model.UnitType]int)
	for loc, t := range prev.structures {
		if _, ok := cur.structures[loc]; !ok {
			lost[t]++
		}
	}
	if len(lost) > 0 {
		events = append(events, Event{
			Kind:   EventStructuresLost,
			Turn:   cur.turn,
			Detail: formatCounts(lost),
		})
	}

	if cur.enemyShields > prev.enemyShields {
		events = append(events, Event{
			Kind:   EventEnemyShieldsUp,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("enemy shields %d -> %d", prev.enemyShields, cur.enemyShields),
		})
	}

	return events
}

// formatCounts renders counts as "2x wall, 1x turret" in unit type order.
func formatCounts(counts map[model.UnitType]int) string {
	var parts []string
	for t := model.Wall; t <= model.Disruptor; t++ {
		if n := counts[t]; n > 0 {
			parts = append(parts, fmt.Sprintf("%dx %s", n, t))
		}
	}
	return strings.Join(parts, ", ")
}

// formatEvents renders events on one line for the log.
func formatEvents(events []Event) string {
	parts := make([]string, len(events))
	for i, e := range events {
		parts[i] = fmt.Sprintf("%s: %s", e.Kind, e.Detail)
	}
	return strings.Join(parts, "; ")
}
