package model

import (
	"encoding/json"
	"fmt"
)

// Phase is the kind of turn-state message, taken from turnInfo[0].
type Phase int

const (
	PhaseDeploy Phase = 0 // start of turn, actions are expected
	PhaseAction Phase = 1 // one resolved combat frame
	PhaseEnd    Phase = 2 // game over
)

// PlayerStats is one side's pXStats entry.
type PlayerStats struct {
	Health float64
	Cores  float64 // structure pool
	Bits   float64 // mobile pool
	Time   float64
}

// Resource returns the pool balance.
func (p PlayerStats) Resource(pool Pool) float64 {
	if pool == MobilePool {
		return p.Bits
	}
	return p.Cores
}

// CombatEvent is one damage or breach entry from an action frame. Owner is the
// raw event flag: 1 for us, 2 for the opponent.
type CombatEvent struct {
	Location Location
	Amount   float64
	Owner    int
}

func (e CombatEvent) OwnedBySelf() bool { return e.Owner == 1 }

type CombatEvents struct {
	Damage []CombatEvent
	Breach []CombatEvent
}

// Snapshot is a parsed turn-state message.
type Snapshot struct {
	Phase  Phase
	Turn   int
	Frame  int
	Stats  [2]PlayerStats // indexed by Side
	Units  []Unit
	Events CombatEvents
}

// CountUnits counts side's units of type t.
func (s Snapshot) CountUnits(side Side, t UnitType) int {
	n := 0
	for _, u := range s.Units {
		if u.Side == side && u.Type == t {
			n++
		}
	}
	return n
}

type rawEvents struct {
	Damage [][]any `json:"damage"`
	Breach [][]any `json:"breach"`
}

type rawState struct {
	TurnInfo []float64  `json:"turnInfo"`
	P1Stats  []float64  `json:"p1Stats"`
	P2Stats  []float64  `json:"p2Stats"`
	P1Units  [][][]any  `json:"p1Units"`
	P2Units  [][][]any  `json:"p2Units"`
	Events   *rawEvents `json:"events"`
}

// upgradeMarkerIndex is the pXUnits list holding the locations of upgraded structures.
const upgradeMarkerIndex = 7

// ParseSnapshot decodes a turn-state line. Missing required fields produce a
// *ParseError.
func ParseSnapshot(data []byte) (Snapshot, error) {
	var raw rawState
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, &ParseError{Field: "state", Err: err}
	}
	if len(raw.TurnInfo) < 2 {
		return Snapshot{}, &ParseError{Field: "turnInfo"}
	}

	snap := Snapshot{Phase: Phase(raw.TurnInfo[0]), Turn: int(raw.TurnInfo[1])}
	if len(raw.TurnInfo) > 2 {
		snap.Frame = int(raw.TurnInfo[2])
	}

	var err error
	if snap.Stats[Self], err = parseStats("p1Stats", raw.P1Stats); err != nil {
		return Snapshot{}, err
	}
	if snap.Stats[Enemy], err = parseStats("p2Stats", raw.P2Stats); err != nil {
		return Snapshot{}, err
	}
	if snap.Units, err = parseUnits("p1Units", Self, raw.P1Units, snap.Units); err != nil {
		return Snapshot{}, err
	}
	if snap.Units, err = parseUnits("p2Units", Enemy, raw.P2Units, snap.Units); err != nil {
		return Snapshot{}, err
	}

	if raw.Events != nil {
		if snap.Events.Damage, err = parseEvents("events.damage", raw.Events.Damage); err != nil {
			return Snapshot{}, err
		}
		if snap.Events.Breach, err = parseEvents("events.breach", raw.Events.Breach); err != nil {
			return Snapshot{}, err
		}
	}
	return snap, nil
}

func parseStats(field string, v []float64) (PlayerStats, error) {
	if len(v) < 3 {
		return PlayerStats{}, &ParseError{Field: field}
	}
	ps := PlayerStats{Health: v[0], Cores: v[1], Bits: v[2]}
	if len(v) > 3 {
		ps.Time = v[3]
	}
	return ps, nil
}

func parseUnits(field string, side Side, lists [][][]any, out []Unit) ([]Unit, error) {
	if len(lists) < unitTypeCount {
		return nil, &ParseError{Field: field, Err: fmt.Errorf("want %d unit lists, got %d", unitTypeCount, len(lists))}
	}
	start := len(out)
	for t := 0; t < unitTypeCount; t++ {
		for i, entry := range lists[t] {
			loc, ok := locationOf(entry)
			if !ok {
				return nil, &ParseError{Field: fmt.Sprintf("%s[%d][%d]", field, t, i)}
			}
			u := Unit{Type: UnitType(t), Side: side, Location: loc}
			if len(entry) > 2 {
				u.Health, _ = entry[2].(float64)
			}
			if len(entry) > 3 {
				u.ID = fmt.Sprint(entry[3])
			}
			out = append(out, u)
		}
	}

	if len(lists) > upgradeMarkerIndex {
		for _, entry := range lists[upgradeMarkerIndex] {
			loc, ok := locationOf(entry)
			if !ok {
				return nil, &ParseError{Field: fmt.Sprintf("%s[%d]", field, upgradeMarkerIndex)}
			}
			for i := start; i < len(out); i++ {
				if out[i].Location == loc && out[i].Type.IsStationary() {
					out[i].Upgraded = true
				}
			}
		}
	}
	return out, nil
}

func parseEvents(field string, entries [][]any) ([]CombatEvent, error) {
	out := make([]CombatEvent, 0, len(entries))
	for i, e := range entries {
		if len(e) < 5 {
			return nil, &ParseError{Field: fmt.Sprintf("%s[%d]", field, i)}
		}
		pos, _ := e[0].([]any)
		loc, ok := locationOf(pos)
		if !ok {
			return nil, &ParseError{Field: fmt.Sprintf("%s[%d].location", field, i)}
		}
		owner, ok := e[4].(float64)
		if !ok {
			return nil, &ParseError{Field: fmt.Sprintf("%s[%d].owner", field, i)}
		}
		amount, _ := e[1].(float64)
		out = append(out, CombatEvent{Location: loc, Amount: amount, Owner: int(owner)})
	}
	return out, nil
}

// locationOf reads the leading [x, y] pair of a wire entry.
func locationOf(entry []any) (Location, bool) {
	if len(entry) < 2 {
		return Location{}, false
	}
	x, okX := entry[0].(float64)
	y, okY := entry[1].(float64)
	if !okX || !okY {
		return Location{}, false
	}
	return Location{X: int(x), Y: int(y)}, true
}
