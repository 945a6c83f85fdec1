package ipc

import (
	"encoding/json"

	"github.com/nstehr/rampart/rampart-core/model"
)

// Reply is one turn's submission. Build carries structure placements and
// upgrades, Deploy carries mobile units; each goes out as its own line.
type Reply struct {
	Build  []model.Action
	Deploy []model.Action
}

// Empty reports whether the reply submits nothing.
func (r Reply) Empty() bool { return len(r.Build) == 0 && len(r.Deploy) == 0 }

// command is the engine's [shorthand, x, y] triple.
type command model.Action

func (c command) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{c.Shorthand, c.At.X, c.At.Y})
}

// encodeCommands renders actions as a JSON array of triples. A nil or empty
// list encodes as [] so the engine always gets a well-formed line.
func encodeCommands(actions []model.Action) ([]byte, error) {
	out := make([]command, len(actions))
	for i, a := range actions {
		out[i] = command(a)
	}
	return json.Marshal(out)
}
