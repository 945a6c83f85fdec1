package ipc

// Message types assigned by ReadEnvelope. The game engine never names them
// on the wire; they are derived from the shape of each line.
const (
	TypeConfig      = "config"
	TypeTurn        = "turn"
	TypeActionFrame = "action_frame"
	TypeEndGame     = "end_game"
)

// turnInfo[0] values sent by the engine.
const (
	phaseTurn        = 0
	phaseActionFrame = 1
	phaseEndGame     = 2
)

// probe is the minimum decoded from every line to classify it.
type probe struct {
	UnitInformation []any     `json:"unitInformation"`
	TurnInfo        []float64 `json:"turnInfo"`
}
