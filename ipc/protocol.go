package ipc

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/nstehr/rampart/rampart-core/model"
)

// maxLineSize guards against a runaway line; full action frames are well
// under this.
const maxLineSize = 4 << 20

// Envelope is one classified line from the engine. Data is kept raw so
// handlers can decode it into the concrete type they need.
type Envelope struct {
	Type string
	Data json.RawMessage
}

// ErrUnclassified is returned for a line that is valid JSON but is neither a
// game config nor a game state.
var ErrUnclassified = errors.New("unclassified message")

// Classify works out which message a line carries.
func Classify(line []byte) (Envelope, error) {
	var p probe
	if err := json.Unmarshal(line, &p); err != nil {
		return Envelope{}, fmt.Errorf("unmarshal message: %w", err)
	}
	env := Envelope{Data: json.RawMessage(line)}
	switch {
	case p.UnitInformation != nil:
		env.Type = TypeConfig
	case len(p.TurnInfo) == 0:
		return env, ErrUnclassified
	case p.TurnInfo[0] == phaseTurn:
		env.Type = TypeTurn
	case p.TurnInfo[0] == phaseActionFrame:
		env.Type = TypeActionFrame
	case p.TurnInfo[0] == phaseEndGame:
		env.Type = TypeEndGame
	default:
		return env, fmt.Errorf("%w: turn phase %v", ErrUnclassified, p.TurnInfo[0])
	}
	return env, nil
}

// ReadEnvelope reads the next non-blank line. Read failures, io.EOF
// included, are returned as-is; a line that cannot be classified yields a
// *LineError.
func ReadEnvelope(r *bufio.Reader) (Envelope, error) {
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > maxLineSize {
			return Envelope{}, fmt.Errorf("line of %d bytes exceeds limit", len(line))
		}
		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			env, cerr := Classify(line)
			if cerr != nil {
				return env, &LineError{Err: cerr}
			}
			return env, nil
		}
		if err != nil {
			return Envelope{}, err
		}
	}
}

// LineError wraps a problem with a single line. The stream itself is still
// readable after one.
type LineError struct {
	Err error
}

func (e *LineError) Error() string { return "bad line: " + e.Err.Error() }

func (e *LineError) Unwrap() error { return e.Err }

// WriteReply writes the build line followed by the deploy line.
func WriteReply(w io.Writer, reply Reply) error {
	for _, actions := range [][]model.Action{reply.Build, reply.Deploy} {
		line, err := encodeCommands(actions)
		if err != nil {
			return fmt.Errorf("marshal commands: %w", err)
		}
		line = append(line, '\n')
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("write commands: %w", err)
		}
	}
	return nil
}
