package ipc

import (
	"bufio"
	"errors"
	"io"
	"log/slog"
)

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Reply, error)

// Connection is the bot's link to the game engine: game states arrive one
// per line on r, turn submissions go out on w.
type Connection struct {
	r        *bufio.Reader
	w        *bufio.Writer
	handlers map[string]Handler
}

func NewConnection(r io.Reader, w io.Writer, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{
		r:        bufio.NewReaderSize(r, 64<<10),
		w:        bufio.NewWriter(w),
		handlers: handlers,
	}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// Submit writes a turn reply and flushes it so the engine sees it at once.
func (c *Connection) Submit(reply Reply) error {
	if err := WriteReply(c.w, reply); err != nil {
		return err
	}
	return c.w.Flush()
}

// ReadLoop blocks until the input closes, the game ends, or the reply side
// fails. Handlers run one at a time in arrival order.
//
// Every turn gets exactly one submission: when the turn handler fails or
// returns nothing, an empty reply is sent so the engine is never left waiting.
func (c *Connection) ReadLoop() error {
	for {
		env, err := ReadEnvelope(c.r)
		if err != nil {
			var lineErr *LineError
			if errors.As(err, &lineErr) {
				slog.Warn("skipping line", "error", err)
				continue
			}
			if errors.Is(err, io.EOF) {
				slog.Info("engine closed input")
				return nil
			}
			return err
		}

		reply, herr := c.dispatch(env)
		if herr != nil {
			slog.Error("handler error", "type", env.Type, "error", herr)
		}

		if env.Type == TypeTurn && reply == nil {
			reply = &Reply{}
		}
		if reply != nil {
			if err := c.Submit(*reply); err != nil {
				slog.Error("failed to submit turn", "error", err)
				return err
			}
			slog.Debug("submitted turn", "build", len(reply.Build), "deploy", len(reply.Deploy))
		}

		if env.Type == TypeEndGame {
			return nil
		}
	}
}

func (c *Connection) dispatch(env Envelope) (*Reply, error) {
	handler, ok := c.handlers[env.Type]
	if !ok {
		slog.Debug("no handler for message type", "type", env.Type)
		return nil, nil
	}
	return handler(env)
}
