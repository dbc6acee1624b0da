package handler

import (
	"encoding/json"
	"log/slog"

	"github.com/zacharysnewman/web-mp-test/internal/world"
	"github.com/zacharysnewman/web-mp-test/internal/ws"
)

// Router dispatches incoming session messages to the world. The client ID is
// the player identity, so no separate session bookkeeping is needed.
type Router struct {
	session *SessionHandler
}

// NewRouter creates a new message router for the given world.
func NewRouter(w *world.World) *Router {
	return &Router{session: NewSessionHandler(w)}
}

// HandleMessage parses and routes an incoming client message.
func (r *Router) HandleMessage(cm *ws.ClientMessage) {
	var env ws.Envelope
	if err := json.Unmarshal(cm.Data, &env); err != nil {
		slog.Warn("invalid message format", "client", cm.Client.ID, "error", err)
		cm.Client.SendMessage(ws.NewError("invalid message format"))
		return
	}

	switch env.Type {
	case ws.TypeJoin:
		r.session.HandleJoin(cm.Client, env)
	case ws.TypeMove:
		r.session.HandleMove(cm.Client, env)
	default:
		slog.Warn("unknown message type", "type", env.Type, "client", cm.Client.ID)
		cm.Client.SendMessage(ws.NewError("unknown message type: " + env.Type))
	}
}

// HandleDisconnect handles client disconnection.
func (r *Router) HandleDisconnect(client *ws.Client) {
	r.session.HandleDisconnect(client)
}
