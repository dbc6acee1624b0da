package handler

import (
	"encoding/json"
	"log/slog"
	"math"
	"strings"

	"github.com/zacharysnewman/web-mp-test/internal/world"
	"github.com/zacharysnewman/web-mp-test/internal/ws"
)

// SessionHandler translates session events into world calls. It is the one
// place loose client input is coerced into well-formed values; nothing past
// this boundary sees raw JSON.
type SessionHandler struct {
	world *world.World
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(w *world.World) *SessionHandler {
	return &SessionHandler{world: w}
}

type joinRequest struct {
	Name string `json:"name"`
}

type joinedResponse struct {
	ID       string         `json:"id" msgpack:"id"`
	Snapshot world.Snapshot `json:"snapshot" msgpack:"snapshot"`
}

// HandleJoin registers the client as a player and replies with the assigned
// identity plus a full state snapshot. A blank name gets a generated one.
func (h *SessionHandler) HandleJoin(client *ws.Client, env ws.Envelope) {
	var req joinRequest
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &req); err != nil {
			client.SendMessage(ws.NewError("invalid join data"))
			return
		}
	}

	p, snap := h.world.Join(client.ID, strings.TrimSpace(req.Name))

	client.SendMessage(ws.Outbound{
		Type: ws.TypeJoined,
		Data: joinedResponse{ID: p.ID, Snapshot: snap},
	})
}

type moveRequest struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandleMove applies a position update. Malformed frames get an error reply;
// non-finite coordinates are dropped so they never reach the simulation.
// There is no reply on success and no unknown-player error, late moves after
// a disconnect are simply swallowed.
func (h *SessionHandler) HandleMove(client *ws.Client, env ws.Envelope) {
	var req moveRequest
	if err := json.Unmarshal(env.Data, &req); err != nil {
		client.SendMessage(ws.NewError("invalid move data"))
		return
	}
	if !finite(req.X) || !finite(req.Y) || !finite(req.Z) {
		slog.Warn("dropping non-finite move", "client", client.ID)
		return
	}

	h.world.ApplyMove(client.ID, req.X, req.Y, req.Z)
}

// HandleDisconnect removes the client's player from the world.
func (h *SessionHandler) HandleDisconnect(client *ws.Client) {
	h.world.Disconnect(client.ID)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
