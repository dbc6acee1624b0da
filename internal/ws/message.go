package ws

import "encoding/json"

// Envelope is the inbound message frame. Clients always send JSON regardless
// of the configured outbound wire format.
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Outbound is a typed outbound frame prior to encoding by the codec.
type Outbound struct {
	Type string `json:"type" msgpack:"type"`
	Data any    `json:"data,omitempty" msgpack:"data,omitempty"`
}

// Message types - inbound
const (
	TypeJoin = "join"
	TypeMove = "move"
)

// Message types - outbound
const (
	TypeJoined    = "joined"
	TypeState     = "state"
	TypeRoundOver = "round_over"
	TypeError     = "error"
)

// ErrorPayload is sent when a client frame cannot be handled.
type ErrorPayload struct {
	Message string `json:"message" msgpack:"message"`
}

// NewError creates an outbound error frame.
func NewError(msg string) Outbound {
	return Outbound{Type: TypeError, Data: ErrorPayload{Message: msg}}
}
