package ws

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

// Codec encodes outbound frames. JSON is the default for browser clients;
// msgpack is available for binary-capable clients and cuts snapshot size at
// high tick rates.
type Codec interface {
	Name() string
	Marshal(msg Outbound) ([]byte, error)
	// FrameType returns the websocket message type frames are written as.
	FrameType() int
}

// NewCodec returns the codec for the given wire format name. Anything other
// than "msgpack" falls back to JSON.
func NewCodec(format string) Codec {
	if format == "msgpack" {
		return MsgpackCodec{}
	}
	return JSONCodec{}
}

// JSONCodec encodes frames as JSON text messages.
type JSONCodec struct{}

func (JSONCodec) Name() string { return "json" }

func (JSONCodec) Marshal(msg Outbound) ([]byte, error) {
	return json.Marshal(msg)
}

func (JSONCodec) FrameType() int { return websocket.TextMessage }

// MsgpackCodec encodes frames as msgpack binary messages.
type MsgpackCodec struct{}

func (MsgpackCodec) Name() string { return "msgpack" }

func (MsgpackCodec) Marshal(msg Outbound) ([]byte, error) {
	return msgpack.Marshal(msg)
}

func (MsgpackCodec) FrameType() int { return websocket.BinaryMessage }
