package server

import (
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lab1702/soccer-web/config"
	"github.com/lab1702/soccer-web/game"
)

// frame is one encoded websocket message
type frame struct {
	messageType int
	data        []byte
}

// encodeSnapshot encodes a snapshot once so it can be shared by every client.
// JSON goes out as a text message, msgpack as a binary message.
func encodeSnapshot(encoding string, snapshot game.Snapshot) (frame, error) {
	switch encoding {
	case config.EncodingJSON:
		data, err := json.Marshal(snapshot)
		if err != nil {
			return frame{}, err
		}
		return frame{messageType: websocket.TextMessage, data: data}, nil
	case config.EncodingMsgpack:
		data, err := msgpack.Marshal(&snapshot)
		if err != nil {
			return frame{}, err
		}
		return frame{messageType: websocket.BinaryMessage, data: data}, nil
	default:
		return frame{}, fmt.Errorf("unknown encoding %q", encoding)
	}
}
