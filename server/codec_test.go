package server

import (
	"encoding/json"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/lab1702/soccer-web/config"
	"github.com/lab1702/soccer-web/game"
)

func testSnapshot() game.Snapshot {
	g := game.NewGameWithSeed(2)
	g.Apply(game.JoinCommand("a", "alice"))
	g.Apply(game.JoinCommand("b", "bob"))
	g.Red.Score = 3
	g.Update()
	return g.Snapshot()
}

func TestEncodeSnapshotJSON(t *testing.T) {
	f, err := encodeSnapshot(config.EncodingJSON, testSnapshot())
	if err != nil {
		t.Fatalf("encodeSnapshot failed: %v", err)
	}
	if f.messageType != websocket.TextMessage {
		t.Errorf("Expected text message, got %d", f.messageType)
	}

	// Field names follow the client protocol
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(f.data, &raw); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	for _, key := range []string{"teams", "ball", "players"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Expected key %q in snapshot", key)
		}
	}

	var decoded game.Snapshot
	if err := json.Unmarshal(f.data, &decoded); err != nil {
		t.Fatalf("Failed to decode snapshot: %v", err)
	}
	if decoded.Teams[game.TeamRed].Score != 3 {
		t.Errorf("Expected red score 3, got %d", decoded.Teams[game.TeamRed].Score)
	}
	if len(decoded.Players) != 2 || decoded.Players[0].Team != game.TeamRed {
		t.Errorf("Unexpected players: %+v", decoded.Players)
	}
}

func TestEncodeSnapshotMsgpack(t *testing.T) {
	original := testSnapshot()
	f, err := encodeSnapshot(config.EncodingMsgpack, original)
	if err != nil {
		t.Fatalf("encodeSnapshot failed: %v", err)
	}
	if f.messageType != websocket.BinaryMessage {
		t.Errorf("Expected binary message, got %d", f.messageType)
	}

	var decoded game.Snapshot
	if err := msgpack.Unmarshal(f.data, &decoded); err != nil {
		t.Fatalf("Failed to decode msgpack snapshot: %v", err)
	}
	if decoded.Tick != original.Tick {
		t.Errorf("Expected tick %d, got %d", original.Tick, decoded.Tick)
	}
	if decoded.Ball.Radius != game.BallRadius {
		t.Errorf("Expected ball radius %f, got %f", game.BallRadius, decoded.Ball.Radius)
	}
	if got := decoded.Teams[game.TeamBlue].Players; len(got) != 1 || got[0] != "b" {
		t.Errorf("Expected blue players [b], got %v", got)
	}
}

func TestEncodeSnapshotUnknown(t *testing.T) {
	if _, err := encodeSnapshot("xml", testSnapshot()); err == nil {
		t.Errorf("Expected an error for an unknown encoding")
	}
}
