package server

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"unicode"

	"github.com/gorilla/websocket"

	"github.com/lab1702/soccer-web/game"
)

// maxNameLength caps display names, counted before filtering
const maxNameLength = 20

// sanitizeName keeps only ASCII letters and digits of a display name
func sanitizeName(name string) string {
	if len(name) > maxNameLength {
		name = name[:maxNameLength]
	}

	var b strings.Builder
	for _, r := range name {
		if r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// validateAxis limits one component of a move input to [-1, 1]
func validateAxis(v float64) float64 {
	return game.Clamp(v, -1, 1)
}

// handleJoin puts the client's player on the field
func (c *Client) handleJoin(msg ClientMessage) {
	if c.joined.Load() {
		c.sendError("Already joined")
		return
	}

	name := sanitizeName(msg.Name)

	// Ensure name is not empty after sanitization
	if name == "" {
		name = fmt.Sprintf("Player%d", rand.Intn(1000))
	}

	// removeClient only issues a Leave for joined clients, so the join must
	// not land after the client was dropped.
	c.server.mu.RLock()
	defer c.server.mu.RUnlock()
	if _, ok := c.server.clients[c.ID]; !ok {
		return
	}

	c.server.apply(game.JoinCommand(c.ID, name))
	c.joined.Store(true)
	log.Printf("Player %s joined as %s", c.ID, name)
}

// handleMove applies a movement input. Moves before join are ignored.
func (c *Client) handleMove(msg ClientMessage) {
	if !c.joined.Load() {
		return
	}

	c.server.apply(game.MoveCommand(c.ID, validateAxis(msg.DX), validateAxis(msg.DY)))
}

// sendError queues an error message for this client only
func (c *Client) sendError(text string) {
	data, err := json.Marshal(ServerMessage{Type: MsgTypeError, Data: text})
	if err != nil {
		return
	}

	// Holding the read lock keeps removeClient from closing send underneath us
	c.server.mu.RLock()
	defer c.server.mu.RUnlock()
	if _, ok := c.server.clients[c.ID]; !ok {
		return
	}

	select {
	case c.send <- frame{messageType: websocket.TextMessage, data: data}:
	default:
		log.Printf("Warning: Client %s send buffer full, dropping error", c.ID)
	}
}
