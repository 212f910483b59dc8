package server

import (
	"github.com/lab1702/soccer-web/config"
	"github.com/lab1702/soccer-web/game"
)

// Test helpers to reach server internals

// SetGame allows tests to set the game state directly
func (s *Server) SetGame(g *game.Game) {
	s.game = g
}

// GetGame allows tests to get the current game state
func (s *Server) GetGame() *game.Game {
	return s.game
}

// testConfig returns a valid configuration with small buffers
func testConfig() *config.Config {
	return &config.Config{
		Port:            "0",
		TickRate:        60,
		Encoding:        config.EncodingJSON,
		SendBuffer:      16,
		SlowClientDrops: 3,
	}
}

// newTestServer creates a server with a seeded game that is not running
func newTestServer(cfg *config.Config) *Server {
	s := NewServer(cfg)
	s.SetGame(game.NewGameWithSeed(1))
	return s
}

// addTestClient registers a client without a websocket connection
func addTestClient(s *Server, id string) *Client {
	c := s.newClient(id, nil)
	s.mu.Lock()
	s.clients[id] = c
	s.mu.Unlock()
	return c
}
