package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sony/gobreaker"

	"github.com/lab1702/soccer-web/config"
	"github.com/lab1702/soccer-web/game"
)

// loopbackHosts may always connect, with or without a port
var loopbackHosts = []string{"localhost", "127.0.0.1"}

// isValidOrigin accepts non-browser clients, same-origin pages and local
// development pages.
func isValidOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}

	originURL, err := url.Parse(origin)
	if err != nil {
		log.Printf("Invalid origin URL: %s", origin)
		return false
	}
	if originURL.Host == r.Host {
		return true
	}

	host := originURL.Hostname()
	for _, allowed := range loopbackHosts {
		if host == allowed {
			return true
		}
	}

	log.Printf("Rejected WebSocket connection from origin: %s", origin)
	return false
}

var upgrader = websocket.Upgrader{
	CheckOrigin:       isValidOrigin,
	EnableCompression: true,
}

// Message types
const (
	MsgTypeJoin  = "join"
	MsgTypeMove  = "move"
	MsgTypeGoal  = "goal"
	MsgTypeError = "error"
)

// Connection timing
const (
	pongWait     = 60 * time.Second
	pingPeriod   = 54 * time.Second
	writeWait    = 10 * time.Second
	maxMessageSz = 4096
)

var errSendBufferFull = errors.New("send buffer full")

// ClientMessage represents a message from client to server
type ClientMessage struct {
	Type string  `json:"type"`
	Name string  `json:"name,omitempty"` // join
	DX   float64 `json:"dx,omitempty"`   // move
	DY   float64 `json:"dy,omitempty"`
}

// ServerMessage represents a non-snapshot message from server to client
type ServerMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Client represents a connected player
type Client struct {
	ID      string
	conn    *websocket.Conn
	send    chan frame
	server  *Server
	breaker *gobreaker.CircuitBreaker
	joined  atomic.Bool
}

// Server manages the game and client connections
type Server struct {
	mu         sync.RWMutex
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan frame
	game       *game.Game
	cfg        *config.Config

	done     chan struct{}
	stopOnce sync.Once
}

// NewServer creates a new game server
func NewServer(cfg *config.Config) *Server {
	return &Server{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan frame, 256),
		game:       game.NewGame(),
		cfg:        cfg,
		done:       make(chan struct{}),
	}
}

// newClient creates a client whose circuit breaker trips after too many
// consecutive broadcasts were dropped because its send buffer was full.
func (s *Server) newClient(id string, conn *websocket.Conn) *Client {
	maxDrops := uint32(s.cfg.SlowClientDrops)
	return &Client{
		ID:     id,
		conn:   conn,
		send:   make(chan frame, s.cfg.SendBuffer),
		server: s,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name: "client-" + id,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= maxDrops
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				log.Printf("Circuit breaker %s changed from %s to %s", name, from, to)
			},
		}),
	}
}

// Run starts the server main loop
func (s *Server) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start game loop
	scheduler := game.NewScheduler(s.cfg.TickInterval(), s.step)
	go scheduler.Run(ctx)

	// Handle client events
	for {
		select {
		case <-s.done:
			return

		case client := <-s.register:
			s.mu.Lock()
			s.clients[client.ID] = client
			s.mu.Unlock()
			log.Printf("Client %s connected", client.ID)

		case client := <-s.unregister:
			s.removeClient(client)

		case f := <-s.broadcast:
			s.fanOut(f)
		}
	}
}

// Shutdown stops the main loop and the game loop
func (s *Server) Shutdown() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

// step advances the game one tick and broadcasts the result
func (s *Server) step() {
	s.game.Mu.Lock()
	scorer := s.game.Update()
	snapshot := s.game.Snapshot()
	s.game.Mu.Unlock()

	if scorer != game.TeamNone {
		s.broadcastGoal(scorer, snapshot)
	}
	s.broadcastSnapshot(snapshot)
}

// broadcastGoal announces a goal ahead of the post-kickoff snapshot
func (s *Server) broadcastGoal(scorer game.TeamName, snapshot game.Snapshot) {
	data, err := json.Marshal(ServerMessage{
		Type: MsgTypeGoal,
		Data: map[string]interface{}{
			"team": scorer,
			"red":  snapshot.Teams[game.TeamRed].Score,
			"blue": snapshot.Teams[game.TeamBlue].Score,
		},
	})
	if err != nil {
		return
	}

	select {
	case s.broadcast <- frame{messageType: websocket.TextMessage, data: data}:
	default:
		log.Printf("Warning: broadcast queue full, dropping goal message")
	}
}

// apply runs a player intent immediately and broadcasts the new state
func (s *Server) apply(cmd game.Command) {
	s.game.Mu.Lock()
	s.game.Apply(cmd)
	snapshot := s.game.Snapshot()
	s.game.Mu.Unlock()

	s.broadcastSnapshot(snapshot)
}

func (s *Server) broadcastSnapshot(snapshot game.Snapshot) {
	f, err := encodeSnapshot(s.cfg.Encoding, snapshot)
	if err != nil {
		log.Printf("Failed to encode snapshot: %v", err)
		return
	}

	select {
	case s.broadcast <- f:
	default:
		log.Printf("Warning: broadcast queue full, dropping snapshot for tick %d", snapshot.Tick)
	}
}

// fanOut hands a frame to every client without blocking. Clients whose
// breaker opened are disconnected.
func (s *Server) fanOut(f frame) {
	var slow []*Client

	s.mu.RLock()
	for _, client := range s.clients {
		_, err := client.breaker.Execute(func() (interface{}, error) {
			select {
			case client.send <- f:
				return nil, nil
			default:
				return nil, errSendBufferFull
			}
		})
		if err != nil && client.breaker.State() == gobreaker.StateOpen {
			slow = append(slow, client)
		}
	}
	s.mu.RUnlock()

	for _, client := range slow {
		log.Printf("Disconnecting slow client %s", client.ID)
		s.removeClient(client)
	}
}

// removeClient drops a client and takes its player off the field
func (s *Server) removeClient(client *Client) {
	s.mu.Lock()
	_, ok := s.clients[client.ID]
	if ok {
		delete(s.clients, client.ID)
		close(client.send)
	}
	s.mu.Unlock()

	if !ok {
		return
	}

	if client.joined.Load() {
		s.apply(game.LeaveCommand(client.ID))
	}
	log.Printf("Client %s disconnected", client.ID)
}

// HandleTeamStats reports team sizes and scores
func (s *Server) HandleTeamStats(w http.ResponseWriter, r *http.Request) {
	// Enable CORS for cross-origin requests
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")

	type teamStats struct {
		Players int `json:"players"`
		Score   int `json:"score"`
	}

	s.game.Mu.Lock()
	response := struct {
		Total int                         `json:"total"`
		Tick  int64                       `json:"tick"`
		Teams map[game.TeamName]teamStats `json:"teams"`
	}{
		Total: len(s.game.Players),
		Tick:  s.game.Tick,
		Teams: map[game.TeamName]teamStats{
			game.TeamRed:  {Players: s.game.Red.Size(), Score: s.game.Red.Score},
			game.TeamBlue: {Players: s.game.Blue.Size(), Score: s.game.Blue.Score},
		},
	}
	s.game.Mu.Unlock()

	json.NewEncoder(w).Encode(response)
}

// HandleWebSocket upgrades the connection and starts the client pumps
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade error: %v", err)
		return
	}

	client := s.newClient(uuid.NewString(), conn)

	select {
	case s.register <- client:
	case <-s.done:
		conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}

func (c *Client) readPump() {
	defer func() {
		select {
		case c.server.unregister <- c:
		case <-c.server.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSz)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			c.sendError("Invalid message")
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case f, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteMessage(f.messageType, f.data); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (c *Client) handleMessage(msg ClientMessage) {
	// Recover from any panic to prevent disconnection
	defer func() {
		if r := recover(); r != nil {
			log.Printf("PANIC in handleMessage for client %s, type %s: %v", c.ID, msg.Type, r)
		}
	}()

	switch msg.Type {
	case MsgTypeJoin:
		c.handleJoin(msg)
	case MsgTypeMove:
		c.handleMove(msg)
	default:
		log.Printf("Unknown message type: %s", msg.Type)
		c.sendError("Unknown message type")
	}
}
