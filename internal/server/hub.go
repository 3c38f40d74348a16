package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/jvs-dev/memory-game-guadalupe/internal/catalog"
	"github.com/jvs-dev/memory-game-guadalupe/internal/game"
	"github.com/jvs-dev/memory-game-guadalupe/internal/protocol"
	"github.com/jvs-dev/memory-game-guadalupe/internal/shared"

	"github.com/google/uuid"
)

// clientMessage is a helper struct to pass messages along with the client reference.
type clientMessage struct {
	client  *Client
	message protocol.Message
}

// Hub manages WebSocket clients and the game session each one owns. The
// clients and sessions maps are confined to the Run loop; session callbacks
// only ever touch the client's send channel.
type Hub struct {
	catalog *catalog.Accessor
	sched   game.Scheduler

	clients        map[*Client]bool
	sessions       map[*Client]*game.Session
	processMessage chan clientMessage
	register       chan *Client
	unregister     chan *Client
}

// NewHub creates a new Hub instance over the given catalog accessor.
func NewHub(accessor *catalog.Accessor, sched game.Scheduler) *Hub {
	return &Hub{
		catalog:        accessor,
		sched:          sched,
		clients:        make(map[*Client]bool),
		sessions:       make(map[*Client]*game.Session),
		processMessage: make(chan clientMessage),
		register:       make(chan *Client),
		unregister:     make(chan *Client),
	}
}

// Run starts the Hub's main loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			client.ID = uuid.NewString()
			h.clients[client] = true
			log.Printf("Client %s connected (%s)", client.ID, client.conn.RemoteAddr())

		case client := <-h.unregister:
			if _, ok := h.clients[client]; !ok {
				continue
			}
			if session, ok := h.sessions[client]; ok {
				session.Stop()
				delete(h.sessions, client)
			}
			delete(h.clients, client)
			close(client.send)
			log.Printf("Client %s disconnected", client.ID)

		case clientMsg := <-h.processMessage:
			h.handleMessage(clientMsg.client, clientMsg.message)
		}
	}
}

// handleMessage processes a message received from a client.
func (h *Hub) handleMessage(client *Client, msg protocol.Message) {
	switch msg.Type {
	case "start_game":
		h.handleStartGame(client, msg)
	case "flip":
		h.handleFlip(client, msg)
	case "restart":
		h.handleRestart(client)
	case "return_to_menu":
		h.handleReturnToMenu(client)
	case "ping":
		pongMsg, _ := protocol.NewMessage("pong", nil)
		h.send(client, pongMsg)
	default:
		log.Printf("Received unknown message type '%s' from client %s", msg.Type, client.ID)
		h.sendError(client, protocol.CodeUnknownMessage, "Unknown message type.")
	}
}

// handleStartGame fetches the catalog, builds a fresh session for the client
// and starts pushing state snapshots. An existing session is discarded.
func (h *Hub) handleStartGame(client *Client, msg protocol.Message) {
	var payload protocol.StartGamePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || !payload.Mode.Valid() {
		log.Printf("Client %s sent invalid start_game payload", client.ID)
		h.sendError(client, protocol.CodeUnknownMessage, "Invalid start_game message.")
		return
	}

	if old, ok := h.sessions[client]; ok {
		old.Stop()
		delete(h.sessions, client)
	}

	defs, err := h.catalog.Fetch(context.Background())
	if err != nil {
		h.sendError(client, protocol.CodeCatalogUnavailable,
			"Could not load the card catalog. Try again in a moment.")
		return
	}

	session, err := game.NewSession(payload.Mode, defs, h.sched, h.pusher(client))
	if err != nil {
		if errors.Is(err, shared.ErrInsufficientCatalog) {
			h.sendError(client, protocol.CodeInsufficientCatalog,
				"The catalog needs at least 6 cards before a game can start.")
		} else {
			h.sendError(client, protocol.CodeUnknownMessage, "Could not start the game.")
		}
		return
	}

	h.sessions[client] = session
	h.pushState(client, session.Snapshot())
}

// pusher builds the on-change callback for a client's session. It runs on
// whatever goroutine mutated the session (reader or timer), so it only
// writes to the client's send channel.
func (h *Hub) pusher(client *Client) game.ChangeFunc {
	return func(snap game.Snapshot) {
		h.pushState(client, snap)
	}
}

func (h *Hub) pushState(client *Client, snap game.Snapshot) {
	stateMsg, err := protocol.NewMessage("game_state", protocol.NewGameState(snap))
	if err != nil {
		log.Printf("Error creating game_state message for client %s: %v", client.ID, err)
		return
	}
	h.send(client, stateMsg)

	if snap.Complete {
		overMsg, _ := protocol.NewMessage("game_over", protocol.NewGameOver(snap))
		h.send(client, overMsg)
	}
}

func (h *Hub) handleFlip(client *Client, msg protocol.Message) {
	session, ok := h.sessions[client]
	if !ok {
		h.sendError(client, protocol.CodeNotInGame, "No game in progress.")
		return
	}

	var payload protocol.FlipPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("Client %s sent invalid flip payload", client.ID)
		h.sendError(client, protocol.CodeUnknownMessage, "Invalid flip message.")
		return
	}

	session.Flip(payload.InstanceID)
}

func (h *Hub) handleRestart(client *Client) {
	session, ok := h.sessions[client]
	if !ok {
		h.sendError(client, protocol.CodeNotInGame, "No game in progress.")
		return
	}

	if err := session.Restart(); err != nil {
		// The catalog snapshot backing the session was already big enough,
		// so a rebuild over it cannot run short.
		log.Printf("Client %s: restart failed: %v", client.ID, err)
		h.sendError(client, protocol.CodeUnknownMessage, "Could not restart the game.")
	}
}

func (h *Hub) handleReturnToMenu(client *Client) {
	session, ok := h.sessions[client]
	if !ok {
		return
	}
	session.Stop()
	delete(h.sessions, client)

	menuMsg, _ := protocol.NewMessage("menu", nil)
	h.send(client, menuMsg)
}

// send delivers a message without blocking the hub; a client whose channel
// is full or closed is treated as disconnected.
func (h *Hub) send(client *Client, message []byte) {
	select {
	case client.send <- message:
	default:
		log.Printf("Failed to send to client %s (channel full or closed)", client.ID)
		go func() {
			h.unregister <- client
		}()
	}
}

func (h *Hub) sendError(client *Client, code, message string) {
	msgBytes, err := protocol.NewMessage("error", protocol.ErrorPayload{Code: code, Message: message})
	if err != nil {
		log.Printf("Error creating error message for client %s: %v", client.ID, err)
		return
	}
	h.send(client, msgBytes)
}
