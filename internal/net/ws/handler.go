// Package ws implements the WebSocket transport for a room: player join,
// inbound input commands, and outbound snapshot/event broadcast.
package ws

import (
	"encoding/json"
	"log"
	nethttp "net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"arena-server/internal/sim"
	"arena-server/internal/telemetry"
	"arena-server/room"
)

// HandlerConfig bundles the handler's dependencies.
type HandlerConfig struct {
	Logger *log.Logger
}

// Handler upgrades HTTP connections into arena sessions, addressing a single
// room and the sim.Engine driving it.
type Handler struct {
	room     *room.Room
	engine   sim.Engine
	logger   *log.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[uint32]*session
}

// NewHandler builds a Handler for one room/engine pair.
func NewHandler(r *room.Room, engine sim.Engine, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	return &Handler{
		room:   r,
		engine: engine,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(*nethttp.Request) bool { return true },
		},
		sessions: make(map[uint32]*session),
	}
}

// Handle upgrades the request, registers a new player, and runs the
// connection's read loop until it disconnects.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		name = "player"
	}
	team, _ := strconv.Atoi(r.URL.Query().Get("team"))
	preset := r.URL.Query().Get("preset")

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed: %v", err)
		return
	}

	p := h.room.AddPlayer(name, team, preset)
	sess := &session{conn: conn, playerID: p.ID}

	h.mu.Lock()
	h.sessions[p.ID] = sess
	h.mu.Unlock()
	telemetry.SetWSConnectionsActive(h.sessionCount())

	defer func() {
		h.mu.Lock()
		delete(h.sessions, p.ID)
		h.mu.Unlock()
		telemetry.SetWSConnectionsActive(h.sessionCount())
		sess.close()
	}()

	if err := sess.writeJSON(welcomeMessage{Type: "welcome", PlayerID: p.ID}); err != nil {
		return
	}

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed message from player %d: %v", p.ID, err)
			continue
		}
		h.dispatch(p.ID, msg)
	}
}

func (h *Handler) sessionCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

func (h *Handler) dispatch(playerID uint32, msg clientMessage) {
	actor := room.CommandActorID(playerID)
	var cmd sim.Command
	switch msg.Type {
	case "move":
		cmd = sim.Command{ActorID: actor, Type: room.CmdMove, Payload: room.MovePayload{X: msg.X, Y: msg.Y}}
	case "aim":
		cmd = sim.Command{ActorID: actor, Type: room.CmdAim, Payload: room.AimPayload{X: msg.X, Y: msg.Y}}
	case "fire":
		cmd = sim.Command{ActorID: actor, Type: room.CmdFire, Payload: room.FirePayload{Alt: msg.Alt}}
	case "reload":
		cmd = sim.Command{ActorID: actor, Type: room.CmdReload}
	case "selectUtility":
		cmd = sim.Command{ActorID: actor, Type: room.CmdSelectUtility, Payload: room.SelectUtilityPayload{Slot: room.UtilityWeaponName(msg.Slot)}}
	case "configChange":
		cmd = sim.Command{ActorID: actor, Type: room.CmdConfigChange, Payload: room.ConfigChangePayload{Weapon: msg.Weapon, Utility: room.UtilityWeaponName(msg.Utility)}}
	default:
		h.logger.Printf("unknown message type %q from player %d", msg.Type, playerID)
		return
	}
	cmd.At = time.Now()
	if ok, reason := h.engine.Enqueue(cmd); !ok {
		telemetry.RecordCommandDrop(reason)
	}
}

// Broadcast sends the given snapshot to every connected session. Wire it as
// a Loop.AfterStep hook so every tick's result reaches all players.
func (h *Handler) Broadcast(snapshot sim.Snapshot) {
	h.mu.Lock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.Unlock()

	for _, s := range sessions {
		if err := s.writeJSON(snapshot); err != nil {
			h.logger.Printf("dropping session for player %d: %v", s.playerID, err)
		}
	}
}

type clientMessage struct {
	Type    string            `json:"type"`
	X       float64           `json:"x"`
	Y       float64           `json:"y"`
	Alt     bool              `json:"alt"`
	Slot    string            `json:"slot"`
	Weapon  room.WeaponConfig `json:"weapon"`
	Utility string            `json:"utility"`
}

type welcomeMessage struct {
	Type     string `json:"type"`
	PlayerID uint32 `json:"playerId"`
}
