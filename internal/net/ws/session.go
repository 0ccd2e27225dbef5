package ws

import (
	"sync"

	"github.com/gorilla/websocket"
)

// session wraps one live connection with a write mutex, since
// gorilla/websocket connections are not safe for concurrent writers.
type session struct {
	conn     *websocket.Conn
	playerID uint32
	mu       sync.Mutex
}

func (s *session) writeJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(v)
}

func (s *session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.Close()
}
