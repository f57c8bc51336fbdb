package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/elaraai/east-ui-sub007/pkg/dataset"
)

// watchEvent is the JSON frame pushed to watch clients.
type watchEvent struct {
	Workspace     string `json:"workspace"`
	Path          string `json:"path"`
	Version       uint64 `json:"version"`
	GlobalVersion uint64 `json:"global_version"`
	Unset         bool   `json:"unset,omitempty"`
}

// watchBuffer is the per-connection event buffer. A client that cannot keep
// up has events dropped rather than blocking the cache's notify path.
const watchBuffer = 64

// handleWatch upgrades to WebSocket and streams dataset change events.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "error", err)
		return
	}

	events := make(chan dataset.Event, watchBuffer)
	unsubscribe := s.cache.SubscribeAll(func(e dataset.Event) {
		select {
		case events <- e:
		default:
			s.logger.Warn("watch client lagging, event dropped",
				"workspace", e.Workspace, "path", e.Path)
		}
	})

	done := make(chan struct{})
	go s.watchWriteLoop(conn, events, done)

	// Read loop. Clients send nothing meaningful; reading drives pong
	// handling and detects closure.
	conn.SetReadDeadline(time.Now().Add(s.config.WatchReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(s.config.WatchReadTimeout))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("watch read error", "error", err)
			}
			break
		}
	}

	unsubscribe()
	close(done)
	conn.Close()
}

// watchWriteLoop pushes events and heartbeat pings until the connection
// closes.
func (s *Server) watchWriteLoop(conn *websocket.Conn, events <-chan dataset.Event, done <-chan struct{}) {
	ticker := time.NewTicker(s.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case e := <-events:
			conn.SetWriteDeadline(time.Now().Add(s.config.WatchWriteTimeout))
			if err := conn.WriteJSON(watchEvent{
				Workspace:     e.Workspace,
				Path:          e.Path,
				Version:       e.Version,
				GlobalVersion: e.GlobalVersion,
				Unset:         e.Unset,
			}); err != nil {
				s.logger.Error("watch write error", "error", err)
				conn.Close()
				return
			}

		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(s.config.WatchWriteTimeout))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				conn.Close()
				return
			}

		case <-done:
			return
		}
	}
}
