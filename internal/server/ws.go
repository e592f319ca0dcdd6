package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	uuid "github.com/satori/go.uuid"

	"github.com/VrushabBayas/chessboard/internal/output"
	"github.com/VrushabBayas/chessboard/internal/query"
)

// Websocket frame types.
const (
	msgResult = "result"
	msgError  = "error"
	msgPing   = "ping"
)

const defaultPingInterval = 30 * time.Second

// wsRequest is a client frame asking for one piece's moves.
type wsRequest struct {
	Piece  string `json:"piece"`
	Square string `json:"square"`
}

// wsMessage is a server frame. Result frames inline the /moves body.
type wsMessage struct {
	Type    string `json:"type"`
	Session string `json:"session,omitempty"`
	Message string `json:"message,omitempty"`
	*output.JSONResult
}

func mustMarshal(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return data
}

// handleWS upgrades the connection and answers each request frame in order.
// Malformed frames get an error frame; the session stays open.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("websocket upgrade failed: %v", err)
		return
	}
	session := uuid.NewV4().String()
	s.logger.Printf("ws session %s opened from %s", session, r.RemoteAddr)

	send := make(chan []byte, 16)
	done := make(chan struct{})
	go func() {
		defer close(done)
		defer conn.Close()
		if err := writeWithHeartbeat(conn, send, s.cfg.PingInterval); err != nil {
			s.logger.Printf("ws session %s write failed: %v", session, err)
		}
	}()

	push := func(msg wsMessage) {
		select {
		case send <- mustMarshal(msg):
		case <-done:
		}
	}

	served := 0
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var req wsRequest
		if err := json.Unmarshal(data, &req); err != nil {
			push(wsMessage{Type: msgError, Session: session, Message: "malformed request"})
			continue
		}
		res := query.Evaluate(query.Query{Piece: req.Piece, Square: req.Square})
		push(wsMessage{Type: msgResult, Session: session, JSONResult: output.ResultToJSON(res)})
		served++
	}

	close(send)
	<-done
	s.logger.Printf("ws session %s closed after %d queries", session, served)
}

// writeWithHeartbeat forwards frames from send and pings the client when
// nothing has been written for interval. It returns when send is closed.
func writeWithHeartbeat(conn *websocket.Conn, send <-chan []byte, interval time.Duration) error {
	if interval <= 0 {
		interval = defaultPingInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	lastWrite := time.Now()
	pingPayload := mustMarshal(wsMessage{Type: msgPing})

	for {
		select {
		case msg, ok := <-send:
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return nil
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return err
			}
			lastWrite = time.Now()
		case <-ticker.C:
			if time.Since(lastWrite) < interval {
				continue
			}
			if err := conn.WriteMessage(websocket.TextMessage, pingPayload); err != nil {
				return err
			}
			lastWrite = time.Now()
		}
	}
}
