package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// the API carries no credentials, any origin may subscribe
	CheckOrigin: func(*http.Request) bool { return true },
}

const writeWait = 5 * time.Second

// streamQuotes pushes the full quote table on connect and then on every
// push interval. Clients that fall behind or disconnect are dropped.
func (s *Server) streamQuotes(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	// Drain control frames so pings and close messages are processed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := c.Request.Context()
	ticker := time.NewTicker(s.pushInterval)
	defer ticker.Stop()

	for {
		quotes, err := s.desk.Quotes.Snapshot(ctx)
		if err != nil {
			s.log.Warn("quote snapshot failed", "err", err)
			return
		}
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(quotes); err != nil {
			return
		}

		select {
		case <-ctx.Done():
			conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
				time.Now().Add(writeWait))
			return
		case <-ticker.C:
		}
	}
}
