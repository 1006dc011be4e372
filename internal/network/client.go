package network

import (
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/universal-elevators/internal/game"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 1024
)

// Client is one websocket connection. Clients may send command objects,
// which are queued for the next driven tick.
type Client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	remote    string
	onCommand func(game.Command)
}

func newClient(hub *Hub, conn *websocket.Conn, onCommand func(game.Command)) *Client {
	return &Client{
		hub:       hub,
		conn:      conn,
		send:      make(chan []byte, 64),
		remote:    conn.RemoteAddr().String(),
		onCommand: onCommand,
	}
}

// readPump reads commands until the connection fails.
func (c *Client) readPump() {
	defer func() {
		c.hub.remove(c)
		c.conn.Close()
	}()
	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("websocket read failed", "remote", c.remote, "error", err)
			}
			return
		}

		cmd, err := game.ParseCommand(message)
		if err != nil {
			c.hub.logger.Warn("ignoring websocket message", "remote", c.remote, "error", err)
			continue
		}
		if c.onCommand != nil {
			c.onCommand(cmd)
		}
	}
}

// writePump forwards hub messages to the connection and keeps it alive.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
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
