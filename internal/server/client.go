package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"sync/atomic"
	"time"

	"dungeon-arena/internal/engine"
	"dungeon-arena/internal/network"
	"dungeon-arena/pkg/api"
	"dungeon-arena/pkg/logger"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/vmihailenco/msgpack/v5"
)

// Настройки WebSocket
const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// Типы кадров
const (
	frameInit     = "INIT"
	frameSnapshot = "SNAPSHOT"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Client - посредник между Websocket и лентой снапшотов. Зритель только смотрит:
// из сокета читаются служебные команды (RESYNC, PING).
type Client struct {
	Runner *engine.Runner
	Hub    *network.Broadcaster
	Conn   *websocket.Conn
	Opts   api.StreamOptions

	id      uuid.UUID
	updates <-chan *api.Snapshot

	// resync - зритель попросил сетку в следующем кадре
	resync      atomic.Bool
	gridVersion int

	log *logrus.Entry
}

func NewClient(runner *engine.Runner, hub *network.Broadcaster, conn *websocket.Conn, opts api.StreamOptions) *Client {
	id, updates := hub.Register()
	return &Client{
		Runner:  runner,
		Hub:     hub,
		Conn:    conn,
		Opts:    opts,
		id:      id,
		updates: updates,
		log: logger.Log.WithFields(logrus.Fields{
			"component":  "ws_client",
			"subscriber": id.String(),
			"format":     opts.Format,
		}),
	}
}

// readPump читает команды от зрителя
func (c *Client) readPump() {
	defer func() {
		c.Hub.Unregister(c.id)
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection")
		}
		c.log.Info("Spectator disconnected")
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.log.WithError(err).Warn("failed to set read deadline")
	}
	c.Conn.SetPongHandler(func(string) error {
		if err := c.Conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			c.log.WithError(err).Warn("failed to set pong read deadline")
		}
		return nil
	})

	for {
		var cmd api.ClientCommand
		if err := c.Conn.ReadJSON(&cmd); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.log.WithError(err).Warn("WS read error")
			}
			return
		}
		if err := cmd.Validate(); err != nil {
			c.log.WithError(err).Debug("Ignoring command")
			continue
		}
		if cmd.Action == api.ActionResync {
			c.resync.Store(true)
		}
	}
}

// writePump отправляет кадры зрителю + Ping
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Conn.Close(); err != nil {
			c.log.WithError(err).Debug("failed to close websocket connection in writePump")
		}
	}()

	// Первый кадр всегда с сеткой: зритель может прийти посреди этапа
	if init := c.Runner.Latest(); init != nil {
		if !c.write(c.initFrame(init)) {
			return
		}
	}

	var seen int
	for {
		select {
		case s, ok := <-c.updates:
			if !ok {
				c.setWriteDeadline()
				if err := c.Conn.WriteMessage(websocket.CloseMessage, []byte{}); err != nil {
					c.log.WithError(err).Debug("write close message failed")
				}
				return
			}
			seen++
			if seen%c.Opts.Every != 0 {
				continue
			}
			if !c.write(c.frame(s)) {
				return
			}

		case <-ticker.C:
			c.setWriteDeadline()
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				c.log.WithError(err).Debug("ping failed")
				return
			}
		}
	}
}

func (c *Client) initFrame(s *api.Snapshot) *api.Snapshot {
	f := *s
	f.Type = frameInit
	if f.Grid == nil {
		f.Grid = c.Runner.LatestGrid()
	}
	c.resync.Store(false)
	if f.Grid != nil {
		c.gridVersion = f.Grid.Version
	}
	return &f
}

// frame решает, прикладывать ли сетку: после смены этапа, если кадр с
// сеткой был пропущен, и по RESYNC.
func (c *Client) frame(s *api.Snapshot) *api.Snapshot {
	needGrid := c.resync.Swap(false) || s.GridVersion != c.gridVersion
	if !needGrid {
		if s.Grid == nil {
			return s
		}
		f := *s
		f.Grid = nil
		return &f
	}

	f := *s
	f.Type = frameSnapshot
	if f.Grid == nil {
		f.Grid = c.Runner.LatestGrid()
	}
	if f.Grid != nil {
		c.gridVersion = f.Grid.Version
	}
	return &f
}

func (c *Client) write(s *api.Snapshot) bool {
	kind, data, err := encodeFrame(c.Opts.Format, s)
	if err != nil {
		c.log.WithError(err).Error("Failed to encode frame")
		return false
	}
	c.setWriteDeadline()
	if err := c.Conn.WriteMessage(kind, data); err != nil {
		c.log.WithError(err).Debug("write frame failed")
		return false
	}
	return true
}

func (c *Client) setWriteDeadline() {
	if err := c.Conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		c.log.WithError(err).Warn("failed to set write deadline")
	}
}

// encodeFrame кодирует снапшот. msgpack использует json-теги, поэтому
// имена полей в обоих форматах совпадают.
func encodeFrame(format string, s *api.Snapshot) (int, []byte, error) {
	if format == api.FormatMsgpack {
		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		enc.SetCustomStructTag("json")
		enc.UseCompactInts(true)
		if err := enc.Encode(s); err != nil {
			return 0, nil, err
		}
		return websocket.BinaryMessage, buf.Bytes(), nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return 0, nil, err
	}
	return websocket.TextMessage, data, nil
}
