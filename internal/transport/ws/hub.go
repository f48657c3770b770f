package ws

import (
	"encoding/json"
	"sync"

	"github.com/outliner-coach/letmeknowme/internal/logger"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	// MsgStatus is sent once when a watcher connects
	MsgStatus           MessageType = "status"
	MsgResponseReceived MessageType = "response_received"
	MsgError            MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans report events out to the requesters watching them
type Hub struct {
	// reportID -> watchers
	watchers map[string]map[*Connection]struct{}

	mu sync.RWMutex

	// Channels for coordination
	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *BroadcastMessage
	done       chan struct{}
	closeOnce  sync.Once

	log *logger.Logger
}

// Connection represents a WebSocket connection
type Connection struct {
	ReportID string
	Send     chan []byte
	Hub      *Hub
}

// BroadcastMessage is a message to broadcast
type BroadcastMessage struct {
	ReportID string
	Message  *Message
}

// NewHub creates a new WebSocket hub and starts its loop
func NewHub(log *logger.Logger) *Hub {
	h := &Hub{
		watchers:   make(map[string]map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *BroadcastMessage, 256),
		done:       make(chan struct{}),
		log:        log.Component("ws.hub"),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			if h.watchers[conn.ReportID] == nil {
				h.watchers[conn.ReportID] = make(map[*Connection]struct{})
			}
			h.watchers[conn.ReportID][conn] = struct{}{}
			h.mu.Unlock()
			h.log.WithField("report_id", conn.ReportID).Debug("watcher connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if conns, ok := h.watchers[conn.ReportID]; ok {
				if _, ok := conns[conn]; ok {
					delete(conns, conn)
					close(conn.Send)
					if len(conns) == 0 {
						delete(h.watchers, conn.ReportID)
					}
					h.log.WithField("report_id", conn.ReportID).Debug("watcher disconnected")
				}
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			data, err := json.Marshal(msg.Message)
			if err != nil {
				h.log.WithError(err).Warn("broadcast marshal failed")
				continue
			}
			h.mu.RLock()
			for conn := range h.watchers[msg.ReportID] {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.watchers {
				for conn := range conns {
					close(conn.Send)
				}
			}
			h.watchers = make(map[string]map[*Connection]struct{})
			h.mu.Unlock()
			return
		}
	}
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	select {
	case h.register <- conn:
	case <-h.done:
		close(conn.Send)
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Close stops the hub and closes every watcher's send channel
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.done) })
}

// WatcherCount returns how many connections watch reportID
func (h *Hub) WatcherCount(reportID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[reportID])
}

// BroadcastToReport sends a message to everyone watching a report (implements service.Broadcaster)
func (h *Hub) BroadcastToReport(reportID string, msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.log.WithError(err).Warn("broadcast payload marshal failed")
		return
	}
	select {
	case h.broadcast <- &BroadcastMessage{
		ReportID: reportID,
		Message: &Message{
			Type:    MessageType(msgType),
			Payload: data,
		},
	}:
	case <-h.done:
	}
}
