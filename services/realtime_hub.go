package services

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/5hjiwoo/foodrecommend/logger"
)

const defaultWriteWait = 10 * time.Second

type WSClient struct {
	UserID uint
	Conn   *websocket.Conn
	mu     sync.Mutex // gorilla connections allow one concurrent writer
}

func (c *WSClient) write(messageType int, data []byte, wait time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.Conn.SetWriteDeadline(time.Now().Add(wait)); err != nil {
		return err
	}
	return c.Conn.WriteMessage(messageType, data)
}

func (c *WSClient) Ping() error {
	return c.write(websocket.PingMessage, nil, defaultWriteWait)
}

type RealtimeHub struct {
	mu        sync.RWMutex
	clients   map[uint]map[*WSClient]struct{}
	writeWait time.Duration
}

func NewRealtimeHub() *RealtimeHub {
	return &RealtimeHub{
		clients:   make(map[uint]map[*WSClient]struct{}),
		writeWait: defaultWriteWait,
	}
}

func (h *RealtimeHub) Register(c *WSClient) {
	h.mu.Lock()
	if h.clients[c.UserID] == nil {
		h.clients[c.UserID] = make(map[*WSClient]struct{})
	}
	h.clients[c.UserID][c] = struct{}{}
	h.mu.Unlock()
}

func (h *RealtimeHub) Unregister(c *WSClient) {
	h.mu.Lock()
	if set := h.clients[c.UserID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.UserID)
		}
	}
	h.mu.Unlock()
	_ = c.Conn.Close()
}

// Connections returns how many sockets userID currently has open.
func (h *RealtimeHub) Connections(userID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}

// Broadcast sends payload to every socket of userID. Writes happen outside
// the hub lock and a socket that misses the write deadline is dropped.
func (h *RealtimeHub) Broadcast(userID uint, payload any) {
	msg, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to encode realtime payload", "error", err)
		return
	}

	h.mu.RLock()
	targets := make([]*WSClient, 0, len(h.clients[userID]))
	for c := range h.clients[userID] {
		targets = append(targets, c)
	}
	h.mu.RUnlock()

	for _, c := range targets {
		if err := c.write(websocket.TextMessage, msg, h.writeWait); err != nil {
			logger.Debug("Realtime write failed, dropping client", "user_id", userID, "error", err)
			h.Unregister(c)
		}
	}
}
