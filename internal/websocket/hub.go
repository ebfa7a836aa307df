package websocket

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"yatta-helin-be/internal/pkg/logger"
	"yatta-helin-be/pkg/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "helin_operator_events"

// Hub fans assistant events out to every connected operator console.
// All operators see all events; there is no per-operator targeting.
type Hub struct {
	// OperatorID -> connections (an operator can keep several tabs open)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, nil for single instance
	rdb *redis.Client

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.OperatorID] = append(h.clients[client.OperatorID], client)
			h.mu.Unlock()
			h.logger.Info("Hub", "Operator connected", map[string]interface{}{"operator_id": client.OperatorID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.OperatorID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.OperatorID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.OperatorID]) == 0 {
					delete(h.clients, client.OperatorID)
					h.logger.Info("Hub", "Operator disconnected", map[string]interface{}{"operator_id": client.OperatorID})
				}
			}
			h.mu.Unlock()
		}
	}
}

// Broadcast pushes an assistant event to every connected operator, locally
// and through Redis to the other instances.
func (h *Hub) Broadcast(event events.Event) {
	data, _ := json.Marshal(map[string]interface{}{
		"type":      event.EventType(),
		"data":      event.Payload(),
		"timestamp": event.Timestamp().Format(time.RFC3339),
	})

	h.broadcastLocal(data)

	if h.rdb != nil {
		payload, _ := json.Marshal(map[string]interface{}{
			"message": json.RawMessage(data),
		})
		h.rdb.Publish(context.Background(), clusterChannel, payload)
	}
}

func (h *Hub) broadcastLocal(data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, clients := range h.clients {
		for _, client := range clients {
			select {
			case client.Send <- data:
			default:
				// The unregister branch in Run owns close(client.Send).
				// Closing here too would close the channel twice once the
				// client drains from the queue.
				h.logger.Warn("Hub", "Operator send buffer full, dropping connection", map[string]interface{}{"operator_id": client.OperatorID})
				go func(c *Client) { h.unregister <- c }(client)
			}
		}
	}
}

func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var payload struct {
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &payload); err != nil {
			log.Printf("Redis msg parse error: %v", err)
			continue
		}
		h.broadcastLocal(payload.Message)
	}
}
