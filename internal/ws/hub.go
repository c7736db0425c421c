package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/camai-video/gateway/internal/domain"
)

// Hub fans live messages out to connected dashboard clients, partitioned by
// organization. A message published for one organization never reaches
// clients of another.
type Hub struct {
	clients    map[*Client]bool
	orgs       map[uuid.UUID]map[*Client]bool
	broadcast  chan Message
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		orgs:       make(map[uuid.UUID]map[*Client]bool),
		broadcast:  make(chan Message, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.broadcastToOrg(msg)
		}
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true

	if h.orgs[client.orgID] == nil {
		h.orgs[client.orgID] = make(map[*Client]bool)
	}
	h.orgs[client.orgID][client] = true
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		delete(h.orgs[client.orgID], client)

		if len(h.orgs[client.orgID]) == 0 {
			delete(h.orgs, client.orgID)
		}

		close(client.send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		close(client.send)
	}
	h.clients = make(map[*Client]bool)
	h.orgs = make(map[uuid.UUID]map[*Client]bool)
}

func (h *Hub) broadcastToOrg(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients := h.orgs[msg.OrganizationID]
	if clients == nil {
		return
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return
	}

	for client := range clients {
		select {
		case client.send <- payload:
		default:
			// Slow consumer, drop the connection rather than the hub
			close(client.send)
			delete(h.clients, client)
			delete(h.orgs[msg.OrganizationID], client)
		}
	}
}

// Publish queues a message for every client of the given organization.
// Non-blocking: when the hub is saturated the message is dropped.
func (h *Hub) Publish(orgID uuid.UUID, msgType MessageType, data interface{}) {
	msg := Message{
		OrganizationID: orgID,
		Type:           msgType,
		Data:           data,
		Timestamp:      time.Now(),
	}

	select {
	case h.broadcast <- msg:
	default:
	}
}

// EventCreated pushes a freshly recorded event to the owning organization's
// dashboard clients.
func (h *Hub) EventCreated(event *domain.Event) {
	if event == nil {
		return
	}
	h.Publish(event.OrganizationID, MessageEventDetected, event)
}

// AlertTriggered pushes an escalated alert to the owning organization's
// dashboard clients.
func (h *Hub) AlertTriggered(orgID uuid.UUID, data map[string]interface{}) {
	h.Publish(orgID, MessageAlertTriggered, data)
}

func (h *Hub) ConnectedClients(orgID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.orgs[orgID])
}
