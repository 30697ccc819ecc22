package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"assuredgig/internal/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

const fanoutChannel = "assuredgig:realtime"

// ChannelNotifications is the stream every user's notification socket listens on.
const ChannelNotifications = "notifications"

// ContractChannel names the chat stream of one contract.
func ContractChannel(contractID uuid.UUID) string {
	return "contract:" + contractID.String()
}

// Envelope is the frame written to websocket clients.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// delivery is what travels over Redis between instances.
type delivery struct {
	UserID  uuid.UUID       `json:"user_id"`
	Channel string          `json:"channel"`
	Payload json.RawMessage `json:"payload"`
}

// Hub tracks websocket clients on this instance. When a Redis client is
// configured, every send goes through Redis pub/sub so that users connected
// to other instances receive it too.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex

	rdb     *redis.Client
	metrics *metrics.Metrics
	done    chan struct{}
}

func NewHub(rdb *redis.Client, m *metrics.Metrics) *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		metrics:    m,
		done:       make(chan struct{}),
	}
}

func (h *Hub) RegisterClient(client *Client) {
	select {
	case h.register <- client:
	case <-h.done:
	}
}

func (h *Hub) UnregisterClient(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// SendToUser delivers an event to the user's sockets subscribed to channel.
func (h *Hub) SendToUser(ctx context.Context, userID uuid.UUID, channel, eventType string, data interface{}) {
	payload, err := json.Marshal(Envelope{Type: eventType, Data: data})
	if err != nil {
		log.WithError(err).Errorf("Hub.SendToUser: error marshaling %s payload", eventType)
		return
	}

	if h.rdb == nil {
		h.deliver(userID, channel, payload)
		return
	}

	msg, err := json.Marshal(delivery{UserID: userID, Channel: channel, Payload: payload})
	if err != nil {
		log.WithError(err).Error("Hub.SendToUser: error marshaling delivery")
		return
	}
	if err := h.rdb.Publish(ctx, fanoutChannel, msg).Err(); err != nil {
		log.WithError(err).Warn("Hub.SendToUser: redis publish failed, delivering locally")
		h.deliver(userID, channel, payload)
	}
}

// SendToContract delivers an event to both participants' sockets on the contract's channel.
func (h *Hub) SendToContract(ctx context.Context, contractID, clientID, freelancerID uuid.UUID, eventType string, data interface{}) {
	channel := ContractChannel(contractID)
	h.SendToUser(ctx, clientID, channel, eventType, data)
	h.SendToUser(ctx, freelancerID, channel, eventType, data)
}

// ConnectedClients returns the number of sockets on this instance.
func (h *Hub) ConnectedClients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) deliver(userID uuid.UUID, channel string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, client := range h.clients {
		if client.UserID != userID || client.Channel != channel {
			continue
		}
		select {
		case client.send <- payload:
		default:
			// Slow consumer; drop rather than block the sender.
			log.WithField("client_id", client.ID).Warn("Hub: client send buffer full, dropping frame")
		}
	}
}

// Run processes registrations until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribe(ctx)
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()
			h.metrics.WebsocketOpened()
			log.WithFields(log.Fields{"client_id": client.ID, "user_id": client.UserID, "channel": client.Channel}).Debug("Client registered")

		case client := <-h.unregister:
			h.mu.Lock()
			if old, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(old.send)
				h.metrics.WebsocketClosed()
				log.WithField("client_id", client.ID).Debug("Client unregistered")
			}
			h.mu.Unlock()

		case <-ctx.Done():
			close(h.done)
			h.mu.Lock()
			for id, client := range h.clients {
				delete(h.clients, id)
				close(client.send)
				h.metrics.WebsocketClosed()
			}
			h.mu.Unlock()
			log.Info("Realtime hub stopped")
			return
		}
	}
}

func (h *Hub) subscribe(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, fanoutChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var d delivery
			if err := json.Unmarshal([]byte(msg.Payload), &d); err != nil {
				log.WithError(err).Warn("Hub.subscribe: dropping malformed delivery")
				continue
			}
			h.deliver(d.UserID, d.Channel, d.Payload)
		}
	}
}
