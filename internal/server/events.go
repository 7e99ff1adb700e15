package server

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/voicebridge/voicebridge/internal/eventbus"
)

const (
	eventWriteTimeout   = 10 * time.Second
	eventSendBufferSize = 64
)

// eventMessage is the JSON frame sent to /events subscribers.
type eventMessage struct {
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
}

// eventHub fans bus events out to WebSocket clients. Slow clients lose
// events rather than stalling the bus; the feed is advisory, GetStatus is
// the source of truth.
type eventHub struct {
	logger   *log.Logger
	bus      *eventbus.Bus
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*eventClient
	subs    []*eventbus.Subscription
	closed  bool
	wg      sync.WaitGroup
}

type eventClient struct {
	id   string
	conn *websocket.Conn
	send chan eventMessage
	once sync.Once
}

func newEventHub(bus *eventbus.Bus, logger *log.Logger) *eventHub {
	if logger == nil {
		logger = log.Default()
	}
	h := &eventHub{
		logger:  logger,
		bus:     bus,
		clients: make(map[string]*eventClient),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Plaintext localhost trust boundary; the listener is not
			// meant to be exposed publicly.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}

	topics := []eventbus.Topic{
		eventbus.TopicConnectionStatus,
		eventbus.TopicPlaybackChanged,
		eventbus.TopicChatMessage,
		eventbus.TopicRosterChanged,
		eventbus.TopicBridgeLog,
	}
	for _, topic := range topics {
		sub := bus.Subscribe(topic, eventbus.WithSubscriptionName("events-feed"))
		h.subs = append(h.subs, sub)
		h.wg.Add(1)
		go h.forward(sub)
	}
	return h
}

func (h *eventHub) forward(sub *eventbus.Subscription) {
	defer h.wg.Done()
	for env := range sub.C() {
		h.broadcast(eventMessage{
			Type:      string(env.Topic),
			Source:    string(env.Source),
			Timestamp: env.Timestamp,
			Data:      env.Payload,
		})
	}
}

func (h *eventHub) broadcast(msg eventMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, client := range h.clients {
		select {
		case client.send <- msg:
		default:
			// Client is not keeping up; skip this event for it.
		}
	}
}

// ServeHTTP upgrades the request and streams events until the client leaves.
func (h *eventHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("[events] upgrade: %v", err)
		return
	}

	client := &eventClient{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan eventMessage, eventSendBufferSize),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[client.id] = client
	h.mu.Unlock()
	h.logger.Printf("[events] client %s connected", client.id)

	go h.writePump(client)
	go h.readPump(client)
}

func (h *eventHub) writePump(client *eventClient) {
	for msg := range client.send {
		client.conn.SetWriteDeadline(time.Now().Add(eventWriteTimeout))
		if err := client.conn.WriteJSON(msg); err != nil {
			h.drop(client)
			return
		}
	}
	client.conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
		time.Now().Add(eventWriteTimeout))
	client.conn.Close()
}

// readPump drains inbound frames so pings are answered; the feed itself is
// one-way.
func (h *eventHub) readPump(client *eventClient) {
	for {
		if _, _, err := client.conn.ReadMessage(); err != nil {
			h.drop(client)
			return
		}
	}
}

func (h *eventHub) drop(client *eventClient) {
	h.mu.Lock()
	_, present := h.clients[client.id]
	delete(h.clients, client.id)
	h.mu.Unlock()

	client.once.Do(func() { close(client.send) })
	client.conn.Close()
	if present {
		h.logger.Printf("[events] client %s disconnected", client.id)
	}
}

// Close detaches from the bus and disconnects every client.
func (h *eventHub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	clients := make([]*eventClient, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.clients = make(map[string]*eventClient)
	subs := h.subs
	h.subs = nil
	h.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
	h.wg.Wait()
	for _, c := range clients {
		c.once.Do(func() { close(c.send) })
	}
}
