package ws

import (
	"log"
	"net/http"

	"backend/middlewares"
	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// OrderHub fans checkout events out to connected vendor clients.
// Delivery is best-effort; a vendor that is offline simply misses the
// push and sees the order in its order list instead.
type OrderHub struct {
	clients    map[uint]map[*websocket.Conn]bool // vendorID -> set of clients, owned by Run
	broadcast  chan vendorEvent
	register   chan subscription
	unregister chan subscription
}

type subscription struct {
	Conn     *websocket.Conn
	VendorID uint
}

type vendorEvent struct {
	VendorID uint
	Event    services.OrderCreatedEvent
}

func NewOrderHub() *OrderHub {
	return &OrderHub{
		clients:    make(map[uint]map[*websocket.Conn]bool),
		broadcast:  make(chan vendorEvent),
		register:   make(chan subscription),
		unregister: make(chan subscription),
	}
}

func (h *OrderHub) Run() {
	for {
		select {
		case sub := <-h.register:
			if h.clients[sub.VendorID] == nil {
				h.clients[sub.VendorID] = make(map[*websocket.Conn]bool)
			}
			h.clients[sub.VendorID][sub.Conn] = true

		case sub := <-h.unregister:
			if _, ok := h.clients[sub.VendorID][sub.Conn]; ok {
				delete(h.clients[sub.VendorID], sub.Conn)
				sub.Conn.Close()
			}

		case ev := <-h.broadcast:
			for conn := range h.clients[ev.VendorID] {
				if err := conn.WriteJSON(ev.Event); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients[ev.VendorID], conn)
				}
			}
		}
	}
}

// OrderCreated implements services.OrderNotifier.
func (h *OrderHub) OrderCreated(vendorIDs []uint, event services.OrderCreatedEvent) {
	for _, id := range vendorIDs {
		h.broadcast <- vendorEvent{VendorID: id, Event: event}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWS upgrades GET /vendor/orders/ws for the authenticated vendor.
func (h *OrderHub) HandleWS(c *gin.Context) {
	p, ok := middlewares.GetPrincipal(c)
	if !ok || p.Kind != services.PrincipalVendor {
		resp.Forbidden(c, "vendor account required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}

	sub := subscription{Conn: conn, VendorID: p.VendorID}
	h.register <- sub

	// the feed is push-only; reads just detect the close
	go func() {
		defer func() { h.unregister <- sub }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
