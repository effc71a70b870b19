package events

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/dkurnia/tabledesk/utils"
)

// Event types pushed to connected screens.
const (
	EventTableCreate       = "table_create"
	EventTableUpdate       = "table_update"
	EventTableDelete       = "table_delete"
	EventWalkInSeated      = "walk_in_seated"
	EventReservationCreate = "reservation_create"
	EventReservationUpdate = "reservation_update"
	EventReservationDelete = "reservation_delete"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// hub holds every connected front-of-house screen. All screens get
// every event; the screen name is kept for logging only.
type hub struct {
	clients map[*websocket.Conn]string // conn -> screen
	mutex   sync.Mutex
}

var screens = hub{
	clients: make(map[*websocket.Conn]string),
}

// RegisterClient adds a screen connection to the broadcast set.
func RegisterClient(conn *websocket.Conn, screen string) {
	screens.mutex.Lock()
	defer screens.mutex.Unlock()
	screens.clients[conn] = screen
}

// UnregisterClient drops a connection and closes it.
func UnregisterClient(conn *websocket.Conn) {
	screens.mutex.Lock()
	defer screens.mutex.Unlock()
	delete(screens.clients, conn)
	conn.Close()
}

// Broadcast fans a message out to every connected screen. Write
// failures are logged and skipped; the read loop in the ws handler
// notices the dead connection and unregisters it.
func Broadcast(msg Message) {
	screens.mutex.Lock()
	defer screens.mutex.Unlock()

	data, err := json.Marshal(msg)
	if err != nil {
		utils.ErrorLogger.Printf("events: marshal %s: %v", msg.Event, err)
		return
	}

	for conn, screen := range screens.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utils.ErrorLogger.Printf("events: send %s to %s screen: %v", msg.Event, screen, err)
		}
	}
}
