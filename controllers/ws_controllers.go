package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/dkurnia/tabledesk/events"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // single shared screen on a trusted network
	},
}

// ScreenHandler -> websocket endpoint the front-of-house screens
// connect to for live table/reservation/stats updates.
func ScreenHandler(c *gin.Context) {
	screen := c.Param("screen")
	if screen != "floor" && screen != "host" && screen != "manager" {
		c.AbortWithStatus(http.StatusForbidden)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	events.RegisterClient(ws, screen)

	// Screens never send anything; the loop just detects disconnect.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	events.UnregisterClient(ws)
}
