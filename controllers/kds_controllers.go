package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/foodpoint-pos/kds"
	"github.com/yeremiapane/foodpoint-pos/utils"
)

type EventsController struct {
	hub      *kds.Hub
	upgrader websocket.Upgrader
}

func NewEventsController(hub *kds.Hub, allowedOrigin string) *EventsController {
	return &EventsController{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

// Stream -> websocket feed of order, menu and sales events
func (ec *EventsController) Stream(c *gin.Context) {
	ws, err := ec.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.WithError(err).Warn("websocket upgrade failed")
		return
	}

	ec.hub.Register(ws)

	// clients only listen; reading keeps the close handshake working
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	ec.hub.Unregister(ws)
}
