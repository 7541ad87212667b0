package handler

import (
	"net/http"

	"github.com/dafibh/kasboek/kasboek-backend/internal/websocket"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WebSocketHandler upgrades change-feed connections
type WebSocketHandler struct {
	hub            *websocket.Hub
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, allowedOrigins []string) *WebSocketHandler {
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		allowedOrigins: originMap,
	}

	h.upgrader = ws.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     h.checkOrigin,
	}

	return h
}

// checkOrigin validates the request origin against allowed origins
func (h *WebSocketHandler) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		// Non-browser clients such as the CLI send no Origin header
		return true
	}

	if h.allowedOrigins[origin] {
		return true
	}

	log.Warn().
		Str("origin", origin).
		Msg("WebSocket connection rejected: origin not allowed")
	return false
}

// HandleWS handles WebSocket connection requests at GET /api/v1/ws. The optional entities
// query parameter limits the feed to a comma-separated list of entity types.
func (h *WebSocketHandler) HandleWS(c echo.Context) error {
	entities, err := websocket.ParseEntityTypes(c.QueryParam("entities"))
	if err != nil {
		return NewValidationError(c, "Invalid entities", []ValidationError{
			{Field: "entities", Message: err.Error()},
		})
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// The upgrader has already written the error response
		log.Debug().Err(err).Msg("WebSocket upgrade failed")
		return nil
	}

	client := websocket.NewClient(conn, h.hub, entities)
	h.hub.Register(client)

	log.Info().
		Str("client_id", client.ID()).
		Str("remote_ip", c.RealIP()).
		Msg("WebSocket client connected")

	go client.WritePump()
	go client.ReadPump()

	return nil
}
