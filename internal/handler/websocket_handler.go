package handler

import (
	"net/http"

	"github.com/google/uuid"
	ws "github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/draftdeck/draftdeck-backend/internal/websocket"
)

// MembershipVerifier checks that a user belongs to a workspace before the
// connection is upgraded
type MembershipVerifier interface {
	VerifyMembership(userID string, workspaceID uuid.UUID) error
}

// WebSocketHandler handles workspace event stream connections
type WebSocketHandler struct {
	hub            *websocket.Hub
	verifier       MembershipVerifier
	allowedOrigins map[string]bool
	upgrader       ws.Upgrader
}

// NewWebSocketHandler creates a new WebSocketHandler
func NewWebSocketHandler(hub *websocket.Hub, verifier MembershipVerifier, allowedOrigins []string) *WebSocketHandler {
	originMap := make(map[string]bool)
	for _, origin := range allowedOrigins {
		originMap[origin] = true
	}

	h := &WebSocketHandler{
		hub:            hub,
		verifier:       verifier,
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
		// Same-origin or non-browser clients
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

// HandleEvents handles GET /api/v1/workspaces/:workspaceId/events. The auth
// middleware has already validated the token (query param for websockets);
// membership is checked before the upgrade.
func (h *WebSocketHandler) HandleEvents(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	if err := h.verifier.VerifyMembership(userID, workspaceID); err != nil {
		log.Debug().Err(err).Str("user_id", userID).Msg("WebSocket connection rejected")
		return err
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	client := websocket.NewClient(conn, workspaceID, userID, h.hub)
	h.hub.Register(client)

	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("user_id", userID).
		Str("client_id", client.ID()).
		Msg("WebSocket client connected")

	go client.WritePump()
	go client.ReadPump()

	return nil
}
