package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/draftdeck/draftdeck-backend/internal/middleware"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(
	e *echo.Echo,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	webhookHandler *WebhookHandler,
	workspaceHandler *WorkspaceHandler,
	memberHandler *MemberHandler,
	websocketHandler *WebSocketHandler,
) {
	// Identity webhook (unauthenticated, signature-verified, rate-limited)
	webhooks := e.Group("/webhooks")
	webhooks.Use(middleware.RateLimitMiddleware(rateLimiter))
	webhooks.POST("/clerk", webhookHandler.HandleClerkWebhook)

	// API version 1
	api := e.Group("/api/v1")

	// Workspace routes (protected)
	workspaces := api.Group("/workspaces")
	workspaces.Use(authMiddleware.Authenticate())
	workspaces.POST("", workspaceHandler.CreateWorkspace)
	workspaces.GET("", workspaceHandler.ListWorkspaces)
	workspaces.GET("/current-workspace", workspaceHandler.GetCurrentWorkspace)
	workspaces.GET("/:workspaceId", workspaceHandler.GetWorkspace)
	workspaces.PATCH("/:workspaceId", workspaceHandler.UpdateWorkspace)
	workspaces.GET("/:workspaceId/storage", workspaceHandler.GetStorageUsage)
	workspaces.POST("/:workspaceId/logo", workspaceHandler.UploadLogo)

	// Membership routes (protected)
	workspaces.GET("/:workspaceId/members", memberHandler.ListMembers)
	workspaces.POST("/:workspaceId/members", memberHandler.AddMember)
	workspaces.PATCH("/:workspaceId/members/:memberId", memberHandler.UpdatePermission)
	workspaces.DELETE("/:workspaceId/members/:memberId", memberHandler.RemoveMember)
	workspaces.PATCH("/:workspaceId/leave", memberHandler.LeaveWorkspace)

	// Workspace event stream (protected, token passed as query param)
	workspaces.GET("/:workspaceId/events", websocketHandler.HandleEvents)
}
