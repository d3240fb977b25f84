package handler

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/middleware"
	"github.com/draftdeck/draftdeck-backend/internal/service"
)

// WorkspaceHandler handles workspace-related HTTP requests
type WorkspaceHandler struct {
	workspaceService *service.WorkspaceService
	logoService      *service.LogoService
	responder        *Responder
}

// NewWorkspaceHandler creates a new WorkspaceHandler
func NewWorkspaceHandler(workspaceService *service.WorkspaceService, logoService *service.LogoService, responder *Responder) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaceService: workspaceService,
		logoService:      logoService,
		responder:        responder,
	}
}

// CreateWorkspaceRequest represents the create workspace request body
type CreateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// UpdateWorkspaceRequest represents the update workspace request body
type UpdateWorkspaceRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

// CreateWorkspace handles POST /api/v1/workspaces
func (h *WorkspaceHandler) CreateWorkspace(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	var req CreateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("INVALID_BODY", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workspace, err := h.workspaceService.Create(userID, req.Name)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusCreated, "Workspace created successfully", workspace)
}

// ListWorkspaces handles GET /api/v1/workspaces
func (h *WorkspaceHandler) ListWorkspaces(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	workspaces, err := h.workspaceService.ListForUser(userID)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Successfully retrieved workspaces", map[string]interface{}{
		"workspaces": workspaces,
	})
}

// GetCurrentWorkspace handles GET /api/v1/workspaces/current-workspace
func (h *WorkspaceHandler) GetCurrentWorkspace(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}

	workspace, err := h.workspaceService.GetOwned(userID)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Successfully retrieved workspace", workspace)
}

// GetWorkspace handles GET /api/v1/workspaces/:workspaceId
func (h *WorkspaceHandler) GetWorkspace(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	detail, err := h.workspaceService.GetByID(userID, workspaceID)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Successfully retrieved workspace", detail)
}

// UpdateWorkspace handles PATCH /api/v1/workspaces/:workspaceId
func (h *WorkspaceHandler) UpdateWorkspace(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	var req UpdateWorkspaceRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("INVALID_BODY", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	workspace, err := h.workspaceService.Update(userID, workspaceID, req.Name)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Workspace updated successfully", workspace)
}

// GetStorageUsage handles GET /api/v1/workspaces/:workspaceId/storage
func (h *WorkspaceHandler) GetStorageUsage(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	usage, err := h.workspaceService.StorageUsage(userID, workspaceID)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Successfully retrieved storage usage", usage)
}

// UploadLogo handles POST /api/v1/workspaces/:workspaceId/logo
func (h *WorkspaceHandler) UploadLogo(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return domain.BadRequest("LOGO_FILE_REQUIRED", "A logo file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return domain.BadRequest("INVALID_BODY", "Could not read uploaded file")
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return domain.BadRequest("INVALID_BODY", "Could not read uploaded file")
	}

	workspace, err := h.logoService.Upload(c.Request().Context(), userID, workspaceID, data, fileHeader.Filename)
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Workspace logo uploaded successfully", workspace)
}

// requireUserID extracts the authenticated user ID or fails with 401
func requireUserID(c echo.Context) (string, error) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		return "", domain.Unauthorized("USER_NOT_AUTHENTICATED", "User not authenticated")
	}
	return userID, nil
}

// workspaceIDParam parses the :workspaceId path parameter
func workspaceIDParam(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("workspaceId"))
	if err != nil {
		return uuid.Nil, domain.BadRequest("INVALID_WORKSPACE_ID", "Workspace ID must be a valid UUID")
	}
	return id, nil
}
