package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/service"
)

// MemberHandler handles workspace membership HTTP requests
type MemberHandler struct {
	memberService *service.MemberService
	responder     *Responder
}

// NewMemberHandler creates a new MemberHandler
func NewMemberHandler(memberService *service.MemberService, responder *Responder) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
		responder:     responder,
	}
}

// AddMemberRequest represents the add member request body
type AddMemberRequest struct {
	UserToAddID string `json:"userToAddId" validate:"required"`
	Permission  string `json:"permission" validate:"required,oneof=FULL_ACCESS CAN_EDIT CAN_VIEW READ_ONLY"`
}

// UpdatePermissionRequest represents the update permission request body
type UpdatePermissionRequest struct {
	NewPermission string `json:"newPermission" validate:"required,oneof=FULL_ACCESS CAN_EDIT CAN_VIEW READ_ONLY"`
}

// MemberUserResponse is the nested user profile in member listings
type MemberUserResponse struct {
	ID          string  `json:"id"`
	Email       string  `json:"email"`
	FullName    string  `json:"fullName"`
	AvatarImage *string `json:"avatarImage"`
}

// MemberResponse represents a workspace member in API responses
type MemberResponse struct {
	ID          string             `json:"id"`
	User        MemberUserResponse `json:"user"`
	Permissions domain.Permission  `json:"permissions"`
	IsOwner     bool               `json:"isOwner"`
	JoinedAt    time.Time          `json:"joinedAt"`
}

// ListMembers handles GET /api/v1/workspaces/:workspaceId/members
func (h *MemberHandler) ListMembers(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	members, err := h.memberService.List(userID, workspaceID)
	if err != nil {
		return err
	}

	resp := make([]MemberResponse, 0, len(members))
	for _, m := range members {
		resp = append(resp, MemberResponse{
			ID: m.UserID,
			User: MemberUserResponse{
				ID:          m.UserID,
				Email:       m.Email,
				FullName:    m.FullName(),
				AvatarImage: m.AvatarURL,
			},
			Permissions: m.Permission,
			IsOwner:     m.IsOwner,
			JoinedAt:    m.JoinedAt,
		})
	}

	return h.responder.OK(c, http.StatusOK, "Successfully retrieved workspace members", map[string]interface{}{
		"members": resp,
	})
}

// AddMember handles POST /api/v1/workspaces/:workspaceId/members
func (h *MemberHandler) AddMember(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	var req AddMemberRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("INVALID_BODY", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.memberService.Add(userID, workspaceID, req.UserToAddID, domain.Permission(req.Permission))
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusCreated, "Member added to workspace successfully", map[string]interface{}{
		"member": member,
	})
}

// UpdatePermission handles PATCH /api/v1/workspaces/:workspaceId/members/:memberId
func (h *MemberHandler) UpdatePermission(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}
	memberID := c.Param("memberId")
	if memberID == "" {
		return domain.BadRequest("MEMBER_ID_REQUIRED", "Member ID is required")
	}

	var req UpdatePermissionRequest
	if err := c.Bind(&req); err != nil {
		return domain.BadRequest("INVALID_BODY", "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	member, err := h.memberService.UpdatePermission(userID, workspaceID, memberID, domain.Permission(req.NewPermission))
	if err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Member permission updated successfully", map[string]interface{}{
		"member": member,
	})
}

// RemoveMember handles DELETE /api/v1/workspaces/:workspaceId/members/:memberId
func (h *MemberHandler) RemoveMember(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}
	memberID := c.Param("memberId")
	if memberID == "" {
		return domain.BadRequest("MEMBER_ID_REQUIRED", "Member ID is required")
	}

	if err := h.memberService.Remove(userID, workspaceID, memberID); err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Member removed from workspace successfully", nil)
}

// LeaveWorkspace handles PATCH /api/v1/workspaces/:workspaceId/leave
func (h *MemberHandler) LeaveWorkspace(c echo.Context) error {
	userID, err := requireUserID(c)
	if err != nil {
		return err
	}
	workspaceID, err := workspaceIDParam(c)
	if err != nil {
		return err
	}

	if err := h.memberService.Leave(userID, workspaceID); err != nil {
		return err
	}

	return h.responder.OK(c, http.StatusOK, "Left workspace successfully", nil)
}
