package handler

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/middleware"
	"github.com/draftdeck/draftdeck-backend/internal/testutil"
)

// setupAuthContext injects an authenticated user ID the way the auth
// middleware would
func setupAuthContext(c echo.Context, userID string) {
	ctx := context.WithValue(c.Request().Context(), middleware.UserIDKey, userID)
	c.SetRequest(c.Request().WithContext(ctx))
}

// serve invokes the handler and renders any returned error through the
// centralized error handler, mirroring the echo pipeline
func serve(h echo.HandlerFunc, c echo.Context, responder *Responder) {
	if err := h(c); err != nil {
		responder.ErrorHandler()(err, c)
	}
}

// newTestEcho creates an echo instance with the request validator installed
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewRequestValidator()
	return e
}

// workspaceFixture bundles the mocks behind a seeded owner and workspace
type workspaceFixture struct {
	workspaceRepo *testutil.MockWorkspaceRepository
	memberRepo    *testutil.MockWorkspaceMemberRepository
	userRepo      *testutil.MockUserRepository
	tierRepo      *testutil.MockTierRepository
	workspaceID   uuid.UUID
}

func newWorkspaceFixture(ownerID string) *workspaceFixture {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	memberRepo := testutil.NewMockWorkspaceMemberRepository(workspaceRepo)
	userRepo := testutil.NewMockUserRepository()
	tierRepo := testutil.NewMockTierRepository()

	tier := &domain.Tier{
		ID:                       uuid.New(),
		Name:                     domain.TierFree,
		StorageLimitBytes:        1 << 30,
		FileUploadLimitBytes:     5 << 20,
		MembersPerWorkspaceLimit: 5,
	}
	tierRepo.AddTier(tier)
	first := "Test"
	userRepo.AddUser(&domain.User{ID: ownerID, Email: ownerID + "@example.com", FirstName: &first, TierID: tier.ID})

	workspaceID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: workspaceID, Name: "Test's Workspace", Slug: "test", OwnerID: ownerID})
	memberRepo.AddMember(&domain.WorkspaceMember{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      ownerID,
		Permission:  domain.PermissionFullAccess,
		JoinedAt:    time.Now(),
	})

	return &workspaceFixture{
		workspaceRepo: workspaceRepo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		tierRepo:      tierRepo,
		workspaceID:   workspaceID,
	}
}
