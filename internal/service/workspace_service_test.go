package service

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/testutil"
	"github.com/draftdeck/draftdeck-backend/internal/websocket"
)

func newWorkspaceServiceFixture() (*WorkspaceService, *testutil.MockWorkspaceRepository, *testutil.MockWorkspaceMemberRepository, *testutil.MockUserRepository, *testutil.MockTierRepository, *testutil.CapturingPublisher) {
	workspaceRepo := testutil.NewMockWorkspaceRepository()
	memberRepo := testutil.NewMockWorkspaceMemberRepository(workspaceRepo)
	userRepo := testutil.NewMockUserRepository()
	tierRepo := testutil.NewMockTierRepository()
	publisher := &testutil.CapturingPublisher{}
	svc := NewWorkspaceService(workspaceRepo, memberRepo, userRepo, tierRepo, publisher)
	return svc, workspaceRepo, memberRepo, userRepo, tierRepo, publisher
}

func seedUserWithTier(userRepo *testutil.MockUserRepository, tierRepo *testutil.MockTierRepository, userID string) *domain.Tier {
	tier := &domain.Tier{
		ID:                       uuid.New(),
		Name:                     domain.TierFree,
		StorageLimitBytes:        1 << 30,
		FileUploadLimitBytes:     5 << 20,
		MembersPerWorkspaceLimit: 5,
	}
	tierRepo.AddTier(tier)
	first := "Test"
	userRepo.AddUser(&domain.User{
		ID:        userID,
		Email:     userID + "@example.com",
		FirstName: &first,
		TierID:    tier.ID,
	})
	return tier
}

func TestCreateWorkspace_Success(t *testing.T) {
	svc, _, _, userRepo, tierRepo, _ := newWorkspaceServiceFixture()
	seedUserWithTier(userRepo, tierRepo, "user_1")

	workspace, err := svc.Create("user_1", "Acme")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if workspace.Name != "Acme's Workspace" {
		t.Errorf("Expected name \"Acme's Workspace\", got %q", workspace.Name)
	}
	if workspace.Slug != "acme" {
		t.Errorf("Expected slug 'acme', got %q", workspace.Slug)
	}
	if workspace.OwnerID != "user_1" {
		t.Errorf("Expected owner 'user_1', got %q", workspace.OwnerID)
	}
}

func TestCreateWorkspace_SecondWorkspaceRejected(t *testing.T) {
	svc, _, _, userRepo, tierRepo, _ := newWorkspaceServiceFixture()
	seedUserWithTier(userRepo, tierRepo, "user_1")

	if _, err := svc.Create("user_1", "First"); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	_, err := svc.Create("user_1", "Second")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "WORKSPACE_ALREADY_EXISTS" {
		t.Errorf("Expected code WORKSPACE_ALREADY_EXISTS, got %q", domain.CodeOf(err))
	}
}

func TestCreateWorkspace_SlugCollisionGetsSuffix(t *testing.T) {
	svc, workspaceRepo, _, userRepo, tierRepo, _ := newWorkspaceServiceFixture()
	seedUserWithTier(userRepo, tierRepo, "user_1")
	workspaceRepo.AddWorkspace(&domain.Workspace{
		ID:      uuid.New(),
		Name:    "Acme's Workspace",
		Slug:    "acme",
		OwnerID: "user_other",
	})

	workspace, err := svc.Create("user_1", "Acme")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.HasPrefix(workspace.Slug, "acme-") {
		t.Errorf("Expected slug with 'acme-' prefix, got %q", workspace.Slug)
	}
	if len(workspace.Slug) != len("acme-")+8 {
		t.Errorf("Expected 8-character suffix, got %q", workspace.Slug)
	}
}

func TestCreateWorkspace_EmptyNameRejected(t *testing.T) {
	svc, _, _, _, _, _ := newWorkspaceServiceFixture()

	_, err := svc.Create("user_1", "   ")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "WORKSPACE_NAME_REQUIRED" {
		t.Errorf("Expected code WORKSPACE_NAME_REQUIRED, got %q", domain.CodeOf(err))
	}
}

func TestCreateWorkspace_NameTooLongRejected(t *testing.T) {
	svc, _, _, _, _, _ := newWorkspaceServiceFixture()

	_, err := svc.Create("user_1", strings.Repeat("a", domain.MaxWorkspaceNameLength+1))
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "WORKSPACE_NAME_TOO_LONG" {
		t.Errorf("Expected code WORKSPACE_NAME_TOO_LONG, got %q", domain.CodeOf(err))
	}
}

func TestListForUser_EmptyIsNotFound(t *testing.T) {
	svc, _, _, _, _, _ := newWorkspaceServiceFixture()

	_, err := svc.ListForUser("user_1")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("Expected kind NOT_FOUND, got %q", domain.KindOf(err))
	}
}

func TestListForUser_ReturnsMemberships(t *testing.T) {
	svc, workspaceRepo, memberRepo, _, _, _ := newWorkspaceServiceFixture()
	wsID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: wsID, Name: "Acme's Workspace", Slug: "acme", OwnerID: "user_2"})
	memberRepo.AddMember(&domain.WorkspaceMember{
		ID:          uuid.New(),
		WorkspaceID: wsID,
		UserID:      "user_1",
		Permission:  domain.PermissionCanEdit,
		JoinedAt:    time.Now(),
	})

	workspaces, err := svc.ListForUser("user_1")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(workspaces) != 1 {
		t.Fatalf("Expected 1 workspace, got %d", len(workspaces))
	}
	if workspaces[0].Permission != domain.PermissionCanEdit {
		t.Errorf("Expected permission CAN_EDIT, got %q", workspaces[0].Permission)
	}
}

func TestGetByID_NonMemberRejected(t *testing.T) {
	svc, workspaceRepo, _, _, _, _ := newWorkspaceServiceFixture()
	wsID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: wsID, Name: "Acme's Workspace", Slug: "acme", OwnerID: "user_2"})

	_, err := svc.GetByID("user_1", wsID)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.KindOf(err) != domain.KindUnauthorized {
		t.Errorf("Expected kind UNAUTHORIZED, got %q", domain.KindOf(err))
	}
}

func TestGetByID_ReturnsDetail(t *testing.T) {
	svc, workspaceRepo, memberRepo, userRepo, tierRepo, _ := newWorkspaceServiceFixture()
	seedUserWithTier(userRepo, tierRepo, "user_1")
	wsID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: wsID, Name: "Test's Workspace", Slug: "test", OwnerID: "user_1"})
	memberRepo.AddMember(&domain.WorkspaceMember{
		ID:          uuid.New(),
		WorkspaceID: wsID,
		UserID:      "user_1",
		Permission:  domain.PermissionFullAccess,
		JoinedAt:    time.Now(),
	})

	detail, err := svc.GetByID("user_1", wsID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if detail.Owner.ID != "user_1" {
		t.Errorf("Expected owner 'user_1', got %q", detail.Owner.ID)
	}
	if detail.MemberCount != 1 {
		t.Errorf("Expected member count 1, got %d", detail.MemberCount)
	}
	if detail.Permission != domain.PermissionFullAccess {
		t.Errorf("Expected permission FULL_ACCESS, got %q", detail.Permission)
	}
}

func TestUpdateWorkspace_NonOwnerRejected(t *testing.T) {
	svc, workspaceRepo, memberRepo, _, _, _ := newWorkspaceServiceFixture()
	wsID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: wsID, Name: "Acme's Workspace", Slug: "acme", OwnerID: "user_2"})
	memberRepo.AddMember(&domain.WorkspaceMember{
		ID:          uuid.New(),
		WorkspaceID: wsID,
		UserID:      "user_1",
		Permission:  domain.PermissionCanEdit,
		JoinedAt:    time.Now(),
	})

	_, err := svc.Update("user_1", wsID, "Renamed")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "WORKSPACE_OWNER_REQUIRED" {
		t.Errorf("Expected code WORKSPACE_OWNER_REQUIRED, got %q", domain.CodeOf(err))
	}
}

func TestUpdateWorkspace_SlugCollisionRejected(t *testing.T) {
	svc, workspaceRepo, _, _, _, _ := newWorkspaceServiceFixture()
	wsID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: wsID, Name: "Acme's Workspace", Slug: "acme", OwnerID: "user_1"})
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: uuid.New(), Name: "Taken", Slug: "taken", OwnerID: "user_2"})

	_, err := svc.Update("user_1", wsID, "Taken")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != domain.CodeSlugTaken {
		t.Errorf("Expected code %s, got %q", domain.CodeSlugTaken, domain.CodeOf(err))
	}
}

func TestUpdateWorkspace_PublishesEvent(t *testing.T) {
	svc, workspaceRepo, _, _, _, publisher := newWorkspaceServiceFixture()
	wsID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: wsID, Name: "Acme's Workspace", Slug: "acme", OwnerID: "user_1"})

	updated, err := svc.Update("user_1", wsID, "Renamed")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Slug != "renamed" {
		t.Errorf("Expected slug 'renamed', got %q", updated.Slug)
	}

	events := publisher.Published()
	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(events))
	}
	if events[0].Type != "workspace.updated" {
		t.Errorf("Expected event type 'workspace.updated', got %q", events[0].Type)
	}
}

func TestStorageUsage_Percentage(t *testing.T) {
	svc, workspaceRepo, memberRepo, userRepo, tierRepo, _ := newWorkspaceServiceFixture()
	tier := seedUserWithTier(userRepo, tierRepo, "user_1")
	wsID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{
		ID:                  wsID,
		Name:                "Test's Workspace",
		Slug:                "test",
		OwnerID:             "user_1",
		CurrentStorageBytes: tier.StorageLimitBytes / 4,
	})
	memberRepo.AddMember(&domain.WorkspaceMember{
		ID:          uuid.New(),
		WorkspaceID: wsID,
		UserID:      "user_1",
		Permission:  domain.PermissionFullAccess,
		JoinedAt:    time.Now(),
	})

	usage, err := svc.StorageUsage("user_1", wsID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if usage.UsagePercentage != 25 {
		t.Errorf("Expected 25%% usage, got %v", usage.UsagePercentage)
	}
	if usage.StorageLimitBytes != tier.StorageLimitBytes {
		t.Errorf("Expected limit %d, got %d", tier.StorageLimitBytes, usage.StorageLimitBytes)
	}
}

func TestUsagePercentage_Bounds(t *testing.T) {
	if got := usagePercentage(500, 0); got != 0 {
		t.Errorf("Expected 0 for zero limit, got %v", got)
	}
	if got := usagePercentage(2000, 1000); got != 100 {
		t.Errorf("Expected clamp to 100, got %v", got)
	}
	if got := usagePercentage(-5, 1000); got != 0 {
		t.Errorf("Expected clamp to 0, got %v", got)
	}
	if got := usagePercentage(333, 1000); got != 33.3 {
		t.Errorf("Expected 33.3, got %v", got)
	}
}

func TestGetOwned_NotFoundForNonOwner(t *testing.T) {
	svc, _, _, _, _, _ := newWorkspaceServiceFixture()

	_, err := svc.GetOwned("user_1")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.KindOf(err) != domain.KindNotFound {
		t.Errorf("Expected kind NOT_FOUND, got %q", domain.KindOf(err))
	}
}

var _ websocket.EventPublisher = (*testutil.CapturingPublisher)(nil)
