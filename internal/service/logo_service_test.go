package service

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/testutil"
)

type logoFixture struct {
	svc           *LogoService
	workspaceRepo *testutil.MockWorkspaceRepository
	storage       *testutil.MockLogoRepository
	publisher     *testutil.CapturingPublisher
	workspaceID   uuid.UUID
	tier          *domain.Tier
}

func newLogoFixture(t *testing.T) *logoFixture {
	t.Helper()

	workspaceRepo := testutil.NewMockWorkspaceRepository()
	memberRepo := testutil.NewMockWorkspaceMemberRepository(workspaceRepo)
	userRepo := testutil.NewMockUserRepository()
	tierRepo := testutil.NewMockTierRepository()
	logoStorage := testutil.NewMockLogoRepository()
	publisher := &testutil.CapturingPublisher{}
	svc := NewLogoService(workspaceRepo, userRepo, tierRepo, logoStorage, publisher)

	tier := seedUserWithTier(userRepo, tierRepo, "owner")

	workspaceID := uuid.New()
	workspaceRepo.AddWorkspace(&domain.Workspace{ID: workspaceID, Name: "Test's Workspace", Slug: "test", OwnerID: "owner"})
	memberRepo.AddMember(&domain.WorkspaceMember{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      "owner",
		Permission:  domain.PermissionFullAccess,
		JoinedAt:    time.Now(),
	})

	return &logoFixture{
		svc:           svc,
		workspaceRepo: workspaceRepo,
		storage:       logoStorage,
		publisher:     publisher,
		workspaceID:   workspaceID,
		tier:          tier,
	}
}

// testPNG renders a solid image of the given dimensions as PNG bytes
func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestUploadLogo_Success(t *testing.T) {
	f := newLogoFixture(t)

	workspace, err := f.svc.Upload(context.Background(), "owner", f.workspaceID, testPNG(t, 100, 100), "logo.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if workspace.LogoURL == nil {
		t.Fatal("Expected logo URL to be set")
	}
	if workspace.CurrentStorageBytes <= 0 {
		t.Errorf("Expected storage counter to grow, got %d", workspace.CurrentStorageBytes)
	}

	stored, err := f.storage.Head(context.Background(), "logos/"+f.workspaceID.String()+".jpg")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if stored == 0 {
		t.Error("Expected logo object to be stored")
	}

	events := f.publisher.Published()
	if len(events) != 1 || events[0].Type != "workspace.logo_updated" {
		t.Errorf("Expected one workspace.logo_updated event, got %+v", events)
	}
}

func TestUploadLogo_ReuploadTracksDelta(t *testing.T) {
	f := newLogoFixture(t)

	first, err := f.svc.Upload(context.Background(), "owner", f.workspaceID, testPNG(t, 100, 100), "logo.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	firstBytes := first.CurrentStorageBytes

	second, err := f.svc.Upload(context.Background(), "owner", f.workspaceID, testPNG(t, 100, 100), "logo.png")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// Same image replaced in place: the counter must not double
	if second.CurrentStorageBytes != firstBytes {
		t.Errorf("Expected storage to stay at %d after re-upload, got %d", firstBytes, second.CurrentStorageBytes)
	}
}

func TestUploadLogo_NonOwnerRejected(t *testing.T) {
	f := newLogoFixture(t)

	_, err := f.svc.Upload(context.Background(), "user_other", f.workspaceID, testPNG(t, 100, 100), "logo.png")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "WORKSPACE_OWNER_REQUIRED" {
		t.Errorf("Expected code WORKSPACE_OWNER_REQUIRED, got %q", domain.CodeOf(err))
	}
}

func TestUploadLogo_TooSmallRejected(t *testing.T) {
	f := newLogoFixture(t)

	_, err := f.svc.Upload(context.Background(), "owner", f.workspaceID, testPNG(t, 20, 20), "logo.png")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "IMAGE_TOO_SMALL" {
		t.Errorf("Expected code IMAGE_TOO_SMALL, got %q", domain.CodeOf(err))
	}
}

func TestUploadLogo_BadExtensionRejected(t *testing.T) {
	f := newLogoFixture(t)

	_, err := f.svc.Upload(context.Background(), "owner", f.workspaceID, testPNG(t, 100, 100), "logo.gif")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "INVALID_FILE_FORMAT" {
		t.Errorf("Expected code INVALID_FILE_FORMAT, got %q", domain.CodeOf(err))
	}
}

func TestUploadLogo_TierUploadLimitEnforced(t *testing.T) {
	f := newLogoFixture(t)
	f.tier.FileUploadLimitBytes = 10

	_, err := f.svc.Upload(context.Background(), "owner", f.workspaceID, testPNG(t, 100, 100), "logo.png")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.CodeOf(err) != "FILE_TOO_LARGE" {
		t.Errorf("Expected code FILE_TOO_LARGE, got %q", domain.CodeOf(err))
	}
}

func TestUploadLogo_StorageNotConfigured(t *testing.T) {
	svc := NewLogoService(nil, nil, nil, nil, nil)

	_, err := svc.Upload(context.Background(), "owner", uuid.New(), nil, "logo.png")
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if domain.KindOf(err) != domain.KindInternal {
		t.Errorf("Expected kind INTERNAL, got %q", domain.KindOf(err))
	}
}
