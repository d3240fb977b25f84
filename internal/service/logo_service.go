package service

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/repository/storage"
	"github.com/draftdeck/draftdeck-backend/internal/websocket"
)

const (
	MinLogoWidth  = 50
	MinLogoHeight = 50
	LogoMaxWidth  = 400
	JPEGQuality   = 85
)

// AllowedLogoExtensions maps extensions to content types
var AllowedLogoExtensions = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
}

// LogoService handles workspace logo processing and storage. Each workspace
// has one logo object at a fixed key, so re-uploads overwrite in place and
// the storage counter tracks the size delta between old and new.
type LogoService struct {
	workspaceRepo domain.WorkspaceRepository
	userRepo      domain.UserRepository
	tierRepo      domain.TierRepository
	storage       storage.LogoRepository
	publisher     websocket.EventPublisher
}

// NewLogoService creates a new LogoService
func NewLogoService(
	workspaceRepo domain.WorkspaceRepository,
	userRepo domain.UserRepository,
	tierRepo domain.TierRepository,
	logoStorage storage.LogoRepository,
	publisher websocket.EventPublisher,
) *LogoService {
	return &LogoService{
		workspaceRepo: workspaceRepo,
		userRepo:      userRepo,
		tierRepo:      tierRepo,
		storage:       logoStorage,
		publisher:     publisher,
	}
}

// IsEnabled indicates whether uploads are supported (storage configured)
func (s *LogoService) IsEnabled() bool {
	return s != nil && s.storage != nil
}

// Upload validates, resizes and stores a workspace logo, then updates the
// workspace's logo URL and storage counter. Only the owner may upload, and
// the raw upload must fit within the owner's tier file upload limit.
func (s *LogoService) Upload(ctx context.Context, userID string, workspaceID uuid.UUID, data []byte, filename string) (*domain.Workspace, error) {
	if !s.IsEnabled() {
		return nil, domain.Internal("LOGO_STORAGE_NOT_CONFIGURED", "Logo storage is not configured", nil)
	}

	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.OwnerID != userID {
		return nil, domain.BadRequest("WORKSPACE_OWNER_REQUIRED", "Only workspace owners can upload a logo")
	}

	owner, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	tier, err := s.tierRepo.GetByID(owner.TierID)
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > tier.FileUploadLimitBytes {
		return nil, domain.BadRequest("FILE_TOO_LARGE", "File exceeds the upload limit for your tier")
	}

	img, err := s.validateAndDecode(data, filename)
	if err != nil {
		return nil, err
	}

	// Resize maintaining aspect ratio; small logos are kept as-is
	if img.Bounds().Dx() > LogoMaxWidth {
		img = imaging.Resize(img, LogoMaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return nil, domain.Internal("LOGO_ENCODE_FAILED", "Failed to encode logo", err)
	}

	objectPath := logoObjectPath(workspaceID)

	// Size of the previous logo at the same key, 0 for first upload
	oldSize, err := s.storage.Head(ctx, objectPath)
	if err != nil {
		return nil, domain.Internal("LOGO_STORAGE_ERROR", "Failed to check existing logo", err)
	}

	url, err := s.storage.Upload(ctx, objectPath, bytes.NewReader(buf.Bytes()), "image/jpeg", int64(buf.Len()))
	if err != nil {
		return nil, domain.Internal("LOGO_STORAGE_ERROR", "Failed to upload logo", err)
	}

	if _, err := s.workspaceRepo.AddStorageBytes(workspaceID, int64(buf.Len())-oldSize); err != nil {
		return nil, err
	}

	updated, err := s.workspaceRepo.UpdateLogoURL(workspaceID, url)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(workspaceID, websocket.NewEvent(websocket.EventTypeLogoUpdated, websocket.EntityTypeWorkspace, updated))
	log.Info().
		Str("workspace_id", workspaceID.String()).
		Int("size_bytes", buf.Len()).
		Msg("Workspace logo uploaded")
	return updated, nil
}

// validateAndDecode validates the logo file and returns the decoded image
func (s *LogoService) validateAndDecode(data []byte, filename string) (image.Image, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := AllowedLogoExtensions[ext]; !ok {
		return nil, domain.BadRequest("INVALID_FILE_FORMAT", "Invalid format. Supported: JPEG, PNG, WebP")
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, domain.BadRequest("INVALID_IMAGE_DATA", "Could not decode image data")
	}

	bounds := img.Bounds()
	if bounds.Dx() < MinLogoWidth || bounds.Dy() < MinLogoHeight {
		return nil, domain.BadRequest("IMAGE_TOO_SMALL", fmt.Sprintf("Image too small. Minimum %dx%d pixels", MinLogoWidth, MinLogoHeight))
	}

	return img, nil
}

func logoObjectPath(workspaceID uuid.UUID) string {
	return fmt.Sprintf("logos/%s.jpg", workspaceID)
}
