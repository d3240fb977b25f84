package service

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/websocket"
)

// workspaceNameSuffix is appended to the caller-supplied name on creation,
// matching the onboarding flow's "<name>'s Workspace" convention.
const workspaceNameSuffix = "'s Workspace"

// WorkspaceService handles workspace-related business logic
type WorkspaceService struct {
	workspaceRepo domain.WorkspaceRepository
	memberRepo    domain.WorkspaceMemberRepository
	userRepo      domain.UserRepository
	tierRepo      domain.TierRepository
	publisher     websocket.EventPublisher
}

// NewWorkspaceService creates a new WorkspaceService
func NewWorkspaceService(
	workspaceRepo domain.WorkspaceRepository,
	memberRepo domain.WorkspaceMemberRepository,
	userRepo domain.UserRepository,
	tierRepo domain.TierRepository,
	publisher websocket.EventPublisher,
) *WorkspaceService {
	return &WorkspaceService{
		workspaceRepo: workspaceRepo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		tierRepo:      tierRepo,
		publisher:     publisher,
	}
}

// OwnerProfile is the subset of the owner's profile returned with a workspace
type OwnerProfile struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
}

// WorkspaceDetail is a workspace with ownership and caller-membership context
type WorkspaceDetail struct {
	Workspace   domain.Workspace  `json:"workspace"`
	Owner       OwnerProfile      `json:"owner"`
	MemberCount int64             `json:"memberCount"`
	Permission  domain.Permission `json:"permission"`
	JoinedAt    time.Time         `json:"joinedAt"`
}

// StorageUsage reports workspace storage against the caller's tier limit
type StorageUsage struct {
	CurrentStorageBytes int64   `json:"currentStorageBytes"`
	StorageLimitBytes   int64   `json:"storageLimitBytes"`
	UsagePercentage     float64 `json:"usagePercentage"`
}

// Create validates the name, enforces the one-workspace-per-owner rule,
// derives a unique slug and inserts the workspace together with the owner's
// FULL_ACCESS membership row in one transaction.
func (s *WorkspaceService) Create(ownerID, name string) (*domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if err := validateWorkspaceName(name); err != nil {
		return nil, err
	}

	if _, err := s.workspaceRepo.GetByOwnerID(ownerID); err == nil {
		return nil, domain.BadRequest("WORKSPACE_ALREADY_EXISTS", "You already own a workspace")
	} else if domain.KindOf(err) != domain.KindNotFound {
		return nil, err
	}

	workspaceSlug, err := s.uniqueSlug(name)
	if err != nil {
		return nil, err
	}

	created, err := s.workspaceRepo.CreateWithOwner(&domain.Workspace{
		Name:    name + workspaceNameSuffix,
		Slug:    workspaceSlug,
		OwnerID: ownerID,
	})
	if err != nil {
		log.Error().Err(err).Str("owner_id", ownerID).Msg("Failed to create workspace")
		return nil, err
	}

	log.Info().
		Str("workspace_id", created.ID.String()).
		Str("owner_id", ownerID).
		Str("slug", created.Slug).
		Msg("Workspace created")
	return created, nil
}

// ListForUser returns every workspace the caller is a member of, with the
// caller's permission and join time. An empty set is reported as not found.
func (s *WorkspaceService) ListForUser(userID string) ([]domain.UserWorkspace, error) {
	workspaces, err := s.memberRepo.ListWorkspacesByUser(userID)
	if err != nil {
		return nil, err
	}
	if len(workspaces) == 0 {
		return nil, domain.NotFound("WORKSPACES_NOT_FOUND", "No workspaces found for this user")
	}
	return workspaces, nil
}

// GetOwned returns the workspace owned by the caller
func (s *WorkspaceService) GetOwned(userID string) (*domain.Workspace, error) {
	return s.workspaceRepo.GetByOwnerID(userID)
}

// GetByID returns workspace metadata with owner profile, member count and
// the caller's own membership. Non-members are rejected.
func (s *WorkspaceService) GetByID(userID string, workspaceID uuid.UUID) (*WorkspaceDetail, error) {
	membership, err := s.requireMembership(workspaceID, userID)
	if err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(workspace.OwnerID)
	if err != nil {
		return nil, err
	}

	memberCount, err := s.memberRepo.CountByWorkspace(workspaceID)
	if err != nil {
		return nil, err
	}

	return &WorkspaceDetail{
		Workspace: *workspace,
		Owner: OwnerProfile{
			ID:        owner.ID,
			Email:     owner.Email,
			FullName:  owner.FullName(),
			AvatarURL: owner.AvatarURL,
		},
		MemberCount: memberCount,
		Permission:  membership.Permission,
		JoinedAt:    membership.JoinedAt,
	}, nil
}

// Update renames the workspace. Only the owner may update; the recomputed
// slug must not collide with another workspace.
func (s *WorkspaceService) Update(userID string, workspaceID uuid.UUID, name string) (*domain.Workspace, error) {
	name = strings.TrimSpace(name)
	if err := validateWorkspaceName(name); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.OwnerID != userID {
		return nil, domain.BadRequest("WORKSPACE_OWNER_REQUIRED", "Only the workspace owner can update the workspace")
	}

	newSlug := slug.Make(name)
	if existing, err := s.workspaceRepo.GetBySlug(newSlug); err == nil {
		if existing.ID != workspace.ID {
			return nil, domain.BadRequest(domain.CodeSlugTaken, "A workspace with this slug already exists")
		}
	} else if domain.KindOf(err) != domain.KindNotFound {
		return nil, err
	}

	workspace.Name = name
	workspace.Slug = newSlug
	updated, err := s.workspaceRepo.Update(workspace)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(workspaceID, websocket.NewEvent(websocket.EventTypeUpdated, websocket.EntityTypeWorkspace, updated))
	log.Info().Str("workspace_id", workspaceID.String()).Msg("Workspace updated")
	return updated, nil
}

// StorageUsage returns the workspace's storage consumption against the
// caller's tier limit. The percentage is clamped to [0,100] and is 0 when
// the limit itself is 0.
func (s *WorkspaceService) StorageUsage(userID string, workspaceID uuid.UUID) (*StorageUsage, error) {
	if _, err := s.requireMembership(workspaceID, userID); err != nil {
		return nil, err
	}

	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	tier, err := s.tierRepo.GetByID(user.TierID)
	if err != nil {
		return nil, err
	}

	return &StorageUsage{
		CurrentStorageBytes: workspace.CurrentStorageBytes,
		StorageLimitBytes:   tier.StorageLimitBytes,
		UsagePercentage:     usagePercentage(workspace.CurrentStorageBytes, tier.StorageLimitBytes),
	}, nil
}

func (s *WorkspaceService) requireMembership(workspaceID uuid.UUID, userID string) (*domain.WorkspaceMember, error) {
	membership, err := s.memberRepo.GetMembership(workspaceID, userID)
	if err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return nil, domain.Unauthorized("WORKSPACE_ACCESS_DENIED", "You do not have access to this workspace")
		}
		return nil, err
	}
	return membership, nil
}

// uniqueSlug derives the slug from the raw name, appending a short token
// when the base form is already taken
func (s *WorkspaceService) uniqueSlug(name string) (string, error) {
	base := slug.Make(name)
	if _, err := s.workspaceRepo.GetBySlug(base); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return base, nil
		}
		return "", err
	}
	return base + "-" + uuid.NewString()[:8], nil
}

func validateWorkspaceName(name string) error {
	if name == "" {
		return domain.BadRequest("WORKSPACE_NAME_REQUIRED", "Workspace name is required")
	}
	if utf8.RuneCountInString(name) > domain.MaxWorkspaceNameLength {
		return domain.BadRequest("WORKSPACE_NAME_TOO_LONG", "Workspace name exceeds maximum length")
	}
	return nil
}

func usagePercentage(used, limit int64) float64 {
	if limit <= 0 {
		return 0
	}
	pct := decimal.NewFromInt(used).
		Div(decimal.NewFromInt(limit)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	if pct.IsNegative() {
		return 0
	}
	if pct.GreaterThan(decimal.NewFromInt(100)) {
		return 100
	}
	f, _ := pct.Float64()
	return f
}
