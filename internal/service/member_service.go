package service

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/websocket"
)

// MemberService handles workspace membership business logic
type MemberService struct {
	workspaceRepo domain.WorkspaceRepository
	memberRepo    domain.WorkspaceMemberRepository
	userRepo      domain.UserRepository
	tierRepo      domain.TierRepository
	publisher     websocket.EventPublisher
}

// NewMemberService creates a new MemberService
func NewMemberService(
	workspaceRepo domain.WorkspaceRepository,
	memberRepo domain.WorkspaceMemberRepository,
	userRepo domain.UserRepository,
	tierRepo domain.TierRepository,
	publisher websocket.EventPublisher,
) *MemberService {
	return &MemberService{
		workspaceRepo: workspaceRepo,
		memberRepo:    memberRepo,
		userRepo:      userRepo,
		tierRepo:      tierRepo,
		publisher:     publisher,
	}
}

// VerifyMembership checks that userID belongs to the workspace
func (s *MemberService) VerifyMembership(userID string, workspaceID uuid.UUID) error {
	if _, err := s.memberRepo.GetMembership(workspaceID, userID); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return domain.Unauthorized("WORKSPACE_ACCESS_DENIED", "You do not have access to this workspace")
		}
		return err
	}
	return nil
}

// List returns all members of the workspace joined with their profiles,
// ordered by join time. The caller must be a member.
func (s *MemberService) List(userID string, workspaceID uuid.UUID) ([]domain.MemberWithUser, error) {
	if err := s.VerifyMembership(userID, workspaceID); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByWorkspace(workspaceID)
}

// Add inserts a membership row for targetUserID. Only the owner may add
// members, and the owner's tier bounds the member count. The count check and
// the insert run in one transaction.
func (s *MemberService) Add(ownerID string, workspaceID uuid.UUID, targetUserID string, permission domain.Permission) (*domain.WorkspaceMember, error) {
	if !permission.Valid() {
		return nil, domain.BadRequest("INVALID_PERMISSION", "Unknown permission level")
	}

	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.OwnerID != ownerID {
		return nil, domain.BadRequest("WORKSPACE_OWNER_REQUIRED", "Only workspace owners can add members")
	}

	if _, err := s.userRepo.GetByID(targetUserID); err != nil {
		return nil, err
	}

	owner, err := s.userRepo.GetByID(ownerID)
	if err != nil {
		return nil, err
	}
	tier, err := s.tierRepo.GetByID(owner.TierID)
	if err != nil {
		return nil, err
	}

	member, err := s.memberRepo.AddWithLimit(workspaceID, targetUserID, permission, tier.MembersPerWorkspaceLimit)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(workspaceID, websocket.NewEvent(websocket.EventTypeAdded, websocket.EntityTypeMember, member))
	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("user_id", targetUserID).
		Str("permission", string(permission)).
		Msg("Member added to workspace")
	return member, nil
}

// UpdatePermission changes a member's permission level. Only the owner may
// do this, and the owner's own FULL_ACCESS row is immutable.
func (s *MemberService) UpdatePermission(ownerID string, workspaceID uuid.UUID, targetUserID string, permission domain.Permission) (*domain.WorkspaceMember, error) {
	if !permission.Valid() {
		return nil, domain.BadRequest("INVALID_PERMISSION", "Unknown permission level")
	}

	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace.OwnerID != ownerID {
		return nil, domain.BadRequest("WORKSPACE_OWNER_REQUIRED", "Only workspace owners can update member permissions")
	}
	if targetUserID == workspace.OwnerID {
		return nil, domain.BadRequest("OWNER_PERMISSION_IMMUTABLE", "The owner's permission cannot be changed")
	}

	updated, err := s.memberRepo.UpdatePermission(workspaceID, targetUserID, permission)
	if err != nil {
		return nil, err
	}

	s.publisher.Publish(workspaceID, websocket.NewEvent(websocket.EventTypePermissionUpdated, websocket.EntityTypeMember, updated))
	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("user_id", targetUserID).
		Str("permission", string(permission)).
		Msg("Member permission updated")
	return updated, nil
}

// Remove deletes a member's row. Only the owner may remove members, and the
// owner's own row cannot be removed.
func (s *MemberService) Remove(ownerID string, workspaceID uuid.UUID, targetUserID string) error {
	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID != ownerID {
		return domain.BadRequest("WORKSPACE_OWNER_REQUIRED", "Only workspace owners can remove members")
	}
	if targetUserID == workspace.OwnerID {
		return domain.BadRequest("OWNER_NOT_REMOVABLE", "Cannot remove the workspace owner")
	}

	if _, err := s.memberRepo.GetMembership(workspaceID, targetUserID); err != nil {
		if domain.KindOf(err) == domain.KindNotFound {
			return domain.BadRequest(domain.CodeMemberNotFound, "Member not found in this workspace")
		}
		return err
	}

	if err := s.memberRepo.Delete(workspaceID, targetUserID); err != nil {
		return err
	}

	s.publisher.Publish(workspaceID, websocket.NewEvent(websocket.EventTypeRemoved, websocket.EntityTypeMember, map[string]string{"userId": targetUserID}))
	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("user_id", targetUserID).
		Msg("Member removed from workspace")
	return nil
}

// Leave deletes the caller's own membership row. Owners cannot leave their
// own workspace; they must transfer or delete it instead.
func (s *MemberService) Leave(userID string, workspaceID uuid.UUID) error {
	workspace, err := s.workspaceRepo.GetByID(workspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID == userID {
		return domain.BadRequest("OWNER_CANNOT_LEAVE", "Workspace owners cannot leave their own workspace")
	}

	if _, err := s.memberRepo.GetMembership(workspaceID, userID); err != nil {
		return err
	}

	if err := s.memberRepo.Delete(workspaceID, userID); err != nil {
		return err
	}

	s.publisher.Publish(workspaceID, websocket.NewEvent(websocket.EventTypeLeft, websocket.EntityTypeMember, map[string]string{"userId": userID}))
	log.Info().
		Str("workspace_id", workspaceID.String()).
		Str("user_id", userID).
		Msg("Member left workspace")
	return nil
}
