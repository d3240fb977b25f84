package domain

import (
	"time"

	"github.com/google/uuid"
)

// WorkspaceMember is the join row granting a user access to a workspace.
// The (workspace, user) pair is unique; the owner's row is created together
// with the workspace and is never deleted while they remain owner.
type WorkspaceMember struct {
	ID          uuid.UUID  `json:"id"`
	WorkspaceID uuid.UUID  `json:"workspaceId"`
	UserID      string     `json:"userId"`
	Permission  Permission `json:"permission"`
	JoinedAt    time.Time  `json:"joinedAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// MemberWithUser is a membership row joined with the member's profile fields
type MemberWithUser struct {
	WorkspaceMember
	Email     string  `json:"email"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	AvatarURL *string `json:"avatarUrl"`
	IsOwner   bool    `json:"isOwner"`
}

// FullName joins the member's first and last name, skipping missing parts.
func (m *MemberWithUser) FullName() string {
	switch {
	case m.FirstName != nil && m.LastName != nil:
		return *m.FirstName + " " + *m.LastName
	case m.FirstName != nil:
		return *m.FirstName
	case m.LastName != nil:
		return *m.LastName
	default:
		return ""
	}
}

// UserWorkspace is a workspace joined with the caller's membership
type UserWorkspace struct {
	Workspace
	Permission Permission `json:"permission"`
	JoinedAt   time.Time  `json:"joinedAt"`
}

// WorkspaceMemberRepository defines the interface for membership persistence.
// AddWithLimit and UpdatePermission run their check-then-write steps inside a
// single transaction so concurrent requests cannot both pass the check.
type WorkspaceMemberRepository interface {
	GetMembership(workspaceID uuid.UUID, userID string) (*WorkspaceMember, error)
	ListByWorkspace(workspaceID uuid.UUID) ([]MemberWithUser, error)
	ListWorkspacesByUser(userID string) ([]UserWorkspace, error)
	CountByWorkspace(workspaceID uuid.UUID) (int64, error)
	AddWithLimit(workspaceID uuid.UUID, userID string, permission Permission, maxMembers int32) (*WorkspaceMember, error)
	UpdatePermission(workspaceID uuid.UUID, userID string, permission Permission) (*WorkspaceMember, error)
	Delete(workspaceID uuid.UUID, userID string) error
}
