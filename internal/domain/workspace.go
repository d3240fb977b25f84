package domain

import (
	"time"

	"github.com/google/uuid"
)

// Workspace name bounds for create/update validation
const (
	MinWorkspaceNameLength = 1
	MaxWorkspaceNameLength = 50
)

// Workspace represents a workspace owned by exactly one user
type Workspace struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	Slug                string    `json:"slug"`
	OwnerID             string    `json:"ownerId"`
	CurrentStorageBytes int64     `json:"currentStorageBytes"`
	LogoURL             *string   `json:"logoUrl"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

// WorkspaceRepository defines the interface for workspace persistence operations.
// CreateWithOwner inserts the workspace row and the owner's FULL_ACCESS membership
// row in a single transaction; neither row survives a failure of the other.
type WorkspaceRepository interface {
	GetByID(id uuid.UUID) (*Workspace, error)
	GetByOwnerID(ownerID string) (*Workspace, error)
	GetBySlug(slug string) (*Workspace, error)
	CreateWithOwner(workspace *Workspace) (*Workspace, error)
	Update(workspace *Workspace) (*Workspace, error)
	UpdateLogoURL(id uuid.UUID, logoURL string) (*Workspace, error)
	AddStorageBytes(id uuid.UUID, delta int64) (*Workspace, error)
}
