package domain

import (
	"time"

	"github.com/google/uuid"
)

// TierName identifies a subscription tier
type TierName string

const (
	TierFree       TierName = "FREE"
	TierPro        TierName = "PRO"
	TierEnterprise TierName = "ENTERPRISE"
)

// Tier is static reference data bounding what a subscription level allows.
// Rows are seeded by migration and never mutated at runtime.
type Tier struct {
	ID                       uuid.UUID `json:"id"`
	Name                     TierName  `json:"name"`
	StorageLimitBytes        int64     `json:"storageLimitBytes"`
	FileUploadLimitBytes     int64     `json:"fileUploadLimitBytes"`
	MembersPerWorkspaceLimit int32     `json:"membersPerWorkspaceLimit"`
	ProjectsLimit            int32     `json:"projectsLimit"`
	DocsLimit                int32     `json:"docsLimit"`
	DraftsLimit              int32     `json:"draftsLimit"`
	CreatedAt                time.Time `json:"createdAt"`
}

// TierRepository defines the interface for tier lookups
type TierRepository interface {
	GetByID(id uuid.UUID) (*Tier, error)
	GetByName(name TierName) (*Tier, error)
}
