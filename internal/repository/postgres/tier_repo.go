package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draftdeck/draftdeck-backend/db/sqlc"
	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

// TierRepository implements domain.TierRepository using PostgreSQL
type TierRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewTierRepository creates a new TierRepository
func NewTierRepository(pool *pgxpool.Pool) *TierRepository {
	return &TierRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetByID retrieves a tier by its ID
func (r *TierRepository) GetByID(id uuid.UUID) (*domain.Tier, error) {
	tier, err := r.queries.GetTierByID(context.Background(), pgUUID(id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeTierNotFound, "Tier not found")
		}
		return nil, domain.Database("failed to get tier", err)
	}
	return sqlcTierToDomain(tier), nil
}

// GetByName retrieves a tier by its name (FREE, PRO, ENTERPRISE)
func (r *TierRepository) GetByName(name domain.TierName) (*domain.Tier, error) {
	tier, err := r.queries.GetTierByName(context.Background(), string(name))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeTierNotFound, "Tier not found")
		}
		return nil, domain.Database("failed to get tier", err)
	}
	return sqlcTierToDomain(tier), nil
}

func sqlcTierToDomain(t sqlc.Tier) *domain.Tier {
	return &domain.Tier{
		ID:                       uuidFromPg(t.ID),
		Name:                     domain.TierName(t.Name),
		StorageLimitBytes:        t.StorageLimitBytes,
		FileUploadLimitBytes:     t.FileUploadLimitBytes,
		MembersPerWorkspaceLimit: t.MembersPerWorkspaceLimit,
		ProjectsLimit:            t.ProjectsLimit,
		DocsLimit:                t.DocsLimit,
		DraftsLimit:              t.DraftsLimit,
		CreatedAt:                t.CreatedAt.Time,
	}
}
