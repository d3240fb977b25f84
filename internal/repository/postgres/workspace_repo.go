package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draftdeck/draftdeck-backend/db/sqlc"
	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

// WorkspaceRepository implements domain.WorkspaceRepository using PostgreSQL
type WorkspaceRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewWorkspaceRepository creates a new WorkspaceRepository
func NewWorkspaceRepository(pool *pgxpool.Pool) *WorkspaceRepository {
	return &WorkspaceRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetByID retrieves a workspace by its ID
func (r *WorkspaceRepository) GetByID(id uuid.UUID) (*domain.Workspace, error) {
	workspace, err := r.queries.GetWorkspaceByID(context.Background(), pgUUID(id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
		}
		return nil, domain.Database("failed to get workspace", err)
	}
	return sqlcWorkspaceToDomain(workspace), nil
}

// GetByOwnerID retrieves the workspace owned by the given user
func (r *WorkspaceRepository) GetByOwnerID(ownerID string) (*domain.Workspace, error) {
	workspace, err := r.queries.GetWorkspaceByOwnerID(context.Background(), ownerID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
		}
		return nil, domain.Database("failed to get workspace", err)
	}
	return sqlcWorkspaceToDomain(workspace), nil
}

// GetBySlug retrieves a workspace by its slug
func (r *WorkspaceRepository) GetBySlug(slug string) (*domain.Workspace, error) {
	workspace, err := r.queries.GetWorkspaceBySlug(context.Background(), slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
		}
		return nil, domain.Database("failed to get workspace", err)
	}
	return sqlcWorkspaceToDomain(workspace), nil
}

// CreateWithOwner inserts the workspace and the owner's FULL_ACCESS membership
// row in one transaction. Either both rows land or neither does.
func (r *WorkspaceRepository) CreateWithOwner(workspace *domain.Workspace) (*domain.Workspace, error) {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.Database("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	q := r.queries.WithTx(tx)

	created, err := q.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		Name:    workspace.Name,
		Slug:    workspace.Slug,
		OwnerID: workspace.OwnerID,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Conflict(domain.CodeSlugTaken, "A workspace with this slug already exists")
		}
		return nil, domain.Database("failed to create workspace", err)
	}

	_, err = q.CreateWorkspaceMember(ctx, sqlc.CreateWorkspaceMemberParams{
		WorkspaceID: created.ID,
		UserID:      workspace.OwnerID,
		Permission:  string(domain.PermissionFullAccess),
	})
	if err != nil {
		return nil, domain.Database("failed to create owner membership", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Database("failed to commit workspace creation", err)
	}

	return sqlcWorkspaceToDomain(created), nil
}

// Update updates the workspace name and slug
func (r *WorkspaceRepository) Update(workspace *domain.Workspace) (*domain.Workspace, error) {
	updated, err := r.queries.UpdateWorkspace(context.Background(), sqlc.UpdateWorkspaceParams{
		ID:   pgUUID(workspace.ID),
		Name: workspace.Name,
		Slug: workspace.Slug,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
		}
		if isUniqueViolation(err) {
			return nil, domain.Conflict(domain.CodeSlugTaken, "A workspace with this slug already exists")
		}
		return nil, domain.Database("failed to update workspace", err)
	}
	return sqlcWorkspaceToDomain(updated), nil
}

// UpdateLogoURL updates only the workspace logo URL
func (r *WorkspaceRepository) UpdateLogoURL(id uuid.UUID, logoURL string) (*domain.Workspace, error) {
	updated, err := r.queries.UpdateWorkspaceLogoURL(context.Background(), sqlc.UpdateWorkspaceLogoURLParams{
		ID:      pgUUID(id),
		LogoUrl: stringPtrToPgText(&logoURL),
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
		}
		return nil, domain.Database("failed to update workspace logo", err)
	}
	return sqlcWorkspaceToDomain(updated), nil
}

// AddStorageBytes atomically adjusts current_storage_bytes by delta,
// clamping at zero so accounting drift can never go negative.
func (r *WorkspaceRepository) AddStorageBytes(id uuid.UUID, delta int64) (*domain.Workspace, error) {
	updated, err := r.queries.AddWorkspaceStorageBytes(context.Background(), sqlc.AddWorkspaceStorageBytesParams{
		Delta: delta,
		ID:    pgUUID(id),
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
		}
		return nil, domain.Database("failed to update workspace storage", err)
	}
	return sqlcWorkspaceToDomain(updated), nil
}

func sqlcWorkspaceToDomain(w sqlc.Workspace) *domain.Workspace {
	return &domain.Workspace{
		ID:                  uuidFromPg(w.ID),
		Name:                w.Name,
		Slug:                w.Slug,
		OwnerID:             w.OwnerID,
		CurrentStorageBytes: w.CurrentStorageBytes,
		LogoURL:             pgTextToStringPtr(w.LogoUrl),
		CreatedAt:           w.CreatedAt.Time,
		UpdatedAt:           w.UpdatedAt.Time,
	}
}
