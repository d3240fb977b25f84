package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draftdeck/draftdeck-backend/db/sqlc"
	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

// WorkspaceMemberRepository implements domain.WorkspaceMemberRepository using PostgreSQL
type WorkspaceMemberRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewWorkspaceMemberRepository creates a new WorkspaceMemberRepository
func NewWorkspaceMemberRepository(pool *pgxpool.Pool) *WorkspaceMemberRepository {
	return &WorkspaceMemberRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetMembership retrieves the membership row for (workspace, user)
func (r *WorkspaceMemberRepository) GetMembership(workspaceID uuid.UUID, userID string) (*domain.WorkspaceMember, error) {
	member, err := r.queries.GetWorkspaceMember(context.Background(), sqlc.GetWorkspaceMemberParams{
		WorkspaceID: pgUUID(workspaceID),
		UserID:      userID,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeMemberNotFound, "Member not found in this workspace")
		}
		return nil, domain.Database("failed to get membership", err)
	}
	return sqlcMemberToDomain(member), nil
}

// ListByWorkspace returns all members of a workspace joined with their user
// profiles, ordered by join time ascending
func (r *WorkspaceMemberRepository) ListByWorkspace(workspaceID uuid.UUID) ([]domain.MemberWithUser, error) {
	rows, err := r.queries.ListWorkspaceMembers(context.Background(), pgUUID(workspaceID))
	if err != nil {
		return nil, domain.Database("failed to list members", err)
	}

	members := make([]domain.MemberWithUser, 0, len(rows))
	for _, row := range rows {
		members = append(members, domain.MemberWithUser{
			WorkspaceMember: domain.WorkspaceMember{
				ID:          uuidFromPg(row.ID),
				WorkspaceID: uuidFromPg(row.WorkspaceID),
				UserID:      row.UserID,
				Permission:  domain.Permission(row.Permission),
				JoinedAt:    row.JoinedAt.Time,
				UpdatedAt:   row.UpdatedAt.Time,
			},
			Email:     row.Email,
			FirstName: pgTextToStringPtr(row.FirstName),
			LastName:  pgTextToStringPtr(row.LastName),
			AvatarURL: pgTextToStringPtr(row.AvatarUrl),
			IsOwner:   row.UserID == row.OwnerID,
		})
	}
	return members, nil
}

// ListWorkspacesByUser returns all workspaces the user is a member of,
// joined with the user's permission and join time
func (r *WorkspaceMemberRepository) ListWorkspacesByUser(userID string) ([]domain.UserWorkspace, error) {
	rows, err := r.queries.ListUserWorkspaces(context.Background(), userID)
	if err != nil {
		return nil, domain.Database("failed to list workspaces", err)
	}

	workspaces := make([]domain.UserWorkspace, 0, len(rows))
	for _, row := range rows {
		workspaces = append(workspaces, domain.UserWorkspace{
			Workspace: domain.Workspace{
				ID:                  uuidFromPg(row.ID),
				Name:                row.Name,
				Slug:                row.Slug,
				OwnerID:             row.OwnerID,
				CurrentStorageBytes: row.CurrentStorageBytes,
				LogoURL:             pgTextToStringPtr(row.LogoUrl),
				CreatedAt:           row.CreatedAt.Time,
				UpdatedAt:           row.UpdatedAt.Time,
			},
			Permission: domain.Permission(row.Permission),
			JoinedAt:   row.JoinedAt.Time,
		})
	}
	return workspaces, nil
}

// CountByWorkspace returns the number of membership rows for a workspace
func (r *WorkspaceMemberRepository) CountByWorkspace(workspaceID uuid.UUID) (int64, error) {
	count, err := r.queries.CountWorkspaceMembers(context.Background(), pgUUID(workspaceID))
	if err != nil {
		return 0, domain.Database("failed to count members", err)
	}
	return count, nil
}

// AddWithLimit counts current members and inserts the new membership row in a
// single transaction, so two concurrent adds cannot both pass the tier limit.
func (r *WorkspaceMemberRepository) AddWithLimit(workspaceID uuid.UUID, userID string, permission domain.Permission, maxMembers int32) (*domain.WorkspaceMember, error) {
	ctx := context.Background()

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, domain.Database("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	q := r.queries.WithTx(tx)

	count, err := q.CountWorkspaceMembers(ctx, pgUUID(workspaceID))
	if err != nil {
		return nil, domain.Database("failed to count members", err)
	}
	if count >= int64(maxMembers) {
		return nil, domain.BadRequest(domain.CodeMemberLimit, "Workspace member limit exceeded")
	}

	created, err := q.CreateWorkspaceMember(ctx, sqlc.CreateWorkspaceMemberParams{
		WorkspaceID: pgUUID(workspaceID),
		UserID:      userID,
		Permission:  string(permission),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Conflict(domain.CodeMemberExists, "User is already a member of this workspace")
		}
		return nil, domain.Database("failed to create membership", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, domain.Database("failed to commit member add", err)
	}

	return sqlcMemberToDomain(created), nil
}

// UpdatePermission updates the membership row with a single conditional
// write; a missing row surfaces as no rows returned rather than a separate
// read that could race with a concurrent delete.
func (r *WorkspaceMemberRepository) UpdatePermission(workspaceID uuid.UUID, userID string, permission domain.Permission) (*domain.WorkspaceMember, error) {
	updated, err := r.queries.UpdateWorkspaceMemberPermission(context.Background(), sqlc.UpdateWorkspaceMemberPermissionParams{
		WorkspaceID: pgUUID(workspaceID),
		UserID:      userID,
		Permission:  string(permission),
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.BadRequest(domain.CodeMemberNotFound, "Member not found in this workspace")
		}
		return nil, domain.Database("failed to update member permission", err)
	}
	return sqlcMemberToDomain(updated), nil
}

// Delete removes the membership row for (workspace, user)
func (r *WorkspaceMemberRepository) Delete(workspaceID uuid.UUID, userID string) error {
	err := r.queries.DeleteWorkspaceMember(context.Background(), sqlc.DeleteWorkspaceMemberParams{
		WorkspaceID: pgUUID(workspaceID),
		UserID:      userID,
	})
	if err != nil {
		return domain.Database("failed to delete membership", err)
	}
	return nil
}

func sqlcMemberToDomain(m sqlc.WorkspaceMember) *domain.WorkspaceMember {
	return &domain.WorkspaceMember{
		ID:          uuidFromPg(m.ID),
		WorkspaceID: uuidFromPg(m.WorkspaceID),
		UserID:      m.UserID,
		Permission:  domain.Permission(m.Permission),
		JoinedAt:    m.JoinedAt.Time,
		UpdatedAt:   m.UpdatedAt.Time,
	}
}
