package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/draftdeck/draftdeck-backend/db/sqlc"
	"github.com/draftdeck/draftdeck-backend/internal/domain"
)

// UserRepository implements domain.UserRepository using PostgreSQL
type UserRepository struct {
	pool    *pgxpool.Pool
	queries *sqlc.Queries
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		pool:    pool,
		queries: sqlc.New(pool),
	}
}

// GetByID retrieves a user by their Clerk subject ID
func (r *UserRepository) GetByID(id string) (*domain.User, error) {
	user, err := r.queries.GetUserByID(context.Background(), id)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeUserNotFound, "User not found")
		}
		return nil, domain.Database("failed to get user", err)
	}
	return sqlcUserToDomain(user), nil
}

// GetByEmail retrieves a user by their email address
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	user, err := r.queries.GetUserByEmail(context.Background(), email)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.NotFound(domain.CodeUserNotFound, "User not found")
		}
		return nil, domain.Database("failed to get user", err)
	}
	return sqlcUserToDomain(user), nil
}

// Create inserts a new user row. The ID comes from the identity provider.
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	created, err := r.queries.CreateUser(context.Background(), sqlc.CreateUserParams{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: stringPtrToPgText(user.FirstName),
		LastName:  stringPtrToPgText(user.LastName),
		AvatarUrl: stringPtrToPgText(user.AvatarURL),
		TierID:    pgUUID(user.TierID),
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.Conflict(domain.CodeEmailTaken, "A user with this email already exists")
		}
		return nil, domain.Database("failed to create user", err)
	}
	return sqlcUserToDomain(created), nil
}

func sqlcUserToDomain(u sqlc.User) *domain.User {
	return &domain.User{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: pgTextToStringPtr(u.FirstName),
		LastName:  pgTextToStringPtr(u.LastName),
		AvatarURL: pgTextToStringPtr(u.AvatarUrl),
		TierID:    uuidFromPg(u.TierID),
		CreatedAt: u.CreatedAt.Time,
		UpdatedAt: u.UpdatedAt.Time,
	}
}
