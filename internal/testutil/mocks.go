package testutil

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/draftdeck/draftdeck-backend/internal/domain"
	"github.com/draftdeck/draftdeck-backend/internal/websocket"
)

// MockUserRepository is a mock implementation of domain.UserRepository
type MockUserRepository struct {
	Users    map[string]*domain.User
	ByEmail  map[string]*domain.User
	CreateFn func(user *domain.User) (*domain.User, error)
}

// NewMockUserRepository creates a new MockUserRepository
func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:   make(map[string]*domain.User),
		ByEmail: make(map[string]*domain.User),
	}
}

// GetByID retrieves a user by ID
func (m *MockUserRepository) GetByID(id string) (*domain.User, error) {
	if user, ok := m.Users[id]; ok {
		return user, nil
	}
	return nil, domain.NotFound(domain.CodeUserNotFound, "User not found")
}

// GetByEmail retrieves a user by email
func (m *MockUserRepository) GetByEmail(email string) (*domain.User, error) {
	if user, ok := m.ByEmail[email]; ok {
		return user, nil
	}
	return nil, domain.NotFound(domain.CodeUserNotFound, "User not found")
}

// Create creates a new user
func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	if m.CreateFn != nil {
		return m.CreateFn(user)
	}
	if _, ok := m.ByEmail[user.Email]; ok {
		return nil, domain.Conflict(domain.CodeEmailTaken, "Email already exists")
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.Users[user.ID] = user
	m.ByEmail[user.Email] = user
	return user, nil
}

// AddUser adds a user to the mock repository (helper for tests)
func (m *MockUserRepository) AddUser(user *domain.User) {
	m.Users[user.ID] = user
	m.ByEmail[user.Email] = user
}

// MockTierRepository is a mock implementation of domain.TierRepository
type MockTierRepository struct {
	Tiers  map[uuid.UUID]*domain.Tier
	ByName map[domain.TierName]*domain.Tier
}

// NewMockTierRepository creates a new MockTierRepository
func NewMockTierRepository() *MockTierRepository {
	return &MockTierRepository{
		Tiers:  make(map[uuid.UUID]*domain.Tier),
		ByName: make(map[domain.TierName]*domain.Tier),
	}
}

// GetByID retrieves a tier by ID
func (m *MockTierRepository) GetByID(id uuid.UUID) (*domain.Tier, error) {
	if tier, ok := m.Tiers[id]; ok {
		return tier, nil
	}
	return nil, domain.NotFound(domain.CodeTierNotFound, "Tier not found")
}

// GetByName retrieves a tier by name
func (m *MockTierRepository) GetByName(name domain.TierName) (*domain.Tier, error) {
	if tier, ok := m.ByName[name]; ok {
		return tier, nil
	}
	return nil, domain.NotFound(domain.CodeTierNotFound, "Tier not found")
}

// AddTier adds a tier to the mock repository (helper for tests)
func (m *MockTierRepository) AddTier(tier *domain.Tier) {
	m.Tiers[tier.ID] = tier
	m.ByName[tier.Name] = tier
}

// MockWorkspaceRepository is a mock implementation of domain.WorkspaceRepository
type MockWorkspaceRepository struct {
	Workspaces map[uuid.UUID]*domain.Workspace
	ByOwner    map[string]*domain.Workspace
	BySlug     map[string]*domain.Workspace
	UpdateFn   func(workspace *domain.Workspace) (*domain.Workspace, error)
}

// NewMockWorkspaceRepository creates a new MockWorkspaceRepository
func NewMockWorkspaceRepository() *MockWorkspaceRepository {
	return &MockWorkspaceRepository{
		Workspaces: make(map[uuid.UUID]*domain.Workspace),
		ByOwner:    make(map[string]*domain.Workspace),
		BySlug:     make(map[string]*domain.Workspace),
	}
}

// GetByID retrieves a workspace by ID
func (m *MockWorkspaceRepository) GetByID(id uuid.UUID) (*domain.Workspace, error) {
	if ws, ok := m.Workspaces[id]; ok {
		return ws, nil
	}
	return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
}

// GetByOwnerID retrieves a workspace by owner ID
func (m *MockWorkspaceRepository) GetByOwnerID(ownerID string) (*domain.Workspace, error) {
	if ws, ok := m.ByOwner[ownerID]; ok {
		return ws, nil
	}
	return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
}

// GetBySlug retrieves a workspace by slug
func (m *MockWorkspaceRepository) GetBySlug(slug string) (*domain.Workspace, error) {
	if ws, ok := m.BySlug[slug]; ok {
		return ws, nil
	}
	return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
}

// CreateWithOwner creates a workspace and its owner membership row
func (m *MockWorkspaceRepository) CreateWithOwner(workspace *domain.Workspace) (*domain.Workspace, error) {
	if _, ok := m.BySlug[workspace.Slug]; ok {
		return nil, domain.Conflict(domain.CodeSlugTaken, "Slug already exists")
	}
	workspace.ID = uuid.New()
	workspace.CreatedAt = time.Now()
	workspace.UpdatedAt = workspace.CreatedAt
	m.Workspaces[workspace.ID] = workspace
	m.ByOwner[workspace.OwnerID] = workspace
	m.BySlug[workspace.Slug] = workspace
	return workspace, nil
}

// Update updates a workspace's name and slug
func (m *MockWorkspaceRepository) Update(workspace *domain.Workspace) (*domain.Workspace, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(workspace)
	}
	existing, ok := m.Workspaces[workspace.ID]
	if !ok {
		return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
	}
	delete(m.BySlug, existing.Slug)
	existing.Name = workspace.Name
	existing.Slug = workspace.Slug
	existing.UpdatedAt = time.Now()
	m.BySlug[existing.Slug] = existing
	return existing, nil
}

// UpdateLogoURL sets a workspace's logo URL
func (m *MockWorkspaceRepository) UpdateLogoURL(id uuid.UUID, logoURL string) (*domain.Workspace, error) {
	ws, ok := m.Workspaces[id]
	if !ok {
		return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
	}
	ws.LogoURL = &logoURL
	ws.UpdatedAt = time.Now()
	return ws, nil
}

// AddStorageBytes adjusts a workspace's storage counter
func (m *MockWorkspaceRepository) AddStorageBytes(id uuid.UUID, delta int64) (*domain.Workspace, error) {
	ws, ok := m.Workspaces[id]
	if !ok {
		return nil, domain.NotFound(domain.CodeWorkspaceNotFound, "Workspace not found")
	}
	ws.CurrentStorageBytes += delta
	if ws.CurrentStorageBytes < 0 {
		ws.CurrentStorageBytes = 0
	}
	ws.UpdatedAt = time.Now()
	return ws, nil
}

// AddWorkspace adds a workspace to the mock repository (helper for tests)
func (m *MockWorkspaceRepository) AddWorkspace(ws *domain.Workspace) {
	m.Workspaces[ws.ID] = ws
	m.ByOwner[ws.OwnerID] = ws
	m.BySlug[ws.Slug] = ws
}

// MockWorkspaceMemberRepository is a mock implementation of domain.WorkspaceMemberRepository
type MockWorkspaceMemberRepository struct {
	Members    map[string]*domain.WorkspaceMember
	Profiles   map[string]*domain.User
	Workspaces *MockWorkspaceRepository
}

// NewMockWorkspaceMemberRepository creates a new MockWorkspaceMemberRepository
func NewMockWorkspaceMemberRepository(workspaces *MockWorkspaceRepository) *MockWorkspaceMemberRepository {
	return &MockWorkspaceMemberRepository{
		Members:    make(map[string]*domain.WorkspaceMember),
		Profiles:   make(map[string]*domain.User),
		Workspaces: workspaces,
	}
}

func memberKey(workspaceID uuid.UUID, userID string) string {
	return fmt.Sprintf("%s/%s", workspaceID, userID)
}

// GetMembership retrieves the membership row for (workspace, user)
func (m *MockWorkspaceMemberRepository) GetMembership(workspaceID uuid.UUID, userID string) (*domain.WorkspaceMember, error) {
	if member, ok := m.Members[memberKey(workspaceID, userID)]; ok {
		return member, nil
	}
	return nil, domain.NotFound(domain.CodeMemberNotFound, "Member not found in this workspace")
}

// ListByWorkspace returns all members of a workspace with their profiles
func (m *MockWorkspaceMemberRepository) ListByWorkspace(workspaceID uuid.UUID) ([]domain.MemberWithUser, error) {
	var members []domain.MemberWithUser
	for _, member := range m.Members {
		if member.WorkspaceID != workspaceID {
			continue
		}
		entry := domain.MemberWithUser{WorkspaceMember: *member}
		if profile, ok := m.Profiles[member.UserID]; ok {
			entry.Email = profile.Email
			entry.FirstName = profile.FirstName
			entry.LastName = profile.LastName
			entry.AvatarURL = profile.AvatarURL
		}
		if ws, ok := m.Workspaces.Workspaces[workspaceID]; ok {
			entry.IsOwner = member.UserID == ws.OwnerID
		}
		members = append(members, entry)
	}
	return members, nil
}

// ListWorkspacesByUser returns all workspaces the user belongs to
func (m *MockWorkspaceMemberRepository) ListWorkspacesByUser(userID string) ([]domain.UserWorkspace, error) {
	var workspaces []domain.UserWorkspace
	for _, member := range m.Members {
		if member.UserID != userID {
			continue
		}
		ws, ok := m.Workspaces.Workspaces[member.WorkspaceID]
		if !ok {
			continue
		}
		workspaces = append(workspaces, domain.UserWorkspace{
			Workspace:  *ws,
			Permission: member.Permission,
			JoinedAt:   member.JoinedAt,
		})
	}
	return workspaces, nil
}

// CountByWorkspace counts membership rows for a workspace
func (m *MockWorkspaceMemberRepository) CountByWorkspace(workspaceID uuid.UUID) (int64, error) {
	var count int64
	for _, member := range m.Members {
		if member.WorkspaceID == workspaceID {
			count++
		}
	}
	return count, nil
}

// AddWithLimit counts members and inserts the new row, enforcing the tier limit
func (m *MockWorkspaceMemberRepository) AddWithLimit(workspaceID uuid.UUID, userID string, permission domain.Permission, maxMembers int32) (*domain.WorkspaceMember, error) {
	count, _ := m.CountByWorkspace(workspaceID)
	if count >= int64(maxMembers) {
		return nil, domain.BadRequest(domain.CodeMemberLimit, "Workspace member limit exceeded")
	}
	key := memberKey(workspaceID, userID)
	if _, ok := m.Members[key]; ok {
		return nil, domain.Conflict(domain.CodeMemberExists, "User is already a member of this workspace")
	}
	member := &domain.WorkspaceMember{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Permission:  permission,
		JoinedAt:    time.Now(),
		UpdatedAt:   time.Now(),
	}
	m.Members[key] = member
	return member, nil
}

// UpdatePermission updates a member's permission level
func (m *MockWorkspaceMemberRepository) UpdatePermission(workspaceID uuid.UUID, userID string, permission domain.Permission) (*domain.WorkspaceMember, error) {
	member, ok := m.Members[memberKey(workspaceID, userID)]
	if !ok {
		return nil, domain.BadRequest(domain.CodeMemberNotFound, "Member not found in this workspace")
	}
	member.Permission = permission
	member.UpdatedAt = time.Now()
	return member, nil
}

// Delete removes a membership row
func (m *MockWorkspaceMemberRepository) Delete(workspaceID uuid.UUID, userID string) error {
	delete(m.Members, memberKey(workspaceID, userID))
	return nil
}

// AddMember adds a membership row to the mock repository (helper for tests)
func (m *MockWorkspaceMemberRepository) AddMember(member *domain.WorkspaceMember) {
	m.Members[memberKey(member.WorkspaceID, member.UserID)] = member
}

// MockLogoRepository is an in-memory implementation of storage.LogoRepository
type MockLogoRepository struct {
	Objects  map[string][]byte
	UploadFn func(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error)
}

// NewMockLogoRepository creates a new MockLogoRepository
func NewMockLogoRepository() *MockLogoRepository {
	return &MockLogoRepository{Objects: make(map[string][]byte)}
}

// Upload stores an object in memory and returns a fake URL
func (m *MockLogoRepository) Upload(ctx context.Context, objectPath string, data io.Reader, contentType string, size int64) (string, error) {
	if m.UploadFn != nil {
		return m.UploadFn(ctx, objectPath, data, contentType, size)
	}
	buf, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.Objects[objectPath] = buf
	return m.GenerateURL(objectPath), nil
}

// Head returns the stored size of an object, 0 when absent
func (m *MockLogoRepository) Head(ctx context.Context, objectPath string) (int64, error) {
	return int64(len(m.Objects[objectPath])), nil
}

// Delete removes an object
func (m *MockLogoRepository) Delete(ctx context.Context, objectPath string) error {
	delete(m.Objects, objectPath)
	return nil
}

// GenerateURL generates a fake URL for an object
func (m *MockLogoRepository) GenerateURL(objectPath string) string {
	return "https://storage.test/" + objectPath
}

// CapturingPublisher records published events for assertions
type CapturingPublisher struct {
	mu     sync.Mutex
	Events []websocket.Event
}

// Publish records the event
func (p *CapturingPublisher) Publish(workspaceID uuid.UUID, event websocket.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Events = append(p.Events, event)
}

// Published returns a copy of the recorded events
func (p *CapturingPublisher) Published() []websocket.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]websocket.Event, len(p.Events))
	copy(out, p.Events)
	return out
}
