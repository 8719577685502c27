package group

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Raghavendrawissen/splitapp-client/internal/auth"
	"github.com/Raghavendrawissen/splitapp-client/internal/models"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage"
)

// Service handles group business logic
type Service struct {
	store storage.Store
}

// NewService creates a new group service
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Create creates a new group and adds the creator as admin. The two
// writes are sequential and not atomic: when the membership insert fails,
// a best-effort delete of the group row is issued and the operation fails
// with the membership error. The compensating delete is not verified or
// retried, so a crash between the two steps can leave an orphan group.
func (s *Service) Create(ctx context.Context, userID string, req *CreateGroupRequest) (*models.Group, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}

	now := time.Now().UTC()
	group := &models.Group{
		ID:          uuid.New().String(),
		Name:        req.Name,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		return nil, err
	}

	member := &models.GroupMember{
		GroupID:   group.ID,
		UserID:    userID,
		Role:      models.RoleAdmin,
		CreatedAt: now,
	}
	if err := s.store.AddGroupMember(ctx, member); err != nil {
		if delErr := s.store.DeleteGroup(ctx, group.ID); delErr != nil {
			slog.Debug("compensating group delete failed", "group_id", group.ID, "error", delErr)
		}
		return nil, err
	}

	group.Members = []*models.GroupMember{member}
	return group, nil
}

// List retrieves the groups the caller is a member of.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Group, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}
	return s.store.ListGroupsByUser(ctx, userID)
}

// GetMembers retrieves the membership rows of a group joined to each
// member's profile. Membership of the caller is not re-checked here;
// access control is the storage policy's concern.
func (s *Service) GetMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error) {
	return s.store.ListGroupMembers(ctx, groupID)
}
