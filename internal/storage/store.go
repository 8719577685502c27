// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// Store defines the row-level operations the services are built on. The
// interface deliberately exposes only single-row and bulk-row operations,
// never a multi-statement transaction: multi-step writes in the services
// compensate with best-effort deletes instead. The abstraction allows
// swapping backends (PostgreSQL for deployment, SQLite for tests and
// local development) without changing the service layer.
type Store interface {
	// Users (authentication identities).

	// CreateUser persists a new identity. The caller assigns the ID.
	CreateUser(ctx context.Context, user *models.User) error
	// GetUserByEmail returns nil, nil when no identity has the email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	// GetUserByID returns nil, nil when the identity does not exist.
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	// UpdateUserPassword replaces the stored credential hash.
	UpdateUserPassword(ctx context.Context, id, passwordHash string) error
	// UpdateUserName updates the identity's display-name metadata.
	UpdateUserName(ctx context.Context, id, fullName string) error

	// Password reset tokens.

	CreateResetToken(ctx context.Context, token *models.ResetToken) error
	// GetResetToken returns nil, nil when the token does not exist.
	GetResetToken(ctx context.Context, token string) (*models.ResetToken, error)
	DeleteResetToken(ctx context.Context, token string) error

	// Profiles.

	CreateProfile(ctx context.Context, profile *models.Profile) error
	// GetProfile returns nil, nil when the profile does not exist.
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
	// UpdateProfile overwrites full name and avatar for the given owner.
	// Nil fields clear the stored value, matching an unconditional column
	// update rather than a COALESCE merge.
	UpdateProfile(ctx context.Context, profile *models.Profile) error

	// Groups and memberships.

	CreateGroup(ctx context.Context, group *models.Group) error
	// DeleteGroup removes a group row by ID. Used only as the compensating
	// delete after a failed membership insert.
	DeleteGroup(ctx context.Context, id string) error
	// ListGroupsByUser returns the groups joined to membership rows held
	// by the user; each group carries the caller's own membership row.
	ListGroupsByUser(ctx context.Context, userID string) ([]*models.Group, error)
	AddGroupMember(ctx context.Context, member *models.GroupMember) error
	// GetGroupMember returns nil, nil when the user holds no membership
	// row for the group.
	GetGroupMember(ctx context.Context, groupID, userID string) (*models.GroupMember, error)
	// ListGroupMembers returns the group's membership rows joined to each
	// member's profile full name.
	ListGroupMembers(ctx context.Context, groupID string) ([]*models.GroupMember, error)

	// Expenses and participants.

	CreateExpense(ctx context.Context, expense *models.Expense) error
	// DeleteExpense removes an expense row by ID. Used only as the
	// compensating delete after a failed participant insert.
	DeleteExpense(ctx context.Context, id string) error
	// AddExpenseParticipants bulk-inserts participant rows. Partial
	// success is not reported distinctly from total failure.
	AddExpenseParticipants(ctx context.Context, participants []*models.ExpenseParticipant) error
	// ListExpensesByUser returns every expense in a group the user is a
	// member of, enriched with the group name, payer name and participant
	// rows, ordered by creation time descending.
	ListExpensesByUser(ctx context.Context, userID string) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
