package expense

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Raghavendrawissen/splitapp-client/internal/auth"
	"github.com/Raghavendrawissen/splitapp-client/internal/models"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage"
)

// Common errors
var (
	ErrNotAMember = errors.New("you must be a member of the group to create expenses")
)

// Service handles expense business logic
type Service struct {
	store storage.Store
}

// NewService creates a new expense service
func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Create records a new expense with its participant shares. The caller
// must hold a membership row for the group; a failed membership lookup
// counts as not being a member and performs zero writes. The expense
// insert and the participant bulk insert are sequential and not atomic:
// when the participant insert fails, a best-effort delete of the expense
// row is issued and the operation fails with the participant error. The
// compensating delete is not verified or retried.
func (s *Service) Create(ctx context.Context, userID string, req *CreateExpenseRequest) (*models.Expense, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}

	member, err := s.store.GetGroupMember(ctx, req.GroupID, userID)
	if err != nil || member == nil {
		return nil, ErrNotAMember
	}

	now := time.Now().UTC()
	expense := &models.Expense{
		ID:          uuid.New().String(),
		GroupID:     req.GroupID,
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	if len(req.Participants) > 0 {
		participants := make([]*models.ExpenseParticipant, len(req.Participants))
		for i, p := range req.Participants {
			participants[i] = &models.ExpenseParticipant{
				ExpenseID:   expense.ID,
				UserID:      p.UserID,
				ShareAmount: p.ShareAmount,
			}
		}
		if err := s.store.AddExpenseParticipants(ctx, participants); err != nil {
			if delErr := s.store.DeleteExpense(ctx, expense.ID); delErr != nil {
				slog.Debug("compensating expense delete failed", "expense_id", expense.ID, "error", delErr)
			}
			return nil, err
		}
	}

	// Participants are not re-fetched; callers needing the enriched
	// shape re-query the listing.
	return expense, nil
}

// List retrieves the expenses of every group the caller belongs to,
// newest first. The descending creation-time order feeds the recent
// activity view and must hold exactly.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Expense, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}
	return s.store.ListExpensesByUser(ctx, userID)
}
