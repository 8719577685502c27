package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateExpense persists a new expense row.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO expenses (id, group_id, description, amount, paid_by, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
		expense.ID, expense.GroupID, expense.Description, expense.Amount, expense.PaidBy,
		expense.CreatedAt.UnixNano(), expense.UpdatedAt.UnixNano(),
	)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense row by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// AddExpenseParticipants bulk-inserts participant rows.
func (s *SQLiteStore) AddExpenseParticipants(ctx context.Context, participants []*models.ExpenseParticipant) error {
	now := time.Now().UTC().UnixNano()
	for _, p := range participants {
		_, err := s.db.ExecContext(ctx,
			"INSERT INTO expense_participants (expense_id, user_id, share_amount, created_at) VALUES (?, ?, ?, ?)",
			p.ExpenseID, p.UserID, p.ShareAmount, now,
		)
		if err != nil {
			return fmt.Errorf("failed to add participant: %w", err)
		}
	}
	return nil
}

// ListExpensesByUser retrieves expenses for the groups the user belongs
// to, newest first, enriched with group name, payer name and participants.
func (s *SQLiteStore) ListExpensesByUser(ctx context.Context, userID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.group_id, e.description, e.amount, e.paid_by, e.created_at, e.updated_at,
		       g.name, p.full_name
		FROM expenses e
		JOIN groups g ON e.group_id = g.id
		LEFT JOIN profiles p ON e.paid_by = p.id
		WHERE e.group_id IN (SELECT group_id FROM group_members WHERE user_id = ?)
		ORDER BY e.created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var createdAt, updatedAt int64
		if err := rows.Scan(
			&expense.ID, &expense.GroupID, &expense.Description, &expense.Amount, &expense.PaidBy,
			&createdAt, &updatedAt, &expense.GroupName, &expense.PayerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expense.CreatedAt = time.Unix(0, createdAt)
		expense.UpdatedAt = time.Unix(0, updatedAt)
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		participants, err := s.listParticipants(ctx, expense.ID)
		if err != nil {
			return nil, err
		}
		expense.Participants = participants
	}
	return expenses, nil
}

func (s *SQLiteStore) listParticipants(ctx context.Context, expenseID string) ([]*models.ExpenseParticipant, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT ep.expense_id, ep.user_id, ep.share_amount, p.full_name
		FROM expense_participants ep
		LEFT JOIN profiles p ON ep.user_id = p.id
		WHERE ep.expense_id = ?`,
		expenseID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var participants []*models.ExpenseParticipant
	for rows.Next() {
		p := &models.ExpenseParticipant{}
		if err := rows.Scan(&p.ExpenseID, &p.UserID, &p.ShareAmount, &p.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}
