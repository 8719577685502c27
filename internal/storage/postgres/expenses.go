package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

// CreateExpense inserts a new expense into the database.
func (s *PostgresStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	query := `
		INSERT INTO expenses (id, group_id, description, amount, paid_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(ctx, query,
		expense.ID, expense.GroupID, expense.Description, expense.Amount,
		expense.PaidBy, expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

// DeleteExpense removes an expense from the database.
func (s *PostgresStore) DeleteExpense(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// AddExpenseParticipants bulk-inserts participant rows.
func (s *PostgresStore) AddExpenseParticipants(ctx context.Context, participants []*models.ExpenseParticipant) error {
	query := `
		INSERT INTO expense_participants (expense_id, user_id, share_amount)
		VALUES ($1, $2, $3)
	`
	for _, p := range participants {
		if _, err := s.db.ExecContext(ctx, query, p.ExpenseID, p.UserID, p.ShareAmount); err != nil {
			return fmt.Errorf("failed to add participant: %w", err)
		}
	}
	return nil
}

// ListExpensesByUser retrieves expenses for the groups the user belongs
// to, newest first, enriched with group name, payer name and participants.
func (s *PostgresStore) ListExpensesByUser(ctx context.Context, userID string) ([]*models.Expense, error) {
	query := `
		SELECT e.id, e.group_id, e.description, e.amount, e.paid_by, e.created_at, e.updated_at,
		       g.name, p.full_name
		FROM expenses e
		JOIN groups g ON e.group_id = g.id
		LEFT JOIN profiles p ON e.paid_by = p.id
		WHERE e.group_id IN (SELECT group_id FROM group_members WHERE user_id = $1)
		ORDER BY e.created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	byID := make(map[string]*models.Expense)
	for rows.Next() {
		expense := &models.Expense{}
		if err := rows.Scan(
			&expense.ID,
			&expense.GroupID,
			&expense.Description,
			&expense.Amount,
			&expense.PaidBy,
			&expense.CreatedAt,
			&expense.UpdatedAt,
			&expense.GroupName,
			&expense.PayerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, expense)
		byID[expense.ID] = expense
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	if len(expenses) == 0 {
		return expenses, nil
	}

	ids := make([]string, len(expenses))
	for i, e := range expenses {
		ids[i] = e.ID
	}

	partQuery := `
		SELECT ep.expense_id, ep.user_id, ep.share_amount, p.full_name
		FROM expense_participants ep
		LEFT JOIN profiles p ON ep.user_id = p.id
		WHERE ep.expense_id = ANY($1)
	`
	partRows, err := s.db.QueryContext(ctx, partQuery, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer partRows.Close()

	for partRows.Next() {
		p := &models.ExpenseParticipant{}
		if err := partRows.Scan(&p.ExpenseID, &p.UserID, &p.ShareAmount, &p.FullName); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		if expense, ok := byID[p.ExpenseID]; ok {
			expense.Participants = append(expense.Participants, p)
		}
	}
	if err := partRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return expenses, nil
}
