package models

import "time"

// Expense is a shared cost recorded against a group. Amount is a flat,
// currency-agnostic decimal; the per-user breakdown lives in the
// participant rows and is never netted into balances here.
type Expense struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	PaidBy      string    `json:"paid_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Populated via JOIN on listings.
	GroupName    string                `json:"group_name,omitempty"`
	PayerName    *string               `json:"payer_name,omitempty"`
	Participants []*ExpenseParticipant `json:"participants,omitempty"`
}

// ExpenseParticipant attributes a share of an expense's amount to one user.
type ExpenseParticipant struct {
	ExpenseID   string  `json:"expense_id"`
	UserID      string  `json:"user_id"`
	ShareAmount float64 `json:"share_amount"`

	// Populated via JOIN on listings.
	FullName *string `json:"full_name,omitempty"`
}
