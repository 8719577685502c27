package expense

import "github.com/Raghavendrawissen/splitapp-client/internal/models"

// ParticipantInput is one participant share supplied at creation
type ParticipantInput struct {
	UserID      string  `json:"user_id" validate:"required"`
	ShareAmount float64 `json:"share_amount" validate:"gte=0"`
}

// CreateExpenseRequest represents the request to create an expense
type CreateExpenseRequest struct {
	GroupID      string              `json:"group_id" validate:"required"`
	Description  string              `json:"description" validate:"required,min=1,max=255"`
	Amount       float64             `json:"amount" validate:"required,gt=0"`
	Participants []*ParticipantInput `json:"participants"`
}

// ParticipantResponse represents one participant share in a response
type ParticipantResponse struct {
	UserID      string  `json:"user_id"`
	ShareAmount float64 `json:"share_amount"`
	FullName    *string `json:"full_name,omitempty"`
}

// ExpenseResponse represents the response for an expense
type ExpenseResponse struct {
	ID           string                 `json:"id"`
	GroupID      string                 `json:"group_id"`
	GroupName    string                 `json:"group_name,omitempty"`
	Description  string                 `json:"description"`
	Amount       float64                `json:"amount"`
	PaidBy       string                 `json:"paid_by"`
	PayerName    *string                `json:"payer_name,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
	Participants []*ParticipantResponse `json:"participants,omitempty"`
}

// ToResponse converts an Expense model to an ExpenseResponse DTO
func ToResponse(e *models.Expense) *ExpenseResponse {
	resp := &ExpenseResponse{
		ID:          e.ID,
		GroupID:     e.GroupID,
		GroupName:   e.GroupName,
		Description: e.Description,
		Amount:      e.Amount,
		PaidBy:      e.PaidBy,
		PayerName:   e.PayerName,
		CreatedAt:   e.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt:   e.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
	for _, p := range e.Participants {
		resp.Participants = append(resp.Participants, &ParticipantResponse{
			UserID:      p.UserID,
			ShareAmount: p.ShareAmount,
			FullName:    p.FullName,
		})
	}
	return resp
}
