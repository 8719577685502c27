package expense

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Raghavendrawissen/splitapp-client/internal/auth"
	"github.com/Raghavendrawissen/splitapp-client/pkg/middleware"
	"github.com/Raghavendrawissen/splitapp-client/pkg/response"
)

// Handler handles HTTP requests for expense operations
type Handler struct {
	service *Service
}

// NewHandler creates a new expense handler
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router for expense endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Create)
	r.Get("/", h.List)

	return r
}

// Create handles POST /expenses
// @Summary      Create a new expense
// @Description  Record a shared expense in a group with per-member shares
// @Tags         expenses
// @Accept       json
// @Produce      json
// @Param        request body CreateExpenseRequest true "Expense creation request"
// @Success      201 {object} response.APIResponse{data=ExpenseResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Failure      403 {object} response.APIResponse
// @Router       /expenses [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, auth.ErrUnauthenticated.Error())
		return
	}

	var req CreateExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.GroupID == "" {
		response.BadRequest(w, "Group ID is required")
		return
	}
	if req.Description == "" {
		response.BadRequest(w, "Description is required")
		return
	}
	if req.Amount <= 0 {
		response.BadRequest(w, "Amount must be positive")
		return
	}
	var shareSum float64
	for _, p := range req.Participants {
		if p.UserID == "" {
			response.BadRequest(w, "Participant user ID is required")
			return
		}
		if p.ShareAmount < 0 {
			response.BadRequest(w, "Share amount must not be negative")
			return
		}
		shareSum += p.ShareAmount
	}
	if shareSum > req.Amount {
		response.BadRequest(w, "Participant shares exceed the expense amount")
		return
	}

	expense, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, auth.ErrUnauthenticated) {
			response.Unauthorized(w, err.Error())
			return
		}
		if errors.Is(err, ErrNotAMember) {
			response.Forbidden(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to create expense")
		return
	}

	response.JSON(w, http.StatusCreated, ToResponse(expense))
}

// List handles GET /expenses
// @Summary      List my expenses
// @Description  Get the expenses of all groups the current user belongs to, newest first
// @Tags         expenses
// @Produce      json
// @Success      200 {object} response.APIResponse{data=[]ExpenseResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /expenses [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, auth.ErrUnauthenticated.Error())
		return
	}

	expenses, err := h.service.List(r.Context(), userID)
	if err != nil {
		response.InternalError(w, "Failed to list expenses")
		return
	}

	expenseResponses := make([]*ExpenseResponse, len(expenses))
	for i, e := range expenses {
		expenseResponses[i] = ToResponse(e)
	}

	response.JSON(w, http.StatusOK, expenseResponses)
}
