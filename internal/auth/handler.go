package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Raghavendrawissen/splitapp-client/pkg/middleware"
	"github.com/Raghavendrawissen/splitapp-client/pkg/response"
)

// Handler handles HTTP requests for authentication operations
type Handler struct {
	service *Service
	// requireAuth guards the endpoints that need an authenticated caller.
	requireAuth func(http.Handler) http.Handler
}

// NewHandler creates a new auth handler
func NewHandler(service *Service, requireAuth func(http.Handler) http.Handler) *Handler {
	return &Handler{service: service, requireAuth: requireAuth}
}

// Routes returns the router for auth endpoints
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/reset-password", h.ResetPassword)
	r.Post("/reset-password/exchange", h.ExchangeResetToken)

	r.Group(func(r chi.Router) {
		r.Use(h.requireAuth)
		r.Post("/logout", h.Logout)
		r.Post("/password", h.UpdatePassword)
	})

	return r
}

// Register handles POST /auth/register
// @Summary      Register a new account
// @Description  Create an identity and its profile, returning a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration request"
// @Success      201 {object} response.APIResponse{data=SessionResponse}
// @Failure      400 {object} response.APIResponse
// @Failure      409 {object} response.APIResponse
// @Router       /auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		response.BadRequest(w, "Email and password are required")
		return
	}

	session, err := h.service.Register(r.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, ErrWeakPassword) {
			response.BadRequest(w, err.Error())
			return
		}
		if errors.Is(err, ErrEmailExists) {
			response.Conflict(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to register")
		return
	}

	response.JSON(w, http.StatusCreated, session.ToResponse())
}

// Login handles POST /auth/login
// @Summary      Sign in
// @Description  Verify credentials and return a session token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Login request"
// @Success      200 {object} response.APIResponse{data=SessionResponse}
// @Failure      401 {object} response.APIResponse
// @Router       /auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	session, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to login")
		return
	}

	response.JSON(w, http.StatusOK, session.ToResponse())
}

// Logout handles POST /auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r.Context())
	email, _ := middleware.GetEmail(r.Context())
	h.service.Logout(userID, email)
	response.JSON(w, http.StatusOK, map[string]string{"message": "Signed out"})
}

// ResetPassword handles POST /auth/reset-password
// @Summary      Request a password reset email
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body ResetPasswordRequest true "Reset request"
// @Success      200 {object} response.APIResponse
// @Router       /auth/reset-password [post]
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}
	if req.Email == "" {
		response.BadRequest(w, "Email is required")
		return
	}

	if err := h.service.RequestPasswordReset(r.Context(), req.Email); err != nil {
		response.InternalError(w, "Failed to send reset email")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Reset email sent"})
}

// ExchangeResetToken handles POST /auth/reset-password/exchange
func (h *Handler) ExchangeResetToken(w http.ResponseWriter, r *http.Request) {
	var req ExchangeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	session, err := h.service.ExchangeResetToken(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, ErrInvalidResetToken) {
			response.Unauthorized(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to exchange reset token")
		return
	}

	response.JSON(w, http.StatusOK, session.ToResponse())
}

// UpdatePassword handles POST /auth/password
// @Summary      Set a new password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body UpdatePasswordRequest true "New password"
// @Success      200 {object} response.APIResponse
// @Failure      400 {object} response.APIResponse
// @Failure      401 {object} response.APIResponse
// @Router       /auth/password [post]
func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		response.Unauthorized(w, ErrUnauthenticated.Error())
		return
	}

	var req UpdatePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.service.UpdatePassword(r.Context(), userID, req.Password); err != nil {
		if errors.Is(err, ErrWeakPassword) {
			response.BadRequest(w, err.Error())
			return
		}
		response.InternalError(w, "Failed to update password")
		return
	}

	response.JSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
}
