package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage"
)

// Common errors
var (
	ErrUnauthenticated    = errors.New("user not authenticated")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")
)

// resetTokenTTL bounds how long an emailed reset link stays usable.
const resetTokenTTL = time.Hour

// recoverySessionTTL is the lifetime of the token issued when a reset
// token is exchanged; just long enough to set a new password.
const recoverySessionTTL = 15 * time.Minute

// Mailer delivers password reset links.
type Mailer interface {
	SendPasswordResetMail(to, link string) error
}

// Session is the result of a successful authentication.
type Session struct {
	Token string
	User  *models.User
}

// Service implements the session-store operations: registration, login,
// password reset and update, and identity-change notifications.
type Service struct {
	store    storage.Store
	jwt      *JWTManager
	mailer   Mailer
	notifier *Notifier
	baseURL  string
}

// NewService creates a new auth service.
func NewService(store storage.Store, jwt *JWTManager, mailer Mailer, notifier *Notifier, baseURL string) *Service {
	return &Service{
		store:    store,
		jwt:      jwt,
		mailer:   mailer,
		notifier: notifier,
		baseURL:  baseURL,
	}
}

// Notifier exposes the identity-change notifier for subscribers.
func (s *Service) Notifier() *Notifier {
	return s.notifier
}

// Register creates a new identity with a hashed password, its profile
// row, and signs the user in.
func (s *Service) Register(ctx context.Context, email, password, fullName string) (*Session, error) {
	if len(password) < 8 {
		return nil, ErrWeakPassword
	}

	existing, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		FullName:     fullName,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	profile := &models.Profile{
		ID:        user.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if fullName != "" {
		profile.FullName = &fullName
	}
	if err := s.store.CreateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return s.signIn(user)
}

// Login verifies the credentials and signs the user in.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.signIn(user)
}

func (s *Service) signIn(user *models.User) (*Session, error) {
	token, err := s.jwt.Generate(user.ID, user.Email)
	if err != nil {
		return nil, err
	}
	s.notifier.notify(Event{Type: EventSignedIn, UserID: user.ID, Email: user.Email, At: time.Now()})
	return &Session{Token: token, User: user}, nil
}

// Logout emits a signed-out notification. Tokens are stateless, so there
// is nothing to revoke server-side.
func (s *Service) Logout(userID, email string) {
	s.notifier.notify(Event{Type: EventSignedOut, UserID: userID, Email: email, At: time.Now()})
}

// RequestPasswordReset emails a single-use reset link. Unknown addresses
// succeed silently so the endpoint does not reveal which emails exist.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	now := time.Now().UTC()
	token := &models.ResetToken{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: now.Add(resetTokenTTL),
		CreatedAt: now,
	}
	if err := s.store.CreateResetToken(ctx, token); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, token.Token)
	return s.mailer.SendPasswordResetMail(user.Email, link)
}

// ExchangeResetToken redeems an emailed reset token for a short-lived
// recovery session. The token is single-use.
func (s *Service) ExchangeResetToken(ctx context.Context, token string) (*Session, error) {
	rt, err := s.store.GetResetToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if rt == nil || time.Now().After(rt.ExpiresAt) {
		return nil, ErrInvalidResetToken
	}

	if err := s.store.DeleteResetToken(ctx, token); err != nil {
		return nil, err
	}

	user, err := s.store.GetUserByID(ctx, rt.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidResetToken
	}

	jwtToken, err := s.jwt.GenerateWithTTL(user.ID, user.Email, recoverySessionTTL)
	if err != nil {
		return nil, err
	}
	return &Session{Token: jwtToken, User: user}, nil
}

// UpdatePassword sets a new password for the authenticated identity.
func (s *Service) UpdatePassword(ctx context.Context, userID, newPassword string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	if len(newPassword) < 8 {
		return ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	return s.store.UpdateUserPassword(ctx, userID, string(hash))
}

// UpdateUserName updates the identity's display-name metadata. Called by
// the profile service after a profile row update.
func (s *Service) UpdateUserName(ctx context.Context, userID, fullName string) error {
	if userID == "" {
		return ErrUnauthenticated
	}
	return s.store.UpdateUserName(ctx, userID, fullName)
}
