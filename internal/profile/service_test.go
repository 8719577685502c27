package profile

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/auth"
	"github.com/Raghavendrawissen/splitapp-client/internal/models"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage"
	"github.com/Raghavendrawissen/splitapp-client/internal/storage/sqlite"
)

type noopMailer struct{}

func (noopMailer) SendPasswordResetMail(to, link string) error { return nil }

func newTestService(t *testing.T, store storage.Store) *Service {
	t.Helper()
	jwt := auth.NewJWTManager("test-secret", time.Hour)
	authService := auth.NewService(store, jwt, noopMailer{}, auth.NewNotifier(), "http://localhost")
	return NewService(store, authService)
}

func newTestStore(t *testing.T) storage.Store {
	t.Helper()
	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store storage.Store, id, email, fullName string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	err := store.CreateUser(ctx, &models.User{ID: id, Email: email, FullName: fullName, PasswordHash: "hash", CreatedAt: now})
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	profile := &models.Profile{ID: id, FullName: &fullName, CreatedAt: now, UpdatedAt: now}
	if err := store.CreateProfile(ctx, profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
}

// mirrorFailStore fails the account-name write that follows a profile
// update.
type mirrorFailStore struct {
	storage.Store
}

func (f *mirrorFailStore) UpdateUserName(ctx context.Context, id, fullName string) error {
	return errors.New("account write rejected")
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	seedUser(t, store, "u1", "alice@example.com", "Alice")
	service := newTestService(t, store)

	t.Run("own profile", func(t *testing.T) {
		profile, err := service.Get(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get profile: %v", err)
		}
		if profile.FullName == nil || *profile.FullName != "Alice" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		_, err := service.Get(ctx, "missing")
		if !errors.Is(err, ErrProfileNotFound) {
			t.Errorf("expected ErrProfileNotFound, got %v", err)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := service.Get(ctx, "")
		if !errors.Is(err, auth.ErrUnauthenticated) {
			t.Errorf("expected ErrUnauthenticated, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates profile and mirrors name", func(t *testing.T) {
		store := newTestStore(t)
		seedUser(t, store, "u1", "alice@example.com", "Alice")
		service := newTestService(t, store)

		name := "Alice B"
		avatar := "https://example.com/a.png"
		profile, err := service.Update(ctx, "u1", &UpdateProfileRequest{FullName: &name, AvatarURL: &avatar})
		if err != nil {
			t.Fatalf("failed to update profile: %v", err)
		}
		if profile.FullName == nil || *profile.FullName != "Alice B" {
			t.Errorf("name not updated: %+v", profile)
		}
		if profile.AvatarURL == nil || *profile.AvatarURL != avatar {
			t.Errorf("avatar not updated: %+v", profile)
		}

		user, err := store.GetUserByID(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}
		if user.FullName != "Alice B" {
			t.Errorf("account name not mirrored: %q", user.FullName)
		}
	})

	t.Run("mirror failure keeps profile update", func(t *testing.T) {
		store := newTestStore(t)
		seedUser(t, store, "u1", "alice@example.com", "Alice")
		service := newTestService(t, &mirrorFailStore{Store: store})

		name := "Alice B"
		profile, err := service.Update(ctx, "u1", &UpdateProfileRequest{FullName: &name})
		if err != nil {
			t.Fatalf("expected update to succeed despite mirror failure, got %v", err)
		}
		if profile.FullName == nil || *profile.FullName != "Alice B" {
			t.Errorf("name not updated: %+v", profile)
		}

		// The account record keeps the old name until the next update.
		user, err := store.GetUserByID(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}
		if user.FullName != "Alice" {
			t.Errorf("expected stale account name, got %q", user.FullName)
		}
	})

	t.Run("partial update keeps other fields", func(t *testing.T) {
		store := newTestStore(t)
		seedUser(t, store, "u1", "alice@example.com", "Alice")
		service := newTestService(t, store)

		avatar := "https://example.com/a.png"
		profile, err := service.Update(ctx, "u1", &UpdateProfileRequest{AvatarURL: &avatar})
		if err != nil {
			t.Fatalf("failed to update profile: %v", err)
		}
		if profile.FullName == nil || *profile.FullName != "Alice" {
			t.Errorf("name lost on avatar-only update: %+v", profile)
		}
	})

	t.Run("missing profile", func(t *testing.T) {
		store := newTestStore(t)
		service := newTestService(t, store)

		name := "Nobody"
		_, err := service.Update(ctx, "missing", &UpdateProfileRequest{FullName: &name})
		if !errors.Is(err, ErrProfileNotFound) {
			t.Errorf("expected ErrProfileNotFound, got %v", err)
		}
	})
}
