package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Raghavendrawissen/splitapp-client/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func seedUser(t *testing.T, store *SQLiteStore, id, email, fullName string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	user := &models.User{ID: id, Email: email, FullName: fullName, PasswordHash: "hash", CreatedAt: now}
	if err := store.CreateUser(ctx, user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	profile := &models.Profile{ID: id, CreatedAt: now, UpdatedAt: now}
	if fullName != "" {
		profile.FullName = &fullName
	}
	if err := store.CreateProfile(ctx, profile); err != nil {
		t.Fatalf("failed to create profile: %v", err)
	}
}

func seedGroup(t *testing.T, store *SQLiteStore, groupID string, memberIDs ...string) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()
	group := &models.Group{ID: groupID, Name: "group " + groupID, CreatedAt: now, UpdatedAt: now}
	if err := store.CreateGroup(ctx, group); err != nil {
		t.Fatalf("failed to create group: %v", err)
	}
	for i, userID := range memberIDs {
		role := models.RoleMember
		if i == 0 {
			role = models.RoleAdmin
		}
		member := &models.GroupMember{GroupID: groupID, UserID: userID, Role: role, CreatedAt: now}
		if err := store.AddGroupMember(ctx, member); err != nil {
			t.Fatalf("failed to add member: %v", err)
		}
	}
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("round trip", func(t *testing.T) {
		seedUser(t, store, "u1", "alice@example.com", "Alice")

		byEmail, err := store.GetUserByEmail(ctx, "alice@example.com")
		if err != nil {
			t.Fatalf("failed to get user by email: %v", err)
		}
		if byEmail == nil || byEmail.ID != "u1" || byEmail.FullName != "Alice" {
			t.Errorf("unexpected user: %+v", byEmail)
		}

		byID, err := store.GetUserByID(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get user by id: %v", err)
		}
		if byID == nil || byID.Email != "alice@example.com" {
			t.Errorf("unexpected user: %+v", byID)
		}
	})

	t.Run("absent user returns nil", func(t *testing.T) {
		user, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user != nil {
			t.Errorf("expected nil user, got %+v", user)
		}
	})

	t.Run("update password and name", func(t *testing.T) {
		if err := store.UpdateUserPassword(ctx, "u1", "newhash"); err != nil {
			t.Fatalf("failed to update password: %v", err)
		}
		if err := store.UpdateUserName(ctx, "u1", "Alice B"); err != nil {
			t.Fatalf("failed to update name: %v", err)
		}
		user, err := store.GetUserByID(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get user: %v", err)
		}
		if user.PasswordHash != "newhash" || user.FullName != "Alice B" {
			t.Errorf("updates not applied: %+v", user)
		}
	})
}

func TestResetTokens(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "u1", "alice@example.com", "Alice")

	now := time.Now().UTC()
	token := &models.ResetToken{Token: "tok-1", UserID: "u1", ExpiresAt: now.Add(time.Hour), CreatedAt: now}
	if err := store.CreateResetToken(ctx, token); err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	got, err := store.GetResetToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("failed to get token: %v", err)
	}
	if got == nil || got.UserID != "u1" {
		t.Fatalf("unexpected token: %+v", got)
	}
	if !got.ExpiresAt.After(now) {
		t.Errorf("expiry not preserved: %v", got.ExpiresAt)
	}

	if err := store.DeleteResetToken(ctx, "tok-1"); err != nil {
		t.Fatalf("failed to delete token: %v", err)
	}
	got, err = store.GetResetToken(ctx, "tok-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after delete, got %+v", got)
	}
}

func TestProfiles(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "u1", "alice@example.com", "Alice")

	t.Run("get", func(t *testing.T) {
		profile, err := store.GetProfile(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get profile: %v", err)
		}
		if profile == nil || profile.FullName == nil || *profile.FullName != "Alice" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("update overwrites all fields", func(t *testing.T) {
		name := "Alice B"
		avatar := "https://example.com/a.png"
		now := time.Now().UTC()
		err := store.UpdateProfile(ctx, &models.Profile{ID: "u1", FullName: &name, AvatarURL: &avatar, UpdatedAt: now})
		if err != nil {
			t.Fatalf("failed to update profile: %v", err)
		}

		profile, err := store.GetProfile(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get profile: %v", err)
		}
		if profile.AvatarURL == nil || *profile.AvatarURL != avatar {
			t.Errorf("avatar not updated: %+v", profile)
		}

		// Nil fields clear the stored values.
		err = store.UpdateProfile(ctx, &models.Profile{ID: "u1", UpdatedAt: time.Now().UTC()})
		if err != nil {
			t.Fatalf("failed to update profile: %v", err)
		}
		profile, err = store.GetProfile(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to get profile: %v", err)
		}
		if profile.FullName != nil || profile.AvatarURL != nil {
			t.Errorf("expected cleared fields, got %+v", profile)
		}
	})

	t.Run("absent profile returns nil", func(t *testing.T) {
		profile, err := store.GetProfile(ctx, "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if profile != nil {
			t.Errorf("expected nil profile, got %+v", profile)
		}
	})
}

func TestGroups(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "u1", "alice@example.com", "Alice")
	seedUser(t, store, "u2", "bob@example.com", "Bob")
	seedGroup(t, store, "g1", "u1", "u2")
	seedGroup(t, store, "g2", "u2")

	t.Run("get member", func(t *testing.T) {
		member, err := store.GetGroupMember(ctx, "g1", "u1")
		if err != nil {
			t.Fatalf("failed to get member: %v", err)
		}
		if member == nil || member.Role != models.RoleAdmin {
			t.Errorf("unexpected member: %+v", member)
		}
	})

	t.Run("non-member returns nil", func(t *testing.T) {
		member, err := store.GetGroupMember(ctx, "g2", "u1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if member != nil {
			t.Errorf("expected nil member, got %+v", member)
		}
	})

	t.Run("list groups by user", func(t *testing.T) {
		groups, err := store.ListGroupsByUser(ctx, "u2")
		if err != nil {
			t.Fatalf("failed to list groups: %v", err)
		}
		if len(groups) != 2 {
			t.Fatalf("expected 2 groups, got %d", len(groups))
		}

		groups, err = store.ListGroupsByUser(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to list groups: %v", err)
		}
		if len(groups) != 1 || groups[0].ID != "g1" {
			t.Errorf("unexpected groups: %+v", groups)
		}
	})

	t.Run("list members joins profile names", func(t *testing.T) {
		members, err := store.ListGroupMembers(ctx, "g1")
		if err != nil {
			t.Fatalf("failed to list members: %v", err)
		}
		if len(members) != 2 {
			t.Fatalf("expected 2 members, got %d", len(members))
		}
		names := make(map[string]string)
		for _, m := range members {
			if m.FullName != nil {
				names[m.UserID] = *m.FullName
			}
		}
		if names["u1"] != "Alice" || names["u2"] != "Bob" {
			t.Errorf("unexpected member names: %v", names)
		}
	})

	t.Run("delete group removes memberships", func(t *testing.T) {
		if err := store.DeleteGroup(ctx, "g2"); err != nil {
			t.Fatalf("failed to delete group: %v", err)
		}
		member, err := store.GetGroupMember(ctx, "g2", "u2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if member != nil {
			t.Errorf("expected membership gone, got %+v", member)
		}
	})
}

func TestExpenses(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	seedUser(t, store, "u1", "alice@example.com", "Alice")
	seedUser(t, store, "u2", "bob@example.com", "Bob")
	seedGroup(t, store, "g1", "u1", "u2")

	addExpense := func(id, desc string, amount float64, at time.Time) {
		t.Helper()
		expense := &models.Expense{
			ID: id, GroupID: "g1", Description: desc, Amount: amount, PaidBy: "u1",
			CreatedAt: at, UpdatedAt: at,
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("failed to create expense: %v", err)
		}
	}

	base := time.Now().UTC()
	addExpense("e1", "groceries", 30, base)
	addExpense("e2", "lunch", 20, base.Add(time.Millisecond))
	addExpense("e3", "taxi", 12.5, base.Add(2*time.Millisecond))

	participants := []*models.ExpenseParticipant{
		{ExpenseID: "e2", UserID: "u1", ShareAmount: 10},
		{ExpenseID: "e2", UserID: "u2", ShareAmount: 10},
	}
	if err := store.AddExpenseParticipants(ctx, participants); err != nil {
		t.Fatalf("failed to add participants: %v", err)
	}

	t.Run("list is newest first", func(t *testing.T) {
		expenses, err := store.ListExpensesByUser(ctx, "u2")
		if err != nil {
			t.Fatalf("failed to list expenses: %v", err)
		}
		if len(expenses) != 3 {
			t.Fatalf("expected 3 expenses, got %d", len(expenses))
		}
		for i, want := range []string{"e3", "e2", "e1"} {
			if expenses[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, expenses[i].ID)
			}
		}
	})

	t.Run("list enriches group and payer", func(t *testing.T) {
		expenses, err := store.ListExpensesByUser(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to list expenses: %v", err)
		}
		lunch := expenses[1]
		if lunch.GroupName != "group g1" {
			t.Errorf("unexpected group name: %q", lunch.GroupName)
		}
		if lunch.PayerName == nil || *lunch.PayerName != "Alice" {
			t.Errorf("unexpected payer name: %v", lunch.PayerName)
		}
		if len(lunch.Participants) != 2 {
			t.Fatalf("expected 2 participants, got %d", len(lunch.Participants))
		}
	})

	t.Run("non-member sees nothing", func(t *testing.T) {
		seedUser(t, store, "u3", "carol@example.com", "Carol")
		expenses, err := store.ListExpensesByUser(ctx, "u3")
		if err != nil {
			t.Fatalf("failed to list expenses: %v", err)
		}
		if len(expenses) != 0 {
			t.Errorf("expected no expenses, got %d", len(expenses))
		}
	})

	t.Run("delete expense removes participants", func(t *testing.T) {
		if err := store.DeleteExpense(ctx, "e2"); err != nil {
			t.Fatalf("failed to delete expense: %v", err)
		}
		expenses, err := store.ListExpensesByUser(ctx, "u1")
		if err != nil {
			t.Fatalf("failed to list expenses: %v", err)
		}
		if len(expenses) != 2 {
			t.Fatalf("expected 2 expenses, got %d", len(expenses))
		}
		for _, e := range expenses {
			if e.ID == "e2" {
				t.Errorf("deleted expense still listed")
			}
			if len(e.Participants) != 0 {
				t.Errorf("expense %s has orphan participants", e.ID)
			}
		}
	})
}
