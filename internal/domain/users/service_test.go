package users

import (
	"context"
	"errors"
	"testing"

	"medecho/internal/adapters/storage/memory"
)

func TestService_Create_NormalizesEmail(t *testing.T) {
	svc := NewService(memory.NewKV())

	u, err := svc.Create(context.Background(), CreateInput{Email: "  Asha@Example.COM ", Name: "Asha"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.Email != "asha@example.com" {
		t.Fatalf("expected normalized email, got %q", u.Email)
	}
	if u.PreferredLanguage != LangEnglish {
		t.Fatalf("expected default language english, got %q", u.PreferredLanguage)
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	cases := []CreateInput{
		{Email: ""},
		{Email: "not-an-email"},
		{Email: "a@b.com", PreferredLanguage: "klingon"},
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Login_FindOrCreate(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	first, err := svc.Login(ctx, "demo@medecho.com", "Demo User")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if first.ID == "" {
		t.Fatalf("expected created user with id")
	}

	again, err := svc.Login(ctx, "demo@medecho.com", "ignored")
	if err != nil {
		t.Fatalf("second Login error: %v", err)
	}
	if again.ID != first.ID {
		t.Fatalf("expected same user on repeat login: %s vs %s", again.ID, first.ID)
	}

	all, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected single user record, got %d", len(all))
	}
}

func TestService_Current_WithoutSession(t *testing.T) {
	svc := NewService(memory.NewKV())
	if _, err := svc.Current(context.Background()); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
}

func TestService_Current_SurvivesRestart(t *testing.T) {
	kv := memory.NewKV()
	ctx := context.Background()

	svc := NewService(kv)
	u, err := svc.Login(ctx, "asha@example.com", "Asha")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	// Proceso nuevo sobre el mismo KV: la sesión se recupera del respaldo.
	fresh := NewService(kv)
	got, err := fresh.Current(ctx)
	if err != nil {
		t.Fatalf("Current after restart error: %v", err)
	}
	if got.ID != u.ID {
		t.Fatalf("expected session user %s, got %s", u.ID, got.ID)
	}
}

func TestService_Logout(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "asha@example.com", "Asha"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("Logout error: %v", err)
	}
	if _, err := svc.Current(ctx); !errors.Is(err, ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated after logout, got %v", err)
	}
}

func TestService_UpdateProfile_RefreshesSession(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "asha@example.com", "Asha"); err != nil {
		t.Fatalf("Login error: %v", err)
	}

	updated, err := svc.UpdateProfile(ctx, map[string]any{
		"blood_group":        "O+",
		"preferred_language": "hindi",
		"allergies":          []string{"penicillin"},
	})
	if err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if updated.BloodGroup != "O+" || updated.PreferredLanguage != LangHindi {
		t.Fatalf("patch not applied: %#v", updated)
	}

	current, err := svc.Current(ctx)
	if err != nil {
		t.Fatalf("Current error: %v", err)
	}
	if current.BloodGroup != "O+" || len(current.Allergies) != 1 {
		t.Fatalf("session not refreshed: %#v", current)
	}
}

func TestService_UpdateProfile_ValidatesEnums(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	if _, err := svc.Login(ctx, "asha@example.com", "Asha"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, map[string]any{"gender": "unknown"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad gender, got %v", err)
	}
	if _, err := svc.UpdateProfile(ctx, map[string]any{"preferred_language": "esperanto"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad language, got %v", err)
	}
}
