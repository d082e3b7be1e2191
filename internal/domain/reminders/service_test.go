package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"medecho/internal/adapters/storage/memory"
)

func newTestService() *Service {
	return NewService(memory.NewKV())
}

func TestService_Create_DefaultsActive(t *testing.T) {
	svc := newTestService()

	r, err := svc.Create(context.Background(), CreateInput{
		UserID:         "u1",
		MedicationName: "Paracetamol",
		Dosage:         "500mg",
		Frequency:      "daily",
		Time:           "09:00",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !r.IsActive {
		t.Fatalf("expected is_active default true")
	}
	if r.ID == "" || !r.CreatedDate.Equal(r.UpdatedDate) {
		t.Fatalf("expected system fields assigned: %#v", r)
	}
}

func TestService_Create_ExplicitInactive(t *testing.T) {
	svc := newTestService()

	inactive := false
	r, err := svc.Create(context.Background(), CreateInput{
		UserID:         "u1",
		MedicationName: "Paracetamol",
		Frequency:      "weekly",
		Time:           "09:00",
		IsActive:       &inactive,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if r.IsActive {
		t.Fatalf("expected is_active false when given explicitly")
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []CreateInput{
		{UserID: "", MedicationName: "m", Frequency: "daily", Time: "09:00"},
		{UserID: "u1", MedicationName: "", Frequency: "daily", Time: "09:00"},
		{UserID: "u1", MedicationName: "m", Frequency: "hourly", Time: "09:00"},
		{UserID: "u1", MedicationName: "m", Frequency: "daily", Time: "9am"},
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Update_ValidatesEnumFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	r, err := svc.Create(ctx, CreateInput{
		UserID: "u1", MedicationName: "m", Frequency: "daily", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Update(ctx, r.ID, map[string]any{"frequency": "whenever"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected rejection of unknown frequency, got %v", err)
	}
	if _, err := svc.Update(ctx, r.ID, map[string]any{"time": "99:99"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected rejection of bad time, got %v", err)
	}

	updated, err := svc.Update(ctx, r.ID, map[string]any{"frequency": "twice_daily", "dosage": "1 tab"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Frequency != FrequencyTwiceDaily || updated.Dosage != "1 tab" {
		t.Fatalf("patch not applied: %#v", updated)
	}
}

func TestService_Update_Missing(t *testing.T) {
	svc := newTestService()
	if _, err := svc.Update(context.Background(), "nope", map[string]any{"dosage": "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestService_ToggleActive(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	r, err := svc.Create(ctx, CreateInput{
		UserID: "u1", MedicationName: "m", Frequency: "daily", Time: "09:00",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	off, err := svc.ToggleActive(ctx, r.ID)
	if err != nil {
		t.Fatalf("ToggleActive error: %v", err)
	}
	if off.IsActive {
		t.Fatalf("expected inactive after first toggle")
	}

	on, err := svc.ToggleActive(ctx, r.ID)
	if err != nil {
		t.Fatalf("ToggleActive #2 error: %v", err)
	}
	if !on.IsActive {
		t.Fatalf("expected active after second toggle")
	}
}

func TestService_DueNow_OnlyActiveOfUser(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	mk := func(user, med, tm string, active bool) {
		t.Helper()
		_, err := svc.Create(ctx, CreateInput{
			UserID: user, MedicationName: med, Frequency: "daily", Time: tm, IsActive: &active,
		})
		if err != nil {
			t.Fatalf("Create %s error: %v", med, err)
		}
	}

	mk("u1", "in-window", "15:00", true)
	mk("u1", "inactive", "15:00", false)
	mk("u1", "out-of-window", "20:00", true)
	mk("u2", "other-user", "15:00", true)

	due, err := svc.DueNow(ctx, "u1")
	if err != nil {
		t.Fatalf("DueNow error: %v", err)
	}
	if len(due) != 1 || due[0].MedicationName != "in-window" {
		t.Fatalf("unexpected due set: %#v", due)
	}
}

func TestService_NextToday(t *testing.T) {
	svc := newTestService()
	svc.now = func() time.Time { return time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	for _, tm := range []string{"08:00", "13:30", "20:00"} {
		if _, err := svc.Create(ctx, CreateInput{
			UserID: "u1", MedicationName: "m-" + tm, Frequency: "daily", Time: tm,
		}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	r, ok, err := svc.NextToday(ctx, "u1")
	if err != nil || !ok {
		t.Fatalf("NextToday error: ok=%v err=%v", ok, err)
	}
	if r.Time != "13:30" {
		t.Fatalf("expected 13:30, got %s", r.Time)
	}

	svc.now = func() time.Time { return time.Date(2026, 3, 10, 21, 0, 0, 0, time.UTC) }
	if _, ok, _ := svc.NextToday(ctx, "u1"); ok {
		t.Fatalf("expected no next reminder at 21:00")
	}
}
