package consultations

import (
	"context"
	"errors"
	"testing"
	"time"

	"medecho/internal/adapters/storage/memory"
)

func TestService_Create_DefaultsScheduled(t *testing.T) {
	svc := NewService(memory.NewKV())

	c, err := svc.Create(context.Background(), CreateInput{
		UserID:        "u1",
		DoctorName:    "Dr. Asha",
		AppointmentAt: time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC),
		Type:          "video",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.Status != StatusScheduled {
		t.Fatalf("expected default status scheduled, got %q", c.Status)
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()
	at := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	cases := []CreateInput{
		{UserID: "", DoctorName: "d", AppointmentAt: at, Type: "video"},
		{UserID: "u1", DoctorName: "", AppointmentAt: at, Type: "video"},
		{UserID: "u1", DoctorName: "d", Type: "video"}, // sin fecha
		{UserID: "u1", DoctorName: "d", AppointmentAt: at, Type: "fax"},
		{UserID: "u1", DoctorName: "d", AppointmentAt: at, Type: "video", Status: "pending"},
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_UpcomingByUser(t *testing.T) {
	svc := NewService(memory.NewKV())
	svc.now = func() time.Time { return time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	mk := func(doctor string, at time.Time, status string) {
		t.Helper()
		c, err := svc.Create(ctx, CreateInput{
			UserID: "u1", DoctorName: doctor, AppointmentAt: at, Type: "in_person",
		})
		if err != nil {
			t.Fatalf("Create %s error: %v", doctor, err)
		}
		if status != "" {
			if _, err := svc.Update(ctx, c.ID, map[string]any{"status": status}); err != nil {
				t.Fatalf("Update %s error: %v", doctor, err)
			}
		}
	}

	mk("past", time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC), "")
	mk("cancelled", time.Date(2026, 9, 20, 9, 0, 0, 0, time.UTC), "cancelled")
	mk("later", time.Date(2026, 9, 25, 9, 0, 0, 0, time.UTC), "")
	mk("sooner", time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC), "")

	got, err := svc.UpcomingByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("UpcomingByUser error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 upcoming, got %d: %#v", len(got), got)
	}
	if got[0].DoctorName != "sooner" || got[1].DoctorName != "later" {
		t.Fatalf("expected ascending by date: %#v", got)
	}
}
