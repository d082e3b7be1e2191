package emergency

import (
	"context"
	"errors"
	"testing"

	"medecho/internal/adapters/storage/memory"
)

func TestService_Create_DefaultsTollFree(t *testing.T) {
	svc := NewService(memory.NewKV())

	c, err := svc.Create(context.Background(), CreateInput{
		Name:  "National Ambulance",
		Phone: "108",
		Type:  "ambulance",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !c.IsTollFree {
		t.Fatalf("expected is_toll_free default true")
	}
}

func TestService_Create_ExplicitNotTollFree(t *testing.T) {
	svc := NewService(memory.NewKV())

	paid := false
	c, err := svc.Create(context.Background(), CreateInput{
		Name:       "Private Hospital Desk",
		Phone:      "+91-11-4000000",
		Type:       "hospital",
		IsTollFree: &paid,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.IsTollFree {
		t.Fatalf("expected is_toll_free false when given explicitly")
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	cases := []CreateInput{
		{Name: "", Phone: "108", Type: "ambulance"},
		{Name: "x", Phone: "", Type: "ambulance"},
		{Name: "x", Phone: "108", Type: "helpdesk"},
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_GetByType(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	seed := []CreateInput{
		{Name: "Ambulance", Phone: "108", Type: "ambulance"},
		{Name: "Police", Phone: "100", Type: "police"},
		{Name: "Fire", Phone: "101", Type: "fire"},
		{Name: "Second Ambulance", Phone: "102", Type: "ambulance"},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("Create %s error: %v", in.Name, err)
		}
	}

	got, err := svc.GetByType(ctx, "ambulance")
	if err != nil {
		t.Fatalf("GetByType error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 ambulance contacts, got %d", len(got))
	}

	if _, err := svc.GetByType(ctx, "helpdesk"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
}

func TestService_Update_ValidatesType(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	c, err := svc.Create(ctx, CreateInput{Name: "Ambulance", Phone: "108", Type: "ambulance"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Update(ctx, c.ID, map[string]any{"type": "helpdesk"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected rejection of unknown type, got %v", err)
	}

	updated, err := svc.Update(ctx, c.ID, map[string]any{"type": "hospital", "phone": "102"})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Type != TypeHospital || updated.Phone != "102" {
		t.Fatalf("patch not applied: %#v", updated)
	}
}
