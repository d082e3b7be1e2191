package doctors

import (
	"context"
	"errors"
	"testing"

	"medecho/internal/adapters/storage/memory"
	"medecho/internal/domain/geo"
)

func ptr(f float64) *float64 { return &f }

func TestService_Create_Validates(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	if _, err := svc.Create(ctx, Doctor{Name: "Dr. A", Phone: "1", Specialization: "astrology"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown specialization, got %v", err)
	}
	if _, err := svc.Create(ctx, Doctor{
		Name: "Dr. A", Phone: "1", Specialization: SpecCardiology,
		ConsultationModes: []ConsultationMode{"telepathy"},
	}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown mode, got %v", err)
	}

	d, err := svc.Create(ctx, Doctor{
		Name: "Dr. Asha", Phone: "98100", Specialization: SpecCardiology,
		ConsultationModes: []ConsultationMode{ModeVideo, ModeInPerson},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if d.ID == "" {
		t.Fatalf("expected id assigned")
	}
}

func TestService_SearchBySpecialization(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	for _, d := range []Doctor{
		{Name: "Dr. A", Phone: "1", Specialization: SpecCardiology},
		{Name: "Dr. B", Phone: "2", Specialization: SpecPediatrics},
		{Name: "Dr. C", Phone: "3", Specialization: SpecCardiology},
	} {
		if _, err := svc.Create(ctx, d); err != nil {
			t.Fatalf("Create %s error: %v", d.Name, err)
		}
	}

	got, err := svc.SearchBySpecialization(ctx, "cardiology")
	if err != nil {
		t.Fatalf("SearchBySpecialization error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 cardiologists, got %d", len(got))
	}

	if _, err := svc.SearchBySpecialization(ctx, "astrology"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown specialization, got %v", err)
	}
}

func TestService_SearchNearby_SortedAscending(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	ref := geo.Point{Lat: 28.6139, Lon: 77.2090}

	for _, d := range []Doctor{
		{Name: "Farther", Phone: "1", Specialization: SpecGeneralMedicine, Latitude: ptr(28.70), Longitude: ptr(77.25)},
		{Name: "Closer", Phone: "2", Specialization: SpecGeneralMedicine, Latitude: ptr(28.62), Longitude: ptr(77.21)},
		{Name: "No coords", Phone: "3", Specialization: SpecGeneralMedicine},
	} {
		if _, err := svc.Create(ctx, d); err != nil {
			t.Fatalf("Create %s error: %v", d.Name, err)
		}
	}

	got, err := svc.SearchNearby(ctx, ref, 50)
	if err != nil {
		t.Fatalf("SearchNearby error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 located doctors, got %d", len(got))
	}
	if got[0].Item.Name != "Closer" || got[1].Item.Name != "Farther" {
		t.Fatalf("expected ascending by distance: %#v", got)
	}
}
