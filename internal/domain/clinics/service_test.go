package clinics

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

	if _, err := svc.Create(ctx, Clinic{Name: "", Address: "a", Phone: "1", Type: TypeHospital}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.Create(ctx, Clinic{Name: "n", Address: "a", Phone: "1", Type: "spa"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}

	c, err := svc.Create(ctx, Clinic{Name: "AIIMS", Address: "Ansari Nagar", Phone: "011", Type: TypeHospital})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID == "" {
		t.Fatalf("expected id assigned")
	}
}

func TestService_SearchNearby_DefaultRadius(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	delhi := geo.Point{Lat: 28.6139, Lon: 77.2090}

	seed := []Clinic{
		{Name: "Nearby", Address: "a", Phone: "1", Type: TypeClinic, Latitude: ptr(28.62), Longitude: ptr(77.21)},
		{Name: "Far", Address: "a", Phone: "1", Type: TypeClinic, Latitude: ptr(19.0760), Longitude: ptr(72.8777)},
		{Name: "No coords", Address: "a", Phone: "1", Type: TypeClinic},
	}
	for _, c := range seed {
		if _, err := svc.Create(ctx, c); err != nil {
			t.Fatalf("Create %s error: %v", c.Name, err)
		}
	}

	// radiusKm <= 0 => default 10 km
	got, err := svc.SearchNearby(ctx, delhi, 0)
	if err != nil {
		t.Fatalf("SearchNearby error: %v", err)
	}
	if len(got) != 1 || got[0].Item.Name != "Nearby" {
		t.Fatalf("unexpected results: %#v", got)
	}
	if got[0].DistanceKm <= 0 {
		t.Fatalf("expected positive distance, got %f", got[0].DistanceKm)
	}
}

func TestService_Filter_ByType(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	for _, c := range []Clinic{
		{Name: "H1", Address: "a", Phone: "1", Type: TypeHospital},
		{Name: "C1", Address: "a", Phone: "1", Type: TypeClinic},
		{Name: "H2", Address: "a", Phone: "1", Type: TypeHospital},
	} {
		if _, err := svc.Create(ctx, c); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got, err := svc.Filter(ctx, map[string]any{"type": "hospital"})
	if err != nil {
		t.Fatalf("Filter error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 hospitals, got %d", len(got))
	}
}

func TestService_Update_ValidatesType(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	c, err := svc.Create(ctx, Clinic{Name: "AIIMS", Address: "a", Phone: "1", Type: TypeHospital})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if _, err := svc.Update(ctx, c.ID, map[string]any{"type": "spa"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	updated, err := svc.Update(ctx, c.ID, map[string]any{"rating": 4.5})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Rating != 4.5 {
		t.Fatalf("patch not applied: %#v", updated)
	}
}
