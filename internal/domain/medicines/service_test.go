package medicines

import (
	"context"
	"errors"
	"testing"

	"medecho/internal/adapters/storage/memory"
)

func TestService_Create_Defaults(t *testing.T) {
	svc := NewService(memory.NewKV())

	m, err := svc.Create(context.Background(), CreateInput{
		Name:     "Paracetamol",
		Category: "over_the_counter",
		Form:     "tablet",
		Price:    20,
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !m.RequiresPrescription || !m.InStock {
		t.Fatalf("expected defaults requires_prescription=true in_stock=true: %#v", m)
	}
}

func TestService_Create_RejectsBadInput(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	cases := []CreateInput{
		{Name: "", Category: "prescription", Form: "tablet"},
		{Name: "x", Category: "candy", Form: "tablet"},
		{Name: "x", Category: "prescription", Form: "powder"},
		{Name: "x", Category: "prescription", Form: "tablet", Price: -1},
	}
	for i, in := range cases {
		if _, err := svc.Create(ctx, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("case %d: expected ErrInvalidInput, got %v", i, err)
		}
	}
}

func TestService_Search_SubstringCaseInsensitive(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	seed := []CreateInput{
		{Name: "Paracetamol 500", GenericName: "paracetamol", Brand: "Crocin", Category: "over_the_counter", Form: "tablet", Price: 20},
		{Name: "Amoxicillin", GenericName: "amoxicillin", Brand: "Mox", Category: "prescription", Form: "capsule", Price: 90},
		{Name: "Cough Syrup", GenericName: "dextromethorphan", Brand: "Benadryl", Category: "over_the_counter", Form: "syrup", Price: 110},
	}
	for _, in := range seed {
		if _, err := svc.Create(ctx, in); err != nil {
			t.Fatalf("Create %s error: %v", in.Name, err)
		}
	}

	got, err := svc.Search(ctx, "PARACE")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Paracetamol 500" {
		t.Fatalf("unexpected name match: %#v", got)
	}

	byBrand, err := svc.Search(ctx, "mox")
	if err != nil {
		t.Fatalf("Search by brand error: %v", err)
	}
	if len(byBrand) != 1 || byBrand[0].Brand != "Mox" {
		t.Fatalf("unexpected brand match: %#v", byBrand)
	}

	all, err := svc.Search(ctx, "  ")
	if err != nil {
		t.Fatalf("Search empty error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected empty query to return everything, got %d", len(all))
	}
}

func TestService_Update_ValidatesEnums(t *testing.T) {
	svc := NewService(memory.NewKV())
	ctx := context.Background()

	m, err := svc.Create(ctx, CreateInput{Name: "Paracetamol", Category: "over_the_counter", Form: "tablet", Price: 20})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if _, err := svc.Update(ctx, m.ID, map[string]any{"category": "candy"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad category, got %v", err)
	}
	if _, err := svc.Update(ctx, m.ID, map[string]any{"type": "powder"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad form, got %v", err)
	}

	updated, err := svc.Update(ctx, m.ID, map[string]any{"in_stock": false, "price": 25.0})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.InStock || updated.Price != 25 {
		t.Fatalf("patch not applied: %#v", updated)
	}
}
