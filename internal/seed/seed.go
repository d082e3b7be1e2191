// Package seed carga datos de muestra mínimos para dev. Solo escribe en
// colecciones vacías; nunca pisa datos existentes.
package seed

import (
	"context"

	"medecho/internal/domain/clinics"
	"medecho/internal/domain/emergency"
	"medecho/internal/domain/medicines"
	"medecho/internal/store"
)

func Run(ctx context.Context, kv store.KV) error {
	if err := emergencyContacts(ctx, kv); err != nil {
		return err
	}
	if err := medicineCatalog(ctx, kv); err != nil {
		return err
	}
	return clinicDirectory(ctx, kv)
}

func emergencyContacts(ctx context.Context, kv store.KV) error {
	svc := emergency.NewService(kv)

	existing, err := svc.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	for _, in := range []emergency.CreateInput{
		{Name: "National Ambulance", Phone: "108", Type: "ambulance", Availability: "24x7", CoverageArea: "All India"},
		{Name: "Police", Phone: "100", Type: "police", Availability: "24x7", CoverageArea: "All India"},
		{Name: "Fire Brigade", Phone: "101", Type: "fire", Availability: "24x7", CoverageArea: "All India"},
		{Name: "Women Helpline", Phone: "1091", Type: "women_helpline", Availability: "24x7", CoverageArea: "All India"},
	} {
		if _, err := svc.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func medicineCatalog(ctx context.Context, kv store.KV) error {
	svc := medicines.NewService(kv)

	existing, err := svc.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	otc := false
	for _, in := range []medicines.CreateInput{
		{Name: "Paracetamol 500mg", GenericName: "paracetamol", Brand: "Crocin", Category: "over_the_counter", Form: "tablet", Price: 20, RequiresPrescription: &otc},
		{Name: "ORS Sachet", GenericName: "oral rehydration salts", Category: "over_the_counter", Form: "drops", Price: 18, RequiresPrescription: &otc},
		{Name: "Amoxicillin 250mg", GenericName: "amoxicillin", Brand: "Mox", Category: "prescription", Form: "capsule", Price: 85},
	} {
		if _, err := svc.Create(ctx, in); err != nil {
			return err
		}
	}
	return nil
}

func clinicDirectory(ctx context.Context, kv store.KV) error {
	svc := clinics.NewService(kv)

	existing, err := svc.List(ctx)
	if err != nil || len(existing) > 0 {
		return err
	}

	lat, lon := 28.5672, 77.2100
	_, err = svc.Create(ctx, clinics.Clinic{
		Name:         "AIIMS Delhi",
		Address:      "Ansari Nagar, New Delhi",
		Phone:        "011-26588500",
		Type:         clinics.TypeHospital,
		Latitude:     &lat,
		Longitude:    &lon,
		HasEmergency: true,
		HasAmbulance: true,
	})
	return err
}
