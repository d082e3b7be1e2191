package clinics

import (
	"context"
	"errors"
	"strings"

	"medecho/internal/domain/geo"
	"medecho/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const entityName = "clinics"

type Service struct {
	col *store.Collection[Clinic]
}

func NewService(kv store.KV) *Service {
	return &Service{col: store.NewCollection[Clinic](kv, entityName)}
}

func (s *Service) Create(ctx context.Context, in Clinic) (Clinic, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.Address == "" || in.Phone == "" {
		return Clinic{}, ErrInvalidInput
	}
	if _, err := ParseClinicType(string(in.Type)); err != nil {
		return Clinic{}, ErrInvalidInput
	}

	return s.col.Create(ctx, in)
}

func (s *Service) GetByID(ctx context.Context, id string) (Clinic, error) {
	c, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Clinic{}, ErrNotFound
	}
	return c, err
}

func (s *Service) List(ctx context.Context) ([]Clinic, error) {
	return s.col.GetAll(ctx)
}

// Filter expone el filtro de igualdad estricta del store (p.ej. {"type":"hospital"}).
func (s *Service) Filter(ctx context.Context, criteria map[string]any) ([]Clinic, error) {
	return s.col.Filter(ctx, criteria)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Clinic, error) {
	if v, ok := patch["type"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Clinic{}, ErrInvalidInput
		}
		if _, err := ParseClinicType(sv); err != nil {
			return Clinic{}, ErrInvalidInput
		}
	}

	c, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return Clinic{}, ErrNotFound
	}
	return c, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

// SearchNearby lee la colección completa y delega en el motor de proximidad.
// radiusKm <= 0 aplica el default de clínicas (10 km). Solo lectura.
func (s *Service) SearchNearby(ctx context.Context, ref geo.Point, radiusKm float64) ([]geo.Result[Clinic], error) {
	if radiusKm <= 0 {
		radiusKm = geo.DefaultRadiusKm
	}
	all, err := s.col.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return geo.Nearby(all, ref, radiusKm), nil
}
