package pharmacies

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

const entityName = "medical_stores"

type Service struct {
	col *store.Collection[Store]
}

func NewService(kv store.KV) *Service {
	return &Service{col: store.NewCollection[Store](kv, entityName)}
}

func (s *Service) Create(ctx context.Context, in Store) (Store, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Address = strings.TrimSpace(in.Address)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.Address == "" || in.Phone == "" {
		return Store{}, ErrInvalidInput
	}
	return s.col.Create(ctx, in)
}

func (s *Service) GetByID(ctx context.Context, id string) (Store, error) {
	p, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Store{}, ErrNotFound
	}
	return p, err
}

func (s *Service) List(ctx context.Context) ([]Store, error) {
	return s.col.GetAll(ctx)
}

func (s *Service) Filter(ctx context.Context, criteria map[string]any) ([]Store, error) {
	return s.col.Filter(ctx, criteria)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Store, error) {
	p, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return Store{}, ErrNotFound
	}
	return p, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

// SearchNearby: las farmacias usan un radio default más corto (5 km).
func (s *Service) SearchNearby(ctx context.Context, ref geo.Point, radiusKm float64) ([]geo.Result[Store], error) {
	if radiusKm <= 0 {
		radiusKm = geo.DefaultPharmacyRadiusKm
	}
	all, err := s.col.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return geo.Nearby(all, ref, radiusKm), nil
}
