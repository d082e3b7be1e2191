package doctors

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

const entityName = "doctors"

type Service struct {
	col *store.Collection[Doctor]
}

func NewService(kv store.KV) *Service {
	return &Service{col: store.NewCollection[Doctor](kv, entityName)}
}

func (s *Service) Create(ctx context.Context, in Doctor) (Doctor, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" || in.Phone == "" {
		return Doctor{}, ErrInvalidInput
	}
	if _, err := ParseSpecialization(string(in.Specialization)); err != nil {
		return Doctor{}, ErrInvalidInput
	}
	for _, m := range in.ConsultationModes {
		if _, err := ParseConsultationMode(string(m)); err != nil {
			return Doctor{}, ErrInvalidInput
		}
	}

	return s.col.Create(ctx, in)
}

func (s *Service) GetByID(ctx context.Context, id string) (Doctor, error) {
	d, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Doctor{}, ErrNotFound
	}
	return d, err
}

func (s *Service) List(ctx context.Context) ([]Doctor, error) {
	return s.col.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Doctor, error) {
	if v, ok := patch["specialization"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Doctor{}, ErrInvalidInput
		}
		if _, err := ParseSpecialization(sv); err != nil {
			return Doctor{}, ErrInvalidInput
		}
	}

	d, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return Doctor{}, ErrNotFound
	}
	return d, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

// SearchBySpecialization filtra por igualdad estricta; la especialización se
// valida antes, así un valor desconocido es error y no "cero resultados".
func (s *Service) SearchBySpecialization(ctx context.Context, spec string) ([]Doctor, error) {
	sp, err := ParseSpecialization(spec)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.col.Filter(ctx, map[string]any{"specialization": string(sp)})
}

// SearchNearby: default 10 km, borde inclusive, orden ascendente estable.
func (s *Service) SearchNearby(ctx context.Context, ref geo.Point, radiusKm float64) ([]geo.Result[Doctor], error) {
	if radiusKm <= 0 {
		radiusKm = geo.DefaultRadiusKm
	}
	all, err := s.col.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return geo.Nearby(all, ref, radiusKm), nil
}
