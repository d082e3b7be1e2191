package medicines

import (
	"context"
	"errors"
	"strings"

	"medecho/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const entityName = "medicines"

type Service struct {
	col *store.Collection[Medicine]
}

func NewService(kv store.KV) *Service {
	return &Service{col: store.NewCollection[Medicine](kv, entityName)}
}

type CreateInput struct {
	Name        string
	GenericName string
	Brand       string
	Category    string
	Form        string
	Strength    string
	PackSize    string
	Price       float64
	MRP         float64
	Uses        string
	SideEffects string
	Precautions string

	// nil => defaults del catálogo: requiere receta y en stock.
	RequiresPrescription *bool
	InStock              *bool
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Medicine, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Price < 0 {
		return Medicine{}, ErrInvalidInput
	}

	category, err := ParseCategory(in.Category)
	if err != nil {
		return Medicine{}, ErrInvalidInput
	}
	form, err := ParseForm(in.Form)
	if err != nil {
		return Medicine{}, ErrInvalidInput
	}

	requiresRx := true
	if in.RequiresPrescription != nil {
		requiresRx = *in.RequiresPrescription
	}
	inStock := true
	if in.InStock != nil {
		inStock = *in.InStock
	}

	return s.col.Create(ctx, Medicine{
		Name:                 name,
		GenericName:          strings.TrimSpace(in.GenericName),
		Brand:                strings.TrimSpace(in.Brand),
		Category:             category,
		Form:                 form,
		Strength:             strings.TrimSpace(in.Strength),
		PackSize:             strings.TrimSpace(in.PackSize),
		Price:                in.Price,
		MRP:                  in.MRP,
		Uses:                 strings.TrimSpace(in.Uses),
		SideEffects:          strings.TrimSpace(in.SideEffects),
		Precautions:          strings.TrimSpace(in.Precautions),
		RequiresPrescription: requiresRx,
		InStock:              inStock,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Medicine, error) {
	m, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Medicine{}, ErrNotFound
	}
	return m, err
}

func (s *Service) List(ctx context.Context) ([]Medicine, error) {
	return s.col.GetAll(ctx)
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Medicine, error) {
	if v, ok := patch["category"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Medicine{}, ErrInvalidInput
		}
		if _, err := ParseCategory(sv); err != nil {
			return Medicine{}, ErrInvalidInput
		}
	}
	if v, ok := patch["type"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Medicine{}, ErrInvalidInput
		}
		if _, err := ParseForm(sv); err != nil {
			return Medicine{}, ErrInvalidInput
		}
	}

	m, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return Medicine{}, ErrNotFound
	}
	return m, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

// Search hace substring case-insensitive sobre nombre, genérico y marca
// (a diferencia del Filter del store, que es igualdad estricta).
func (s *Service) Search(ctx context.Context, query string) ([]Medicine, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return s.col.GetAll(ctx)
	}

	all, err := s.col.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Medicine, 0)
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.Name), q) ||
			strings.Contains(strings.ToLower(m.GenericName), q) ||
			strings.Contains(strings.ToLower(m.Brand), q) {
			out = append(out, m)
		}
	}
	return out, nil
}
