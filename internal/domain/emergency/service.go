package emergency

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

const entityName = "emergency_contacts"

type Service struct {
	col *store.Collection[Contact]
}

func NewService(kv store.KV) *Service {
	return &Service{col: store.NewCollection[Contact](kv, entityName)}
}

type CreateInput struct {
	Name         string
	Phone        string
	Type         string
	Description  string
	IsTollFree   *bool // nil => default true
	Availability string
	CoverageArea string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Contact, error) {
	name := strings.TrimSpace(in.Name)
	phone := strings.TrimSpace(in.Phone)

	if name == "" || phone == "" {
		return Contact{}, ErrInvalidInput
	}

	ctype, err := ParseContactType(in.Type)
	if err != nil {
		return Contact{}, ErrInvalidInput
	}

	tollFree := true
	if in.IsTollFree != nil {
		tollFree = *in.IsTollFree
	}

	return s.col.Create(ctx, Contact{
		Name:         name,
		Phone:        phone,
		Type:         ctype,
		Description:  strings.TrimSpace(in.Description),
		IsTollFree:   tollFree,
		Availability: strings.TrimSpace(in.Availability),
		CoverageArea: strings.TrimSpace(in.CoverageArea),
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Contact, error) {
	c, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Contact{}, ErrNotFound
	}
	return c, err
}

func (s *Service) List(ctx context.Context) ([]Contact, error) {
	return s.col.GetAll(ctx)
}

// GetByType valida el tipo antes de filtrar: un tipo desconocido es error,
// no una lista vacía silenciosa.
func (s *Service) GetByType(ctx context.Context, contactType string) ([]Contact, error) {
	ct, err := ParseContactType(contactType)
	if err != nil {
		return nil, ErrInvalidInput
	}
	return s.col.Filter(ctx, map[string]any{"type": string(ct)})
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Contact, error) {
	if v, ok := patch["type"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Contact{}, ErrInvalidInput
		}
		if _, err := ParseContactType(sv); err != nil {
			return Contact{}, ErrInvalidInput
		}
	}

	c, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return Contact{}, ErrNotFound
	}
	return c, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}
