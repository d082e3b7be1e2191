package consultations

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"medecho/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const entityName = "consultations"

type Service struct {
	col *store.Collection[Consultation]
	now func() time.Time
}

func NewService(kv store.KV) *Service {
	return &Service{
		col: store.NewCollection[Consultation](kv, entityName),
		now: time.Now,
	}
}

type CreateInput struct {
	UserID         string
	DoctorName     string
	DoctorPhone    string
	Specialization string
	AppointmentAt  time.Time
	Type           string
	Status         string // vacío => scheduled
	Notes          string
	Cost           float64
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Consultation, error) {
	userID := strings.TrimSpace(in.UserID)
	doctorName := strings.TrimSpace(in.DoctorName)

	if userID == "" || doctorName == "" || in.AppointmentAt.IsZero() {
		return Consultation{}, ErrInvalidInput
	}

	ctype, err := ParseConsultationType(in.Type)
	if err != nil {
		return Consultation{}, ErrInvalidInput
	}

	status := StatusScheduled
	if strings.TrimSpace(in.Status) != "" {
		status, err = ParseStatus(in.Status)
		if err != nil {
			return Consultation{}, ErrInvalidInput
		}
	}

	return s.col.Create(ctx, Consultation{
		UserID:         userID,
		DoctorName:     doctorName,
		DoctorPhone:    strings.TrimSpace(in.DoctorPhone),
		Specialization: strings.TrimSpace(in.Specialization),
		AppointmentAt:  in.AppointmentAt,
		Type:           ctype,
		Status:         status,
		Notes:          strings.TrimSpace(in.Notes),
		Cost:           in.Cost,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Consultation, error) {
	c, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Consultation{}, ErrNotFound
	}
	return c, err
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Consultation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.col.Filter(ctx, map[string]any{"user_id": userID})
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Consultation, error) {
	if v, ok := patch["status"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Consultation{}, ErrInvalidInput
		}
		if _, err := ParseStatus(sv); err != nil {
			return Consultation{}, ErrInvalidInput
		}
	}
	if v, ok := patch["consultation_type"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Consultation{}, ErrInvalidInput
		}
		if _, err := ParseConsultationType(sv); err != nil {
			return Consultation{}, ErrInvalidInput
		}
	}

	c, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return Consultation{}, ErrNotFound
	}
	return c, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

// UpcomingByUser: citas scheduled con fecha >= ahora, ascendente por fecha.
func (s *Service) UpcomingByUser(ctx context.Context, userID string) ([]Consultation, error) {
	items, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]Consultation, 0)
	for _, c := range items {
		if c.Status != StatusScheduled {
			continue
		}
		if c.AppointmentAt.Before(now) {
			continue
		}
		out = append(out, c)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppointmentAt.Before(out[j].AppointmentAt)
	})
	return out, nil
}
