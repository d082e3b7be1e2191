package reminders

import (
	"context"
	"errors"
	"strings"
	"time"

	"medecho/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const entityName = "reminders"

type Service struct {
	col *store.Collection[Reminder]
	now func() time.Time
}

func NewService(kv store.KV) *Service {
	return &Service{
		col: store.NewCollection[Reminder](kv, entityName),
		now: time.Now,
	}
}

type CreateInput struct {
	UserID         string
	Title          string
	MedicationName string
	Dosage         string
	Frequency      string
	Time           string
	IsActive       *bool // nil => default true
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Reminder, error) {
	userID := strings.TrimSpace(in.UserID)
	medication := strings.TrimSpace(in.MedicationName)

	if userID == "" || medication == "" {
		return Reminder{}, ErrInvalidInput
	}

	freq, err := ParseFrequency(in.Frequency)
	if err != nil {
		return Reminder{}, ErrInvalidInput
	}
	if _, _, ok := clockOf(in.Time); !ok {
		return Reminder{}, ErrInvalidInput
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}

	return s.col.Create(ctx, Reminder{
		UserID:         userID,
		Title:          strings.TrimSpace(in.Title),
		MedicationName: medication,
		Dosage:         strings.TrimSpace(in.Dosage),
		Frequency:      freq,
		Time:           strings.TrimSpace(in.Time),
		IsActive:       active,
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (Reminder, error) {
	r, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return Reminder{}, ErrNotFound
	}
	return r, err
}

// Update aplica un patch parcial. frequency y time se validan si vienen en el
// patch; el resto pasa tal cual (el merge campo a campo lo hace el store).
func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (Reminder, error) {
	if v, ok := patch["frequency"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Reminder{}, ErrInvalidInput
		}
		if _, err := ParseFrequency(sv); err != nil {
			return Reminder{}, ErrInvalidInput
		}
	}
	if v, ok := patch["time"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return Reminder{}, ErrInvalidInput
		}
		if _, _, ok := clockOf(sv); !ok {
			return Reminder{}, ErrInvalidInput
		}
	}

	r, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return Reminder{}, ErrNotFound
	}
	return r, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

// ToggleActive invierte is_active vía un update normal del store; es la única
// mutación que dispara el scheduler (el resto de sus consultas son solo lectura).
func (s *Service) ToggleActive(ctx context.Context, id string) (Reminder, error) {
	cur, err := s.GetByID(ctx, id)
	if err != nil {
		return Reminder{}, err
	}
	return s.Update(ctx, id, map[string]any{"is_active": !cur.IsActive})
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]Reminder, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.col.Filter(ctx, map[string]any{"user_id": userID})
}

func (s *Service) ListActiveByUser(ctx context.Context, userID string) ([]Reminder, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.col.Filter(ctx, map[string]any{"user_id": userID, "is_active": true})
}

// DueNow retorna los reminders activos del usuario dentro de la ventana de
// due-ness evaluada contra el reloj del service.
func (s *Service) DueNow(ctx context.Context, userID string) ([]Reminder, error) {
	active, err := s.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return Due(active, s.now()), nil
}

// NextToday retorna el próximo reminder activo de hoy, si queda alguno.
func (s *Service) NextToday(ctx context.Context, userID string) (Reminder, bool, error) {
	active, err := s.ListActiveByUser(ctx, userID)
	if err != nil {
		return Reminder{}, false, err
	}
	r, ok := NextUpcoming(active, s.now())
	return r, ok, nil
}
