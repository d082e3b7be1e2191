package healthrecords

import (
	"context"
	"errors"
	"sort"
	"strings"

	"medecho/internal/store"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
)

const (
	entityName         = "health_records"
	defaultRecentLimit = 10
)

type Service struct {
	col *store.Collection[HealthRecord]
}

func NewService(kv store.KV) *Service {
	return &Service{col: store.NewCollection[HealthRecord](kv, entityName)}
}

type CreateInput struct {
	UserID           string
	Symptoms         string
	Severity         string
	AIRecommendation string
	Status           string // vacío => pending
	ConsultationKind string // opcional
	VoiceTranscript  string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (HealthRecord, error) {
	userID := strings.TrimSpace(in.UserID)
	symptoms := strings.TrimSpace(in.Symptoms)

	if userID == "" || symptoms == "" {
		return HealthRecord{}, ErrInvalidInput
	}

	severity, err := ParseSeverity(in.Severity)
	if err != nil {
		return HealthRecord{}, ErrInvalidInput
	}

	status := StatusPending
	if strings.TrimSpace(in.Status) != "" {
		status, err = ParseStatus(in.Status)
		if err != nil {
			return HealthRecord{}, ErrInvalidInput
		}
	}

	var kind ConsultationKind
	if strings.TrimSpace(in.ConsultationKind) != "" {
		kind, err = ParseConsultationKind(in.ConsultationKind)
		if err != nil {
			return HealthRecord{}, ErrInvalidInput
		}
	}

	return s.col.Create(ctx, HealthRecord{
		UserID:           userID,
		Symptoms:         symptoms,
		Severity:         severity,
		AIRecommendation: strings.TrimSpace(in.AIRecommendation),
		Status:           status,
		ConsultationKind: kind,
		VoiceTranscript:  strings.TrimSpace(in.VoiceTranscript),
	})
}

func (s *Service) GetByID(ctx context.Context, id string) (HealthRecord, error) {
	r, err := s.col.GetByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return HealthRecord{}, ErrNotFound
	}
	return r, err
}

func (s *Service) ListByUser(ctx context.Context, userID string) ([]HealthRecord, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.col.Filter(ctx, map[string]any{"user_id": userID})
}

func (s *Service) Update(ctx context.Context, id string, patch map[string]any) (HealthRecord, error) {
	if v, ok := patch["status"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return HealthRecord{}, ErrInvalidInput
		}
		if _, err := ParseStatus(sv); err != nil {
			return HealthRecord{}, ErrInvalidInput
		}
	}
	if v, ok := patch["severity"]; ok {
		sv, isStr := v.(string)
		if !isStr {
			return HealthRecord{}, ErrInvalidInput
		}
		if _, err := ParseSeverity(sv); err != nil {
			return HealthRecord{}, ErrInvalidInput
		}
	}

	r, err := s.col.Update(ctx, id, patch)
	if errors.Is(err, store.ErrNotFound) {
		return HealthRecord{}, ErrNotFound
	}
	return r, err
}

func (s *Service) Delete(ctx context.Context, id string) (bool, error) {
	return s.col.Delete(ctx, id)
}

// RecentByUser: últimos episodios por created_date descendente. limit <= 0
// aplica el default (10).
func (s *Service) RecentByUser(ctx context.Context, userID string, limit int) ([]HealthRecord, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	items, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedDate.After(items[j].CreatedDate)
	})

	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}
