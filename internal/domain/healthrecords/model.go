package healthrecords

import (
	"strings"

	"medecho/internal/store"
)

// Severity reportada o inferida del episodio.
// @Enum low, medium, high, emergency
type Severity string

const (
	SeverityLow       Severity = "low"
	SeverityMedium    Severity = "medium"
	SeverityHigh      Severity = "high"
	SeverityEmergency Severity = "emergency"
)

func ParseSeverity(s string) (Severity, error) {
	switch Severity(strings.TrimSpace(s)) {
	case SeverityLow:
		return SeverityLow, nil
	case SeverityMedium:
		return SeverityMedium, nil
	case SeverityHigh:
		return SeverityHigh, nil
	case SeverityEmergency:
		return SeverityEmergency, nil
	default:
		return "", ErrInvalidInput
	}
}

// Status del episodio. Default al crear: pending.
// @Enum pending, resolved, follow_up_needed
type Status string

const (
	StatusPending        Status = "pending"
	StatusResolved       Status = "resolved"
	StatusFollowUpNeeded Status = "follow_up_needed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusPending:
		return StatusPending, nil
	case StatusResolved:
		return StatusResolved, nil
	case StatusFollowUpNeeded:
		return StatusFollowUpNeeded, nil
	default:
		return "", ErrInvalidInput
	}
}

// ConsultationKind: cómo se originó/atendió el episodio.
// @Enum ai_only, human_requested, emergency
type ConsultationKind string

const (
	KindAIOnly         ConsultationKind = "ai_only"
	KindHumanRequested ConsultationKind = "human_requested"
	KindEmergency      ConsultationKind = "emergency"
)

func ParseConsultationKind(s string) (ConsultationKind, error) {
	switch ConsultationKind(strings.TrimSpace(s)) {
	case KindAIOnly:
		return KindAIOnly, nil
	case KindHumanRequested:
		return KindHumanRequested, nil
	case KindEmergency:
		return KindEmergency, nil
	default:
		return "", ErrInvalidInput
	}
}

// HealthRecord es un episodio de síntomas, con la recomendación del asistente
// y el transcript de voz si el episodio entró por voice-care.
type HealthRecord struct {
	store.Meta

	UserID           string           `json:"user_id"`
	Symptoms         string           `json:"symptoms"`
	Severity         Severity         `json:"severity"`
	AIRecommendation string           `json:"ai_recommendation,omitempty"`
	Status           Status           `json:"status"`
	ConsultationKind ConsultationKind `json:"consultation_type,omitempty"`
	VoiceTranscript  string           `json:"voice_transcript,omitempty"`
}
