package consultations

import (
	"strings"
	"time"

	"medecho/internal/store"
)

// ConsultationType: cómo se atiende la consulta.
// @Enum phone, video, in_person
type ConsultationType string

const (
	TypePhone    ConsultationType = "phone"
	TypeVideo    ConsultationType = "video"
	TypeInPerson ConsultationType = "in_person"
)

func ParseConsultationType(s string) (ConsultationType, error) {
	switch ConsultationType(strings.TrimSpace(s)) {
	case TypePhone:
		return TypePhone, nil
	case TypeVideo:
		return TypeVideo, nil
	case TypeInPerson:
		return TypeInPerson, nil
	default:
		return "", ErrInvalidInput
	}
}

// Status de la cita. Default al crear: scheduled.
// @Enum scheduled, completed, cancelled, missed
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusMissed    Status = "missed"
)

func ParseStatus(s string) (Status, error) {
	switch Status(strings.TrimSpace(s)) {
	case StatusScheduled:
		return StatusScheduled, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusMissed:
		return StatusMissed, nil
	default:
		return "", ErrInvalidInput
	}
}

type Consultation struct {
	store.Meta

	UserID         string           `json:"user_id"`
	DoctorName     string           `json:"doctor_name"`
	DoctorPhone    string           `json:"doctor_phone,omitempty"`
	Specialization string           `json:"specialization,omitempty"`
	AppointmentAt  time.Time        `json:"appointment_date"`
	Type           ConsultationType `json:"consultation_type"`
	Status         Status           `json:"status"`
	Notes          string           `json:"notes,omitempty"`
	Cost           float64          `json:"cost,omitempty"`
}
