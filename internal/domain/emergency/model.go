package emergency

import (
	"strings"

	"medecho/internal/store"
)

// ContactType es un enum cerrado; GetByType exige un valor válido en vez de
// aceptar cualquier string.
// @Enum ambulance, hospital, police, fire, poison_control, women_helpline
type ContactType string

const (
	TypeAmbulance     ContactType = "ambulance"
	TypeHospital      ContactType = "hospital"
	TypePolice        ContactType = "police"
	TypeFire          ContactType = "fire"
	TypePoisonControl ContactType = "poison_control"
	TypeWomenHelpline ContactType = "women_helpline"
)

func ParseContactType(s string) (ContactType, error) {
	switch ContactType(strings.TrimSpace(s)) {
	case TypeAmbulance:
		return TypeAmbulance, nil
	case TypeHospital:
		return TypeHospital, nil
	case TypePolice:
		return TypePolice, nil
	case TypeFire:
		return TypeFire, nil
	case TypePoisonControl:
		return TypePoisonControl, nil
	case TypeWomenHelpline:
		return TypeWomenHelpline, nil
	default:
		return "", ErrInvalidInput
	}
}

// Contact es una línea de emergencia (108, bomberos, control de venenos, etc.).
type Contact struct {
	store.Meta

	Name        string      `json:"name"`
	Phone       string      `json:"phone"`
	Type        ContactType `json:"type"`
	Description string      `json:"description,omitempty"`

	IsTollFree   bool   `json:"is_toll_free"`
	Availability string `json:"availability,omitempty"`
	CoverageArea string `json:"coverage_area,omitempty"`
}
