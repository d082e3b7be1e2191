package doctors

import (
	"strings"

	"medecho/internal/domain/geo"
	"medecho/internal/store"
)

// Specialization es un enum cerrado: un string fuera de la lista se rechaza
// en el parse en lugar de colarse hasta los filtros.
// @Enum general_medicine, cardiology, pediatrics, gynecology, orthopedics, dermatology, ent, psychiatry, neurology, oncology
type Specialization string

const (
	SpecGeneralMedicine Specialization = "general_medicine"
	SpecCardiology      Specialization = "cardiology"
	SpecPediatrics      Specialization = "pediatrics"
	SpecGynecology      Specialization = "gynecology"
	SpecOrthopedics     Specialization = "orthopedics"
	SpecDermatology     Specialization = "dermatology"
	SpecENT             Specialization = "ent"
	SpecPsychiatry      Specialization = "psychiatry"
	SpecNeurology       Specialization = "neurology"
	SpecOncology        Specialization = "oncology"
)

var specializations = map[Specialization]struct{}{
	SpecGeneralMedicine: {},
	SpecCardiology:      {},
	SpecPediatrics:      {},
	SpecGynecology:      {},
	SpecOrthopedics:     {},
	SpecDermatology:     {},
	SpecENT:             {},
	SpecPsychiatry:      {},
	SpecNeurology:       {},
	SpecOncology:        {},
}

func ParseSpecialization(s string) (Specialization, error) {
	sp := Specialization(strings.TrimSpace(s))
	if _, ok := specializations[sp]; !ok {
		return "", ErrInvalidInput
	}
	return sp, nil
}

// ConsultationMode define cómo atiende el doctor.
// @Enum phone, video, in_person
type ConsultationMode string

const (
	ModePhone    ConsultationMode = "phone"
	ModeVideo    ConsultationMode = "video"
	ModeInPerson ConsultationMode = "in_person"
)

func ParseConsultationMode(s string) (ConsultationMode, error) {
	switch ConsultationMode(strings.TrimSpace(s)) {
	case ModePhone:
		return ModePhone, nil
	case ModeVideo:
		return ModeVideo, nil
	case ModeInPerson:
		return ModeInPerson, nil
	default:
		return "", ErrInvalidInput
	}
}

// Availability son los horarios declarados por el doctor (texto libre + días).
type Availability struct {
	Days  []string `json:"days,omitempty"`
	Hours string   `json:"hours,omitempty"`
}

type Doctor struct {
	store.Meta

	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email,omitempty"`

	Specialization  Specialization `json:"specialization"`
	Qualification   string         `json:"qualification,omitempty"`
	ExperienceYears int            `json:"experience_years,omitempty"`
	ConsultationFee float64        `json:"consultation_fee,omitempty"`
	Languages       []string       `json:"languages,omitempty"`
	Availability    *Availability  `json:"availability,omitempty"`

	ClinicAddress string   `json:"clinic_address,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`

	Rating            float64            `json:"rating,omitempty"`
	ConsultationModes []ConsultationMode `json:"consultation_modes,omitempty"`
	IsAvailableNow    bool               `json:"is_available_now"`
}

func (d Doctor) Location() (geo.Point, bool) {
	if d.Latitude == nil || d.Longitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *d.Latitude, Lon: *d.Longitude}, true
}
