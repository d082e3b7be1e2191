package users

import (
	"strings"

	"medecho/internal/store"
)

// Gender del perfil. Opcional: el string vacío significa "no informado".
// @Enum male, female, other
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(strings.TrimSpace(s)) {
	case GenderMale:
		return GenderMale, nil
	case GenderFemale:
		return GenderFemale, nil
	case GenderOther:
		return GenderOther, nil
	default:
		return "", ErrInvalidInput
	}
}

// Language preferida para la interfaz y las respuestas de voz.
// @Enum english, hindi, punjabi, bengali, tamil
type Language string

const (
	LangEnglish Language = "english"
	LangHindi   Language = "hindi"
	LangPunjabi Language = "punjabi"
	LangBengali Language = "bengali"
	LangTamil   Language = "tamil"
)

func ParseLanguage(s string) (Language, error) {
	switch Language(strings.TrimSpace(s)) {
	case LangEnglish:
		return LangEnglish, nil
	case LangHindi:
		return LangHindi, nil
	case LangPunjabi:
		return LangPunjabi, nil
	case LangBengali:
		return LangBengali, nil
	case LangTamil:
		return LangTamil, nil
	default:
		return "", ErrInvalidInput
	}
}

// User es el perfil del paciente. Solo email es obligatorio; el resto se va
// completando desde la pantalla de perfil.
type User struct {
	store.Meta

	Email       string `json:"email"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      Gender `json:"gender,omitempty"`
	BloodGroup  string `json:"blood_group,omitempty"`
	Address     string `json:"address,omitempty"`

	EmergencyContact string `json:"emergency_contact,omitempty"`

	MedicalHistory     []string `json:"medical_history,omitempty"`
	Allergies          []string `json:"allergies,omitempty"`
	CurrentMedications []string `json:"current_medications,omitempty"`

	PreferredLanguage Language `json:"preferred_language,omitempty"`
}
