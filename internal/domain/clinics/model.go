package clinics

import (
	"strings"

	"medecho/internal/domain/geo"
	"medecho/internal/store"
)

// ClinicType clasifica el establecimiento.
// @Enum primary_health_center, community_health_center, hospital, clinic, nursing_home
type ClinicType string

const (
	TypePrimaryHealthCenter   ClinicType = "primary_health_center"
	TypeCommunityHealthCenter ClinicType = "community_health_center"
	TypeHospital              ClinicType = "hospital"
	TypeClinic                ClinicType = "clinic"
	TypeNursingHome           ClinicType = "nursing_home"
)

func ParseClinicType(s string) (ClinicType, error) {
	switch ClinicType(strings.TrimSpace(s)) {
	case TypePrimaryHealthCenter:
		return TypePrimaryHealthCenter, nil
	case TypeCommunityHealthCenter:
		return TypeCommunityHealthCenter, nil
	case TypeHospital:
		return TypeHospital, nil
	case TypeClinic:
		return TypeClinic, nil
	case TypeNursingHome:
		return TypeNursingHome, nil
	default:
		return "", ErrInvalidInput
	}
}

// Clinic es un establecimiento de salud. Coordenadas opcionales: sin ambas,
// la clínica no participa de búsquedas por proximidad.
type Clinic struct {
	store.Meta

	Name           string     `json:"name"`
	Address        string     `json:"address"`
	Phone          string     `json:"phone"`
	EmergencyPhone string     `json:"emergency_phone,omitempty"`
	Email          string     `json:"email,omitempty"`
	Type           ClinicType `json:"type"`

	Services        []string `json:"services,omitempty"`
	Specializations []string `json:"specializations,omitempty"`
	OperatingHours  string   `json:"operating_hours,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	HasEmergency bool    `json:"has_emergency"`
	HasAmbulance bool    `json:"has_ambulance"`
	Rating       float64 `json:"rating,omitempty"`
}

func (c Clinic) Location() (geo.Point, bool) {
	if c.Latitude == nil || c.Longitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *c.Latitude, Lon: *c.Longitude}, true
}
