package pharmacies

import (
	"medecho/internal/domain/geo"
	"medecho/internal/store"
)

// Store es una farmacia / tienda médica. El nombre de entidad persistido es
// "medical_stores" por compatibilidad con los datos ya guardados bajo esa clave.
type Store struct {
	store.Meta

	Name          string `json:"name"`
	OwnerName     string `json:"owner_name,omitempty"`
	LicenseNumber string `json:"license_number,omitempty"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`

	OperatingHours string   `json:"operating_hours,omitempty"`
	Services       []string `json:"services,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`

	HasDelivery      bool `json:"has_delivery"`
	Is24Hours        bool `json:"is_24_hours"`
	AcceptsInsurance bool `json:"accepts_insurance"`
}

func (p Store) Location() (geo.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return geo.Point{}, false
	}
	return geo.Point{Lat: *p.Latitude, Lon: *p.Longitude}, true
}
