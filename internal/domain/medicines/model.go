package medicines

import (
	"strings"

	"medecho/internal/store"
)

// Category del medicamento.
// @Enum prescription, over_the_counter, ayurvedic, homeopathic
type Category string

const (
	CategoryPrescription   Category = "prescription"
	CategoryOverTheCounter Category = "over_the_counter"
	CategoryAyurvedic      Category = "ayurvedic"
	CategoryHomeopathic    Category = "homeopathic"
)

func ParseCategory(s string) (Category, error) {
	switch Category(strings.TrimSpace(s)) {
	case CategoryPrescription:
		return CategoryPrescription, nil
	case CategoryOverTheCounter:
		return CategoryOverTheCounter, nil
	case CategoryAyurvedic:
		return CategoryAyurvedic, nil
	case CategoryHomeopathic:
		return CategoryHomeopathic, nil
	default:
		return "", ErrInvalidInput
	}
}

// Form es la presentación. El campo persistido se llama "type" (formato heredado).
// @Enum tablet, capsule, syrup, injection, cream, drops, inhaler
type Form string

const (
	FormTablet    Form = "tablet"
	FormCapsule   Form = "capsule"
	FormSyrup     Form = "syrup"
	FormInjection Form = "injection"
	FormCream     Form = "cream"
	FormDrops     Form = "drops"
	FormInhaler   Form = "inhaler"
)

var forms = map[Form]struct{}{
	FormTablet: {}, FormCapsule: {}, FormSyrup: {}, FormInjection: {},
	FormCream: {}, FormDrops: {}, FormInhaler: {},
}

func ParseForm(s string) (Form, error) {
	f := Form(strings.TrimSpace(s))
	if _, ok := forms[f]; !ok {
		return "", ErrInvalidInput
	}
	return f, nil
}

type Medicine struct {
	store.Meta

	Name        string   `json:"name"`
	GenericName string   `json:"generic_name,omitempty"`
	Brand       string   `json:"brand,omitempty"`
	Category    Category `json:"category"`
	Form        Form     `json:"type"`

	Strength string  `json:"strength,omitempty"`
	PackSize string  `json:"pack_size,omitempty"`
	Price    float64 `json:"price"`
	MRP      float64 `json:"mrp,omitempty"`

	Uses        string `json:"uses,omitempty"`
	SideEffects string `json:"side_effects,omitempty"`
	Precautions string `json:"precautions,omitempty"`

	RequiresPrescription bool `json:"requires_prescription"`
	InStock              bool `json:"in_stock"`
}
