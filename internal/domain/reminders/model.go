package reminders

import (
	"strings"

	"medecho/internal/store"
)

// Frequency es un enum cerrado: valores fuera de la lista se rechazan en el
// parse, no se dejan pasar como string libre.
// @Enum daily, twice_daily, thrice_daily, weekly, as_needed
type Frequency string

const (
	FrequencyDaily       Frequency = "daily"
	FrequencyTwiceDaily  Frequency = "twice_daily"
	FrequencyThriceDaily Frequency = "thrice_daily"
	FrequencyWeekly      Frequency = "weekly"
	FrequencyAsNeeded    Frequency = "as_needed"
)

func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(strings.TrimSpace(s)) {
	case FrequencyDaily:
		return FrequencyDaily, nil
	case FrequencyTwiceDaily:
		return FrequencyTwiceDaily, nil
	case FrequencyThriceDaily:
		return FrequencyThriceDaily, nil
	case FrequencyWeekly:
		return FrequencyWeekly, nil
	case FrequencyAsNeeded:
		return FrequencyAsNeeded, nil
	default:
		return "", ErrInvalidInput
	}
}

// DailyOccurrences es la cantidad esperada de tomas por día. Solo se usa como
// agregado/etiqueta: el cálculo de due-ness mira únicamente el campo time,
// frequency no genera ventanas adicionales.
func (f Frequency) DailyOccurrences() int {
	switch f {
	case FrequencyTwiceDaily:
		return 2
	case FrequencyThriceDaily:
		return 3
	case FrequencyDaily, FrequencyWeekly, FrequencyAsNeeded:
		return 1
	default:
		return 1
	}
}

// Reminder es un recordatorio de medicación de un usuario.
// time es hora local "HH:MM"; is_active solo cambia por acción explícita
// del usuario (toggle), nunca automáticamente.
type Reminder struct {
	store.Meta

	UserID         string    `json:"user_id"`
	Title          string    `json:"title"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      Frequency `json:"frequency"`
	Time           string    `json:"time"`
	IsActive       bool      `json:"is_active"`
}
