package reminders

import (
	"strings"
	"time"
)

// Ventana de due-ness en horas enteras alrededor de la hora actual:
// un reminder con time en [hora-1, hora+2] cuenta como accionable ahora.
// Es deliberadamente gruesa (no minuto a minuto) y no mira frequency.
const (
	dueWindowBefore = 1
	dueWindowAfter  = 2
)

// IsDue indica si el reminder está en la ventana de due-ness respecto de at.
// Un time no parseable nunca es due.
func IsDue(r Reminder, at time.Time) bool {
	h, _, ok := clockOf(r.Time)
	if !ok {
		return false
	}
	cur := at.Hour()
	return h >= cur-dueWindowBefore && h <= cur+dueWindowAfter
}

// Due filtra los reminders accionables en este momento, conservando el orden
// de entrada.
func Due(items []Reminder, at time.Time) []Reminder {
	out := make([]Reminder, 0)
	for _, r := range items {
		if IsDue(r, at) {
			out = append(out, r)
		}
	}
	return out
}

// NextUpcoming elige el reminder con el menor time (en minutos desde
// medianoche) que todavía no pasó hoy. Si todos los times ya pasaron, no hay
// próximo: no hay wraparound a mañana, la vista de "hoy" termina en 23:59.
func NextUpcoming(items []Reminder, at time.Time) (Reminder, bool) {
	cur := at.Hour()*60 + at.Minute()

	var best Reminder
	bestMinutes := -1

	for _, r := range items {
		h, m, ok := clockOf(r.Time)
		if !ok {
			continue
		}
		mins := h*60 + m
		if mins < cur {
			continue
		}
		if bestMinutes == -1 || mins < bestMinutes {
			best = r
			bestMinutes = mins
		}
	}

	return best, bestMinutes != -1
}

// ExpectedDailyDoses suma las tomas diarias esperadas según frequency.
// Agregado para UI; no interviene en due-ness.
func ExpectedDailyDoses(items []Reminder) int {
	total := 0
	for _, r := range items {
		total += r.Frequency.DailyOccurrences()
	}
	return total
}

// clockOf parsea "HH:MM". ok=false si no cumple el formato.
func clockOf(s string) (hour, minute int, ok bool) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, false
	}
	return t.Hour(), t.Minute(), true
}
