package reminders

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"medecho/internal/middleware"
	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/reminders", func(rr chi.Router) {
		rr.Post("/", createReminderHandler(svc))
		rr.Get("/", listRemindersHandler(svc))
		rr.Get("/due", dueRemindersHandler(svc))
		rr.Get("/next", nextReminderHandler(svc))
		rr.Get("/{reminderID}", getReminderHandler(svc))
		rr.Post("/{reminderID}/toggle", toggleReminderHandler(svc))
		rr.Patch("/{reminderID}", updateReminderHandler(svc))
		rr.Delete("/{reminderID}", deleteReminderHandler(svc))
	})
}

type createReminderRequest struct {
	Title          string `json:"title"`
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Frequency      string `json:"frequency"`
	Time           string `json:"time"`
	IsActive       *bool  `json:"is_active"`
}

type nextReminderResponse struct {
	Reminder *Reminder `json:"reminder"` // null cuando no queda ninguno hoy
}

func userID(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

// ownedBy trae el reminder y verifica que pertenezca al usuario del request.
func ownedBy(svc *Service, w http.ResponseWriter, r *http.Request, id, uid string) (Reminder, bool) {
	rem, err := svc.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "reminder not found", http.StatusNotFound)
		return Reminder{}, false
	}
	if rem.UserID != uid {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Reminder{}, false
	}
	return rem, true
}

func createReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createReminderRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rem, err := svc.Create(r.Context(), CreateInput{
			UserID:         uid,
			Title:          req.Title,
			MedicationName: req.MedicationName,
			Dosage:         req.Dosage,
			Frequency:      req.Frequency,
			Time:           req.Time,
			IsActive:       req.IsActive,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.WriteJSON(w, http.StatusCreated, rem)
	}
}

func listRemindersHandler(svc *Service) http.HandlerFunc {
	// ?active=true limita a los activos.
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var (
			items []Reminder
			err   error
		)
		if r.URL.Query().Get("active") == "true" {
			items, err = svc.ListActiveByUser(r.Context(), uid)
		} else {
			items, err = svc.ListByUser(r.Context(), uid)
		}
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func dueRemindersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.DueNow(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func nextReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rem, found, err := svc.NextToday(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := nextReminderResponse{}
		if found {
			out.Reminder = &rem
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rem, ok := ownedBy(svc, w, r, chi.URLParam(r, "reminderID"), uid)
		if !ok {
			return
		}
		web.WriteJSON(w, http.StatusOK, rem)
	}
}

func toggleReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "reminderID")
		if _, ok := ownedBy(svc, w, r, id, uid); !ok {
			return
		}

		rem, err := svc.ToggleActive(r.Context(), id)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, rem)
	}
}

func updateReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "reminderID")
		if _, ok := ownedBy(svc, w, r, id, uid); !ok {
			return
		}

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rem, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "reminder not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, rem)
	}
}

func deleteReminderHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "reminderID")
		if _, ok := ownedBy(svc, w, r, id, uid); !ok {
			return
		}

		if _, err := svc.Delete(r.Context(), id); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
