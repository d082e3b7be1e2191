package consultations

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"medecho/internal/middleware"
	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/consultations", func(cr chi.Router) {
		cr.Post("/", createConsultationHandler(svc))
		cr.Get("/", listConsultationsHandler(svc))
		cr.Get("/upcoming", upcomingConsultationsHandler(svc))
		cr.Get("/{consultationID}", getConsultationHandler(svc))
		cr.Patch("/{consultationID}", updateConsultationHandler(svc))
		cr.Delete("/{consultationID}", deleteConsultationHandler(svc))
	})
}

type createConsultationRequest struct {
	DoctorName     string  `json:"doctor_name"`
	DoctorPhone    string  `json:"doctor_phone"`
	Specialization string  `json:"specialization"`
	AppointmentAt  string  `json:"appointment_date"` // RFC 3339
	Type           string  `json:"consultation_type"`
	Status         string  `json:"status"`
	Notes          string  `json:"notes"`
	Cost           float64 `json:"cost"`
}

func userID(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

func ownedBy(svc *Service, w http.ResponseWriter, r *http.Request, id, uid string) (Consultation, bool) {
	c, err := svc.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "consultation not found", http.StatusNotFound)
		return Consultation{}, false
	}
	if c.UserID != uid {
		http.Error(w, "forbidden", http.StatusForbidden)
		return Consultation{}, false
	}
	return c, true
}

func createConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createConsultationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		at, err := time.Parse(time.RFC3339, req.AppointmentAt)
		if err != nil {
			http.Error(w, "appointment_date must be RFC 3339", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			UserID:         uid,
			DoctorName:     req.DoctorName,
			DoctorPhone:    req.DoctorPhone,
			Specialization: req.Specialization,
			AppointmentAt:  at,
			Type:           req.Type,
			Status:         req.Status,
			Notes:          req.Notes,
			Cost:           req.Cost,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.WriteJSON(w, http.StatusCreated, c)
	}
}

func listConsultationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.ListByUser(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func upcomingConsultationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		items, err := svc.UpcomingByUser(r.Context(), uid)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		c, ok := ownedBy(svc, w, r, chi.URLParam(r, "consultationID"), uid)
		if !ok {
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

func updateConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "consultationID")
		if _, ok := ownedBy(svc, w, r, id, uid); !ok {
			return
		}

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "consultation not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

func deleteConsultationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "consultationID")
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
