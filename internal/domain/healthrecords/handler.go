package healthrecords

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"medecho/internal/middleware"
	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/health-records", func(hr chi.Router) {
		hr.Post("/", createRecordHandler(svc))
		hr.Get("/", listRecordsHandler(svc))
		hr.Get("/recent", recentRecordsHandler(svc))
		hr.Get("/{recordID}", getRecordHandler(svc))
		hr.Patch("/{recordID}", updateRecordHandler(svc))
		hr.Delete("/{recordID}", deleteRecordHandler(svc))
	})
}

type createRecordRequest struct {
	Symptoms         string `json:"symptoms"`
	Severity         string `json:"severity"`
	AIRecommendation string `json:"ai_recommendation"`
	Status           string `json:"status"`
	ConsultationKind string `json:"consultation_type"`
	VoiceTranscript  string `json:"voice_transcript"`
}

func userID(r *http.Request) (string, bool) {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		return "", false
	}
	return claims.UserID, true
}

func ownedBy(svc *Service, w http.ResponseWriter, r *http.Request, id, uid string) (HealthRecord, bool) {
	rec, err := svc.GetByID(r.Context(), id)
	if err != nil {
		http.Error(w, "health record not found", http.StatusNotFound)
		return HealthRecord{}, false
	}
	if rec.UserID != uid {
		http.Error(w, "forbidden", http.StatusForbidden)
		return HealthRecord{}, false
	}
	return rec, true
}

func createRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createRecordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Create(r.Context(), CreateInput{
			UserID:           uid,
			Symptoms:         req.Symptoms,
			Severity:         req.Severity,
			AIRecommendation: req.AIRecommendation,
			Status:           req.Status,
			ConsultationKind: req.ConsultationKind,
			VoiceTranscript:  req.VoiceTranscript,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.WriteJSON(w, http.StatusCreated, rec)
	}
}

func listRecordsHandler(svc *Service) http.HandlerFunc {
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

func recentRecordsHandler(svc *Service) http.HandlerFunc {
	// ?limit= acota; ausente o inválido usa el default del servicio.
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		limit := 0
		if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				http.Error(w, "invalid limit", http.StatusBadRequest)
				return
			}
			limit = n
		}

		items, err := svc.RecentByUser(r.Context(), uid, limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rec, ok := ownedBy(svc, w, r, chi.URLParam(r, "recordID"), uid)
		if !ok {
			return
		}
		web.WriteJSON(w, http.StatusOK, rec)
	}
}

func updateRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "recordID")
		if _, ok := ownedBy(svc, w, r, id, uid); !ok {
			return
		}

		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rec, err := svc.Update(r.Context(), id, patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "health record not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, rec)
	}
}

func deleteRecordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, ok := userID(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id := chi.URLParam(r, "recordID")
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
