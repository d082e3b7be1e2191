package clinics

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"medecho/internal/domain/geo"
	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/clinics", func(cr chi.Router) {
		cr.Post("/", createClinicHandler(svc))
		cr.Get("/", listClinicsHandler(svc))
		cr.Get("/nearby", nearbyClinicsHandler(svc))
		cr.Get("/{clinicID}", getClinicHandler(svc))
		cr.Patch("/{clinicID}", updateClinicHandler(svc))
		cr.Delete("/{clinicID}", deleteClinicHandler(svc))
	})
}

type nearbyClinicResponse struct {
	Clinic
	DistanceKm float64 `json:"distance_km"`
}

func createClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Clinic
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.WriteJSON(w, http.StatusCreated, c)
	}
}

func listClinicsHandler(svc *Service) http.HandlerFunc {
	// ?type= filtra por tipo de establecimiento.
	return func(w http.ResponseWriter, r *http.Request) {
		if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
			if _, err := ParseClinicType(t); err != nil {
				http.Error(w, "unknown clinic type", http.StatusBadRequest)
				return
			}
			items, err := svc.Filter(r.Context(), map[string]any{"type": t})
			if err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			web.WriteJSON(w, http.StatusOK, items)
			return
		}

		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func nearbyClinicsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		ref, err := geo.ParsePoint(q.Get("lat"), q.Get("lon"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		radius, err := geo.ParseRadiusKm(q.Get("radius_km"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		results, err := svc.SearchNearby(r.Context(), ref, radius)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]nearbyClinicResponse, 0, len(results))
		for _, res := range results {
			out = append(out, nearbyClinicResponse{Clinic: res.Item, DistanceKm: res.DistanceKm})
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "clinicID"))
		if err != nil {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

func updateClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "clinicID"), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "clinic not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

func deleteClinicHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.Delete(r.Context(), chi.URLParam(r, "clinicID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, "clinic not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
