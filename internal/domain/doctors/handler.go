package doctors

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
	r.Route("/doctors", func(dr chi.Router) {
		dr.Post("/", createDoctorHandler(svc))
		dr.Get("/", listDoctorsHandler(svc))
		dr.Get("/nearby", nearbyDoctorsHandler(svc))
		dr.Get("/{doctorID}", getDoctorHandler(svc))
		dr.Patch("/{doctorID}", updateDoctorHandler(svc))
		dr.Delete("/{doctorID}", deleteDoctorHandler(svc))
	})
}

// nearbyDoctorResponse anota al doctor con la distancia de esta consulta.
type nearbyDoctorResponse struct {
	Doctor
	DistanceKm float64 `json:"distance_km"`
}

func createDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Doctor
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Create(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		web.WriteJSON(w, http.StatusCreated, d)
	}
}

func listDoctorsHandler(svc *Service) http.HandlerFunc {
	// ?specialization= filtra; sin query param lista todo.
	return func(w http.ResponseWriter, r *http.Request) {
		if spec := strings.TrimSpace(r.URL.Query().Get("specialization")); spec != "" {
			items, err := svc.SearchBySpecialization(r.Context(), spec)
			if err != nil {
				if errors.Is(err, ErrInvalidInput) {
					http.Error(w, "unknown specialization", http.StatusBadRequest)
					return
				}
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

func nearbyDoctorsHandler(svc *Service) http.HandlerFunc {
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

		out := make([]nearbyDoctorResponse, 0, len(results))
		for _, res := range results {
			out = append(out, nearbyDoctorResponse{Doctor: res.Item, DistanceKm: res.DistanceKm})
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		d, err := svc.GetByID(r.Context(), chi.URLParam(r, "doctorID"))
		if err != nil {
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, d)
	}
}

func updateDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		d, err := svc.Update(r.Context(), chi.URLParam(r, "doctorID"), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "doctor not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, d)
	}
}

func deleteDoctorHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.Delete(r.Context(), chi.URLParam(r, "doctorID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, "doctor not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
