package pharmacies

import (
	"encoding/json"
	"errors"
	"net/http"

	"medecho/internal/domain/geo"
	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pharmacies", func(pr chi.Router) {
		pr.Post("/", createStoreHandler(svc))
		pr.Get("/", listStoresHandler(svc))
		pr.Get("/nearby", nearbyStoresHandler(svc))
		pr.Get("/{storeID}", getStoreHandler(svc))
		pr.Patch("/{storeID}", updateStoreHandler(svc))
		pr.Delete("/{storeID}", deleteStoreHandler(svc))
	})
}

type nearbyStoreResponse struct {
	Store
	DistanceKm float64 `json:"distance_km"`
}

func createStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Store
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Create(r.Context(), req)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.WriteJSON(w, http.StatusCreated, p)
	}
}

func listStoresHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func nearbyStoresHandler(svc *Service) http.HandlerFunc {
	// Sin radius_km el servicio aplica el default corto de farmacias (5 km).
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

		out := make([]nearbyStoreResponse, 0, len(results))
		for _, res := range results {
			out = append(out, nearbyStoreResponse{Store: res.Item, DistanceKm: res.DistanceKm})
		}
		web.WriteJSON(w, http.StatusOK, out)
	}
}

func getStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "storeID"))
		if err != nil {
			http.Error(w, "pharmacy not found", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, p)
	}
}

func updateStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "storeID"), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "pharmacy not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, p)
	}
}

func deleteStoreHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.Delete(r.Context(), chi.URLParam(r, "storeID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, "pharmacy not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
