package emergency

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/emergency-contacts", func(er chi.Router) {
		er.Post("/", createContactHandler(svc))
		er.Get("/", listContactsHandler(svc))
		er.Get("/{contactID}", getContactHandler(svc))
		er.Patch("/{contactID}", updateContactHandler(svc))
		er.Delete("/{contactID}", deleteContactHandler(svc))
	})
}

type createContactRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Type         string `json:"type"`
	Description  string `json:"description"`
	IsTollFree   *bool  `json:"is_toll_free"`
	Availability string `json:"availability"`
	CoverageArea string `json:"coverage_area"`
}

func createContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Create(r.Context(), CreateInput{
			Name:         req.Name,
			Phone:        req.Phone,
			Type:         req.Type,
			Description:  req.Description,
			IsTollFree:   req.IsTollFree,
			Availability: req.Availability,
			CoverageArea: req.CoverageArea,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.WriteJSON(w, http.StatusCreated, c)
	}
}

func listContactsHandler(svc *Service) http.HandlerFunc {
	// ?type= filtra por clase de línea (ambulance, police, ...).
	return func(w http.ResponseWriter, r *http.Request) {
		if t := strings.TrimSpace(r.URL.Query().Get("type")); t != "" {
			items, err := svc.GetByType(r.Context(), t)
			if err != nil {
				if errors.Is(err, ErrInvalidInput) {
					http.Error(w, "unknown contact type", http.StatusBadRequest)
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

func getContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := svc.GetByID(r.Context(), chi.URLParam(r, "contactID"))
		if err != nil {
			http.Error(w, "contact not found", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

func updateContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		c, err := svc.Update(r.Context(), chi.URLParam(r, "contactID"), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "contact not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, c)
	}
}

func deleteContactHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.Delete(r.Context(), chi.URLParam(r, "contactID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, "contact not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
