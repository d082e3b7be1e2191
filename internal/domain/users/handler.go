package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc))
		ar.Post("/logout", logoutHandler(svc))
	})

	// Perfil del usuario con sesión activa.
	r.Get("/me", meHandler(svc))
	r.Patch("/me", updateProfileHandler(svc))

	r.Route("/users", func(ur chi.Router) {
		ur.Post("/", createUserHandler(svc))
		ur.Get("/", listUsersHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Patch("/{userID}", updateUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

type loginRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

func loginHandler(svc *Service) http.HandlerFunc {
	// Find-or-create por email; el proveedor de identidad real queda afuera.
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Login(r.Context(), req.Email, req.Name)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "valid email required", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, u)
	}
}

func logoutHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Logout(r.Context()); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.Current(r.Context())
		if err != nil {
			if errors.Is(err, ErrNotAuthenticated) {
				http.Error(w, "not authenticated", http.StatusUnauthorized)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, u)
	}
}

func updateProfileHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.UpdateProfile(r.Context(), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotAuthenticated):
				http.Error(w, "not authenticated", http.StatusUnauthorized)
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, u)
	}
}

type createUserRequest struct {
	Email             string `json:"email"`
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	PreferredLanguage string `json:"preferred_language"`
}

func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Create(r.Context(), CreateInput{
			Email:             req.Email,
			Name:              req.Name,
			Phone:             req.Phone,
			PreferredLanguage: req.PreferredLanguage,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusCreated, u)
	}
}

func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		u, err := svc.Update(r.Context(), chi.URLParam(r, "userID"), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "user not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, u)
	}
}

func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.Delete(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, u)
	}
}
