package medicines

import (
	"encoding/json"
	"errors"
	"net/http"

	"medecho/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/medicines", func(mr chi.Router) {
		mr.Post("/", createMedicineHandler(svc))
		mr.Get("/", searchMedicinesHandler(svc))
		mr.Get("/{medicineID}", getMedicineHandler(svc))
		mr.Patch("/{medicineID}", updateMedicineHandler(svc))
		mr.Delete("/{medicineID}", deleteMedicineHandler(svc))
	})
}

type createMedicineRequest struct {
	Name        string  `json:"name"`
	GenericName string  `json:"generic_name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Form        string  `json:"type"`
	Strength    string  `json:"strength"`
	PackSize    string  `json:"pack_size"`
	Price       float64 `json:"price"`
	MRP         float64 `json:"mrp"`
	Uses        string  `json:"uses"`
	SideEffects string  `json:"side_effects"`
	Precautions string  `json:"precautions"`

	RequiresPrescription *bool `json:"requires_prescription"`
	InStock              *bool `json:"in_stock"`
}

func createMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicineRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:                 req.Name,
			GenericName:          req.GenericName,
			Brand:                req.Brand,
			Category:             req.Category,
			Form:                 req.Form,
			Strength:             req.Strength,
			PackSize:             req.PackSize,
			Price:                req.Price,
			MRP:                  req.MRP,
			Uses:                 req.Uses,
			SideEffects:          req.SideEffects,
			Precautions:          req.Precautions,
			RequiresPrescription: req.RequiresPrescription,
			InStock:              req.InStock,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		web.WriteJSON(w, http.StatusCreated, m)
	}
}

func searchMedicinesHandler(svc *Service) http.HandlerFunc {
	// ?q= hace substring case-insensitive; vacío lista el catálogo completo.
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Search(r.Context(), r.URL.Query().Get("q"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicineID"))
		if err != nil {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}
		web.WriteJSON(w, http.StatusOK, m)
	}
}

func updateMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch map[string]any
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "medicineID"), patch)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "medicine not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}
		web.WriteJSON(w, http.StatusOK, m)
	}
}

func deleteMedicineHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		removed, err := svc.Delete(r.Context(), chi.URLParam(r, "medicineID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		if !removed {
			http.Error(w, "medicine not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
