package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
)

func (h *Handler) listMedicines(w http.ResponseWriter, r *http.Request) {
	medicines, err := h.store.ListMedicines(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list inventory")
		return
	}
	respondJSON(w, http.StatusOK, medicines)
}

type medicineRequest struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

func (h *Handler) createMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "name and a non-negative quantity are required")
		return
	}
	medicine := domain.MedicineStock{Name: req.Name, Quantity: req.Quantity}
	if err := h.store.CreateMedicine(r.Context(), &medicine); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to add medicine")
		return
	}
	respondJSON(w, http.StatusCreated, medicine)
}

func (h *Handler) updateMedicine(w http.ResponseWriter, r *http.Request) {
	var req medicineRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Quantity < 0 {
		respondError(w, http.StatusBadRequest, "name and a non-negative quantity are required")
		return
	}
	medicine := domain.MedicineStock{ID: chi.URLParam(r, "id"), Name: req.Name, Quantity: req.Quantity}
	h.respondUpdated(w, h.store.UpdateMedicine(r.Context(), &medicine), "medicine")
}

func (h *Handler) deleteMedicine(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteMedicine(r.Context(), chi.URLParam(r, "id")), "medicine")
}
