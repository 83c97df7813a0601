package api

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/domain"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/store"
)

// Directory CRUD. The list screens filter client-side, so list handlers
// return the full collection. Only the record name is required; the source
// dashboard is permissive about everything else.

func (h *Handler) respondDeleted(w http.ResponseWriter, err error, what string) {
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, what+" not found")
	default:
		respondError(w, http.StatusInternalServerError, "unable to delete "+what)
	}
}

func (h *Handler) respondUpdated(w http.ResponseWriter, err error, what string) {
	switch {
	case err == nil:
		respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
	case errors.Is(err, store.ErrNotFound):
		respondError(w, http.StatusNotFound, what+" not found")
	default:
		respondError(w, http.StatusInternalServerError, "unable to update "+what)
	}
}

// Students

func (h *Handler) listStudents(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListStudents(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list students")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) createStudent(w http.ResponseWriter, r *http.Request) {
	var rec domain.Student
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = ""
	if err := h.store.CreateStudent(r.Context(), &rec); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create student")
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) updateStudent(w http.ResponseWriter, r *http.Request) {
	var rec domain.Student
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = chi.URLParam(r, "id")
	h.respondUpdated(w, h.store.UpdateStudent(r.Context(), &rec), "student")
}

func (h *Handler) deleteStudent(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteStudent(r.Context(), chi.URLParam(r, "id")), "student")
}

// Doctors

func (h *Handler) listDoctors(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListDoctors(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list doctors")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) createDoctor(w http.ResponseWriter, r *http.Request) {
	var rec domain.Doctor
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = ""
	if err := h.store.CreateDoctor(r.Context(), &rec); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create doctor")
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) updateDoctor(w http.ResponseWriter, r *http.Request) {
	var rec domain.Doctor
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = chi.URLParam(r, "id")
	h.respondUpdated(w, h.store.UpdateDoctor(r.Context(), &rec), "doctor")
}

func (h *Handler) deleteDoctor(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteDoctor(r.Context(), chi.URLParam(r, "id")), "doctor")
}

// Employees

func (h *Handler) listEmployees(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListEmployees(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list employees")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var rec domain.Employee
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = ""
	if err := h.store.CreateEmployee(r.Context(), &rec); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create employee")
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var rec domain.Employee
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = chi.URLParam(r, "id")
	h.respondUpdated(w, h.store.UpdateEmployee(r.Context(), &rec), "employee")
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteEmployee(r.Context(), chi.URLParam(r, "id")), "employee")
}

// External doctors

func (h *Handler) listExternalDoctors(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListExternalDoctors(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list external doctors")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) createExternalDoctor(w http.ResponseWriter, r *http.Request) {
	var rec domain.ExternalDoctor
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = ""
	if err := h.store.CreateExternalDoctor(r.Context(), &rec); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create external doctor")
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) updateExternalDoctor(w http.ResponseWriter, r *http.Request) {
	var rec domain.ExternalDoctor
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = chi.URLParam(r, "id")
	h.respondUpdated(w, h.store.UpdateExternalDoctor(r.Context(), &rec), "external doctor")
}

func (h *Handler) deleteExternalDoctor(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteExternalDoctor(r.Context(), chi.URLParam(r, "id")), "external doctor")
}

// Hospitals

func (h *Handler) listHospitals(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListHospitals(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list hospitals")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) createHospital(w http.ResponseWriter, r *http.Request) {
	var rec domain.Hospital
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = ""
	if err := h.store.CreateHospital(r.Context(), &rec); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create hospital")
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) updateHospital(w http.ResponseWriter, r *http.Request) {
	var rec domain.Hospital
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = chi.URLParam(r, "id")
	h.respondUpdated(w, h.store.UpdateHospital(r.Context(), &rec), "hospital")
}

func (h *Handler) deleteHospital(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteHospital(r.Context(), chi.URLParam(r, "id")), "hospital")
}

// Labs

func (h *Handler) listLabs(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListLabs(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list labs")
		return
	}
	respondJSON(w, http.StatusOK, records)
}

func (h *Handler) createLab(w http.ResponseWriter, r *http.Request) {
	var rec domain.Lab
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = ""
	if err := h.store.CreateLab(r.Context(), &rec); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create lab")
		return
	}
	respondJSON(w, http.StatusCreated, rec)
}

func (h *Handler) updateLab(w http.ResponseWriter, r *http.Request) {
	var rec domain.Lab
	if err := decodeJSON(r, &rec); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if rec.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	rec.ID = chi.URLParam(r, "id")
	h.respondUpdated(w, h.store.UpdateLab(r.Context(), &rec), "lab")
}

func (h *Handler) deleteLab(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteLab(r.Context(), chi.URLParam(r, "id")), "lab")
}
