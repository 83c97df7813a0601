package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/slip"
	"github.com/MuhammadRehanSaeed/uaar-employee-healthcare-dashboard/internal/store"
)

// listSlips projects the catalog view: substring search over patient name
// and ID, optional today-only filter, fixed-size pages.
func (h *Handler) listSlips(w http.ResponseWriter, r *http.Request) {
	slips, err := h.store.ListSlips(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list slips")
		return
	}

	q := r.URL.Query()
	page, err := strconv.Atoi(q.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err := strconv.Atoi(q.Get("pageSize"))
	if err != nil || pageSize < 1 {
		pageSize = slip.DefaultPageSize
	}
	filters := slip.FilterState{
		SearchTerm:    q.Get("search"),
		ShowTodayOnly: q.Get("today") == "true",
		CurrentPage:   page,
	}

	today := time.Now().Format(slip.DateLayout)
	respondJSON(w, http.StatusOK, slip.Project(slips, filters, pageSize, today))
}

func (h *Handler) issueSlip(w http.ResponseWriter, r *http.Request) {
	var draft slip.Draft
	if err := decodeJSON(r, &draft); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// One transaction around the whole issuance: the stock decrement and the
	// slip insert commit together or not at all.
	var slipID string
	err := h.store.WithTx(r.Context(), func(tx *store.Store) error {
		var issueErr error
		slipID, issueErr = slip.NewWorkflow(tx, tx).Issue(r.Context(), draft)
		return issueErr
	})
	switch {
	case err == nil:
		respondJSON(w, http.StatusCreated, map[string]string{"id": slipID})
	case errors.Is(err, slip.ErrMissingRequiredField), errors.Is(err, slip.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, slip.ErrInsufficientStock):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, store.ErrQuantityConflict):
		respondError(w, http.StatusConflict, "stock changed while issuing, please retry")
	default:
		h.log.Error().Err(err).Msg("slip issuance failed")
		respondError(w, http.StatusInternalServerError, "unable to issue slip")
	}
}

func (h *Handler) printSlip(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.GetSlip(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, "slip not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load slip")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderSlip(w, record); err != nil {
		h.log.Error().Err(err).Str("slip", record.ID).Msg("slip rendering failed")
	}
}

func (h *Handler) deleteSlip(w http.ResponseWriter, r *http.Request) {
	h.respondDeleted(w, h.store.DeleteSlip(r.Context(), chi.URLParam(r, "id")), "slip")
}
