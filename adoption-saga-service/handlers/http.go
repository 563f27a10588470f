package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/application"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
)

// AdoptionHandlers contains the adoption control facade HTTP handlers
type AdoptionHandlers struct {
	getAdoption     *application.GetAdoption
	listAdoptions   *application.ListAdoptions
	confirmAdoption *application.ConfirmAdoption
	rejectAdoption  *application.RejectAdoption
}

// NewAdoptionHandlers creates new adoption handlers
func NewAdoptionHandlers(
	getAdoption *application.GetAdoption,
	listAdoptions *application.ListAdoptions,
	confirmAdoption *application.ConfirmAdoption,
	rejectAdoption *application.RejectAdoption,
) *AdoptionHandlers {
	return &AdoptionHandlers{
		getAdoption:     getAdoption,
		listAdoptions:   listAdoptions,
		confirmAdoption: confirmAdoption,
		rejectAdoption:  rejectAdoption,
	}
}

// GetAdoption handles adoption status requests
func (h *AdoptionHandlers) GetAdoption(w http.ResponseWriter, r *http.Request) {
	processID := chi.URLParam(r, "id")
	if processID == "" {
		http.Error(w, "Process ID is required", http.StatusBadRequest)
		return
	}

	view, err := h.getAdoption.Execute(r.Context(), &application.GetAdoptionQuery{
		ProcessID: processID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(view)
}

// ListAdoptions handles operational queries by process state
func (h *AdoptionHandlers) ListAdoptions(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status == "" {
		http.Error(w, "status query parameter is required", http.StatusBadRequest)
		return
	}

	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	response, err := h.listAdoptions.Execute(r.Context(), &application.ListAdoptionsQuery{
		Status: status,
		Offset: offset,
		Limit:  limit,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

type decisionRequest struct {
	ActingUserID string `json:"acting_user_id"`
	Reason       string `json:"reason,omitempty"`
}

// ConfirmAdoption handles the custodian's approval
func (h *AdoptionHandlers) ConfirmAdoption(w http.ResponseWriter, r *http.Request) {
	processID := chi.URLParam(r, "id")

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.confirmAdoption.Execute(r.Context(), &application.ConfirmAdoptionCommand{
		ProcessID:    processID,
		ActingUserID: req.ActingUserID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

// RejectAdoption handles the custodian's rejection
func (h *AdoptionHandlers) RejectAdoption(w http.ResponseWriter, r *http.Request) {
	processID := chi.URLParam(r, "id")

	var req decisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := h.rejectAdoption.Execute(r.Context(), &application.RejectAdoptionCommand{
		ProcessID:    processID,
		ActingUserID: req.ActingUserID,
		Reason:       req.Reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, application.ErrProcessNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrNotWaitingForDecision):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrNotCustodian):
		http.Error(w, err.Error(), http.StatusForbidden)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// RegisterRoutes registers adoption routes
func (h *AdoptionHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/adoptions", func(r chi.Router) {
		r.Get("/", h.ListAdoptions)
		r.Get("/{id}", h.GetAdoption)
		r.Post("/{id}/confirm", h.ConfirmAdoption)
		r.Post("/{id}/reject", h.RejectAdoption)
	})
}
