package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/application"
	"github.com/shelterly/adoption-system/animal-custody-service/domain"
)

// AnimalHandlers contains animal HTTP handlers
type AnimalHandlers struct {
	getAnimal *application.GetAnimal
}

// NewAnimalHandlers creates new animal handlers
func NewAnimalHandlers(getAnimal *application.GetAnimal) *AnimalHandlers {
	return &AnimalHandlers{getAnimal: getAnimal}
}

// GetAnimal handles animal retrieval requests
func (h *AnimalHandlers) GetAnimal(w http.ResponseWriter, r *http.Request) {
	animalID := chi.URLParam(r, "id")
	if animalID == "" {
		http.Error(w, "Animal ID is required", http.StatusBadRequest)
		return
	}

	response, err := h.getAnimal.Execute(r.Context(), &application.GetAnimalQuery{
		AnimalID: animalID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAnimalNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// RegisterRoutes registers animal routes
func (h *AnimalHandlers) RegisterRoutes(r chi.Router) {
	r.Route("/animals", func(r chi.Router) {
		r.Get("/{id}", h.GetAnimal)
	})
}
