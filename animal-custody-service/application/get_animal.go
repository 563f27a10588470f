package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/domain"
	"github.com/shelterly/adoption-system/shared/models"
)

// GetAnimalQuery represents the query to get an animal
type GetAnimalQuery struct {
	AnimalID string `json:"animal_id"`
}

// GetAnimalResponse represents the animal projection
type GetAnimalResponse struct {
	AnimalID    string    `json:"animal_id"`
	CustodianID string    `json:"custodian_id"`
	Name        string    `json:"name"`
	Species     string    `json:"species"`
	Status      string    `json:"status"`
	AdopterID   *string   `json:"adopter_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// GetAnimal use case
type GetAnimal struct {
	animalRepository domain.AnimalRepository
}

// NewGetAnimal creates a new GetAnimal use case
func NewGetAnimal(animalRepository domain.AnimalRepository) *GetAnimal {
	return &GetAnimal{animalRepository: animalRepository}
}

// Execute executes the get animal use case
func (uc *GetAnimal) Execute(ctx context.Context, query *GetAnimalQuery) (*GetAnimalResponse, error) {
	animalID, err := models.NewID(query.AnimalID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid animal ID")
	}

	animal, err := uc.animalRepository.FindByID(ctx, animalID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find animal")
	}

	if animal == nil {
		return nil, domain.ErrAnimalNotFound
	}

	response := &GetAnimalResponse{
		AnimalID:    animal.ID.String(),
		CustodianID: animal.CustodianID.String(),
		Name:        animal.Name,
		Species:     animal.Species,
		Status:      string(animal.Status),
		CreatedAt:   animal.Timestamps.CreatedAt,
		UpdatedAt:   animal.Timestamps.UpdatedAt,
	}

	if animal.AdopterID != nil {
		adopterID := animal.AdopterID.String()
		response.AdopterID = &adopterID
	}

	return response, nil
}
