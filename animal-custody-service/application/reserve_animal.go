package application

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// ReserveAnimalCommand represents the command to reserve an animal
type ReserveAnimalCommand struct {
	ProcessID string `json:"process_id"`
	AnimalID  string `json:"animal_id"`
	AdopterID string `json:"adopter_id"`
}

// ReserveAnimal books an animal for an adopter. Every outcome, including a
// missing animal or a storage failure, is reported back to the saga as
// exactly one reserved or reservation-failed event, never as a handler error
// that would put the command back on the queue.
type ReserveAnimal struct {
	animalRepository domain.AnimalRepository
	eventPublisher   events.Publisher
}

// NewReserveAnimal creates a new ReserveAnimal use case
func NewReserveAnimal(
	animalRepository domain.AnimalRepository,
	eventPublisher events.Publisher,
) *ReserveAnimal {
	return &ReserveAnimal{
		animalRepository: animalRepository,
		eventPublisher:   eventPublisher,
	}
}

// Execute executes the reserve animal use case
func (uc *ReserveAnimal) Execute(ctx context.Context, cmd *ReserveAnimalCommand) error {
	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		return errors.Wrap(err, "invalid process ID")
	}

	animalID, adopterID, err := uc.parseIDs(cmd)
	if err != nil {
		return uc.publishFailure(ctx, processID, models.ID(cmd.AnimalID), err.Error())
	}

	animal, err := uc.animalRepository.FindByID(ctx, animalID)
	if err != nil {
		fmt.Printf("Failed to load animal %s for process %s: %v\n", animalID, processID, err)
		return uc.publishFailure(ctx, processID, animalID, "animal lookup failed")
	}

	if animal == nil {
		return uc.publishFailure(ctx, processID, animalID, domain.ErrAnimalNotFound.Error())
	}

	if err := animal.Book(adopterID); err != nil {
		return uc.publishFailure(ctx, processID, animalID, err.Error())
	}

	if err := uc.animalRepository.Save(ctx, animal); err != nil {
		fmt.Printf("Failed to save animal %s for process %s: %v\n", animalID, processID, err)
		return uc.publishFailure(ctx, processID, animalID, "failed to persist reservation")
	}

	event := events.NewEvent(animal.ID, events.AnimalReservedEvent, events.AnimalReservedData{
		ProcessID: processID,
		AnimalID:  animal.ID,
	}).WithCorrelationID(processID)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish animal reserved event")
	}

	return nil
}

func (uc *ReserveAnimal) parseIDs(cmd *ReserveAnimalCommand) (models.ID, models.ID, error) {
	animalID, err := models.NewID(cmd.AnimalID)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid animal ID")
	}

	adopterID, err := models.NewID(cmd.AdopterID)
	if err != nil {
		return "", "", errors.Wrap(err, "invalid adopter ID")
	}

	return animalID, adopterID, nil
}

func (uc *ReserveAnimal) publishFailure(ctx context.Context, processID, animalID models.ID, reason string) error {
	event := events.NewEvent(animalID, events.AnimalReservationFailedEvent, events.AnimalReservationFailedData{
		ProcessID: processID,
		AnimalID:  animalID,
		Reason:    reason,
	}).WithCorrelationID(processID)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish reservation failed event")
	}

	return nil
}
