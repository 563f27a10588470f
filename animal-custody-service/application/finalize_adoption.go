package application

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// FinalizeAdoptionCommand represents the command to finalize an adoption
type FinalizeAdoptionCommand struct {
	ProcessID string `json:"process_id"`
	AnimalID  string `json:"animal_id"`
}

// FinalizeAdoption marks a booked animal as adopted. Like the reserve step,
// every failure becomes exactly one finalization-failed event so the saga can
// compensate instead of the command being redelivered forever.
type FinalizeAdoption struct {
	animalRepository domain.AnimalRepository
	eventPublisher   events.Publisher
}

// NewFinalizeAdoption creates a new FinalizeAdoption use case
func NewFinalizeAdoption(
	animalRepository domain.AnimalRepository,
	eventPublisher events.Publisher,
) *FinalizeAdoption {
	return &FinalizeAdoption{
		animalRepository: animalRepository,
		eventPublisher:   eventPublisher,
	}
}

// Execute executes the finalize adoption use case
func (uc *FinalizeAdoption) Execute(ctx context.Context, cmd *FinalizeAdoptionCommand) error {
	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		return errors.Wrap(err, "invalid process ID")
	}

	animalID, err := models.NewID(cmd.AnimalID)
	if err != nil {
		return uc.publishFailure(ctx, processID, models.ID(cmd.AnimalID), "invalid animal ID")
	}

	animal, err := uc.animalRepository.FindByID(ctx, animalID)
	if err != nil {
		fmt.Printf("Failed to load animal %s for process %s: %v\n", animalID, processID, err)
		return uc.publishFailure(ctx, processID, animalID, "animal lookup failed")
	}

	if animal == nil {
		return uc.publishFailure(ctx, processID, animalID, domain.ErrAnimalNotFound.Error())
	}

	if err := animal.Adopt(); err != nil {
		return uc.publishFailure(ctx, processID, animalID, err.Error())
	}

	if err := uc.animalRepository.Save(ctx, animal); err != nil {
		fmt.Printf("Failed to save animal %s for process %s: %v\n", animalID, processID, err)
		return uc.publishFailure(ctx, processID, animalID, "failed to persist adoption")
	}

	event := events.NewEvent(animal.ID, events.AdoptionFinalizedEvent, events.AdoptionFinalizedData{
		ProcessID: processID,
		AnimalID:  animal.ID,
	}).WithCorrelationID(processID)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish adoption finalized event")
	}

	return nil
}

func (uc *FinalizeAdoption) publishFailure(ctx context.Context, processID, animalID models.ID, reason string) error {
	event := events.NewEvent(animalID, events.AdoptionFinalizationFailedEvent, events.AdoptionFinalizationFailedData{
		ProcessID: processID,
		AnimalID:  animalID,
		Reason:    reason,
	}).WithCorrelationID(processID)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish finalization failed event")
	}

	return nil
}
