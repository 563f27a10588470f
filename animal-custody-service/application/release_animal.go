package application

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/shelterly/adoption-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ReleaseAnimalCommand represents the command to release a booked animal
type ReleaseAnimalCommand struct {
	ProcessID string `json:"process_id"`
	AnimalID  string `json:"animal_id"`
}

// ReleaseAnimal undoes a reservation. The saga waits on the released event to
// leave compensation, so this handler emits it unconditionally: releasing an
// already-released animal, a missing animal, or hitting a storage error all
// still produce the released event.
type ReleaseAnimal struct {
	animalRepository domain.AnimalRepository
	eventPublisher   events.Publisher
}

// NewReleaseAnimal creates a new ReleaseAnimal use case
func NewReleaseAnimal(
	animalRepository domain.AnimalRepository,
	eventPublisher events.Publisher,
) *ReleaseAnimal {
	return &ReleaseAnimal{
		animalRepository: animalRepository,
		eventPublisher:   eventPublisher,
	}
}

// Execute executes the release animal use case
func (uc *ReleaseAnimal) Execute(ctx context.Context, cmd *ReleaseAnimalCommand) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "release_animal",
		trace.WithAttributes(
			attribute.String("process_id", cmd.ProcessID),
			attribute.String("animal_id", cmd.AnimalID),
		),
	)
	defer span.End()

	var status = "error"
	defer func() {
		telemetry.RecordCounter(ctx, "custody_operations_total", "Total custody operations", 1,
			attribute.String("operation", "release_animal"),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "custody_operation_duration_seconds", "Custody operation duration", time.Since(start).Seconds(),
			attribute.String("operation", "release_animal"),
			attribute.String("status", status),
		)
	}()

	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "invalid process ID")
	}

	animalID, err := models.NewID(cmd.AnimalID)
	if err == nil {
		uc.release(ctx, processID, animalID)
	}

	event := events.NewEvent(models.ID(cmd.AnimalID), events.AnimalReleasedEvent, events.AnimalReleasedData{
		ProcessID: processID,
		AnimalID:  models.ID(cmd.AnimalID),
	}).WithCorrelationID(processID)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "failed to publish animal released event")
	}

	status = "success"
	return nil
}

// release clears the booking on a best-effort basis; the released event is
// published regardless of the outcome here.
func (uc *ReleaseAnimal) release(ctx context.Context, processID, animalID models.ID) {
	animal, err := uc.animalRepository.FindByID(ctx, animalID)
	if err != nil {
		fmt.Printf("Failed to load animal %s for release in process %s: %v\n", animalID, processID, err)
		return
	}

	if animal == nil {
		return
	}

	animal.Release()

	if err := uc.animalRepository.Save(ctx, animal); err != nil {
		fmt.Printf("Failed to save released animal %s in process %s: %v\n", animalID, processID, err)
	}
}
