package application

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/shelterly/adoption-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// StartAdoptionCommand carries the data captured once at process start.
type StartAdoptionCommand struct {
	ProcessID          string `json:"process_id"`
	AnimalID           string `json:"animal_id"`
	CustodianID        string `json:"custodian_id"`
	AdopterID          string `json:"adopter_id"`
	AdopterDisplayName string `json:"adopter_display_name"`
	AnimalDisplayName  string `json:"animal_display_name"`
}

// StartAdoption creates the saga instance for an adoption attempt and issues
// the first command of the flow. The instance is created exactly once per
// process ID; a redelivered start event is dropped.
type StartAdoption struct {
	processRepository domain.AdoptionProcessRepository
	eventPublisher    events.Publisher
	eventStore        events.EventStore
}

// NewStartAdoption creates a new StartAdoption use case
func NewStartAdoption(
	processRepository domain.AdoptionProcessRepository,
	eventPublisher events.Publisher,
	eventStore events.EventStore,
) *StartAdoption {
	return &StartAdoption{
		processRepository: processRepository,
		eventPublisher:    eventPublisher,
		eventStore:        eventStore,
	}
}

// Execute executes the start adoption use case
func (uc *StartAdoption) Execute(ctx context.Context, cmd *StartAdoptionCommand) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "start_adoption",
		trace.WithAttributes(
			attribute.String("process_id", cmd.ProcessID),
			attribute.String("animal_id", cmd.AnimalID),
		),
	)
	defer span.End()

	var status = "error"
	defer func() {
		duration := time.Since(start)
		telemetry.RecordCounter(ctx, "adoption_saga_operations_total", "Total adoption saga operations", 1,
			attribute.String("operation", "start_adoption"),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "adoption_saga_operation_duration_seconds", "Adoption saga operation duration", duration.Seconds(),
			attribute.String("operation", "start_adoption"),
			attribute.String("status", status),
		)
	}()

	if err := uc.validateCommand(cmd); err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "invalid command")
	}

	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		return errors.Wrap(err, "invalid process ID")
	}

	existing, err := uc.processRepository.FindByID(ctx, processID)
	if err != nil {
		return errors.Wrap(err, "failed to check for existing process")
	}
	if existing != nil {
		// Redelivered start event; the instance is never re-created.
		fmt.Printf("Dropping %s: adoption process %s already exists\n", events.AdoptionStartedEvent, processID)
		status = "duplicate"
		return nil
	}

	animalID, err := models.NewID(cmd.AnimalID)
	if err != nil {
		return errors.Wrap(err, "invalid animal ID")
	}
	custodianID, err := models.NewID(cmd.CustodianID)
	if err != nil {
		return errors.Wrap(err, "invalid custodian ID")
	}
	adopterID, err := models.NewID(cmd.AdopterID)
	if err != nil {
		return errors.Wrap(err, "invalid adopter ID")
	}

	process, err := domain.StartAdoption(processID, animalID, custodianID, adopterID,
		cmd.AdopterDisplayName, cmd.AnimalDisplayName)
	if err != nil {
		return errors.Wrap(err, "failed to start adoption process")
	}

	if err := uc.processRepository.Save(ctx, process); err != nil {
		return errors.Wrap(err, "failed to save adoption process")
	}

	outbound := process.Events()
	process.ClearEvents()

	if err := uc.eventPublisher.Publish(ctx, outbound...); err != nil {
		return errors.Wrap(err, "failed to publish events")
	}

	if uc.eventStore != nil {
		if err := uc.eventStore.SaveEvents(ctx, process.ID, outbound); err != nil {
			fmt.Printf("Failed to append events for process %s to audit trail: %v\n", process.ID, err)
		}
	}

	status = "success"
	return nil
}

// validateCommand validates the start adoption command
func (uc *StartAdoption) validateCommand(cmd *StartAdoptionCommand) error {
	if cmd.ProcessID == "" {
		return errors.New("process ID is required")
	}
	if cmd.AnimalID == "" {
		return errors.New("animal ID is required")
	}
	if cmd.CustodianID == "" {
		return errors.New("custodian ID is required")
	}
	if cmd.AdopterID == "" {
		return errors.New("adopter ID is required")
	}
	return nil
}
