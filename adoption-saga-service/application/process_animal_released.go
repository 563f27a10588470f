package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/shelterly/adoption-system/shared/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// ProcessAnimalReleasedCommand acknowledges a completed compensation.
type ProcessAnimalReleasedCommand struct {
	ProcessID string `json:"process_id"`
}

// ProcessAnimalReleased closes the saga once the reservation has been undone.
// The release event is the only way out of compensation, so this handler must
// always make progress when the process is still compensating.
type ProcessAnimalReleased struct {
	dispatcher processDispatcher
}

// NewProcessAnimalReleased creates a new ProcessAnimalReleased use case
func NewProcessAnimalReleased(
	processRepository domain.AdoptionProcessRepository,
	eventPublisher events.Publisher,
	eventStore events.EventStore,
) *ProcessAnimalReleased {
	return &ProcessAnimalReleased{
		dispatcher: processDispatcher{
			processRepository: processRepository,
			eventPublisher:    eventPublisher,
			eventStore:        eventStore,
		},
	}
}

// Execute executes the process animal released use case
func (uc *ProcessAnimalReleased) Execute(ctx context.Context, cmd *ProcessAnimalReleasedCommand) error {
	start := time.Now()
	ctx, span := telemetry.StartSpan(ctx, "process_animal_released",
		trace.WithAttributes(
			attribute.String("process_id", cmd.ProcessID),
		),
	)
	defer span.End()

	var status = "error"
	defer func() {
		telemetry.RecordCounter(ctx, "adoption_saga_operations_total", "Total adoption saga operations", 1,
			attribute.String("operation", "process_animal_released"),
			attribute.String("status", status),
		)
		telemetry.RecordHistogram(ctx, "adoption_saga_operation_duration_seconds", "Adoption saga operation duration", time.Since(start).Seconds(),
			attribute.String("operation", "process_animal_released"),
			attribute.String("status", status),
		)
	}()

	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		span.RecordError(err)
		return errors.Wrap(err, "invalid process ID")
	}

	err = uc.dispatcher.progress(ctx, processID, events.AnimalReleasedEvent,
		func(p *domain.AdoptionProcess) error {
			return p.Released()
		})
	if err != nil {
		span.RecordError(err)
		return err
	}

	status = "success"
	return nil
}
