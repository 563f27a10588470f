package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// ProcessReservationResultCommand carries the outcome of the reserve step.
type ProcessReservationResultCommand struct {
	ProcessID string `json:"process_id"`
	Succeeded bool   `json:"succeeded"`
	Reason    string `json:"reason,omitempty"`
}

// ProcessReservationResult advances the saga after the animal-custody service
// reports the reservation outcome. Success moves on to chat creation; failure
// closes the process directly, nothing has been applied yet.
type ProcessReservationResult struct {
	dispatcher processDispatcher
}

// NewProcessReservationResult creates a new ProcessReservationResult use case
func NewProcessReservationResult(
	processRepository domain.AdoptionProcessRepository,
	eventPublisher events.Publisher,
	eventStore events.EventStore,
) *ProcessReservationResult {
	return &ProcessReservationResult{
		dispatcher: processDispatcher{
			processRepository: processRepository,
			eventPublisher:    eventPublisher,
			eventStore:        eventStore,
		},
	}
}

// Execute executes the process reservation result use case
func (uc *ProcessReservationResult) Execute(ctx context.Context, cmd *ProcessReservationResultCommand) error {
	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		return errors.Wrap(err, "invalid process ID")
	}

	if cmd.Succeeded {
		return uc.dispatcher.progress(ctx, processID, events.AnimalReservedEvent,
			func(p *domain.AdoptionProcess) error {
				return p.Reserved()
			})
	}

	return uc.dispatcher.progress(ctx, processID, events.AnimalReservationFailedEvent,
		func(p *domain.AdoptionProcess) error {
			return p.ReservationFailed(cmd.Reason)
		})
}
