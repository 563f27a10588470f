package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// ProcessFinalizationResultCommand carries the outcome of the finalize step.
type ProcessFinalizationResultCommand struct {
	ProcessID string `json:"process_id"`
	Succeeded bool   `json:"succeeded"`
	Reason    string `json:"reason,omitempty"`
}

// ProcessFinalizationResult closes the saga after a successful finalization,
// or starts compensation when the custody service could not complete it.
type ProcessFinalizationResult struct {
	dispatcher processDispatcher
}

// NewProcessFinalizationResult creates a new ProcessFinalizationResult use case
func NewProcessFinalizationResult(
	processRepository domain.AdoptionProcessRepository,
	eventPublisher events.Publisher,
	eventStore events.EventStore,
) *ProcessFinalizationResult {
	return &ProcessFinalizationResult{
		dispatcher: processDispatcher{
			processRepository: processRepository,
			eventPublisher:    eventPublisher,
			eventStore:        eventStore,
		},
	}
}

// Execute executes the process finalization result use case
func (uc *ProcessFinalizationResult) Execute(ctx context.Context, cmd *ProcessFinalizationResultCommand) error {
	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		return errors.Wrap(err, "invalid process ID")
	}

	if cmd.Succeeded {
		return uc.dispatcher.progress(ctx, processID, events.AdoptionFinalizedEvent,
			func(p *domain.AdoptionProcess) error {
				return p.Finalized()
			})
	}

	return uc.dispatcher.progress(ctx, processID, events.AdoptionFinalizationFailedEvent,
		func(p *domain.AdoptionProcess) error {
			return p.FinalizationFailed(cmd.Reason)
		})
}
