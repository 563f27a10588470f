package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// ProcessAdoptionDecisionCommand carries a custodian's confirm or reject.
type ProcessAdoptionDecisionCommand struct {
	ProcessID string `json:"process_id"`
	Confirmed bool   `json:"confirmed"`
	Reason    string `json:"reason,omitempty"`
}

// ProcessAdoptionDecision applies the human decision injected through the
// control facade. Confirm requests finalization; reject starts compensation.
// Once one decision is applied the other becomes illegal and is dropped.
type ProcessAdoptionDecision struct {
	dispatcher processDispatcher
}

// NewProcessAdoptionDecision creates a new ProcessAdoptionDecision use case
func NewProcessAdoptionDecision(
	processRepository domain.AdoptionProcessRepository,
	eventPublisher events.Publisher,
	eventStore events.EventStore,
) *ProcessAdoptionDecision {
	return &ProcessAdoptionDecision{
		dispatcher: processDispatcher{
			processRepository: processRepository,
			eventPublisher:    eventPublisher,
			eventStore:        eventStore,
		},
	}
}

// Execute executes the process adoption decision use case
func (uc *ProcessAdoptionDecision) Execute(ctx context.Context, cmd *ProcessAdoptionDecisionCommand) error {
	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		return errors.Wrap(err, "invalid process ID")
	}

	if cmd.Confirmed {
		return uc.dispatcher.progress(ctx, processID, events.AdoptionConfirmedEvent,
			func(p *domain.AdoptionProcess) error {
				return p.Confirm()
			})
	}

	return uc.dispatcher.progress(ctx, processID, events.AdoptionRejectedEvent,
		func(p *domain.AdoptionProcess) error {
			return p.Reject(cmd.Reason)
		})
}
