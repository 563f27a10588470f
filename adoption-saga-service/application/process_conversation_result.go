package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// ProcessConversationResultCommand carries the outcome of the chat step.
type ProcessConversationResultCommand struct {
	ProcessID      string `json:"process_id"`
	ConversationID string `json:"conversation_id,omitempty"`
	Succeeded      bool   `json:"succeeded"`
	Reason         string `json:"reason,omitempty"`
}

// ProcessConversationResult advances the saga after the conversation service
// reports the chat creation outcome. Success suspends the process until a
// human decision; failure starts compensation because the reservation is
// already applied and must be undone.
type ProcessConversationResult struct {
	dispatcher processDispatcher
}

// NewProcessConversationResult creates a new ProcessConversationResult use case
func NewProcessConversationResult(
	processRepository domain.AdoptionProcessRepository,
	eventPublisher events.Publisher,
	eventStore events.EventStore,
) *ProcessConversationResult {
	return &ProcessConversationResult{
		dispatcher: processDispatcher{
			processRepository: processRepository,
			eventPublisher:    eventPublisher,
			eventStore:        eventStore,
		},
	}
}

// Execute executes the process conversation result use case
func (uc *ProcessConversationResult) Execute(ctx context.Context, cmd *ProcessConversationResultCommand) error {
	processID, err := models.NewID(cmd.ProcessID)
	if err != nil {
		return errors.Wrap(err, "invalid process ID")
	}

	if cmd.Succeeded {
		conversationID, err := models.NewID(cmd.ConversationID)
		if err != nil {
			return errors.Wrap(err, "invalid conversation ID")
		}

		return uc.dispatcher.progress(ctx, processID, events.ConversationCreatedEvent,
			func(p *domain.AdoptionProcess) error {
				return p.ConversationReady(conversationID)
			})
	}

	return uc.dispatcher.progress(ctx, processID, events.ConversationCreationFailedEvent,
		func(p *domain.AdoptionProcess) error {
			return p.ConversationFailed(cmd.Reason)
		})
}
