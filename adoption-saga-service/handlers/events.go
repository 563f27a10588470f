package handlers

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/application"
	"github.com/shelterly/adoption-system/shared/events"
)

// AdoptionEventHandlers consumes every inbound saga event and routes it to
// the matching use case. The routing map is built once at construction and is
// read-only afterwards; topics without a route are ignored.
type AdoptionEventHandlers struct {
	routes map[string]func(ctx context.Context, event *events.Event) error
}

// NewAdoptionEventHandlers creates new adoption event handlers
func NewAdoptionEventHandlers(
	startAdoption *application.StartAdoption,
	processReservationResult *application.ProcessReservationResult,
	processConversationResult *application.ProcessConversationResult,
	processAdoptionDecision *application.ProcessAdoptionDecision,
	processFinalizationResult *application.ProcessFinalizationResult,
	processAnimalReleased *application.ProcessAnimalReleased,
) *AdoptionEventHandlers {
	h := &AdoptionEventHandlers{}

	h.routes = map[string]func(ctx context.Context, event *events.Event) error{
		events.AdoptionStartedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AdoptionStartedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse adoption started data")
			}
			return startAdoption.Execute(ctx, &application.StartAdoptionCommand{
				ProcessID:          data.ProcessID.String(),
				AnimalID:           data.AnimalID.String(),
				CustodianID:        data.CustodianID.String(),
				AdopterID:          data.AdopterID.String(),
				AdopterDisplayName: data.AdopterDisplayName,
				AnimalDisplayName:  data.AnimalDisplayName,
			})
		},
		events.AnimalReservedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AnimalReservedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse animal reserved data")
			}
			return processReservationResult.Execute(ctx, &application.ProcessReservationResultCommand{
				ProcessID: data.ProcessID.String(),
				Succeeded: true,
			})
		},
		events.AnimalReservationFailedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AnimalReservationFailedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse reservation failed data")
			}
			return processReservationResult.Execute(ctx, &application.ProcessReservationResultCommand{
				ProcessID: data.ProcessID.String(),
				Succeeded: false,
				Reason:    data.Reason,
			})
		},
		events.ConversationCreatedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.ConversationCreatedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse conversation created data")
			}
			return processConversationResult.Execute(ctx, &application.ProcessConversationResultCommand{
				ProcessID:      data.ProcessID.String(),
				ConversationID: data.ConversationID.String(),
				Succeeded:      true,
			})
		},
		events.ConversationCreationFailedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.ConversationCreationFailedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse conversation failed data")
			}
			return processConversationResult.Execute(ctx, &application.ProcessConversationResultCommand{
				ProcessID: data.ProcessID.String(),
				Succeeded: false,
				Reason:    data.Reason,
			})
		},
		events.AdoptionConfirmedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AdoptionConfirmedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse adoption confirmed data")
			}
			return processAdoptionDecision.Execute(ctx, &application.ProcessAdoptionDecisionCommand{
				ProcessID: data.ProcessID.String(),
				Confirmed: true,
			})
		},
		events.AdoptionRejectedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AdoptionRejectedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse adoption rejected data")
			}
			return processAdoptionDecision.Execute(ctx, &application.ProcessAdoptionDecisionCommand{
				ProcessID: data.ProcessID.String(),
				Confirmed: false,
				Reason:    data.Reason,
			})
		},
		events.AdoptionFinalizedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AdoptionFinalizedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse adoption finalized data")
			}
			return processFinalizationResult.Execute(ctx, &application.ProcessFinalizationResultCommand{
				ProcessID: data.ProcessID.String(),
				Succeeded: true,
			})
		},
		events.AdoptionFinalizationFailedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AdoptionFinalizationFailedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse finalization failed data")
			}
			return processFinalizationResult.Execute(ctx, &application.ProcessFinalizationResultCommand{
				ProcessID: data.ProcessID.String(),
				Succeeded: false,
				Reason:    data.Reason,
			})
		},
		events.AnimalReleasedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AnimalReleasedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse animal released data")
			}
			return processAnimalReleased.Execute(ctx, &application.ProcessAnimalReleasedCommand{
				ProcessID: data.ProcessID.String(),
			})
		},
	}

	return h
}

// Handle implements the events.EventHandler interface. Infrastructure errors
// are returned so the bus redelivers the message; duplicate and out-of-order
// deliveries are dropped inside the use cases and come back as nil.
func (h *AdoptionEventHandlers) Handle(ctx context.Context, event *events.Event) error {
	route, ok := h.routes[event.EventType]
	if !ok {
		return nil
	}

	if err := route(ctx, event); err != nil {
		fmt.Printf("Failed to handle %s for correlation %s: %v\n", event.EventType, event.CorrelationID, err)
		return err
	}

	return nil
}

// HandlerID returns the unique identifier for this event handler
func (h *AdoptionEventHandlers) HandlerID() string {
	return "adoption-saga-event-handler"
}
