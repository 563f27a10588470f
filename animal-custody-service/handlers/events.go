package handlers

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/application"
	"github.com/shelterly/adoption-system/shared/events"
)

// CustodyEventHandlers consumes the saga's custody commands. The routing map
// is built once at construction and read-only afterwards.
type CustodyEventHandlers struct {
	routes map[string]func(ctx context.Context, event *events.Event) error
}

// NewCustodyEventHandlers creates new custody event handlers
func NewCustodyEventHandlers(
	reserveAnimal *application.ReserveAnimal,
	releaseAnimal *application.ReleaseAnimal,
	finalizeAdoption *application.FinalizeAdoption,
) *CustodyEventHandlers {
	h := &CustodyEventHandlers{}

	h.routes = map[string]func(ctx context.Context, event *events.Event) error{
		events.AnimalReserveRequestedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AnimalReserveRequestedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse reserve request data")
			}
			return reserveAnimal.Execute(ctx, &application.ReserveAnimalCommand{
				ProcessID: data.ProcessID.String(),
				AnimalID:  data.AnimalID.String(),
				AdopterID: data.AdopterID.String(),
			})
		},
		events.AnimalReleaseRequestedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AnimalReleaseRequestedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse release request data")
			}
			return releaseAnimal.Execute(ctx, &application.ReleaseAnimalCommand{
				ProcessID: data.ProcessID.String(),
				AnimalID:  data.AnimalID.String(),
			})
		},
		events.AdoptionFinalizeRequestedEvent: func(ctx context.Context, event *events.Event) error {
			var data events.AdoptionFinalizeRequestedData
			if err := event.UnmarshalPayload(&data); err != nil {
				return errors.Wrap(err, "failed to parse finalize request data")
			}
			return finalizeAdoption.Execute(ctx, &application.FinalizeAdoptionCommand{
				ProcessID: data.ProcessID.String(),
				AnimalID:  data.AnimalID.String(),
			})
		},
	}

	return h
}

// Handle implements the events.EventHandler interface
func (h *CustodyEventHandlers) Handle(ctx context.Context, event *events.Event) error {
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
func (h *CustodyEventHandlers) HandlerID() string {
	return "animal-custody-event-handler"
}
