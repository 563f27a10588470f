package application

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// maxConflictRetries bounds in-process retries after a lost version check.
// Past that the message goes back to the bus and its redelivery policy.
const maxConflictRetries = 3

// processDispatcher is the shared progression step behind every event-driven
// use case: load the instance by correlation key, apply the transition,
// persist before publishing, and append the processed events to the audit
// trail. Illegal and unroutable events are dropped, never retried.
type processDispatcher struct {
	processRepository domain.AdoptionProcessRepository
	eventPublisher    events.Publisher
	eventStore        events.EventStore
}

func (d *processDispatcher) progress(ctx context.Context, processID models.ID, eventType string, apply func(*domain.AdoptionProcess) error) error {
	for attempt := 0; ; attempt++ {
		process, err := d.processRepository.FindByID(ctx, processID)
		if err != nil {
			return errors.Wrap(err, "failed to load adoption process")
		}

		if process == nil {
			// Already finalized and archived, or never started. Dropping is
			// correct either way; retrying would loop forever.
			fmt.Printf("Dropping %s: no adoption process %s\n", eventType, processID)
			return nil
		}

		if err := apply(process); err != nil {
			if errors.Is(err, domain.ErrIllegalTransition) {
				fmt.Printf("Dropping %s for process %s in state %s: duplicate or out-of-order delivery\n",
					eventType, processID, process.Status)
				return nil
			}
			return errors.Wrap(err, "failed to apply transition")
		}

		if err := d.processRepository.Save(ctx, process); err != nil {
			if errors.Is(err, domain.ErrConcurrentModification) && attempt < maxConflictRetries {
				// Another message won the race. Re-read and re-check legality;
				// the event may now be illegal and get dropped.
				continue
			}
			return errors.Wrap(err, "failed to save adoption process")
		}

		outbound := process.Events()
		process.ClearEvents()

		if err := d.eventPublisher.Publish(ctx, outbound...); err != nil {
			return errors.Wrap(err, "failed to publish events")
		}

		d.appendToAuditTrail(ctx, process.ID, outbound)
		return nil
	}
}

// appendToAuditTrail records the published events; the instance store is the
// source of truth, so a failed append is logged, not escalated.
func (d *processDispatcher) appendToAuditTrail(ctx context.Context, processID models.ID, outbound []*events.Event) {
	if d.eventStore == nil || len(outbound) == 0 {
		return
	}
	if err := d.eventStore.SaveEvents(ctx, processID, outbound); err != nil {
		fmt.Printf("Failed to append events for process %s to audit trail: %v\n", processID, err)
	}
}
