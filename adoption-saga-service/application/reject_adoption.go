package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
)

// RejectAdoptionCommand represents a custodian rejecting an adoption.
type RejectAdoptionCommand struct {
	ProcessID    string `json:"process_id"`
	ActingUserID string `json:"acting_user_id"`
	Reason       string `json:"reason,omitempty"`
}

// RejectAdoption is the facade entry for the custodian's rejection. Same
// guards as ConfirmAdoption; the optional reason travels with the event and
// the saga applies the default rejection text when it is empty.
type RejectAdoption struct {
	processRepository  domain.AdoptionProcessRepository
	volunteerDirectory domain.VolunteerDirectory
	eventPublisher     events.Publisher
}

// NewRejectAdoption creates a new RejectAdoption use case
func NewRejectAdoption(
	processRepository domain.AdoptionProcessRepository,
	volunteerDirectory domain.VolunteerDirectory,
	eventPublisher events.Publisher,
) *RejectAdoption {
	return &RejectAdoption{
		processRepository:  processRepository,
		volunteerDirectory: volunteerDirectory,
		eventPublisher:     eventPublisher,
	}
}

// Execute executes the reject adoption use case
func (uc *RejectAdoption) Execute(ctx context.Context, cmd *RejectAdoptionCommand) error {
	process, volunteer, err := guardDecision(ctx, uc.processRepository, uc.volunteerDirectory, cmd.ProcessID, cmd.ActingUserID)
	if err != nil {
		return err
	}

	event := events.NewEvent(process.ID, events.AdoptionRejectedEvent, events.AdoptionRejectedData{
		ProcessID:  process.ID,
		RejectedBy: volunteer.ID,
		Reason:     cmd.Reason,
	}).WithCorrelationID(process.ID)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish reject event")
	}

	return nil
}
