package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// ConfirmAdoptionCommand represents a custodian approving an adoption.
type ConfirmAdoptionCommand struct {
	ProcessID    string `json:"process_id"`
	ActingUserID string `json:"acting_user_id"`
}

// ConfirmAdoption is the facade entry for the custodian's approval. It guards
// state and ownership synchronously, then injects the decision into the saga
// by publishing the confirmed event; the orchestrator applies the transition
// when the event comes back through the bus. No saga state is mutated here.
type ConfirmAdoption struct {
	processRepository  domain.AdoptionProcessRepository
	volunteerDirectory domain.VolunteerDirectory
	eventPublisher     events.Publisher
}

// NewConfirmAdoption creates a new ConfirmAdoption use case
func NewConfirmAdoption(
	processRepository domain.AdoptionProcessRepository,
	volunteerDirectory domain.VolunteerDirectory,
	eventPublisher events.Publisher,
) *ConfirmAdoption {
	return &ConfirmAdoption{
		processRepository:  processRepository,
		volunteerDirectory: volunteerDirectory,
		eventPublisher:     eventPublisher,
	}
}

// Execute executes the confirm adoption use case
func (uc *ConfirmAdoption) Execute(ctx context.Context, cmd *ConfirmAdoptionCommand) error {
	process, volunteer, err := guardDecision(ctx, uc.processRepository, uc.volunteerDirectory, cmd.ProcessID, cmd.ActingUserID)
	if err != nil {
		return err
	}

	event := events.NewEvent(process.ID, events.AdoptionConfirmedEvent, events.AdoptionConfirmedData{
		ProcessID:   process.ID,
		ConfirmedBy: volunteer.ID,
	}).WithCorrelationID(process.ID)

	if err := uc.eventPublisher.Publish(ctx, event); err != nil {
		return errors.Wrap(err, "failed to publish confirm event")
	}

	return nil
}

// guardDecision loads the process and enforces the facade guards shared by
// confirm and reject: the process must be waiting for a decision and the
// acting user must be the custodian responsible for the animal.
func guardDecision(
	ctx context.Context,
	processRepository domain.AdoptionProcessRepository,
	volunteerDirectory domain.VolunteerDirectory,
	rawProcessID, rawActingUserID string,
) (*domain.AdoptionProcess, *domain.Volunteer, error) {
	processID, err := models.NewID(rawProcessID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid process ID")
	}

	actingUserID, err := models.NewID(rawActingUserID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "invalid acting user ID")
	}

	process, err := processRepository.FindByID(ctx, processID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find adoption process")
	}
	if process == nil {
		return nil, nil, ErrProcessNotFound
	}

	if process.Status != domain.StatusWaitingForAdoption {
		return nil, nil, errors.Wrapf(domain.ErrNotWaitingForDecision, "process %s is in state %s", process.ID, process.Status)
	}

	volunteer, err := volunteerDirectory.FindByUserID(ctx, actingUserID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to resolve acting user")
	}
	if volunteer == nil || volunteer.ID != process.CustodianID {
		return nil, nil, domain.ErrNotCustodian
	}

	return process, volunteer, nil
}
