package domain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
)

// ProcessStatus represents the current state of an adoption process
type ProcessStatus string

const (
	StatusReserving          ProcessStatus = "reserving"
	StatusCreatingChat       ProcessStatus = "creating_chat"
	StatusWaitingForAdoption ProcessStatus = "waiting_for_adoption"
	StatusAdopting           ProcessStatus = "adopting"
	StatusCompensating       ProcessStatus = "compensating"
	StatusFinal              ProcessStatus = "final"
)

// DefaultRejectionReason is stored when a custodian rejects without giving one.
const DefaultRejectionReason = "adoption rejected by custodian"

var (
	// ErrIllegalTransition is returned when an event is not accepted in the
	// current state. Duplicate and out-of-order deliveries surface as this.
	ErrIllegalTransition = errors.New("event not legal in current process state")

	// ErrConcurrentModification is returned when a save loses the version check.
	ErrConcurrentModification = errors.New("adoption process was modified concurrently")

	// ErrNotWaitingForDecision is returned when confirm/reject is attempted
	// outside WaitingForAdoption.
	ErrNotWaitingForDecision = errors.New("adoption process is not waiting for a decision")

	// ErrNotCustodian is returned when the acting user is not the custodian
	// responsible for the animal.
	ErrNotCustodian = errors.New("acting user is not the custodian of this adoption")
)

// AdoptionProcess is the saga instance coordinating one adoption attempt.
// The process ID doubles as the correlation key on every message of the attempt.
type AdoptionProcess struct {
	ID                 models.ID
	AnimalID           models.ID
	CustodianID        models.ID
	AdopterID          models.ID
	AdopterDisplayName string
	AnimalDisplayName  string
	ConversationID     *models.ID
	FailureReason      *string
	Status             ProcessStatus
	Timestamps         models.Timestamps
	Version            models.Version

	events []*events.Event
}

// StartAdoption creates the saga instance and requests the animal reservation.
func StartAdoption(processID, animalID, custodianID, adopterID models.ID, adopterName, animalName string) (*AdoptionProcess, error) {
	if processID == "" {
		return nil, errors.New("process ID is required")
	}
	if animalID == "" || custodianID == "" || adopterID == "" {
		return nil, errors.New("animal, custodian and adopter IDs are required")
	}

	process := &AdoptionProcess{
		ID:                 processID,
		AnimalID:           animalID,
		CustodianID:        custodianID,
		AdopterID:          adopterID,
		AdopterDisplayName: adopterName,
		AnimalDisplayName:  animalName,
		Status:             StatusReserving,
		Timestamps:         models.NewTimestamps(),
		Version:            models.NewVersion(),
	}

	process.recordEvent(events.NewEvent(process.ID, events.AnimalReserveRequestedEvent, events.AnimalReserveRequestedData{
		ProcessID:   process.ID,
		AnimalID:    process.AnimalID,
		CustodianID: process.CustodianID,
		AdopterID:   process.AdopterID,
	}).WithCorrelationID(process.ID))

	return process, nil
}

// Reserved applies a successful animal reservation and requests the chat.
func (p *AdoptionProcess) Reserved() error {
	if err := p.transition(events.AnimalReservedEvent); err != nil {
		return err
	}

	p.recordEvent(events.NewEvent(p.ID, events.ConversationCreateRequestedEvent, events.ConversationCreateRequestedData{
		ProcessID:         p.ID,
		AnimalID:          p.AnimalID,
		CustodianID:       p.CustodianID,
		AdopterID:         p.AdopterID,
		AnimalDisplayName: p.AnimalDisplayName,
	}).WithCorrelationID(p.ID))

	return nil
}

// ReservationFailed closes the process; nothing was applied, nothing to undo.
func (p *AdoptionProcess) ReservationFailed(reason string) error {
	if err := p.transition(events.AnimalReservationFailedEvent); err != nil {
		return err
	}
	p.fail(reason)
	return nil
}

// ConversationReady stores the conversation and notifies both parties.
func (p *AdoptionProcess) ConversationReady(conversationID models.ID) error {
	if err := p.transition(events.ConversationCreatedEvent); err != nil {
		return err
	}

	if p.ConversationID == nil {
		p.ConversationID = &conversationID
	}

	params := map[string]string{
		"animal_name":     p.AnimalDisplayName,
		"adopter_name":    p.AdopterDisplayName,
		"conversation_id": conversationID.String(),
	}
	p.recordEvent(events.NewEvent(p.ID, events.NotificationRequestedEvent, events.NotificationRequestedData{
		RecipientID: p.AdopterID,
		Template:    events.NotificationTemplateChatReadyAdopter,
		Params:      params,
	}).WithCorrelationID(p.ID))
	p.recordEvent(events.NewEvent(p.ID, events.NotificationRequestedEvent, events.NotificationRequestedData{
		RecipientID: p.CustodianID,
		Template:    events.NotificationTemplateChatReadyCustodian,
		Params:      params,
	}).WithCorrelationID(p.ID))

	return nil
}

// ConversationFailed enters compensation: the reservation must be undone.
func (p *AdoptionProcess) ConversationFailed(reason string) error {
	if err := p.transition(events.ConversationCreationFailedEvent); err != nil {
		return err
	}
	p.fail(reason)
	p.recordReleaseRequest()
	return nil
}

// Confirm applies the custodian's approval and requests finalization.
func (p *AdoptionProcess) Confirm() error {
	if err := p.transition(events.AdoptionConfirmedEvent); err != nil {
		return err
	}

	p.recordEvent(events.NewEvent(p.ID, events.AdoptionFinalizeRequestedEvent, events.AdoptionFinalizeRequestedData{
		ProcessID:   p.ID,
		AnimalID:    p.AnimalID,
		CustodianID: p.CustodianID,
		AdopterID:   p.AdopterID,
	}).WithCorrelationID(p.ID))

	return nil
}

// Reject applies the custodian's rejection and enters compensation.
func (p *AdoptionProcess) Reject(reason string) error {
	if err := p.transition(events.AdoptionRejectedEvent); err != nil {
		return err
	}
	if reason == "" {
		reason = DefaultRejectionReason
	}
	p.fail(reason)
	p.recordReleaseRequest()
	return nil
}

// Finalized closes the process successfully and congratulates the adopter.
func (p *AdoptionProcess) Finalized() error {
	if err := p.transition(events.AdoptionFinalizedEvent); err != nil {
		return err
	}

	p.recordEvent(events.NewEvent(p.ID, events.NotificationRequestedEvent, events.NotificationRequestedData{
		RecipientID: p.AdopterID,
		Template:    events.NotificationTemplateAdoptionCompleted,
		Params: map[string]string{
			"animal_name": p.AnimalDisplayName,
		},
	}).WithCorrelationID(p.ID))

	return nil
}

// FinalizationFailed enters compensation after a failed finalize step.
func (p *AdoptionProcess) FinalizationFailed(reason string) error {
	if err := p.transition(events.AdoptionFinalizationFailedEvent); err != nil {
		return err
	}
	p.fail(reason)
	p.recordReleaseRequest()
	return nil
}

// Released completes compensation and closes the process.
func (p *AdoptionProcess) Released() error {
	return p.transition(events.AnimalReleasedEvent)
}

// Completed reports whether the process ended without failure.
func (p *AdoptionProcess) Completed() bool {
	return p.Status == StatusFinal && p.FailureReason == nil
}

// transition moves the process along the edge declared for eventType, or
// rejects the event without mutating anything.
func (p *AdoptionProcess) transition(eventType string) error {
	next, ok := NextStatus(p.Status, eventType)
	if !ok {
		return errors.Wrapf(ErrIllegalTransition, "event %s in state %s", eventType, p.Status)
	}

	p.Status = next
	p.Timestamps = p.Timestamps.Update()
	p.Version = p.Version.Update()
	return nil
}

// fail stores the failure reason; the first failure wins.
func (p *AdoptionProcess) fail(reason string) {
	if p.FailureReason == nil {
		p.FailureReason = &reason
	}
}

func (p *AdoptionProcess) recordReleaseRequest() {
	p.recordEvent(events.NewEvent(p.ID, events.AnimalReleaseRequestedEvent, events.AnimalReleaseRequestedData{
		ProcessID:   p.ID,
		AnimalID:    p.AnimalID,
		CustodianID: p.CustodianID,
	}).WithCorrelationID(p.ID))
}

// Events returns domain events
func (p *AdoptionProcess) Events() []*events.Event {
	return p.events
}

// ClearEvents clears domain events
func (p *AdoptionProcess) ClearEvents() {
	p.events = make([]*events.Event, 0)
}

func (p *AdoptionProcess) recordEvent(event *events.Event) {
	p.events = append(p.events, event)
}

// AdoptionProcessRepository interface
type AdoptionProcessRepository interface {
	Save(ctx context.Context, process *AdoptionProcess) error
	FindByID(ctx context.Context, id models.ID) (*AdoptionProcess, error)
	FindByAnimalID(ctx context.Context, animalID models.ID) ([]*AdoptionProcess, error)
	FindByAdopterID(ctx context.Context, adopterID models.ID) ([]*AdoptionProcess, error)
	FindByStatus(ctx context.Context, status ProcessStatus, offset, limit int) ([]*AdoptionProcess, error)
}
