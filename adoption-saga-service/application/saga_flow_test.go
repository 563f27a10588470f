package application

import (
	"context"
	"testing"

	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sagaHarness wires the orchestrator use cases to an in-memory repository and
// a recording publisher so whole flows can be driven event by event.
type sagaHarness struct {
	repo      *memoryProcessRepository
	publisher *recordingPublisher

	start        *StartAdoption
	reservation  *ProcessReservationResult
	conversation *ProcessConversationResult
	decision     *ProcessAdoptionDecision
	finalization *ProcessFinalizationResult
	released     *ProcessAnimalReleased
}

func newSagaHarness() *sagaHarness {
	repo := newMemoryProcessRepository()
	publisher := &recordingPublisher{}

	return &sagaHarness{
		repo:         repo,
		publisher:    publisher,
		start:        NewStartAdoption(repo, publisher, nil),
		reservation:  NewProcessReservationResult(repo, publisher, nil),
		conversation: NewProcessConversationResult(repo, publisher, nil),
		decision:     NewProcessAdoptionDecision(repo, publisher, nil),
		finalization: NewProcessFinalizationResult(repo, publisher, nil),
		released:     NewProcessAnimalReleased(repo, publisher, nil),
	}
}

func (h *sagaHarness) startProcess(t *testing.T) {
	t.Helper()
	require.NoError(t, h.start.Execute(context.Background(), &StartAdoptionCommand{
		ProcessID:          testProcessID,
		AnimalID:           testAnimalID,
		CustodianID:        testCustodianID,
		AdopterID:          testAdopterID,
		AdopterDisplayName: "Jamie",
		AnimalDisplayName:  "Luna",
	}))
}

func (h *sagaHarness) process(t *testing.T) *domain.AdoptionProcess {
	t.Helper()
	process, err := h.repo.FindByID(context.Background(), models.ID(testProcessID))
	require.NoError(t, err)
	require.NotNil(t, process)
	return process
}

func TestSagaFlow_HappyPath(t *testing.T) {
	h := newSagaHarness()
	ctx := context.Background()

	h.startProcess(t)
	assert.Equal(t, domain.StatusReserving, h.process(t).Status)
	require.Len(t, h.publisher.byType(events.AnimalReserveRequestedEvent), 1)

	require.NoError(t, h.reservation.Execute(ctx, &ProcessReservationResultCommand{
		ProcessID: testProcessID, Succeeded: true,
	}))
	assert.Equal(t, domain.StatusCreatingChat, h.process(t).Status)
	require.Len(t, h.publisher.byType(events.ConversationCreateRequestedEvent), 1)

	conversationID := models.GenerateUUID().String()
	require.NoError(t, h.conversation.Execute(ctx, &ProcessConversationResultCommand{
		ProcessID: testProcessID, ConversationID: conversationID, Succeeded: true,
	}))
	assert.Equal(t, domain.StatusWaitingForAdoption, h.process(t).Status)

	// Both parties were told the chat is ready.
	notifications := h.publisher.byType(events.NotificationRequestedEvent)
	require.Len(t, notifications, 2)
	recipients := map[models.ID]bool{}
	for _, evt := range notifications {
		var data events.NotificationRequestedData
		require.NoError(t, evt.UnmarshalPayload(&data))
		recipients[data.RecipientID] = true
		assert.Equal(t, conversationID, data.Params["conversation_id"])
	}
	assert.True(t, recipients[models.ID(testAdopterID)])
	assert.True(t, recipients[models.ID(testCustodianID)])

	require.NoError(t, h.decision.Execute(ctx, &ProcessAdoptionDecisionCommand{
		ProcessID: testProcessID, Confirmed: true,
	}))
	assert.Equal(t, domain.StatusAdopting, h.process(t).Status)
	require.Len(t, h.publisher.byType(events.AdoptionFinalizeRequestedEvent), 1)

	require.NoError(t, h.finalization.Execute(ctx, &ProcessFinalizationResultCommand{
		ProcessID: testProcessID, Succeeded: true,
	}))

	final := h.process(t)
	assert.Equal(t, domain.StatusFinal, final.Status)
	assert.True(t, final.Completed())
	assert.Nil(t, final.FailureReason)

	// Completion notification on top of the two chat-ready ones.
	assert.Len(t, h.publisher.byType(events.NotificationRequestedEvent), 3)
	// The happy path never asks for a release.
	assert.Empty(t, h.publisher.byType(events.AnimalReleaseRequestedEvent))
}

func TestSagaFlow_ReservationFails(t *testing.T) {
	h := newSagaHarness()
	ctx := context.Background()

	h.startProcess(t)
	require.NoError(t, h.reservation.Execute(ctx, &ProcessReservationResultCommand{
		ProcessID: testProcessID, Succeeded: false, Reason: "animal already booked",
	}))

	final := h.process(t)
	assert.Equal(t, domain.StatusFinal, final.Status)
	assert.False(t, final.Completed())
	require.NotNil(t, final.FailureReason)
	assert.Equal(t, "animal already booked", *final.FailureReason)

	// Nothing was applied, so nothing gets compensated or notified.
	assert.Empty(t, h.publisher.byType(events.AnimalReleaseRequestedEvent))
	assert.Empty(t, h.publisher.byType(events.NotificationRequestedEvent))
}

func TestSagaFlow_ConversationFailsAndCompensates(t *testing.T) {
	h := newSagaHarness()
	ctx := context.Background()

	h.startProcess(t)
	require.NoError(t, h.reservation.Execute(ctx, &ProcessReservationResultCommand{
		ProcessID: testProcessID, Succeeded: true,
	}))
	require.NoError(t, h.conversation.Execute(ctx, &ProcessConversationResultCommand{
		ProcessID: testProcessID, Succeeded: false, Reason: "chat service unavailable",
	}))

	assert.Equal(t, domain.StatusCompensating, h.process(t).Status)
	require.Len(t, h.publisher.byType(events.AnimalReleaseRequestedEvent), 1)

	require.NoError(t, h.released.Execute(ctx, &ProcessAnimalReleasedCommand{ProcessID: testProcessID}))

	final := h.process(t)
	assert.Equal(t, domain.StatusFinal, final.Status)
	assert.False(t, final.Completed())
	assert.Equal(t, "chat service unavailable", *final.FailureReason)
}

func TestSagaFlow_RejectionCompensates(t *testing.T) {
	h := newSagaHarness()
	ctx := context.Background()

	h.startProcess(t)
	require.NoError(t, h.reservation.Execute(ctx, &ProcessReservationResultCommand{
		ProcessID: testProcessID, Succeeded: true,
	}))
	require.NoError(t, h.conversation.Execute(ctx, &ProcessConversationResultCommand{
		ProcessID: testProcessID, ConversationID: models.GenerateUUID().String(), Succeeded: true,
	}))

	require.NoError(t, h.decision.Execute(ctx, &ProcessAdoptionDecisionCommand{
		ProcessID: testProcessID, Confirmed: false,
	}))
	assert.Equal(t, domain.StatusCompensating, h.process(t).Status)

	require.NoError(t, h.released.Execute(ctx, &ProcessAnimalReleasedCommand{ProcessID: testProcessID}))

	final := h.process(t)
	assert.Equal(t, domain.StatusFinal, final.Status)
	assert.Equal(t, domain.DefaultRejectionReason, *final.FailureReason)

	// A confirm arriving after the rejection is dropped without effect.
	require.NoError(t, h.decision.Execute(ctx, &ProcessAdoptionDecisionCommand{
		ProcessID: testProcessID, Confirmed: true,
	}))
	assert.Equal(t, domain.StatusFinal, h.process(t).Status)
	assert.Empty(t, h.publisher.byType(events.AdoptionFinalizeRequestedEvent))
}

func TestSagaFlow_FinalizationFailsAndCompensates(t *testing.T) {
	h := newSagaHarness()
	ctx := context.Background()

	h.startProcess(t)
	require.NoError(t, h.reservation.Execute(ctx, &ProcessReservationResultCommand{
		ProcessID: testProcessID, Succeeded: true,
	}))
	require.NoError(t, h.conversation.Execute(ctx, &ProcessConversationResultCommand{
		ProcessID: testProcessID, ConversationID: models.GenerateUUID().String(), Succeeded: true,
	}))
	require.NoError(t, h.decision.Execute(ctx, &ProcessAdoptionDecisionCommand{
		ProcessID: testProcessID, Confirmed: true,
	}))

	require.NoError(t, h.finalization.Execute(ctx, &ProcessFinalizationResultCommand{
		ProcessID: testProcessID, Succeeded: false, Reason: "custody record locked",
	}))
	assert.Equal(t, domain.StatusCompensating, h.process(t).Status)
	require.Len(t, h.publisher.byType(events.AnimalReleaseRequestedEvent), 1)

	require.NoError(t, h.released.Execute(ctx, &ProcessAnimalReleasedCommand{ProcessID: testProcessID}))

	final := h.process(t)
	assert.Equal(t, domain.StatusFinal, final.Status)
	assert.Equal(t, "custody record locked", *final.FailureReason)
}

func TestSagaFlow_RedeliveriesAreHarmless(t *testing.T) {
	h := newSagaHarness()
	ctx := context.Background()

	h.startProcess(t)

	// Redelivered start event.
	h.startProcess(t)
	assert.Len(t, h.publisher.byType(events.AnimalReserveRequestedEvent), 1)

	require.NoError(t, h.reservation.Execute(ctx, &ProcessReservationResultCommand{
		ProcessID: testProcessID, Succeeded: true,
	}))

	// Redelivered reservation result.
	require.NoError(t, h.reservation.Execute(ctx, &ProcessReservationResultCommand{
		ProcessID: testProcessID, Succeeded: true,
	}))
	assert.Len(t, h.publisher.byType(events.ConversationCreateRequestedEvent), 1)
	assert.Equal(t, domain.StatusCreatingChat, h.process(t).Status)

	// Result for a process that never existed.
	require.NoError(t, h.released.Execute(ctx, &ProcessAnimalReleasedCommand{
		ProcessID: models.GenerateUUID().String(),
	}))
}
