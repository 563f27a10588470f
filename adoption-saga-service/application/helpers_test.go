package application

import (
	"context"
	"sync"
	"testing"

	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/stretchr/testify/require"
)

const (
	testProcessID   = "550e8400-e29b-41d4-a716-446655440001"
	testAnimalID    = "550e8400-e29b-41d4-a716-446655440002"
	testCustodianID = "550e8400-e29b-41d4-a716-446655440003"
	testAdopterID   = "550e8400-e29b-41d4-a716-446655440004"
	testUserID      = "550e8400-e29b-41d4-a716-446655440005"
)

func stringPtr(s string) *string {
	return &s
}

// processInState builds a saga instance advanced to the given state, with the
// recorded events of the setup steps discarded.
func processInState(t *testing.T, status domain.ProcessStatus) *domain.AdoptionProcess {
	t.Helper()

	process, err := domain.StartAdoption(
		models.ID(testProcessID),
		models.ID(testAnimalID),
		models.ID(testCustodianID),
		models.ID(testAdopterID),
		"Jamie",
		"Luna",
	)
	require.NoError(t, err)

	switch status {
	case domain.StatusReserving:
	case domain.StatusCreatingChat:
		require.NoError(t, process.Reserved())
	case domain.StatusWaitingForAdoption:
		require.NoError(t, process.Reserved())
		require.NoError(t, process.ConversationReady(models.GenerateUUID()))
	case domain.StatusAdopting:
		require.NoError(t, process.Reserved())
		require.NoError(t, process.ConversationReady(models.GenerateUUID()))
		require.NoError(t, process.Confirm())
	case domain.StatusCompensating:
		require.NoError(t, process.Reserved())
		require.NoError(t, process.ConversationFailed("setup failure"))
	case domain.StatusFinal:
		require.NoError(t, process.ReservationFailed("setup failure"))
	default:
		t.Fatalf("unsupported setup state %s", status)
	}

	process.ClearEvents()
	return process
}

// memoryProcessRepository is an in-memory AdoptionProcessRepository with the
// same optimistic locking behavior as the postgres implementation. Used by the
// end-to-end scenario tests where mock expectations would drown the flow.
type memoryProcessRepository struct {
	mu        sync.Mutex
	processes map[models.ID]*domain.AdoptionProcess
}

func newMemoryProcessRepository() *memoryProcessRepository {
	return &memoryProcessRepository{processes: make(map[models.ID]*domain.AdoptionProcess)}
}

func (r *memoryProcessRepository) Save(ctx context.Context, process *domain.AdoptionProcess) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.processes[process.ID]
	if ok && stored.Version.Value != process.Version.Value-1 {
		return domain.ErrConcurrentModification
	}
	if !ok && process.Version.Value != 1 {
		return domain.ErrConcurrentModification
	}

	copied := *process
	copied.ClearEvents()
	r.processes[process.ID] = &copied
	return nil
}

func (r *memoryProcessRepository) FindByID(ctx context.Context, id models.ID) (*domain.AdoptionProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.processes[id]
	if !ok {
		return nil, nil
	}
	copied := *stored
	return &copied, nil
}

func (r *memoryProcessRepository) FindByAnimalID(ctx context.Context, animalID models.ID) ([]*domain.AdoptionProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.AdoptionProcess
	for _, p := range r.processes {
		if p.AnimalID == animalID {
			copied := *p
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memoryProcessRepository) FindByAdopterID(ctx context.Context, adopterID models.ID) ([]*domain.AdoptionProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.AdoptionProcess
	for _, p := range r.processes {
		if p.AdopterID == adopterID {
			copied := *p
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memoryProcessRepository) FindByStatus(ctx context.Context, status domain.ProcessStatus, offset, limit int) ([]*domain.AdoptionProcess, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*domain.AdoptionProcess
	for _, p := range r.processes {
		if p.Status == status {
			copied := *p
			result = append(result, &copied)
		}
	}
	return result, nil
}

// recordingPublisher collects everything published, in order.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, evts ...*events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evts...)
	return nil
}

func (p *recordingPublisher) byType(eventType string) []*events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()

	var result []*events.Event
	for _, evt := range p.events {
		if evt.EventType == eventType {
			result = append(result, evt)
		}
	}
	return result
}
