package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/adoption-saga-service/mocks"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProcessReservationResult_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *ProcessReservationResultCommand
		setupMocks    func(*mocks.MockAdoptionProcessRepository, *mocks.MockPublisher, *mocks.MockEventStore)
		expectedError string
	}{
		{
			name:    "successful reservation requests chat creation",
			command: &ProcessReservationResultCommand{ProcessID: testProcessID, Succeeded: true},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(processInState(t, domain.StatusReserving), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.AdoptionProcess) bool {
					return p.Status == domain.StatusCreatingChat
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.ConversationCreateRequestedEvent
				})).Return(nil).Once()
				store.EXPECT().SaveEvents(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedError: "",
		},
		{
			name:    "failed reservation closes the process without compensation",
			command: &ProcessReservationResultCommand{ProcessID: testProcessID, Succeeded: false, Reason: "already booked"},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(processInState(t, domain.StatusReserving), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(p *domain.AdoptionProcess) bool {
					return p.Status == domain.StatusFinal &&
						p.FailureReason != nil && *p.FailureReason == "already booked"
				})).Return(nil).Once()
				// Closing without compensation emits nothing.
				publisher.EXPECT().Publish(mock.Anything).Return(nil).Once()
			},
			expectedError: "",
		},
		{
			name:    "unknown process is dropped",
			command: &ProcessReservationResultCommand{ProcessID: testProcessID, Succeeded: true},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			expectedError: "",
		},
		{
			name:    "redelivered result is dropped as illegal",
			command: &ProcessReservationResultCommand{ProcessID: testProcessID, Succeeded: true},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				// Already past reserving: the reserved event is no longer legal.
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(processInState(t, domain.StatusWaitingForAdoption), nil).Once()
			},
			expectedError: "",
		},
		{
			name:    "version conflict retries and succeeds",
			command: &ProcessReservationResultCommand{ProcessID: testProcessID, Succeeded: true},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, id models.ID) (*domain.AdoptionProcess, error) {
						return processInState(t, domain.StatusReserving), nil
					}).Twice()
				repo.EXPECT().Save(mock.Anything, mock.Anything).
					Return(domain.ErrConcurrentModification).Once()
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
				store.EXPECT().SaveEvents(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedError: "",
		},
		{
			name:    "persistent version conflict surfaces for redelivery",
			command: &ProcessReservationResultCommand{ProcessID: testProcessID, Succeeded: true},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, id models.ID) (*domain.AdoptionProcess, error) {
						return processInState(t, domain.StatusReserving), nil
					}).Times(4)
				repo.EXPECT().Save(mock.Anything, mock.Anything).
					Return(domain.ErrConcurrentModification).Times(4)
			},
			expectedError: "failed to save adoption process",
		},
		{
			name:    "invalid process ID",
			command: &ProcessReservationResultCommand{ProcessID: "not-a-uuid", Succeeded: true},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				// No expectations - should fail before calling mocks
			},
			expectedError: "invalid process ID",
		},
		{
			name:    "repository lookup error surfaces for redelivery",
			command: &ProcessReservationResultCommand{ProcessID: testProcessID, Succeeded: true},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(nil, errors.New("database down")).Once()
			},
			expectedError: "failed to load adoption process",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAdoptionProcessRepository(t)
			mockPublisher := mocks.NewMockPublisher(t)
			mockStore := mocks.NewMockEventStore(t)
			tt.setupMocks(mockRepo, mockPublisher, mockStore)

			uc := NewProcessReservationResult(mockRepo, mockPublisher, mockStore)
			err := uc.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
