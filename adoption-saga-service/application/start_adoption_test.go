package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/adoption-saga-service/mocks"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStartAdoption_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *StartAdoptionCommand
		setupMocks    func(*mocks.MockAdoptionProcessRepository, *mocks.MockPublisher, *mocks.MockEventStore)
		expectedError string
	}{
		{
			name: "successful start publishes reserve request",
			command: &StartAdoptionCommand{
				ProcessID:          testProcessID,
				AnimalID:           testAnimalID,
				CustodianID:        testCustodianID,
				AdopterID:          testAdopterID,
				AdopterDisplayName: "Jamie",
				AnimalDisplayName:  "Luna",
			},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.AdoptionProcess")).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.AnimalReserveRequestedEvent
				})).Return(nil).Once()
				store.EXPECT().SaveEvents(mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()
			},
			expectedError: "",
		},
		{
			name: "duplicate start event is dropped",
			command: &StartAdoptionCommand{
				ProcessID:   testProcessID,
				AnimalID:    testAnimalID,
				CustodianID: testCustodianID,
				AdopterID:   testAdopterID,
			},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				existing := processInState(t, domain.StatusReserving)
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(existing, nil).Once()
				// No save, no publish: the instance is never re-created.
			},
			expectedError: "",
		},
		{
			name: "missing process ID",
			command: &StartAdoptionCommand{
				AnimalID:    testAnimalID,
				CustodianID: testCustodianID,
				AdopterID:   testAdopterID,
			},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				// No expectations - should fail validation
			},
			expectedError: "process ID is required",
		},
		{
			name: "invalid animal ID",
			command: &StartAdoptionCommand{
				ProcessID:   testProcessID,
				AnimalID:    "not-a-uuid",
				CustodianID: testCustodianID,
				AdopterID:   testAdopterID,
			},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			expectedError: "invalid animal ID",
		},
		{
			name: "repository save error",
			command: &StartAdoptionCommand{
				ProcessID:   testProcessID,
				AnimalID:    testAnimalID,
				CustodianID: testCustodianID,
				AdopterID:   testAdopterID,
			},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.AdoptionProcess")).
					Return(errors.New("database error")).Once()
			},
			expectedError: "failed to save adoption process",
		},
		{
			name: "publish error surfaces for redelivery",
			command: &StartAdoptionCommand{
				ProcessID:   testProcessID,
				AnimalID:    testAnimalID,
				CustodianID: testCustodianID,
				AdopterID:   testAdopterID,
			},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.AdoptionProcess")).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("sns unavailable")).Once()
			},
			expectedError: "failed to publish events",
		},
		{
			name: "audit trail failure is not escalated",
			command: &StartAdoptionCommand{
				ProcessID:   testProcessID,
				AnimalID:    testAnimalID,
				CustodianID: testCustodianID,
				AdopterID:   testAdopterID,
			},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, publisher *mocks.MockPublisher, store *mocks.MockEventStore) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.AdoptionProcess")).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil).Once()
				store.EXPECT().SaveEvents(mock.Anything, mock.Anything, mock.Anything).
					Return(errors.New("audit table missing")).Once()
			},
			expectedError: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAdoptionProcessRepository(t)
			mockPublisher := mocks.NewMockPublisher(t)
			mockStore := mocks.NewMockEventStore(t)
			tt.setupMocks(mockRepo, mockPublisher, mockStore)

			uc := NewStartAdoption(mockRepo, mockPublisher, mockStore)
			err := uc.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
