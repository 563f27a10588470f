package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/domain"
	"github.com/shelterly/adoption-system/animal-custody-service/mocks"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func isFinalizationFailure(reason string) func(*events.Event) bool {
	return func(evt *events.Event) bool {
		if evt.EventType != events.AdoptionFinalizationFailedEvent {
			return false
		}
		var data events.AdoptionFinalizationFailedData
		if err := evt.UnmarshalPayload(&data); err != nil {
			return false
		}
		return data.ProcessID == models.ID(testProcessID) && data.Reason == reason
	}
}

func TestFinalizeAdoption_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *FinalizeAdoptionCommand
		setupMocks    func(*mocks.MockAnimalRepository, *mocks.MockPublisher)
		expectedError string
	}{
		{
			name:    "adopts the booked animal and reports success",
			command: &FinalizeAdoptionCommand{ProcessID: testProcessID, AnimalID: testAnimalID},
			setupMocks: func(repo *mocks.MockAnimalRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(testAnimalID)).
					Return(bookedAnimal(t), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.MatchedBy(func(a *domain.Animal) bool {
					return a.Status == domain.AnimalStatusAdopted
				})).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.AdoptionFinalizedEvent &&
						evt.CorrelationID == models.ID(testProcessID)
				})).Return(nil).Once()
			},
		},
		{
			name:    "unbooked animal reports a failure so the saga compensates",
			command: &FinalizeAdoptionCommand{ProcessID: testProcessID, AnimalID: testAnimalID},
			setupMocks: func(repo *mocks.MockAnimalRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(testAnimalID)).
					Return(availableAnimal(t), nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.AdoptionFinalizationFailedEvent
				})).Return(nil).Once()
			},
		},
		{
			name:    "unknown animal reports a failure",
			command: &FinalizeAdoptionCommand{ProcessID: testProcessID, AnimalID: testAnimalID},
			setupMocks: func(repo *mocks.MockAnimalRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(testAnimalID)).
					Return(nil, nil).Once()
				publisher.EXPECT().Publish(mock.Anything,
					mock.MatchedBy(isFinalizationFailure(domain.ErrAnimalNotFound.Error()))).
					Return(nil).Once()
			},
		},
		{
			name:    "save error reports a failure instead of redelivering",
			command: &FinalizeAdoptionCommand{ProcessID: testProcessID, AnimalID: testAnimalID},
			setupMocks: func(repo *mocks.MockAnimalRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(testAnimalID)).
					Return(bookedAnimal(t), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.Anything).
					Return(errors.New("database down")).Once()
				publisher.EXPECT().Publish(mock.Anything,
					mock.MatchedBy(isFinalizationFailure("failed to persist adoption"))).
					Return(nil).Once()
			},
		},
		{
			name:    "malformed animal ID reports a failure",
			command: &FinalizeAdoptionCommand{ProcessID: testProcessID, AnimalID: "not-a-uuid"},
			setupMocks: func(repo *mocks.MockAnimalRepository, publisher *mocks.MockPublisher) {
				publisher.EXPECT().Publish(mock.Anything,
					mock.MatchedBy(isFinalizationFailure("invalid animal ID"))).
					Return(nil).Once()
			},
		},
		{
			name:    "invalid process ID",
			command: &FinalizeAdoptionCommand{ProcessID: "not-a-uuid", AnimalID: testAnimalID},
			setupMocks: func(repo *mocks.MockAnimalRepository, publisher *mocks.MockPublisher) {
			},
			expectedError: "invalid process ID",
		},
		{
			name:    "publish error surfaces for redelivery",
			command: &FinalizeAdoptionCommand{ProcessID: testProcessID, AnimalID: testAnimalID},
			setupMocks: func(repo *mocks.MockAnimalRepository, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, models.ID(testAnimalID)).
					Return(bookedAnimal(t), nil).Once()
				repo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.Anything).
					Return(errors.New("sns unavailable")).Once()
			},
			expectedError: "failed to publish adoption finalized event",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAnimalRepository(t)
			mockPublisher := mocks.NewMockPublisher(t)
			tt.setupMocks(mockRepo, mockPublisher)

			uc := NewFinalizeAdoption(mockRepo, mockPublisher)
			err := uc.Execute(context.Background(), tt.command)

			if tt.expectedError != "" {
				assert.ErrorContains(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
