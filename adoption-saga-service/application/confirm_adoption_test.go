package application

import (
	"context"
	"testing"

	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/adoption-saga-service/mocks"
	"github.com/shelterly/adoption-system/shared/events"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func custodianVolunteer() *domain.Volunteer {
	return &domain.Volunteer{
		ID:          models.ID(testCustodianID),
		UserID:      models.ID(testUserID),
		DisplayName: "Alex",
	}
}

func otherVolunteer() *domain.Volunteer {
	return &domain.Volunteer{
		ID:          models.GenerateUUID(),
		UserID:      models.ID(testUserID),
		DisplayName: "Sam",
	}
}

func TestConfirmAdoption_Execute(t *testing.T) {
	tests := []struct {
		name          string
		command       *ConfirmAdoptionCommand
		setupMocks    func(*mocks.MockAdoptionProcessRepository, *mocks.MockVolunteerDirectory, *mocks.MockPublisher)
		expectedError error
	}{
		{
			name:    "custodian confirm publishes the decision",
			command: &ConfirmAdoptionCommand{ProcessID: testProcessID, ActingUserID: testUserID},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, dir *mocks.MockVolunteerDirectory, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(processInState(t, domain.StatusWaitingForAdoption), nil).Once()
				dir.EXPECT().FindByUserID(mock.Anything, models.ID(testUserID)).
					Return(custodianVolunteer(), nil).Once()
				publisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
					return evt.EventType == events.AdoptionConfirmedEvent &&
						evt.CorrelationID == models.ID(testProcessID)
				})).Return(nil).Once()
			},
		},
		{
			name:    "unknown process",
			command: &ConfirmAdoptionCommand{ProcessID: testProcessID, ActingUserID: testUserID},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, dir *mocks.MockVolunteerDirectory, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()
			},
			expectedError: ErrProcessNotFound,
		},
		{
			name:    "process not waiting for a decision",
			command: &ConfirmAdoptionCommand{ProcessID: testProcessID, ActingUserID: testUserID},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, dir *mocks.MockVolunteerDirectory, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(processInState(t, domain.StatusCreatingChat), nil).Once()
			},
			expectedError: domain.ErrNotWaitingForDecision,
		},
		{
			name:    "acting user is not the custodian",
			command: &ConfirmAdoptionCommand{ProcessID: testProcessID, ActingUserID: testUserID},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, dir *mocks.MockVolunteerDirectory, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(processInState(t, domain.StatusWaitingForAdoption), nil).Once()
				dir.EXPECT().FindByUserID(mock.Anything, models.ID(testUserID)).
					Return(otherVolunteer(), nil).Once()
			},
			expectedError: domain.ErrNotCustodian,
		},
		{
			name:    "acting user is not a volunteer at all",
			command: &ConfirmAdoptionCommand{ProcessID: testProcessID, ActingUserID: testUserID},
			setupMocks: func(repo *mocks.MockAdoptionProcessRepository, dir *mocks.MockVolunteerDirectory, publisher *mocks.MockPublisher) {
				repo.EXPECT().FindByID(mock.Anything, mock.Anything).
					Return(processInState(t, domain.StatusWaitingForAdoption), nil).Once()
				dir.EXPECT().FindByUserID(mock.Anything, models.ID(testUserID)).
					Return(nil, nil).Once()
			},
			expectedError: domain.ErrNotCustodian,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := mocks.NewMockAdoptionProcessRepository(t)
			mockDir := mocks.NewMockVolunteerDirectory(t)
			mockPublisher := mocks.NewMockPublisher(t)
			tt.setupMocks(mockRepo, mockDir, mockPublisher)

			uc := NewConfirmAdoption(mockRepo, mockDir, mockPublisher)
			err := uc.Execute(context.Background(), tt.command)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRejectAdoption_Execute(t *testing.T) {
	t.Run("custodian reject publishes the decision with reason", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)
		mockDir := mocks.NewMockVolunteerDirectory(t)
		mockPublisher := mocks.NewMockPublisher(t)

		mockRepo.EXPECT().FindByID(mock.Anything, mock.Anything).
			Return(processInState(t, domain.StatusWaitingForAdoption), nil).Once()
		mockDir.EXPECT().FindByUserID(mock.Anything, models.ID(testUserID)).
			Return(custodianVolunteer(), nil).Once()
		mockPublisher.EXPECT().Publish(mock.Anything, mock.MatchedBy(func(evt *events.Event) bool {
			if evt.EventType != events.AdoptionRejectedEvent {
				return false
			}
			var data events.AdoptionRejectedData
			if err := evt.UnmarshalPayload(&data); err != nil {
				return false
			}
			return data.Reason == "allergies in the household"
		})).Return(nil).Once()

		uc := NewRejectAdoption(mockRepo, mockDir, mockPublisher)
		err := uc.Execute(context.Background(), &RejectAdoptionCommand{
			ProcessID:    testProcessID,
			ActingUserID: testUserID,
			Reason:       "allergies in the household",
		})
		assert.NoError(t, err)
	})

	t.Run("same guards as confirm", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)
		mockDir := mocks.NewMockVolunteerDirectory(t)
		mockPublisher := mocks.NewMockPublisher(t)

		mockRepo.EXPECT().FindByID(mock.Anything, mock.Anything).
			Return(processInState(t, domain.StatusAdopting), nil).Once()

		uc := NewRejectAdoption(mockRepo, mockDir, mockPublisher)
		err := uc.Execute(context.Background(), &RejectAdoptionCommand{
			ProcessID:    testProcessID,
			ActingUserID: testUserID,
		})
		assert.ErrorIs(t, err, domain.ErrNotWaitingForDecision)
	})
}
