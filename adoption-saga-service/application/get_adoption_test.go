package application

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/adoption-saga-service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAdoption_Execute(t *testing.T) {
	t.Run("returns the status view", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)
		process := processInState(t, domain.StatusWaitingForAdoption)
		mockRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(process, nil).Once()

		uc := NewGetAdoption(mockRepo)
		view, err := uc.Execute(context.Background(), &GetAdoptionQuery{ProcessID: testProcessID})

		require.NoError(t, err)
		assert.Equal(t, testProcessID, view.ProcessID)
		assert.Equal(t, string(domain.StatusWaitingForAdoption), view.Status)
		assert.Equal(t, testAnimalID, view.AnimalID)
		assert.Equal(t, "Jamie", view.AdopterDisplayName)
		require.NotNil(t, view.ConversationID)
		assert.False(t, view.Completed)
		assert.Nil(t, view.FailureReason)
	})

	t.Run("completed process reflects in the view", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)
		process := processInState(t, domain.StatusAdopting)
		require.NoError(t, process.Finalized())
		process.ClearEvents()
		mockRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(process, nil).Once()

		uc := NewGetAdoption(mockRepo)
		view, err := uc.Execute(context.Background(), &GetAdoptionQuery{ProcessID: testProcessID})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusFinal), view.Status)
		assert.True(t, view.Completed)
	})

	t.Run("unknown process", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)
		mockRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, nil).Once()

		uc := NewGetAdoption(mockRepo)
		_, err := uc.Execute(context.Background(), &GetAdoptionQuery{ProcessID: testProcessID})

		assert.ErrorIs(t, err, ErrProcessNotFound)
	})

	t.Run("invalid process ID", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)

		uc := NewGetAdoption(mockRepo)
		_, err := uc.Execute(context.Background(), &GetAdoptionQuery{ProcessID: "not-a-uuid"})

		assert.ErrorContains(t, err, "invalid process ID")
	})
}

func TestListAdoptions_Execute(t *testing.T) {
	t.Run("lists processes in the given state", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)
		mockRepo.EXPECT().FindByStatus(mock.Anything, domain.StatusWaitingForAdoption, 0, defaultListLimit).
			Return([]*domain.AdoptionProcess{processInState(t, domain.StatusWaitingForAdoption)}, nil).Once()

		uc := NewListAdoptions(mockRepo)
		response, err := uc.Execute(context.Background(), &ListAdoptionsQuery{
			Status: string(domain.StatusWaitingForAdoption),
		})

		require.NoError(t, err)
		require.Len(t, response.Adoptions, 1)
		assert.Equal(t, string(domain.StatusWaitingForAdoption), response.Adoptions[0].Status)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)

		uc := NewListAdoptions(mockRepo)
		_, err := uc.Execute(context.Background(), &ListAdoptionsQuery{Status: "sleeping"})

		assert.ErrorContains(t, err, "invalid process status")
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo := mocks.NewMockAdoptionProcessRepository(t)
		mockRepo.EXPECT().FindByStatus(mock.Anything, domain.StatusFinal, 10, 5).
			Return(nil, errors.New("database down")).Once()

		uc := NewListAdoptions(mockRepo)
		_, err := uc.Execute(context.Background(), &ListAdoptionsQuery{
			Status: string(domain.StatusFinal),
			Offset: 10,
			Limit:  5,
		})

		assert.ErrorContains(t, err, "failed to find adoption processes")
	})
}
