package application

import (
	"testing"

	"github.com/shelterly/adoption-system/animal-custody-service/domain"
	"github.com/shelterly/adoption-system/shared/models"
	"github.com/stretchr/testify/require"
)

const (
	testProcessID   = "660e8400-e29b-41d4-a716-446655440001"
	testAnimalID    = "660e8400-e29b-41d4-a716-446655440002"
	testCustodianID = "660e8400-e29b-41d4-a716-446655440003"
	testAdopterID   = "660e8400-e29b-41d4-a716-446655440004"
)

func availableAnimal(t *testing.T) *domain.Animal {
	t.Helper()

	animal, err := domain.NewAnimal(models.ID(testCustodianID), "Luna", "cat")
	require.NoError(t, err)
	animal.ID = models.ID(testAnimalID)
	return animal
}

func bookedAnimal(t *testing.T) *domain.Animal {
	t.Helper()

	animal := availableAnimal(t)
	require.NoError(t, animal.Book(models.ID(testAdopterID)))
	return animal
}

func adoptedAnimal(t *testing.T) *domain.Animal {
	t.Helper()

	animal := bookedAnimal(t)
	require.NoError(t, animal.Adopt())
	return animal
}
