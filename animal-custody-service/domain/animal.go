package domain

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/shared/models"
)

// AnimalStatus represents the custody status of an animal
type AnimalStatus string

const (
	AnimalStatusAvailable AnimalStatus = "available"
	AnimalStatusBooked    AnimalStatus = "booked"
	AnimalStatusAdopted   AnimalStatus = "adopted"
)

var (
	ErrAnimalNotFound    = errors.New("animal not found")
	ErrAnimalNotBooked   = errors.New("animal is not booked")
	ErrAnimalUnavailable = errors.New("animal is already booked or adopted")
)

// Animal aggregate root owned by the custody service. The adoption saga
// never mutates it directly, only through the reserve/release/finalize
// commands handled here.
type Animal struct {
	ID          models.ID
	CustodianID models.ID
	Name        string
	Species     string
	Status      AnimalStatus
	AdopterID   *models.ID
	Timestamps  models.Timestamps
	Version     models.Version
}

// NewAnimal registers an animal under a custodian's care
func NewAnimal(custodianID models.ID, name, species string) (*Animal, error) {
	if custodianID == "" {
		return nil, errors.New("custodian ID is required")
	}
	if name == "" {
		return nil, errors.New("name is required")
	}

	return &Animal{
		ID:          models.GenerateUUID(),
		CustodianID: custodianID,
		Name:        name,
		Species:     species,
		Status:      AnimalStatusAvailable,
		Timestamps:  models.NewTimestamps(),
		Version:     models.NewVersion(),
	}, nil
}

// Book marks the animal as reserved for an adopter
func (a *Animal) Book(adopterID models.ID) error {
	if a.Status != AnimalStatusAvailable {
		return errors.Wrapf(ErrAnimalUnavailable, "animal %s is %s", a.ID, a.Status)
	}

	a.Status = AnimalStatusBooked
	a.AdopterID = &adopterID
	a.touch()
	return nil
}

// Release clears the booking. Compensation must be idempotent: releasing an
// animal that is not booked is a no-op, not an error.
func (a *Animal) Release() {
	if a.Status != AnimalStatusBooked {
		return
	}

	a.Status = AnimalStatusAvailable
	a.AdopterID = nil
	a.touch()
}

// Adopt marks the animal as adopted by the adopter it is booked for
func (a *Animal) Adopt() error {
	if a.Status != AnimalStatusBooked {
		return errors.Wrapf(ErrAnimalNotBooked, "animal %s is %s", a.ID, a.Status)
	}

	a.Status = AnimalStatusAdopted
	a.touch()
	return nil
}

func (a *Animal) touch() {
	a.Timestamps = a.Timestamps.Update()
	a.Version = a.Version.Update()
}

// AnimalRepository interface
type AnimalRepository interface {
	Save(ctx context.Context, animal *Animal) error
	FindByID(ctx context.Context, id models.ID) (*Animal, error)
	FindByCustodianID(ctx context.Context, custodianID models.ID) ([]*Animal, error)
}
