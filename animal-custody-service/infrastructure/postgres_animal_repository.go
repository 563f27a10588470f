package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/animal-custody-service/domain"
	"github.com/shelterly/adoption-system/shared/models"
)

// PostgresAnimalRepository implements AnimalRepository using PostgreSQL
type PostgresAnimalRepository struct {
	db *sqlx.DB
}

// NewPostgresAnimalRepository creates a new PostgresAnimalRepository
func NewPostgresAnimalRepository(db *sqlx.DB) *PostgresAnimalRepository {
	return &PostgresAnimalRepository{db: db}
}

// postgresAnimal represents an animal in database
type postgresAnimal struct {
	ID          string     `db:"id"`
	CustodianID string     `db:"custodian_id"`
	Name        string     `db:"name"`
	Species     string     `db:"species"`
	Status      string     `db:"status"`
	AdopterID   *string    `db:"adopter_id"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
	Version     int        `db:"version"`
}

// Save saves an animal to the database
func (r *PostgresAnimalRepository) Save(ctx context.Context, animal *domain.Animal) error {
	if animal.Version.Value == 1 {
		return r.insertAnimal(ctx, animal)
	}
	return r.updateAnimal(ctx, animal)
}

func (r *PostgresAnimalRepository) insertAnimal(ctx context.Context, animal *domain.Animal) error {
	query := `
		INSERT INTO animals (
			id, custodian_id, name, species, status, adopter_id,
			created_at, updated_at, version
		) VALUES (
			:id, :custodian_id, :name, :species, :status, :adopter_id,
			:created_at, :updated_at, :version
		)`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(animal))
	if err != nil {
		return errors.Wrap(err, "failed to insert animal")
	}

	return nil
}

func (r *PostgresAnimalRepository) updateAnimal(ctx context.Context, animal *domain.Animal) error {
	query := `
		UPDATE animals
		SET status = :status, adopter_id = :adopter_id,
			updated_at = :updated_at, version = :version
		WHERE id = :id AND version = :old_version`

	pgAnimal := r.toPostgres(animal)
	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":          pgAnimal.ID,
		"status":      pgAnimal.Status,
		"adopter_id":  pgAnimal.AdopterID,
		"updated_at":  pgAnimal.UpdatedAt,
		"version":     pgAnimal.Version,
		"old_version": pgAnimal.Version - 1,
	})
	if err != nil {
		return errors.Wrap(err, "failed to update animal")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return errors.New("animal was modified concurrently")
	}

	return nil
}

// FindByID finds an animal by ID
func (r *PostgresAnimalRepository) FindByID(ctx context.Context, id models.ID) (*domain.Animal, error) {
	query := `
		SELECT id, custodian_id, name, species, status, adopter_id,
			   created_at, updated_at, deleted_at, version
		FROM animals
		WHERE id = $1 AND deleted_at IS NULL`

	var pgAnimal postgresAnimal
	err := r.db.GetContext(ctx, &pgAnimal, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Animal not found
		}
		return nil, errors.Wrap(err, "failed to find animal")
	}

	return r.toDomain(&pgAnimal)
}

// FindByCustodianID finds animals under a custodian's care
func (r *PostgresAnimalRepository) FindByCustodianID(ctx context.Context, custodianID models.ID) ([]*domain.Animal, error) {
	query := `
		SELECT id, custodian_id, name, species, status, adopter_id,
			   created_at, updated_at, deleted_at, version
		FROM animals
		WHERE custodian_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC`

	var pgAnimals []postgresAnimal
	err := r.db.SelectContext(ctx, &pgAnimals, query, custodianID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to find animals by custodian ID")
	}

	animals := make([]*domain.Animal, len(pgAnimals))
	for i, pgAnimal := range pgAnimals {
		animal, err := r.toDomain(&pgAnimal)
		if err != nil {
			return nil, err
		}
		animals[i] = animal
	}

	return animals, nil
}

// toPostgres converts domain animal to postgres model
func (r *PostgresAnimalRepository) toPostgres(animal *domain.Animal) *postgresAnimal {
	var adopterID *string
	if animal.AdopterID != nil {
		id := animal.AdopterID.String()
		adopterID = &id
	}

	return &postgresAnimal{
		ID:          animal.ID.String(),
		CustodianID: animal.CustodianID.String(),
		Name:        animal.Name,
		Species:     animal.Species,
		Status:      string(animal.Status),
		AdopterID:   adopterID,
		CreatedAt:   animal.Timestamps.CreatedAt,
		UpdatedAt:   animal.Timestamps.UpdatedAt,
		DeletedAt:   animal.Timestamps.DeletedAt,
		Version:     animal.Version.Value,
	}
}

// toDomain converts postgres model to domain animal
func (r *PostgresAnimalRepository) toDomain(pgAnimal *postgresAnimal) (*domain.Animal, error) {
	id, err := models.NewID(pgAnimal.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid animal ID")
	}

	custodianID, err := models.NewID(pgAnimal.CustodianID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid custodian ID")
	}

	var adopterID *models.ID
	if pgAnimal.AdopterID != nil {
		parsed, err := models.NewID(*pgAnimal.AdopterID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid adopter ID")
		}
		adopterID = &parsed
	}

	return &domain.Animal{
		ID:          id,
		CustodianID: custodianID,
		Name:        pgAnimal.Name,
		Species:     pgAnimal.Species,
		Status:      domain.AnimalStatus(pgAnimal.Status),
		AdopterID:   adopterID,
		Timestamps: models.Timestamps{
			CreatedAt: pgAnimal.CreatedAt,
			UpdatedAt: pgAnimal.UpdatedAt,
			DeletedAt: pgAnimal.DeletedAt,
		},
		Version: models.Version{Value: pgAnimal.Version},
	}, nil
}
