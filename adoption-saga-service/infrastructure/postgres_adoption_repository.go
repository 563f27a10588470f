package infrastructure

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/models"
)

const pqUniqueViolation = "23505"

// PostgresAdoptionRepository implements AdoptionProcessRepository using PostgreSQL
type PostgresAdoptionRepository struct {
	db *sqlx.DB
}

// NewPostgresAdoptionRepository creates a new PostgresAdoptionRepository
func NewPostgresAdoptionRepository(db *sqlx.DB) *PostgresAdoptionRepository {
	return &PostgresAdoptionRepository{db: db}
}

// postgresAdoptionProcess represents an adoption process in database
type postgresAdoptionProcess struct {
	ID                 string     `db:"id"`
	AnimalID           string     `db:"animal_id"`
	CustodianID        string     `db:"custodian_id"`
	AdopterID          string     `db:"adopter_id"`
	AdopterDisplayName string     `db:"adopter_display_name"`
	AnimalDisplayName  string     `db:"animal_display_name"`
	ConversationID     *string    `db:"conversation_id"`
	FailureReason      *string    `db:"failure_reason"`
	Status             string     `db:"status"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
	DeletedAt          *time.Time `db:"deleted_at"`
	Version            int        `db:"version"`
}

// Save inserts a new process or updates an existing one under the version
// check. A lost check surfaces as ErrConcurrentModification so the caller
// can re-read and re-decide.
func (r *PostgresAdoptionRepository) Save(ctx context.Context, process *domain.AdoptionProcess) error {
	if process.Version.Value == 1 {
		return r.insertProcess(ctx, process)
	}
	return r.updateProcess(ctx, process)
}

func (r *PostgresAdoptionRepository) insertProcess(ctx context.Context, process *domain.AdoptionProcess) error {
	query := `
		INSERT INTO adoption_processes (
			id, animal_id, custodian_id, adopter_id,
			adopter_display_name, animal_display_name,
			conversation_id, failure_reason, status,
			created_at, updated_at, version
		) VALUES (
			:id, :animal_id, :custodian_id, :adopter_id,
			:adopter_display_name, :animal_display_name,
			:conversation_id, :failure_reason, :status,
			:created_at, :updated_at, :version
		)`

	_, err := r.db.NamedExecContext(ctx, query, r.toPostgres(process))
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			// Two start events raced; exactly one instance per process ID.
			return domain.ErrConcurrentModification
		}
		return errors.Wrap(err, "failed to insert adoption process")
	}

	return nil
}

func (r *PostgresAdoptionRepository) updateProcess(ctx context.Context, process *domain.AdoptionProcess) error {
	query := `
		UPDATE adoption_processes
		SET status = :status, conversation_id = :conversation_id,
			failure_reason = :failure_reason, updated_at = :updated_at,
			version = :version
		WHERE id = :id AND version = :old_version`

	pgProcess := r.toPostgres(process)
	result, err := r.db.NamedExecContext(ctx, query, map[string]interface{}{
		"id":              pgProcess.ID,
		"status":          pgProcess.Status,
		"conversation_id": pgProcess.ConversationID,
		"failure_reason":  pgProcess.FailureReason,
		"updated_at":      pgProcess.UpdatedAt,
		"version":         pgProcess.Version,
		"old_version":     pgProcess.Version - 1,
	})
	if err != nil {
		return errors.Wrap(err, "failed to update adoption process")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return domain.ErrConcurrentModification
	}

	return nil
}

// FindByID finds an adoption process by ID
func (r *PostgresAdoptionRepository) FindByID(ctx context.Context, id models.ID) (*domain.AdoptionProcess, error) {
	query := selectProcesses + ` WHERE id = $1 AND deleted_at IS NULL`

	var pgProcess postgresAdoptionProcess
	err := r.db.GetContext(ctx, &pgProcess, query, id.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Process not found
		}
		return nil, errors.Wrap(err, "failed to find adoption process")
	}

	return r.toDomain(&pgProcess)
}

// FindByAnimalID finds adoption processes for an animal
func (r *PostgresAdoptionRepository) FindByAnimalID(ctx context.Context, animalID models.ID) ([]*domain.AdoptionProcess, error) {
	query := selectProcesses + ` WHERE animal_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.selectMany(ctx, query, animalID.String())
}

// FindByAdopterID finds adoption processes for an adopter
func (r *PostgresAdoptionRepository) FindByAdopterID(ctx context.Context, adopterID models.ID) ([]*domain.AdoptionProcess, error) {
	query := selectProcesses + ` WHERE adopter_id = $1 AND deleted_at IS NULL ORDER BY created_at DESC`
	return r.selectMany(ctx, query, adopterID.String())
}

// FindByStatus finds adoption processes in a given state, oldest first
func (r *PostgresAdoptionRepository) FindByStatus(ctx context.Context, status domain.ProcessStatus, offset, limit int) ([]*domain.AdoptionProcess, error) {
	query := selectProcesses + ` WHERE status = $1 AND deleted_at IS NULL ORDER BY created_at ASC LIMIT $2 OFFSET $3`
	return r.selectMany(ctx, query, string(status), limit, offset)
}

const selectProcesses = `
	SELECT id, animal_id, custodian_id, adopter_id,
		   adopter_display_name, animal_display_name,
		   conversation_id, failure_reason, status,
		   created_at, updated_at, deleted_at, version
	FROM adoption_processes`

func (r *PostgresAdoptionRepository) selectMany(ctx context.Context, query string, args ...interface{}) ([]*domain.AdoptionProcess, error) {
	var pgProcesses []postgresAdoptionProcess
	err := r.db.SelectContext(ctx, &pgProcesses, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find adoption processes")
	}

	processes := make([]*domain.AdoptionProcess, len(pgProcesses))
	for i, pgProcess := range pgProcesses {
		process, err := r.toDomain(&pgProcess)
		if err != nil {
			return nil, err
		}
		processes[i] = process
	}

	return processes, nil
}

// toPostgres converts domain process to postgres model
func (r *PostgresAdoptionRepository) toPostgres(process *domain.AdoptionProcess) *postgresAdoptionProcess {
	var conversationID *string
	if process.ConversationID != nil {
		id := process.ConversationID.String()
		conversationID = &id
	}

	return &postgresAdoptionProcess{
		ID:                 process.ID.String(),
		AnimalID:           process.AnimalID.String(),
		CustodianID:        process.CustodianID.String(),
		AdopterID:          process.AdopterID.String(),
		AdopterDisplayName: process.AdopterDisplayName,
		AnimalDisplayName:  process.AnimalDisplayName,
		ConversationID:     conversationID,
		FailureReason:      process.FailureReason,
		Status:             string(process.Status),
		CreatedAt:          process.Timestamps.CreatedAt,
		UpdatedAt:          process.Timestamps.UpdatedAt,
		DeletedAt:          process.Timestamps.DeletedAt,
		Version:            process.Version.Value,
	}
}

// toDomain converts postgres model to domain process
func (r *PostgresAdoptionRepository) toDomain(pgProcess *postgresAdoptionProcess) (*domain.AdoptionProcess, error) {
	id, err := models.NewID(pgProcess.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid process ID")
	}

	animalID, err := models.NewID(pgProcess.AnimalID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid animal ID")
	}

	custodianID, err := models.NewID(pgProcess.CustodianID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid custodian ID")
	}

	adopterID, err := models.NewID(pgProcess.AdopterID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid adopter ID")
	}

	var conversationID *models.ID
	if pgProcess.ConversationID != nil {
		parsed, err := models.NewID(*pgProcess.ConversationID)
		if err != nil {
			return nil, errors.Wrap(err, "invalid conversation ID")
		}
		conversationID = &parsed
	}

	return &domain.AdoptionProcess{
		ID:                 id,
		AnimalID:           animalID,
		CustodianID:        custodianID,
		AdopterID:          adopterID,
		AdopterDisplayName: pgProcess.AdopterDisplayName,
		AnimalDisplayName:  pgProcess.AnimalDisplayName,
		ConversationID:     conversationID,
		FailureReason:      pgProcess.FailureReason,
		Status:             domain.ProcessStatus(pgProcess.Status),
		Timestamps: models.Timestamps{
			CreatedAt: pgProcess.CreatedAt,
			UpdatedAt: pgProcess.UpdatedAt,
			DeletedAt: pgProcess.DeletedAt,
		},
		Version: models.Version{Value: pgProcess.Version},
	}, nil
}
