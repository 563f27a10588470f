package infrastructure

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/models"
)

// PostgresVolunteerDirectory implements VolunteerDirectory using PostgreSQL
type PostgresVolunteerDirectory struct {
	db *sqlx.DB
}

// NewPostgresVolunteerDirectory creates a new PostgresVolunteerDirectory
func NewPostgresVolunteerDirectory(db *sqlx.DB) *PostgresVolunteerDirectory {
	return &PostgresVolunteerDirectory{db: db}
}

type postgresVolunteer struct {
	ID          string `db:"id"`
	UserID      string `db:"user_id"`
	DisplayName string `db:"display_name"`
}

// FindByUserID resolves a platform user to a volunteer identity
func (d *PostgresVolunteerDirectory) FindByUserID(ctx context.Context, userID models.ID) (*domain.Volunteer, error) {
	query := `
		SELECT id, user_id, display_name
		FROM volunteers
		WHERE user_id = $1`

	var pgVolunteer postgresVolunteer
	err := d.db.GetContext(ctx, &pgVolunteer, query, userID.String())
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Volunteer not found
		}
		return nil, errors.Wrap(err, "failed to find volunteer")
	}

	id, err := models.NewID(pgVolunteer.ID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid volunteer ID")
	}

	resolvedUserID, err := models.NewID(pgVolunteer.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid user ID")
	}

	return &domain.Volunteer{
		ID:          id,
		UserID:      resolvedUserID,
		DisplayName: pgVolunteer.DisplayName,
	}, nil
}
