package domain

import (
	"context"

	"github.com/shelterly/adoption-system/shared/models"
)

// Volunteer is the shelter-side identity a platform user acts as.
type Volunteer struct {
	ID          models.ID
	UserID      models.ID
	DisplayName string
}

// VolunteerDirectory resolves platform users to volunteer identities.
type VolunteerDirectory interface {
	FindByUserID(ctx context.Context, userID models.ID) (*Volunteer, error)
}
