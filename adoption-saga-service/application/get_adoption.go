package application

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
	"github.com/shelterly/adoption-system/shared/models"
)

// ErrProcessNotFound is returned when no adoption process exists for the ID.
var ErrProcessNotFound = errors.New("adoption process not found")

// GetAdoptionQuery represents the query to get an adoption process
type GetAdoptionQuery struct {
	ProcessID string `json:"process_id"`
}

// AdoptionStatusView is the read-only projection exposed by the facade.
type AdoptionStatusView struct {
	ProcessID          string    `json:"process_id"`
	Status             string    `json:"status"`
	AnimalID           string    `json:"animal_id"`
	CustodianID        string    `json:"custodian_id"`
	AdopterID          string    `json:"adopter_id"`
	AdopterDisplayName string    `json:"adopter_display_name"`
	AnimalDisplayName  string    `json:"animal_display_name"`
	ConversationID     *string   `json:"conversation_id,omitempty"`
	FailureReason      *string   `json:"failure_reason,omitempty"`
	Completed          bool      `json:"completed"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// GetAdoption use case
type GetAdoption struct {
	processRepository domain.AdoptionProcessRepository
}

// NewGetAdoption creates a new GetAdoption use case
func NewGetAdoption(processRepository domain.AdoptionProcessRepository) *GetAdoption {
	return &GetAdoption{processRepository: processRepository}
}

// Execute executes the get adoption use case
func (uc *GetAdoption) Execute(ctx context.Context, query *GetAdoptionQuery) (*AdoptionStatusView, error) {
	processID, err := models.NewID(query.ProcessID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid process ID")
	}

	process, err := uc.processRepository.FindByID(ctx, processID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find adoption process")
	}

	if process == nil {
		return nil, ErrProcessNotFound
	}

	return toStatusView(process), nil
}

func toStatusView(process *domain.AdoptionProcess) *AdoptionStatusView {
	view := &AdoptionStatusView{
		ProcessID:          process.ID.String(),
		Status:             string(process.Status),
		AnimalID:           process.AnimalID.String(),
		CustodianID:        process.CustodianID.String(),
		AdopterID:          process.AdopterID.String(),
		AdopterDisplayName: process.AdopterDisplayName,
		AnimalDisplayName:  process.AnimalDisplayName,
		FailureReason:      process.FailureReason,
		Completed:          process.Completed(),
		CreatedAt:          process.Timestamps.CreatedAt,
		UpdatedAt:          process.Timestamps.UpdatedAt,
	}

	if process.ConversationID != nil {
		conversationID := process.ConversationID.String()
		view.ConversationID = &conversationID
	}

	return view
}
