package application

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shelterly/adoption-system/adoption-saga-service/domain"
)

const defaultListLimit = 50

// ListAdoptionsQuery filters adoption processes by state, e.g. to find
// attempts stuck waiting on a custodian decision.
type ListAdoptionsQuery struct {
	Status string `json:"status"`
	Offset int    `json:"offset"`
	Limit  int    `json:"limit"`
}

// ListAdoptionsResponse represents the response listing adoption processes
type ListAdoptionsResponse struct {
	Adoptions []*AdoptionStatusView `json:"adoptions"`
}

// ListAdoptions use case
type ListAdoptions struct {
	processRepository domain.AdoptionProcessRepository
}

// NewListAdoptions creates a new ListAdoptions use case
func NewListAdoptions(processRepository domain.AdoptionProcessRepository) *ListAdoptions {
	return &ListAdoptions{processRepository: processRepository}
}

// Execute executes the list adoptions use case
func (uc *ListAdoptions) Execute(ctx context.Context, query *ListAdoptionsQuery) (*ListAdoptionsResponse, error) {
	status := domain.ProcessStatus(query.Status)
	if !uc.validStatus(status) {
		return nil, errors.Errorf("invalid process status: %s", query.Status)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	processes, err := uc.processRepository.FindByStatus(ctx, status, query.Offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find adoption processes")
	}

	views := make([]*AdoptionStatusView, len(processes))
	for i, process := range processes {
		views[i] = toStatusView(process)
	}

	return &ListAdoptionsResponse{Adoptions: views}, nil
}

func (uc *ListAdoptions) validStatus(status domain.ProcessStatus) bool {
	for _, s := range domain.Statuses() {
		if s == status {
			return true
		}
	}
	return false
}
