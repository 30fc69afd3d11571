package usecase

import (
	"context"
	"errors"

	"github.com/rajudas/field-sales-api/internal/entity"
)

// DashboardUseCase is the read/aggregate layer plus the single mutation the
// system allows after creation: lead-status edits.
type DashboardUseCase struct {
	Repo VisitRepositoryInterface
}

func NewDashboardUseCase(repo VisitRepositoryInterface) *DashboardUseCase {
	return &DashboardUseCase{Repo: repo}
}

// Visits returns the viewer's slice of the data: admins see everything,
// representatives only their own records.
func (uc *DashboardUseCase) Visits(ctx context.Context, viewer *entity.User) ([]entity.VisitRecord, error) {
	if viewer.IsAdmin() {
		return uc.Repo.ListAll(ctx)
	}
	return uc.Repo.ListByOwner(ctx, viewer.Username)
}

// Summary aggregates visit counts per lead status. Only observed statuses
// appear in the map.
func (uc *DashboardUseCase) Summary(ctx context.Context, viewer *entity.User) (*DashboardSummary, error) {
	visits, err := uc.Visits(ctx, viewer)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	for _, v := range visits {
		counts[v.LeadType]++
	}
	return &DashboardSummary{Total: len(visits), StatusCounts: counts}, nil
}

// BatchUpdateLeadStatus applies each edit independently. A failed row does
// not block the others; the result carries the exact success count and the
// per-row failures.
func (uc *DashboardUseCase) BatchUpdateLeadStatus(ctx context.Context, edits []LeadStatusEdit) BatchResult {
	var result BatchResult
	for _, edit := range edits {
		if !entity.IsValidLeadStatus(edit.LeadType) {
			result.Failures = append(result.Failures, EditFailure{ID: edit.ID, Message: "invalid lead status: " + edit.LeadType})
			continue
		}
		if err := uc.Repo.UpdateLeadStatus(ctx, edit.ID, edit.LeadType); err != nil {
			msg := "update failed"
			if errors.Is(err, entity.ErrVisitNotFound) {
				msg = "visit not found"
			}
			result.Failures = append(result.Failures, EditFailure{ID: edit.ID, Message: msg})
			continue
		}
		result.Updated++
	}
	return result
}
