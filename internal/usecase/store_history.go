package usecase

import (
	"context"

	"github.com/rajudas/field-sales-api/internal/entity"
)

// StoreHistoryUseCase pre-fills a draft from the most recent visit for a
// store. Pure read; no side effects on the store.
type StoreHistoryUseCase struct {
	Repo VisitRepositoryInterface
}

func NewStoreHistoryUseCase(repo VisitRepositoryInterface) *StoreHistoryUseCase {
	return &StoreHistoryUseCase{Repo: repo}
}

// Lookup returns the most recent visit for the exact store name, with the
// category normalized, or nil when the store has no history. Absence is a
// valid outcome, not an error.
func (uc *StoreHistoryUseCase) Lookup(ctx context.Context, storeName string) (*entity.VisitRecord, error) {
	visit, err := uc.Repo.MostRecentByStore(ctx, storeName)
	if err != nil {
		return nil, err
	}
	if visit == nil {
		return nil, nil
	}
	visit.StoreCategory = entity.NormalizeCategory(visit.StoreCategory)
	return visit, nil
}

// Prefill applies a store's history onto the draft. Returns false when no
// history exists; the caller shows a non-blocking warning and the draft is
// left untouched.
func (uc *StoreHistoryUseCase) Prefill(ctx context.Context, draft *Draft, storeName string) (bool, error) {
	visit, err := uc.Lookup(ctx, storeName)
	if err != nil {
		return false, err
	}
	if visit == nil {
		return false, nil
	}
	draft.ApplyHistory(visit)
	return true, nil
}

func (uc *StoreHistoryUseCase) StoreNames(ctx context.Context) ([]string, error) {
	return uc.Repo.StoreNames(ctx)
}
