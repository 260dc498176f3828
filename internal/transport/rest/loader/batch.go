package loader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/Burns17/book-pass-on/internal/domain"
)

func newTextbookBatchFn(repo textbookRepo) dataloader.BatchFunc[uuid.UUID, *domain.Textbook] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Textbook] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Textbook](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Textbook, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		return mapResults(keys, byID)
	}
}

func newLocationBatchFn(repo locationRepo) dataloader.BatchFunc[uuid.UUID, *domain.Location] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Location] {
		rows, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.Location](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Location, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		return mapResults(keys, byID)
	}
}

func newProfileBatchFn(repo profileRepo) dataloader.BatchFunc[uuid.UUID, *domain.Profile] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.Profile] {
		rows, err := repo.GetProfiles(ctx, keys)
		if err != nil {
			return errorResults[*domain.Profile](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.Profile, len(rows))
		for i := range rows {
			byID[rows[i].ID] = &rows[i]
		}
		return mapResults(keys, byID)
	}
}

// errorResults returns n results carrying the same error.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults puts values back in key order. Missing keys get the zero value.
func mapResults[V any](keys []uuid.UUID, byID map[uuid.UUID]V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		results[i] = &dataloader.Result[V]{Data: byID[key]}
	}
	return results
}
