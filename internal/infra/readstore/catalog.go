package readstore

import (
	"context"

	"therapist-management-saas/internal/infra"
	"therapist-management-saas/internal/infra/pgquery"
	"therapist-management-saas/internal/pkg/pgconv"
	"therapist-management-saas/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type CatalogReadQueries interface {
	GetCourse(ctx context.Context, db pgquery.DBTX, shopID, courseID uuid.UUID) (pgquery.CourseRow, error)
	ListOptionsByIDs(ctx context.Context, db pgquery.DBTX, shopID uuid.UUID, ids []uuid.UUID) ([]pgquery.OptionRow, error)
}

type CatalogReadStore struct {
	queries CatalogReadQueries
	db      pgquery.DBTX
}

func NewCatalogReadStore(queries CatalogReadQueries, db pgquery.DBTX) *CatalogReadStore {
	return &CatalogReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CatalogReadStore) FindCourse(ctx context.Context, shopID, courseID uuid.UUID) (*readmodel.CourseRM, error) {
	row, err := r.queries.GetCourse(ctx, r.db, shopID, courseID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("course not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find course", err)
	}

	return &readmodel.CourseRM{
		ID:              row.ID,
		ShopID:          row.ShopID,
		Name:            row.Name,
		DurationMinutes: int(row.DurationMinutes),
		BasePrice:       row.BasePrice,
	}, nil
}

// FindOptions returns NotFound when any requested id is missing or inactive.
// Duplicate ids collapse to one option.
func (r *CatalogReadStore) FindOptions(ctx context.Context, shopID uuid.UUID, ids []uuid.UUID) ([]readmodel.OptionRM, error) {
	unique := dedupeIDs(ids)
	if len(unique) == 0 {
		return nil, nil
	}

	rows, err := r.queries.ListOptionsByIDs(ctx, r.db, shopID, unique)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list options", err)
	}

	if len(rows) != len(unique) {
		return nil, infra.WrapRepoErr("option not found", nil, infra.KindNotFound)
	}

	result := make([]readmodel.OptionRM, len(rows))
	for i, row := range rows {
		result[i] = readmodel.OptionRM{
			ID:              row.ID,
			ShopID:          row.ShopID,
			Name:            row.Name,
			DurationMinutes: int(row.DurationMinutes),
			Price:           row.Price,
		}
	}
	return result, nil
}

func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
