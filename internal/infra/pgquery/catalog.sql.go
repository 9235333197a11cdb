package pgquery

import (
	"context"

	"github.com/google/uuid"
)

const getCourse = `
SELECT id, shop_id, name, duration_minutes, base_price
FROM courses
WHERE shop_id = $1 AND id = $2 AND is_active
`

func (q *Queries) GetCourse(ctx context.Context, db DBTX, shopID, courseID uuid.UUID) (CourseRow, error) {
	row := db.QueryRow(ctx, getCourse, shopID, courseID)
	var r CourseRow
	err := row.Scan(&r.ID, &r.ShopID, &r.Name, &r.DurationMinutes, &r.BasePrice)
	return r, err
}

const listOptionsByIDs = `
SELECT id, shop_id, name, duration_minutes, price
FROM options
WHERE shop_id = $1 AND id = ANY($2::uuid[]) AND is_active
ORDER BY display_order, name
`

func (q *Queries) ListOptionsByIDs(ctx context.Context, db DBTX, shopID uuid.UUID, ids []uuid.UUID) ([]OptionRow, error) {
	rows, err := db.Query(ctx, listOptionsByIDs, shopID, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OptionRow
	for rows.Next() {
		var r OptionRow
		if err := rows.Scan(&r.ID, &r.ShopID, &r.Name, &r.DurationMinutes, &r.Price); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
