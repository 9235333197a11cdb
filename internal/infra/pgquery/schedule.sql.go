package pgquery

import (
	"context"
)

const listTherapists = `
SELECT id, name
FROM therapists
WHERE shop_id = $1
  AND is_active
  AND ($2::uuid IS NULL OR id = $2::uuid)
ORDER BY display_order, name
`

func (q *Queries) ListTherapists(ctx context.Context, db DBTX, arg DayScheduleParams) ([]TherapistRow, error) {
	rows, err := db.Query(ctx, listTherapists, arg.ShopID, arg.TherapistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []TherapistRow
	for rows.Next() {
		var r TherapistRow
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listShiftsByDate = `
SELECT s.id, s.therapist_id, s.date, s.start_time, s.end_time
FROM shifts s
JOIN therapists t ON t.id = s.therapist_id
WHERE s.shop_id = $1
  AND s.date = $2
  AND ($3::uuid IS NULL OR s.therapist_id = $3::uuid)
ORDER BY t.display_order, s.start_time
`

func (q *Queries) ListShiftsByDate(ctx context.Context, db DBTX, arg DayScheduleParams) ([]ShiftRow, error) {
	rows, err := db.Query(ctx, listShiftsByDate, arg.ShopID, arg.Date, arg.TherapistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ShiftRow
	for rows.Next() {
		var r ShiftRow
		if err := rows.Scan(&r.ID, &r.TherapistID, &r.Date, &r.StartTime, &r.EndTime); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

const listReservationsByDate = `
SELECT r.id, r.therapist_id, cu.name, co.name, r.start_time, r.duration_minutes, r.designation_type, r.status
FROM reservations r
JOIN courses co ON co.id = r.course_id
LEFT JOIN customers cu ON cu.id = r.customer_id
WHERE r.shop_id = $1
  AND r.date = $2
  AND r.therapist_id IS NOT NULL
  AND r.status <> 'canceled'
  AND ($3::uuid IS NULL OR r.therapist_id = $3::uuid)
ORDER BY r.start_time, r.id
`

func (q *Queries) ListReservationsByDate(ctx context.Context, db DBTX, arg DayScheduleParams) ([]ReservationSlotRow, error) {
	rows, err := db.Query(ctx, listReservationsByDate, arg.ShopID, arg.Date, arg.TherapistID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []ReservationSlotRow
	for rows.Next() {
		var r ReservationSlotRow
		if err := rows.Scan(&r.ID, &r.TherapistID, &r.CustomerName, &r.CourseName, &r.StartTime, &r.DurationMinutes, &r.Designation, &r.Status); err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}
