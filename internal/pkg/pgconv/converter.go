package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidTimeValue = errors.New("invalid time of day in pgtype.Time")

const microsecondsPerMinute = int64(60 * 1000 * 1000)

func StringFromPgtype(pt pgtype.Text) string {
	if !pt.Valid {
		return ""
	}
	return pt.String
}

func Int64PtrFromPgtype(pi pgtype.Int8) *int64 {
	if !pi.Valid {
		return nil
	}
	v := pi.Int64
	return &v
}

// ClockFromPgtype splits a TIME column into hour and minute. ok is false for NULL.
func ClockFromPgtype(pt pgtype.Time) (hour, minute int, ok bool, err error) {
	if !pt.Valid {
		return 0, 0, false, nil
	}
	if pt.Microseconds < 0 || pt.Microseconds > 24*60*microsecondsPerMinute {
		return 0, 0, false, ErrInvalidTimeValue
	}
	total := int(pt.Microseconds / microsecondsPerMinute)
	// 24:00:00 is a legal TIME value meaning end of day
	total %= 24 * 60
	return total / 60, total % 60, true, nil
}

func ClockToPgtype(hour, minute int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(hour*60+minute) * microsecondsPerMinute, Valid: true}
}

func DateToPgtype(t time.Time) pgtype.Date {
	return pgtype.Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from pgx
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
