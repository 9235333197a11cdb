//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const DefaultShopName = "Default Shop"

// DBLike is satisfied by both *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func DefaultShopID(t *testing.T, db DBLike) uuid.UUID {
	t.Helper()

	var shopID uuid.UUID
	err := db.QueryRow(context.Background(), "SELECT id FROM shops WHERE name = $1", DefaultShopName).Scan(&shopID)
	require.NoError(t, err)
	return shopID
}

func CreateTestShop(t *testing.T, db DBLike, name string) uuid.UUID {
	t.Helper()

	shopID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO shops (id, name) VALUES ($1, $2) ON CONFLICT (name) DO NOTHING", shopID, name)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM shops WHERE name = $1", name).Scan(&shopID)
	}

	return shopID
}

// nil fees are stored as NULL, meaning "no default"
func SetShopDefaults(t *testing.T, db DBLike, shopID uuid.UUID, nomination, confirmed, princess *int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO shop_settings (shop_id, default_nomination_fee, default_confirmed_nomination_fee, default_princess_fee)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (shop_id) DO UPDATE SET
		    default_nomination_fee = EXCLUDED.default_nomination_fee,
		    default_confirmed_nomination_fee = EXCLUDED.default_confirmed_nomination_fee,
		    default_princess_fee = EXCLUDED.default_princess_fee`,
		shopID, nomination, confirmed, princess)
	require.NoError(t, err)
}

func CreateTestTherapist(t *testing.T, db DBLike, shopID uuid.UUID, name string, displayOrder int) uuid.UUID {
	t.Helper()

	therapistID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO therapists (id, shop_id, name, display_order) VALUES ($1, $2, $3, $4)",
		therapistID, shopID, name, displayOrder)
	require.NoError(t, err)
	return therapistID
}

func SetTherapistPricing(t *testing.T, db DBLike, therapistID uuid.UUID, nomination, confirmed, princess *int64) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		INSERT INTO therapist_pricing (therapist_id, nomination_fee, confirmed_nomination_fee, princess_fee)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (therapist_id) DO UPDATE SET
		    nomination_fee = EXCLUDED.nomination_fee,
		    confirmed_nomination_fee = EXCLUDED.confirmed_nomination_fee,
		    princess_fee = EXCLUDED.princess_fee`,
		therapistID, nomination, confirmed, princess)
	require.NoError(t, err)
}

func CreateTestCourse(t *testing.T, db DBLike, shopID uuid.UUID, name string, durationMinutes int, basePrice int64) uuid.UUID {
	t.Helper()

	courseID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO courses (id, shop_id, name, duration_minutes, base_price) VALUES ($1, $2, $3, $4, $5)",
		courseID, shopID, name, durationMinutes, basePrice)
	require.NoError(t, err)
	return courseID
}

func CreateTestOption(t *testing.T, db DBLike, shopID uuid.UUID, name string, durationMinutes int, price int64) uuid.UUID {
	t.Helper()

	optionID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO options (id, shop_id, name, duration_minutes, price) VALUES ($1, $2, $3, $4, $5)",
		optionID, shopID, name, durationMinutes, price)
	require.NoError(t, err)
	return optionID
}

func CreateTestCustomer(t *testing.T, db DBLike, shopID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	customerID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO customers (id, shop_id, name) VALUES ($1, $2, $3)",
		customerID, shopID, name)
	require.NoError(t, err)
	return customerID
}

// start and end are "HH:MM"; empty strings store NULL bounds
func CreateTestShift(t *testing.T, db DBLike, shopID, therapistID uuid.UUID, date time.Time, start, end string) uuid.UUID {
	t.Helper()

	shiftID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO shifts (id, shop_id, therapist_id, date, start_time, end_time) VALUES ($1, $2, $3, $4, NULLIF($5, '')::time, NULLIF($6, '')::time)",
		shiftID, shopID, therapistID, date, start, end)
	require.NoError(t, err)
	return shiftID
}

type TestReservation struct {
	ShopID      uuid.UUID
	CustomerID  uuid.UUID
	TherapistID *uuid.UUID
	CourseID    uuid.UUID
	Date        time.Time
	Start       string
	End         string
	Duration    int
	Designation string
	Status      string
}

func CreateTestReservation(t *testing.T, db DBLike, r TestReservation) uuid.UUID {
	t.Helper()

	if r.Designation == "" {
		r.Designation = "free"
	}
	if r.Status == "" {
		r.Status = "confirmed"
	}

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO reservations
		    (id, shop_id, customer_id, therapist_id, course_id, date, start_time, end_time, duration_minutes, designation_type, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8::time, $9, $10, $11)`,
		reservationID, r.ShopID, r.CustomerID, r.TherapistID, r.CourseID, r.Date,
		r.Start, r.End, r.Duration, r.Designation, r.Status)
	require.NoError(t, err)
	return reservationID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO shops (id, name) VALUES
		    (gen_random_uuid(), 'Default Shop'),
		    (gen_random_uuid(), 'Test Shop')
		ON CONFLICT (name) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	return nil
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
