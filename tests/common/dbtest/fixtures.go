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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt of "password123", precomputed so fixtures stay fast.
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, password_hash, name, role) VALUES ($1, $2, $3, $4, $5) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestVehicle(t *testing.T, db DBLike, ownerID uuid.UUID, carNumber string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO vehicles (id, owner_id, car_number, car_model) VALUES ($1, $2, $3, $4)",
		vehicleID, ownerID, carNumber, "Ioniq 5")
	require.NoError(t, err)

	return vehicleID
}

func CreateTestSpace(t *testing.T, db DBLike, hostID uuid.UUID, title string, autoApproval bool) uuid.UUID {
	t.Helper()

	spaceID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO spaces (id, host_id, title, description, address, lat, lng, is_auto_approval)
		 VALUES ($1, $2, $3, '', 'Test address', 37.5665, 126.978, $4)`,
		spaceID, hostID, title, autoApproval)
	require.NoError(t, err)

	return spaceID
}

func CreateTestRule(t *testing.T, db DBLike, spaceID uuid.UUID, dayOfWeek int, startTime, endTime string) uuid.UUID {
	t.Helper()

	ruleID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO availability_rules (id, space_id, day_of_week, start_time, end_time) VALUES ($1, $2, $3, $4, $5)",
		ruleID, spaceID, dayOfWeek, startTime, endTime)
	require.NoError(t, err)

	return ruleID
}

func CreateTestProduct(t *testing.T, db DBLike, spaceID uuid.UUID, productType string, price int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO products (id, space_id, type, name, price) VALUES ($1, $2, $3, $4, $5)",
		productID, spaceID, productType, productType, price)
	require.NoError(t, err)

	return productID
}

func CreateTestReservation(t *testing.T, db DBLike, spaceID, driverID, productID uuid.UUID, startAt, endAt time.Time, status string, priceTotal int64) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO reservations (id, space_id, driver_id, product_id, car_number, start_at, end_at, status, price_total, period)
		 VALUES ($1, $2, $3, $4, '12GA3456', $5, $6, $7, $8, tstzrange($5, $6, '[)'))`,
		reservationID, spaceID, driverID, productID, startAt, endAt, status, priceTotal)
	require.NoError(t, err)

	return reservationID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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

	return nil
}
