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

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference room ids inserted by SeedReferenceData.
const (
	SeedRoomBoardroomID int64 = 1
	SeedRoomHuddleID    int64 = 2
)

func CreateTestRoom(t *testing.T, db DBLike, name string, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO rooms (name, capacity, features) VALUES ($1, $2, '') RETURNING id",
		name, capacity).Scan(&id)
	require.NoError(t, err)

	return id
}

func CountConfirmedBookings(t *testing.T, db DBLike, roomID int64) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM room_bookings WHERE room_id = $1 AND status = 'confirmed'",
		roomID).Scan(&count)
	require.NoError(t, err)

	return count
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO rooms (id, name, capacity, features) VALUES
		    (1, 'Boardroom', 8, 'whiteboard,projector'),
		    (2, 'Huddle', 3, 'whiteboard')
		ON CONFLICT (id) DO NOTHING;
	`)
	if err != nil {
		return err
	}

	// Explicit-id inserts leave the sequence behind.
	_, err = pool.Exec(ctx, "SELECT setval('rooms_id_seq', (SELECT max(id) FROM rooms))")
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
