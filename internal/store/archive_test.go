package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internwatch/internal/listing"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(db.Pool))
	return db
}

func TestMigrateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db.Pool))
}

func TestUpsertListingKeepsFirstSeen(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	l := listing.New("Acme", "SWE Intern", "NYC", "Software Engineering")
	l.ObservedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	inserted, err := db.UpsertListing(ctx, l)
	require.NoError(t, err)
	assert.True(t, inserted)

	l.ObservedAt = time.Date(2026, 8, 2, 12, 0, 0, 0, time.UTC)
	inserted, err = db.UpsertListing(ctx, l)
	require.NoError(t, err)
	assert.False(t, inserted)

	var firstSeen, lastSeen string
	err = db.Pool.QueryRowContext(ctx,
		`SELECT first_seen, last_seen FROM listings WHERE id = ?;`, l.ID,
	).Scan(&firstSeen, &lastSeen)
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01T12:00:00Z", firstSeen)
	assert.Equal(t, "2026-08-02T12:00:00Z", lastSeen)

	n, err := db.CountListings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestRecordRun(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	err := db.RecordRun(ctx, RunStats{
		RanAt:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Parsed:      42,
		New:         3,
		SkippedRows: 1,
		Notified:    true,
	})
	require.NoError(t, err)

	var parsed, newFound, notified int
	err = db.Pool.QueryRowContext(ctx,
		`SELECT parsed, new_found, notified FROM runs;`,
	).Scan(&parsed, &newFound, &notified)
	require.NoError(t, err)
	assert.Equal(t, 42, parsed)
	assert.Equal(t, 3, newFound)
	assert.Equal(t, 1, notified)
}
