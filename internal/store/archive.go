package store

import (
	"context"
	"database/sql"
	"time"

	"internwatch/internal/listing"
)

// The archive is observational only: it remembers every listing ever seen and
// a stats row per run. The diff never reads it — a listing that disappears
// from the README and later reappears is still reported as new.

type RunStats struct {
	RanAt       time.Time
	Parsed      int
	New         int
	SkippedRows int
	Notified    bool
}

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS listings (
  id TEXT PRIMARY KEY,
  company TEXT NOT NULL,
  role TEXT NOT NULL,
  location TEXT NOT NULL,
  category TEXT NOT NULL,
  apply_url TEXT NOT NULL DEFAULT '',
  first_seen TEXT NOT NULL,
  last_seen TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS runs (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  ran_at TEXT NOT NULL,
  parsed INTEGER NOT NULL,
  new_found INTEGER NOT NULL,
  skipped_rows INTEGER NOT NULL,
  notified INTEGER NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_listings_first_seen
ON listings(first_seen);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// UpsertListing records a listing, keeping first_seen from the first run that
// saw it. Returns true when the listing was not in the archive before.
func (d *DB) UpsertListing(ctx context.Context, l listing.Listing) (bool, error) {
	seen := l.ObservedAt.UTC().Format(time.RFC3339)

	res, err := d.Pool.ExecContext(ctx, `
INSERT OR IGNORE INTO listings(id, company, role, location, category, apply_url, first_seen, last_seen)
VALUES(?,?,?,?,?,?,?,?);`,
		l.ID, l.Company, l.Role, l.Location, l.Category, l.ApplyURL, seen, seen,
	)
	if err != nil {
		return false, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		_, err = d.Pool.ExecContext(ctx, `
UPDATE listings SET last_seen = ? WHERE id = ?;`, seen, l.ID)
		if err != nil {
			return false, err
		}
	}
	return n > 0, nil
}

func (d *DB) RecordRun(ctx context.Context, st RunStats) error {
	notified := 0
	if st.Notified {
		notified = 1
	}
	_, err := d.Pool.ExecContext(ctx, `
INSERT INTO runs(ran_at, parsed, new_found, skipped_rows, notified)
VALUES(?,?,?,?,?);`,
		st.RanAt.UTC().Format(time.RFC3339), st.Parsed, st.New, st.SkippedRows, notified,
	)
	return err
}

// CountListings reports how many distinct listings the archive has ever seen.
func (d *DB) CountListings(ctx context.Context) (int, error) {
	var n int
	err := d.Pool.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings;`).Scan(&n)
	return n, err
}
