package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"internwatch/internal/listing"
)

// Snapshot is the full set of listings known as of the last run. It is
// replaced wholesale every run, never merged: a listing that drops out of the
// README drops out of the snapshot too.
type Snapshot struct {
	LastUpdated time.Time         `json:"last_updated"`
	ListingIDs  []string          `json:"listing_ids"`
	Listings    []listing.Listing `json:"listings"`
}

// FromListings builds the snapshot for the current run. ListingIDs is
// redundant with Listings but keeps next run's id-set load trivial.
func FromListings(ls []listing.Listing) Snapshot {
	ids := make([]string, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, l.ID)
	}
	return Snapshot{
		LastUpdated: time.Now().UTC(),
		ListingIDs:  ids,
		Listings:    ls,
	}
}

// IDSet returns the membership set used by the diff.
func (s Snapshot) IDSet() map[string]bool {
	ids := make(map[string]bool, len(s.ListingIDs))
	for _, id := range s.ListingIDs {
		ids[id] = true
	}
	if len(ids) == 0 {
		// older snapshots may lack the redundant id list
		for _, l := range s.Listings {
			ids[l.ID] = true
		}
	}
	return ids
}

// Load reads the snapshot at path. Missing or corrupt state is not an error:
// the caller gets an empty snapshot and every current listing counts as new.
func Load(path string) Snapshot {
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Printf("[state] read %s: %v (starting from empty)", path, err)
		}
		return Snapshot{}
	}
	var s Snapshot
	if err := json.Unmarshal(b, &s); err != nil {
		log.Printf("[state] corrupt snapshot %s: %v (starting from empty)", path, err)
		return Snapshot{}
	}
	return s
}

// Save writes the snapshot via tmp+rename so a crash mid-write can't leave a
// half-written file for the next run to choke on.
func Save(path string, s Snapshot) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return os.Rename(tmp, path)
}
