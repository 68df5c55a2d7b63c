package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"internwatch/internal/listing"
)

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "previous_internships.json")

	ls := []listing.Listing{
		listing.New("Acme", "SWE Intern", "NYC", "Software Engineering"),
		listing.New("Globex", "Platform Intern", "SF", "Software Engineering"),
	}
	snap := FromListings(ls)
	require.NoError(t, Save(path, snap))

	got := Load(path)
	require.Len(t, got.Listings, 2)
	assert.Equal(t, snap.ListingIDs, got.ListingIDs)
	assert.Equal(t, "Acme", got.Listings[0].Company)
	assert.False(t, got.LastUpdated.IsZero())
}

func TestLoadMissingFile(t *testing.T) {
	got := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, got.Listings)
	assert.Empty(t, got.IDSet())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	got := Load(path)
	assert.Empty(t, got.Listings)
	assert.Empty(t, got.ListingIDs)
}

func TestIDSetFallsBackToListings(t *testing.T) {
	l := listing.New("Acme", "SWE Intern", "NYC", "Software Engineering")
	snap := Snapshot{Listings: []listing.Listing{l}}

	ids := snap.IDSet()
	assert.True(t, ids[l.ID])
}

func TestSaveReplacesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	first := FromListings([]listing.Listing{
		listing.New("Acme", "SWE Intern", "NYC", "Software Engineering"),
	})
	require.NoError(t, Save(path, first))

	second := FromListings([]listing.Listing{
		listing.New("Globex", "Platform Intern", "SF", "Software Engineering"),
	})
	require.NoError(t, Save(path, second))

	got := Load(path)
	require.Len(t, got.Listings, 1)
	assert.Equal(t, "Globex", got.Listings[0].Company)
}
