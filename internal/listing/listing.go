package listing

import (
	"strings"
	"time"
)

// Listing is one internship row extracted from the README.
type Listing struct {
	ID         string    `json:"id"`
	Company    string    `json:"company"`
	Role       string    `json:"role"`
	Location   string    `json:"location"`
	Category   string    `json:"category"`
	ApplyURL   string    `json:"apply_url,omitempty"`
	ObservedAt time.Time `json:"observed_at"`
}

var idReplacer = strings.NewReplacer(" ", "_", "/", "_", ",", "_")

// ID builds the dedup key for a listing. It is a plain string substitution,
// not a hash: two listings that differ only in spaces, slashes or commas
// collapse to the same key. Good enough for set membership across runs.
func ID(company, role, location, category string) string {
	raw := company + "_" + role + "_" + location + "_" + category
	return idReplacer.Replace(raw)
}

// New builds a Listing with its ID precomputed. ObservedAt is informational
// only and never feeds the ID.
func New(company, role, location, category string) Listing {
	return Listing{
		ID:         ID(company, role, location, category),
		Company:    company,
		Role:       role,
		Location:   location,
		Category:   category,
		ObservedAt: time.Now().UTC(),
	}
}
