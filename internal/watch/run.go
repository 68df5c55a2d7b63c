package watch

import (
	"context"
	"fmt"
	"log"
	"time"

	"internwatch/internal/listing"
	"internwatch/internal/notify"
	"internwatch/internal/scrape/simplify"
	"internwatch/internal/state"
	"internwatch/internal/store"
)

type Source interface {
	Name() string
	Fetch(ctx context.Context) (string, error)
}

type Sender interface {
	Send(subject, plainBody, htmlBody string) error
}

// Runner performs one fetch → parse → diff → persist → notify pass.
type Runner struct {
	Source    Source
	Sections  []simplify.Section
	StatePath string
	Sender    Sender
	Archive   *store.DB // optional
}

type Summary struct {
	Parsed      int
	New         int
	SkippedRows int
	Notified    bool
}

// RunOnce drives a single invocation. A fetch failure aborts everything
// downstream: nothing is saved, nothing is sent. After the snapshot is
// replaced, send and archive failures are logged and swallowed.
func (r *Runner) RunOnce(ctx context.Context) (Summary, error) {
	var sum Summary

	log.Printf("[watch] checking %s for new internships...", r.Source.Name())
	doc, err := r.Source.Fetch(ctx)
	if err != nil {
		return sum, fmt.Errorf("fetch: %w", err)
	}

	current, stats := simplify.Parse(doc, r.Sections)
	sum.Parsed = len(current)
	sum.SkippedRows = stats.SkippedRows
	if stats.SkippedRows > 0 {
		log.Printf("[watch] skipped %d malformed row(s)", stats.SkippedRows)
	}

	prev := state.Load(r.StatePath)
	fresh := listing.DiffNew(current, prev.IDSet())
	sum.New = len(fresh)

	// Snapshot first, then mail: a failed send is logged, never retried, and
	// never rolls the saved state back.
	if err := state.Save(r.StatePath, state.FromListings(current)); err != nil {
		log.Printf("[state] save failed: %v (continuing)", err)
	}

	if len(fresh) > 0 {
		log.Printf("[watch] found %d new internship(s)", len(fresh))
		for _, l := range fresh {
			log.Printf("[watch] new: %s - %s (%s)", l.Company, l.Role, l.Location)
		}
		subject := notify.Subject(len(fresh))
		if err := r.Sender.Send(subject, notify.PlainBody(fresh), notify.HTMLBody(fresh)); err != nil {
			log.Printf("[notify] send failed: %v", err)
		} else {
			sum.Notified = true
			log.Printf("[notify] sent for %d new internship(s)", len(fresh))
		}
	} else {
		log.Print("[watch] no new internships found")
	}

	r.recordArchive(ctx, current, sum)

	log.Printf("[watch] total internships tracked: %d", len(current))
	return sum, nil
}

func (r *Runner) recordArchive(ctx context.Context, current []listing.Listing, sum Summary) {
	if r.Archive == nil {
		return
	}
	for _, l := range current {
		if _, err := r.Archive.UpsertListing(ctx, l); err != nil {
			log.Printf("[archive] upsert %s: %v", l.ID, err)
			return
		}
	}
	st := store.RunStats{
		RanAt:       time.Now().UTC(),
		Parsed:      sum.Parsed,
		New:         sum.New,
		SkippedRows: sum.SkippedRows,
		Notified:    sum.Notified,
	}
	if err := r.Archive.RecordRun(ctx, st); err != nil {
		log.Printf("[archive] record run: %v", err)
		return
	}
	if n, err := r.Archive.CountListings(ctx); err == nil {
		log.Printf("[archive] all-time internships seen: %d", n)
	}
}
