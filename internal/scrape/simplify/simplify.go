package simplify

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const maxAttempts = 3

type Scraper struct {
	url     string
	hc      *http.Client
	limiter *rate.Limiter
}

func New(url string, timeout time.Duration) *Scraper {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Scraper{
		url: url,
		hc:  &http.Client{Timeout: timeout},
		// paces retries so a flapping endpoint isn't hammered
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

func (s *Scraper) Name() string { return "simplify" }

// Fetch downloads the document. Any failure after the retry budget aborts the
// caller's run; nothing downstream should happen on a failed fetch.
func (s *Scraper) Fetch(ctx context.Context) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
		body, err := s.fetchOnce(ctx)
		if err == nil {
			return body, nil
		}
		lastErr = err
		log.Printf("[fetch] attempt %d/%d failed: %v", attempt, maxAttempts, err)
	}
	return "", fmt.Errorf("fetch %s: %w", s.url, lastErr)
}

func (s *Scraper) fetchOnce(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", "internwatch/1.0 (+local)")

	res, err := s.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return "", fmt.Errorf("status %d", res.StatusCode)
	}

	b, err := io.ReadAll(io.LimitReader(res.Body, 20<<20))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
