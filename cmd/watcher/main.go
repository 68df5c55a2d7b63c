package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"internwatch/internal/config"
	"internwatch/internal/notify"
	"internwatch/internal/scrape/simplify"
	"internwatch/internal/secrets"
	"internwatch/internal/store"
	"internwatch/internal/watch"
)

func main() {
	_ = godotenv.Load()

	// Data dir: use env if provided (scheduler can pass one), else local folder.
	dataDir := os.Getenv("WATCHER_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	cfgPath, err := config.EnsureUserConfig(dataDir)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", cfgPath, err)
	}
	config.OverlayEnv(&cfg)

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		log.Printf("[config] warning: %s", w)
	}
	if !res.OK() {
		log.Fatalf("config invalid:\n- %s", strings.Join(res.Errors, "\n- "))
	}

	password, err := secrets.SMTPPassword(cfg.SMTP.Username, cfg.SMTP.Host)
	if err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	// One invocation at a time; overlapping scheduler runs bail out here.
	lock := flock.New(filepath.Join(dataDir, "watcher.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Print("[watch] another run holds the lock; exiting")
		return
	}
	defer func() { _ = lock.Unlock() }()

	var archive *store.DB
	if db, err := store.Open(filepath.Join(dataDir, "archive.db")); err != nil {
		log.Printf("[archive] open failed: %v (continuing without archive)", err)
	} else if err := store.Migrate(db.Pool); err != nil {
		log.Printf("[archive] migrate failed: %v (continuing without archive)", err)
		_ = db.Close()
	} else {
		archive = db
		defer db.Close()
	}

	runner := &watch.Runner{
		Source:    simplify.New(cfg.Watch.URL, time.Duration(cfg.Watch.TimeoutSeconds)*time.Second),
		Sections:  mapSections(cfg.Watch.Sections),
		StatePath: filepath.Join(dataDir, "previous_internships.json"),
		Sender: notify.NewMailer(notify.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: password,
			From:     cfg.SMTP.From,
			To:       cfg.SMTP.To,
		}),
		Archive: archive,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := runner.RunOnce(ctx); err != nil {
		log.Fatalf("[watch] run failed: %v", err)
	}
	log.Print("[watch] run completed")
}

func mapSections(in []config.Section) []simplify.Section {
	out := make([]simplify.Section, 0, len(in))
	for _, s := range in {
		out = append(out, simplify.Section{Heading: s.Heading, Category: s.Category})
	}
	return out
}
