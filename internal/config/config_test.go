package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserConfigWritesDefault(t *testing.T) {
	dir := t.TempDir()

	path, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.yml"), path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultWatchURL, cfg.Watch.URL)
	assert.Equal(t, 465, cfg.SMTP.Port)

	// second call leaves the existing file alone
	require.NoError(t, os.WriteFile(path, []byte("watch:\n  url: \"https://mirror.example/README.md\"\n"), 0o644))
	path2, err := EnsureUserConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, path, path2)
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://mirror.example/README.md", cfg.Watch.URL)
}

func TestOverlayEnv(t *testing.T) {
	t.Setenv("WATCH_URL", "https://mirror.example/README.md")
	t.Setenv("SMTP_SERVER", "smtp.example.org")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_USER", "watcher")
	t.Setenv("EMAIL_FROM", "watcher@example.org")
	t.Setenv("EMAIL_TO", "me@example.org")

	var cfg Config
	cfg.SMTP.Host = "file-value.example.org"
	OverlayEnv(&cfg)

	assert.Equal(t, "https://mirror.example/README.md", cfg.Watch.URL)
	assert.Equal(t, "smtp.example.org", cfg.SMTP.Host, "env wins over file")
	assert.Equal(t, 465, cfg.SMTP.Port)
	assert.Equal(t, "watcher", cfg.SMTP.Username)
	assert.Equal(t, "watcher@example.org", cfg.SMTP.From)
	assert.Equal(t, "me@example.org", cfg.SMTP.To)
}

func TestOverlayEnvIgnoresBadPort(t *testing.T) {
	t.Setenv("SMTP_PORT", "not-a-number")
	var cfg Config
	cfg.SMTP.Port = 465
	OverlayEnv(&cfg)
	assert.Equal(t, 465, cfg.SMTP.Port)
}

func TestNormalizeAndValidateDefaults(t *testing.T) {
	var cfg Config
	cfg.SMTP.Host = "smtp.example.org"
	cfg.SMTP.Username = "watcher"
	cfg.SMTP.From = "watcher@example.org"
	cfg.SMTP.To = "me@example.org"

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK(), "errors: %v", res.Errors)
	assert.Equal(t, DefaultWatchURL, out.Watch.URL)
	assert.Equal(t, 30, out.Watch.TimeoutSeconds)
	assert.Equal(t, 465, out.SMTP.Port)
	assert.Len(t, out.Watch.Sections, 4)
}

func TestNormalizeAndValidateMissingTransport(t *testing.T) {
	var cfg Config
	_, res := NormalizeAndValidate(cfg)

	require.False(t, res.OK())
	assert.Len(t, res.Errors, 4, "host, username, from and to are all required")
}

func TestNormalizeAndValidateWarnings(t *testing.T) {
	var cfg Config
	cfg.Watch.TimeoutSeconds = 2
	cfg.SMTP.Host = "smtp.example.org"
	cfg.SMTP.Port = 587
	cfg.SMTP.Username = "watcher"
	cfg.SMTP.From = "watcher@example.org"
	cfg.SMTP.To = "me@example.org"
	cfg.Watch.Sections = []Section{{Heading: "no hashes here", Category: "X"}}

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Len(t, res.Warnings, 3)
	assert.Equal(t, 2, out.Watch.TimeoutSeconds)
}
