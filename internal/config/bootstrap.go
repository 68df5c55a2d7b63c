package config

import (
	"errors"
	"os"
	"path/filepath"
)

// DefaultWatchURL is the raw README tracked out of the box.
const DefaultWatchURL = "https://raw.githubusercontent.com/SimplifyJobs/Summer2026-Internships/dev/README.md"

const defaultYAML = `# internwatch configuration.
# SMTP_SERVER, SMTP_PORT, SMTP_USER, SMTP_PASS, EMAIL_FROM, EMAIL_TO and
# WATCH_URL environment variables override the values here.
watch:
  url: "` + DefaultWatchURL + `"
  timeout_seconds: 30
  # sections: omit to track the default set of README sections.

smtp:
  host: ""
  port: 465
  username: ""
  from: ""
  to: ""
`

// EnsureUserConfig writes a starter config into dataDir on first run and
// returns its path.
func EnsureUserConfig(dataDir string) (string, error) {
	userPath := filepath.Join(dataDir, "config.yml")

	_, err := os.Stat(userPath)
	if err == nil {
		return userPath, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(userPath, []byte(defaultYAML), 0o644); err != nil {
		return "", err
	}
	return userPath, nil
}
