package config

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Section pairs a literal README heading with the category label stamped on
// listings found under it.
type Section struct {
	Heading  string `yaml:"heading"`
	Category string `yaml:"category"`
}

type Config struct {
	Watch struct {
		URL            string    `yaml:"url"`
		TimeoutSeconds int       `yaml:"timeout_seconds"`
		Sections       []Section `yaml:"sections"`
	} `yaml:"watch"`

	SMTP struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		Username string `yaml:"username"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"smtp"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// OverlayEnv applies the deployment's environment contract on top of the file
// config. Env wins where set; the password never lives here (see secrets).
func OverlayEnv(cfg *Config) {
	if v := os.Getenv("WATCH_URL"); v != "" {
		cfg.Watch.URL = v
	}
	if v := os.Getenv("SMTP_SERVER"); v != "" {
		cfg.SMTP.Host = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.SMTP.Port = p
		}
	}
	if v := os.Getenv("SMTP_USER"); v != "" {
		cfg.SMTP.Username = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.SMTP.From = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		cfg.SMTP.To = v
	}
}

// DefaultSections lists the README sections the watcher knows about. Heading
// matches are literal, emoji included.
func DefaultSections() []Section {
	return []Section{
		{Heading: "## 💻 Software Engineering Internship Roles", Category: "Software Engineering"},
		{Heading: "## 📈 Quantitative Finance Internship Roles", Category: "Quantitative Finance"},
		{Heading: "## 🔧 Hardware Engineering Internship Roles", Category: "Hardware Engineering"},
		{Heading: "## 🤖 Data Science, AI & Machine Learning", Category: "Data Science, AI & ML"},
	}
}
