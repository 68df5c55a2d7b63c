package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string
	Warnings []string
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults and checks the transport settings the
// run cannot start without. Missing SMTP settings are errors: they must fail
// the process before any fetch happens.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	out := cfg
	var res Validation

	if strings.TrimSpace(out.Watch.URL) == "" {
		out.Watch.URL = DefaultWatchURL
	}
	if out.Watch.TimeoutSeconds <= 0 {
		out.Watch.TimeoutSeconds = 30
	} else if out.Watch.TimeoutSeconds < 5 {
		res.addWarn("watch.timeout_seconds is very low (%d); slow mirrors will look down.", out.Watch.TimeoutSeconds)
	}
	if len(out.Watch.Sections) == 0 {
		out.Watch.Sections = DefaultSections()
	}
	for i, s := range out.Watch.Sections {
		if strings.TrimSpace(s.Heading) == "" || strings.TrimSpace(s.Category) == "" {
			res.addErr("watch.sections[%d] needs both heading and category", i)
			continue
		}
		if !strings.HasPrefix(s.Heading, "#") {
			res.addWarn("watch.sections[%d].heading %q is not a markdown heading; it will never match.", i, s.Heading)
		}
	}

	if out.SMTP.Port == 0 {
		out.SMTP.Port = 465
	}
	if out.SMTP.Port < 1 || out.SMTP.Port > 65535 {
		res.addErr("smtp.port must be 1..65535")
	} else if out.SMTP.Port != 465 {
		res.addWarn("smtp.port %d is unusual; delivery uses implicit TLS (465).", out.SMTP.Port)
	}
	if strings.TrimSpace(out.SMTP.Host) == "" {
		res.addErr("smtp.host is required (or set SMTP_SERVER)")
	}
	if strings.TrimSpace(out.SMTP.Username) == "" {
		res.addErr("smtp.username is required (or set SMTP_USER)")
	}
	if strings.TrimSpace(out.SMTP.From) == "" {
		res.addErr("smtp.from is required (or set EMAIL_FROM)")
	}
	if strings.TrimSpace(out.SMTP.To) == "" {
		res.addErr("smtp.to is required (or set EMAIL_TO)")
	}

	return out, res
}
