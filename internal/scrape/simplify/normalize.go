package simplify

import (
	"regexp"
	"strings"
)

var (
	reLink    = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	reBold    = regexp.MustCompile(`\*\*([^*]*)\*\*`)
	reBreak   = regexp.MustCompile(`(?i)<\s*/?\s*br\s*/?\s*>`)
	reTag     = regexp.MustCompile(`<[^>]+>`)
	reLinkURL = regexp.MustCompile(`\[[^\]]*\]\(([^)]+)\)`)
	reHref    = regexp.MustCompile(`(?i)href=["']([^"']+)["']`)
)

// NormalizeCell strips markdown and HTML decoration from one table cell.
// Order matters: break tags have to become separators before the generic tag
// strip eats them, and link labels must survive the bold strip.
func NormalizeCell(raw string) string {
	s := reLink.ReplaceAllString(raw, "$1")
	s = reBold.ReplaceAllString(s, "$1")
	s = reBreak.ReplaceAllString(s, ", ")
	s = reTag.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}

// applyURLFrom pulls the first link target out of a raw application cell,
// whichever syntax the upstream README used for it.
func applyURLFrom(raw string) string {
	if m := reHref.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := reLinkURL.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
