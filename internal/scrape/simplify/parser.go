package simplify

import (
	"strings"

	"internwatch/internal/listing"
)

// Section pairs a literal heading line in the README with the category label
// recorded on listings extracted under it.
type Section struct {
	Heading  string
	Category string
}

// arrowMarker flags a continuation row: same company as the previous row.
const arrowMarker = "↳"

// Stats counts what the parser dropped on the floor. Parsing itself never
// fails; a structurally odd row just doesn't become a listing.
type Stats struct {
	SkippedRows int
}

// Parse extracts listings from the fetched document, section by section, in
// the order the sections are declared. Headings are matched literally (emoji
// included); a renamed upstream heading yields zero listings for that
// category rather than an error. If the document turns out to be rendered
// HTML instead of raw markdown, the goquery fallback takes over.
func Parse(doc string, sections []Section) ([]listing.Listing, Stats) {
	var st Stats
	if looksLikeHTML(doc) {
		return parseHTML(doc, sections, &st), st
	}
	var out []listing.Listing
	for _, sec := range sections {
		body := captureSection(doc, sec.Heading)
		if body == "" {
			continue
		}
		out = append(out, parseSection(body, sec.Category, &st)...)
	}
	return out, st
}

// captureSection returns the lines from the heading up to the next heading of
// the same markdown level, or end of document.
func captureSection(doc, heading string) string {
	lines := strings.Split(doc, "\n")
	start := -1
	for i, ln := range lines {
		if strings.TrimSpace(ln) == heading {
			start = i
			break
		}
	}
	if start < 0 {
		return ""
	}
	level := headingLevel(heading)
	for i := start + 1; i < len(lines); i++ {
		if headingLevel(strings.TrimSpace(lines[i])) == level {
			return strings.Join(lines[start:i], "\n")
		}
	}
	return strings.Join(lines[start:], "\n")
}

func headingLevel(line string) int {
	n := 0
	for n < len(line) && line[n] == '#' {
		n++
	}
	if n == 0 || n >= len(line) || line[n] != ' ' {
		return 0
	}
	return n
}

// parseSection walks a section's lines once. Before the header row everything
// is ignored; after it, every well-formed pipe row becomes a listing. The
// section is assumed to hold at most one logical table.
func parseSection(section, category string, st *Stats) []listing.Listing {
	var out []listing.Listing
	inTable := false
	currentCompany := ""

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if !strings.HasPrefix(line, "|") || strings.Contains(line, "---") {
			continue
		}
		if strings.Contains(line, "Company") && strings.Contains(line, "Role") {
			inTable = true
			continue
		}
		if !inTable {
			continue
		}

		parts := strings.Split(line, "|")
		if len(parts) < 5 {
			// too few cells to even check for a continuation marker
			st.SkippedRows++
			continue
		}
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}

		company := NormalizeCell(parts[1])
		role := NormalizeCell(parts[2])
		location := NormalizeCell(parts[3])

		if strings.HasPrefix(company, arrowMarker) {
			company = currentCompany
		} else if company != "" {
			currentCompany = company
		}

		if company == "" || role == "" {
			st.SkippedRows++
			continue
		}

		l := listing.New(company, role, location, category)
		l.ApplyURL = applyURLFrom(parts[4])
		out = append(out, l)
	}
	return out
}
