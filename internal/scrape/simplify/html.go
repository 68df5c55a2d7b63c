package simplify

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"internwatch/internal/listing"
)

// looksLikeHTML sniffs whether we got a rendered page instead of the raw
// markdown (someone pointed the watcher at the repo page, or the host started
// serving HTML).
func looksLikeHTML(doc string) bool {
	head := doc
	if len(head) > 2048 {
		head = head[:2048]
	}
	head = strings.ToLower(head)
	return strings.Contains(head, "<!doctype html") || strings.Contains(head, "<html")
}

// parseHTML is the best-effort fallback for rendered documents: sections are
// located by heading text, rows read from the following <table>. Cells go
// through the same normalizer as markdown cells, so <br>-separated locations
// still come out comma-joined.
func parseHTML(doc string, sections []Section, st *Stats) []listing.Listing {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc))
	if err != nil {
		return nil
	}

	var out []listing.Listing
	for _, sec := range sections {
		h := findHeading(gq, headingText(sec.Heading))
		if h == nil {
			continue
		}
		table := h.NextUntil("h1, h2, h3").Filter("table").First()
		if table.Length() == 0 {
			continue
		}
		out = append(out, parseHTMLTable(table, sec.Category, st)...)
	}
	return out
}

func parseHTMLTable(table *goquery.Selection, category string, st *Stats) []listing.Listing {
	var out []listing.Listing
	currentCompany := ""

	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() == 0 {
			return // header row
		}
		if cells.Length() < 4 {
			st.SkippedRows++
			return
		}

		company := normalizeHTMLCell(cells.Eq(0))
		role := normalizeHTMLCell(cells.Eq(1))
		location := normalizeHTMLCell(cells.Eq(2))

		if strings.HasPrefix(company, arrowMarker) {
			company = currentCompany
		} else if company != "" {
			currentCompany = company
		}

		if company == "" || role == "" {
			st.SkippedRows++
			return
		}

		l := listing.New(company, role, location, category)
		if href, ok := cells.Eq(3).Find("a[href]").First().Attr("href"); ok {
			l.ApplyURL = strings.TrimSpace(href)
		}
		out = append(out, l)
	})
	return out
}

func normalizeHTMLCell(cell *goquery.Selection) string {
	h, err := cell.Html()
	if err != nil {
		return NormalizeCell(cell.Text())
	}
	return NormalizeCell(h)
}

// headingText strips the markdown heading prefix so "## 💻 Software ..."
// matches the rendered <h2> text.
func headingText(heading string) string {
	return strings.TrimSpace(strings.TrimLeft(heading, "#"))
}

func findHeading(doc *goquery.Document, title string) *goquery.Selection {
	var found *goquery.Selection
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, h *goquery.Selection) bool {
		if strings.Join(strings.Fields(h.Text()), " ") == title {
			found = h
			return false
		}
		return true
	})
	return found
}
