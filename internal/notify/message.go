package notify

import (
	"fmt"
	"html"
	"strings"

	"internwatch/internal/listing"
)

// RepoURL points readers at the full README with application links.
const RepoURL = "https://github.com/SimplifyJobs/Summer2026-Internships"

func Subject(n int) string {
	return fmt.Sprintf("🚨 %d New Summer 2026 Internship(s) Found!", n)
}

// PlainBody renders the text/plain part. Callers only render when there is at
// least one new listing.
func PlainBody(ls []listing.Listing) string {
	var b strings.Builder
	b.WriteString("🚨 New Summer 2026 Internships Found!\n\n")
	fmt.Fprintf(&b, "Found %d new internship listing(s):\n\n", len(ls))

	for i, l := range ls {
		fmt.Fprintf(&b, "%d. %s - %s\n", i+1, l.Company, l.Role)
		fmt.Fprintf(&b, "   Location: %s\n", l.Location)
		fmt.Fprintf(&b, "   Category: %s\n", l.Category)
		if l.ApplyURL != "" {
			fmt.Fprintf(&b, "   Apply: %s\n", l.ApplyURL)
		}
		b.WriteString("\n")
	}

	b.WriteString("Check the full repository for application links:\n")
	b.WriteString(RepoURL + "\n\n")
	b.WriteString("This email was sent by your automated internship watcher.")
	return b.String()
}

// HTMLBody renders the text/html part: one table row per new listing.
func HTMLBody(ls []listing.Listing) string {
	var b strings.Builder
	b.WriteString("<html><head></head><body>\n")
	b.WriteString("<h2>🚨 New Summer 2026 Internships Found!</h2>\n")
	fmt.Fprintf(&b, "<p>Found %d new internship listing(s):</p>\n", len(ls))
	b.WriteString(`<table border="1" style="border-collapse: collapse; width: 100%;">` + "\n")
	b.WriteString(`<tr style="background-color: #f2f2f2;">` +
		`<th style="padding: 8px;">Company</th>` +
		`<th style="padding: 8px;">Role</th>` +
		`<th style="padding: 8px;">Location</th>` +
		`<th style="padding: 8px;">Category</th>` +
		`<th style="padding: 8px;">Apply</th></tr>` + "\n")

	for _, l := range ls {
		apply := ""
		if l.ApplyURL != "" {
			apply = fmt.Sprintf(`<a href="%s">link</a>`, html.EscapeString(l.ApplyURL))
		}
		fmt.Fprintf(&b,
			`<tr><td style="padding: 8px;">%s</td><td style="padding: 8px;">%s</td>`+
				`<td style="padding: 8px;">%s</td><td style="padding: 8px;">%s</td>`+
				`<td style="padding: 8px;">%s</td></tr>`+"\n",
			html.EscapeString(l.Company),
			html.EscapeString(l.Role),
			html.EscapeString(l.Location),
			html.EscapeString(l.Category),
			apply,
		)
	}

	b.WriteString("</table>\n<br>\n")
	fmt.Fprintf(&b, `<p>Check the full repository for application links: <a href="%s">Summer 2026 Internships Repository</a></p>`+"\n", RepoURL)
	b.WriteString("<p><em>This email was sent by your automated internship watcher.</em></p>\n")
	b.WriteString("</body></html>\n")
	return b.String()
}
