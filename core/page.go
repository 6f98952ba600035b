package core

import (
	"fmt"
	"strings"

	"go.hacdias.com/signpost/opengraph"
)

// redirectPage renders the HTML document for a redirect to url. The refresh
// directive always comes first, followed by the Open Graph tags in their
// given order. URL and property values are embedded verbatim.
func redirectPage(url string, props opengraph.Properties) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n")
	b.WriteString("<head>\n")
	b.WriteString("    <meta charset=\"UTF-8\">\n")
	b.WriteString("    <title>Redirecting...</title>\n")
	fmt.Fprintf(&b, "    <meta http-equiv=\"refresh\" content=\"0; url=%s\">\n", url)

	for _, p := range props {
		fmt.Fprintf(&b, "    <meta property=\"%s\" content=\"%s\">\n", p.Name, p.Content)
	}

	b.WriteString("</head>\n")
	fmt.Fprintf(&b, "<body><p>Redirecting to <a href=\"%s\">%s</a>.</p></body>\n", url, url)
	b.WriteString("</html>\n")

	return b.String()
}
