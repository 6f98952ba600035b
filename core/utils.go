package core

import (
	"html"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	htmlRemover    = bluemonday.StrictPolicy()
	spaceCollapser = regexp.MustCompile(`\s+`)
)

// plainText reduces a metadata value to a clean single line for reports and
// logs. Generated pages never go through this: they carry values verbatim.
func plainText(text string) string {
	text = htmlRemover.Sanitize(text)
	text = html.UnescapeString(text)
	text = spaceCollapser.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

func truncateString(str string, length int) string {
	if length <= 0 {
		return ""
	}

	runes := []rune(str)
	if len(runes) <= length {
		return str
	}

	return strings.TrimSpace(string(runes[:length]))
}

func truncateStringWithEllipsis(str string, length int) string {
	str = strings.TrimSpace(str)
	truncated := truncateString(str, length)
	if truncated != str {
		truncated += "…"
	}
	return truncated
}
