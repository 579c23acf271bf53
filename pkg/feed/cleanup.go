package feed

import (
	"html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicy  = bluemonday.StrictPolicy()
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// CleanText converts a feed field that may contain HTML into plain text.
// Script and style contents are dropped, entities decoded, whitespace collapsed.
func CleanText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	text := trimmed
	if strings.Contains(trimmed, "<") {
		if doc, err := goquery.NewDocumentFromReader(strings.NewReader(trimmed)); err == nil {
			doc.Find("script, style, noscript, iframe").Remove()
			text = doc.Text()
		} else {
			// malformed markup, strip tags without building a document
			text = html.UnescapeString(stripPolicy.Sanitize(trimmed))
		}
	} else {
		text = html.UnescapeString(text)
	}
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
