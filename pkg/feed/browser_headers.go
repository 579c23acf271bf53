package feed

import (
	"math/rand"
	"net/http"
)

// acceptLanguages rotated per request, some feed hosts vary responses by language
var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-IN,en;q=0.9,hi;q=0.7",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.8",
}

// addBrowserHeaders sets headers that make the request look like a regular
// feed reader client. Several Indian news sites return 403 to bare Go clients.
func addBrowserHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,text/html;q=0.7,*/*;q=0.5")
	req.Header.Set("Accept-Language", acceptLanguages[rand.Intn(len(acceptLanguages))]) //nolint:gosec // weak rand is fine for header rotation
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "keep-alive")
}
