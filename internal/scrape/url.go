package scrape

import (
	"fmt"
	"net/url"
	"strings"
)

// ResolveProfileURL turns a listing href into an absolute profile URL.
// Empty hrefs resolve to "", absolute ones pass through untouched, anything
// else joins against the listing base. Unparseable input counts as no link.
func ResolveProfileURL(href, base string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}

	b, err := url.Parse(base)
	if err != nil {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return b.ResolveReference(ref).String()
}

// PageURL builds the listing URL for a page index: page 1 is the bare base,
// later pages append the page query parameter.
func PageURL(base string, page int) string {
	if page <= 1 {
		return base
	}
	return fmt.Sprintf("%s?page=%d", base, page)
}
