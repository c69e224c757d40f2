package scrape

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"firmscrape/internal/domain"
	"firmscrape/internal/scrape/util"
)

// ParseListing extracts company entries from one listing page.
//
// The Nth name span is paired with the Nth firm-location div by position,
// not by DOM proximity; when the page carries fewer location divs than name
// spans the trailing entries get no location. The pairing is fragile against
// markup changes upstream but is kept as-is: "fixing" it would silently
// reshuffle locations on pages where the counts happen to diverge.
func ParseListing(html string) ([]domain.ListingEntry, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse listing html: %w", err)
	}

	locs := doc.Find("div.firm-location")

	var entries []domain.ListingEntry
	doc.Find("span[itemprop=name]").Each(func(i int, span *goquery.Selection) {
		e := domain.ListingEntry{Name: util.CleanText(span.Text())}

		if a := span.Closest("a"); a.Length() > 0 {
			if href, ok := a.Attr("href"); ok {
				e.ProfileHref = strings.TrimSpace(href)
			}
		}

		if i < locs.Length() {
			e.ListingLocation = util.JoinedText(locs.Eq(i), ", ")
		}

		entries = append(entries, e)
	})

	return entries, nil
}
