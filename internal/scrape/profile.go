package scrape

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"firmscrape/internal/contact"
)

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`\+?\d[\d\s().\-/]{5,}\d`)
)

// ExtractEmails pulls addresses from a profile page: first from mailto
// anchors, then from anywhere in the raw markup. Addresses hidden in
// attributes or scripts count too. Returns a sorted set.
func ExtractEmails(doc *goquery.Document, rawHTML string) []string {
	seen := make(map[string]struct{})

	doc.Find("a[href^=mailto]").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		if m := reEmail.FindString(href); m != "" {
			seen[m] = struct{}{}
		}
	})

	for _, m := range reEmail.FindAllString(rawHTML, -1) {
		seen[m] = struct{}{}
	}

	return sortedSet(seen)
}

// ExtractPhones pulls dialable numbers from a profile page: tel anchors
// plus phone-shaped runs in the visible text. Every candidate must
// survive E.164 normalization, which discards years, prices and other
// digit noise the text scan picks up. Returns a sorted set.
func ExtractPhones(doc *goquery.Document, rawText, region string) []string {
	seen := make(map[string]struct{})

	add := func(raw string) {
		if num := contact.NormalizePhone(raw, region); num != "" {
			seen[num] = struct{}{}
		}
	}

	// Scheme match is done here, not in the selector, so TEL: and Tel:
	// hrefs count too. CSS attribute matching is case-sensitive.
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if !strings.HasPrefix(strings.ToLower(href), "tel:") {
			return
		}
		add(href[4:])
	})

	for _, m := range rePhone.FindAllString(rawText, -1) {
		add(m)
	}

	return sortedSet(seen)
}

func sortedSet(seen map[string]struct{}) []string {
	if len(seen) == 0 {
		return nil
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
