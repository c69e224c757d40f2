package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	s = strings.Join(strings.Fields(s), " ")
	return strings.TrimSpace(s)
}

// JoinedText walks the selection's text nodes in document order, trims each,
// drops the empty ones and joins the rest with sep. Markup like
// <div>New York<span>US</span></div> comes out as "New York, US" instead of
// the smashed-together form plain Text() would give.
func JoinedText(sel *goquery.Selection, sep string) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := CleanText(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, sep)
}
