package util

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "Acme Co", CleanText("  Acme\u00a0 Co \n"))
	assert.Equal(t, "one two three", CleanText("one\n\ttwo   three"))
	assert.Equal(t, "", CleanText(" \u00a0 "))
}

func sel(t *testing.T, markup, selector string) *goquery.Selection {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc.Find(selector)
}

func TestJoinedTextSingleNode(t *testing.T) {
	s := sel(t, `<div class="loc">New York, US</div>`, "div.loc")
	assert.Equal(t, "New York, US", JoinedText(s, ", "))
}

func TestJoinedTextNestedNodes(t *testing.T) {
	s := sel(t, `<div class="loc"><span>New York</span> <span>US</span></div>`, "div.loc")
	assert.Equal(t, "New York, US", JoinedText(s, ", "))
}

func TestJoinedTextSkipsEmptyNodes(t *testing.T) {
	s := sel(t, "<div class=\"loc\">\n\t<em>Berlin</em>\n\t<em>Germany</em>\n</div>", "div.loc")
	assert.Equal(t, "Berlin, Germany", JoinedText(s, ", "))
}

func TestJoinedTextEmptySelection(t *testing.T) {
	s := sel(t, `<div>nothing here</div>`, "div.loc")
	assert.Equal(t, "", JoinedText(s, ", "))
}
