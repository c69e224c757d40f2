package scrape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingPairsNamesWithLocations(t *testing.T) {
	html := `<html><body>
		<a href="/company/acme"><span itemprop="name">Acme Analytics</span></a>
		<div class="firm-location"><span>New York</span> <span>US</span></div>
		<a href="https://example.com/beta"><span itemprop="name">Beta Data</span></a>
		<div class="firm-location">London, UK</div>
		<span itemprop="name">Gamma Insights</span>
	</body></html>`

	entries, err := ParseListing(html)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Acme Analytics", entries[0].Name)
	assert.Equal(t, "/company/acme", entries[0].ProfileHref)
	assert.Equal(t, "New York, US", entries[0].ListingLocation)

	assert.Equal(t, "Beta Data", entries[1].Name)
	assert.Equal(t, "https://example.com/beta", entries[1].ProfileHref)
	assert.Equal(t, "London, UK", entries[1].ListingLocation)

	// Third name has no anchor and no matching location div.
	assert.Equal(t, "Gamma Insights", entries[2].Name)
	assert.Empty(t, entries[2].ProfileHref)
	assert.Empty(t, entries[2].ListingLocation)
}

func TestParseListingNoAnchorMeansNoHref(t *testing.T) {
	html := `<div><span itemprop="name">Orphan Co</span></div>
		<div class="firm-location">Berlin, DE</div>`

	entries, err := ParseListing(html)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Orphan Co", entries[0].Name)
	assert.Empty(t, entries[0].ProfileHref)
	assert.Equal(t, "Berlin, DE", entries[0].ListingLocation)
}

func TestParseListingNormalizesWhitespaceInNames(t *testing.T) {
	html := `<a href="/x"><span itemprop="name">  Acme&nbsp;&nbsp;Analytics
		Corp  </span></a>`

	entries, err := ParseListing(html)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Acme Analytics Corp", entries[0].Name)
}

func TestParseListingNestedAnchorStillFound(t *testing.T) {
	// The name span is not a direct child of the anchor.
	html := `<a href="/company/deep"><div><span itemprop="name">Deep Nest</span></div></a>`

	entries, err := ParseListing(html)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/company/deep", entries[0].ProfileHref)
}

func TestParseListingEmptyPage(t *testing.T) {
	entries, err := ParseListing("<html><body><p>No results.</p></body></html>")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestParseListingMoreLocationsThanNames(t *testing.T) {
	html := `<a href="/a"><span itemprop="name">Solo</span></a>
		<div class="firm-location">Paris, FR</div>
		<div class="firm-location">Madrid, ES</div>`

	entries, err := ParseListing(html)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "Paris, FR", entries[0].ListingLocation)
}
