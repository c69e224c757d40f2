package domain

// ListingEntry is one company as it appears on a listing page.
// Produced per page and consumed immediately; not retained.
type ListingEntry struct {
	Name            string
	ProfileHref     string // relative or absolute; "" when the name has no enclosing link
	ListingLocation string // "" when the page has fewer location blocks than names
}

// CompanyRecord is the exported unit, one CSV row.
type CompanyRecord struct {
	Name       string
	ProfileURL string // absolute; "" when the listing carried no profile link
	Geo        string
	Emails     string // semicolon-joined, possibly empty
	Phones     string // semicolon-joined E.164, possibly empty
}
