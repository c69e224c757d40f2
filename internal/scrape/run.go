package scrape

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"firmscrape/internal/domain"
	"firmscrape/internal/fetch"
	"firmscrape/pkg/logger"
)

// Getter fetches one URL. Satisfied by fetch.Client.
type Getter interface {
	Get(ctx context.Context, url string) (*fetch.Response, error)
}

// EmailFilter narrows an extracted email list, e.g. to MX-verified domains.
type EmailFilter interface {
	FilterVerified(ctx context.Context, emails []string) []string
}

// Config drives one scrape run.
type Config struct {
	BaseURL string
	Pages   int
	Delay   time.Duration
	Region  string // phone region hint for numbers without a +CC prefix

	// ContinueOnProfileError keeps the run alive when a profile visit
	// fails; the company is still emitted, with empty contacts. When
	// false the first profile failure aborts the whole run.
	ContinueOnProfileError bool
}

// Runner walks the listing pages and enriches each company from its
// profile page. Listing pages are fetched strictly in order; a listing
// failure is fatal because every later page would shift anyway.
type Runner struct {
	cfg      Config
	getter   Getter
	filter   EmailFilter
	progress io.Writer
	sleep    func(time.Duration)
}

// Option configures a Runner.
type Option func(*Runner)

// WithProgress directs the human-readable progress feed. Discarded by default.
func WithProgress(w io.Writer) Option {
	return func(r *Runner) {
		if w != nil {
			r.progress = w
		}
	}
}

// WithSleep replaces the inter-request pause, mainly for tests.
func WithSleep(fn func(time.Duration)) Option {
	return func(r *Runner) {
		if fn != nil {
			r.sleep = fn
		}
	}
}

// WithEmailFilter post-filters extracted emails before they reach the record.
func WithEmailFilter(f EmailFilter) Option {
	return func(r *Runner) {
		r.filter = f
	}
}

// NewRunner wires a runner over the given fetcher.
func NewRunner(cfg Config, getter Getter, opts ...Option) *Runner {
	r := &Runner{
		cfg:      cfg,
		getter:   getter,
		progress: io.Discard,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run fetches the configured number of listing pages and returns one
// record per company found, in listing order.
func (r *Runner) Run(ctx context.Context) ([]domain.CompanyRecord, error) {
	var records []domain.CompanyRecord

	for page := 1; page <= r.cfg.Pages; page++ {
		pageURL := PageURL(r.cfg.BaseURL, page)
		fmt.Fprintf(r.progress, "Fetching listing page: %s\n", pageURL)

		res, err := r.getter.Get(ctx, pageURL)
		if err != nil {
			return nil, fmt.Errorf("listing page %d: %w", page, err)
		}

		entries, err := ParseListing(string(res.Body))
		if err != nil {
			return nil, fmt.Errorf("listing page %d: %w", page, err)
		}
		fmt.Fprintf(r.progress, "  found %d company name entries on page %d\n", len(entries), page)

		for _, e := range entries {
			rec := domain.CompanyRecord{
				Name:       e.Name,
				ProfileURL: ResolveProfileURL(e.ProfileHref, r.cfg.BaseURL),
				Geo:        e.ListingLocation,
			}

			if rec.ProfileURL != "" {
				fmt.Fprintf(r.progress, "    Visiting profile: %s\n", rec.ProfileURL)
				emails, phones, err := r.visitProfile(ctx, rec.ProfileURL)
				// Pace requests even after a failed visit.
				r.sleep(r.cfg.Delay)
				if err != nil {
					if !r.cfg.ContinueOnProfileError {
						return nil, fmt.Errorf("profile %s: %w", rec.ProfileURL, err)
					}
					logger.Log.Debug().Str("url", rec.ProfileURL).Err(err).Msg("profile visit failed")
					fmt.Fprintf(r.progress, "      Failed to fetch profile %s: %v\n", rec.ProfileURL, err)
				} else {
					rec.Emails = strings.Join(emails, "; ")
					rec.Phones = strings.Join(phones, "; ")
				}
			}

			records = append(records, rec)
		}

		r.sleep(r.cfg.Delay)
	}

	return records, nil
}

func (r *Runner) visitProfile(ctx context.Context, url string) (emails, phones []string, err error) {
	res, err := r.getter.Get(ctx, url)
	if err != nil {
		return nil, nil, err
	}

	raw := string(res.Body)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, nil, fmt.Errorf("parse profile html: %w", err)
	}

	emails = ExtractEmails(doc, raw)
	if r.filter != nil {
		emails = r.filter.FilterVerified(ctx, emails)
	}
	phones = ExtractPhones(doc, doc.Text(), r.cfg.Region)
	return emails, phones, nil
}
