package contact

import (
	"context"
	"sync"
	"time"

	"github.com/miekg/dns"
)

var defaultDNSServers = []string{"8.8.8.8:53", "1.1.1.1:53"}

const mxQueryTimeout = 3 * time.Second

// LookupFunc answers whether a domain publishes at least one MX record.
type LookupFunc func(ctx context.Context, domain string) bool

// MXVerifier checks mail domains for MX records, caching one answer per
// domain so a page full of addresses at the same host costs one query.
type MXVerifier struct {
	lookup LookupFunc

	mu    sync.Mutex
	cache map[string]bool
}

// MXVerifierOption configures optional dependencies.
type MXVerifierOption func(*MXVerifier)

// WithLookup overrides the DNS lookup, mainly for tests.
func WithLookup(fn LookupFunc) MXVerifierOption {
	return func(v *MXVerifier) {
		if fn != nil {
			v.lookup = fn
		}
	}
}

// NewMXVerifier builds a verifier that queries public resolvers.
func NewMXVerifier(opts ...MXVerifierOption) *MXVerifier {
	v := &MXVerifier{
		lookup: lookupMX,
		cache:  make(map[string]bool),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// HasMX reports whether the domain publishes MX records. A failed
// lookup counts as no MX.
func (v *MXVerifier) HasMX(ctx context.Context, domain string) bool {
	v.mu.Lock()
	ok, cached := v.cache[domain]
	v.mu.Unlock()
	if cached {
		return ok
	}
	ok = v.lookup(ctx, domain)
	v.mu.Lock()
	v.cache[domain] = ok
	v.mu.Unlock()
	return ok
}

// FilterVerified keeps only addresses whose domain resolves to a mail
// host. Order is preserved; addresses with unparseable domains drop.
func (v *MXVerifier) FilterVerified(ctx context.Context, emails []string) []string {
	if len(emails) == 0 {
		return nil
	}
	kept := make([]string, 0, len(emails))
	for _, email := range emails {
		domain, err := NormalizeEmailDomain(email)
		if err != nil {
			continue
		}
		if !v.HasMX(ctx, domain) {
			continue
		}
		kept = append(kept, email)
	}
	if len(kept) == 0 {
		return nil
	}
	return kept
}

func lookupMX(ctx context.Context, domain string) bool {
	ctx, cancel := context.WithTimeout(ctx, mxQueryTimeout)
	defer cancel()

	msg := new(dns.Msg)
	msg.SetQuestion(dns.Fqdn(domain), dns.TypeMX)
	msg.RecursionDesired = true

	client := new(dns.Client)
	for _, server := range defaultDNSServers {
		resp, _, err := client.ExchangeContext(ctx, msg, server)
		if err != nil || resp == nil {
			continue
		}
		if resp.Rcode == dns.RcodeSuccess && len(resp.Answer) > 0 {
			return true
		}
	}
	return false
}
