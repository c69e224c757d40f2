package config

import (
	"fmt"
	"net/url"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and upcases what it can and reports
// everything else. Warnings are advisory; errors mean the config
// cannot drive a run.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.Scraper.BaseURL = strings.TrimSpace(out.Scraper.BaseURL)
	out.Scraper.UserAgent = strings.TrimSpace(out.Scraper.UserAgent)
	out.Contacts.PhoneRegion = strings.ToUpper(strings.TrimSpace(out.Contacts.PhoneRegion))
	out.Output.Path = strings.TrimSpace(out.Output.Path)

	if out.Scraper.BaseURL == "" {
		res.addErr("scraper.base_url must not be empty")
	} else if u, err := url.Parse(out.Scraper.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("scraper.base_url %q is not an absolute URL", out.Scraper.BaseURL)
	}

	if out.Scraper.Pages <= 0 {
		res.addErr("scraper.pages must be > 0")
	} else if out.Scraper.Pages > 50 {
		res.addWarn("scraper.pages is high (%d); expect a long run.", out.Scraper.Pages)
	}

	if out.Scraper.DelaySeconds < 0 {
		res.addErr("scraper.delay_seconds must be >= 0")
	} else if out.Scraper.DelaySeconds < 0.5 {
		res.addWarn("scraper.delay_seconds is very low (%.2g) and may trigger rate limits.", out.Scraper.DelaySeconds)
	}

	if out.Scraper.Retries < 0 {
		res.addWarn("scraper.retries is negative; treating it as no retries.")
	}

	if out.Scraper.TimeoutSeconds <= 0 {
		res.addErr("scraper.timeout_seconds must be > 0")
	}

	if out.Scraper.RequestsPerSecond <= 0 {
		res.addErr("scraper.requests_per_second must be > 0")
	}
	if out.Scraper.Burst <= 0 {
		res.addErr("scraper.burst must be > 0")
	}

	if out.Contacts.PhoneRegion != "" && len(out.Contacts.PhoneRegion) != 2 {
		res.addErr("contacts.phone_region must be a two-letter region code, got %q", out.Contacts.PhoneRegion)
	}

	if out.Output.Path == "" {
		res.addErr("output.path must not be empty")
	}

	return out, res
}
