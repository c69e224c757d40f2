package config

import (
	"os"
	"strconv"
)

// ApplyEnv overlays FIRMSCRAPE_* variables onto cfg. Unset or
// malformed values leave the current setting untouched, so a stray
// FIRMSCRAPE_PAGES=lots cannot break a run that never asked for it.
func ApplyEnv(cfg Config) Config {
	if v := os.Getenv("FIRMSCRAPE_BASE_URL"); v != "" {
		cfg.Scraper.BaseURL = v
	}
	if v := os.Getenv("FIRMSCRAPE_USER_AGENT"); v != "" {
		cfg.Scraper.UserAgent = v
	}
	if v := os.Getenv("FIRMSCRAPE_PAGES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Scraper.Pages = n
		}
	}
	if v := os.Getenv("FIRMSCRAPE_DELAY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Scraper.DelaySeconds = f
		}
	}
	if v := os.Getenv("FIRMSCRAPE_OUT"); v != "" {
		cfg.Output.Path = v
	}
	if v := os.Getenv("FIRMSCRAPE_PHONE_REGION"); v != "" {
		cfg.Contacts.PhoneRegion = v
	}
	return cfg
}
