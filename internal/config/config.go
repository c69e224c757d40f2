package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultBaseURL is the directory listing the scraper walks when no
// other base is configured.
const DefaultBaseURL = "https://www.goodfirms.co/big-data-analytics/data-analytics"

type Config struct {
	Scraper struct {
		BaseURL   string `yaml:"base_url"`
		UserAgent string `yaml:"user_agent"` // empty = the fetcher's identifying default

		Pages        int     `yaml:"pages"`
		DelaySeconds float64 `yaml:"delay_seconds"`

		Retries        int `yaml:"retries"`
		TimeoutSeconds int `yaml:"timeout_seconds"`

		RequestsPerSecond float64 `yaml:"requests_per_second"`
		Burst             int     `yaml:"burst"`

		ContinueOnProfileError bool `yaml:"continue_on_profile_error"`
	} `yaml:"scraper"`

	Contacts struct {
		PhoneRegion string `yaml:"phone_region"`
		VerifyMX    bool   `yaml:"verify_mx"`
	} `yaml:"contacts"`

	Output struct {
		Path string `yaml:"path"`
	} `yaml:"output"`
}

// Default returns the built-in configuration. Every Load starts from
// here so a partial config file only overrides what it names.
func Default() Config {
	var cfg Config
	cfg.Scraper.BaseURL = DefaultBaseURL
	cfg.Scraper.Pages = 3
	cfg.Scraper.DelaySeconds = 1.5
	cfg.Scraper.Retries = 2
	cfg.Scraper.TimeoutSeconds = 15
	cfg.Scraper.RequestsPerSecond = 1
	cfg.Scraper.Burst = 1
	cfg.Scraper.ContinueOnProfileError = true
	cfg.Contacts.PhoneRegion = "US"
	cfg.Output.Path = "companies.csv"
	return cfg
}

// Load reads a yaml config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

func (c Config) Delay() time.Duration {
	return time.Duration(c.Scraper.DelaySeconds * float64(time.Second))
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.Scraper.TimeoutSeconds) * time.Second
}
