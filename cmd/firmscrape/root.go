package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"firmscrape/internal/config"
	"firmscrape/internal/contact"
	"firmscrape/internal/export"
	"firmscrape/internal/fetch"
	"firmscrape/internal/scrape"
	"firmscrape/pkg/logger"
)

var (
	flagConfig   string
	flagVerbose  bool
	flagPages    int
	flagDelay    float64
	flagOut      string
	flagRegion   string
	flagVerifyMX bool
)

var rootCmd = &cobra.Command{
	Use:   "firmscrape",
	Short: "Scrape a company directory into a CSV of names, locations and contacts",
	Long: `firmscrape walks the listing pages of an online company directory,
visits each company profile found there, and writes one CSV row per
company with its name, profile URL, location and any contact emails
and phone numbers published on the profile page.`,
	SilenceUsage: true,
	RunE:         runScrape,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().IntVar(&flagPages, "pages", 3, "number of listing pages to fetch")
	rootCmd.Flags().Float64Var(&flagDelay, "delay", 1.5, "delay between requests in seconds")
	rootCmd.Flags().StringVar(&flagOut, "out", "companies.csv", "output CSV filename")
	rootCmd.Flags().StringVar(&flagRegion, "region", "US", "phone region for numbers without a country prefix")
	rootCmd.Flags().BoolVar(&flagVerifyMX, "verify-mx", false, "drop emails whose domain has no MX record")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runScrape(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(flagVerbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	client := fetch.New(fetch.Config{
		UserAgent: cfg.Scraper.UserAgent,
		Retries:   cfg.Scraper.Retries,
		Timeout:   cfg.Timeout(),
	}, fetch.WithLimiter(fetch.NewHostLimiter(cfg.Scraper.RequestsPerSecond, cfg.Scraper.Burst)))

	opts := []scrape.Option{scrape.WithProgress(cmd.OutOrStdout())}
	if cfg.Contacts.VerifyMX {
		opts = append(opts, scrape.WithEmailFilter(contact.NewMXVerifier()))
	}

	runner := scrape.NewRunner(scrape.Config{
		BaseURL:                cfg.Scraper.BaseURL,
		Pages:                  cfg.Scraper.Pages,
		Delay:                  cfg.Delay(),
		Region:                 cfg.Contacts.PhoneRegion,
		ContinueOnProfileError: cfg.Scraper.ContinueOnProfileError,
	}, client, opts...)

	cmd.Println("Starting scraper...")
	records, err := runner.Run(cmd.Context())
	if err != nil {
		return fmt.Errorf("scrape: %w", err)
	}

	cmd.Printf("Writing %d rows to %s\n", len(records), cfg.Output.Path)
	if err := export.WriteCSV(cfg.Output.Path, records); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	cmd.Println("Done")
	return nil
}

// loadConfig builds the effective configuration. Precedence, lowest to
// highest: built-in defaults, config file, FIRMSCRAPE_* environment,
// flags given on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if flagConfig != "" {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return cfg, fmt.Errorf("load config %s: %w", flagConfig, err)
		}
	}
	cfg = config.ApplyEnv(cfg)

	if cmd.Flags().Changed("pages") {
		cfg.Scraper.Pages = flagPages
	}
	if cmd.Flags().Changed("delay") {
		cfg.Scraper.DelaySeconds = flagDelay
	}
	if cmd.Flags().Changed("out") {
		cfg.Output.Path = flagOut
	}
	if cmd.Flags().Changed("region") {
		cfg.Contacts.PhoneRegion = flagRegion
	}
	if cmd.Flags().Changed("verify-mx") {
		cfg.Contacts.VerifyMX = flagVerifyMX
	}

	cfg, res := config.NormalizeAndValidate(cfg)
	for _, w := range res.Warnings {
		logger.Log.Warn().Msg(w)
	}
	if !res.OK() {
		return cfg, fmt.Errorf("invalid configuration: %s", strings.Join(res.Errors, "; "))
	}
	return cfg, nil
}
