package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firmscrape/internal/config"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "firmscrape", rootCmd.Use)
}

func TestRootCmd_FlagDefaults(t *testing.T) {
	assert.Equal(t, "3", rootCmd.Flags().Lookup("pages").DefValue)
	assert.Equal(t, "1.5", rootCmd.Flags().Lookup("delay").DefValue)
	assert.Equal(t, "companies.csv", rootCmd.Flags().Lookup("out").DefValue)
	assert.Equal(t, "US", rootCmd.Flags().Lookup("region").DefValue)
	assert.Equal(t, "false", rootCmd.Flags().Lookup("verify-mx").DefValue)
	assert.Equal(t, "", rootCmd.PersistentFlags().Lookup("config").DefValue)
}

func TestVersionCmd_PrintsVersion(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "firmscrape version dev")
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	assert.Equal(t, config.DefaultBaseURL, cfg.Scraper.BaseURL)
	assert.Equal(t, 3, cfg.Scraper.Pages)
	assert.Equal(t, "companies.csv", cfg.Output.Path)
}

func TestLoadConfigFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("FIRMSCRAPE_PAGES", "7")
	t.Setenv("FIRMSCRAPE_OUT", "env.csv")

	require.NoError(t, rootCmd.ParseFlags([]string{"--pages", "9"}))
	t.Cleanup(func() {
		f := rootCmd.Flags().Lookup("pages")
		f.Changed = false
		_ = f.Value.Set(f.DefValue)
	})

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)

	// Flag beats environment; environment beats defaults.
	assert.Equal(t, 9, cfg.Scraper.Pages)
	assert.Equal(t, "env.csv", cfg.Output.Path)
	assert.Equal(t, 1.5, cfg.Scraper.DelaySeconds)
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("scraper:\n  pages: 4\n"), 0o644))

	flagConfig = path
	t.Cleanup(func() { flagConfig = "" })

	cfg, err := loadConfig(rootCmd)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Scraper.Pages)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	t.Setenv("FIRMSCRAPE_PAGES", "-1")

	_, err := loadConfig(rootCmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "scraper.pages must be > 0")
}
