package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/etnz/mfolio"
	"github.com/etnz/mfolio/mfapi"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the content of the mfo configuration file.
//
//	currency = "INR"
//
//	[ledger]
//	file = "ledger.csv"
//	sheet_csv_url = "https://docs.google.com/spreadsheets/d/e/.../pub?output=csv"
//	script_url = "https://script.google.com/macros/s/.../exec"
//
//	[mfapi]
//	base_url = "https://api.mfapi.in"
//	rate_limit = 5
//	cache = ".mfapi"
//	concurrency = 4
//
//	[[bands]]
//	name = "excellent"
//	min = 25
type Config struct {
	Currency string       `koanf:"currency"`
	Ledger   LedgerConfig `koanf:"ledger"`
	MFAPI    MFAPIConfig  `koanf:"mfapi"`
	Bands    []BandConfig `koanf:"bands"`
}

// LedgerConfig tells where transactions are read from and written to.
//
// The published sheet, when set, takes precedence over the local file for reading, and the
// script for writing.
type LedgerConfig struct {
	File        string `koanf:"file"`
	SheetCSVURL string `koanf:"sheet_csv_url"`
	ScriptURL   string `koanf:"script_url"`
}

// MFAPIConfig configures the NAV API client.
type MFAPIConfig struct {
	BaseURL     string `koanf:"base_url"`
	RateLimit   int    `koanf:"rate_limit"`
	Cache       string `koanf:"cache"` // daily cache folder, none if empty
	Concurrency int    `koanf:"concurrency"`
}

// BandConfig is a return band.
type BandConfig struct {
	Name string  `koanf:"name"`
	Min  float64 `koanf:"min"`
}

// DefaultConfig returns the configuration used when there is no configuration file.
func DefaultConfig() Config {
	c := Config{
		Currency: mfolio.DefaultCurrency,
		Ledger:   LedgerConfig{File: "ledger.csv"},
		MFAPI: MFAPIConfig{
			BaseURL:     mfapi.DefaultBaseURL,
			RateLimit:   mfapi.DefaultRateLimit,
			Concurrency: mfolio.DefaultConcurrency,
		},
	}
	for _, b := range mfolio.DefaultBands {
		c.Bands = append(c.Bands, BandConfig{Name: b.Name, Min: float64(b.Min)})
	}
	return c
}

// LoadConfig reads the TOML configuration file over the defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return c, fmt.Errorf("error loading config file %s: %w", path, err)
	}
	if k.Exists("bands") {
		c.Bands = nil // replaced, not merged
	}
	if err := k.Unmarshal("", &c); err != nil {
		return c, fmt.Errorf("error decoding config file %s: %w", path, err)
	}
	if _, err := c.ReturnBands(); err != nil {
		return c, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	if c.MFAPI.Concurrency <= 0 {
		return c, fmt.Errorf("invalid config file %s: mfapi.concurrency must be positive, got %d", path, c.MFAPI.Concurrency)
	}
	return c, nil
}

// ReturnBands returns the configured bands, validated.
func (c Config) ReturnBands() (mfolio.Bands, error) {
	bands := make(mfolio.Bands, 0, len(c.Bands))
	for _, b := range c.Bands {
		bands = append(bands, mfolio.Band{Name: b.Name, Min: mfolio.Percent(b.Min)})
	}
	return bands, bands.Validate()
}
