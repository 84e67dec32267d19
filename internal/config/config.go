// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Configuration holds all configuration for mortgagekit.
type Configuration struct {
	Loan    LoanParameters
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output configuration options.
type OutputConfig struct {
	Format       string `yaml:"format,omitempty"` // pretty, csv
	WorkbookFile string `yaml:"workbookFile,omitempty"`
	ChartFile    string `yaml:"chartFile,omitempty"`
}

// LoanParameters holds the terms of the loan being scheduled. Parameters are
// validated once at the boundary; downstream computation assumes well-formed
// values and never re-validates.
type LoanParameters struct {
	Principal         float64
	QuotedRatePercent float64 // annual nominal %, compounded semi-annually
	AmortizationYears int
	TermYears         int
}

// Validate checks the loan invariants and names the offending field on
// failure.
func (p LoanParameters) Validate() error {
	if p.Principal <= 0 {
		return fmt.Errorf("principal must be positive, got %.2f", p.Principal)
	}
	if p.QuotedRatePercent < 0 {
		return fmt.Errorf("quotedRatePercent must be non-negative, got %.4f", p.QuotedRatePercent)
	}
	if p.AmortizationYears <= 0 {
		return fmt.Errorf("amortizationYears must be positive, got %d", p.AmortizationYears)
	}
	if p.TermYears <= 0 {
		return fmt.Errorf("termYears must be positive, got %d", p.TermYears)
	}
	if p.TermYears > p.AmortizationYears {
		return fmt.Errorf("termYears (%d) cannot exceed amortizationYears (%d)",
			p.TermYears, p.AmortizationYears)
	}
	return nil
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}
