// Package config defines the data structures related to configuration and
// includes functions for loading the calculator inputs from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/iwvelando/opportunity-calculator/internal/calculator"
	"github.com/iwvelando/opportunity-calculator/pkg/constants"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for opportunity-calculator.
type Configuration struct {
	Baseline    calculator.Baseline    `yaml:"baseline"`
	Opportunity calculator.Opportunity `yaml:"opportunity"`
	Logging     LoggingConfig          `yaml:"logging,omitempty"`
	Output      OutputConfig           `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %w", err)
	}
	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %w", err)
	}
	return decode(v)
}

// LoadDefaults builds a configuration from the built-in defaults and any
// OPPCALC_* environment overrides without reading a file.
func LoadDefaults() (*Configuration, error) {
	return decode(newViper())
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment so they can override configuration values. Variables already
// set are left alone and a missing file is ignored.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yml")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults double as the key list AutomaticEnv consults.
	defaults := calculator.DefaultInput()
	v.SetDefault("baseline.goalAmount", defaults.Baseline.GoalAmount)
	v.SetDefault("baseline.timeframeWeeks", defaults.Baseline.TimeframeWeeks)
	v.SetDefault("baseline.availableHoursPerWeek", defaults.Baseline.AvailableHoursPerWeek)
	v.SetDefault("baseline.currentHourlyRate", defaults.Baseline.CurrentHourlyRate)
	v.SetDefault("opportunity.name", defaults.Opportunity.Name)
	v.SetDefault("opportunity.offeredAmount", defaults.Opportunity.OfferedAmount)
	v.SetDefault("opportunity.requiredHours", defaults.Opportunity.RequiredHours)
	v.SetDefault("opportunity.timeframeWeeks", defaults.Opportunity.TimeframeWeeks)
	v.SetDefault("opportunity.serendipityPercent", defaults.Opportunity.SerendipityPercent)
	v.SetDefault("opportunity.additionalBenefits", defaults.Opportunity.AdditionalBenefits)
	v.SetDefault("logging.level", "")
	v.SetDefault("logging.format", "")
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", "")
	return v
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}
	return &configuration, nil
}

// Input converts the configuration into calculator input, snapping the
// serendipity percentage onto the slider scale.
func (c *Configuration) Input() calculator.Input {
	in := calculator.Input{
		Baseline:    c.Baseline,
		Opportunity: c.Opportunity,
	}
	in.Opportunity.SerendipityPercent = calculator.ClampSerendipity(in.Opportunity.SerendipityPercent)
	return in
}
