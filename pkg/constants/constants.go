// Package constants provides shared constants for the opportunity-calculator
// application.
package constants

// Calculation constants
const (
	// PercentageMultiplier converts between a ratio and a percentage
	PercentageMultiplier = 100.0
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
	// RatioTolerance is the tolerance for comparing dimensionless ratios
	RatioTolerance = 1e-9
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"
	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"
	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
	// DefaultEnvFile is the dotenv file read before configuration is loaded
	DefaultEnvFile = ".env"
	// EnvPrefix prefixes environment overrides, e.g. OPPCALC_BASELINE_GOALAMOUNT
	EnvPrefix = "OPPCALC"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"
	// DefaultMaxBodySizeBytes is the default maximum request body size (64 KB)
	DefaultMaxBodySizeBytes int64 = 64 * 1024
	// DefaultRequestsPerSecond is the default API rate limit
	DefaultRequestsPerSecond = 20.0
	// DefaultBurst is the default API burst size
	DefaultBurst = 40
	// MaxTimeframeWeeks bounds the timeframes the API accepts (100 years of
	// weekly chart points)
	MaxTimeframeWeeks = 5200
)
