// Package constants provides shared constants for the mortgagekit application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// SemiAnnualCompoundings is the number of compounding periods per year in
	// a semi-annually compounded rate quote
	SemiAnnualCompoundings = 2.0

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// DefaultBalanceEpsilon is the remaining-balance floor at which a
	// schedule is considered paid off (1 cent)
	DefaultBalanceEpsilon = 0.01

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"
)

// Export defaults
const (
	// DefaultWorkbookFile is the default path for the schedule workbook
	DefaultWorkbookFile = "out/schedules.xlsx"

	// DefaultChartFile is the default path for the balance chart
	DefaultChartFile = "out/balances.png"
)
