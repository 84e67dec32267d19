package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mortgagekit/mortgagekit/internal/config"
	"github.com/mortgagekit/mortgagekit/internal/export"
	"github.com/mortgagekit/mortgagekit/internal/schedule"
	"github.com/mortgagekit/mortgagekit/pkg/constants"
	"github.com/mortgagekit/mortgagekit/pkg/output"
	"github.com/mortgagekit/mortgagekit/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Verify the file is writable before handing it to zap.
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	principalFlag := flag.Float64("principal", 0, "loan principal override")
	rateFlag := flag.Float64("rate", -1, "quoted annual rate percent override (semi-annual compounding)")
	amortFlag := flag.Int("amort", 0, "amortization years override")
	termFlag := flag.Int("term", 0, "term years override")
	workbookFlag := flag.String("excel", "", "schedule workbook output path override")
	chartFlag := flag.String("png", "", "balance chart output path override")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	// Load the config file to get loan and logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// CLI overrides take precedence over config values.
	if *principalFlag > 0 {
		conf.Loan.Principal = *principalFlag
	}
	if *rateFlag >= 0 {
		conf.Loan.QuotedRatePercent = *rateFlag
	}
	if *amortFlag > 0 {
		conf.Loan.AmortizationYears = *amortFlag
	}
	if *termFlag > 0 {
		conf.Loan.TermYears = *termFlag
	}

	workbookPath := conf.Output.WorkbookFile
	if *workbookFlag != "" {
		workbookPath = *workbookFlag
	}
	if workbookPath == "" {
		workbookPath = constants.DefaultWorkbookFile
	}
	chartPath := conf.Output.ChartFile
	if *chartFlag != "" {
		chartPath = *chartFlag
	}
	if chartPath == "" {
		chartPath = constants.DefaultChartFile
	}

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validation happens once here; all downstream computation assumes
	// well-formed parameters.
	planner, err := schedule.NewPlanner(logger, conf.Loan)
	if err != nil {
		logger.Fatal("failed to validate loan parameters",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	params := planner.Params()
	logger.Info("generating amortization schedules",
		zap.String("op", "main"),
		zap.Float64("principal", params.Principal),
		zap.Float64("quotedRatePercent", params.QuotedRatePercent),
		zap.Int("amortizationYears", params.AmortizationYears),
		zap.Int("termYears", params.TermYears),
	)

	schedules, err := planner.AllSchedules()
	if err != nil {
		logger.Fatal("failed to build amortization schedules",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle summary output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(planner)
	case constants.OutputFormatCSV:
		output.CsvFormat(planner)
	}

	if err := export.WriteWorkbook(workbookPath, schedules); err != nil {
		logger.Fatal("failed to export schedule workbook",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("wrote schedule workbook",
		zap.String("op", "main"),
		zap.String("path", workbookPath),
	)

	if err := export.WriteBalanceChart(chartPath, schedules); err != nil {
		logger.Fatal("failed to render balance chart",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
	logger.Info("wrote balance chart",
		zap.String("op", "main"),
		zap.String("path", chartPath),
	)
}
