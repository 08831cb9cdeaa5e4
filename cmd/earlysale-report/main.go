package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lgusmao/earlysale-report/internal/config"
	"github.com/lgusmao/earlysale-report/internal/layout"
)

const (
	defaultConfigFile = "config.yaml"
	defaultOutputFile = "report.pdf"
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
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", defaultConfigFile, "path to configuration file")
	outputFlag := flag.String("output", "", "output PDF path override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Display any non-fatal configuration findings before rendering.
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	request, err := conf.ToReportRequest()
	if err != nil {
		logger.Fatal("invalid report request",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	blob, err := layout.BuildReport(logger, request)
	if err != nil {
		logger.Fatal("failed to build report",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Output path precedence: CLI flag, then config, then default.
	outputPath := request.OutputFile
	if *outputFlag != "" {
		outputPath = *outputFlag
	}
	if outputPath == "" {
		outputPath = defaultOutputFile
	}

	if err := os.WriteFile(outputPath, blob, 0644); err != nil {
		logger.Fatal("failed to write report",
			zap.String("op", "main"),
			zap.String("path", outputPath),
			zap.Error(err),
		)
	}

	logger.Info("report written",
		zap.String("op", "main"),
		zap.String("path", outputPath),
		zap.Int("pages", len(request.Pages)),
		zap.Int("bytes", len(blob)),
	)
}
