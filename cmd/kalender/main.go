package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/username/kalender/internal/calendar"
	"github.com/username/kalender/internal/config"
	"github.com/username/kalender/internal/terminal"
	"github.com/username/kalender/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	year       int
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "kalender",
		Short:         "Full-year terminal calendar",
		Long:          "Show a full-year calendar in the terminal with holidays and days off from kalender.ini",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file path (default: kalender.ini next to the executable)")
	rootCmd.Flags().IntVarP(&year, "year", "y", 0, "Year to show (default: calendar.year from config)")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Log.File != "" {
		logger = initFileLogger(cfg.Log.File, cfg.Log.LogLevel())
	} else {
		logger, err = initLogger(cfg.Log.LogLevel())
		if err != nil {
			return err
		}
	}
	defer logger.Sync() //nolint:errcheck

	if !cfg.Found {
		logger.Warn("Config file not found, using defaults", zap.String("file", cfg.File))
	}

	palette, err := terminal.NewPalette(cfg.Style)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	source, err := calendar.OpenIniSource(cfg.DatesPath())
	if err != nil {
		return err
	}

	if year == 0 {
		year = cfg.Calendar.GetYear()
	}

	printer := terminal.NewPrinter(
		os.Stdout,
		os.Stderr,
		palette,
		cfg.Labels,
		terminal.Width(os.Stdout),
		cfg.Debug.Traceback,
	)

	k := calendar.New(source, dateutil.Today(), logger)

	logger.Info("Rendering calendar",
		zap.Int("year", year),
		zap.String("dates_file", cfg.DatesPath()))

	blocks, problems, err := k.RenderYear(year)
	for _, problem := range problems {
		printer.Report(problem)
	}
	if err != nil {
		return err
	}

	return printer.PrintYear(blocks)
}

func initLogger(level zapcore.Level) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.Encoding = "console"
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core)
}
