package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// DefaultFileName is the config file looked up next to the executable
const DefaultFileName = "kalender.ini"

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Labels   LabelsConfig   `mapstructure:"labels"`
	Style    StyleConfig    `mapstructure:"style"`
	Log      LogConfig      `mapstructure:"log"`
	Debug    DebugConfig    `mapstructure:"debug"`

	// File is the config file path that was used
	File string `mapstructure:"-"`
	// Found is false when File did not exist and defaults were used
	Found bool `mapstructure:"-"`
}

// CalendarConfig represents calendar configuration
type CalendarConfig struct {
	Year      int    `mapstructure:"year"`       // 0 = current year
	DatesFile string `mapstructure:"dates_file"` // holidays/dayoffs file, defaults to the config file itself
}

// LabelsConfig holds the two locale labels of the month block
type LabelsConfig struct {
	Weekdays string `mapstructure:"weekdays"`
	Listing  string `mapstructure:"listing"`
}

// StyleConfig holds one style string per visual element, e.g. "black on #AAFFFF blink"
type StyleConfig struct {
	Title        string `mapstructure:"title"`
	Header       string `mapstructure:"header"`
	Today        string `mapstructure:"today"`
	Holiday      string `mapstructure:"holiday"`
	DayOff       string `mapstructure:"dayoff"`
	Sunday       string `mapstructure:"sunday"`
	Saturday     string `mapstructure:"saturday"`
	Weekday      string `mapstructure:"weekday"`
	Listing      string `mapstructure:"listing"`
	HolidayEntry string `mapstructure:"holiday_entry"`
	DayOffEntry  string `mapstructure:"dayoff_entry"`
	Error        string `mapstructure:"error"`
	ErrorDetail  string `mapstructure:"error_detail"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DebugConfig represents diagnostics configuration
type DebugConfig struct {
	// Traceback prints full error traces. Only "1" or "true" switch it on,
	// any other value of debug.traceback or TRACEBACK leaves it off.
	Traceback bool `mapstructure:"-"`
}

// DefaultPath returns kalender.ini next to the running executable
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(filepath.Dir(exe), DefaultFileName)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.year", 0)
	v.SetDefault("calendar.dates_file", "")

	v.SetDefault("labels.weekdays", "Mo Tu We Th Fr Sa Su")
	v.SetDefault("labels.listing", "Holidays and Days Off:")

	v.SetDefault("style.title", "bold #FF5500 underline")
	v.SetDefault("style.header", "")
	v.SetDefault("style.today", "black on #AAFFFF blink")
	v.SetDefault("style.holiday", "cyan on #FF0000")
	v.SetDefault("style.dayoff", "black on #FF55FF")
	v.SetDefault("style.sunday", "#FF0000")
	v.SetDefault("style.saturday", "#FFFF00")
	v.SetDefault("style.weekday", "#55FFFF")
	v.SetDefault("style.listing", "bold underline")
	v.SetDefault("style.holiday_entry", "bold white on red")
	v.SetDefault("style.dayoff_entry", "#ffffff on magenta")
	v.SetDefault("style.error", "bold #FF00FF")
	v.SetDefault("style.error_detail", "#ffffff on #0000FF")

	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "error")

	v.SetDefault("debug.traceback", "")
}

// Load loads configuration from an ini file.
// A missing file is not an error: defaults are used.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		configPath = DefaultPath()
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(configPath)
	v.SetConfigType("ini")

	// Read environment variables, e.g. KALENDER_CALENDAR_YEAR
	v.SetEnvPrefix("KALENDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv("debug.traceback", "KALENDER_TRACEBACK", "TRACEBACK"); err != nil {
		return nil, fmt.Errorf("failed to bind env: %w", err)
	}

	found := true
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		found = false
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.File = configPath
	config.Found = found
	config.Debug.Traceback = isSwitchOn(v.GetString("debug.traceback"))

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func isSwitchOn(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true":
		return true
	default:
		return false
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Calendar.Year < 0 || c.Calendar.Year > 9999 {
		return fmt.Errorf("calendar.year must be between 1 and 9999, got %d", c.Calendar.Year)
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	return nil
}

// GetYear returns the year to render
func (c *CalendarConfig) GetYear() int {
	if c.Year == 0 {
		return time.Now().Year()
	}
	return c.Year
}

// DatesPath returns the file holding the holidays and dayoffs groups.
// Relative paths are resolved against the config file's directory.
func (c *Config) DatesPath() string {
	if c.Calendar.DatesFile == "" {
		return c.File
	}
	if filepath.IsAbs(c.Calendar.DatesFile) {
		return c.Calendar.DatesFile
	}
	return filepath.Join(filepath.Dir(c.File), c.Calendar.DatesFile)
}

// LogLevel returns the parsed log level
func (c *LogConfig) LogLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.ErrorLevel
	}
	return level
}
