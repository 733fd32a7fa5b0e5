// File: internal/config/config.go
package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Interface defines the contract for accessing application configuration.
// This allows for dependency injection and mocking in tests.
type Interface interface {
	Logger() LoggerConfig
	Specs() SpecsConfig
	Device() DeviceConfig
	Watch() WatchConfig

	// Device Setters
	SetDeviceSize(width, height int)
	SetDeviceGrid(columns, rows int)
	SetFolderGrid(columns, rows int)

	// Watch Setters
	SetWatchEnabled(bool)

	Validate() error
}

// Config holds the entire application configuration.
type Config struct {
	LoggerCfg LoggerConfig `mapstructure:"logger" yaml:"logger"`
	SpecsCfg  SpecsConfig  `mapstructure:"specs" yaml:"specs"`
	DeviceCfg DeviceConfig `mapstructure:"device" yaml:"device"`
	WatchCfg  WatchConfig  `mapstructure:"watch" yaml:"watch"`
}

// --- Interface Method Implementations (Getters) ---

func (c *Config) Logger() LoggerConfig { return c.LoggerCfg }
func (c *Config) Specs() SpecsConfig   { return c.SpecsCfg }
func (c *Config) Device() DeviceConfig { return c.DeviceCfg }
func (c *Config) Watch() WatchConfig   { return c.WatchCfg }

// --- Interface Method Implementations (Setters) ---

func (c *Config) SetDeviceSize(width, height int) {
	c.DeviceCfg.Width = width
	c.DeviceCfg.Height = height
}

func (c *Config) SetDeviceGrid(columns, rows int) {
	c.DeviceCfg.Columns = columns
	c.DeviceCfg.Rows = rows
}

func (c *Config) SetFolderGrid(columns, rows int) {
	c.DeviceCfg.FolderColumns = columns
	c.DeviceCfg.FolderRows = rows
}

func (c *Config) SetWatchEnabled(b bool) { c.WatchCfg.Enabled = b }

// LoggerConfig configures the zap logger and its rotating file sink.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color codes for different log levels.
type ColorConfig struct {
	Debug  string `mapstructure:"debug" yaml:"debug"`
	Info   string `mapstructure:"info" yaml:"info"`
	Warn   string `mapstructure:"warn" yaml:"warn"`
	Error  string `mapstructure:"error" yaml:"error"`
	DPanic string `mapstructure:"dpanic" yaml:"dpanic"`
	Panic  string `mapstructure:"panic" yaml:"panic"`
	Fatal  string `mapstructure:"fatal" yaml:"fatal"`
}

// SpecsConfig points at the breakpoint documents of each grid family.
// The all apps and folder documents are optional.
type SpecsConfig struct {
	WorkspacePath string `mapstructure:"workspace_path" yaml:"workspace_path"`
	AllAppsPath   string `mapstructure:"all_apps_path" yaml:"all_apps_path"`
	FolderPath    string `mapstructure:"folder_path" yaml:"folder_path"`
	// Density is the number of pixels per dp used when reading documents.
	Density float64 `mapstructure:"density" yaml:"density"`
}

// DeviceConfig describes the display and grid the specs are resolved for. Sizes are
// the space available to the grid, in pixels.
type DeviceConfig struct {
	Width         int `mapstructure:"width" yaml:"width"`
	Height        int `mapstructure:"height" yaml:"height"`
	Columns       int `mapstructure:"columns" yaml:"columns"`
	Rows          int `mapstructure:"rows" yaml:"rows"`
	FolderColumns int `mapstructure:"folder_columns" yaml:"folder_columns"`
	FolderRows    int `mapstructure:"folder_rows" yaml:"folder_rows"`
}

// AspectRatio is the longer side over the shorter one, or 0 for an empty display.
func (d DeviceConfig) AspectRatio() float64 {
	long, short := max(d.Width, d.Height), min(d.Width, d.Height)
	if short <= 0 {
		return 0
	}
	return float64(long) / float64(short)
}

// WatchConfig controls reloading of the spec documents when they change on disk.
type WatchConfig struct {
	Enabled  bool          `mapstructure:"enabled" yaml:"enabled"`
	Debounce time.Duration `mapstructure:"debounce" yaml:"debounce"`
}

// NewDefaultConfig creates a new configuration struct populated with default values.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for various configuration parameters.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "gridspec")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age", 30)
	v.SetDefault("logger.compress", true)

	// -- Specs --
	v.SetDefault("specs.workspace_path", "~/.config/gridspec/workspace_specs.xml")
	v.SetDefault("specs.all_apps_path", "")
	v.SetDefault("specs.folder_path", "")
	v.SetDefault("specs.density", 1.0)

	// -- Device --
	v.SetDefault("device.width", 1080)
	v.SetDefault("device.height", 2340)
	v.SetDefault("device.columns", 4)
	v.SetDefault("device.rows", 5)
	v.SetDefault("device.folder_columns", 3)
	v.SetDefault("device.folder_rows", 3)

	// -- Watch --
	v.SetDefault("watch.enabled", false)
	v.SetDefault("watch.debounce", "250ms")
}

// NewConfigFromViper creates a new configuration instance from a viper object.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config

	v.BindEnv("specs.workspace_path", "GRIDSPEC_WORKSPACE_SPECS")
	v.BindEnv("specs.all_apps_path", "GRIDSPEC_ALL_APPS_SPECS")
	v.BindEnv("specs.folder_path", "GRIDSPEC_FOLDER_SPECS")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// expandPaths resolves a leading ~ in every configured path.
func (c *Config) expandPaths() error {
	for _, p := range []*string{
		&c.SpecsCfg.WorkspacePath,
		&c.SpecsCfg.AllAppsPath,
		&c.SpecsCfg.FolderPath,
		&c.LoggerCfg.LogFile,
	} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("failed to expand path %q: %w", *p, err)
		}
		*p = expanded
	}
	return nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := c.SpecsCfg.Validate(); err != nil {
		return fmt.Errorf("specs configuration invalid: %w", err)
	}
	if err := c.DeviceCfg.Validate(c.SpecsCfg.FolderPath != ""); err != nil {
		return fmt.Errorf("device configuration invalid: %w", err)
	}
	if c.WatchCfg.Enabled && c.WatchCfg.Debounce <= 0 {
		return fmt.Errorf("watch.debounce must be a positive duration")
	}
	return nil
}

// Validate checks the spec document settings.
func (s *SpecsConfig) Validate() error {
	if s.WorkspacePath == "" {
		return fmt.Errorf("workspace_path is required")
	}
	if s.Density <= 0 {
		return fmt.Errorf("density must be positive")
	}
	return nil
}

// Validate checks the device settings. Folder dimensions only matter when a folder
// document is configured.
func (d *DeviceConfig) Validate(withFolder bool) error {
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("width and height must not be negative")
	}
	if d.Columns < 1 || d.Rows < 1 {
		return fmt.Errorf("columns and rows must be at least 1")
	}
	if withFolder && (d.FolderColumns < 1 || d.FolderRows < 1) {
		return fmt.Errorf("folder_columns and folder_rows must be at least 1")
	}
	return nil
}
