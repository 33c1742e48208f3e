package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config holds the compiler's full configuration tree.
type Config struct {
	InstanceName string         `yaml:"instance_name"`
	BasePath     string         `yaml:"base_path"`
	Logger       LoggerConfig   `yaml:"logger" validate:"required"`
	Layout       LayoutConfig   `yaml:"layout" validate:"required"`
	Compiler     CompilerConfig `yaml:"compiler" validate:"required"`
}

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	Level         string `yaml:"level" validate:"oneof=debug info warn error fatal"`
	Format        string `yaml:"format" validate:"oneof=json text"`
	Directory     string `yaml:"directory" validate:"required"`
	MaxSize       int64  `yaml:"max_size" validate:"gt=0"`
	MaxAge        int    `yaml:"max_age" validate:"gt=0"`
	MaxBackups    int    `yaml:"max_backups" validate:"gt=0"`
	EnableConsole bool   `yaml:"enable_console"`
}

// LayoutConfig holds the layout engine's spacing and dimension defaults (spec §4.4).
type LayoutConfig struct {
	Horizontal           int              `yaml:"horizontal" validate:"gt=0"`
	Vertical             int              `yaml:"vertical" validate:"gt=0"`
	LevelSpacing         int              `yaml:"level_spacing" validate:"gt=0"`
	GatewayBranchSpacing int              `yaml:"gateway_branch_spacing" validate:"gt=0"`
	Margins              LayoutMargins    `yaml:"margins"`
	Dimensions           LayoutDimensions `yaml:"dimensions"`
}

// LayoutMargins holds the four margin values around the diagram.
type LayoutMargins struct {
	Top    int `yaml:"top"`
	Left   int `yaml:"left"`
	Right  int `yaml:"right"`
	Bottom int `yaml:"bottom"`
}

// LayoutDimensions holds per-element-kind width/height in pixels (spec §4.4 table).
type LayoutDimensions struct {
	EventWidth    int `yaml:"event_width"`
	EventHeight   int `yaml:"event_height"`
	GatewayWidth  int `yaml:"gateway_width"`
	GatewayHeight int `yaml:"gateway_height"`
	TaskWidth     int `yaml:"task_width"`
	TaskHeight    int `yaml:"task_height"`
}

// CompilerConfig holds pipeline-level behavior switches.
type CompilerConfig struct {
	// StrictMode rejects unreachable elements as an error; when false
	// they are downgraded to a warning (spec §9 Open Question).
	StrictMode bool `yaml:"strict_mode"`
	// EmitOnWarnings allows emission to proceed when the validator
	// produced only warnings (spec §5, §6 CLI surface).
	EmitOnWarnings bool `yaml:"emit_on_warnings"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		InstanceName: "dslc",
		BasePath:     ".",
		Logger: LoggerConfig{
			Level:         "info",
			Format:        "json",
			Directory:     "logs",
			MaxSize:       50,
			MaxAge:        14,
			MaxBackups:    5,
			EnableConsole: true,
		},
		Layout: LayoutConfig{
			Horizontal:           150,
			Vertical:             100,
			LevelSpacing:         200,
			GatewayBranchSpacing: 120,
			Margins:              LayoutMargins{Top: 50, Left: 50, Right: 50, Bottom: 50},
			Dimensions: LayoutDimensions{
				EventWidth: 36, EventHeight: 36,
				GatewayWidth: 50, GatewayHeight: 50,
				TaskWidth: 100, TaskHeight: 80,
			},
		},
		Compiler: CompilerConfig{
			StrictMode:     true,
			EmitOnWarnings: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file, falling back to
// defaults for any field the file leaves zero-valued.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.BasePath == "" {
		cfg.BasePath = "."
	}

	cfg.LoadFromEnv()
	resolvePaths(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func resolvePaths(cfg *Config) {
	if !filepath.IsAbs(cfg.Logger.Directory) {
		cfg.Logger.Directory = filepath.Join(cfg.BasePath, cfg.Logger.Directory)
	}
}
