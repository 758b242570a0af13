// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/loom/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger LoggerConfig `toml:"logger"` // Logging settings under [logger]
	Input  InputConfig  `toml:"input"`  // Key dispatch settings under [input]
	Editor EditorConfig `toml:"editor"` // Editor-specific settings
}

// LoggerConfig holds logging settings.
type LoggerConfig struct {
	LogLevel    string `toml:"log_level"`
	LogFilePath string `toml:"log_file"` // Empty means the default path; "-" means stderr
}

// InputConfig holds key dispatch settings.
type InputConfig struct {
	// Precedence picks which shortcut scope is consulted first inside text
	// areas: "local-first" (default) or "global-first".
	Precedence string `toml:"precedence"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	SystemClipboard bool `toml:"system_clipboard"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: LoggerConfig{
			LogLevel: DefaultLogLevel,
		},
		Input: InputConfig{
			Precedence: DefaultPrecedence,
		},
		Editor: EditorConfig{
			SystemClipboard: SystemClipboard,
		},
	}
}

// loadFromFile attempts to load configuration from a TOML file. A missing
// file is not an error; the defaults simply stand.
func loadFromFile(filePath string) (*Config, error) {
	cfg := &Config{}
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if len(metadata.Undecoded()) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, metadata.Undecoded())
	}
	return cfg, nil
}

// validate checks config values and resets invalid ones to defaults.
func (c *Config) validate() {
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = DefaultLogLevel
	}
	switch c.Input.Precedence {
	case "local-first", "global-first":
	default:
		c.Input.Precedence = DefaultPrecedence
	}
}

// LoadConfig orchestrates loading defaults, file, applying flags, and
// validation. It should be called only once, typically from main.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		cfg := NewDefaultConfig()

		effectivePath := configFilePath
		if effectivePath == "" {
			configDir, err := os.UserConfigDir()
			if err == nil {
				effectivePath = filepath.Join(configDir, ConfigDirName, DefaultConfigFileName)
			}
		}

		if effectivePath != "" {
			fileCfg, err := loadFromFile(effectivePath)
			if err != nil {
				loadErr = err
			} else if fileCfg != nil {
				if fileCfg.Logger.LogLevel != "" {
					cfg.Logger.LogLevel = fileCfg.Logger.LogLevel
				}
				if fileCfg.Logger.LogFilePath != "" {
					cfg.Logger.LogFilePath = fileCfg.Logger.LogFilePath
				}
				if fileCfg.Input.Precedence != "" {
					cfg.Input.Precedence = fileCfg.Input.Precedence
				}
				cfg.Editor.SystemClipboard = fileCfg.Editor.SystemClipboard
			}
		}

		if flags != nil {
			flags.ApplyOverrides(cfg)
		}

		cfg.validate()
		loadedConfig = cfg
	})

	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
