package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/larsks/appliances/internal/config"
	"github.com/larsks/appliances/internal/device"
	"github.com/larsks/appliances/internal/devicefactory"
	"github.com/larsks/appliances/internal/eventlog"
	"github.com/spf13/pflag"
)

// Config holds the appliances configuration
type Config struct {
	LogType            string   `mapstructure:"log-type"`
	LogFile            string   `mapstructure:"log-file"`
	Devices            []string `mapstructure:"devices"`
	ConfigFile         string   `mapstructure:"config-file"`
	explicitConfigFile bool     // Track if config file was explicitly set
}

func defaultDevices() []string {
	return []string{"refrigerator", "drill"}
}

func getDefaultConfigFile() string {
	return filepath.Join(xdg.ConfigHome, "appliances", "appliances.toml")
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		LogType: eventlog.Console.String(),
		LogFile: eventlog.DefaultFilePath,
		Devices: defaultDevices(),
	}
}

// AddFlags adds command-line flags for all configuration options
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "config", getDefaultConfigFile(), "Config file to use")
	fs.StringVar(&c.LogType, "log-type", c.LogType, "Event log destination (console or file)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "File used when log-type is file")
	fs.StringSliceVar(&c.Devices, "devices", c.Devices,
		fmt.Sprintf("Devices to create, in order (%s)", strings.Join(devicefactory.ListFactories(), ", ")))
}

// LoadConfigWithFlagSet loads configuration with proper precedence using a custom flag set (for testing)
func (c *Config) LoadConfigWithFlagSet(fs *pflag.FlagSet) error {
	c.explicitConfigFile = c.ConfigFile != getDefaultConfigFile()

	loader := config.NewConfigLoader()
	loader.SetStrictMode(true)
	loader.IgnoreFlag("version", "log-level")

	if _, err := os.Stat(c.ConfigFile); os.IsNotExist(err) {
		if c.explicitConfigFile {
			return fmt.Errorf("%w: %s", config.ErrConfigFileNotFound, c.ConfigFile)
		}
		// Default config file doesn't exist, don't try to load it
		c.ConfigFile = ""
	}

	loader.SetConfigFile(c.ConfigFile)
	loader.SetDefaults(map[string]any{
		"log-type": eventlog.Console.String(),
		"log-file": eventlog.DefaultFilePath,
		"devices":  defaultDevices(),
	})

	if err := loader.LoadConfigWithFlagSet(c, fs); err != nil {
		return err
	}

	return c.Validate()
}

// Validate checks that the log type and device names are known. Device
// names are matched case-insensitively and rewritten to their factory names.
func (c *Config) Validate() error {
	if _, err := eventlog.ParseType(c.LogType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	for i, name := range c.Devices {
		kind, err := device.ParseKind(name)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		c.Devices[i] = devicefactory.FactoryName(kind)
	}

	return nil
}
