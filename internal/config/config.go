// Package config loads selectui settings from defaults, an optional YAML
// file and SELECTUI_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Meta  MetaConfig  `mapstructure:"meta"`
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
	Trace TraceConfig `mapstructure:"trace"`
}

// MetaConfig is the document metadata the shell emits on every navigation.
type MetaConfig struct {
	Title    string `mapstructure:"title"`
	Charset  string `mapstructure:"charset"`
	Viewport string `mapstructure:"viewport"`
	Locale   string `mapstructure:"locale"`
	Type     string `mapstructure:"type"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DropdownWidth int    `mapstructure:"dropdown_width"`
	Mouse         bool   `mapstructure:"mouse"`
	StartPage     string `mapstructure:"start_page"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Path       string `mapstructure:"path"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// TraceConfig controls OTLP span export.
type TraceConfig struct {
	Endpoint    string `mapstructure:"endpoint"`
	ServiceName string `mapstructure:"service_name"`
}

// EnvPrefix namespaces environment overrides, e.g. SELECTUI_UI_MOUSE=false.
const EnvPrefix = "SELECTUI"

func setDefaults(v *viper.Viper) {
	v.SetDefault("meta.title", "selectui")
	v.SetDefault("meta.charset", "utf-8")
	v.SetDefault("meta.viewport", "width=device-width, initial-scale=1, shrink-to-fit=no, maximum-scale=5")
	v.SetDefault("meta.locale", "ja_JP")
	v.SetDefault("meta.type", "website")
	v.SetDefault("ui.dropdown_width", 24)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.start_page", "form")
	v.SetDefault("log.path", "")
	v.SetDefault("log.max_size_mb", 5)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("trace.endpoint", "")
	v.SetDefault("trace.service_name", "selectui")
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration. An explicit path must exist; otherwise
// $SELECTUI_CONFIG and then ~/.config/selectui/config.yaml are tried and a
// missing file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigType("yaml")

	explicit := path != ""
	if !explicit {
		path = os.Getenv(EnvPrefix + "_CONFIG")
		explicit = path != ""
	}
	if explicit {
		v.SetConfigFile(path)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "selectui"))
		}
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
