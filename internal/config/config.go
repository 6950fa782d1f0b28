package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/riverfjs/m2h-go/internal/types"
)

// Config is the CLI configuration merged from flags, M2H_* environment
// variables and an optional m2h.yaml file.
type Config struct {
	Markdown      string `mapstructure:"markdown"`
	Output        string `mapstructure:"output"`
	Engine        string `mapstructure:"engine"`         // native or goldmark
	Highlight     bool   `mapstructure:"highlight"`      // chroma highlighting of fenced code
	Style         string `mapstructure:"style"`          // chroma style name
	TOCTitle      string `mapstructure:"toc_title"`      // heading above the toc
	FallbackTitle string `mapstructure:"fallback_title"` // page title without headings
	Verbose       bool   `mapstructure:"verbose"`
}

// GetConfigDir returns the directory searched for m2h.yaml besides the
// working directory.
func GetConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "m2h"), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "m2h"), nil
}

// SetDefaults registers defaults on v so every key is known to Unmarshal and
// AutomaticEnv.
func SetDefaults(v *viper.Viper) {
	defaults := types.DefaultRenderConfig()
	v.SetDefault("markdown", "")
	v.SetDefault("output", "")
	v.SetDefault("engine", string(defaults.Engine))
	v.SetDefault("highlight", defaults.Highlight.Enabled)
	v.SetDefault("style", defaults.Highlight.Style)
	v.SetDefault("toc_title", defaults.TOCTitle)
	v.SetDefault("fallback_title", defaults.FallbackTitle)
	v.SetDefault("verbose", false)
}

// Load reads the configuration into a Config. configFile, when set, must
// exist; otherwise m2h.yaml is optional.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("m2h")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("m2h")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := GetConfigDir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	// Read config file (optional - won't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configFile != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if !types.Engine(cfg.Engine).Valid() {
		return nil, fmt.Errorf("unknown engine %q (want %q or %q)", cfg.Engine, types.EngineNative, types.EngineGoldmark)
	}
	return &cfg, nil
}

// RenderConfig converts the CLI settings into a render configuration.
func (c *Config) RenderConfig() *types.RenderConfig {
	rc := types.DefaultRenderConfig()
	rc.Engine = types.Engine(c.Engine)
	rc.Highlight.Enabled = c.Highlight
	if c.Style != "" {
		rc.Highlight.Style = c.Style
	}
	if c.TOCTitle != "" {
		rc.TOCTitle = c.TOCTitle
	}
	if c.FallbackTitle != "" {
		rc.FallbackTitle = c.FallbackTitle
	}
	return rc
}
