package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/secureapp/secureapp-cli/internal/xdg"
)

// Config holds runtime settings for the SecureApp client.
type Config struct {
	// ServerBaseURL is the base URL of the authentication API.
	ServerBaseURL string `mapstructure:"server_base_url"`

	// RequestTimeout bounds each API round trip. There are no retries.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// TokenFile is the path of the persisted token state file. Empty means
	// tokens.json under the XDG state dir.
	TokenFile string `mapstructure:"token_file"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load builds the Config by layering sources, later ones winning:
//
//  1. built-in defaults
//  2. YAML config file (explicit path, or config.yml in the XDG config dir)
//  3. SECUREAPP_* environment variables (a .env file is read first)
//  4. command-line flags bound through flags
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("server_base_url", "http://localhost:8080")
	v.SetDefault("request_timeout", 10*time.Second)
	v.SetDefault("token_file", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	if configFile == "" {
		candidate := filepath.Join(xdg.ConfigDir(), "config.yml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
		}
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix("SECUREAPP")
	v.AutomaticEnv()

	if flags != nil {
		bindings := map[string]string{
			"server_base_url": "server",
			"request_timeout": "timeout",
			"token_file":      "token-file",
			"log_level":       "log-level",
			"log_format":      "log-format",
		}
		for key, name := range bindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	return &cfg, nil
}
