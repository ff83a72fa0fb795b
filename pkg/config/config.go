// Package config resolves settings from defaults, an optional config.yaml and the
// environment, in increasing priority. Nested keys map to upper-case environment
// variables with dots replaced by underscores: openai.api_key <- OPENAI_API_KEY.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port       string     `mapstructure:"port"`
	LLM        LLM        `mapstructure:"llm"`
	OpenAI     Provider   `mapstructure:"openai"`
	Gemini     Provider   `mapstructure:"gemini"`
	Grok       Provider   `mapstructure:"grok"`
	Kimi       Provider   `mapstructure:"kimi"`
	Moonshot   Provider   `mapstructure:"moonshot"`
	Generation Generation `mapstructure:"generation"`
	Storage    Storage    `mapstructure:"storage"`
	Session    Session    `mapstructure:"session"`
	Log        Log        `mapstructure:"log"`
}

type LLM struct {
	// Provider forces a backend; empty picks one from the keys that are set.
	Provider string `mapstructure:"provider"`
}

type Provider struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type Generation struct {
	Timeout     time.Duration `mapstructure:"timeout"`
	MaxTokens   int64         `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Attempts    uint          `mapstructure:"attempts"`
	RetryDelay  time.Duration `mapstructure:"retry_delay"`
}

type Storage struct {
	Driver string `mapstructure:"driver"`
	Path   string `mapstructure:"path"`
	// CacheTTL bounds how long loaded books stay in memory; zero disables the cache.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type Session struct {
	IdleTTL time.Duration `mapstructure:"idle_ttl"`
}

type Log struct {
	Level string `mapstructure:"level"`
}

const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

var ErrInvalid = errors.New("invalid configuration")

// Load reads the configuration. cfgFile names an explicit file; when empty, config.yaml
// is looked up in the working directory and is optional.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Every key needs a default, empty or not, for AutomaticEnv to reach it on Unmarshal.
func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("llm.provider", "")

	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.base_url", "")
	v.SetDefault("grok.api_key", "")
	v.SetDefault("grok.model", "")
	v.SetDefault("grok.base_url", "")
	v.SetDefault("kimi.api_key", "")
	v.SetDefault("kimi.model", "")
	v.SetDefault("kimi.base_url", "")
	v.SetDefault("moonshot.api_key", "")
	v.SetDefault("moonshot.model", "")
	v.SetDefault("moonshot.base_url", "")

	v.SetDefault("generation.timeout", 30*time.Second)
	v.SetDefault("generation.max_tokens", 2000)
	v.SetDefault("generation.temperature", 0.8)
	v.SetDefault("generation.attempts", 1)
	v.SetDefault("generation.retry_delay", time.Second)

	v.SetDefault("storage.driver", DriverFile)
	v.SetDefault("storage.path", "data")
	v.SetDefault("storage.cache_ttl", 10*time.Minute)

	v.SetDefault("session.idle_ttl", 2*time.Hour)

	v.SetDefault("log.level", "info")
}

func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case DriverFile, DriverSQLite:
	default:
		return fmt.Errorf("%w: storage.driver %q", ErrInvalid, c.Storage.Driver)
	}
	if c.Generation.Timeout <= 0 {
		return fmt.Errorf("%w: generation.timeout must be positive", ErrInvalid)
	}
	if c.Generation.Attempts == 0 {
		return fmt.Errorf("%w: generation.attempts must be at least 1", ErrInvalid)
	}
	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return fmt.Errorf("%w: generation.temperature %v out of range", ErrInvalid, c.Generation.Temperature)
	}
	return nil
}

// Addr is the listen address for Port.
func (c *Config) Addr() string {
	if strings.Contains(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}
