package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override, e.g. TOKENSCOPE_API_KEY.
const EnvPrefix = "TOKENSCOPE"

type Config struct {
	Environment string `yaml:"environment" default:"development" validate:"oneof=development staging production"`
	API         struct {
		Key     string        `yaml:"key"`
		BaseURL string        `yaml:"base_url" default:"https://api.tokenscope.io/v1" validate:"required,url"`
		Timeout time.Duration `yaml:"timeout" default:"30s" validate:"gt=0"`
	} `yaml:"api"`
	DexScreener struct {
		BaseURL string `yaml:"base_url" default:"https://api.dexscreener.com" validate:"required,url"`
	} `yaml:"dexscreener"`
	GoPlus struct {
		BaseURL string `yaml:"base_url" default:"https://api.gopluslabs.io/api/v1" validate:"required,url"`
	} `yaml:"goplus"`
	Fallback struct {
		// Timeout bounds the concurrent fallback fetches; 0 disables the bound.
		Timeout time.Duration `yaml:"timeout" default:"30s" validate:"gte=0"`
	} `yaml:"fallback"`
	Log struct {
		Level  string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
		Format string `yaml:"format" default:"console" validate:"oneof=json console"`
		Output string `yaml:"output" default:"stderr"`
	} `yaml:"log"`
	Server struct {
		Port            int           `yaml:"port" default:"8080" validate:"gte=1,lte=65535"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"60s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
		RateLimit       struct {
			Enabled   bool    `yaml:"enabled"`
			Burst     int     `yaml:"burst" default:"30" validate:"gte=1"`
			PerSecond float64 `yaml:"per_second" default:"10" validate:"gt=0"`
		} `yaml:"rate_limit"`
	} `yaml:"server"`
	Metrics struct {
		Enabled bool   `yaml:"enabled" default:"true"`
		Path    string `yaml:"path" default:"/metrics"`
	} `yaml:"metrics"`
	Watchlist struct {
		Backend string `yaml:"backend" default:"memory" validate:"oneof=memory redis"`
		Redis   struct {
			Addr         string        `yaml:"addr" default:"localhost:6379"`
			Password     string        `yaml:"password"`
			DB           int           `yaml:"db"`
			Prefix       string        `yaml:"prefix" default:"tokenscope"`
			PoolSize     int           `yaml:"pool_size" default:"10" validate:"gte=1"`
			MinIdleConns int           `yaml:"min_idle_conns" default:"2" validate:"gte=0"`
			PoolTimeout  time.Duration `yaml:"pool_timeout" default:"30s"`
		} `yaml:"redis"`
	} `yaml:"watchlist"`
	Kafka struct {
		Enabled      bool          `yaml:"enabled"`
		Brokers      []string      `yaml:"brokers" validate:"required_if=Enabled true"`
		Topic        string        `yaml:"topic" default:"token-analyses"`
		RequiredAcks int           `yaml:"required_acks" default:"-1"`
		Compression  string        `yaml:"compression" default:"gzip" validate:"oneof=gzip snappy lz4 zstd"`
		MaxAttempts  int           `yaml:"max_attempts" default:"3"`
		WriteTimeout time.Duration `yaml:"write_timeout" default:"10s"`
		BatchSize    int           `yaml:"batch_size" default:"100" validate:"gte=1"`
		BatchBytes   int           `yaml:"batch_bytes" default:"1048576" validate:"gte=1"`
		BatchTimeout time.Duration `yaml:"batch_timeout" default:"1s"`
		Async        bool          `yaml:"async"`
	} `yaml:"kafka"`
}

// envOverlay holds the values that may be overridden from the environment.
// Zero values mean "not set" and leave the file value alone.
type envOverlay struct {
	APIKey          string        `envconfig:"API_KEY"`
	BaseURL         string        `envconfig:"BASE_URL"`
	Timeout         time.Duration `envconfig:"TIMEOUT"`
	FallbackTimeout time.Duration `envconfig:"FALLBACK_TIMEOUT"`
	LogLevel        string        `envconfig:"LOG_LEVEL"`
	LogFormat       string        `envconfig:"LOG_FORMAT"`
	Port            int           `envconfig:"PORT"`
	Watchlist       string        `envconfig:"WATCHLIST_BACKEND"`
	RedisAddr       string        `envconfig:"REDIS_ADDR"`
	RedisPassword   string        `envconfig:"REDIS_PASSWORD"`
	KafkaEnabled    bool          `envconfig:"KAFKA_ENABLED"`
	KafkaBrokers    []string      `envconfig:"KAFKA_BROKERS"`
	KafkaTopic      string        `envconfig:"KAFKA_TOPIC"`
}

var validate = validator.New()

// Default returns a configuration with every default applied.
func Default() (*Config, error) {
	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}
	return &c, nil
}

// Load reads and parses a YAML configuration file. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config from YAML (if any), then overrides with a .env file
// and TOKENSCOPE_* environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() error {
	var env envOverlay
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("process env config: %w", err)
	}

	if env.APIKey != "" {
		c.API.Key = env.APIKey
	}
	if env.BaseURL != "" {
		c.API.BaseURL = env.BaseURL
	}
	if env.Timeout > 0 {
		c.API.Timeout = env.Timeout
	}
	if env.FallbackTimeout > 0 {
		c.Fallback.Timeout = env.FallbackTimeout
	}
	if env.LogLevel != "" {
		c.Log.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Log.Format = env.LogFormat
	}
	if env.Port != 0 {
		c.Server.Port = env.Port
	}
	if env.Watchlist != "" {
		c.Watchlist.Backend = env.Watchlist
	}
	if env.RedisAddr != "" {
		c.Watchlist.Redis.Addr = env.RedisAddr
	}
	if env.RedisPassword != "" {
		c.Watchlist.Redis.Password = env.RedisPassword
	}
	if env.KafkaEnabled {
		c.Kafka.Enabled = true
	}
	if len(env.KafkaBrokers) > 0 {
		c.Kafka.Brokers = env.KafkaBrokers
	}
	if env.KafkaTopic != "" {
		c.Kafka.Topic = env.KafkaTopic
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	return validate.Struct(c)
}
