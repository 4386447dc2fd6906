// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment names
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix is prepended to every environment variable, e.g. BID_REDIS_ADDR
const EnvPrefix = "BID"

// Config holds all configuration for the binaries
type Config struct {
	Environment string          `mapstructure:"environment"`
	Log         LogConfig       `mapstructure:"log"`
	Server      ServerConfig    `mapstructure:"server"`
	Auction     AuctionConfig   `mapstructure:"auction"`
	Redis       RedisConfig     `mapstructure:"redis"`
	Lock        LockConfig      `mapstructure:"lock"`
	Database    DatabaseConfig  `mapstructure:"database"`
	RabbitMQ    RabbitMQConfig  `mapstructure:"rabbitmq"`
	Relay       RelayConfig     `mapstructure:"relay"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
	Tracing     TracingConfig   `mapstructure:"tracing"`
	Simulator   SimulatorConfig `mapstructure:"simulator"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ServerConfig contains RPC server settings. TLS is served when both the
// certificate and key are set, cleartext HTTP/2 otherwise.
type ServerConfig struct {
	Addr              string        `mapstructure:"addr"`
	TLSCert           string        `mapstructure:"tls_cert"`
	TLSKey            string        `mapstructure:"tls_key"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// TLSEnabled reports whether both TLS files are configured
func (c ServerConfig) TLSEnabled() bool {
	return c.TLSCert != "" && c.TLSKey != ""
}

type AuctionConfig struct {
	ID string `mapstructure:"id"`
}

type RedisConfig struct {
	Addr      string `mapstructure:"addr"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	DB        int    `mapstructure:"db"`
	KeyPrefix string `mapstructure:"key_prefix"`
}

// LockConfig tunes the per-lot mutex
type LockConfig struct {
	Lease         time.Duration `mapstructure:"lease"`
	RetryInterval time.Duration `mapstructure:"retry_interval"`
	MaxWait       time.Duration `mapstructure:"max_wait"`
	MaxAttempts   int           `mapstructure:"max_attempts"`
}

type DatabaseConfig struct {
	URL         string        `mapstructure:"url"`
	LockTimeout time.Duration `mapstructure:"lock_timeout"`
}

type RabbitMQConfig struct {
	URL      string `mapstructure:"url"`
	Exchange string `mapstructure:"exchange"`
}

// RelayConfig tunes the stream relay worker
type RelayConfig struct {
	BatchSize int           `mapstructure:"batch_size"`
	Interval  time.Duration `mapstructure:"interval"`
	Group     string        `mapstructure:"group"`
	Consumer  string        `mapstructure:"consumer"`
}

type MetricsConfig struct {
	Addr string `mapstructure:"addr"`
}

type TracingConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// SimulatorConfig drives the load simulation client
type SimulatorConfig struct {
	Target      string        `mapstructure:"target"`
	LotID       string        `mapstructure:"lot_id"`
	Duration    time.Duration `mapstructure:"duration"`
	Concurrency int           `mapstructure:"concurrency"`
	Paddles     []string      `mapstructure:"paddles"`
	StartAmount int64         `mapstructure:"start_amount"`
}

// Load reads .env.local and .env (local overrides .env, real environment
// variables override both) and decodes the BID_* environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	cfg.Environment = strings.ToLower(cfg.Environment)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers a default for every key. AutomaticEnv only resolves
// keys viper already knows about.
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", Development)
	v.SetDefault("log.level", "info")

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.tls_cert", "")
	v.SetDefault("server.tls_key", "")
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("auction.id", "1")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.username", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.key_prefix", "")

	v.SetDefault("lock.lease", time.Second)
	v.SetDefault("lock.retry_interval", 10*time.Millisecond)
	v.SetDefault("lock.max_wait", 5*time.Second)
	v.SetDefault("lock.max_attempts", 0)

	v.SetDefault("database.url", "")
	v.SetDefault("database.lock_timeout", time.Second)

	v.SetDefault("rabbitmq.url", "")
	v.SetDefault("rabbitmq.exchange", "auction.events")

	v.SetDefault("relay.batch_size", 100)
	v.SetDefault("relay.interval", 500*time.Millisecond)
	v.SetDefault("relay.group", "bid-archiver")
	v.SetDefault("relay.consumer", "worker-1")

	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("tracing.enabled", false)

	v.SetDefault("simulator.target", "http://localhost:8080")
	v.SetDefault("simulator.lot_id", "6e8bc430-9c3a-11d9-9669-0800200c9a66")
	v.SetDefault("simulator.duration", time.Minute)
	v.SetDefault("simulator.concurrency", 1)
	v.SetDefault("simulator.paddles", []string{"R-1", "R-2", "P-3", "P-4"})
	v.SetDefault("simulator.start_amount", 100)
}

// Validate checks the settings every binary relies on
func (c *Config) Validate() error {
	switch c.Environment {
	case Development, Production, Test:
	default:
		return fmt.Errorf("unknown environment %q", c.Environment)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Auction.ID == "" {
		return errors.New("auction id is required")
	}
	if c.Lock.Lease <= 0 {
		return fmt.Errorf("lock lease must be positive, got %s", c.Lock.Lease)
	}
	if c.Lock.RetryInterval <= 0 {
		return fmt.Errorf("lock retry interval must be positive, got %s", c.Lock.RetryInterval)
	}
	if c.Lock.MaxWait <= 0 && c.Lock.MaxAttempts <= 0 {
		return errors.New("lock wait must be bounded by max wait or max attempts")
	}
	if c.Relay.BatchSize <= 0 {
		return fmt.Errorf("relay batch size must be positive, got %d", c.Relay.BatchSize)
	}
	if c.Relay.Interval <= 0 {
		return fmt.Errorf("relay interval must be positive, got %s", c.Relay.Interval)
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("tls cert and key must be set together")
	}
	return nil
}
