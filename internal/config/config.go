// Package config loads the service settings from defaults, an optional
// config file and SHOPHUB_* environment variables.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Log         LogConfig         `mapstructure:"log"`
	Catalog     CatalogConfig     `mapstructure:"catalog"`
	Cache       CacheConfig       `mapstructure:"cache"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Persistence PersistenceConfig `mapstructure:"persistence"`
	Auth        AuthConfig        `mapstructure:"auth"`
	RateLimit   RateLimitConfig   `mapstructure:"ratelimit"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	TrustProxy      bool          `mapstructure:"trust_proxy"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CatalogConfig struct {
	// Source is one of remote, postgres or memory.
	Source         string        `mapstructure:"source"`
	BaseURL        string        `mapstructure:"base_url"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	StaleTime      time.Duration `mapstructure:"stale_time"`
	FeaturedLimit  int           `mapstructure:"featured_limit"`
	Locale         string        `mapstructure:"locale"`
	// SyncOnStart copies the remote catalog into Postgres before serving.
	SyncOnStart bool `mapstructure:"sync_on_start"`
}

type CacheConfig struct {
	// Backend is one of memory, redis or none.
	Backend string `mapstructure:"backend"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

type PersistenceConfig struct {
	// Backend is one of none, memory, redis or postgres.
	Backend       string        `mapstructure:"backend"`
	TTL           time.Duration `mapstructure:"ttl"`
	IdleTimeout   time.Duration `mapstructure:"idle_timeout"`
	SweepInterval time.Duration `mapstructure:"sweep_interval"`
}

type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
	// MaxStrikes rejected requests inside StrikeWindow ban the client for BanDuration. Zero disables bans.
	MaxStrikes   int           `mapstructure:"max_strikes"`
	StrikeWindow time.Duration `mapstructure:"strike_window"`
	BanDuration  time.Duration `mapstructure:"ban_duration"`
}

var ErrInvalid = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.trust_proxy", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("catalog.source", "remote")
	v.SetDefault("catalog.base_url", "https://fakestoreapi.com")
	v.SetDefault("catalog.request_timeout", 10*time.Second)
	v.SetDefault("catalog.stale_time", 5*time.Minute)
	v.SetDefault("catalog.featured_limit", 8)
	v.SetDefault("catalog.locale", "en")
	v.SetDefault("catalog.sync_on_start", false)
	v.SetDefault("cache.backend", "memory")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.url", "")
	v.SetDefault("persistence.backend", "none")
	v.SetDefault("persistence.ttl", 30*24*time.Hour)
	v.SetDefault("persistence.idle_timeout", 2*time.Hour)
	v.SetDefault("persistence.sweep_interval", 10*time.Minute)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_ttl", 30*24*time.Hour)
	v.SetDefault("ratelimit.rps", 10.0)
	v.SetDefault("ratelimit.burst", 20)
	v.SetDefault("ratelimit.max_strikes", 5)
	v.SetDefault("ratelimit.strike_window", time.Minute)
	v.SetDefault("ratelimit.ban_duration", 15*time.Minute)
}

// Load reads the configuration. configFile may be empty, in which case a
// config.yaml in the working directory is used when present.
func Load(configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SHOPHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch c.Catalog.Source {
	case "remote", "postgres", "memory":
	default:
		return errors.Join(ErrInvalid, errors.New("catalog.source must be remote, postgres or memory"))
	}
	switch c.Cache.Backend {
	case "memory", "redis", "none":
	default:
		return errors.Join(ErrInvalid, errors.New("cache.backend must be memory, redis or none"))
	}
	switch c.Persistence.Backend {
	case "none", "memory", "redis", "postgres":
	default:
		return errors.Join(ErrInvalid, errors.New("persistence.backend must be none, memory, redis or postgres"))
	}
	if (c.Catalog.Source == "postgres" || c.Persistence.Backend == "postgres") && c.Database.URL == "" {
		return errors.Join(ErrInvalid, errors.New("database.url is required for the postgres backends"))
	}
	if c.Auth.JWTSecret == "" {
		return errors.Join(ErrInvalid, errors.New("auth.jwt_secret is required"))
	}
	return nil
}
