package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting, bound from environment variables with
// sane development defaults.
type Config struct {
	Port     string
	LogLevel string

	DB struct {
		Host    string
		Port    string
		User    string
		Pass    string
		Name    string
		SSLMode string
	}

	// StorageDriver selects the persistence backend: "postgres" or "memory".
	// The memory driver exists for local development and is seeded with
	// reference data on startup.
	StorageDriver string

	Redis struct {
		Addr string
		Pass string
	}

	JWT struct {
		Secret string
		Issuer string
		TTL    time.Duration
	}

	ResetTokenTTL time.Duration

	// FileBackend selects where CVs are stored: "local" or "s3".
	FileBackend  string
	ResourcesDir string

	AWS struct {
		Region string
		Bucket string
		Prefix string
	}
}

// LoadConfig binds configuration from the environment.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", "5432")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.pass", "postgres")
	v.SetDefault("db.name", "vacancies")
	v.SetDefault("db.sslmode", "disable")

	v.SetDefault("storage.driver", "postgres")

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pass", "")

	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "vacancy-management")
	v.SetDefault("jwt.ttl", "1h")

	v.SetDefault("reset.token.ttl", "15m")

	v.SetDefault("file.backend", "local")
	v.SetDefault("resources.dir", "Resources")

	v.SetDefault("aws.region", "")
	v.SetDefault("aws.bucket", "")
	v.SetDefault("aws.prefix", "cv")

	cfg := &Config{}
	cfg.Port = v.GetString("port")
	cfg.LogLevel = v.GetString("log.level")

	cfg.DB.Host = v.GetString("db.host")
	cfg.DB.Port = v.GetString("db.port")
	cfg.DB.User = v.GetString("db.user")
	cfg.DB.Pass = v.GetString("db.pass")
	cfg.DB.Name = v.GetString("db.name")
	cfg.DB.SSLMode = v.GetString("db.sslmode")

	cfg.StorageDriver = v.GetString("storage.driver")
	if cfg.StorageDriver != "postgres" && cfg.StorageDriver != "memory" {
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	cfg.Redis.Addr = v.GetString("redis.addr")
	cfg.Redis.Pass = v.GetString("redis.pass")

	cfg.JWT.Secret = v.GetString("jwt.secret")
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.JWT.TTL = v.GetDuration("jwt.ttl")

	cfg.ResetTokenTTL = v.GetDuration("reset.token.ttl")

	cfg.FileBackend = v.GetString("file.backend")
	if cfg.FileBackend != "local" && cfg.FileBackend != "s3" {
		return nil, fmt.Errorf("unknown file backend %q", cfg.FileBackend)
	}
	cfg.ResourcesDir = v.GetString("resources.dir")

	cfg.AWS.Region = v.GetString("aws.region")
	cfg.AWS.Bucket = v.GetString("aws.bucket")
	cfg.AWS.Prefix = v.GetString("aws.prefix")

	if cfg.FileBackend == "s3" && cfg.AWS.Bucket == "" {
		return nil, fmt.Errorf("aws bucket is required for the s3 file backend")
	}

	return cfg, nil
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DB.Host, c.DB.Port, c.DB.User, c.DB.Pass, c.DB.Name, c.DB.SSLMode)
}
