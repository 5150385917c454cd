package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

const (
	// SessionStoreMemory keeps form state in process
	SessionStoreMemory = "memory"
	// SessionStoreRedis keeps form state in redis
	SessionStoreRedis = "redis"
)

const (
	// DirectorySourceFile serves customers from JSON seed file
	DirectorySourceFile = "file"
	// DirectorySourcePostgres serves customers from postgres
	DirectorySourcePostgres = "postgres"
	// DirectorySourceMongo serves customers from mongodb
	DirectorySourceMongo = "mongo"
)

type LogCfg struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

type SearchHTTPCfg struct {
	Port            int           `env:"SEARCH_HTTP_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SEARCH_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type DirectoryHTTPCfg struct {
	Port            int           `env:"DIRECTORY_HTTP_PORT" envDefault:"3001"`
	ShutdownTimeout time.Duration `env:"DIRECTORY_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type CustomersAPICfg struct {
	BaseURL string        `env:"CUSTOMERS_API_BASE_URL" envDefault:"http://localhost:3001"`
	Timeout time.Duration `env:"CUSTOMERS_API_TIMEOUT" envDefault:"0s"`
}

type SessionCfg struct {
	Store      string        `env:"SESSION_STORE" envDefault:"memory"`
	TimeToLive time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"customer-search-session"`
}

type RedisCfg struct {
	Addr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type PostgresCfg struct {
	User        string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password    string `env:"POSTGRES_PASSWORD" envDefault:""`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	Database    string `env:"POSTGRES_DB" envDefault:"customers"`
	SslMode     string `env:"POSTGRES_SLL_MODE" envDefault:"disable"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"10"`
}

type MongoCfg struct {
	User        string `env:"MONGO_USER" envDefault:""`
	Password    string `env:"MONGO_PASSWORD" envDefault:""`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DB" envDefault:"customers"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// SearchCfg is configuration of customer search web application
type SearchCfg struct {
	LogCfg          LogCfg
	HTTPCfg         SearchHTTPCfg
	CustomersAPICfg CustomersAPICfg
	SessionCfg      SessionCfg
	RedisCfg        RedisCfg
}

// DirectoryCfg is configuration of customers directory API
type DirectoryCfg struct {
	LogCfg      LogCfg
	HTTPCfg     DirectoryHTTPCfg
	Source      string `env:"DIRECTORY_SOURCE" envDefault:"file"`
	SeedFile    string `env:"DIRECTORY_SEED_FILE" envDefault:"testdata/customers.json"`
	SeedOnStart bool   `env:"DIRECTORY_SEED_ON_START" envDefault:"true"`
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
}

// BuildSearch reads SearchCfg from environment
func BuildSearch() (SearchCfg, error) {
	var cfg SearchCfg
	if err := parse(&cfg); err != nil {
		return cfg, err
	}

	switch cfg.SessionCfg.Store {
	case SessionStoreMemory, SessionStoreRedis:
	default:
		return cfg, fmt.Errorf("unsupported session store %q", cfg.SessionCfg.Store)
	}
	return cfg, nil
}

// BuildDirectory reads DirectoryCfg from environment
func BuildDirectory() (DirectoryCfg, error) {
	var cfg DirectoryCfg
	if err := parse(&cfg); err != nil {
		return cfg, err
	}

	switch cfg.Source {
	case DirectorySourceFile, DirectorySourcePostgres, DirectorySourceMongo:
	default:
		return cfg, fmt.Errorf("unsupported directory source %q", cfg.Source)
	}
	return cfg, nil
}

func parse(cfg any) error {
	opts := env.Options{RequiredIfNoDef: true}
	if err := env.Parse(cfg, opts); err != nil {
		return fmt.Errorf("failed to parse environment variables - %w", err)
	}
	return nil
}
