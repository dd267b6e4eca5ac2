package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Quote        QuoteConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GOSHOP_APP_ENV" required:"true"`
	Port         string `envconfig:"GOSHOP_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"GOSHOP_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GOSHOP_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"GOSHOP_DB_DSN"`
	Driver string `envconfig:"GOSHOP_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"GOSHOP_DB_HOST"`
	LegacyPort     int    `envconfig:"GOSHOP_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"GOSHOP_DB_USER"`
	LegacyPassword string `envconfig:"GOSHOP_DB_PASSWORD"`
	LegacyName     string `envconfig:"GOSHOP_DB_NAME"`
	LegacySSLMode  string `envconfig:"GOSHOP_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"GOSHOP_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"GOSHOP_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"GOSHOP_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GOSHOP_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"GOSHOP_REDIS_URL" required:"true"`
	Address      string        `envconfig:"GOSHOP_REDIS_ADDR"`
	Password     string        `envconfig:"GOSHOP_REDIS_PASSWORD"`
	DB           int           `envconfig:"GOSHOP_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"GOSHOP_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"GOSHOP_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"GOSHOP_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"GOSHOP_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"GOSHOP_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// QuoteConfig tunes the cart quote engine.
type QuoteConfig struct {
	Currency        string        `envconfig:"GOSHOP_QUOTE_CURRENCY" default:"USD"`
	DefaultCountry  string        `envconfig:"GOSHOP_QUOTE_DEFAULT_COUNTRY" default:"US"`
	CouponCacheTTL  time.Duration `envconfig:"GOSHOP_QUOTE_COUPON_CACHE_TTL" default:"2m"`
	MaxSnapshotSize int           `envconfig:"GOSHOP_QUOTE_MAX_SNAPSHOT_SIZE" default:"100"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"GOSHOP_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"GOSHOP_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
