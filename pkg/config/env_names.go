package config

// EnvPrefix is passed to envconfig; individual fields carry explicit names.
const EnvPrefix = "GOSHOP"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "GOSHOP_APP_ENV"
	EnvPort     = "GOSHOP_APP_PORT"
	EnvDBDSN    = "GOSHOP_DB_DSN"
	EnvDBHost   = "GOSHOP_DB_HOST"
	EnvDBUser   = "GOSHOP_DB_USER"
	EnvDBName   = "GOSHOP_DB_NAME"
	EnvRedisURL = "GOSHOP_REDIS_URL"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
