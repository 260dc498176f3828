package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server        ServerConfig        `yaml:"server"`
	Database      DatabaseConfig      `yaml:"database"`
	Auth          AuthConfig          `yaml:"auth"`
	Log           LogConfig           `yaml:"log"`
	CORS          CORSConfig          `yaml:"cors"`
	Ledger        LedgerConfig        `yaml:"ledger"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// CORSConfig holds CORS settings. Bool fields carry no env-default since
// cleanenv would apply it over an explicit false.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host               string        `yaml:"host"                  env:"SERVER_HOST"                  env-default:"0.0.0.0"`
	Port               int           `yaml:"port"                  env:"SERVER_PORT"                  env-default:"8080"`
	ReadTimeout        time.Duration `yaml:"read_timeout"          env:"SERVER_READ_TIMEOUT"          env-default:"10s"`
	WriteTimeout       time.Duration `yaml:"write_timeout"         env:"SERVER_WRITE_TIMEOUT"         env-default:"30s"`
	IdleTimeout        time.Duration `yaml:"idle_timeout"          env:"SERVER_IDLE_TIMEOUT"          env-default:"60s"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"      env:"SERVER_SHUTDOWN_TIMEOUT"      env-default:"10s"`
	RateLimitPerMinute int           `yaml:"rate_limit_per_minute" env:"SERVER_RATE_LIMIT_PER_MINUTE" env-default:"300"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access-token validation settings. Tokens are issued by
// the identity provider in front of this service.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"book-pass-on"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"15m"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// LedgerConfig toggles optional request lifecycle behavior. Both flags
// default to off, which keeps competing requests pending and the textbook
// available until pickup.
type LedgerConfig struct {
	ReserveOnApprove    bool `yaml:"reserve_on_approve"    env:"LEDGER_RESERVE_ON_APPROVE"    env-default:"false"`
	AutoRejectCompeting bool `yaml:"auto_reject_competing" env:"LEDGER_AUTO_REJECT_COMPETING" env-default:"false"`
}

// NotificationsConfig holds change-feed and push settings. The database
// change feed is on unless ListenDisabled is set, in which case the ledger
// publishes to the hub in-process.
type NotificationsConfig struct {
	ListenDisabled    bool          `yaml:"listen_disabled"    env:"NOTIFY_LISTEN_DISABLED"`
	Channel           string        `yaml:"channel"            env:"NOTIFY_CHANNEL"            env-default:"book_changes"`
	SubscriberBuffer  int           `yaml:"subscriber_buffer"  env:"NOTIFY_SUBSCRIBER_BUFFER"  env-default:"16"`
	ReconnectDelay    time.Duration `yaml:"reconnect_delay"    env:"NOTIFY_RECONNECT_DELAY"    env-default:"2s"`
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval" env:"NOTIFY_HEARTBEAT_INTERVAL" env-default:"25s"`
}
