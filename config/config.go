package config

// HTTPServer struct for HTTP Transport configuration
type HTTPServer struct {
	Port int `yaml:"port"`
}

// Transport is a configuration for the inbound transport.
type Transport struct {
	HTTP HTTPServer `yaml:"http"`
}

// Database is the relational store connection. An empty DSN (and no
// DATABASE_URL in the environment) means the service runs without the
// persistent store: token registration degrades to warning-only and news
// endpoints answer with a configuration error.
type Database struct {
	Disable bool   `yaml:"disable"`
	Debug   bool   `yaml:"debug"` // log every sql statement
	DSN     string `yaml:"dsn"`
}

// Redis is only required when tokenStore is "redis".
type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// PushDelivery points at the upstream push-delivery API.
type PushDelivery struct {
	Endpoint string `yaml:"endpoint"`
}

const (
	TokenStoreNone     = "none"
	TokenStoreMemory   = "memory"
	TokenStoreRedis    = "redis"
	TokenStorePostgres = "postgres"
)

// Config contains application config
type Config struct {
	Transport Transport `yaml:"transport"`

	Database Database `yaml:"database"`

	Redis Redis `yaml:"redis"`

	// TokenStore selects where push tokens live: none, memory, redis or
	// postgres. Empty value is derived: postgres when a DSN is set, none
	// otherwise.
	TokenStore string `yaml:"tokenStore" validate:"omitempty,oneof=none memory redis postgres"`

	PushDelivery PushDelivery `yaml:"pushDelivery"`
}
