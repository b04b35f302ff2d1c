package config

import (
	"crypto"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/golang-jwt/jwt/v4"
)

const jwtSigningAlgorithmEd25519 = "EdDSA"

// Storage backends selectable via STORAGE_BACKEND
const (
	BackendPostgres = "postgres"
	BackendMongo    = "mongo"
)

// ServerCfg is http server configuration
type ServerCfg struct {
	Port            int           `env:"SERVER_PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	ConnectTimeout  time.Duration `env:"STORAGE_CONNECT_TIMEOUT" envDefault:"5s"`
}

// StorageCfg selects the active persistence backend
type StorageCfg struct {
	Backend string `env:"STORAGE_BACKEND" envDefault:"postgres"`
}

// PostgresCfg is relational backend configuration
type PostgresCfg struct {
	User        string `env:"POSTGRES_USER"`
	Password    string `env:"POSTGRES_PASSWORD"`
	Database    string `env:"POSTGRES_DB"`
	Host        string `env:"POSTGRES_HOST" envDefault:"localhost"`
	SslMode     string `env:"POSTGRES_SSL_MODE" envDefault:"disable"`
	Port        int    `env:"POSTGRES_PORT" envDefault:"5432"`
	PoolMaxConn int    `env:"POSTGRES_POOL_MAX_CONN" envDefault:"100"`
}

// MongoCfg is document backend configuration
type MongoCfg struct {
	User        string `env:"MONGO_USER"`
	Password    string `env:"MONGO_PASSWORD"`
	Host        string `env:"MONGO_HOST" envDefault:"localhost"`
	Port        int    `env:"MONGO_PORT" envDefault:"27017"`
	Database    string `env:"MONGO_DATABASE" envDefault:"clienthub"`
	MaxPoolSize int    `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`
}

// AuthCfg holds identity provider token verification settings
type AuthCfg struct {
	Issuer        string `env:"AUTH_JWT_ISSUER" envDefault:"clienthub-idp"`
	SigningMethod jwt.SigningMethod
	PublicKey     crypto.PublicKey
}

// Config is aggregated application configuration
type Config struct {
	ServerCfg   ServerCfg
	StorageCfg  StorageCfg
	PostgresCfg PostgresCfg
	MongoCfg    MongoCfg
	AuthCfg     AuthCfg
}

// Build reads configuration from environment variables
func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	if b := cfg.StorageCfg.Backend; b != BackendPostgres && b != BackendMongo {
		return cfg, fmt.Errorf("unknown storage backend %q", b)
	}

	cfg.AuthCfg.SigningMethod = jwt.GetSigningMethod(jwtSigningAlgorithmEd25519)

	jwtPublicKeyFile := os.Getenv("AUTH_JWT_PUBLIC_KEY_FILE")
	jwtPublicKeyBytes, err := os.ReadFile(jwtPublicKeyFile)
	if err != nil {
		return cfg, fmt.Errorf("failed to read identity provider public key file - %w", err)
	}

	jwtPublicKey, err := jwt.ParseEdPublicKeyFromPEM(jwtPublicKeyBytes)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse identity provider public key - %w", err)
	}
	cfg.AuthCfg.PublicKey = jwtPublicKey

	return cfg, nil
}
