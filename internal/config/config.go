package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config holds everything the server reads from the environment.
type Config struct {
	// DSN is the MySQL data source name, e.g.
	// "storefront:secret@tcp(127.0.0.1:3306)/storefront?parseTime=true&multiStatements=true"
	DSN  string `envconfig:"DB_DSN" required:"true"`
	Port string `envconfig:"PORT" default:"8080"`

	// AllowedOrigin is the single frontend origin CORS will accept.
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"http://localhost:5173"`

	// Admin dashboard credential and the secret used to sign its JWTs.
	AdminEmail    string `envconfig:"ADMIN_EMAIL" required:"true"`
	AdminPassword string `envconfig:"ADMIN_PASSWORD" required:"true"`
	JWTSecret     string `envconfig:"JWT_SECRET" required:"true"`

	// CartSessionTTL is how long an idle shopper session (and its cart)
	// survives before the janitor evicts it.
	CartSessionTTL time.Duration `envconfig:"CART_SESSION_TTL" default:"2h"`
}

// Load reads .env (if present) into the environment, then parses the config.
func Load() (*Config, error) {
	// A missing .env is fine; containers set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "parse environment")
	}
	return &cfg, nil
}
