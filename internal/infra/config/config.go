// internal/infra/config/config.go
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Backing selects which persistence stack the container wires.
const (
	BackingMemory    = "memory"
	BackingFirestore = "firestore"
	BackingPostgres  = "postgres"
)

// Config holds every environment-driven setting. One struct for the whole
// process; the container decides which fields matter for the chosen backing.
type Config struct {
	Port         string `env:"PORT" envDefault:"8080"`
	StoreBacking string `env:"STORE_BACKING" envDefault:"memory"`

	// Firestore (STORE_BACKING=firestore)
	FirestoreProjectID       string `env:"FIRESTORE_PROJECT_ID"`
	FirestoreCredentialsFile string `env:"FIRESTORE_CREDENTIALS_FILE"`

	// PostgreSQL (STORE_BACKING=postgres)
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"urbanthreads"`

	// Session tokens. JWTSecretName, when set, wins over JWTSecret and is
	// resolved through Secret Manager at boot.
	JWTSecret     string `env:"JWT_SECRET"`
	JWTSecretName string `env:"JWT_SECRET_NAME"`

	// Mail
	SendGridAPIKey string `env:"SENDGRID_API_KEY"`
	SendGridFrom   string `env:"SENDGRID_FROM" envDefault:"no-reply@urbanthreads.dev"`
	StoreBaseURL   string `env:"STORE_BASE_URL" envDefault:"https://urbanthreads.dev"`

	// CORS allowed origins, comma separated. Empty disables cross-origin calls.
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`

	// Memory mode convenience: load fixtures on boot.
	SeedOnBoot bool `env:"SEED_ON_BOOT" envDefault:"true"`
}

// Load parses the environment and validates the backing selection.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.StoreBacking = strings.ToLower(strings.TrimSpace(cfg.StoreBacking))
	switch cfg.StoreBacking {
	case BackingMemory, BackingFirestore, BackingPostgres:
	default:
		return Config{}, fmt.Errorf("STORE_BACKING must be one of memory|firestore|postgres, got %q", cfg.StoreBacking)
	}

	if cfg.StoreBacking == BackingFirestore && strings.TrimSpace(cfg.FirestoreProjectID) == "" {
		return Config{}, fmt.Errorf("FIRESTORE_PROJECT_ID is required when STORE_BACKING=firestore")
	}

	return cfg, nil
}

// Origins splits AllowedOrigins into a slice for the CORS middleware.
func (c Config) Origins() []string {
	raw := strings.Split(c.AllowedOrigins, ",")
	out := make([]string, 0, len(raw))
	for _, o := range raw {
		if t := strings.TrimSpace(o); t != "" {
			out = append(out, t)
		}
	}
	return out
}
