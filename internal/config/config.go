package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const dotEnvFile = ".env"

type App struct {
	Port               string        `env:"PORT" envDefault:"3000"`
	DBConnectionURL    string        `env:"DB_CONNECTION_URL,required,notEmpty"`
	LogLevel           string        `env:"LOG_LEVEL" envDefault:"info"`
	DBLogLevel         string        `env:"DB_LOG_LEVEL" envDefault:"warn"`
	StaticDir          string        `env:"STATIC_DIR" envDefault:"public"`
	ViewsDir           string        `env:"VIEWS_DIR" envDefault:"views"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// NewAppConfig reads the application configuration from the environment.
// Values from a local .env file are loaded first but never override
// variables that are already set.
func NewAppConfig() (App, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return App{}, fmt.Errorf("load %s file: %w", dotEnvFile, err)
	}

	cfg, err := env.ParseAs[App]()
	if err != nil {
		return App{}, fmt.Errorf("parse environment: %w", err)
	}

	return cfg, nil
}
