package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	env "github.com/caarlos0/env/v6"
	validator "github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is read from MS_* environment variables, optionally seeded by a .env
// file in the working directory.
type Config struct {
	ServerURL      string        `env:"MS_SERVER_URL" envDefault:"http://127.0.0.1:5000" validate:"required,url"`
	SocketURL      string        `env:"MS_SOCKET_URL" envDefault:"http://localhost:5000" validate:"required,url"`
	LogLevel       string        `env:"MS_LOG_LEVEL" envDefault:"error" validate:"loglevel"`
	RequestTimeout time.Duration `env:"MS_REQUEST_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	StatusDrain    time.Duration `env:"MS_STATUS_DRAIN" envDefault:"2s" validate:"gte=0"`
	// SessionPath overrides session.path from ~/.mindscreen/config.toml.
	SessionPath string `env:"MS_SESSION_PATH"`
}

var allowedLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

type loadOptions struct {
	dotenvFiles []string
}

type LoadOption func(*loadOptions)

// WithDotenvFiles replaces the default .env lookup. Passing no files disables it.
func WithDotenvFiles(files ...string) LoadOption {
	return func(o *loadOptions) {
		o.dotenvFiles = files
	}
}

func Load(opts ...LoadOption) (Config, error) {
	options := loadOptions{dotenvFiles: []string{".env"}}
	for _, opt := range opts {
		opt(&options)
	}

	for _, file := range options.dotenvFiles {
		// Existing environment variables win over the file.
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation("loglevel", validateLogLevel); err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

func validateLogLevel(fieldLevel validator.FieldLevel) bool {
	return allowedLogLevels[fieldLevel.Field().String()]
}
