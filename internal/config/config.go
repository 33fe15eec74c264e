package config

import (
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	UserDirectory UserDirectory
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1"`
}

// UserDirectory configures the order service's client for the user
// service. The user service itself ignores this section.
type UserDirectory struct {
	BaseURL string        `validate:"required,url"`
	Timeout time.Duration `validate:"gt=0"`
}

// New reads configuration from the environment. Each service passes its own
// default port (user-service 3001, order-service 3002).
func New(defaultPort string) Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", defaultPort),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		UserDirectory: UserDirectory{
			BaseURL: env("USER_SERVICE_URL", "http://localhost:3001"),
			Timeout: envDuration("USER_SERVICE_TIMEOUT", 5*time.Second),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}
