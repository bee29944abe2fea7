package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/joho/godotenv"
)

const (
	PasswordHasherArgon2 = "argon2"
	PasswordHasherBcrypt = "bcrypt"

	NotifierLog      = "log"
	NotifierRabbitmq = "rabbitmq"
)

type Config struct {
	IsTestMode bool `env:"TEST_MODE" envDefault:"false"`
	Port       int  `env:"PORT" envDefault:"8000"`

	PostgresqlURL  string `env:"DATABASE_URL" envDefault:"postgresql://postgres:postgres@db:5432/user_registration"`
	MigrateOnStart bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	ActivationCodeTTL time.Duration `env:"ACTIVATION_CODE_TTL" envDefault:"1m"`

	PasswordHasher   string `env:"PASSWORD_HASHER" envDefault:"argon2"`
	BcryptHasherCost int    `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	Secret           string `env:"PASSWORD_SECRET"`

	Notifier         string `env:"NOTIFIER" envDefault:"log"`
	RabbitmqURL      string `env:"RABBITMQ_URL"`
	RabbitmqExchange string `env:"RABBITMQ_EXCHANGE" envDefault:"registration.events"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	SentryDsn      *url.URL `env:"SENTRY_DSN"`
}

// Load reads an optional .env file from the working directory and then
// the process environment. Variables already set in the environment win.
func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("could not read .env file: %w", err)
	}
	return parse(env.Options{})
}

// Parse builds the config from the given variables only.
func Parse(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg, opts)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	brokerRules := []validation.Rule{}
	if c.Notifier == NotifierRabbitmq {
		brokerRules = append(brokerRules, validation.Required)
	}
	return validation.ValidateStruct(
		c,
		validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
		validation.Field(&c.PostgresqlURL, validation.Required),
		validation.Field(&c.ActivationCodeTTL, validation.Required, validation.Min(time.Second)),
		validation.Field(
			&c.PasswordHasher,
			validation.Required,
			validation.In(PasswordHasherArgon2, PasswordHasherBcrypt),
		),
		validation.Field(&c.BcryptHasherCost, validation.Min(4), validation.Max(31)),
		validation.Field(&c.Notifier, validation.Required, validation.In(NotifierLog, NotifierRabbitmq)),
		validation.Field(&c.RabbitmqURL, brokerRules...),
		validation.Field(&c.RabbitmqExchange, brokerRules...),
	)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
