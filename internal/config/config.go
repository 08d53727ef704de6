package config

import (
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Environment string

const (
	EnvLocal      Environment = "local"
	EnvDev        Environment = "dev"
	EnvStage      Environment = "stage"
	EnvProduction Environment = "production"
)

// TimeZone is the salon's wall-clock location. All schedule times and
// the ranking "now" are interpreted in it; set from APP_TIMEZONE.
var TimeZone = time.UTC

type ConfigBasicClient struct {
	Username string
	Password string
}

type Config struct {
	App struct {
		Version  string      `env:"APP_VERSION" envDefault:"local"`
		Env      Environment `env:"APP_ENV" envDefault:"local"`
		Timezone string      `env:"APP_TIMEZONE" envDefault:"Asia/Ho_Chi_Minh"`
	}

	HTTP struct {
		Port string `env:"HTTP_SERVER_PORT" envDefault:"8080"`
		Host string `env:"HTTP_SERVER_HOST" envDefault:"localhost"`
	}

	Supabase struct {
		URL        string `env:"SUPABASE_URL"`
		ServiceKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`
	}

	Auth struct {
		BasicClientsString string `env:"AUTH_BASIC_CLIENTS" envDefault:"front_desk:front_desk"`
		BasicClients       []ConfigBasicClient
	}

	RabbitMQ struct {
		Enabled  bool   `env:"RABBITMQ_ENABLED"`
		AmqpUri  string `env:"RABBITMQ_URL"`
		Queue    string `env:"RABBITMQ_QUEUE" envDefault:"salon.front-desk.changes"`
		Exchange string `env:"RABBITMQ_EXCHANGE" envDefault:"salon.changes"`
	}

	Cache struct {
		Enabled   bool          `env:"CACHE_ENABLED"`
		DaysSize  int           `env:"CACHE_DAYS_SIZE" envDefault:"64"`
		RosterTTL time.Duration `env:"CACHE_ROSTER_TTL" envDefault:"5m"`
	}
}

func NewConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.App.Env = Environment(strings.ToLower(string(cfg.App.Env)))

	if location, err := time.LoadLocation(cfg.App.Timezone); err == nil {
		TimeZone = location
	}

	if cfg.Auth.BasicClients == nil {
		cfg.Auth.BasicClients = []ConfigBasicClient{}
	}
	clientPairs := strings.Split(cfg.Auth.BasicClientsString, ",")
	for _, pair := range clientPairs {
		parts := strings.Split(pair, ":")
		if len(parts) == 2 {
			cfg.Auth.BasicClients = append(cfg.Auth.BasicClients, ConfigBasicClient{
				Username: parts[0],
				Password: parts[1],
			})
		}
	}

	// Change events are what keeps the cache honest; without them a
	// stale snapshot would survive edits, so the cache stays off
	if !cfg.RabbitMQ.Enabled {
		cfg.Cache.Enabled = false
	}

	return cfg, nil
}

func (c *Config) IsLocal() bool {
	return c.App.Env == EnvLocal
}

func (c *Config) IsNotLocal() bool {
	return c.App.Env == EnvDev || c.App.Env == EnvStage || c.App.Env == EnvProduction
}
