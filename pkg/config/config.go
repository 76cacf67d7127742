package config

import "github.com/caarlos0/env/v11"

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN,notEmpty"`
}

type RedisConfig struct {
	// Addr is optional; an empty value disables the products cache.
	Addr string `env:"REDIS_ADDR"`
}

type RabbitConfig struct {
	// URL is optional; an empty value disables event publishing.
	URL string `env:"RABBIT_URL"`
}

type HTTPConfig struct {
	Addr string `env:"HTTP_ADDR" envDefault:":8080"`
}

type AuthConfig struct {
	JWTSecret     string `env:"JWT_SECRET,notEmpty"`
	TokenTTLHours int    `env:"TOKEN_TTL_HOURS" envDefault:"1"`
}

type Common struct {
	ServiceName string `env:"SERVICE_NAME" envDefault:"dates-shop"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

type Config struct {
	Common   Common
	Postgres PostgresConfig
	Redis    RedisConfig
	Rabbit   RabbitConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
