package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
)

type ServerCfg struct {
	Port            int           `env:"PORT" envDefault:"3000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	UpstreamURL     string        `env:"UPSTREAM_URL" envDefault:""`
}

type RedisCfg struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type LatencyCfg struct {
	Enabled    bool          `env:"SIMULATE_LATENCY" envDefault:"true"`
	ReadDelay  time.Duration `env:"SIMULATE_LATENCY_READ" envDefault:"300ms"`
	WriteDelay time.Duration `env:"SIMULATE_LATENCY_WRITE" envDefault:"500ms"`
}

type AuthCfg struct {
	SessionTimeToLive time.Duration `env:"AUTH_SESSION_TIME_TO_LIVE" envDefault:"24h"`
}

type ValidationCfg struct {
	AllowedEmailDomains []string `env:"ALLOWED_EMAIL_DOMAINS" envSeparator:"," envDefault:""`
}

type Config struct {
	ServerCfg     ServerCfg
	RedisCfg      RedisCfg
	LatencyCfg    LatencyCfg
	AuthCfg       AuthCfg
	ValidationCfg ValidationCfg
}

func Build() (Config, error) {
	var cfg Config
	opts := env.Options{RequiredIfNoDef: true}

	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	// splitting an unset variable leaves a single empty entry behind
	domains := make([]string, 0, len(cfg.ValidationCfg.AllowedEmailDomains))
	for _, d := range cfg.ValidationCfg.AllowedEmailDomains {
		if d != "" {
			domains = append(domains, d)
		}
	}
	cfg.ValidationCfg.AllowedEmailDomains = domains

	return cfg, nil
}
