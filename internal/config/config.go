// Package config loads runtime configuration from the environment, with an
// optional YAML file supplying values the environment does not set.
package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the blackjackd server.
type Config struct {
	Addr                string        `env:"ADDR,default=:8080"`
	JWTSigningKey       string        `env:"JWT_SIGNING_KEY"`
	TokenTTL            time.Duration `env:"TOKEN_TTL,default=24h"`
	MinPlayers          int           `env:"MIN_PLAYERS,default=1"`
	MaxPlayers          int           `env:"MAX_PLAYERS,default=10"`
	InviteTTL           time.Duration `env:"INVITE_TTL,default=10m"`
	InviteSweepInterval time.Duration `env:"INVITE_SWEEP_INTERVAL,default=1m"`
	RateLimitRequests   int           `env:"RATE_LIMIT_REQUESTS,default=60"`
	RateLimitWindow     time.Duration `env:"RATE_LIMIT_WINDOW,default=1m"`
	GlobalRateLimit     int           `env:"GLOBAL_RATE_LIMIT,default=100"`
	AllowedOrigins      []string      `env:"CORS_ALLOWED_ORIGINS,default=*"`
	NATSURL             string        `env:"NATS_URL"`
	OTLPEndpoint        string        `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// Load returns a Config populated from the environment. When CONFIG_FILE
// names a YAML file, its keys fill in anything the environment leaves unset;
// environment variables always win.
func Load(ctx context.Context) (Config, error) {
	lookuper := envconfig.Lookuper(envconfig.OsLookuper())

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		fileValues, err := loadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config file: %w", err)
		}
		lookuper = envconfig.MultiLookuper(lookuper, envconfig.MapLookuper(fileValues))
	}

	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile parses a flat YAML document into env-shaped keys, so
// `jwt_signing_key: secret` satisfies JWT_SIGNING_KEY.
func loadFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	values := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			values[envKey(key)] = v
		case nil:
			// skip empty keys
		default:
			values[envKey(key)] = fmt.Sprintf("%v", v)
		}
	}
	return values, nil
}

func envKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}
