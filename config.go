package gammasdk

import (
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/GoPolymarket/gamma-go-sdk/pkg/transport"
)

// BaseURLs defines per-service base endpoints.
type BaseURLs struct {
	Gamma string
}

// Config holds shared SDK configuration.
type Config struct {
	BaseURLs   BaseURLs
	HTTPClient transport.Doer
	UserAgent  string
	Timeout    time.Duration
}

// DefaultConfig returns default service endpoints.
func DefaultConfig() Config {
	return Config{
		BaseURLs: BaseURLs{
			Gamma: "https://gamma-api.polymarket.com",
		},
		UserAgent: transport.DefaultUserAgent,
		Timeout:   30 * time.Second,
	}
}

// envConfig mirrors the environment-tunable subset of Config.
type envConfig struct {
	BaseURL   string        `envconfig:"BASE_URL"`
	UserAgent string        `envconfig:"USER_AGENT"`
	Timeout   time.Duration `envconfig:"TIMEOUT"`
}

// ConfigFromEnv returns DefaultConfig overridden by GAMMA_-prefixed
// environment variables: GAMMA_BASE_URL, GAMMA_USER_AGENT, and GAMMA_TIMEOUT
// (a Go duration such as "10s"). Unset variables keep their defaults.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	var env envConfig
	if err := envconfig.Process("gamma", &env); err != nil {
		return cfg, err
	}
	if env.BaseURL != "" {
		cfg.BaseURLs.Gamma = env.BaseURL
	}
	if env.UserAgent != "" {
		cfg.UserAgent = env.UserAgent
	}
	if env.Timeout > 0 {
		cfg.Timeout = env.Timeout
	}
	return cfg, nil
}
