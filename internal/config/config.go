package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains the TLD list used for candidate generation plus settings for the
// environment, the checker, the diagnostics server and graceful shutdown.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// TopLevelDomains is the ordered list of TLDs each base string is combined with.
	// An empty list yields an empty candidate set.
	TopLevelDomains []string `env:"TOP_LEVEL_DOMAINS" yaml:"top_level_domains"`

	// Checker contains all scan related configurations
	Checker struct {
		// Concurrency is the number of WHOIS probes allowed in flight at once.
		// Values below 2 run the scan sequentially.
		Concurrency int `env:"CHECKER_CONCURRENCY" env-default:"1" yaml:"concurrency"`
		// ProbeTimeout is the maximum duration of a single WHOIS probe, zero disables the limit
		ProbeTimeout time.Duration `env:"CHECKER_PROBE_TIMEOUT" env-default:"30s" yaml:"probeTimeout"`
		// AssumeAvailableOnError treats every failed probe as an available domain
		// instead of an unknown one
		AssumeAvailableOnError bool `env:"CHECKER_ASSUME_AVAILABLE_ON_ERROR" env-default:"false" yaml:"assumeAvailableOnError"` //nolint: lll
	} `yaml:"checker"`

	// Diag contains all diagnostics HTTP server related configurations
	Diag struct {
		// Addr is the address and port the diagnostics server will listen on, empty disables the server
		Addr string `env:"DIAG_ADDR" env-default:"" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"DIAG_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"DIAG_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"DIAG_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"DIAG_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"DIAG_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"DIAG_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"diag"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config
// struct. A missing config file is not an error: the config is then built
// from environment variables and defaults alone, leaving the TLD list empty.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, fmt.Errorf("could not read environment: %w", err)
			}

			return &cfg, nil
		}

		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
