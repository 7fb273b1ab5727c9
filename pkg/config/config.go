// Package config loads the process-wide configuration snapshot.
//
// Infrastructure settings (ports, credentials, pool sizing) come from the
// environment once at startup. Runtime-editable parameters (prompt, model,
// poll cadence, toggles) live in the settings table and are read through
// services.SettingService, never from here.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by LoadFromEnv.
type Config struct {
	HTTPPort string

	Source    *SourceConfig
	Analysis  *AnalysisConfig
	Dispatch  *DispatchConfig
	Retention *RetentionConfig
	Push      *PushConfig
}

// PushConfig controls the push-notification intake endpoint. Push triggers
// share the coordinator's trigger queue (TRIGGER_QUEUE_SIZE); overflow is
// rejected with 429 at the HTTP layer.
type PushConfig struct {
	// SharedSecret is the HMAC-SHA256 key used to verify X-Signature headers.
	// Empty disables push intake (all pushes rejected).
	SharedSecret string
}

// LoadFromEnv builds the configuration snapshot from environment variables.
// Invalid values are errors, not silent fallbacks: a misconfigured process
// must exit with code 2 rather than run with surprising behavior.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		HTTPPort:  getEnvOrDefault("HTTP_PORT", "8080"),
		Source:    DefaultSourceConfig(),
		Analysis:  DefaultAnalysisConfig(),
		Dispatch:  DefaultDispatchConfig(),
		Retention: DefaultRetentionConfig(),
		Push: &PushConfig{
			SharedSecret: os.Getenv("PUSH_SHARED_SECRET"),
		},
	}

	var err error
	if err = cfg.Source.loadEnv(); err != nil {
		return nil, err
	}
	if err = cfg.Analysis.loadEnv(); err != nil {
		return nil, err
	}
	if err = cfg.Dispatch.loadEnv(); err != nil {
		return nil, err
	}
	if err = cfg.Retention.loadEnv(); err != nil {
		return nil, err
	}
	if err = cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Source.PollInterval < MinPollInterval {
		return fmt.Errorf("poll interval %v below floor %v", c.Source.PollInterval, MinPollInterval)
	}
	if c.Analysis.WorkerCount <= 0 {
		return fmt.Errorf("analysis worker count must be positive, got %d", c.Analysis.WorkerCount)
	}
	if c.Dispatch.WorkerCount <= 0 {
		return fmt.Errorf("dispatch worker count must be positive, got %d", c.Dispatch.WorkerCount)
	}
	if c.Dispatch.MessageCap <= 0 {
		return fmt.Errorf("dispatch message cap must be positive, got %d", c.Dispatch.MessageCap)
	}
	return nil
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, out *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*out = n
	return nil
}

func getEnvSeconds(key string, out *time.Duration) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*out = time.Duration(n) * time.Second
	return nil
}

func getEnvFloat(key string, out *float64) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*out = f
	return nil
}

func getEnvBool(key string, out *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	*out = b
	return nil
}
