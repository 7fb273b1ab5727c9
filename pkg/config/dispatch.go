package config

import "time"

// DispatchConfig shapes the outbound message queue.
type DispatchConfig struct {
	// SlackToken and Channel identify the destination. Empty token disables
	// dispatch entirely (posts stop at analyzed).
	SlackToken string
	Channel    string

	// WorkerCount is the number of dispatch workers. 1 preserves total
	// order per destination; scale only with sharded destinations.
	WorkerCount int

	// RatePerSecond caps sends per destination (token bucket).
	RatePerSecond float64

	// MaxRetries bounds transient-failure attempts before giving up.
	MaxRetries int

	// MaxBackoff caps the exponential retry backoff.
	MaxBackoff time.Duration

	// MessageCap is the destination platform's message length limit;
	// overflow is hard-truncated with an ellipsis marker.
	MessageCap int

	// PollInterval is the idle-worker sleep between claim attempts.
	PollInterval time.Duration

	// PollIntervalJitter randomizes PollInterval.
	PollIntervalJitter time.Duration

	// SendTimeout bounds a single send call.
	SendTimeout time.Duration
}

// DefaultDispatchConfig returns the built-in dispatch defaults.
func DefaultDispatchConfig() *DispatchConfig {
	return &DispatchConfig{
		WorkerCount:        1,
		RatePerSecond:      1,
		MaxRetries:         5,
		MaxBackoff:         5 * time.Minute,
		MessageCap:         4096,
		PollInterval:       500 * time.Millisecond,
		PollIntervalJitter: 250 * time.Millisecond,
		SendTimeout:        10 * time.Second,
	}
}

func (c *DispatchConfig) loadEnv() error {
	c.SlackToken = getEnvOrDefault("SLACK_BOT_TOKEN", "")
	c.Channel = getEnvOrDefault("SLACK_CHANNEL", "")
	if err := getEnvInt("DISPATCH_CONCURRENCY", &c.WorkerCount); err != nil {
		return err
	}
	if err := getEnvFloat("DISPATCH_RATE_PER_S", &c.RatePerSecond); err != nil {
		return err
	}
	if err := getEnvInt("DISPATCH_MAX_RETRIES", &c.MaxRetries); err != nil {
		return err
	}
	if err := getEnvSeconds("DISPATCH_MAX_BACKOFF_S", &c.MaxBackoff); err != nil {
		return err
	}
	return getEnvInt("DISPATCH_MESSAGE_CAP", &c.MessageCap)
}
