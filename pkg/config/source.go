package config

import "time"

// MinPollInterval is the floor for the scheduled poll cadence. Values below
// this amplify load on the upstream source without improving freshness.
const MinPollInterval = 30 * time.Second

// SourceConfig controls polling and ingestion of source accounts.
type SourceConfig struct {
	// BaseURL is the root of the post-fetching API.
	BaseURL string

	// APIToken authenticates against the source API (bearer).
	APIToken string

	// PollInterval is the scheduled poll cadence per account. Floor 30s.
	PollInterval time.Duration

	// MinPollSpacing is the minimum gap between polls for one account
	// across trigger sources; pushes inside the gap are coalesced.
	MinPollSpacing time.Duration

	// HistoricalHours bounds how far back first-sight ingestion reaches.
	HistoricalHours int

	// MaxFetch bounds the number of posts fetched per trigger.
	MaxFetch int

	// AllowBackdatedPosts ingests posts older than an account's
	// last_seen_post_id that surface late. Off by default: back-dated posts
	// would dispatch out of order.
	AllowBackdatedPosts bool

	// RequestTimeout is the hard timeout for a single fetch call.
	RequestTimeout time.Duration

	// TriggerQueueSize bounds the coordinator's trigger channel.
	TriggerQueueSize int
}

// DefaultSourceConfig returns the built-in source defaults.
func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		BaseURL:          "http://localhost:9090",
		PollInterval:     60 * time.Second,
		MinPollSpacing:   5 * time.Minute,
		HistoricalHours:  24,
		MaxFetch:         50,
		RequestTimeout:   30 * time.Second,
		TriggerQueueSize: 128,
	}
}

func (c *SourceConfig) loadEnv() error {
	if v := getEnvOrDefault("SOURCE_BASE_URL", ""); v != "" {
		c.BaseURL = v
	}
	c.APIToken = getEnvOrDefault("SOURCE_API_TOKEN", "")
	if err := getEnvSeconds("POLL_INTERVAL_S", &c.PollInterval); err != nil {
		return err
	}
	if err := getEnvSeconds("MIN_POLL_SPACING_S", &c.MinPollSpacing); err != nil {
		return err
	}
	if err := getEnvInt("HISTORICAL_HOURS", &c.HistoricalHours); err != nil {
		return err
	}
	if err := getEnvInt("MAX_FETCH", &c.MaxFetch); err != nil {
		return err
	}
	if err := getEnvBool("ALLOW_BACKDATED_POSTS", &c.AllowBackdatedPosts); err != nil {
		return err
	}
	if err := getEnvSeconds("SOURCE_TIMEOUT_S", &c.RequestTimeout); err != nil {
		return err
	}
	return getEnvInt("TRIGGER_QUEUE_SIZE", &c.TriggerQueueSize)
}
