package config

import "time"

// RetentionConfig controls data retention and cleanup behavior.
type RetentionConfig struct {
	// PostRetentionDays is how many days to keep terminal posts
	// (dispatched/failed) before deleting them with their analyses
	// and dispatch records.
	PostRetentionDays int

	// CleanupInterval is how often the cleanup loop runs.
	CleanupInterval time.Duration

	// StaleClaimThreshold is how long a claim may hold without progress
	// before the orphan scan releases it.
	StaleClaimThreshold time.Duration

	// OrphanScanInterval is how often to scan for stale claims.
	OrphanScanInterval time.Duration

	// DrainTimeout is the bounded window each pool gets to finish
	// in-flight work during shutdown.
	DrainTimeout time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		PostRetentionDays:   30,
		CleanupInterval:     12 * time.Hour,
		StaleClaimThreshold: 10 * time.Minute,
		OrphanScanInterval:  5 * time.Minute,
		DrainTimeout:        30 * time.Second,
	}
}

func (c *RetentionConfig) loadEnv() error {
	if err := getEnvInt("RETENTION_DAYS", &c.PostRetentionDays); err != nil {
		return err
	}
	if err := getEnvSeconds("CLEANUP_INTERVAL_S", &c.CleanupInterval); err != nil {
		return err
	}
	if err := getEnvSeconds("STALE_CLAIM_THRESHOLD_S", &c.StaleClaimThreshold); err != nil {
		return err
	}
	return getEnvSeconds("DRAIN_TIMEOUT_S", &c.DrainTimeout)
}
