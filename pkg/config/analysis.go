package config

import "time"

// AnalysisConfig sizes the LLM analysis worker pool.
type AnalysisConfig struct {
	// BaseURL is the OpenAI-compatible chat-completions endpoint root.
	BaseURL string

	// APIKey authenticates against the LLM provider.
	APIKey string

	// WorkerCount is the number of analysis worker goroutines.
	WorkerCount int

	// BatchSize is how many posts one claim pulls. 1 preserves strict
	// per-account ordering; larger trades ordering for throughput.
	BatchSize int

	// Timeout bounds a single analyze call end to end.
	Timeout time.Duration

	// PollInterval is the idle-worker sleep between claim attempts.
	PollInterval time.Duration

	// PollIntervalJitter randomizes PollInterval to de-synchronize workers.
	PollIntervalJitter time.Duration

	// MaxRetries bounds transient-failure attempts before giving up.
	MaxRetries int

	// DailyCostCeiling stops new claims once the day's estimated spend
	// crosses it. Zero disables the ceiling.
	DailyCostCeiling float64

	// RequestsPerMinute caps calls to the provider (token bucket).
	RequestsPerMinute int
}

// DefaultAnalysisConfig returns the built-in analysis defaults.
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		BaseURL:            "https://api.openai.com/v1",
		WorkerCount:        2,
		BatchSize:          1,
		Timeout:            60 * time.Second,
		PollInterval:       500 * time.Millisecond,
		PollIntervalJitter: 250 * time.Millisecond,
		MaxRetries:         5,
		DailyCostCeiling:   0,
		RequestsPerMinute:  60,
	}
}

func (c *AnalysisConfig) loadEnv() error {
	if v := getEnvOrDefault("ANALYZER_BASE_URL", ""); v != "" {
		c.BaseURL = v
	}
	c.APIKey = getEnvOrDefault("ANALYZER_API_KEY", "")
	if err := getEnvInt("ANALYSIS_CONCURRENCY", &c.WorkerCount); err != nil {
		return err
	}
	if err := getEnvInt("ANALYSIS_BATCH", &c.BatchSize); err != nil {
		return err
	}
	if err := getEnvSeconds("ANALYZE_TIMEOUT_S", &c.Timeout); err != nil {
		return err
	}
	if err := getEnvInt("ANALYSIS_MAX_RETRIES", &c.MaxRetries); err != nil {
		return err
	}
	if err := getEnvFloat("ANALYSIS_DAILY_COST_CEILING", &c.DailyCostCeiling); err != nil {
		return err
	}
	return getEnvInt("ANALYZER_REQUESTS_PER_MINUTE", &c.RequestsPerMinute)
}
