package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/ent/setting"
	"github.com/signalhouse/postwatch/pkg/config"
)

// Runtime-editable setting keys. Anything not listed here is configured
// only through the environment.
const (
	SettingAnalyzerModel        = "analyzer_model"
	SettingAnalyzerParams       = "analyzer_params"
	SettingAnalyzerPrompt       = "analyzer_prompt"
	SettingAnalyzerSystemPrompt = "analyzer_system_prompt"
	SettingPollIntervalS        = "poll_interval_s"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingNotifyOnlyAnalyzed   = "notify_only_analyzed"
	SettingDispatchMarkup       = "dispatch_markup"
)

// KnownSettingKeys lists the keys the settings API accepts.
var KnownSettingKeys = []string{
	SettingAnalyzerModel,
	SettingAnalyzerParams,
	SettingAnalyzerPrompt,
	SettingAnalyzerSystemPrompt,
	SettingPollIntervalS,
	SettingNotificationsEnabled,
	SettingNotifyOnlyAnalyzed,
	SettingDispatchMarkup,
}

// DefaultPrompt is the user prompt template applied when no override is
// stored. Placeholders: {{.Text}}, {{.Author}}, {{.CreatedAt}}.
const DefaultPrompt = "Summarize and comment on the following post by @{{.Author}} " +
	"({{.CreatedAt}}):\n\n{{.Text}}"

// DefaultSystemPrompt frames the analyzer's role.
const DefaultSystemPrompt = "You are an analyst monitoring social media posts. " +
	"Provide a concise, factual summary and note anything significant."

// Snapshot is an immutable view of the runtime-editable settings, taken
// once per claim. Momentary staleness is acceptable by design.
type Snapshot struct {
	Model                string
	Params               map[string]interface{}
	Prompt               string
	SystemPrompt         string
	PollInterval         time.Duration
	NotificationsEnabled bool
	NotifyOnlyAnalyzed   bool
	DispatchMarkup       bool
}

// SettingService reads and writes runtime-editable parameters.
type SettingService struct {
	client   *ent.Client
	defaults *config.Config
}

// NewSettingService creates a new SettingService. The config snapshot
// supplies fallbacks for keys with no stored value.
func NewSettingService(client *ent.Client, defaults *config.Config) *SettingService {
	if client == nil {
		panic("NewSettingService: client must not be nil")
	}
	return &SettingService{client: client, defaults: defaults}
}

// Get returns the stored value for a key, or ErrNotFound.
func (s *SettingService) Get(ctx context.Context, key string) (string, error) {
	row, err := s.client.Setting.Get(ctx, key)
	if err != nil {
		return "", mapEntError(err)
	}
	return row.Value, nil
}

// Set upserts a setting value.
func (s *SettingService) Set(ctx context.Context, key, value string) error {
	err := s.client.Setting.Create().
		SetID(key).
		SetValue(value).
		OnConflictColumns(setting.FieldID).
		SetValue(value).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return mapEntError(err)
	}
	return nil
}

// All returns every stored setting.
func (s *SettingService) All(ctx context.Context) ([]*ent.Setting, error) {
	rows, err := s.client.Setting.Query().
		Order(ent.Asc(setting.FieldID)).
		All(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	return rows, nil
}

// Snapshot reads all runtime-editable settings in one query and merges
// them over the configured defaults. Unparseable stored values are logged
// and fall back to the default rather than failing the claim.
func (s *SettingService) Snapshot(ctx context.Context) (*Snapshot, error) {
	rows, err := s.client.Setting.Query().All(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}

	stored := make(map[string]string, len(rows))
	for _, row := range rows {
		stored[row.ID] = row.Value
	}

	snap := &Snapshot{
		Model:                "gpt-4o-mini",
		Prompt:               DefaultPrompt,
		SystemPrompt:         DefaultSystemPrompt,
		PollInterval:         s.defaults.Source.PollInterval,
		NotificationsEnabled: true,
		NotifyOnlyAnalyzed:   true,
		DispatchMarkup:       false,
	}

	if v, ok := stored[SettingAnalyzerModel]; ok && v != "" {
		snap.Model = v
	}
	if v, ok := stored[SettingAnalyzerPrompt]; ok && v != "" {
		snap.Prompt = v
	}
	if v, ok := stored[SettingAnalyzerSystemPrompt]; ok && v != "" {
		snap.SystemPrompt = v
	}
	if v, ok := stored[SettingAnalyzerParams]; ok && v != "" {
		var params map[string]interface{}
		if err := json.Unmarshal([]byte(v), &params); err != nil {
			slog.Warn("Ignoring unparseable analyzer_params setting", "error", err)
		} else {
			snap.Params = params
		}
	}
	if v, ok := stored[SettingPollIntervalS]; ok {
		if n, err := strconv.Atoi(v); err != nil || time.Duration(n)*time.Second < config.MinPollInterval {
			slog.Warn("Ignoring invalid poll_interval_s setting", "value", v)
		} else {
			snap.PollInterval = time.Duration(n) * time.Second
		}
	}
	snap.NotificationsEnabled = boolSetting(stored, SettingNotificationsEnabled, snap.NotificationsEnabled)
	snap.NotifyOnlyAnalyzed = boolSetting(stored, SettingNotifyOnlyAnalyzed, snap.NotifyOnlyAnalyzed)
	snap.DispatchMarkup = boolSetting(stored, SettingDispatchMarkup, snap.DispatchMarkup)

	return snap, nil
}

func boolSetting(stored map[string]string, key string, fallback bool) bool {
	v, ok := stored[key]
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("Ignoring invalid boolean setting", "key", key, "value", v)
		return fallback
	}
	return b
}
