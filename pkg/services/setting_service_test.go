package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/test/util"
)

func setupSettingService(t *testing.T) *services.SettingService {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	defaults := &config.Config{
		Source: &config.SourceConfig{PollInterval: 60 * time.Second},
	}
	return services.NewSettingService(client, defaults)
}

func TestSettingSetAndGet(t *testing.T) {
	svc := setupSettingService(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, services.SettingAnalyzerModel)
	assert.ErrorIs(t, err, services.ErrNotFound)

	require.NoError(t, svc.Set(ctx, services.SettingAnalyzerModel, "gpt-4o"))
	got, err := svc.Get(ctx, services.SettingAnalyzerModel)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", got)

	// Set is an upsert.
	require.NoError(t, svc.Set(ctx, services.SettingAnalyzerModel, "gpt-4o-mini"))
	got, err = svc.Get(ctx, services.SettingAnalyzerModel)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", got)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestSnapshotDefaults(t *testing.T) {
	svc := setupSettingService(t)

	snap, err := svc.Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", snap.Model)
	assert.Equal(t, services.DefaultPrompt, snap.Prompt)
	assert.Equal(t, services.DefaultSystemPrompt, snap.SystemPrompt)
	assert.Equal(t, 60*time.Second, snap.PollInterval)
	assert.True(t, snap.NotificationsEnabled)
	assert.True(t, snap.NotifyOnlyAnalyzed)
	assert.False(t, snap.DispatchMarkup)
	assert.Nil(t, snap.Params)
}

func TestSnapshotOverrides(t *testing.T) {
	svc := setupSettingService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, services.SettingAnalyzerModel, "gpt-4o"))
	require.NoError(t, svc.Set(ctx, services.SettingAnalyzerPrompt, "Review: {{.Text}}"))
	require.NoError(t, svc.Set(ctx, services.SettingAnalyzerParams, `{"temperature":0.2}`))
	require.NoError(t, svc.Set(ctx, services.SettingPollIntervalS, "120"))
	require.NoError(t, svc.Set(ctx, services.SettingNotificationsEnabled, "false"))
	require.NoError(t, svc.Set(ctx, services.SettingDispatchMarkup, "true"))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o", snap.Model)
	assert.Equal(t, "Review: {{.Text}}", snap.Prompt)
	assert.Equal(t, 0.2, snap.Params["temperature"])
	assert.Equal(t, 120*time.Second, snap.PollInterval)
	assert.False(t, snap.NotificationsEnabled)
	assert.True(t, snap.DispatchMarkup)
}

func TestSnapshotFallsBackOnInvalidValues(t *testing.T) {
	svc := setupSettingService(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, services.SettingAnalyzerParams, "not json"))
	require.NoError(t, svc.Set(ctx, services.SettingPollIntervalS, "abc"))
	require.NoError(t, svc.Set(ctx, services.SettingNotificationsEnabled, "maybe"))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)

	assert.Nil(t, snap.Params)
	assert.Equal(t, 60*time.Second, snap.PollInterval)
	assert.True(t, snap.NotificationsEnabled)
}

func TestSnapshotEnforcesPollIntervalFloor(t *testing.T) {
	svc := setupSettingService(t)
	ctx := context.Background()

	// 5s is below the 30s floor: ignored, not clamped.
	require.NoError(t, svc.Set(ctx, services.SettingPollIntervalS, "5"))

	snap, err := svc.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 60*time.Second, snap.PollInterval)
}
