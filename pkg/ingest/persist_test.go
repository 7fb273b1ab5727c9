package ingest

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/pkg/config"
	"github.com/signalhouse/postwatch/pkg/metrics"
	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/rategov"
	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/pkg/source"
	"github.com/signalhouse/postwatch/test/util"
)

// stubSource feeds canned posts to the pipeline.
type stubSource struct {
	posts []models.SourcePost
	err   error
}

func (s stubSource) FetchSince(_ context.Context, _, _ string, _ int) ([]models.SourcePost, error) {
	return s.posts, s.err
}

// setupPersist builds a pipeline over a real database plus the monitored
// account "acme". The returned account reflects the freshly created row.
func setupPersist(t *testing.T, cfg *config.SourceConfig) (*ent.Client, *Pipeline, *services.AccountService) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	accounts := services.NewAccountService(client)
	_, err := accounts.Create(context.Background(), "acme")
	require.NoError(t, err)

	p := &Pipeline{
		cfg:     cfg,
		posts:   services.NewPostService(client, "test-pod"),
		metrics: metrics.New(),
		logger:  slog.Default(),
	}
	return client, p, accounts
}

func fetchedPost(id string, createdAt time.Time) models.SourcePost {
	return models.SourcePost{
		ID:        id,
		Account:   "acme",
		Text:      "post " + id,
		CreatedAt: createdAt,
	}
}

func TestPersistFirstSightHonorsHistoricalCutoff(t *testing.T) {
	cfg := config.DefaultSourceConfig()
	cfg.HistoricalHours = 24
	client, p, accounts := setupPersist(t, cfg)
	ctx := context.Background()

	acc, err := accounts.Get(ctx, "acme")
	require.NoError(t, err)
	require.Empty(t, acc.LastSeenPostID, "fresh account has no watermark")

	fetched := []models.SourcePost{
		fetchedPost("20", time.Now().Add(-time.Hour)),
		fetchedPost("10", time.Now().Add(-48*time.Hour)),
	}
	inserted, lastSeen := p.persist(ctx, p.logger, acc, fetched)

	assert.Equal(t, 1, inserted)
	assert.Equal(t, "20", lastSeen)

	_, err = client.Post.Get(ctx, "20")
	require.NoError(t, err)
	_, err = client.Post.Get(ctx, "10")
	assert.True(t, ent.IsNotFound(err), "post older than the cutoff must not be ingested")
}

func TestPersistAdvancesWatermarkPastFilteredPosts(t *testing.T) {
	cfg := config.DefaultSourceConfig()
	cfg.HistoricalHours = 1
	_, p, accounts := setupPersist(t, cfg)
	ctx := context.Background()

	acc, err := accounts.Get(ctx, "acme")
	require.NoError(t, err)

	// Everything in the window predates the cutoff; nothing is stored but
	// the watermark still moves past it, or the next poll refetches forever.
	fetched := []models.SourcePost{
		fetchedPost("30", time.Now().Add(-3*time.Hour)),
		fetchedPost("31", time.Now().Add(-2*time.Hour)),
	}
	inserted, lastSeen := p.persist(ctx, p.logger, acc, fetched)

	assert.Equal(t, 0, inserted)
	assert.Equal(t, "31", lastSeen)
}

func TestPersistDropsBackdatedByDefault(t *testing.T) {
	cfg := config.DefaultSourceConfig()
	require.False(t, cfg.AllowBackdatedPosts)
	client, p, accounts := setupPersist(t, cfg)
	ctx := context.Background()

	require.NoError(t, accounts.MarkPolled(ctx, "acme", "100", time.Now().Add(-time.Hour)))
	acc, err := accounts.Get(ctx, "acme")
	require.NoError(t, err)

	fetched := []models.SourcePost{
		fetchedPost("150", time.Now().Add(-time.Minute)),
		fetchedPost("50", time.Now().Add(-30*time.Minute)),
	}
	inserted, lastSeen := p.persist(ctx, p.logger, acc, fetched)

	assert.Equal(t, 1, inserted)
	assert.Equal(t, "150", lastSeen)

	_, err = client.Post.Get(ctx, "50")
	assert.True(t, ent.IsNotFound(err), "post at or below the watermark is dropped")
}

func TestPersistAcceptsBackdatedWhenAllowed(t *testing.T) {
	cfg := config.DefaultSourceConfig()
	cfg.AllowBackdatedPosts = true
	client, p, accounts := setupPersist(t, cfg)
	ctx := context.Background()

	require.NoError(t, accounts.MarkPolled(ctx, "acme", "100", time.Now().Add(-time.Hour)))
	acc, err := accounts.Get(ctx, "acme")
	require.NoError(t, err)

	fetched := []models.SourcePost{
		fetchedPost("150", time.Now().Add(-time.Minute)),
		fetchedPost("50", time.Now().Add(-30*time.Minute)),
	}
	inserted, _ := p.persist(ctx, p.logger, acc, fetched)
	assert.Equal(t, 2, inserted)

	_, err = client.Post.Get(ctx, "50")
	require.NoError(t, err)
}

func TestPersistKeepsWatermarkOnUpsertFailure(t *testing.T) {
	cfg := config.DefaultSourceConfig()
	client, p, accounts := setupPersist(t, cfg)
	ctx := context.Background()

	require.NoError(t, accounts.MarkPolled(ctx, "acme", "100", time.Now().Add(-time.Hour)))
	acc, err := accounts.Get(ctx, "acme")
	require.NoError(t, err)

	// The empty-id post is rejected by the store; it sorts after the valid
	// one, so one row lands but the watermark must not move.
	bad := models.SourcePost{Account: "acme", Text: "no id", CreatedAt: time.Now()}
	fetched := []models.SourcePost{
		fetchedPost("150", time.Now().Add(-time.Minute)),
		bad,
	}
	inserted, lastSeen := p.persist(ctx, p.logger, acc, fetched)

	assert.Equal(t, 1, inserted)
	assert.Empty(t, lastSeen, "a partial persist refetches the window next poll")

	_, err = client.Post.Get(ctx, "150")
	require.NoError(t, err)
}

func TestProcessPollStoresAndAdvancesWatermark(t *testing.T) {
	cfg := config.DefaultSourceConfig()
	client, p, accounts := setupPersist(t, cfg)
	ctx := context.Background()

	require.NoError(t, accounts.MarkPolled(ctx, "acme", "100", time.Now().Add(-time.Hour)))

	governor := rategov.New()
	require.NoError(t, governor.Register(source.Bucket, rategov.BucketConfig{
		Kind: rategov.KindTokenBucket, Rate: 100, Capacity: 100,
	}))

	p.accounts = accounts
	p.governor = governor
	p.coord = NewCoordinator(cfg, accounts, nil, p.metrics)
	p.source = stubSource{posts: []models.SourcePost{
		fetchedPost("102", time.Now().Add(-time.Minute)),
		fetchedPost("101", time.Now().Add(-2*time.Minute)),
	}}

	p.process(models.PollTrigger{Account: "acme", Reason: models.TriggerScheduled})

	_, err := client.Post.Get(ctx, "101")
	require.NoError(t, err)
	_, err = client.Post.Get(ctx, "102")
	require.NoError(t, err)

	acc, err := accounts.Get(ctx, "acme")
	require.NoError(t, err)
	assert.Equal(t, "102", acc.LastSeenPostID)
	require.NotNil(t, acc.LastPolledAt)
	assert.WithinDuration(t, time.Now(), *acc.LastPolledAt, time.Minute)
}
