package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/test/util"
)

func setupStatsService(t *testing.T) (*services.StatsService, *services.PostService) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	accounts := services.NewAccountService(client)
	ctx := context.Background()
	for _, name := range []string{"alpha", "beta"} {
		_, err := accounts.Create(ctx, name)
		require.NoError(t, err)
	}

	posts := services.NewPostService(client, "test-pod")
	return services.NewStatsService(client, posts), posts
}

func seedPosts(t *testing.T, posts *services.PostService, account string, ids ...string) {
	t.Helper()
	base := time.Now().Add(-time.Hour)
	for i, id := range ids {
		_, err := posts.Upsert(context.Background(), models.SourcePost{
			ID:        id,
			Account:   account,
			Text:      "post " + id,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}
}

func TestListPostsFiltersByAccount(t *testing.T) {
	stats, posts := setupStatsService(t)
	ctx := context.Background()

	seedPosts(t, posts, "alpha", "a1", "a2")
	seedPosts(t, posts, "beta", "b1")

	page, err := stats.ListPosts(ctx, services.PostFilter{Account: "@Alpha"})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Total)
	require.Len(t, page.Posts, 2)
	// Newest first.
	assert.Equal(t, "a2", page.Posts[0].ID)
	assert.Equal(t, "a1", page.Posts[1].ID)
}

func TestListPostsFiltersByStatus(t *testing.T) {
	stats, posts := setupStatsService(t)
	ctx := context.Background()

	seedPosts(t, posts, "alpha", "a1", "a2")
	_, err := posts.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)

	page, err := stats.ListPosts(ctx, services.PostFilter{Status: "analyzing"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Total)

	_, err = stats.ListPosts(ctx, services.PostFilter{Status: "bogus"})
	var validErr *services.ValidationError
	assert.ErrorAs(t, err, &validErr)
}

func TestListPostsPaginates(t *testing.T) {
	stats, posts := setupStatsService(t)
	ctx := context.Background()

	seedPosts(t, posts, "alpha", "a1", "a2", "a3", "a4", "a5")

	page, err := stats.ListPosts(ctx, services.PostFilter{Page: 1, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.Total)
	require.Len(t, page.Posts, 2)
	assert.Equal(t, "a5", page.Posts[0].ID)

	page, err = stats.ListPosts(ctx, services.PostFilter{Page: 3, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page.Posts, 1)
	assert.Equal(t, "a1", page.Posts[0].ID)

	// Out-of-range pages are empty, not an error.
	page, err = stats.ListPosts(ctx, services.PostFilter{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Posts)
}

func TestGetPostLoadsEdges(t *testing.T) {
	stats, posts := setupStatsService(t)
	ctx := context.Background()

	seedPosts(t, posts, "alpha", "a1")
	_, err := posts.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, posts.CompleteAnalysis(ctx, "a1", services.AnalysisRecord{
		Model: "m", OutputText: "verdict", CostEstimate: 0.1,
	}))
	_, err = posts.ClaimForDispatch(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, posts.CompleteDispatch(ctx, "a1", "#chan", 1))

	p, err := stats.GetPost(ctx, "a1")
	require.NoError(t, err)
	require.NotNil(t, p.Edges.Analysis)
	assert.Equal(t, "verdict", p.Edges.Analysis.OutputText)
	require.Len(t, p.Edges.DispatchRecords, 1)

	_, err = stats.GetPost(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestGetOverview(t *testing.T) {
	stats, posts := setupStatsService(t)
	ctx := context.Background()

	seedPosts(t, posts, "alpha", "a1", "a2", "a3")

	// a1: fully dispatched. a2: claimed for analysis (in flight). a3: queued.
	claimed, err := posts.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, posts.CompleteAnalysis(ctx, claimed[0].ID, services.AnalysisRecord{
		Model: "m", OutputText: "x", CostEstimate: 0.4,
	}))
	_, err = posts.ClaimForDispatch(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, posts.CompleteDispatch(ctx, claimed[0].ID, "#chan", 1))

	_, err = posts.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)

	ov, err := stats.GetOverview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ov.AnalysisQueueDepth)
	assert.Zero(t, ov.DispatchQueueDepth)
	assert.Equal(t, 1, ov.InFlight)
	assert.Equal(t, 1, ov.Dispatched)
	assert.Zero(t, ov.Failed)
	assert.InDelta(t, 0.4, ov.DailyCost, 1e-9)
}
