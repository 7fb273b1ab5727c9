package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/ent/post"
	"github.com/signalhouse/postwatch/pkg/models"
	"github.com/signalhouse/postwatch/pkg/services"
	"github.com/signalhouse/postwatch/test/util"
)

func setupPostService(t *testing.T) (*ent.Client, *services.PostService) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	accounts := services.NewAccountService(client)
	_, err := accounts.Create(context.Background(), "acme")
	require.NoError(t, err)

	return client, services.NewPostService(client, "test-pod")
}

func sourcePost(id string, createdAt time.Time) models.SourcePost {
	return models.SourcePost{
		ID:        id,
		Account:   "acme",
		Text:      "post " + id,
		CreatedAt: createdAt,
		Engagement: models.Engagement{
			Likes: 1, Reshares: 2, Replies: 3,
		},
	}
}

func TestUpsertInsertsOnce(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	inserted, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)
	assert.True(t, inserted)

	p, err := client.Post.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusNew, p.Status)
	assert.Equal(t, 1, p.Likes)
}

func TestUpsertReplayRefreshesEngagementOnly(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	original := sourcePost("p1", time.Now())
	_, err := svc.Upsert(ctx, original)
	require.NoError(t, err)

	// Move the post out of new so the replay can't touch the pipeline.
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)

	replay := original
	replay.Text = "MUTATED"
	replay.Engagement = models.Engagement{Likes: 99, Reshares: 98, Replies: 97}

	inserted, err := svc.Upsert(ctx, replay)
	require.NoError(t, err)
	assert.False(t, inserted)

	p, err := client.Post.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "post p1", p.Text, "replay must not overwrite text")
	assert.Equal(t, post.StatusAnalyzing, p.Status, "replay must not reset status")
	assert.Equal(t, 99, p.Likes, "engagement counters do refresh")
}

func TestClaimForAnalysisOrdersAndStamps(t *testing.T) {
	_, svc := setupPostService(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, id := range []string{"p3", "p1", "p2"} {
		_, err := svc.Upsert(ctx, sourcePost(id, base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	claimed, err := svc.ClaimForAnalysis(ctx, 2)
	require.NoError(t, err)
	require.Len(t, claimed, 2)

	// Oldest created_at first: p3 then p1.
	assert.Equal(t, "p3", claimed[0].ID)
	assert.Equal(t, "p1", claimed[1].ID)
	for _, p := range claimed {
		assert.Equal(t, post.StatusAnalyzing, p.Status)
		assert.Equal(t, "test-pod", p.PodID)
		assert.NotNil(t, p.ClaimedAt)
		assert.Equal(t, 1, p.AnalysisAttempts)
	}
}

func TestClaimSkipsRetryAfterInFuture(t *testing.T) {
	_, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)

	claimed, err := svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// Release with a retry_after one hour out: not claimable again yet.
	require.NoError(t, svc.FailAnalysis(ctx, "p1", "rate limited", true, time.Now().Add(time.Hour)))

	claimed, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, claimed)
}

func TestCompleteAnalysisTransitions(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)

	err = svc.CompleteAnalysis(ctx, "p1", services.AnalysisRecord{
		Model:          "gpt-4o-mini",
		PromptSnapshot: "prompt",
		OutputText:     "verdict",
		TokensUsed:     123,
		CostEstimate:   0.01,
		Elapsed:        1500 * time.Millisecond,
	})
	require.NoError(t, err)

	p, err := client.Post.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusAnalyzed, p.Status)
	assert.Empty(t, p.PodID)
	assert.Nil(t, p.ClaimedAt)

	a, err := svc.AnalysisFor(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "verdict", a.OutputText)
	assert.Equal(t, int64(1500), a.ElapsedMs)
}

func TestCompleteAnalysisRequiresClaim(t *testing.T) {
	_, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)

	// Still in new: completing must conflict.
	err = svc.CompleteAnalysis(ctx, "p1", services.AnalysisRecord{Model: "m", OutputText: "x"})
	assert.ErrorIs(t, err, services.ErrConflict)
}

func TestFailAnalysisPermanent(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.FailAnalysis(ctx, "p1", "model refused", false, time.Time{}))

	p, err := client.Post.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusFailed, p.Status)
	assert.Equal(t, "model refused", p.FailReason)
}

func TestDispatchLifecycle(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.CompleteAnalysis(ctx, "p1", services.AnalysisRecord{Model: "m", OutputText: "x"}))

	claimed, err := svc.ClaimForDispatch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, post.StatusDispatching, claimed[0].Status)
	assert.Equal(t, 1, claimed[0].DispatchAttempts)

	// First attempt fails transiently.
	require.NoError(t, svc.FailDispatch(ctx, "p1", "#chan", 1, "slack 502", true, time.Now().Add(-time.Second)))

	p, err := client.Post.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusAnalyzed, p.Status)

	// Second attempt succeeds.
	claimed, err = svc.ClaimForDispatch(ctx, 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	require.NoError(t, svc.CompleteDispatch(ctx, "p1", "#chan", 2))

	p, err = client.Post.Query().Where(post.IDEQ("p1")).WithDispatchRecords().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, post.StatusDispatched, p.Status)
	require.Len(t, p.Edges.DispatchRecords, 2, "every attempt leaves a record")
}

func TestReleaseDispatchClaimLeavesNoRecord(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.CompleteAnalysis(ctx, "p1", services.AnalysisRecord{Model: "m", OutputText: "x"}))
	_, err = svc.ClaimForDispatch(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, svc.ReleaseDispatchClaim(ctx, "p1", "no permit", time.Now()))

	p, err := client.Post.Query().Where(post.IDEQ("p1")).WithDispatchRecords().Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, post.StatusAnalyzed, p.Status)
	assert.Empty(t, p.Edges.DispatchRecords)
}

func TestReleasePodClaims(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)

	otherPod := services.NewPostService(client, "other-pod")
	released, err := otherPod.ReleasePodClaims(ctx, "test-pod")
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	p, err := client.Post.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusNew, p.Status)
	assert.Empty(t, p.PodID)
}

func TestReleaseStaleClaims(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, sourcePost("p1", time.Now()))
	require.NoError(t, err)
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)

	// Fresh claims survive the sweep.
	released, err := svc.ReleaseStaleClaims(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, released)

	// Backdate the claim beyond the threshold.
	err = client.Post.UpdateOneID("p1").
		SetClaimedAt(time.Now().Add(-2 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	released, err = svc.ReleaseStaleClaims(ctx, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, released)

	p, err := client.Post.Get(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, post.StatusNew, p.Status)
}

func TestQueueDepthsAndCost(t *testing.T) {
	_, svc := setupPostService(t)
	ctx := context.Background()

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := svc.Upsert(ctx, sourcePost(id, time.Now()))
		require.NoError(t, err)
	}

	analysisDepth, dispatchDepth, err := svc.QueueDepths(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, analysisDepth)
	assert.Zero(t, dispatchDepth)

	// Cost sum over zero analyses is zero, not an error.
	cost, err := svc.SumCostSince(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.CompleteAnalysis(ctx, "p1", services.AnalysisRecord{
		Model: "m", OutputText: "x", CostEstimate: 0.25,
	}))

	cost, err = svc.SumCostSince(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.InDelta(t, 0.25, cost, 1e-9)
}

func TestDeleteTerminalBefore(t *testing.T) {
	client, svc := setupPostService(t)
	ctx := context.Background()

	old := time.Now().Add(-48 * time.Hour)
	_, err := svc.Upsert(ctx, sourcePost("old-failed", old))
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, sourcePost("old-pending", old))
	require.NoError(t, err)

	// Fail one of them permanently.
	_, err = svc.ClaimForAnalysis(ctx, 1)
	require.NoError(t, err)
	require.NoError(t, svc.FailAnalysis(ctx, "old-failed", "nope", false, time.Time{}))

	deleted, err := svc.DeleteTerminalBefore(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	// Non-terminal posts are never reaped, however old.
	exists, err := client.Post.Query().Where(post.IDEQ("old-pending")).Exist(ctx)
	require.NoError(t, err)
	assert.True(t, exists)
}
