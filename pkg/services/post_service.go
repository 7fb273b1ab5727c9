package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/post"
	"github.com/signalhouse/postwatch/pkg/models"
)

// PostService owns the post status state machine:
//
//	new → analyzing → analyzed → dispatching → dispatched
//	        ↘ new(+retry_after) | failed       ↘ analyzed(+retry_after) | failed
//
// Workers borrow a post by a successful claim and must release it to a
// terminal or retryable state before exit. Claims use FOR UPDATE SKIP LOCKED
// so no post ever appears in two concurrent claims.
type PostService struct {
	client *ent.Client
	podID  string
}

// NewPostService creates a new PostService. podID stamps claims so a
// restarting pod can release what it previously held.
func NewPostService(client *ent.Client, podID string) *PostService {
	if client == nil {
		panic("NewPostService: client must not be nil")
	}
	return &PostService{client: client, podID: podID}
}

// AnalysisRecord carries the analyzer output into CompleteAnalysis.
type AnalysisRecord struct {
	Model          string
	PromptSnapshot string
	ParamsSnapshot map[string]interface{}
	OutputText     string
	TokensUsed     int
	CostEstimate   float64
	Elapsed        time.Duration
}

// Upsert persists a source post idempotently on id. Replaying an existing
// post overwrites nothing except the engagement counters. Returns whether
// a new row was inserted.
func (s *PostService) Upsert(ctx context.Context, p models.SourcePost) (inserted bool, err error) {
	if p.ID == "" {
		return false, NewValidationError("id", "post id is required")
	}
	if p.Account == "" {
		return false, NewValidationError("account", "account is required")
	}

	create := s.client.Post.Create().
		SetID(p.ID).
		SetAccountUsername(Normalize(p.Account)).
		SetText(p.Text).
		SetCreatedAt(p.CreatedAt).
		SetLikes(p.Engagement.Likes).
		SetReshares(p.Engagement.Reshares).
		SetReplies(p.Engagement.Replies)
	if len(p.Media) > 0 {
		create = create.SetMedia(p.Media)
	}

	_, err = create.Save(ctx)
	if err == nil {
		return true, nil
	}
	if !ent.IsConstraintError(err) {
		return false, mapEntError(err)
	}

	// Replay: refresh engagement counters only.
	err = s.client.Post.UpdateOneID(p.ID).
		SetLikes(p.Engagement.Likes).
		SetReshares(p.Engagement.Reshares).
		SetReplies(p.Engagement.Replies).
		Exec(ctx)
	if err != nil {
		return false, mapEntError(err)
	}
	return false, nil
}

// ClaimForAnalysis atomically transitions up to batchSize posts from new to
// analyzing, oldest first by created_at, skipping posts whose retry_after
// has not elapsed.
func (s *PostService) ClaimForAnalysis(ctx context.Context, batchSize int) ([]*ent.Post, error) {
	return s.claim(ctx, batchSize, post.StatusNew, post.StatusAnalyzing, func(u *ent.PostUpdateOne) *ent.PostUpdateOne {
		return u.AddAnalysisAttempts(1)
	})
}

// ClaimForDispatch atomically transitions up to batchSize posts from
// analyzed to dispatching, oldest first by created_at.
func (s *PostService) ClaimForDispatch(ctx context.Context, batchSize int) ([]*ent.Post, error) {
	return s.claim(ctx, batchSize, post.StatusAnalyzed, post.StatusDispatching, func(u *ent.PostUpdateOne) *ent.PostUpdateOne {
		return u.AddDispatchAttempts(1)
	})
}

func (s *PostService) claim(ctx context.Context, batchSize int, from, to post.Status, mark func(*ent.PostUpdateOne) *ent.PostUpdateOne) ([]*ent.Post, error) {
	if batchSize <= 0 {
		batchSize = 1
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	candidates, err := tx.Post.Query().
		Where(
			post.StatusEQ(from),
			post.Or(
				post.RetryAfterIsNil(),
				post.RetryAfterLTE(now),
			),
		).
		Order(ent.Asc(post.FieldCreatedAt)).
		Limit(batchSize).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	claimed := make([]*ent.Post, 0, len(candidates))
	for _, p := range candidates {
		update := p.Update().
			SetStatus(to).
			SetPodID(s.podID).
			SetClaimedAt(now).
			ClearRetryAfter()
		p, err = mark(update).Save(ctx)
		if err != nil {
			return nil, mapEntError(err)
		}
		claimed = append(claimed, p)
	}

	if err := tx.Commit(); err != nil {
		return nil, mapEntError(err)
	}
	return claimed, nil
}

// CompleteAnalysis writes the Analysis row and transitions
// analyzing→analyzed in one atomic unit.
func (s *PostService) CompleteAnalysis(ctx context.Context, postID string, rec AnalysisRecord) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return mapEntError(err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := s.lockOwned(ctx, tx, postID, post.StatusAnalyzing)
	if err != nil {
		return err
	}

	create := tx.Analysis.Create().
		SetID(uuid.New().String()).
		SetPostID(postID).
		SetModel(rec.Model).
		SetPromptSnapshot(rec.PromptSnapshot).
		SetOutputText(rec.OutputText).
		SetTokensUsed(rec.TokensUsed).
		SetCostEstimate(rec.CostEstimate).
		SetElapsedMs(rec.Elapsed.Milliseconds())
	if rec.ParamsSnapshot != nil {
		create = create.SetParamsSnapshot(rec.ParamsSnapshot)
	}
	if _, err := create.Save(ctx); err != nil {
		if ent.IsConstraintError(err) {
			// A second analysis row for the same post can only mean two
			// workers held the same claim.
			return fmt.Errorf("%w: duplicate analysis for post %s", ErrInvariant, postID)
		}
		return mapEntError(err)
	}

	err = p.Update().
		SetStatus(post.StatusAnalyzed).
		ClearPodID().
		ClearClaimedAt().
		ClearFailReason().
		Exec(ctx)
	if err != nil {
		return mapEntError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapEntError(err)
	}
	return nil
}

// FailAnalysis releases an analyzing claim. Retryable failures return the
// post to new with retry_after set; permanent failures are terminal.
func (s *PostService) FailAnalysis(ctx context.Context, postID, reason string, retryable bool, retryAfter time.Time) error {
	return s.fail(ctx, postID, post.StatusAnalyzing, post.StatusNew, reason, retryable, retryAfter)
}

// CompleteDispatch records an OK DispatchRecord and transitions
// dispatching→dispatched in one atomic unit.
func (s *PostService) CompleteDispatch(ctx context.Context, postID, destination string, attempt int) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return mapEntError(err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := s.lockOwned(ctx, tx, postID, post.StatusDispatching)
	if err != nil {
		return err
	}

	_, err = tx.DispatchRecord.Create().
		SetID(uuid.New().String()).
		SetPostID(postID).
		SetDestination(destination).
		SetAttemptNumber(attempt).
		SetOutcome(dispatchrecord.OutcomeOk).
		Save(ctx)
	if err != nil {
		return mapEntError(err)
	}

	err = p.Update().
		SetStatus(post.StatusDispatched).
		ClearPodID().
		ClearClaimedAt().
		ClearFailReason().
		Exec(ctx)
	if err != nil {
		return mapEntError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapEntError(err)
	}
	return nil
}

// FailDispatch records a failed attempt and releases the claim: retryable
// failures return the post to analyzed with retry_after, permanent ones
// are terminal. The record and the transition commit together.
func (s *PostService) FailDispatch(ctx context.Context, postID, destination string, attempt int, errDetail string, retryable bool, retryAfter time.Time) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return mapEntError(err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := s.lockOwned(ctx, tx, postID, post.StatusDispatching)
	if err != nil {
		return err
	}

	outcome := dispatchrecord.OutcomePermanentFail
	if retryable {
		outcome = dispatchrecord.OutcomeTransientFail
	}
	_, err = tx.DispatchRecord.Create().
		SetID(uuid.New().String()).
		SetPostID(postID).
		SetDestination(destination).
		SetAttemptNumber(attempt).
		SetOutcome(outcome).
		SetErrorDetail(errDetail).
		Save(ctx)
	if err != nil {
		return mapEntError(err)
	}

	update := p.Update().
		ClearPodID().
		ClearClaimedAt().
		SetFailReason(errDetail)
	if retryable {
		update = update.SetStatus(post.StatusAnalyzed).SetRetryAfter(retryAfter)
	} else {
		update = update.SetStatus(post.StatusFailed)
	}
	if err := update.Exec(ctx); err != nil {
		return mapEntError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapEntError(err)
	}
	return nil
}

// ReleaseDispatchClaim returns a dispatching post to analyzed without
// recording a delivery attempt. Used when the send was never made, e.g. a
// local rate permit could not be granted in time.
func (s *PostService) ReleaseDispatchClaim(ctx context.Context, postID, reason string, retryAfter time.Time) error {
	return s.fail(ctx, postID, post.StatusDispatching, post.StatusAnalyzed, reason, true, retryAfter)
}

// fail is the shared release path for analysis failures.
func (s *PostService) fail(ctx context.Context, postID string, from, releaseTo post.Status, reason string, retryable bool, retryAfter time.Time) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return mapEntError(err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := s.lockOwned(ctx, tx, postID, from)
	if err != nil {
		return err
	}

	update := p.Update().
		ClearPodID().
		ClearClaimedAt().
		SetFailReason(reason)
	if retryable {
		update = update.SetStatus(releaseTo)
		if !retryAfter.IsZero() {
			update = update.SetRetryAfter(retryAfter)
		}
	} else {
		update = update.SetStatus(post.StatusFailed)
	}
	if err := update.Exec(ctx); err != nil {
		return mapEntError(err)
	}

	if err := tx.Commit(); err != nil {
		return mapEntError(err)
	}
	return nil
}

// lockOwned loads and row-locks a post, verifying it is still in the state
// the caller claimed it in. A state mismatch means the claim was lost.
func (s *PostService) lockOwned(ctx context.Context, tx *ent.Tx, postID string, want post.Status) (*ent.Post, error) {
	p, err := tx.Post.Query().
		Where(post.IDEQ(postID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: post %s", ErrNotFound, postID)
		}
		return nil, mapEntError(err)
	}
	if p.Status != want {
		return nil, fmt.Errorf("%w: post %s is %s, want %s", ErrConflict, postID, p.Status, want)
	}
	return p, nil
}

// ReleasePodClaims releases every claim held by the given pod. Called once
// at startup so a crashed run's posts re-enter their queues, and during
// shutdown for work that missed the drain window. Analyzing posts return to
// new, dispatching posts to analyzed; retry_after is left untouched.
func (s *PostService) ReleasePodClaims(ctx context.Context, podID string) (int, error) {
	released := 0

	n, err := s.client.Post.Update().
		Where(
			post.StatusEQ(post.StatusAnalyzing),
			post.PodIDEQ(podID),
		).
		SetStatus(post.StatusNew).
		ClearPodID().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return released, mapEntError(err)
	}
	released += n

	n, err = s.client.Post.Update().
		Where(
			post.StatusEQ(post.StatusDispatching),
			post.PodIDEQ(podID),
		).
		SetStatus(post.StatusAnalyzed).
		ClearPodID().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return released, mapEntError(err)
	}
	released += n

	return released, nil
}

// ReleaseStaleClaims releases claims whose claimed_at is older than the
// threshold, regardless of pod. Idempotent; safe to run from every pod.
func (s *PostService) ReleaseStaleClaims(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)
	released := 0

	n, err := s.client.Post.Update().
		Where(
			post.StatusEQ(post.StatusAnalyzing),
			post.ClaimedAtNotNil(),
			post.ClaimedAtLT(cutoff),
		).
		SetStatus(post.StatusNew).
		ClearPodID().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return released, mapEntError(err)
	}
	released += n

	n, err = s.client.Post.Update().
		Where(
			post.StatusEQ(post.StatusDispatching),
			post.ClaimedAtNotNil(),
			post.ClaimedAtLT(cutoff),
		).
		SetStatus(post.StatusAnalyzed).
		ClearPodID().
		ClearClaimedAt().
		Save(ctx)
	if err != nil {
		return released, mapEntError(err)
	}
	released += n

	return released, nil
}

// AnalysisFor returns the analysis row for a post, or ErrNotFound if the
// post was never analyzed.
func (s *PostService) AnalysisFor(ctx context.Context, postID string) (*ent.Analysis, error) {
	a, err := s.client.Analysis.Query().
		Where(analysis.PostIDEQ(postID)).
		Only(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	return a, nil
}

// QueueDepths returns the number of posts waiting in each queue.
func (s *PostService) QueueDepths(ctx context.Context) (analysisDepth, dispatchDepth int, err error) {
	analysisDepth, err = s.client.Post.Query().
		Where(post.StatusEQ(post.StatusNew)).
		Count(ctx)
	if err != nil {
		return 0, 0, mapEntError(err)
	}
	dispatchDepth, err = s.client.Post.Query().
		Where(post.StatusEQ(post.StatusAnalyzed)).
		Count(ctx)
	if err != nil {
		return 0, 0, mapEntError(err)
	}
	return analysisDepth, dispatchDepth, nil
}

// SumCostSince returns the summed cost estimate of analyses created at or
// after the given time. Used for the daily cost ceiling.
func (s *PostService) SumCostSince(ctx context.Context, since time.Time) (float64, error) {
	sum, err := s.client.Analysis.Query().
		Where(analysis.CreatedAtGTE(since)).
		Aggregate(ent.Sum(analysis.FieldCostEstimate)).
		Float64(ctx)
	if err != nil {
		// Sum over zero rows yields NULL, which ent reports as an error.
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, mapEntError(err)
	}
	return sum, nil
}

// DeleteTerminalBefore removes dispatched and failed posts whose source
// created_at is older than the cutoff. Analyses and dispatch records go
// with them by cascade.
func (s *PostService) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Post.Delete().
		Where(
			post.StatusIn(post.StatusDispatched, post.StatusFailed),
			post.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, mapEntError(err)
	}
	return n, nil
}
