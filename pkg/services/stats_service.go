package services

import (
	"context"
	"time"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/ent/post"
)

// PostFilter narrows ListPosts. Zero values mean "no filter".
type PostFilter struct {
	Account  string
	Status   string
	Page     int
	PageSize int
}

// PostPage is one page of posts plus the total matching count.
type PostPage struct {
	Posts []*ent.Post
	Total int
}

// Overview aggregates the numbers the dashboard and health endpoint show.
type Overview struct {
	AnalysisQueueDepth int     `json:"analysis_queue_depth"`
	DispatchQueueDepth int     `json:"dispatch_queue_depth"`
	InFlight           int     `json:"in_flight"`
	Dispatched         int     `json:"dispatched"`
	Failed             int     `json:"failed"`
	DailyCost          float64 `json:"daily_cost"`
}

// StatsService serves the read APIs for the dashboard.
type StatsService struct {
	client *ent.Client
	posts  *PostService
}

// NewStatsService creates a new StatsService.
func NewStatsService(client *ent.Client, posts *PostService) *StatsService {
	if client == nil {
		panic("NewStatsService: client must not be nil")
	}
	return &StatsService{client: client, posts: posts}
}

// ListPosts returns a filtered, paginated post listing, newest first.
func (s *StatsService) ListPosts(ctx context.Context, filter PostFilter) (*PostPage, error) {
	if filter.PageSize <= 0 || filter.PageSize > 100 {
		filter.PageSize = 25
	}
	if filter.Page < 1 {
		filter.Page = 1
	}

	q := s.client.Post.Query()
	if filter.Account != "" {
		q = q.Where(post.AccountUsernameEQ(Normalize(filter.Account)))
	}
	if filter.Status != "" {
		st := post.Status(filter.Status)
		if err := post.StatusValidator(st); err != nil {
			return nil, NewValidationError("status", "unknown status "+filter.Status)
		}
		q = q.Where(post.StatusEQ(st))
	}

	total, err := q.Clone().Count(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}

	rows, err := q.
		Order(ent.Desc(post.FieldCreatedAt)).
		Offset((filter.Page - 1) * filter.PageSize).
		Limit(filter.PageSize).
		All(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}

	return &PostPage{Posts: rows, Total: total}, nil
}

// GetPost returns one post with its analysis and dispatch log loaded.
func (s *StatsService) GetPost(ctx context.Context, postID string) (*ent.Post, error) {
	p, err := s.client.Post.Query().
		Where(post.IDEQ(postID)).
		WithAnalysis().
		WithDispatchRecords().
		Only(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	return p, nil
}

// GetOverview returns queue depths, terminal counts, and the day's spend.
func (s *StatsService) GetOverview(ctx context.Context) (*Overview, error) {
	analysisDepth, dispatchDepth, err := s.posts.QueueDepths(ctx)
	if err != nil {
		return nil, err
	}

	inFlight, err := s.client.Post.Query().
		Where(post.StatusIn(post.StatusAnalyzing, post.StatusDispatching)).
		Count(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	dispatched, err := s.client.Post.Query().
		Where(post.StatusEQ(post.StatusDispatched)).
		Count(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}
	failed, err := s.client.Post.Query().
		Where(post.StatusEQ(post.StatusFailed)).
		Count(ctx)
	if err != nil {
		return nil, mapEntError(err)
	}

	midnight := time.Now().Truncate(24 * time.Hour)
	cost, err := s.posts.SumCostSince(ctx, midnight)
	if err != nil {
		return nil, err
	}

	return &Overview{
		AnalysisQueueDepth: analysisDepth,
		DispatchQueueDepth: dispatchDepth,
		InFlight:           inFlight,
		Dispatched:         dispatched,
		Failed:             failed,
		DailyCost:          cost,
	}, nil
}
