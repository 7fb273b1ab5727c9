package api

import (
	"time"

	"github.com/signalhouse/postwatch/ent"
	"github.com/signalhouse/postwatch/pkg/models"
)

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// PushResponse tells the push sender what happened to its notification.
type PushResponse struct {
	Status  string `json:"status"` // "queued" or "coalesced"
	Account string `json:"account"`
}

// AccountResponse is the API shape of a monitored account.
type AccountResponse struct {
	Username       string     `json:"username"`
	Enabled        bool       `json:"enabled"`
	CreatedAt      time.Time  `json:"created_at"`
	LastPolledAt   *time.Time `json:"last_polled_at,omitempty"`
	LastSeenPostID string     `json:"last_seen_post_id,omitempty"`
}

func toAccountResponse(a *ent.Account) AccountResponse {
	return AccountResponse{
		Username:       a.ID,
		Enabled:        a.Enabled,
		CreatedAt:      a.CreatedAt,
		LastPolledAt:   a.LastPolledAt,
		LastSeenPostID: a.LastSeenPostID,
	}
}

// PostSummary is the listing shape of a post.
type PostSummary struct {
	ID               string    `json:"id"`
	Account          string    `json:"account"`
	Text             string    `json:"text"`
	CreatedAt        time.Time `json:"created_at"`
	Status           string    `json:"status"`
	Likes            int       `json:"likes"`
	Reshares         int       `json:"reshares"`
	Replies          int       `json:"replies"`
	AnalysisAttempts int       `json:"analysis_attempts"`
	DispatchAttempts int       `json:"dispatch_attempts"`
	FailReason       string    `json:"fail_reason,omitempty"`
}

func toPostSummary(p *ent.Post) PostSummary {
	return PostSummary{
		ID:               p.ID,
		Account:          p.AccountUsername,
		Text:             p.Text,
		CreatedAt:        p.CreatedAt,
		Status:           string(p.Status),
		Likes:            p.Likes,
		Reshares:         p.Reshares,
		Replies:          p.Replies,
		AnalysisAttempts: p.AnalysisAttempts,
		DispatchAttempts: p.DispatchAttempts,
		FailReason:       p.FailReason,
	}
}

// PostListResponse is one page of posts.
type PostListResponse struct {
	Posts    []PostSummary `json:"posts"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// AnalysisResponse is the API shape of an analysis row.
type AnalysisResponse struct {
	Model        string    `json:"model"`
	OutputText   string    `json:"output_text"`
	TokensUsed   int       `json:"tokens_used"`
	CostEstimate float64   `json:"cost_estimate"`
	ElapsedMs    int64     `json:"elapsed_ms"`
	CreatedAt    time.Time `json:"created_at"`
}

// DispatchRecordResponse is one delivery attempt.
type DispatchRecordResponse struct {
	Destination   string    `json:"destination"`
	AttemptNumber int       `json:"attempt_number"`
	Outcome       string    `json:"outcome"`
	ErrorDetail   string    `json:"error_detail,omitempty"`
	SentAt        time.Time `json:"sent_at"`
}

// PostDetailResponse is a post with its analysis and dispatch log.
type PostDetailResponse struct {
	PostSummary
	Media       []models.Media           `json:"media,omitempty"`
	Analysis    *AnalysisResponse        `json:"analysis,omitempty"`
	DispatchLog []DispatchRecordResponse `json:"dispatch_log,omitempty"`
}

func toPostDetail(p *ent.Post) PostDetailResponse {
	detail := PostDetailResponse{
		PostSummary: toPostSummary(p),
		Media:       p.Media,
	}
	if a := p.Edges.Analysis; a != nil {
		detail.Analysis = &AnalysisResponse{
			Model:        a.Model,
			OutputText:   a.OutputText,
			TokensUsed:   a.TokensUsed,
			CostEstimate: a.CostEstimate,
			ElapsedMs:    a.ElapsedMs,
			CreatedAt:    a.CreatedAt,
		}
	}
	for _, rec := range p.Edges.DispatchRecords {
		detail.DispatchLog = append(detail.DispatchLog, DispatchRecordResponse{
			Destination:   rec.Destination,
			AttemptNumber: rec.AttemptNumber,
			Outcome:       string(rec.Outcome),
			ErrorDetail:   rec.ErrorDetail,
			SentAt:        rec.SentAt,
		})
	}
	return detail
}

// SettingResponse is one runtime setting.
type SettingResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
