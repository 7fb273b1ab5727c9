// Package models contains shared business domain types.
package models

import "time"

// MediaKind identifies the type of a media attachment.
type MediaKind string

// Media kind constants.
const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaGIF   MediaKind = "gif"
)

// Media is a single attachment on a source post.
type Media struct {
	Kind     MediaKind `json:"kind"`
	URL      string    `json:"url"`
	LocalRef string    `json:"local_ref,omitempty"`
}

// Engagement holds the counters a source reports for a post.
// These are the only post fields that an upsert replay may overwrite.
type Engagement struct {
	Likes    int `json:"likes"`
	Reshares int `json:"reshares"`
	Replies  int `json:"replies"`
}

// SourcePost is a post as returned by the upstream source, before it is
// persisted. The id is supplied by the source and globally unique.
type SourcePost struct {
	ID         string     `json:"id"`
	Account    string     `json:"account"`
	Text       string     `json:"text"`
	CreatedAt  time.Time  `json:"created_at"`
	Engagement Engagement `json:"engagement"`
	Media      []Media    `json:"media,omitempty"`
}

// TriggerReason says why a poll trigger was emitted.
type TriggerReason string

// Trigger reason constants.
const (
	TriggerScheduled TriggerReason = "scheduled"
	TriggerPush      TriggerReason = "push"
	TriggerForced    TriggerReason = "forced"
)

// PollTrigger instructs the ingest pipeline to fetch posts for an account.
type PollTrigger struct {
	Account    string
	Reason     TriggerReason
	HintPostID string
}
