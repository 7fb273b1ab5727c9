package models

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrorKind classifies a failure for retry and alerting policy.
// Workers convert domain errors into a kind before touching the store;
// only HTTP handlers map kinds to response codes.
type ErrorKind string

// Error kind constants.
const (
	KindTransientNetwork  ErrorKind = "transient_network"
	KindUpstreamRateLimit ErrorKind = "upstream_rate_limit"
	KindUpstreamRejected  ErrorKind = "upstream_rejected"
	KindInternalTransient ErrorKind = "internal_transient"
	KindInternalFatal     ErrorKind = "internal_fatal"
	KindInputInvalid      ErrorKind = "input_invalid"
)

// Retryable reports whether the kind warrants another attempt.
func (k ErrorKind) Retryable() bool {
	switch k {
	case KindTransientNetwork, KindUpstreamRateLimit, KindInternalTransient:
		return true
	default:
		return false
	}
}

// KindError attaches an ErrorKind to an underlying error, optionally with
// an upstream-provided retry-after hint.
type KindError struct {
	Kind       ErrorKind
	RetryAfter time.Duration // zero when upstream gave no hint
	Err        error
}

func (e *KindError) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *KindError) Unwrap() error { return e.Err }

// NewKindError wraps err with a kind.
func NewKindError(kind ErrorKind, err error) *KindError {
	return &KindError{Kind: kind, Err: err}
}

// NewRateLimitError wraps err as an upstream rate limit with a retry hint.
func NewRateLimitError(err error, retryAfter time.Duration) *KindError {
	return &KindError{Kind: KindUpstreamRateLimit, RetryAfter: retryAfter, Err: err}
}

// KindOf extracts the ErrorKind from err. Context cancellation and deadline
// expiry classify as transient network failures; anything unclassified is
// internal transient, the safest retry posture.
func KindOf(err error) ErrorKind {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return KindTransientNetwork
	}
	return KindInternalTransient
}

// RetryAfterOf returns the upstream retry hint from err, or zero.
func RetryAfterOf(err error) time.Duration {
	var ke *KindError
	if errors.As(err, &ke) {
		return ke.RetryAfter
	}
	return 0
}
