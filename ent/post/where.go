// Code generated by ent, DO NOT EDIT.

package post

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/signalhouse/postwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldID, id))
}

// AccountUsername applies equality check predicate on the "account_username" field. It's identical to AccountUsernameEQ.
func AccountUsername(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAccountUsername, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatedAt, v))
}

// IngestedAt applies equality check predicate on the "ingested_at" field. It's identical to IngestedAtEQ.
func IngestedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldIngestedAt, v))
}

// Likes applies equality check predicate on the "likes" field. It's identical to LikesEQ.
func Likes(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLikes, v))
}

// Reshares applies equality check predicate on the "reshares" field. It's identical to ResharesEQ.
func Reshares(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldReshares, v))
}

// Replies applies equality check predicate on the "replies" field. It's identical to RepliesEQ.
func Replies(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldReplies, v))
}

// FailReason applies equality check predicate on the "fail_reason" field. It's identical to FailReasonEQ.
func FailReason(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldFailReason, v))
}

// RetryAfter applies equality check predicate on the "retry_after" field. It's identical to RetryAfterEQ.
func RetryAfter(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldRetryAfter, v))
}

// AnalysisAttempts applies equality check predicate on the "analysis_attempts" field. It's identical to AnalysisAttemptsEQ.
func AnalysisAttempts(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAnalysisAttempts, v))
}

// DispatchAttempts applies equality check predicate on the "dispatch_attempts" field. It's identical to DispatchAttemptsEQ.
func DispatchAttempts(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldDispatchAttempts, v))
}

// PodID applies equality check predicate on the "pod_id" field. It's identical to PodIDEQ.
func PodID(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPodID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldClaimedAt, v))
}

// AccountUsernameEQ applies the EQ predicate on the "account_username" field.
func AccountUsernameEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAccountUsername, v))
}

// AccountUsernameNEQ applies the NEQ predicate on the "account_username" field.
func AccountUsernameNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldAccountUsername, v))
}

// AccountUsernameIn applies the In predicate on the "account_username" field.
func AccountUsernameIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldAccountUsername, vs...))
}

// AccountUsernameNotIn applies the NotIn predicate on the "account_username" field.
func AccountUsernameNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldAccountUsername, vs...))
}

// AccountUsernameGT applies the GT predicate on the "account_username" field.
func AccountUsernameGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldAccountUsername, v))
}

// AccountUsernameGTE applies the GTE predicate on the "account_username" field.
func AccountUsernameGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldAccountUsername, v))
}

// AccountUsernameLT applies the LT predicate on the "account_username" field.
func AccountUsernameLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldAccountUsername, v))
}

// AccountUsernameLTE applies the LTE predicate on the "account_username" field.
func AccountUsernameLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldAccountUsername, v))
}

// AccountUsernameContains applies the Contains predicate on the "account_username" field.
func AccountUsernameContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldAccountUsername, v))
}

// AccountUsernameHasPrefix applies the HasPrefix predicate on the "account_username" field.
func AccountUsernameHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldAccountUsername, v))
}

// AccountUsernameHasSuffix applies the HasSuffix predicate on the "account_username" field.
func AccountUsernameHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldAccountUsername, v))
}

// AccountUsernameEqualFold applies the EqualFold predicate on the "account_username" field.
func AccountUsernameEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldAccountUsername, v))
}

// AccountUsernameContainsFold applies the ContainsFold predicate on the "account_username" field.
func AccountUsernameContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldAccountUsername, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldCreatedAt, v))
}

// IngestedAtEQ applies the EQ predicate on the "ingested_at" field.
func IngestedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldIngestedAt, v))
}

// IngestedAtNEQ applies the NEQ predicate on the "ingested_at" field.
func IngestedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldIngestedAt, v))
}

// IngestedAtIn applies the In predicate on the "ingested_at" field.
func IngestedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldIngestedAt, vs...))
}

// IngestedAtNotIn applies the NotIn predicate on the "ingested_at" field.
func IngestedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldIngestedAt, vs...))
}

// IngestedAtGT applies the GT predicate on the "ingested_at" field.
func IngestedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldIngestedAt, v))
}

// IngestedAtGTE applies the GTE predicate on the "ingested_at" field.
func IngestedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldIngestedAt, v))
}

// IngestedAtLT applies the LT predicate on the "ingested_at" field.
func IngestedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldIngestedAt, v))
}

// IngestedAtLTE applies the LTE predicate on the "ingested_at" field.
func IngestedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldIngestedAt, v))
}

// LikesEQ applies the EQ predicate on the "likes" field.
func LikesEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldLikes, v))
}

// LikesNEQ applies the NEQ predicate on the "likes" field.
func LikesNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldLikes, v))
}

// LikesIn applies the In predicate on the "likes" field.
func LikesIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldLikes, vs...))
}

// LikesNotIn applies the NotIn predicate on the "likes" field.
func LikesNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldLikes, vs...))
}

// LikesGT applies the GT predicate on the "likes" field.
func LikesGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldLikes, v))
}

// LikesGTE applies the GTE predicate on the "likes" field.
func LikesGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldLikes, v))
}

// LikesLT applies the LT predicate on the "likes" field.
func LikesLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldLikes, v))
}

// LikesLTE applies the LTE predicate on the "likes" field.
func LikesLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldLikes, v))
}

// ResharesEQ applies the EQ predicate on the "reshares" field.
func ResharesEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldReshares, v))
}

// ResharesNEQ applies the NEQ predicate on the "reshares" field.
func ResharesNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldReshares, v))
}

// ResharesIn applies the In predicate on the "reshares" field.
func ResharesIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldReshares, vs...))
}

// ResharesNotIn applies the NotIn predicate on the "reshares" field.
func ResharesNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldReshares, vs...))
}

// ResharesGT applies the GT predicate on the "reshares" field.
func ResharesGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldReshares, v))
}

// ResharesGTE applies the GTE predicate on the "reshares" field.
func ResharesGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldReshares, v))
}

// ResharesLT applies the LT predicate on the "reshares" field.
func ResharesLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldReshares, v))
}

// ResharesLTE applies the LTE predicate on the "reshares" field.
func ResharesLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldReshares, v))
}

// RepliesEQ applies the EQ predicate on the "replies" field.
func RepliesEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldReplies, v))
}

// RepliesNEQ applies the NEQ predicate on the "replies" field.
func RepliesNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldReplies, v))
}

// RepliesIn applies the In predicate on the "replies" field.
func RepliesIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldReplies, vs...))
}

// RepliesNotIn applies the NotIn predicate on the "replies" field.
func RepliesNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldReplies, vs...))
}

// RepliesGT applies the GT predicate on the "replies" field.
func RepliesGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldReplies, v))
}

// RepliesGTE applies the GTE predicate on the "replies" field.
func RepliesGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldReplies, v))
}

// RepliesLT applies the LT predicate on the "replies" field.
func RepliesLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldReplies, v))
}

// RepliesLTE applies the LTE predicate on the "replies" field.
func RepliesLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldReplies, v))
}

// MediaIsNil applies the IsNil predicate on the "media" field.
func MediaIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldMedia))
}

// MediaNotNil applies the NotNil predicate on the "media" field.
func MediaNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldMedia))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldStatus, vs...))
}

// FailReasonEQ applies the EQ predicate on the "fail_reason" field.
func FailReasonEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldFailReason, v))
}

// FailReasonNEQ applies the NEQ predicate on the "fail_reason" field.
func FailReasonNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldFailReason, v))
}

// FailReasonIn applies the In predicate on the "fail_reason" field.
func FailReasonIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldFailReason, vs...))
}

// FailReasonNotIn applies the NotIn predicate on the "fail_reason" field.
func FailReasonNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldFailReason, vs...))
}

// FailReasonGT applies the GT predicate on the "fail_reason" field.
func FailReasonGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldFailReason, v))
}

// FailReasonGTE applies the GTE predicate on the "fail_reason" field.
func FailReasonGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldFailReason, v))
}

// FailReasonLT applies the LT predicate on the "fail_reason" field.
func FailReasonLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldFailReason, v))
}

// FailReasonLTE applies the LTE predicate on the "fail_reason" field.
func FailReasonLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldFailReason, v))
}

// FailReasonContains applies the Contains predicate on the "fail_reason" field.
func FailReasonContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldFailReason, v))
}

// FailReasonHasPrefix applies the HasPrefix predicate on the "fail_reason" field.
func FailReasonHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldFailReason, v))
}

// FailReasonHasSuffix applies the HasSuffix predicate on the "fail_reason" field.
func FailReasonHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldFailReason, v))
}

// FailReasonIsNil applies the IsNil predicate on the "fail_reason" field.
func FailReasonIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldFailReason))
}

// FailReasonNotNil applies the NotNil predicate on the "fail_reason" field.
func FailReasonNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldFailReason))
}

// FailReasonEqualFold applies the EqualFold predicate on the "fail_reason" field.
func FailReasonEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldFailReason, v))
}

// FailReasonContainsFold applies the ContainsFold predicate on the "fail_reason" field.
func FailReasonContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldFailReason, v))
}

// RetryAfterEQ applies the EQ predicate on the "retry_after" field.
func RetryAfterEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldRetryAfter, v))
}

// RetryAfterNEQ applies the NEQ predicate on the "retry_after" field.
func RetryAfterNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldRetryAfter, v))
}

// RetryAfterIn applies the In predicate on the "retry_after" field.
func RetryAfterIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldRetryAfter, vs...))
}

// RetryAfterNotIn applies the NotIn predicate on the "retry_after" field.
func RetryAfterNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldRetryAfter, vs...))
}

// RetryAfterGT applies the GT predicate on the "retry_after" field.
func RetryAfterGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldRetryAfter, v))
}

// RetryAfterGTE applies the GTE predicate on the "retry_after" field.
func RetryAfterGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldRetryAfter, v))
}

// RetryAfterLT applies the LT predicate on the "retry_after" field.
func RetryAfterLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldRetryAfter, v))
}

// RetryAfterLTE applies the LTE predicate on the "retry_after" field.
func RetryAfterLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldRetryAfter, v))
}

// RetryAfterIsNil applies the IsNil predicate on the "retry_after" field.
func RetryAfterIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldRetryAfter))
}

// RetryAfterNotNil applies the NotNil predicate on the "retry_after" field.
func RetryAfterNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldRetryAfter))
}

// AnalysisAttemptsEQ applies the EQ predicate on the "analysis_attempts" field.
func AnalysisAttemptsEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldAnalysisAttempts, v))
}

// AnalysisAttemptsNEQ applies the NEQ predicate on the "analysis_attempts" field.
func AnalysisAttemptsNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldAnalysisAttempts, v))
}

// AnalysisAttemptsIn applies the In predicate on the "analysis_attempts" field.
func AnalysisAttemptsIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldAnalysisAttempts, vs...))
}

// AnalysisAttemptsNotIn applies the NotIn predicate on the "analysis_attempts" field.
func AnalysisAttemptsNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldAnalysisAttempts, vs...))
}

// AnalysisAttemptsGT applies the GT predicate on the "analysis_attempts" field.
func AnalysisAttemptsGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldAnalysisAttempts, v))
}

// AnalysisAttemptsGTE applies the GTE predicate on the "analysis_attempts" field.
func AnalysisAttemptsGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldAnalysisAttempts, v))
}

// AnalysisAttemptsLT applies the LT predicate on the "analysis_attempts" field.
func AnalysisAttemptsLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldAnalysisAttempts, v))
}

// AnalysisAttemptsLTE applies the LTE predicate on the "analysis_attempts" field.
func AnalysisAttemptsLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldAnalysisAttempts, v))
}

// DispatchAttemptsEQ applies the EQ predicate on the "dispatch_attempts" field.
func DispatchAttemptsEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldDispatchAttempts, v))
}

// DispatchAttemptsNEQ applies the NEQ predicate on the "dispatch_attempts" field.
func DispatchAttemptsNEQ(v int) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldDispatchAttempts, v))
}

// DispatchAttemptsIn applies the In predicate on the "dispatch_attempts" field.
func DispatchAttemptsIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldDispatchAttempts, vs...))
}

// DispatchAttemptsNotIn applies the NotIn predicate on the "dispatch_attempts" field.
func DispatchAttemptsNotIn(vs ...int) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldDispatchAttempts, vs...))
}

// DispatchAttemptsGT applies the GT predicate on the "dispatch_attempts" field.
func DispatchAttemptsGT(v int) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldDispatchAttempts, v))
}

// DispatchAttemptsGTE applies the GTE predicate on the "dispatch_attempts" field.
func DispatchAttemptsGTE(v int) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldDispatchAttempts, v))
}

// DispatchAttemptsLT applies the LT predicate on the "dispatch_attempts" field.
func DispatchAttemptsLT(v int) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldDispatchAttempts, v))
}

// DispatchAttemptsLTE applies the LTE predicate on the "dispatch_attempts" field.
func DispatchAttemptsLTE(v int) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldDispatchAttempts, v))
}

// PodIDEQ applies the EQ predicate on the "pod_id" field.
func PodIDEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldPodID, v))
}

// PodIDNEQ applies the NEQ predicate on the "pod_id" field.
func PodIDNEQ(v string) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldPodID, v))
}

// PodIDIn applies the In predicate on the "pod_id" field.
func PodIDIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldPodID, vs...))
}

// PodIDNotIn applies the NotIn predicate on the "pod_id" field.
func PodIDNotIn(vs ...string) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldPodID, vs...))
}

// PodIDGT applies the GT predicate on the "pod_id" field.
func PodIDGT(v string) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldPodID, v))
}

// PodIDGTE applies the GTE predicate on the "pod_id" field.
func PodIDGTE(v string) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldPodID, v))
}

// PodIDLT applies the LT predicate on the "pod_id" field.
func PodIDLT(v string) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldPodID, v))
}

// PodIDLTE applies the LTE predicate on the "pod_id" field.
func PodIDLTE(v string) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldPodID, v))
}

// PodIDContains applies the Contains predicate on the "pod_id" field.
func PodIDContains(v string) predicate.Post {
	return predicate.Post(sql.FieldContains(FieldPodID, v))
}

// PodIDHasPrefix applies the HasPrefix predicate on the "pod_id" field.
func PodIDHasPrefix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasPrefix(FieldPodID, v))
}

// PodIDHasSuffix applies the HasSuffix predicate on the "pod_id" field.
func PodIDHasSuffix(v string) predicate.Post {
	return predicate.Post(sql.FieldHasSuffix(FieldPodID, v))
}

// PodIDIsNil applies the IsNil predicate on the "pod_id" field.
func PodIDIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldPodID))
}

// PodIDNotNil applies the NotNil predicate on the "pod_id" field.
func PodIDNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldPodID))
}

// PodIDEqualFold applies the EqualFold predicate on the "pod_id" field.
func PodIDEqualFold(v string) predicate.Post {
	return predicate.Post(sql.FieldEqualFold(FieldPodID, v))
}

// PodIDContainsFold applies the ContainsFold predicate on the "pod_id" field.
func PodIDContainsFold(v string) predicate.Post {
	return predicate.Post(sql.FieldContainsFold(FieldPodID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.Post {
	return predicate.Post(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.Post {
	return predicate.Post(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.Post {
	return predicate.Post(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.Post {
	return predicate.Post(sql.FieldNotNull(FieldClaimedAt))
}

// HasAccount applies the HasEdge predicate on the "account" edge.
func HasAccount() predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AccountTable, AccountColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAccountWith applies the HasEdge predicate on the "account" edge with a given conditions (other predicates).
func HasAccountWith(preds ...predicate.Account) predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := newAccountStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasAnalysis applies the HasEdge predicate on the "analysis" edge.
func HasAnalysis() predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, AnalysisTable, AnalysisColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAnalysisWith applies the HasEdge predicate on the "analysis" edge with a given conditions (other predicates).
func HasAnalysisWith(preds ...predicate.Analysis) predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := newAnalysisStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDispatchRecords applies the HasEdge predicate on the "dispatch_records" edge.
func HasDispatchRecords() predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DispatchRecordsTable, DispatchRecordsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDispatchRecordsWith applies the HasEdge predicate on the "dispatch_records" edge with a given conditions (other predicates).
func HasDispatchRecordsWith(preds ...predicate.DispatchRecord) predicate.Post {
	return predicate.Post(func(s *sql.Selector) {
		step := newDispatchRecordsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Post) predicate.Post {
	return predicate.Post(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Post) predicate.Post {
	return predicate.Post(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Post) predicate.Post {
	return predicate.Post(sql.NotPredicates(p))
}
