// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/signalhouse/postwatch/ent/account"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/post"
	"github.com/signalhouse/postwatch/ent/schema"
	"github.com/signalhouse/postwatch/ent/setting"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	accountFields := schema.Account{}.Fields()
	_ = accountFields
	// accountDescEnabled is the schema descriptor for enabled field.
	accountDescEnabled := accountFields[1].Descriptor()
	// account.DefaultEnabled holds the default value on creation for the enabled field.
	account.DefaultEnabled = accountDescEnabled.Default.(bool)
	// accountDescCreatedAt is the schema descriptor for created_at field.
	accountDescCreatedAt := accountFields[2].Descriptor()
	// account.DefaultCreatedAt holds the default value on creation for the created_at field.
	account.DefaultCreatedAt = accountDescCreatedAt.Default.(func() time.Time)
	// accountDescID is the schema descriptor for id field.
	accountDescID := accountFields[0].Descriptor()
	// account.IDValidator is a validator for the "id" field. It is called by the builders before save.
	account.IDValidator = accountDescID.Validators[0].(func(string) error)
	analysisFields := schema.Analysis{}.Fields()
	_ = analysisFields
	// analysisDescTokensUsed is the schema descriptor for tokens_used field.
	analysisDescTokensUsed := analysisFields[6].Descriptor()
	// analysis.DefaultTokensUsed holds the default value on creation for the tokens_used field.
	analysis.DefaultTokensUsed = analysisDescTokensUsed.Default.(int)
	// analysisDescCostEstimate is the schema descriptor for cost_estimate field.
	analysisDescCostEstimate := analysisFields[7].Descriptor()
	// analysis.DefaultCostEstimate holds the default value on creation for the cost_estimate field.
	analysis.DefaultCostEstimate = analysisDescCostEstimate.Default.(float64)
	// analysisDescElapsedMs is the schema descriptor for elapsed_ms field.
	analysisDescElapsedMs := analysisFields[8].Descriptor()
	// analysis.DefaultElapsedMs holds the default value on creation for the elapsed_ms field.
	analysis.DefaultElapsedMs = analysisDescElapsedMs.Default.(int64)
	// analysisDescCreatedAt is the schema descriptor for created_at field.
	analysisDescCreatedAt := analysisFields[9].Descriptor()
	// analysis.DefaultCreatedAt holds the default value on creation for the created_at field.
	analysis.DefaultCreatedAt = analysisDescCreatedAt.Default.(func() time.Time)
	dispatchrecordFields := schema.DispatchRecord{}.Fields()
	_ = dispatchrecordFields
	// dispatchrecordDescDestination is the schema descriptor for destination field.
	dispatchrecordDescDestination := dispatchrecordFields[2].Descriptor()
	// dispatchrecord.DestinationValidator is a validator for the "destination" field. It is called by the builders before save.
	dispatchrecord.DestinationValidator = dispatchrecordDescDestination.Validators[0].(func(string) error)
	// dispatchrecordDescAttemptNumber is the schema descriptor for attempt_number field.
	dispatchrecordDescAttemptNumber := dispatchrecordFields[3].Descriptor()
	// dispatchrecord.DefaultAttemptNumber holds the default value on creation for the attempt_number field.
	dispatchrecord.DefaultAttemptNumber = dispatchrecordDescAttemptNumber.Default.(int)
	// dispatchrecordDescSentAt is the schema descriptor for sent_at field.
	dispatchrecordDescSentAt := dispatchrecordFields[6].Descriptor()
	// dispatchrecord.DefaultSentAt holds the default value on creation for the sent_at field.
	dispatchrecord.DefaultSentAt = dispatchrecordDescSentAt.Default.(func() time.Time)
	postFields := schema.Post{}.Fields()
	_ = postFields
	// postDescAccountUsername is the schema descriptor for account_username field.
	postDescAccountUsername := postFields[1].Descriptor()
	// post.AccountUsernameValidator is a validator for the "account_username" field. It is called by the builders before save.
	post.AccountUsernameValidator = postDescAccountUsername.Validators[0].(func(string) error)
	// postDescIngestedAt is the schema descriptor for ingested_at field.
	postDescIngestedAt := postFields[4].Descriptor()
	// post.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	post.DefaultIngestedAt = postDescIngestedAt.Default.(func() time.Time)
	// postDescLikes is the schema descriptor for likes field.
	postDescLikes := postFields[5].Descriptor()
	// post.DefaultLikes holds the default value on creation for the likes field.
	post.DefaultLikes = postDescLikes.Default.(int)
	// postDescReshares is the schema descriptor for reshares field.
	postDescReshares := postFields[6].Descriptor()
	// post.DefaultReshares holds the default value on creation for the reshares field.
	post.DefaultReshares = postDescReshares.Default.(int)
	// postDescReplies is the schema descriptor for replies field.
	postDescReplies := postFields[7].Descriptor()
	// post.DefaultReplies holds the default value on creation for the replies field.
	post.DefaultReplies = postDescReplies.Default.(int)
	// postDescAnalysisAttempts is the schema descriptor for analysis_attempts field.
	postDescAnalysisAttempts := postFields[12].Descriptor()
	// post.DefaultAnalysisAttempts holds the default value on creation for the analysis_attempts field.
	post.DefaultAnalysisAttempts = postDescAnalysisAttempts.Default.(int)
	// postDescDispatchAttempts is the schema descriptor for dispatch_attempts field.
	postDescDispatchAttempts := postFields[13].Descriptor()
	// post.DefaultDispatchAttempts holds the default value on creation for the dispatch_attempts field.
	post.DefaultDispatchAttempts = postDescDispatchAttempts.Default.(int)
	// postDescID is the schema descriptor for id field.
	postDescID := postFields[0].Descriptor()
	// post.IDValidator is a validator for the "id" field. It is called by the builders before save.
	post.IDValidator = postDescID.Validators[0].(func(string) error)
	settingFields := schema.Setting{}.Fields()
	_ = settingFields
	// settingDescUpdatedAt is the schema descriptor for updated_at field.
	settingDescUpdatedAt := settingFields[2].Descriptor()
	// setting.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	setting.DefaultUpdatedAt = settingDescUpdatedAt.Default.(func() time.Time)
	// setting.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	setting.UpdateDefaultUpdatedAt = settingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// settingDescID is the schema descriptor for id field.
	settingDescID := settingFields[0].Descriptor()
	// setting.IDValidator is a validator for the "id" field. It is called by the builders before save.
	setting.IDValidator = settingDescID.Validators[0].(func(string) error)
}
