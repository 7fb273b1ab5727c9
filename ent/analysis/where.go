// Code generated by ent, DO NOT EDIT.

package analysis

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/signalhouse/postwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldID, id))
}

// PostID applies equality check predicate on the "post_id" field. It's identical to PostIDEQ.
func PostID(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPostID, v))
}

// Model applies equality check predicate on the "model" field. It's identical to ModelEQ.
func Model(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldModel, v))
}

// PromptSnapshot applies equality check predicate on the "prompt_snapshot" field. It's identical to PromptSnapshotEQ.
func PromptSnapshot(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPromptSnapshot, v))
}

// OutputText applies equality check predicate on the "output_text" field. It's identical to OutputTextEQ.
func OutputText(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOutputText, v))
}

// TokensUsed applies equality check predicate on the "tokens_used" field. It's identical to TokensUsedEQ.
func TokensUsed(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTokensUsed, v))
}

// CostEstimate applies equality check predicate on the "cost_estimate" field. It's identical to CostEstimateEQ.
func CostEstimate(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCostEstimate, v))
}

// ElapsedMs applies equality check predicate on the "elapsed_ms" field. It's identical to ElapsedMsEQ.
func ElapsedMs(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldElapsedMs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// PostIDEQ applies the EQ predicate on the "post_id" field.
func PostIDEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPostID, v))
}

// PostIDNEQ applies the NEQ predicate on the "post_id" field.
func PostIDNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldPostID, v))
}

// PostIDIn applies the In predicate on the "post_id" field.
func PostIDIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldPostID, vs...))
}

// PostIDNotIn applies the NotIn predicate on the "post_id" field.
func PostIDNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldPostID, vs...))
}

// PostIDGT applies the GT predicate on the "post_id" field.
func PostIDGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldPostID, v))
}

// PostIDGTE applies the GTE predicate on the "post_id" field.
func PostIDGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldPostID, v))
}

// PostIDLT applies the LT predicate on the "post_id" field.
func PostIDLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldPostID, v))
}

// PostIDLTE applies the LTE predicate on the "post_id" field.
func PostIDLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldPostID, v))
}

// PostIDContains applies the Contains predicate on the "post_id" field.
func PostIDContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldPostID, v))
}

// PostIDHasPrefix applies the HasPrefix predicate on the "post_id" field.
func PostIDHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldPostID, v))
}

// PostIDHasSuffix applies the HasSuffix predicate on the "post_id" field.
func PostIDHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldPostID, v))
}

// PostIDEqualFold applies the EqualFold predicate on the "post_id" field.
func PostIDEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldPostID, v))
}

// PostIDContainsFold applies the ContainsFold predicate on the "post_id" field.
func PostIDContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldPostID, v))
}

// ModelEQ applies the EQ predicate on the "model" field.
func ModelEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldModel, v))
}

// ModelNEQ applies the NEQ predicate on the "model" field.
func ModelNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldModel, v))
}

// ModelIn applies the In predicate on the "model" field.
func ModelIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldModel, vs...))
}

// ModelNotIn applies the NotIn predicate on the "model" field.
func ModelNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldModel, vs...))
}

// ModelGT applies the GT predicate on the "model" field.
func ModelGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldModel, v))
}

// ModelGTE applies the GTE predicate on the "model" field.
func ModelGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldModel, v))
}

// ModelLT applies the LT predicate on the "model" field.
func ModelLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldModel, v))
}

// ModelLTE applies the LTE predicate on the "model" field.
func ModelLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldModel, v))
}

// ModelContains applies the Contains predicate on the "model" field.
func ModelContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldModel, v))
}

// ModelHasPrefix applies the HasPrefix predicate on the "model" field.
func ModelHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldModel, v))
}

// ModelHasSuffix applies the HasSuffix predicate on the "model" field.
func ModelHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldModel, v))
}

// ModelEqualFold applies the EqualFold predicate on the "model" field.
func ModelEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldModel, v))
}

// ModelContainsFold applies the ContainsFold predicate on the "model" field.
func ModelContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldModel, v))
}

// PromptSnapshotEQ applies the EQ predicate on the "prompt_snapshot" field.
func PromptSnapshotEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldPromptSnapshot, v))
}

// PromptSnapshotNEQ applies the NEQ predicate on the "prompt_snapshot" field.
func PromptSnapshotNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldPromptSnapshot, v))
}

// PromptSnapshotIn applies the In predicate on the "prompt_snapshot" field.
func PromptSnapshotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldPromptSnapshot, vs...))
}

// PromptSnapshotNotIn applies the NotIn predicate on the "prompt_snapshot" field.
func PromptSnapshotNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldPromptSnapshot, vs...))
}

// PromptSnapshotGT applies the GT predicate on the "prompt_snapshot" field.
func PromptSnapshotGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldPromptSnapshot, v))
}

// PromptSnapshotGTE applies the GTE predicate on the "prompt_snapshot" field.
func PromptSnapshotGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldPromptSnapshot, v))
}

// PromptSnapshotLT applies the LT predicate on the "prompt_snapshot" field.
func PromptSnapshotLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldPromptSnapshot, v))
}

// PromptSnapshotLTE applies the LTE predicate on the "prompt_snapshot" field.
func PromptSnapshotLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldPromptSnapshot, v))
}

// PromptSnapshotContains applies the Contains predicate on the "prompt_snapshot" field.
func PromptSnapshotContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldPromptSnapshot, v))
}

// PromptSnapshotHasPrefix applies the HasPrefix predicate on the "prompt_snapshot" field.
func PromptSnapshotHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldPromptSnapshot, v))
}

// PromptSnapshotHasSuffix applies the HasSuffix predicate on the "prompt_snapshot" field.
func PromptSnapshotHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldPromptSnapshot, v))
}

// PromptSnapshotEqualFold applies the EqualFold predicate on the "prompt_snapshot" field.
func PromptSnapshotEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldPromptSnapshot, v))
}

// PromptSnapshotContainsFold applies the ContainsFold predicate on the "prompt_snapshot" field.
func PromptSnapshotContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldPromptSnapshot, v))
}

// ParamsSnapshotIsNil applies the IsNil predicate on the "params_snapshot" field.
func ParamsSnapshotIsNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldIsNull(FieldParamsSnapshot))
}

// ParamsSnapshotNotNil applies the NotNil predicate on the "params_snapshot" field.
func ParamsSnapshotNotNil() predicate.Analysis {
	return predicate.Analysis(sql.FieldNotNull(FieldParamsSnapshot))
}

// OutputTextEQ applies the EQ predicate on the "output_text" field.
func OutputTextEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldOutputText, v))
}

// OutputTextNEQ applies the NEQ predicate on the "output_text" field.
func OutputTextNEQ(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldOutputText, v))
}

// OutputTextIn applies the In predicate on the "output_text" field.
func OutputTextIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldOutputText, vs...))
}

// OutputTextNotIn applies the NotIn predicate on the "output_text" field.
func OutputTextNotIn(vs ...string) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldOutputText, vs...))
}

// OutputTextGT applies the GT predicate on the "output_text" field.
func OutputTextGT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldOutputText, v))
}

// OutputTextGTE applies the GTE predicate on the "output_text" field.
func OutputTextGTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldOutputText, v))
}

// OutputTextLT applies the LT predicate on the "output_text" field.
func OutputTextLT(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldOutputText, v))
}

// OutputTextLTE applies the LTE predicate on the "output_text" field.
func OutputTextLTE(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldOutputText, v))
}

// OutputTextContains applies the Contains predicate on the "output_text" field.
func OutputTextContains(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContains(FieldOutputText, v))
}

// OutputTextHasPrefix applies the HasPrefix predicate on the "output_text" field.
func OutputTextHasPrefix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasPrefix(FieldOutputText, v))
}

// OutputTextHasSuffix applies the HasSuffix predicate on the "output_text" field.
func OutputTextHasSuffix(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldHasSuffix(FieldOutputText, v))
}

// OutputTextEqualFold applies the EqualFold predicate on the "output_text" field.
func OutputTextEqualFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldEqualFold(FieldOutputText, v))
}

// OutputTextContainsFold applies the ContainsFold predicate on the "output_text" field.
func OutputTextContainsFold(v string) predicate.Analysis {
	return predicate.Analysis(sql.FieldContainsFold(FieldOutputText, v))
}

// TokensUsedEQ applies the EQ predicate on the "tokens_used" field.
func TokensUsedEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldTokensUsed, v))
}

// TokensUsedNEQ applies the NEQ predicate on the "tokens_used" field.
func TokensUsedNEQ(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldTokensUsed, v))
}

// TokensUsedIn applies the In predicate on the "tokens_used" field.
func TokensUsedIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldTokensUsed, vs...))
}

// TokensUsedNotIn applies the NotIn predicate on the "tokens_used" field.
func TokensUsedNotIn(vs ...int) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldTokensUsed, vs...))
}

// TokensUsedGT applies the GT predicate on the "tokens_used" field.
func TokensUsedGT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldTokensUsed, v))
}

// TokensUsedGTE applies the GTE predicate on the "tokens_used" field.
func TokensUsedGTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldTokensUsed, v))
}

// TokensUsedLT applies the LT predicate on the "tokens_used" field.
func TokensUsedLT(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldTokensUsed, v))
}

// TokensUsedLTE applies the LTE predicate on the "tokens_used" field.
func TokensUsedLTE(v int) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldTokensUsed, v))
}

// CostEstimateEQ applies the EQ predicate on the "cost_estimate" field.
func CostEstimateEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCostEstimate, v))
}

// CostEstimateNEQ applies the NEQ predicate on the "cost_estimate" field.
func CostEstimateNEQ(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCostEstimate, v))
}

// CostEstimateIn applies the In predicate on the "cost_estimate" field.
func CostEstimateIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCostEstimate, vs...))
}

// CostEstimateNotIn applies the NotIn predicate on the "cost_estimate" field.
func CostEstimateNotIn(vs ...float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCostEstimate, vs...))
}

// CostEstimateGT applies the GT predicate on the "cost_estimate" field.
func CostEstimateGT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCostEstimate, v))
}

// CostEstimateGTE applies the GTE predicate on the "cost_estimate" field.
func CostEstimateGTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCostEstimate, v))
}

// CostEstimateLT applies the LT predicate on the "cost_estimate" field.
func CostEstimateLT(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCostEstimate, v))
}

// CostEstimateLTE applies the LTE predicate on the "cost_estimate" field.
func CostEstimateLTE(v float64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCostEstimate, v))
}

// ElapsedMsEQ applies the EQ predicate on the "elapsed_ms" field.
func ElapsedMsEQ(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldElapsedMs, v))
}

// ElapsedMsNEQ applies the NEQ predicate on the "elapsed_ms" field.
func ElapsedMsNEQ(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldElapsedMs, v))
}

// ElapsedMsIn applies the In predicate on the "elapsed_ms" field.
func ElapsedMsIn(vs ...int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldElapsedMs, vs...))
}

// ElapsedMsNotIn applies the NotIn predicate on the "elapsed_ms" field.
func ElapsedMsNotIn(vs ...int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldElapsedMs, vs...))
}

// ElapsedMsGT applies the GT predicate on the "elapsed_ms" field.
func ElapsedMsGT(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldElapsedMs, v))
}

// ElapsedMsGTE applies the GTE predicate on the "elapsed_ms" field.
func ElapsedMsGTE(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldElapsedMs, v))
}

// ElapsedMsLT applies the LT predicate on the "elapsed_ms" field.
func ElapsedMsLT(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldElapsedMs, v))
}

// ElapsedMsLTE applies the LTE predicate on the "elapsed_ms" field.
func ElapsedMsLTE(v int64) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldElapsedMs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Analysis {
	return predicate.Analysis(sql.FieldLTE(FieldCreatedAt, v))
}

// HasPost applies the HasEdge predicate on the "post" edge.
func HasPost() predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PostTable, PostColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPostWith applies the HasEdge predicate on the "post" edge with a given conditions (other predicates).
func HasPostWith(preds ...predicate.Post) predicate.Analysis {
	return predicate.Analysis(func(s *sql.Selector) {
		step := newPostStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Analysis) predicate.Analysis {
	return predicate.Analysis(sql.NotPredicates(p))
}
