// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/predicate"
)

// AnalysisUpdate is the builder for updating Analysis entities.
type AnalysisUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisMutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdate) Where(ps ...predicate.Analysis) *AnalysisUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModel sets the "model" field.
func (_u *AnalysisUpdate) SetModel(v string) *AnalysisUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableModel(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptSnapshot sets the "prompt_snapshot" field.
func (_u *AnalysisUpdate) SetPromptSnapshot(v string) *AnalysisUpdate {
	_u.mutation.SetPromptSnapshot(v)
	return _u
}

// SetNillablePromptSnapshot sets the "prompt_snapshot" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillablePromptSnapshot(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetPromptSnapshot(*v)
	}
	return _u
}

// SetParamsSnapshot sets the "params_snapshot" field.
func (_u *AnalysisUpdate) SetParamsSnapshot(v map[string]interface{}) *AnalysisUpdate {
	_u.mutation.SetParamsSnapshot(v)
	return _u
}

// ClearParamsSnapshot clears the value of the "params_snapshot" field.
func (_u *AnalysisUpdate) ClearParamsSnapshot() *AnalysisUpdate {
	_u.mutation.ClearParamsSnapshot()
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *AnalysisUpdate) SetOutputText(v string) *AnalysisUpdate {
	_u.mutation.SetOutputText(v)
	return _u
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableOutputText(v *string) *AnalysisUpdate {
	if v != nil {
		_u.SetOutputText(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AnalysisUpdate) SetTokensUsed(v int) *AnalysisUpdate {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableTokensUsed(v *int) *AnalysisUpdate {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AnalysisUpdate) AddTokensUsed(v int) *AnalysisUpdate {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *AnalysisUpdate) SetCostEstimate(v float64) *AnalysisUpdate {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableCostEstimate(v *float64) *AnalysisUpdate {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *AnalysisUpdate) AddCostEstimate(v float64) *AnalysisUpdate {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *AnalysisUpdate) SetElapsedMs(v int64) *AnalysisUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *AnalysisUpdate) SetNillableElapsedMs(v *int64) *AnalysisUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *AnalysisUpdate) AddElapsedMs(v int64) *AnalysisUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdate) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdate) check() error {
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.post"`)
	}
	return nil
}

func (_u *AnalysisUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(analysis.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptSnapshot(); ok {
		_spec.SetField(analysis.FieldPromptSnapshot, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParamsSnapshot(); ok {
		_spec.SetField(analysis.FieldParamsSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ParamsSnapshotCleared() {
		_spec.ClearField(analysis.FieldParamsSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(analysis.FieldOutputText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(analysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(analysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(analysis.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(analysis.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(analysis.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(analysis.FieldElapsedMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisUpdateOne is the builder for updating a single Analysis entity.
type AnalysisUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisMutation
}

// SetModel sets the "model" field.
func (_u *AnalysisUpdateOne) SetModel(v string) *AnalysisUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableModel(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetPromptSnapshot sets the "prompt_snapshot" field.
func (_u *AnalysisUpdateOne) SetPromptSnapshot(v string) *AnalysisUpdateOne {
	_u.mutation.SetPromptSnapshot(v)
	return _u
}

// SetNillablePromptSnapshot sets the "prompt_snapshot" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillablePromptSnapshot(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetPromptSnapshot(*v)
	}
	return _u
}

// SetParamsSnapshot sets the "params_snapshot" field.
func (_u *AnalysisUpdateOne) SetParamsSnapshot(v map[string]interface{}) *AnalysisUpdateOne {
	_u.mutation.SetParamsSnapshot(v)
	return _u
}

// ClearParamsSnapshot clears the value of the "params_snapshot" field.
func (_u *AnalysisUpdateOne) ClearParamsSnapshot() *AnalysisUpdateOne {
	_u.mutation.ClearParamsSnapshot()
	return _u
}

// SetOutputText sets the "output_text" field.
func (_u *AnalysisUpdateOne) SetOutputText(v string) *AnalysisUpdateOne {
	_u.mutation.SetOutputText(v)
	return _u
}

// SetNillableOutputText sets the "output_text" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableOutputText(v *string) *AnalysisUpdateOne {
	if v != nil {
		_u.SetOutputText(*v)
	}
	return _u
}

// SetTokensUsed sets the "tokens_used" field.
func (_u *AnalysisUpdateOne) SetTokensUsed(v int) *AnalysisUpdateOne {
	_u.mutation.ResetTokensUsed()
	_u.mutation.SetTokensUsed(v)
	return _u
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableTokensUsed(v *int) *AnalysisUpdateOne {
	if v != nil {
		_u.SetTokensUsed(*v)
	}
	return _u
}

// AddTokensUsed adds value to the "tokens_used" field.
func (_u *AnalysisUpdateOne) AddTokensUsed(v int) *AnalysisUpdateOne {
	_u.mutation.AddTokensUsed(v)
	return _u
}

// SetCostEstimate sets the "cost_estimate" field.
func (_u *AnalysisUpdateOne) SetCostEstimate(v float64) *AnalysisUpdateOne {
	_u.mutation.ResetCostEstimate()
	_u.mutation.SetCostEstimate(v)
	return _u
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableCostEstimate(v *float64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetCostEstimate(*v)
	}
	return _u
}

// AddCostEstimate adds value to the "cost_estimate" field.
func (_u *AnalysisUpdateOne) AddCostEstimate(v float64) *AnalysisUpdateOne {
	_u.mutation.AddCostEstimate(v)
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *AnalysisUpdateOne) SetElapsedMs(v int64) *AnalysisUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *AnalysisUpdateOne) SetNillableElapsedMs(v *int64) *AnalysisUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *AnalysisUpdateOne) AddElapsedMs(v int64) *AnalysisUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the AnalysisMutation object of the builder.
func (_u *AnalysisUpdateOne) Mutation() *AnalysisMutation {
	return _u.mutation
}

// Where appends a list predicates to the AnalysisUpdate builder.
func (_u *AnalysisUpdateOne) Where(ps ...predicate.Analysis) *AnalysisUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisUpdateOne) Select(field string, fields ...string) *AnalysisUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Analysis entity.
func (_u *AnalysisUpdateOne) Save(ctx context.Context) (*Analysis, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisUpdateOne) SaveX(ctx context.Context) *Analysis {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisUpdateOne) check() error {
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Analysis.post"`)
	}
	return nil
}

func (_u *AnalysisUpdateOne) sqlSave(ctx context.Context) (_node *Analysis, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysis.Table, analysis.Columns, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Analysis.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysis.FieldID)
		for _, f := range fields {
			if !analysis.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysis.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(analysis.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.PromptSnapshot(); ok {
		_spec.SetField(analysis.FieldPromptSnapshot, field.TypeString, value)
	}
	if value, ok := _u.mutation.ParamsSnapshot(); ok {
		_spec.SetField(analysis.FieldParamsSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.ParamsSnapshotCleared() {
		_spec.ClearField(analysis.FieldParamsSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.OutputText(); ok {
		_spec.SetField(analysis.FieldOutputText, field.TypeString, value)
	}
	if value, ok := _u.mutation.TokensUsed(); ok {
		_spec.SetField(analysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensUsed(); ok {
		_spec.AddField(analysis.FieldTokensUsed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CostEstimate(); ok {
		_spec.SetField(analysis.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCostEstimate(); ok {
		_spec.AddField(analysis.FieldCostEstimate, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(analysis.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(analysis.FieldElapsedMs, field.TypeInt64, value)
	}
	_node = &Analysis{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysis.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
