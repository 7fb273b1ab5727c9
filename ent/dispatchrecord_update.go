// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/predicate"
)

// DispatchRecordUpdate is the builder for updating DispatchRecord entities.
type DispatchRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DispatchRecordMutation
}

// Where appends a list predicates to the DispatchRecordUpdate builder.
func (_u *DispatchRecordUpdate) Where(ps ...predicate.DispatchRecord) *DispatchRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDestination sets the "destination" field.
func (_u *DispatchRecordUpdate) SetDestination(v string) *DispatchRecordUpdate {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *DispatchRecordUpdate) SetNillableDestination(v *string) *DispatchRecordUpdate {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *DispatchRecordUpdate) SetAttemptNumber(v int) *DispatchRecordUpdate {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *DispatchRecordUpdate) SetNillableAttemptNumber(v *int) *DispatchRecordUpdate {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *DispatchRecordUpdate) AddAttemptNumber(v int) *DispatchRecordUpdate {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DispatchRecordUpdate) SetOutcome(v dispatchrecord.Outcome) *DispatchRecordUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DispatchRecordUpdate) SetNillableOutcome(v *dispatchrecord.Outcome) *DispatchRecordUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *DispatchRecordUpdate) SetErrorDetail(v string) *DispatchRecordUpdate {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *DispatchRecordUpdate) SetNillableErrorDetail(v *string) *DispatchRecordUpdate {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *DispatchRecordUpdate) ClearErrorDetail() *DispatchRecordUpdate {
	_u.mutation.ClearErrorDetail()
	return _u
}

// Mutation returns the DispatchRecordMutation object of the builder.
func (_u *DispatchRecordUpdate) Mutation() *DispatchRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DispatchRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DispatchRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DispatchRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DispatchRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DispatchRecordUpdate) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := dispatchrecord.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "DispatchRecord.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := dispatchrecord.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "DispatchRecord.outcome": %w`, err)}
		}
	}
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DispatchRecord.post"`)
	}
	return nil
}

func (_u *DispatchRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dispatchrecord.Table, dispatchrecord.Columns, sqlgraph.NewFieldSpec(dispatchrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(dispatchrecord.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(dispatchrecord.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(dispatchrecord.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(dispatchrecord.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(dispatchrecord.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(dispatchrecord.FieldErrorDetail, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dispatchrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DispatchRecordUpdateOne is the builder for updating a single DispatchRecord entity.
type DispatchRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DispatchRecordMutation
}

// SetDestination sets the "destination" field.
func (_u *DispatchRecordUpdateOne) SetDestination(v string) *DispatchRecordUpdateOne {
	_u.mutation.SetDestination(v)
	return _u
}

// SetNillableDestination sets the "destination" field if the given value is not nil.
func (_u *DispatchRecordUpdateOne) SetNillableDestination(v *string) *DispatchRecordUpdateOne {
	if v != nil {
		_u.SetDestination(*v)
	}
	return _u
}

// SetAttemptNumber sets the "attempt_number" field.
func (_u *DispatchRecordUpdateOne) SetAttemptNumber(v int) *DispatchRecordUpdateOne {
	_u.mutation.ResetAttemptNumber()
	_u.mutation.SetAttemptNumber(v)
	return _u
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_u *DispatchRecordUpdateOne) SetNillableAttemptNumber(v *int) *DispatchRecordUpdateOne {
	if v != nil {
		_u.SetAttemptNumber(*v)
	}
	return _u
}

// AddAttemptNumber adds value to the "attempt_number" field.
func (_u *DispatchRecordUpdateOne) AddAttemptNumber(v int) *DispatchRecordUpdateOne {
	_u.mutation.AddAttemptNumber(v)
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DispatchRecordUpdateOne) SetOutcome(v dispatchrecord.Outcome) *DispatchRecordUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DispatchRecordUpdateOne) SetNillableOutcome(v *dispatchrecord.Outcome) *DispatchRecordUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetErrorDetail sets the "error_detail" field.
func (_u *DispatchRecordUpdateOne) SetErrorDetail(v string) *DispatchRecordUpdateOne {
	_u.mutation.SetErrorDetail(v)
	return _u
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_u *DispatchRecordUpdateOne) SetNillableErrorDetail(v *string) *DispatchRecordUpdateOne {
	if v != nil {
		_u.SetErrorDetail(*v)
	}
	return _u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (_u *DispatchRecordUpdateOne) ClearErrorDetail() *DispatchRecordUpdateOne {
	_u.mutation.ClearErrorDetail()
	return _u
}

// Mutation returns the DispatchRecordMutation object of the builder.
func (_u *DispatchRecordUpdateOne) Mutation() *DispatchRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DispatchRecordUpdate builder.
func (_u *DispatchRecordUpdateOne) Where(ps ...predicate.DispatchRecord) *DispatchRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DispatchRecordUpdateOne) Select(field string, fields ...string) *DispatchRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DispatchRecord entity.
func (_u *DispatchRecordUpdateOne) Save(ctx context.Context) (*DispatchRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DispatchRecordUpdateOne) SaveX(ctx context.Context) *DispatchRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DispatchRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DispatchRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DispatchRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Destination(); ok {
		if err := dispatchrecord.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "DispatchRecord.destination": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Outcome(); ok {
		if err := dispatchrecord.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "DispatchRecord.outcome": %w`, err)}
		}
	}
	if _u.mutation.PostCleared() && len(_u.mutation.PostIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "DispatchRecord.post"`)
	}
	return nil
}

func (_u *DispatchRecordUpdateOne) sqlSave(ctx context.Context) (_node *DispatchRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(dispatchrecord.Table, dispatchrecord.Columns, sqlgraph.NewFieldSpec(dispatchrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DispatchRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, dispatchrecord.FieldID)
		for _, f := range fields {
			if !dispatchrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != dispatchrecord.FieldID {
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
	if value, ok := _u.mutation.Destination(); ok {
		_spec.SetField(dispatchrecord.FieldDestination, field.TypeString, value)
	}
	if value, ok := _u.mutation.AttemptNumber(); ok {
		_spec.SetField(dispatchrecord.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptNumber(); ok {
		_spec.AddField(dispatchrecord.FieldAttemptNumber, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(dispatchrecord.FieldOutcome, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorDetail(); ok {
		_spec.SetField(dispatchrecord.FieldErrorDetail, field.TypeString, value)
	}
	if _u.mutation.ErrorDetailCleared() {
		_spec.ClearField(dispatchrecord.FieldErrorDetail, field.TypeString)
	}
	_node = &DispatchRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{dispatchrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
