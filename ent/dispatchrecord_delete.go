// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/predicate"
)

// DispatchRecordDelete is the builder for deleting a DispatchRecord entity.
type DispatchRecordDelete struct {
	config
	hooks    []Hook
	mutation *DispatchRecordMutation
}

// Where appends a list predicates to the DispatchRecordDelete builder.
func (_d *DispatchRecordDelete) Where(ps ...predicate.DispatchRecord) *DispatchRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DispatchRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DispatchRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DispatchRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(dispatchrecord.Table, sqlgraph.NewFieldSpec(dispatchrecord.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// DispatchRecordDeleteOne is the builder for deleting a single DispatchRecord entity.
type DispatchRecordDeleteOne struct {
	_d *DispatchRecordDelete
}

// Where appends a list predicates to the DispatchRecordDelete builder.
func (_d *DispatchRecordDeleteOne) Where(ps ...predicate.DispatchRecord) *DispatchRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DispatchRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{dispatchrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DispatchRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
