// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/post"
)

// DispatchRecordCreate is the builder for creating a DispatchRecord entity.
type DispatchRecordCreate struct {
	config
	mutation *DispatchRecordMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPostID sets the "post_id" field.
func (_c *DispatchRecordCreate) SetPostID(v string) *DispatchRecordCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetDestination sets the "destination" field.
func (_c *DispatchRecordCreate) SetDestination(v string) *DispatchRecordCreate {
	_c.mutation.SetDestination(v)
	return _c
}

// SetAttemptNumber sets the "attempt_number" field.
func (_c *DispatchRecordCreate) SetAttemptNumber(v int) *DispatchRecordCreate {
	_c.mutation.SetAttemptNumber(v)
	return _c
}

// SetNillableAttemptNumber sets the "attempt_number" field if the given value is not nil.
func (_c *DispatchRecordCreate) SetNillableAttemptNumber(v *int) *DispatchRecordCreate {
	if v != nil {
		_c.SetAttemptNumber(*v)
	}
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *DispatchRecordCreate) SetOutcome(v dispatchrecord.Outcome) *DispatchRecordCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetErrorDetail sets the "error_detail" field.
func (_c *DispatchRecordCreate) SetErrorDetail(v string) *DispatchRecordCreate {
	_c.mutation.SetErrorDetail(v)
	return _c
}

// SetNillableErrorDetail sets the "error_detail" field if the given value is not nil.
func (_c *DispatchRecordCreate) SetNillableErrorDetail(v *string) *DispatchRecordCreate {
	if v != nil {
		_c.SetErrorDetail(*v)
	}
	return _c
}

// SetSentAt sets the "sent_at" field.
func (_c *DispatchRecordCreate) SetSentAt(v time.Time) *DispatchRecordCreate {
	_c.mutation.SetSentAt(v)
	return _c
}

// SetNillableSentAt sets the "sent_at" field if the given value is not nil.
func (_c *DispatchRecordCreate) SetNillableSentAt(v *time.Time) *DispatchRecordCreate {
	if v != nil {
		_c.SetSentAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DispatchRecordCreate) SetID(v string) *DispatchRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPost sets the "post" edge to the Post entity.
func (_c *DispatchRecordCreate) SetPost(v *Post) *DispatchRecordCreate {
	return _c.SetPostID(v.ID)
}

// Mutation returns the DispatchRecordMutation object of the builder.
func (_c *DispatchRecordCreate) Mutation() *DispatchRecordMutation {
	return _c.mutation
}

// Save creates the DispatchRecord in the database.
func (_c *DispatchRecordCreate) Save(ctx context.Context) (*DispatchRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DispatchRecordCreate) SaveX(ctx context.Context) *DispatchRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DispatchRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DispatchRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DispatchRecordCreate) defaults() {
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		v := dispatchrecord.DefaultAttemptNumber
		_c.mutation.SetAttemptNumber(v)
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		v := dispatchrecord.DefaultSentAt()
		_c.mutation.SetSentAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DispatchRecordCreate) check() error {
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "DispatchRecord.post_id"`)}
	}
	if _, ok := _c.mutation.Destination(); !ok {
		return &ValidationError{Name: "destination", err: errors.New(`ent: missing required field "DispatchRecord.destination"`)}
	}
	if v, ok := _c.mutation.Destination(); ok {
		if err := dispatchrecord.DestinationValidator(v); err != nil {
			return &ValidationError{Name: "destination", err: fmt.Errorf(`ent: validator failed for field "DispatchRecord.destination": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttemptNumber(); !ok {
		return &ValidationError{Name: "attempt_number", err: errors.New(`ent: missing required field "DispatchRecord.attempt_number"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "DispatchRecord.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := dispatchrecord.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "DispatchRecord.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SentAt(); !ok {
		return &ValidationError{Name: "sent_at", err: errors.New(`ent: missing required field "DispatchRecord.sent_at"`)}
	}
	if len(_c.mutation.PostIDs()) == 0 {
		return &ValidationError{Name: "post", err: errors.New(`ent: missing required edge "DispatchRecord.post"`)}
	}
	return nil
}

func (_c *DispatchRecordCreate) sqlSave(ctx context.Context) (*DispatchRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected DispatchRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DispatchRecordCreate) createSpec() (*DispatchRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DispatchRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(dispatchrecord.Table, sqlgraph.NewFieldSpec(dispatchrecord.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Destination(); ok {
		_spec.SetField(dispatchrecord.FieldDestination, field.TypeString, value)
		_node.Destination = value
	}
	if value, ok := _c.mutation.AttemptNumber(); ok {
		_spec.SetField(dispatchrecord.FieldAttemptNumber, field.TypeInt, value)
		_node.AttemptNumber = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(dispatchrecord.FieldOutcome, field.TypeEnum, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.ErrorDetail(); ok {
		_spec.SetField(dispatchrecord.FieldErrorDetail, field.TypeString, value)
		_node.ErrorDetail = value
	}
	if value, ok := _c.mutation.SentAt(); ok {
		_spec.SetField(dispatchrecord.FieldSentAt, field.TypeTime, value)
		_node.SentAt = value
	}
	if nodes := _c.mutation.PostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   dispatchrecord.PostTable,
			Columns: []string{dispatchrecord.PostColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(post.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.PostID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DispatchRecord.Create().
//		SetPostID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DispatchRecordUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *DispatchRecordCreate) OnConflict(opts ...sql.ConflictOption) *DispatchRecordUpsertOne {
	_c.conflict = opts
	return &DispatchRecordUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DispatchRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DispatchRecordCreate) OnConflictColumns(columns ...string) *DispatchRecordUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DispatchRecordUpsertOne{
		create: _c,
	}
}

type (
	// DispatchRecordUpsertOne is the builder for "upsert"-ing
	//  one DispatchRecord node.
	DispatchRecordUpsertOne struct {
		create *DispatchRecordCreate
	}

	// DispatchRecordUpsert is the "OnConflict" setter.
	DispatchRecordUpsert struct {
		*sql.UpdateSet
	}
)

// SetDestination sets the "destination" field.
func (u *DispatchRecordUpsert) SetDestination(v string) *DispatchRecordUpsert {
	u.Set(dispatchrecord.FieldDestination, v)
	return u
}

// UpdateDestination sets the "destination" field to the value that was provided on create.
func (u *DispatchRecordUpsert) UpdateDestination() *DispatchRecordUpsert {
	u.SetExcluded(dispatchrecord.FieldDestination)
	return u
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *DispatchRecordUpsert) SetAttemptNumber(v int) *DispatchRecordUpsert {
	u.Set(dispatchrecord.FieldAttemptNumber, v)
	return u
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *DispatchRecordUpsert) UpdateAttemptNumber() *DispatchRecordUpsert {
	u.SetExcluded(dispatchrecord.FieldAttemptNumber)
	return u
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *DispatchRecordUpsert) AddAttemptNumber(v int) *DispatchRecordUpsert {
	u.Add(dispatchrecord.FieldAttemptNumber, v)
	return u
}

// SetOutcome sets the "outcome" field.
func (u *DispatchRecordUpsert) SetOutcome(v dispatchrecord.Outcome) *DispatchRecordUpsert {
	u.Set(dispatchrecord.FieldOutcome, v)
	return u
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *DispatchRecordUpsert) UpdateOutcome() *DispatchRecordUpsert {
	u.SetExcluded(dispatchrecord.FieldOutcome)
	return u
}

// SetErrorDetail sets the "error_detail" field.
func (u *DispatchRecordUpsert) SetErrorDetail(v string) *DispatchRecordUpsert {
	u.Set(dispatchrecord.FieldErrorDetail, v)
	return u
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *DispatchRecordUpsert) UpdateErrorDetail() *DispatchRecordUpsert {
	u.SetExcluded(dispatchrecord.FieldErrorDetail)
	return u
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *DispatchRecordUpsert) ClearErrorDetail() *DispatchRecordUpsert {
	u.SetNull(dispatchrecord.FieldErrorDetail)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.DispatchRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dispatchrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DispatchRecordUpsertOne) UpdateNewValues() *DispatchRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(dispatchrecord.FieldID)
		}
		if _, exists := u.create.mutation.PostID(); exists {
			s.SetIgnore(dispatchrecord.FieldPostID)
		}
		if _, exists := u.create.mutation.SentAt(); exists {
			s.SetIgnore(dispatchrecord.FieldSentAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DispatchRecord.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *DispatchRecordUpsertOne) Ignore() *DispatchRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DispatchRecordUpsertOne) DoNothing() *DispatchRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DispatchRecordCreate.OnConflict
// documentation for more info.
func (u *DispatchRecordUpsertOne) Update(set func(*DispatchRecordUpsert)) *DispatchRecordUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DispatchRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetDestination sets the "destination" field.
func (u *DispatchRecordUpsertOne) SetDestination(v string) *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetDestination(v)
	})
}

// UpdateDestination sets the "destination" field to the value that was provided on create.
func (u *DispatchRecordUpsertOne) UpdateDestination() *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateDestination()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *DispatchRecordUpsertOne) SetAttemptNumber(v int) *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *DispatchRecordUpsertOne) AddAttemptNumber(v int) *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *DispatchRecordUpsertOne) UpdateAttemptNumber() *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetOutcome sets the "outcome" field.
func (u *DispatchRecordUpsertOne) SetOutcome(v dispatchrecord.Outcome) *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *DispatchRecordUpsertOne) UpdateOutcome() *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateOutcome()
	})
}

// SetErrorDetail sets the "error_detail" field.
func (u *DispatchRecordUpsertOne) SetErrorDetail(v string) *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetErrorDetail(v)
	})
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *DispatchRecordUpsertOne) UpdateErrorDetail() *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateErrorDetail()
	})
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *DispatchRecordUpsertOne) ClearErrorDetail() *DispatchRecordUpsertOne {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.ClearErrorDetail()
	})
}

// Exec executes the query.
func (u *DispatchRecordUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DispatchRecordCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DispatchRecordUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *DispatchRecordUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: DispatchRecordUpsertOne.ID is not supported by MySQL driver. Use DispatchRecordUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *DispatchRecordUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// DispatchRecordCreateBulk is the builder for creating many DispatchRecord entities in bulk.
type DispatchRecordCreateBulk struct {
	config
	err      error
	builders []*DispatchRecordCreate
	conflict []sql.ConflictOption
}

// Save creates the DispatchRecord entities in the database.
func (_c *DispatchRecordCreateBulk) Save(ctx context.Context) ([]*DispatchRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DispatchRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DispatchRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DispatchRecordCreateBulk) SaveX(ctx context.Context) []*DispatchRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DispatchRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DispatchRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.DispatchRecord.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.DispatchRecordUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *DispatchRecordCreateBulk) OnConflict(opts ...sql.ConflictOption) *DispatchRecordUpsertBulk {
	_c.conflict = opts
	return &DispatchRecordUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.DispatchRecord.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *DispatchRecordCreateBulk) OnConflictColumns(columns ...string) *DispatchRecordUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &DispatchRecordUpsertBulk{
		create: _c,
	}
}

// DispatchRecordUpsertBulk is the builder for "upsert"-ing
// a bulk of DispatchRecord nodes.
type DispatchRecordUpsertBulk struct {
	create *DispatchRecordCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.DispatchRecord.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(dispatchrecord.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *DispatchRecordUpsertBulk) UpdateNewValues() *DispatchRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(dispatchrecord.FieldID)
			}
			if _, exists := b.mutation.PostID(); exists {
				s.SetIgnore(dispatchrecord.FieldPostID)
			}
			if _, exists := b.mutation.SentAt(); exists {
				s.SetIgnore(dispatchrecord.FieldSentAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.DispatchRecord.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *DispatchRecordUpsertBulk) Ignore() *DispatchRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *DispatchRecordUpsertBulk) DoNothing() *DispatchRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the DispatchRecordCreateBulk.OnConflict
// documentation for more info.
func (u *DispatchRecordUpsertBulk) Update(set func(*DispatchRecordUpsert)) *DispatchRecordUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&DispatchRecordUpsert{UpdateSet: update})
	}))
	return u
}

// SetDestination sets the "destination" field.
func (u *DispatchRecordUpsertBulk) SetDestination(v string) *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetDestination(v)
	})
}

// UpdateDestination sets the "destination" field to the value that was provided on create.
func (u *DispatchRecordUpsertBulk) UpdateDestination() *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateDestination()
	})
}

// SetAttemptNumber sets the "attempt_number" field.
func (u *DispatchRecordUpsertBulk) SetAttemptNumber(v int) *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetAttemptNumber(v)
	})
}

// AddAttemptNumber adds v to the "attempt_number" field.
func (u *DispatchRecordUpsertBulk) AddAttemptNumber(v int) *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.AddAttemptNumber(v)
	})
}

// UpdateAttemptNumber sets the "attempt_number" field to the value that was provided on create.
func (u *DispatchRecordUpsertBulk) UpdateAttemptNumber() *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateAttemptNumber()
	})
}

// SetOutcome sets the "outcome" field.
func (u *DispatchRecordUpsertBulk) SetOutcome(v dispatchrecord.Outcome) *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetOutcome(v)
	})
}

// UpdateOutcome sets the "outcome" field to the value that was provided on create.
func (u *DispatchRecordUpsertBulk) UpdateOutcome() *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateOutcome()
	})
}

// SetErrorDetail sets the "error_detail" field.
func (u *DispatchRecordUpsertBulk) SetErrorDetail(v string) *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.SetErrorDetail(v)
	})
}

// UpdateErrorDetail sets the "error_detail" field to the value that was provided on create.
func (u *DispatchRecordUpsertBulk) UpdateErrorDetail() *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.UpdateErrorDetail()
	})
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (u *DispatchRecordUpsertBulk) ClearErrorDetail() *DispatchRecordUpsertBulk {
	return u.Update(func(s *DispatchRecordUpsert) {
		s.ClearErrorDetail()
	})
}

// Exec executes the query.
func (u *DispatchRecordUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the DispatchRecordCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for DispatchRecordCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *DispatchRecordUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
