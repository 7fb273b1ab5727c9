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
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/post"
)

// AnalysisCreate is the builder for creating a Analysis entity.
type AnalysisCreate struct {
	config
	mutation *AnalysisMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPostID sets the "post_id" field.
func (_c *AnalysisCreate) SetPostID(v string) *AnalysisCreate {
	_c.mutation.SetPostID(v)
	return _c
}

// SetModel sets the "model" field.
func (_c *AnalysisCreate) SetModel(v string) *AnalysisCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetPromptSnapshot sets the "prompt_snapshot" field.
func (_c *AnalysisCreate) SetPromptSnapshot(v string) *AnalysisCreate {
	_c.mutation.SetPromptSnapshot(v)
	return _c
}

// SetParamsSnapshot sets the "params_snapshot" field.
func (_c *AnalysisCreate) SetParamsSnapshot(v map[string]interface{}) *AnalysisCreate {
	_c.mutation.SetParamsSnapshot(v)
	return _c
}

// SetOutputText sets the "output_text" field.
func (_c *AnalysisCreate) SetOutputText(v string) *AnalysisCreate {
	_c.mutation.SetOutputText(v)
	return _c
}

// SetTokensUsed sets the "tokens_used" field.
func (_c *AnalysisCreate) SetTokensUsed(v int) *AnalysisCreate {
	_c.mutation.SetTokensUsed(v)
	return _c
}

// SetNillableTokensUsed sets the "tokens_used" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableTokensUsed(v *int) *AnalysisCreate {
	if v != nil {
		_c.SetTokensUsed(*v)
	}
	return _c
}

// SetCostEstimate sets the "cost_estimate" field.
func (_c *AnalysisCreate) SetCostEstimate(v float64) *AnalysisCreate {
	_c.mutation.SetCostEstimate(v)
	return _c
}

// SetNillableCostEstimate sets the "cost_estimate" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCostEstimate(v *float64) *AnalysisCreate {
	if v != nil {
		_c.SetCostEstimate(*v)
	}
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *AnalysisCreate) SetElapsedMs(v int64) *AnalysisCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableElapsedMs(v *int64) *AnalysisCreate {
	if v != nil {
		_c.SetElapsedMs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisCreate) SetCreatedAt(v time.Time) *AnalysisCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisCreate) SetNillableCreatedAt(v *time.Time) *AnalysisCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisCreate) SetID(v string) *AnalysisCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetPost sets the "post" edge to the Post entity.
func (_c *AnalysisCreate) SetPost(v *Post) *AnalysisCreate {
	return _c.SetPostID(v.ID)
}

// Mutation returns the AnalysisMutation object of the builder.
func (_c *AnalysisCreate) Mutation() *AnalysisMutation {
	return _c.mutation
}

// Save creates the Analysis in the database.
func (_c *AnalysisCreate) Save(ctx context.Context) (*Analysis, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisCreate) SaveX(ctx context.Context) *Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisCreate) defaults() {
	if _, ok := _c.mutation.TokensUsed(); !ok {
		v := analysis.DefaultTokensUsed
		_c.mutation.SetTokensUsed(v)
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		v := analysis.DefaultCostEstimate
		_c.mutation.SetCostEstimate(v)
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		v := analysis.DefaultElapsedMs
		_c.mutation.SetElapsedMs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysis.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisCreate) check() error {
	if _, ok := _c.mutation.PostID(); !ok {
		return &ValidationError{Name: "post_id", err: errors.New(`ent: missing required field "Analysis.post_id"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "Analysis.model"`)}
	}
	if _, ok := _c.mutation.PromptSnapshot(); !ok {
		return &ValidationError{Name: "prompt_snapshot", err: errors.New(`ent: missing required field "Analysis.prompt_snapshot"`)}
	}
	if _, ok := _c.mutation.OutputText(); !ok {
		return &ValidationError{Name: "output_text", err: errors.New(`ent: missing required field "Analysis.output_text"`)}
	}
	if _, ok := _c.mutation.TokensUsed(); !ok {
		return &ValidationError{Name: "tokens_used", err: errors.New(`ent: missing required field "Analysis.tokens_used"`)}
	}
	if _, ok := _c.mutation.CostEstimate(); !ok {
		return &ValidationError{Name: "cost_estimate", err: errors.New(`ent: missing required field "Analysis.cost_estimate"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "Analysis.elapsed_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Analysis.created_at"`)}
	}
	if len(_c.mutation.PostIDs()) == 0 {
		return &ValidationError{Name: "post", err: errors.New(`ent: missing required edge "Analysis.post"`)}
	}
	return nil
}

func (_c *AnalysisCreate) sqlSave(ctx context.Context) (*Analysis, error) {
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
			return nil, fmt.Errorf("unexpected Analysis.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisCreate) createSpec() (*Analysis, *sqlgraph.CreateSpec) {
	var (
		_node = &Analysis{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysis.Table, sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(analysis.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.PromptSnapshot(); ok {
		_spec.SetField(analysis.FieldPromptSnapshot, field.TypeString, value)
		_node.PromptSnapshot = value
	}
	if value, ok := _c.mutation.ParamsSnapshot(); ok {
		_spec.SetField(analysis.FieldParamsSnapshot, field.TypeJSON, value)
		_node.ParamsSnapshot = value
	}
	if value, ok := _c.mutation.OutputText(); ok {
		_spec.SetField(analysis.FieldOutputText, field.TypeString, value)
		_node.OutputText = value
	}
	if value, ok := _c.mutation.TokensUsed(); ok {
		_spec.SetField(analysis.FieldTokensUsed, field.TypeInt, value)
		_node.TokensUsed = value
	}
	if value, ok := _c.mutation.CostEstimate(); ok {
		_spec.SetField(analysis.FieldCostEstimate, field.TypeFloat64, value)
		_node.CostEstimate = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(analysis.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysis.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.PostIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   analysis.PostTable,
			Columns: []string{analysis.PostColumn},
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
//	client.Analysis.Create().
//		SetPostID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertOne {
	_c.conflict = opts
	return &AnalysisUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreate) OnConflictColumns(columns ...string) *AnalysisUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertOne{
		create: _c,
	}
}

type (
	// AnalysisUpsertOne is the builder for "upsert"-ing
	//  one Analysis node.
	AnalysisUpsertOne struct {
		create *AnalysisCreate
	}

	// AnalysisUpsert is the "OnConflict" setter.
	AnalysisUpsert struct {
		*sql.UpdateSet
	}
)

// SetModel sets the "model" field.
func (u *AnalysisUpsert) SetModel(v string) *AnalysisUpsert {
	u.Set(analysis.FieldModel, v)
	return u
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateModel() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldModel)
	return u
}

// SetPromptSnapshot sets the "prompt_snapshot" field.
func (u *AnalysisUpsert) SetPromptSnapshot(v string) *AnalysisUpsert {
	u.Set(analysis.FieldPromptSnapshot, v)
	return u
}

// UpdatePromptSnapshot sets the "prompt_snapshot" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdatePromptSnapshot() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldPromptSnapshot)
	return u
}

// SetParamsSnapshot sets the "params_snapshot" field.
func (u *AnalysisUpsert) SetParamsSnapshot(v map[string]interface{}) *AnalysisUpsert {
	u.Set(analysis.FieldParamsSnapshot, v)
	return u
}

// UpdateParamsSnapshot sets the "params_snapshot" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateParamsSnapshot() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldParamsSnapshot)
	return u
}

// ClearParamsSnapshot clears the value of the "params_snapshot" field.
func (u *AnalysisUpsert) ClearParamsSnapshot() *AnalysisUpsert {
	u.SetNull(analysis.FieldParamsSnapshot)
	return u
}

// SetOutputText sets the "output_text" field.
func (u *AnalysisUpsert) SetOutputText(v string) *AnalysisUpsert {
	u.Set(analysis.FieldOutputText, v)
	return u
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateOutputText() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldOutputText)
	return u
}

// SetTokensUsed sets the "tokens_used" field.
func (u *AnalysisUpsert) SetTokensUsed(v int) *AnalysisUpsert {
	u.Set(analysis.FieldTokensUsed, v)
	return u
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateTokensUsed() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldTokensUsed)
	return u
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *AnalysisUpsert) AddTokensUsed(v int) *AnalysisUpsert {
	u.Add(analysis.FieldTokensUsed, v)
	return u
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AnalysisUpsert) SetCostEstimate(v float64) *AnalysisUpsert {
	u.Set(analysis.FieldCostEstimate, v)
	return u
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateCostEstimate() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldCostEstimate)
	return u
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AnalysisUpsert) AddCostEstimate(v float64) *AnalysisUpsert {
	u.Add(analysis.FieldCostEstimate, v)
	return u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (u *AnalysisUpsert) SetElapsedMs(v int64) *AnalysisUpsert {
	u.Set(analysis.FieldElapsedMs, v)
	return u
}

// UpdateElapsedMs sets the "elapsed_ms" field to the value that was provided on create.
func (u *AnalysisUpsert) UpdateElapsedMs() *AnalysisUpsert {
	u.SetExcluded(analysis.FieldElapsedMs)
	return u
}

// AddElapsedMs adds v to the "elapsed_ms" field.
func (u *AnalysisUpsert) AddElapsedMs(v int64) *AnalysisUpsert {
	u.Add(analysis.FieldElapsedMs, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertOne) UpdateNewValues() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(analysis.FieldID)
		}
		if _, exists := u.create.mutation.PostID(); exists {
			s.SetIgnore(analysis.FieldPostID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(analysis.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AnalysisUpsertOne) Ignore() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertOne) DoNothing() *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreate.OnConflict
// documentation for more info.
func (u *AnalysisUpsertOne) Update(set func(*AnalysisUpsert)) *AnalysisUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *AnalysisUpsertOne) SetModel(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateModel() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateModel()
	})
}

// SetPromptSnapshot sets the "prompt_snapshot" field.
func (u *AnalysisUpsertOne) SetPromptSnapshot(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetPromptSnapshot(v)
	})
}

// UpdatePromptSnapshot sets the "prompt_snapshot" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdatePromptSnapshot() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdatePromptSnapshot()
	})
}

// SetParamsSnapshot sets the "params_snapshot" field.
func (u *AnalysisUpsertOne) SetParamsSnapshot(v map[string]interface{}) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetParamsSnapshot(v)
	})
}

// UpdateParamsSnapshot sets the "params_snapshot" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateParamsSnapshot() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateParamsSnapshot()
	})
}

// ClearParamsSnapshot clears the value of the "params_snapshot" field.
func (u *AnalysisUpsertOne) ClearParamsSnapshot() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearParamsSnapshot()
	})
}

// SetOutputText sets the "output_text" field.
func (u *AnalysisUpsertOne) SetOutputText(v string) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetOutputText(v)
	})
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateOutputText() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateOutputText()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *AnalysisUpsertOne) SetTokensUsed(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *AnalysisUpsertOne) AddTokensUsed(v int) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateTokensUsed() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AnalysisUpsertOne) SetCostEstimate(v float64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetCostEstimate(v)
	})
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AnalysisUpsertOne) AddCostEstimate(v float64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddCostEstimate(v)
	})
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateCostEstimate() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateCostEstimate()
	})
}

// SetElapsedMs sets the "elapsed_ms" field.
func (u *AnalysisUpsertOne) SetElapsedMs(v int64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetElapsedMs(v)
	})
}

// AddElapsedMs adds v to the "elapsed_ms" field.
func (u *AnalysisUpsertOne) AddElapsedMs(v int64) *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddElapsedMs(v)
	})
}

// UpdateElapsedMs sets the "elapsed_ms" field to the value that was provided on create.
func (u *AnalysisUpsertOne) UpdateElapsedMs() *AnalysisUpsertOne {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateElapsedMs()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AnalysisUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AnalysisUpsertOne.ID is not supported by MySQL driver. Use AnalysisUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AnalysisUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AnalysisCreateBulk is the builder for creating many Analysis entities in bulk.
type AnalysisCreateBulk struct {
	config
	err      error
	builders []*AnalysisCreate
	conflict []sql.ConflictOption
}

// Save creates the Analysis entities in the database.
func (_c *AnalysisCreateBulk) Save(ctx context.Context) ([]*Analysis, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Analysis, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisMutation)
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
func (_c *AnalysisCreateBulk) SaveX(ctx context.Context) []*Analysis {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Analysis.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AnalysisUpsert) {
//			SetPostID(v+v).
//		}).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflict(opts ...sql.ConflictOption) *AnalysisUpsertBulk {
	_c.conflict = opts
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AnalysisCreateBulk) OnConflictColumns(columns ...string) *AnalysisUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AnalysisUpsertBulk{
		create: _c,
	}
}

// AnalysisUpsertBulk is the builder for "upsert"-ing
// a bulk of Analysis nodes.
type AnalysisUpsertBulk struct {
	create *AnalysisCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(analysis.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) UpdateNewValues() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(analysis.FieldID)
			}
			if _, exists := b.mutation.PostID(); exists {
				s.SetIgnore(analysis.FieldPostID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(analysis.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Analysis.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AnalysisUpsertBulk) Ignore() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AnalysisUpsertBulk) DoNothing() *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AnalysisCreateBulk.OnConflict
// documentation for more info.
func (u *AnalysisUpsertBulk) Update(set func(*AnalysisUpsert)) *AnalysisUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AnalysisUpsert{UpdateSet: update})
	}))
	return u
}

// SetModel sets the "model" field.
func (u *AnalysisUpsertBulk) SetModel(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetModel(v)
	})
}

// UpdateModel sets the "model" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateModel() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateModel()
	})
}

// SetPromptSnapshot sets the "prompt_snapshot" field.
func (u *AnalysisUpsertBulk) SetPromptSnapshot(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetPromptSnapshot(v)
	})
}

// UpdatePromptSnapshot sets the "prompt_snapshot" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdatePromptSnapshot() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdatePromptSnapshot()
	})
}

// SetParamsSnapshot sets the "params_snapshot" field.
func (u *AnalysisUpsertBulk) SetParamsSnapshot(v map[string]interface{}) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetParamsSnapshot(v)
	})
}

// UpdateParamsSnapshot sets the "params_snapshot" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateParamsSnapshot() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateParamsSnapshot()
	})
}

// ClearParamsSnapshot clears the value of the "params_snapshot" field.
func (u *AnalysisUpsertBulk) ClearParamsSnapshot() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.ClearParamsSnapshot()
	})
}

// SetOutputText sets the "output_text" field.
func (u *AnalysisUpsertBulk) SetOutputText(v string) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetOutputText(v)
	})
}

// UpdateOutputText sets the "output_text" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateOutputText() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateOutputText()
	})
}

// SetTokensUsed sets the "tokens_used" field.
func (u *AnalysisUpsertBulk) SetTokensUsed(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetTokensUsed(v)
	})
}

// AddTokensUsed adds v to the "tokens_used" field.
func (u *AnalysisUpsertBulk) AddTokensUsed(v int) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddTokensUsed(v)
	})
}

// UpdateTokensUsed sets the "tokens_used" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateTokensUsed() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateTokensUsed()
	})
}

// SetCostEstimate sets the "cost_estimate" field.
func (u *AnalysisUpsertBulk) SetCostEstimate(v float64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetCostEstimate(v)
	})
}

// AddCostEstimate adds v to the "cost_estimate" field.
func (u *AnalysisUpsertBulk) AddCostEstimate(v float64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddCostEstimate(v)
	})
}

// UpdateCostEstimate sets the "cost_estimate" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateCostEstimate() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateCostEstimate()
	})
}

// SetElapsedMs sets the "elapsed_ms" field.
func (u *AnalysisUpsertBulk) SetElapsedMs(v int64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.SetElapsedMs(v)
	})
}

// AddElapsedMs adds v to the "elapsed_ms" field.
func (u *AnalysisUpsertBulk) AddElapsedMs(v int64) *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.AddElapsedMs(v)
	})
}

// UpdateElapsedMs sets the "elapsed_ms" field to the value that was provided on create.
func (u *AnalysisUpsertBulk) UpdateElapsedMs() *AnalysisUpsertBulk {
	return u.Update(func(s *AnalysisUpsert) {
		s.UpdateElapsedMs()
	})
}

// Exec executes the query.
func (u *AnalysisUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AnalysisCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AnalysisCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AnalysisUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
