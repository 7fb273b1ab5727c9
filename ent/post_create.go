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
	"github.com/signalhouse/postwatch/ent/account"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/post"
	"github.com/signalhouse/postwatch/pkg/models"
)

// PostCreate is the builder for creating a Post entity.
type PostCreate struct {
	config
	mutation *PostMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountUsername sets the "account_username" field.
func (_c *PostCreate) SetAccountUsername(v string) *PostCreate {
	_c.mutation.SetAccountUsername(v)
	return _c
}

// SetText sets the "text" field.
func (_c *PostCreate) SetText(v string) *PostCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PostCreate) SetCreatedAt(v time.Time) *PostCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetIngestedAt sets the "ingested_at" field.
func (_c *PostCreate) SetIngestedAt(v time.Time) *PostCreate {
	_c.mutation.SetIngestedAt(v)
	return _c
}

// SetNillableIngestedAt sets the "ingested_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableIngestedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetIngestedAt(*v)
	}
	return _c
}

// SetLikes sets the "likes" field.
func (_c *PostCreate) SetLikes(v int) *PostCreate {
	_c.mutation.SetLikes(v)
	return _c
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_c *PostCreate) SetNillableLikes(v *int) *PostCreate {
	if v != nil {
		_c.SetLikes(*v)
	}
	return _c
}

// SetReshares sets the "reshares" field.
func (_c *PostCreate) SetReshares(v int) *PostCreate {
	_c.mutation.SetReshares(v)
	return _c
}

// SetNillableReshares sets the "reshares" field if the given value is not nil.
func (_c *PostCreate) SetNillableReshares(v *int) *PostCreate {
	if v != nil {
		_c.SetReshares(*v)
	}
	return _c
}

// SetReplies sets the "replies" field.
func (_c *PostCreate) SetReplies(v int) *PostCreate {
	_c.mutation.SetReplies(v)
	return _c
}

// SetNillableReplies sets the "replies" field if the given value is not nil.
func (_c *PostCreate) SetNillableReplies(v *int) *PostCreate {
	if v != nil {
		_c.SetReplies(*v)
	}
	return _c
}

// SetMedia sets the "media" field.
func (_c *PostCreate) SetMedia(v []models.Media) *PostCreate {
	_c.mutation.SetMedia(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PostCreate) SetStatus(v post.Status) *PostCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PostCreate) SetNillableStatus(v *post.Status) *PostCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFailReason sets the "fail_reason" field.
func (_c *PostCreate) SetFailReason(v string) *PostCreate {
	_c.mutation.SetFailReason(v)
	return _c
}

// SetNillableFailReason sets the "fail_reason" field if the given value is not nil.
func (_c *PostCreate) SetNillableFailReason(v *string) *PostCreate {
	if v != nil {
		_c.SetFailReason(*v)
	}
	return _c
}

// SetRetryAfter sets the "retry_after" field.
func (_c *PostCreate) SetRetryAfter(v time.Time) *PostCreate {
	_c.mutation.SetRetryAfter(v)
	return _c
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_c *PostCreate) SetNillableRetryAfter(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetRetryAfter(*v)
	}
	return _c
}

// SetAnalysisAttempts sets the "analysis_attempts" field.
func (_c *PostCreate) SetAnalysisAttempts(v int) *PostCreate {
	_c.mutation.SetAnalysisAttempts(v)
	return _c
}

// SetNillableAnalysisAttempts sets the "analysis_attempts" field if the given value is not nil.
func (_c *PostCreate) SetNillableAnalysisAttempts(v *int) *PostCreate {
	if v != nil {
		_c.SetAnalysisAttempts(*v)
	}
	return _c
}

// SetDispatchAttempts sets the "dispatch_attempts" field.
func (_c *PostCreate) SetDispatchAttempts(v int) *PostCreate {
	_c.mutation.SetDispatchAttempts(v)
	return _c
}

// SetNillableDispatchAttempts sets the "dispatch_attempts" field if the given value is not nil.
func (_c *PostCreate) SetNillableDispatchAttempts(v *int) *PostCreate {
	if v != nil {
		_c.SetDispatchAttempts(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *PostCreate) SetPodID(v string) *PostCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *PostCreate) SetNillablePodID(v *string) *PostCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *PostCreate) SetClaimedAt(v time.Time) *PostCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *PostCreate) SetNillableClaimedAt(v *time.Time) *PostCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PostCreate) SetID(v string) *PostCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetAccountID sets the "account" edge to the Account entity by ID.
func (_c *PostCreate) SetAccountID(id string) *PostCreate {
	_c.mutation.SetAccountID(id)
	return _c
}

// SetAccount sets the "account" edge to the Account entity.
func (_c *PostCreate) SetAccount(v *Account) *PostCreate {
	return _c.SetAccountID(v.ID)
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by ID.
func (_c *PostCreate) SetAnalysisID(id string) *PostCreate {
	_c.mutation.SetAnalysisID(id)
	return _c
}

// SetNillableAnalysisID sets the "analysis" edge to the Analysis entity by ID if the given value is not nil.
func (_c *PostCreate) SetNillableAnalysisID(id *string) *PostCreate {
	if id != nil {
		_c = _c.SetAnalysisID(*id)
	}
	return _c
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_c *PostCreate) SetAnalysis(v *Analysis) *PostCreate {
	return _c.SetAnalysisID(v.ID)
}

// AddDispatchRecordIDs adds the "dispatch_records" edge to the DispatchRecord entity by IDs.
func (_c *PostCreate) AddDispatchRecordIDs(ids ...string) *PostCreate {
	_c.mutation.AddDispatchRecordIDs(ids...)
	return _c
}

// AddDispatchRecords adds the "dispatch_records" edges to the DispatchRecord entity.
func (_c *PostCreate) AddDispatchRecords(v ...*DispatchRecord) *PostCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddDispatchRecordIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_c *PostCreate) Mutation() *PostMutation {
	return _c.mutation
}

// Save creates the Post in the database.
func (_c *PostCreate) Save(ctx context.Context) (*Post, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PostCreate) SaveX(ctx context.Context) *Post {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PostCreate) defaults() {
	if _, ok := _c.mutation.IngestedAt(); !ok {
		v := post.DefaultIngestedAt()
		_c.mutation.SetIngestedAt(v)
	}
	if _, ok := _c.mutation.Likes(); !ok {
		v := post.DefaultLikes
		_c.mutation.SetLikes(v)
	}
	if _, ok := _c.mutation.Reshares(); !ok {
		v := post.DefaultReshares
		_c.mutation.SetReshares(v)
	}
	if _, ok := _c.mutation.Replies(); !ok {
		v := post.DefaultReplies
		_c.mutation.SetReplies(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := post.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.AnalysisAttempts(); !ok {
		v := post.DefaultAnalysisAttempts
		_c.mutation.SetAnalysisAttempts(v)
	}
	if _, ok := _c.mutation.DispatchAttempts(); !ok {
		v := post.DefaultDispatchAttempts
		_c.mutation.SetDispatchAttempts(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PostCreate) check() error {
	if _, ok := _c.mutation.AccountUsername(); !ok {
		return &ValidationError{Name: "account_username", err: errors.New(`ent: missing required field "Post.account_username"`)}
	}
	if v, ok := _c.mutation.AccountUsername(); ok {
		if err := post.AccountUsernameValidator(v); err != nil {
			return &ValidationError{Name: "account_username", err: fmt.Errorf(`ent: validator failed for field "Post.account_username": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "Post.text"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Post.created_at"`)}
	}
	if _, ok := _c.mutation.IngestedAt(); !ok {
		return &ValidationError{Name: "ingested_at", err: errors.New(`ent: missing required field "Post.ingested_at"`)}
	}
	if _, ok := _c.mutation.Likes(); !ok {
		return &ValidationError{Name: "likes", err: errors.New(`ent: missing required field "Post.likes"`)}
	}
	if _, ok := _c.mutation.Reshares(); !ok {
		return &ValidationError{Name: "reshares", err: errors.New(`ent: missing required field "Post.reshares"`)}
	}
	if _, ok := _c.mutation.Replies(); !ok {
		return &ValidationError{Name: "replies", err: errors.New(`ent: missing required field "Post.replies"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Post.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := post.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Post.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AnalysisAttempts(); !ok {
		return &ValidationError{Name: "analysis_attempts", err: errors.New(`ent: missing required field "Post.analysis_attempts"`)}
	}
	if _, ok := _c.mutation.DispatchAttempts(); !ok {
		return &ValidationError{Name: "dispatch_attempts", err: errors.New(`ent: missing required field "Post.dispatch_attempts"`)}
	}
	if v, ok := _c.mutation.ID(); ok {
		if err := post.IDValidator(v); err != nil {
			return &ValidationError{Name: "id", err: fmt.Errorf(`ent: validator failed for field "Post.id": %w`, err)}
		}
	}
	if len(_c.mutation.AccountIDs()) == 0 {
		return &ValidationError{Name: "account", err: errors.New(`ent: missing required edge "Post.account"`)}
	}
	return nil
}

func (_c *PostCreate) sqlSave(ctx context.Context) (*Post, error) {
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
			return nil, fmt.Errorf("unexpected Post.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PostCreate) createSpec() (*Post, *sqlgraph.CreateSpec) {
	var (
		_node = &Post{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(post.Table, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(post.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(post.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.IngestedAt(); ok {
		_spec.SetField(post.FieldIngestedAt, field.TypeTime, value)
		_node.IngestedAt = value
	}
	if value, ok := _c.mutation.Likes(); ok {
		_spec.SetField(post.FieldLikes, field.TypeInt, value)
		_node.Likes = value
	}
	if value, ok := _c.mutation.Reshares(); ok {
		_spec.SetField(post.FieldReshares, field.TypeInt, value)
		_node.Reshares = value
	}
	if value, ok := _c.mutation.Replies(); ok {
		_spec.SetField(post.FieldReplies, field.TypeInt, value)
		_node.Replies = value
	}
	if value, ok := _c.mutation.Media(); ok {
		_spec.SetField(post.FieldMedia, field.TypeJSON, value)
		_node.Media = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(post.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FailReason(); ok {
		_spec.SetField(post.FieldFailReason, field.TypeString, value)
		_node.FailReason = value
	}
	if value, ok := _c.mutation.RetryAfter(); ok {
		_spec.SetField(post.FieldRetryAfter, field.TypeTime, value)
		_node.RetryAfter = &value
	}
	if value, ok := _c.mutation.AnalysisAttempts(); ok {
		_spec.SetField(post.FieldAnalysisAttempts, field.TypeInt, value)
		_node.AnalysisAttempts = value
	}
	if value, ok := _c.mutation.DispatchAttempts(); ok {
		_spec.SetField(post.FieldDispatchAttempts, field.TypeInt, value)
		_node.DispatchAttempts = value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(post.FieldPodID, field.TypeString, value)
		_node.PodID = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(post.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if nodes := _c.mutation.AccountIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   post.AccountTable,
			Columns: []string{post.AccountColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(account.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.AccountUsername = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AnalysisIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   post.AnalysisTable,
			Columns: []string{post.AnalysisColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysis.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.DispatchRecordsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   post.DispatchRecordsTable,
			Columns: []string{post.DispatchRecordsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(dispatchrecord.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Post.Create().
//		SetAccountUsername(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostUpsert) {
//			SetAccountUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *PostCreate) OnConflict(opts ...sql.ConflictOption) *PostUpsertOne {
	_c.conflict = opts
	return &PostUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostCreate) OnConflictColumns(columns ...string) *PostUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostUpsertOne{
		create: _c,
	}
}

type (
	// PostUpsertOne is the builder for "upsert"-ing
	//  one Post node.
	PostUpsertOne struct {
		create *PostCreate
	}

	// PostUpsert is the "OnConflict" setter.
	PostUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountUsername sets the "account_username" field.
func (u *PostUpsert) SetAccountUsername(v string) *PostUpsert {
	u.Set(post.FieldAccountUsername, v)
	return u
}

// UpdateAccountUsername sets the "account_username" field to the value that was provided on create.
func (u *PostUpsert) UpdateAccountUsername() *PostUpsert {
	u.SetExcluded(post.FieldAccountUsername)
	return u
}

// SetText sets the "text" field.
func (u *PostUpsert) SetText(v string) *PostUpsert {
	u.Set(post.FieldText, v)
	return u
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *PostUpsert) UpdateText() *PostUpsert {
	u.SetExcluded(post.FieldText)
	return u
}

// SetLikes sets the "likes" field.
func (u *PostUpsert) SetLikes(v int) *PostUpsert {
	u.Set(post.FieldLikes, v)
	return u
}

// UpdateLikes sets the "likes" field to the value that was provided on create.
func (u *PostUpsert) UpdateLikes() *PostUpsert {
	u.SetExcluded(post.FieldLikes)
	return u
}

// AddLikes adds v to the "likes" field.
func (u *PostUpsert) AddLikes(v int) *PostUpsert {
	u.Add(post.FieldLikes, v)
	return u
}

// SetReshares sets the "reshares" field.
func (u *PostUpsert) SetReshares(v int) *PostUpsert {
	u.Set(post.FieldReshares, v)
	return u
}

// UpdateReshares sets the "reshares" field to the value that was provided on create.
func (u *PostUpsert) UpdateReshares() *PostUpsert {
	u.SetExcluded(post.FieldReshares)
	return u
}

// AddReshares adds v to the "reshares" field.
func (u *PostUpsert) AddReshares(v int) *PostUpsert {
	u.Add(post.FieldReshares, v)
	return u
}

// SetReplies sets the "replies" field.
func (u *PostUpsert) SetReplies(v int) *PostUpsert {
	u.Set(post.FieldReplies, v)
	return u
}

// UpdateReplies sets the "replies" field to the value that was provided on create.
func (u *PostUpsert) UpdateReplies() *PostUpsert {
	u.SetExcluded(post.FieldReplies)
	return u
}

// AddReplies adds v to the "replies" field.
func (u *PostUpsert) AddReplies(v int) *PostUpsert {
	u.Add(post.FieldReplies, v)
	return u
}

// SetMedia sets the "media" field.
func (u *PostUpsert) SetMedia(v []models.Media) *PostUpsert {
	u.Set(post.FieldMedia, v)
	return u
}

// UpdateMedia sets the "media" field to the value that was provided on create.
func (u *PostUpsert) UpdateMedia() *PostUpsert {
	u.SetExcluded(post.FieldMedia)
	return u
}

// ClearMedia clears the value of the "media" field.
func (u *PostUpsert) ClearMedia() *PostUpsert {
	u.SetNull(post.FieldMedia)
	return u
}

// SetStatus sets the "status" field.
func (u *PostUpsert) SetStatus(v post.Status) *PostUpsert {
	u.Set(post.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PostUpsert) UpdateStatus() *PostUpsert {
	u.SetExcluded(post.FieldStatus)
	return u
}

// SetFailReason sets the "fail_reason" field.
func (u *PostUpsert) SetFailReason(v string) *PostUpsert {
	u.Set(post.FieldFailReason, v)
	return u
}

// UpdateFailReason sets the "fail_reason" field to the value that was provided on create.
func (u *PostUpsert) UpdateFailReason() *PostUpsert {
	u.SetExcluded(post.FieldFailReason)
	return u
}

// ClearFailReason clears the value of the "fail_reason" field.
func (u *PostUpsert) ClearFailReason() *PostUpsert {
	u.SetNull(post.FieldFailReason)
	return u
}

// SetRetryAfter sets the "retry_after" field.
func (u *PostUpsert) SetRetryAfter(v time.Time) *PostUpsert {
	u.Set(post.FieldRetryAfter, v)
	return u
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *PostUpsert) UpdateRetryAfter() *PostUpsert {
	u.SetExcluded(post.FieldRetryAfter)
	return u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *PostUpsert) ClearRetryAfter() *PostUpsert {
	u.SetNull(post.FieldRetryAfter)
	return u
}

// SetAnalysisAttempts sets the "analysis_attempts" field.
func (u *PostUpsert) SetAnalysisAttempts(v int) *PostUpsert {
	u.Set(post.FieldAnalysisAttempts, v)
	return u
}

// UpdateAnalysisAttempts sets the "analysis_attempts" field to the value that was provided on create.
func (u *PostUpsert) UpdateAnalysisAttempts() *PostUpsert {
	u.SetExcluded(post.FieldAnalysisAttempts)
	return u
}

// AddAnalysisAttempts adds v to the "analysis_attempts" field.
func (u *PostUpsert) AddAnalysisAttempts(v int) *PostUpsert {
	u.Add(post.FieldAnalysisAttempts, v)
	return u
}

// SetDispatchAttempts sets the "dispatch_attempts" field.
func (u *PostUpsert) SetDispatchAttempts(v int) *PostUpsert {
	u.Set(post.FieldDispatchAttempts, v)
	return u
}

// UpdateDispatchAttempts sets the "dispatch_attempts" field to the value that was provided on create.
func (u *PostUpsert) UpdateDispatchAttempts() *PostUpsert {
	u.SetExcluded(post.FieldDispatchAttempts)
	return u
}

// AddDispatchAttempts adds v to the "dispatch_attempts" field.
func (u *PostUpsert) AddDispatchAttempts(v int) *PostUpsert {
	u.Add(post.FieldDispatchAttempts, v)
	return u
}

// SetPodID sets the "pod_id" field.
func (u *PostUpsert) SetPodID(v string) *PostUpsert {
	u.Set(post.FieldPodID, v)
	return u
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PostUpsert) UpdatePodID() *PostUpsert {
	u.SetExcluded(post.FieldPodID)
	return u
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PostUpsert) ClearPodID() *PostUpsert {
	u.SetNull(post.FieldPodID)
	return u
}

// SetClaimedAt sets the "claimed_at" field.
func (u *PostUpsert) SetClaimedAt(v time.Time) *PostUpsert {
	u.Set(post.FieldClaimedAt, v)
	return u
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *PostUpsert) UpdateClaimedAt() *PostUpsert {
	u.SetExcluded(post.FieldClaimedAt)
	return u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *PostUpsert) ClearClaimedAt() *PostUpsert {
	u.SetNull(post.FieldClaimedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(post.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostUpsertOne) UpdateNewValues() *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(post.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(post.FieldCreatedAt)
		}
		if _, exists := u.create.mutation.IngestedAt(); exists {
			s.SetIgnore(post.FieldIngestedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Post.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PostUpsertOne) Ignore() *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostUpsertOne) DoNothing() *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostCreate.OnConflict
// documentation for more info.
func (u *PostUpsertOne) Update(set func(*PostUpsert)) *PostUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountUsername sets the "account_username" field.
func (u *PostUpsertOne) SetAccountUsername(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetAccountUsername(v)
	})
}

// UpdateAccountUsername sets the "account_username" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateAccountUsername() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAccountUsername()
	})
}

// SetText sets the "text" field.
func (u *PostUpsertOne) SetText(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateText() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateText()
	})
}

// SetLikes sets the "likes" field.
func (u *PostUpsertOne) SetLikes(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetLikes(v)
	})
}

// AddLikes adds v to the "likes" field.
func (u *PostUpsertOne) AddLikes(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddLikes(v)
	})
}

// UpdateLikes sets the "likes" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateLikes() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateLikes()
	})
}

// SetReshares sets the "reshares" field.
func (u *PostUpsertOne) SetReshares(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetReshares(v)
	})
}

// AddReshares adds v to the "reshares" field.
func (u *PostUpsertOne) AddReshares(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddReshares(v)
	})
}

// UpdateReshares sets the "reshares" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateReshares() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateReshares()
	})
}

// SetReplies sets the "replies" field.
func (u *PostUpsertOne) SetReplies(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetReplies(v)
	})
}

// AddReplies adds v to the "replies" field.
func (u *PostUpsertOne) AddReplies(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddReplies(v)
	})
}

// UpdateReplies sets the "replies" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateReplies() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateReplies()
	})
}

// SetMedia sets the "media" field.
func (u *PostUpsertOne) SetMedia(v []models.Media) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetMedia(v)
	})
}

// UpdateMedia sets the "media" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateMedia() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateMedia()
	})
}

// ClearMedia clears the value of the "media" field.
func (u *PostUpsertOne) ClearMedia() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearMedia()
	})
}

// SetStatus sets the "status" field.
func (u *PostUpsertOne) SetStatus(v post.Status) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateStatus() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateStatus()
	})
}

// SetFailReason sets the "fail_reason" field.
func (u *PostUpsertOne) SetFailReason(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetFailReason(v)
	})
}

// UpdateFailReason sets the "fail_reason" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateFailReason() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateFailReason()
	})
}

// ClearFailReason clears the value of the "fail_reason" field.
func (u *PostUpsertOne) ClearFailReason() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearFailReason()
	})
}

// SetRetryAfter sets the "retry_after" field.
func (u *PostUpsertOne) SetRetryAfter(v time.Time) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetRetryAfter(v)
	})
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateRetryAfter() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateRetryAfter()
	})
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *PostUpsertOne) ClearRetryAfter() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearRetryAfter()
	})
}

// SetAnalysisAttempts sets the "analysis_attempts" field.
func (u *PostUpsertOne) SetAnalysisAttempts(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetAnalysisAttempts(v)
	})
}

// AddAnalysisAttempts adds v to the "analysis_attempts" field.
func (u *PostUpsertOne) AddAnalysisAttempts(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddAnalysisAttempts(v)
	})
}

// UpdateAnalysisAttempts sets the "analysis_attempts" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateAnalysisAttempts() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAnalysisAttempts()
	})
}

// SetDispatchAttempts sets the "dispatch_attempts" field.
func (u *PostUpsertOne) SetDispatchAttempts(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetDispatchAttempts(v)
	})
}

// AddDispatchAttempts adds v to the "dispatch_attempts" field.
func (u *PostUpsertOne) AddDispatchAttempts(v int) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.AddDispatchAttempts(v)
	})
}

// UpdateDispatchAttempts sets the "dispatch_attempts" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateDispatchAttempts() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateDispatchAttempts()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PostUpsertOne) SetPodID(v string) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PostUpsertOne) UpdatePodID() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PostUpsertOne) ClearPodID() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *PostUpsertOne) SetClaimedAt(v time.Time) *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *PostUpsertOne) UpdateClaimedAt() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *PostUpsertOne) ClearClaimedAt() *PostUpsertOne {
	return u.Update(func(s *PostUpsert) {
		s.ClearClaimedAt()
	})
}

// Exec executes the query.
func (u *PostUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PostUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PostUpsertOne.ID is not supported by MySQL driver. Use PostUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PostUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PostCreateBulk is the builder for creating many Post entities in bulk.
type PostCreateBulk struct {
	config
	err      error
	builders []*PostCreate
	conflict []sql.ConflictOption
}

// Save creates the Post entities in the database.
func (_c *PostCreateBulk) Save(ctx context.Context) ([]*Post, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Post, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PostMutation)
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
func (_c *PostCreateBulk) SaveX(ctx context.Context) []*Post {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PostCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PostCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Post.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PostUpsert) {
//			SetAccountUsername(v+v).
//		}).
//		Exec(ctx)
func (_c *PostCreateBulk) OnConflict(opts ...sql.ConflictOption) *PostUpsertBulk {
	_c.conflict = opts
	return &PostUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PostCreateBulk) OnConflictColumns(columns ...string) *PostUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PostUpsertBulk{
		create: _c,
	}
}

// PostUpsertBulk is the builder for "upsert"-ing
// a bulk of Post nodes.
type PostUpsertBulk struct {
	create *PostCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(post.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PostUpsertBulk) UpdateNewValues() *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(post.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(post.FieldCreatedAt)
			}
			if _, exists := b.mutation.IngestedAt(); exists {
				s.SetIgnore(post.FieldIngestedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Post.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PostUpsertBulk) Ignore() *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PostUpsertBulk) DoNothing() *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PostCreateBulk.OnConflict
// documentation for more info.
func (u *PostUpsertBulk) Update(set func(*PostUpsert)) *PostUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PostUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountUsername sets the "account_username" field.
func (u *PostUpsertBulk) SetAccountUsername(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetAccountUsername(v)
	})
}

// UpdateAccountUsername sets the "account_username" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateAccountUsername() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAccountUsername()
	})
}

// SetText sets the "text" field.
func (u *PostUpsertBulk) SetText(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetText(v)
	})
}

// UpdateText sets the "text" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateText() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateText()
	})
}

// SetLikes sets the "likes" field.
func (u *PostUpsertBulk) SetLikes(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetLikes(v)
	})
}

// AddLikes adds v to the "likes" field.
func (u *PostUpsertBulk) AddLikes(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddLikes(v)
	})
}

// UpdateLikes sets the "likes" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateLikes() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateLikes()
	})
}

// SetReshares sets the "reshares" field.
func (u *PostUpsertBulk) SetReshares(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetReshares(v)
	})
}

// AddReshares adds v to the "reshares" field.
func (u *PostUpsertBulk) AddReshares(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddReshares(v)
	})
}

// UpdateReshares sets the "reshares" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateReshares() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateReshares()
	})
}

// SetReplies sets the "replies" field.
func (u *PostUpsertBulk) SetReplies(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetReplies(v)
	})
}

// AddReplies adds v to the "replies" field.
func (u *PostUpsertBulk) AddReplies(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddReplies(v)
	})
}

// UpdateReplies sets the "replies" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateReplies() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateReplies()
	})
}

// SetMedia sets the "media" field.
func (u *PostUpsertBulk) SetMedia(v []models.Media) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetMedia(v)
	})
}

// UpdateMedia sets the "media" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateMedia() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateMedia()
	})
}

// ClearMedia clears the value of the "media" field.
func (u *PostUpsertBulk) ClearMedia() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearMedia()
	})
}

// SetStatus sets the "status" field.
func (u *PostUpsertBulk) SetStatus(v post.Status) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateStatus() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateStatus()
	})
}

// SetFailReason sets the "fail_reason" field.
func (u *PostUpsertBulk) SetFailReason(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetFailReason(v)
	})
}

// UpdateFailReason sets the "fail_reason" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateFailReason() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateFailReason()
	})
}

// ClearFailReason clears the value of the "fail_reason" field.
func (u *PostUpsertBulk) ClearFailReason() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearFailReason()
	})
}

// SetRetryAfter sets the "retry_after" field.
func (u *PostUpsertBulk) SetRetryAfter(v time.Time) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetRetryAfter(v)
	})
}

// UpdateRetryAfter sets the "retry_after" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateRetryAfter() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateRetryAfter()
	})
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (u *PostUpsertBulk) ClearRetryAfter() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearRetryAfter()
	})
}

// SetAnalysisAttempts sets the "analysis_attempts" field.
func (u *PostUpsertBulk) SetAnalysisAttempts(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetAnalysisAttempts(v)
	})
}

// AddAnalysisAttempts adds v to the "analysis_attempts" field.
func (u *PostUpsertBulk) AddAnalysisAttempts(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddAnalysisAttempts(v)
	})
}

// UpdateAnalysisAttempts sets the "analysis_attempts" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateAnalysisAttempts() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateAnalysisAttempts()
	})
}

// SetDispatchAttempts sets the "dispatch_attempts" field.
func (u *PostUpsertBulk) SetDispatchAttempts(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetDispatchAttempts(v)
	})
}

// AddDispatchAttempts adds v to the "dispatch_attempts" field.
func (u *PostUpsertBulk) AddDispatchAttempts(v int) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.AddDispatchAttempts(v)
	})
}

// UpdateDispatchAttempts sets the "dispatch_attempts" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateDispatchAttempts() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateDispatchAttempts()
	})
}

// SetPodID sets the "pod_id" field.
func (u *PostUpsertBulk) SetPodID(v string) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetPodID(v)
	})
}

// UpdatePodID sets the "pod_id" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdatePodID() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdatePodID()
	})
}

// ClearPodID clears the value of the "pod_id" field.
func (u *PostUpsertBulk) ClearPodID() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearPodID()
	})
}

// SetClaimedAt sets the "claimed_at" field.
func (u *PostUpsertBulk) SetClaimedAt(v time.Time) *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.SetClaimedAt(v)
	})
}

// UpdateClaimedAt sets the "claimed_at" field to the value that was provided on create.
func (u *PostUpsertBulk) UpdateClaimedAt() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.UpdateClaimedAt()
	})
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (u *PostUpsertBulk) ClearClaimedAt() *PostUpsertBulk {
	return u.Update(func(s *PostUpsert) {
		s.ClearClaimedAt()
	})
}

// Exec executes the query.
func (u *PostUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PostCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PostCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PostUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
