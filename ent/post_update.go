// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/signalhouse/postwatch/ent/account"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/post"
	"github.com/signalhouse/postwatch/ent/predicate"
	"github.com/signalhouse/postwatch/pkg/models"
)

// PostUpdate is the builder for updating Post entities.
type PostUpdate struct {
	config
	hooks    []Hook
	mutation *PostMutation
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdate) Where(ps ...predicate.Post) *PostUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAccountUsername sets the "account_username" field.
func (_u *PostUpdate) SetAccountUsername(v string) *PostUpdate {
	_u.mutation.SetAccountUsername(v)
	return _u
}

// SetNillableAccountUsername sets the "account_username" field if the given value is not nil.
func (_u *PostUpdate) SetNillableAccountUsername(v *string) *PostUpdate {
	if v != nil {
		_u.SetAccountUsername(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *PostUpdate) SetText(v string) *PostUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PostUpdate) SetNillableText(v *string) *PostUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetLikes sets the "likes" field.
func (_u *PostUpdate) SetLikes(v int) *PostUpdate {
	_u.mutation.ResetLikes()
	_u.mutation.SetLikes(v)
	return _u
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_u *PostUpdate) SetNillableLikes(v *int) *PostUpdate {
	if v != nil {
		_u.SetLikes(*v)
	}
	return _u
}

// AddLikes adds value to the "likes" field.
func (_u *PostUpdate) AddLikes(v int) *PostUpdate {
	_u.mutation.AddLikes(v)
	return _u
}

// SetReshares sets the "reshares" field.
func (_u *PostUpdate) SetReshares(v int) *PostUpdate {
	_u.mutation.ResetReshares()
	_u.mutation.SetReshares(v)
	return _u
}

// SetNillableReshares sets the "reshares" field if the given value is not nil.
func (_u *PostUpdate) SetNillableReshares(v *int) *PostUpdate {
	if v != nil {
		_u.SetReshares(*v)
	}
	return _u
}

// AddReshares adds value to the "reshares" field.
func (_u *PostUpdate) AddReshares(v int) *PostUpdate {
	_u.mutation.AddReshares(v)
	return _u
}

// SetReplies sets the "replies" field.
func (_u *PostUpdate) SetReplies(v int) *PostUpdate {
	_u.mutation.ResetReplies()
	_u.mutation.SetReplies(v)
	return _u
}

// SetNillableReplies sets the "replies" field if the given value is not nil.
func (_u *PostUpdate) SetNillableReplies(v *int) *PostUpdate {
	if v != nil {
		_u.SetReplies(*v)
	}
	return _u
}

// AddReplies adds value to the "replies" field.
func (_u *PostUpdate) AddReplies(v int) *PostUpdate {
	_u.mutation.AddReplies(v)
	return _u
}

// SetMedia sets the "media" field.
func (_u *PostUpdate) SetMedia(v []models.Media) *PostUpdate {
	_u.mutation.SetMedia(v)
	return _u
}

// AppendMedia appends value to the "media" field.
func (_u *PostUpdate) AppendMedia(v []models.Media) *PostUpdate {
	_u.mutation.AppendMedia(v)
	return _u
}

// ClearMedia clears the value of the "media" field.
func (_u *PostUpdate) ClearMedia() *PostUpdate {
	_u.mutation.ClearMedia()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PostUpdate) SetStatus(v post.Status) *PostUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PostUpdate) SetNillableStatus(v *post.Status) *PostUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailReason sets the "fail_reason" field.
func (_u *PostUpdate) SetFailReason(v string) *PostUpdate {
	_u.mutation.SetFailReason(v)
	return _u
}

// SetNillableFailReason sets the "fail_reason" field if the given value is not nil.
func (_u *PostUpdate) SetNillableFailReason(v *string) *PostUpdate {
	if v != nil {
		_u.SetFailReason(*v)
	}
	return _u
}

// ClearFailReason clears the value of the "fail_reason" field.
func (_u *PostUpdate) ClearFailReason() *PostUpdate {
	_u.mutation.ClearFailReason()
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *PostUpdate) SetRetryAfter(v time.Time) *PostUpdate {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *PostUpdate) SetNillableRetryAfter(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *PostUpdate) ClearRetryAfter() *PostUpdate {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetAnalysisAttempts sets the "analysis_attempts" field.
func (_u *PostUpdate) SetAnalysisAttempts(v int) *PostUpdate {
	_u.mutation.ResetAnalysisAttempts()
	_u.mutation.SetAnalysisAttempts(v)
	return _u
}

// SetNillableAnalysisAttempts sets the "analysis_attempts" field if the given value is not nil.
func (_u *PostUpdate) SetNillableAnalysisAttempts(v *int) *PostUpdate {
	if v != nil {
		_u.SetAnalysisAttempts(*v)
	}
	return _u
}

// AddAnalysisAttempts adds value to the "analysis_attempts" field.
func (_u *PostUpdate) AddAnalysisAttempts(v int) *PostUpdate {
	_u.mutation.AddAnalysisAttempts(v)
	return _u
}

// SetDispatchAttempts sets the "dispatch_attempts" field.
func (_u *PostUpdate) SetDispatchAttempts(v int) *PostUpdate {
	_u.mutation.ResetDispatchAttempts()
	_u.mutation.SetDispatchAttempts(v)
	return _u
}

// SetNillableDispatchAttempts sets the "dispatch_attempts" field if the given value is not nil.
func (_u *PostUpdate) SetNillableDispatchAttempts(v *int) *PostUpdate {
	if v != nil {
		_u.SetDispatchAttempts(*v)
	}
	return _u
}

// AddDispatchAttempts adds value to the "dispatch_attempts" field.
func (_u *PostUpdate) AddDispatchAttempts(v int) *PostUpdate {
	_u.mutation.AddDispatchAttempts(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PostUpdate) SetPodID(v string) *PostUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PostUpdate) SetNillablePodID(v *string) *PostUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PostUpdate) ClearPodID() *PostUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *PostUpdate) SetClaimedAt(v time.Time) *PostUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *PostUpdate) SetNillableClaimedAt(v *time.Time) *PostUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *PostUpdate) ClearClaimedAt() *PostUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAccountID sets the "account" edge to the Account entity by ID.
func (_u *PostUpdate) SetAccountID(id string) *PostUpdate {
	_u.mutation.SetAccountID(id)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *PostUpdate) SetAccount(v *Account) *PostUpdate {
	return _u.SetAccountID(v.ID)
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by ID.
func (_u *PostUpdate) SetAnalysisID(id string) *PostUpdate {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the Analysis entity by ID if the given value is not nil.
func (_u *PostUpdate) SetNillableAnalysisID(id *string) *PostUpdate {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *PostUpdate) SetAnalysis(v *Analysis) *PostUpdate {
	return _u.SetAnalysisID(v.ID)
}

// AddDispatchRecordIDs adds the "dispatch_records" edge to the DispatchRecord entity by IDs.
func (_u *PostUpdate) AddDispatchRecordIDs(ids ...string) *PostUpdate {
	_u.mutation.AddDispatchRecordIDs(ids...)
	return _u
}

// AddDispatchRecords adds the "dispatch_records" edges to the DispatchRecord entity.
func (_u *PostUpdate) AddDispatchRecords(v ...*DispatchRecord) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDispatchRecordIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdate) Mutation() *PostMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *PostUpdate) ClearAccount() *PostUpdate {
	_u.mutation.ClearAccount()
	return _u
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *PostUpdate) ClearAnalysis() *PostUpdate {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearDispatchRecords clears all "dispatch_records" edges to the DispatchRecord entity.
func (_u *PostUpdate) ClearDispatchRecords() *PostUpdate {
	_u.mutation.ClearDispatchRecords()
	return _u
}

// RemoveDispatchRecordIDs removes the "dispatch_records" edge to DispatchRecord entities by IDs.
func (_u *PostUpdate) RemoveDispatchRecordIDs(ids ...string) *PostUpdate {
	_u.mutation.RemoveDispatchRecordIDs(ids...)
	return _u
}

// RemoveDispatchRecords removes "dispatch_records" edges to DispatchRecord entities.
func (_u *PostUpdate) RemoveDispatchRecords(v ...*DispatchRecord) *PostUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDispatchRecordIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PostUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PostUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUpdate) check() error {
	if v, ok := _u.mutation.AccountUsername(); ok {
		if err := post.AccountUsernameValidator(v); err != nil {
			return &ValidationError{Name: "account_username", err: fmt.Errorf(`ent: validator failed for field "Post.account_username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := post.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Post.status": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Post.account"`)
	}
	return nil
}

func (_u *PostUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(post.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Likes(); ok {
		_spec.SetField(post.FieldLikes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikes(); ok {
		_spec.AddField(post.FieldLikes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reshares(); ok {
		_spec.SetField(post.FieldReshares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReshares(); ok {
		_spec.AddField(post.FieldReshares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Replies(); ok {
		_spec.SetField(post.FieldReplies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplies(); ok {
		_spec.AddField(post.FieldReplies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Media(); ok {
		_spec.SetField(post.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldMedia, value)
		})
	}
	if _u.mutation.MediaCleared() {
		_spec.ClearField(post.FieldMedia, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(post.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailReason(); ok {
		_spec.SetField(post.FieldFailReason, field.TypeString, value)
	}
	if _u.mutation.FailReasonCleared() {
		_spec.ClearField(post.FieldFailReason, field.TypeString)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(post.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(post.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.AnalysisAttempts(); ok {
		_spec.SetField(post.FieldAnalysisAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnalysisAttempts(); ok {
		_spec.AddField(post.FieldAnalysisAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DispatchAttempts(); ok {
		_spec.SetField(post.FieldDispatchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDispatchAttempts(); ok {
		_spec.AddField(post.FieldDispatchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(post.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(post.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(post.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(post.FieldClaimedAt, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DispatchRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDispatchRecordsIDs(); len(nodes) > 0 && !_u.mutation.DispatchRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DispatchRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PostUpdateOne is the builder for updating a single Post entity.
type PostUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PostMutation
}

// SetAccountUsername sets the "account_username" field.
func (_u *PostUpdateOne) SetAccountUsername(v string) *PostUpdateOne {
	_u.mutation.SetAccountUsername(v)
	return _u
}

// SetNillableAccountUsername sets the "account_username" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableAccountUsername(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetAccountUsername(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *PostUpdateOne) SetText(v string) *PostUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableText(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetLikes sets the "likes" field.
func (_u *PostUpdateOne) SetLikes(v int) *PostUpdateOne {
	_u.mutation.ResetLikes()
	_u.mutation.SetLikes(v)
	return _u
}

// SetNillableLikes sets the "likes" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableLikes(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetLikes(*v)
	}
	return _u
}

// AddLikes adds value to the "likes" field.
func (_u *PostUpdateOne) AddLikes(v int) *PostUpdateOne {
	_u.mutation.AddLikes(v)
	return _u
}

// SetReshares sets the "reshares" field.
func (_u *PostUpdateOne) SetReshares(v int) *PostUpdateOne {
	_u.mutation.ResetReshares()
	_u.mutation.SetReshares(v)
	return _u
}

// SetNillableReshares sets the "reshares" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableReshares(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetReshares(*v)
	}
	return _u
}

// AddReshares adds value to the "reshares" field.
func (_u *PostUpdateOne) AddReshares(v int) *PostUpdateOne {
	_u.mutation.AddReshares(v)
	return _u
}

// SetReplies sets the "replies" field.
func (_u *PostUpdateOne) SetReplies(v int) *PostUpdateOne {
	_u.mutation.ResetReplies()
	_u.mutation.SetReplies(v)
	return _u
}

// SetNillableReplies sets the "replies" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableReplies(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetReplies(*v)
	}
	return _u
}

// AddReplies adds value to the "replies" field.
func (_u *PostUpdateOne) AddReplies(v int) *PostUpdateOne {
	_u.mutation.AddReplies(v)
	return _u
}

// SetMedia sets the "media" field.
func (_u *PostUpdateOne) SetMedia(v []models.Media) *PostUpdateOne {
	_u.mutation.SetMedia(v)
	return _u
}

// AppendMedia appends value to the "media" field.
func (_u *PostUpdateOne) AppendMedia(v []models.Media) *PostUpdateOne {
	_u.mutation.AppendMedia(v)
	return _u
}

// ClearMedia clears the value of the "media" field.
func (_u *PostUpdateOne) ClearMedia() *PostUpdateOne {
	_u.mutation.ClearMedia()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PostUpdateOne) SetStatus(v post.Status) *PostUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableStatus(v *post.Status) *PostUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFailReason sets the "fail_reason" field.
func (_u *PostUpdateOne) SetFailReason(v string) *PostUpdateOne {
	_u.mutation.SetFailReason(v)
	return _u
}

// SetNillableFailReason sets the "fail_reason" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableFailReason(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetFailReason(*v)
	}
	return _u
}

// ClearFailReason clears the value of the "fail_reason" field.
func (_u *PostUpdateOne) ClearFailReason() *PostUpdateOne {
	_u.mutation.ClearFailReason()
	return _u
}

// SetRetryAfter sets the "retry_after" field.
func (_u *PostUpdateOne) SetRetryAfter(v time.Time) *PostUpdateOne {
	_u.mutation.SetRetryAfter(v)
	return _u
}

// SetNillableRetryAfter sets the "retry_after" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableRetryAfter(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetRetryAfter(*v)
	}
	return _u
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (_u *PostUpdateOne) ClearRetryAfter() *PostUpdateOne {
	_u.mutation.ClearRetryAfter()
	return _u
}

// SetAnalysisAttempts sets the "analysis_attempts" field.
func (_u *PostUpdateOne) SetAnalysisAttempts(v int) *PostUpdateOne {
	_u.mutation.ResetAnalysisAttempts()
	_u.mutation.SetAnalysisAttempts(v)
	return _u
}

// SetNillableAnalysisAttempts sets the "analysis_attempts" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableAnalysisAttempts(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetAnalysisAttempts(*v)
	}
	return _u
}

// AddAnalysisAttempts adds value to the "analysis_attempts" field.
func (_u *PostUpdateOne) AddAnalysisAttempts(v int) *PostUpdateOne {
	_u.mutation.AddAnalysisAttempts(v)
	return _u
}

// SetDispatchAttempts sets the "dispatch_attempts" field.
func (_u *PostUpdateOne) SetDispatchAttempts(v int) *PostUpdateOne {
	_u.mutation.ResetDispatchAttempts()
	_u.mutation.SetDispatchAttempts(v)
	return _u
}

// SetNillableDispatchAttempts sets the "dispatch_attempts" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableDispatchAttempts(v *int) *PostUpdateOne {
	if v != nil {
		_u.SetDispatchAttempts(*v)
	}
	return _u
}

// AddDispatchAttempts adds value to the "dispatch_attempts" field.
func (_u *PostUpdateOne) AddDispatchAttempts(v int) *PostUpdateOne {
	_u.mutation.AddDispatchAttempts(v)
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *PostUpdateOne) SetPodID(v string) *PostUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillablePodID(v *string) *PostUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *PostUpdateOne) ClearPodID() *PostUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *PostUpdateOne) SetClaimedAt(v time.Time) *PostUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *PostUpdateOne) SetNillableClaimedAt(v *time.Time) *PostUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *PostUpdateOne) ClearClaimedAt() *PostUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetAccountID sets the "account" edge to the Account entity by ID.
func (_u *PostUpdateOne) SetAccountID(id string) *PostUpdateOne {
	_u.mutation.SetAccountID(id)
	return _u
}

// SetAccount sets the "account" edge to the Account entity.
func (_u *PostUpdateOne) SetAccount(v *Account) *PostUpdateOne {
	return _u.SetAccountID(v.ID)
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by ID.
func (_u *PostUpdateOne) SetAnalysisID(id string) *PostUpdateOne {
	_u.mutation.SetAnalysisID(id)
	return _u
}

// SetNillableAnalysisID sets the "analysis" edge to the Analysis entity by ID if the given value is not nil.
func (_u *PostUpdateOne) SetNillableAnalysisID(id *string) *PostUpdateOne {
	if id != nil {
		_u = _u.SetAnalysisID(*id)
	}
	return _u
}

// SetAnalysis sets the "analysis" edge to the Analysis entity.
func (_u *PostUpdateOne) SetAnalysis(v *Analysis) *PostUpdateOne {
	return _u.SetAnalysisID(v.ID)
}

// AddDispatchRecordIDs adds the "dispatch_records" edge to the DispatchRecord entity by IDs.
func (_u *PostUpdateOne) AddDispatchRecordIDs(ids ...string) *PostUpdateOne {
	_u.mutation.AddDispatchRecordIDs(ids...)
	return _u
}

// AddDispatchRecords adds the "dispatch_records" edges to the DispatchRecord entity.
func (_u *PostUpdateOne) AddDispatchRecords(v ...*DispatchRecord) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddDispatchRecordIDs(ids...)
}

// Mutation returns the PostMutation object of the builder.
func (_u *PostUpdateOne) Mutation() *PostMutation {
	return _u.mutation
}

// ClearAccount clears the "account" edge to the Account entity.
func (_u *PostUpdateOne) ClearAccount() *PostUpdateOne {
	_u.mutation.ClearAccount()
	return _u
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (_u *PostUpdateOne) ClearAnalysis() *PostUpdateOne {
	_u.mutation.ClearAnalysis()
	return _u
}

// ClearDispatchRecords clears all "dispatch_records" edges to the DispatchRecord entity.
func (_u *PostUpdateOne) ClearDispatchRecords() *PostUpdateOne {
	_u.mutation.ClearDispatchRecords()
	return _u
}

// RemoveDispatchRecordIDs removes the "dispatch_records" edge to DispatchRecord entities by IDs.
func (_u *PostUpdateOne) RemoveDispatchRecordIDs(ids ...string) *PostUpdateOne {
	_u.mutation.RemoveDispatchRecordIDs(ids...)
	return _u
}

// RemoveDispatchRecords removes "dispatch_records" edges to DispatchRecord entities.
func (_u *PostUpdateOne) RemoveDispatchRecords(v ...*DispatchRecord) *PostUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveDispatchRecordIDs(ids...)
}

// Where appends a list predicates to the PostUpdate builder.
func (_u *PostUpdateOne) Where(ps ...predicate.Post) *PostUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PostUpdateOne) Select(field string, fields ...string) *PostUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Post entity.
func (_u *PostUpdateOne) Save(ctx context.Context) (*Post, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PostUpdateOne) SaveX(ctx context.Context) *Post {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PostUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PostUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PostUpdateOne) check() error {
	if v, ok := _u.mutation.AccountUsername(); ok {
		if err := post.AccountUsernameValidator(v); err != nil {
			return &ValidationError{Name: "account_username", err: fmt.Errorf(`ent: validator failed for field "Post.account_username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := post.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Post.status": %w`, err)}
		}
	}
	if _u.mutation.AccountCleared() && len(_u.mutation.AccountIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Post.account"`)
	}
	return nil
}

func (_u *PostUpdateOne) sqlSave(ctx context.Context) (_node *Post, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(post.Table, post.Columns, sqlgraph.NewFieldSpec(post.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Post.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, post.FieldID)
		for _, f := range fields {
			if !post.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != post.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(post.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Likes(); ok {
		_spec.SetField(post.FieldLikes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLikes(); ok {
		_spec.AddField(post.FieldLikes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Reshares(); ok {
		_spec.SetField(post.FieldReshares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReshares(); ok {
		_spec.AddField(post.FieldReshares, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Replies(); ok {
		_spec.SetField(post.FieldReplies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReplies(); ok {
		_spec.AddField(post.FieldReplies, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Media(); ok {
		_spec.SetField(post.FieldMedia, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedia(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, post.FieldMedia, value)
		})
	}
	if _u.mutation.MediaCleared() {
		_spec.ClearField(post.FieldMedia, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(post.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FailReason(); ok {
		_spec.SetField(post.FieldFailReason, field.TypeString, value)
	}
	if _u.mutation.FailReasonCleared() {
		_spec.ClearField(post.FieldFailReason, field.TypeString)
	}
	if value, ok := _u.mutation.RetryAfter(); ok {
		_spec.SetField(post.FieldRetryAfter, field.TypeTime, value)
	}
	if _u.mutation.RetryAfterCleared() {
		_spec.ClearField(post.FieldRetryAfter, field.TypeTime)
	}
	if value, ok := _u.mutation.AnalysisAttempts(); ok {
		_spec.SetField(post.FieldAnalysisAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAnalysisAttempts(); ok {
		_spec.AddField(post.FieldAnalysisAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DispatchAttempts(); ok {
		_spec.SetField(post.FieldDispatchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDispatchAttempts(); ok {
		_spec.AddField(post.FieldDispatchAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(post.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(post.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(post.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(post.FieldClaimedAt, field.TypeTime)
	}
	if _u.mutation.AccountCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AccountIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.AnalysisCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AnalysisIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.DispatchRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedDispatchRecordsIDs(); len(nodes) > 0 && !_u.mutation.DispatchRecordsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.DispatchRecordsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Post{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{post.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
