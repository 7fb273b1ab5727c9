// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/signalhouse/postwatch/ent/account"
	"github.com/signalhouse/postwatch/ent/analysis"
	"github.com/signalhouse/postwatch/ent/dispatchrecord"
	"github.com/signalhouse/postwatch/ent/post"
	"github.com/signalhouse/postwatch/ent/predicate"
	"github.com/signalhouse/postwatch/ent/setting"
	"github.com/signalhouse/postwatch/pkg/models"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAccount        = "Account"
	TypeAnalysis       = "Analysis"
	TypeDispatchRecord = "DispatchRecord"
	TypePost           = "Post"
	TypeSetting        = "Setting"
)

// AccountMutation represents an operation that mutates the Account nodes in the graph.
type AccountMutation struct {
	config
	op                Op
	typ               string
	id                *string
	enabled           *bool
	created_at        *time.Time
	last_polled_at    *time.Time
	last_seen_post_id *string
	clearedFields     map[string]struct{}
	posts             map[string]struct{}
	removedposts      map[string]struct{}
	clearedposts      bool
	done              bool
	oldValue          func(context.Context) (*Account, error)
	predicates        []predicate.Account
}

var _ ent.Mutation = (*AccountMutation)(nil)

// accountOption allows management of the mutation configuration using functional options.
type accountOption func(*AccountMutation)

// newAccountMutation creates new mutation for the Account entity.
func newAccountMutation(c config, op Op, opts ...accountOption) *AccountMutation {
	m := &AccountMutation{
		config:        c,
		op:            op,
		typ:           TypeAccount,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAccountID sets the ID field of the mutation.
func withAccountID(id string) accountOption {
	return func(m *AccountMutation) {
		var (
			err   error
			once  sync.Once
			value *Account
		)
		m.oldValue = func(ctx context.Context) (*Account, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Account.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAccount sets the old Account of the mutation.
func withAccount(node *Account) accountOption {
	return func(m *AccountMutation) {
		m.oldValue = func(context.Context) (*Account, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AccountMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AccountMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Account entities.
func (m *AccountMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AccountMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AccountMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Account.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEnabled sets the "enabled" field.
func (m *AccountMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *AccountMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *AccountMutation) ResetEnabled() {
	m.enabled = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AccountMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AccountMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AccountMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLastPolledAt sets the "last_polled_at" field.
func (m *AccountMutation) SetLastPolledAt(t time.Time) {
	m.last_polled_at = &t
}

// LastPolledAt returns the value of the "last_polled_at" field in the mutation.
func (m *AccountMutation) LastPolledAt() (r time.Time, exists bool) {
	v := m.last_polled_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastPolledAt returns the old "last_polled_at" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastPolledAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastPolledAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastPolledAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastPolledAt: %w", err)
	}
	return oldValue.LastPolledAt, nil
}

// ClearLastPolledAt clears the value of the "last_polled_at" field.
func (m *AccountMutation) ClearLastPolledAt() {
	m.last_polled_at = nil
	m.clearedFields[account.FieldLastPolledAt] = struct{}{}
}

// LastPolledAtCleared returns if the "last_polled_at" field was cleared in this mutation.
func (m *AccountMutation) LastPolledAtCleared() bool {
	_, ok := m.clearedFields[account.FieldLastPolledAt]
	return ok
}

// ResetLastPolledAt resets all changes to the "last_polled_at" field.
func (m *AccountMutation) ResetLastPolledAt() {
	m.last_polled_at = nil
	delete(m.clearedFields, account.FieldLastPolledAt)
}

// SetLastSeenPostID sets the "last_seen_post_id" field.
func (m *AccountMutation) SetLastSeenPostID(s string) {
	m.last_seen_post_id = &s
}

// LastSeenPostID returns the value of the "last_seen_post_id" field in the mutation.
func (m *AccountMutation) LastSeenPostID() (r string, exists bool) {
	v := m.last_seen_post_id
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeenPostID returns the old "last_seen_post_id" field's value of the Account entity.
// If the Account object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AccountMutation) OldLastSeenPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeenPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeenPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeenPostID: %w", err)
	}
	return oldValue.LastSeenPostID, nil
}

// ClearLastSeenPostID clears the value of the "last_seen_post_id" field.
func (m *AccountMutation) ClearLastSeenPostID() {
	m.last_seen_post_id = nil
	m.clearedFields[account.FieldLastSeenPostID] = struct{}{}
}

// LastSeenPostIDCleared returns if the "last_seen_post_id" field was cleared in this mutation.
func (m *AccountMutation) LastSeenPostIDCleared() bool {
	_, ok := m.clearedFields[account.FieldLastSeenPostID]
	return ok
}

// ResetLastSeenPostID resets all changes to the "last_seen_post_id" field.
func (m *AccountMutation) ResetLastSeenPostID() {
	m.last_seen_post_id = nil
	delete(m.clearedFields, account.FieldLastSeenPostID)
}

// AddPostIDs adds the "posts" edge to the Post entity by ids.
func (m *AccountMutation) AddPostIDs(ids ...string) {
	if m.posts == nil {
		m.posts = make(map[string]struct{})
	}
	for i := range ids {
		m.posts[ids[i]] = struct{}{}
	}
}

// ClearPosts clears the "posts" edge to the Post entity.
func (m *AccountMutation) ClearPosts() {
	m.clearedposts = true
}

// PostsCleared reports if the "posts" edge to the Post entity was cleared.
func (m *AccountMutation) PostsCleared() bool {
	return m.clearedposts
}

// RemovePostIDs removes the "posts" edge to the Post entity by IDs.
func (m *AccountMutation) RemovePostIDs(ids ...string) {
	if m.removedposts == nil {
		m.removedposts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.posts, ids[i])
		m.removedposts[ids[i]] = struct{}{}
	}
}

// RemovedPosts returns the removed IDs of the "posts" edge to the Post entity.
func (m *AccountMutation) RemovedPostsIDs() (ids []string) {
	for id := range m.removedposts {
		ids = append(ids, id)
	}
	return
}

// PostsIDs returns the "posts" edge IDs in the mutation.
func (m *AccountMutation) PostsIDs() (ids []string) {
	for id := range m.posts {
		ids = append(ids, id)
	}
	return
}

// ResetPosts resets all changes to the "posts" edge.
func (m *AccountMutation) ResetPosts() {
	m.posts = nil
	m.clearedposts = false
	m.removedposts = nil
}

// Where appends a list predicates to the AccountMutation builder.
func (m *AccountMutation) Where(ps ...predicate.Account) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AccountMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AccountMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Account, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AccountMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AccountMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Account).
func (m *AccountMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AccountMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.enabled != nil {
		fields = append(fields, account.FieldEnabled)
	}
	if m.created_at != nil {
		fields = append(fields, account.FieldCreatedAt)
	}
	if m.last_polled_at != nil {
		fields = append(fields, account.FieldLastPolledAt)
	}
	if m.last_seen_post_id != nil {
		fields = append(fields, account.FieldLastSeenPostID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AccountMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case account.FieldEnabled:
		return m.Enabled()
	case account.FieldCreatedAt:
		return m.CreatedAt()
	case account.FieldLastPolledAt:
		return m.LastPolledAt()
	case account.FieldLastSeenPostID:
		return m.LastSeenPostID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AccountMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case account.FieldEnabled:
		return m.OldEnabled(ctx)
	case account.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case account.FieldLastPolledAt:
		return m.OldLastPolledAt(ctx)
	case account.FieldLastSeenPostID:
		return m.OldLastSeenPostID(ctx)
	}
	return nil, fmt.Errorf("unknown Account field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) SetField(name string, value ent.Value) error {
	switch name {
	case account.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case account.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case account.FieldLastPolledAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastPolledAt(v)
		return nil
	case account.FieldLastSeenPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeenPostID(v)
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AccountMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AccountMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AccountMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Account numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AccountMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(account.FieldLastPolledAt) {
		fields = append(fields, account.FieldLastPolledAt)
	}
	if m.FieldCleared(account.FieldLastSeenPostID) {
		fields = append(fields, account.FieldLastSeenPostID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AccountMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AccountMutation) ClearField(name string) error {
	switch name {
	case account.FieldLastPolledAt:
		m.ClearLastPolledAt()
		return nil
	case account.FieldLastSeenPostID:
		m.ClearLastSeenPostID()
		return nil
	}
	return fmt.Errorf("unknown Account nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AccountMutation) ResetField(name string) error {
	switch name {
	case account.FieldEnabled:
		m.ResetEnabled()
		return nil
	case account.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case account.FieldLastPolledAt:
		m.ResetLastPolledAt()
		return nil
	case account.FieldLastSeenPostID:
		m.ResetLastSeenPostID()
		return nil
	}
	return fmt.Errorf("unknown Account field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AccountMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.posts != nil {
		edges = append(edges, account.EdgePosts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AccountMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case account.EdgePosts:
		ids := make([]ent.Value, 0, len(m.posts))
		for id := range m.posts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AccountMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedposts != nil {
		edges = append(edges, account.EdgePosts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AccountMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case account.EdgePosts:
		ids := make([]ent.Value, 0, len(m.removedposts))
		for id := range m.removedposts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AccountMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedposts {
		edges = append(edges, account.EdgePosts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AccountMutation) EdgeCleared(name string) bool {
	switch name {
	case account.EdgePosts:
		return m.clearedposts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AccountMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Account unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AccountMutation) ResetEdge(name string) error {
	switch name {
	case account.EdgePosts:
		m.ResetPosts()
		return nil
	}
	return fmt.Errorf("unknown Account edge %s", name)
}

// AnalysisMutation represents an operation that mutates the Analysis nodes in the graph.
type AnalysisMutation struct {
	config
	op               Op
	typ              string
	id               *string
	model            *string
	prompt_snapshot  *string
	params_snapshot  *map[string]interface{}
	output_text      *string
	tokens_used      *int
	addtokens_used   *int
	cost_estimate    *float64
	addcost_estimate *float64
	elapsed_ms       *int64
	addelapsed_ms    *int64
	created_at       *time.Time
	clearedFields    map[string]struct{}
	post             *string
	clearedpost      bool
	done             bool
	oldValue         func(context.Context) (*Analysis, error)
	predicates       []predicate.Analysis
}

var _ ent.Mutation = (*AnalysisMutation)(nil)

// analysisOption allows management of the mutation configuration using functional options.
type analysisOption func(*AnalysisMutation)

// newAnalysisMutation creates new mutation for the Analysis entity.
func newAnalysisMutation(c config, op Op, opts ...analysisOption) *AnalysisMutation {
	m := &AnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAnalysisID sets the ID field of the mutation.
func withAnalysisID(id string) analysisOption {
	return func(m *AnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *Analysis
		)
		m.oldValue = func(ctx context.Context) (*Analysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Analysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAnalysis sets the old Analysis of the mutation.
func withAnalysis(node *Analysis) analysisOption {
	return func(m *AnalysisMutation) {
		m.oldValue = func(context.Context) (*Analysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Analysis entities.
func (m *AnalysisMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AnalysisMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AnalysisMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Analysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPostID sets the "post_id" field.
func (m *AnalysisMutation) SetPostID(s string) {
	m.post = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *AnalysisMutation) PostID() (r string, exists bool) {
	v := m.post
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *AnalysisMutation) ResetPostID() {
	m.post = nil
}

// SetModel sets the "model" field.
func (m *AnalysisMutation) SetModel(s string) {
	m.model = &s
}

// Model returns the value of the "model" field in the mutation.
func (m *AnalysisMutation) Model() (r string, exists bool) {
	v := m.model
	if v == nil {
		return
	}
	return *v, true
}

// OldModel returns the old "model" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldModel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModel: %w", err)
	}
	return oldValue.Model, nil
}

// ResetModel resets all changes to the "model" field.
func (m *AnalysisMutation) ResetModel() {
	m.model = nil
}

// SetPromptSnapshot sets the "prompt_snapshot" field.
func (m *AnalysisMutation) SetPromptSnapshot(s string) {
	m.prompt_snapshot = &s
}

// PromptSnapshot returns the value of the "prompt_snapshot" field in the mutation.
func (m *AnalysisMutation) PromptSnapshot() (r string, exists bool) {
	v := m.prompt_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptSnapshot returns the old "prompt_snapshot" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldPromptSnapshot(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptSnapshot: %w", err)
	}
	return oldValue.PromptSnapshot, nil
}

// ResetPromptSnapshot resets all changes to the "prompt_snapshot" field.
func (m *AnalysisMutation) ResetPromptSnapshot() {
	m.prompt_snapshot = nil
}

// SetParamsSnapshot sets the "params_snapshot" field.
func (m *AnalysisMutation) SetParamsSnapshot(value map[string]interface{}) {
	m.params_snapshot = &value
}

// ParamsSnapshot returns the value of the "params_snapshot" field in the mutation.
func (m *AnalysisMutation) ParamsSnapshot() (r map[string]interface{}, exists bool) {
	v := m.params_snapshot
	if v == nil {
		return
	}
	return *v, true
}

// OldParamsSnapshot returns the old "params_snapshot" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldParamsSnapshot(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParamsSnapshot is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParamsSnapshot requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParamsSnapshot: %w", err)
	}
	return oldValue.ParamsSnapshot, nil
}

// ClearParamsSnapshot clears the value of the "params_snapshot" field.
func (m *AnalysisMutation) ClearParamsSnapshot() {
	m.params_snapshot = nil
	m.clearedFields[analysis.FieldParamsSnapshot] = struct{}{}
}

// ParamsSnapshotCleared returns if the "params_snapshot" field was cleared in this mutation.
func (m *AnalysisMutation) ParamsSnapshotCleared() bool {
	_, ok := m.clearedFields[analysis.FieldParamsSnapshot]
	return ok
}

// ResetParamsSnapshot resets all changes to the "params_snapshot" field.
func (m *AnalysisMutation) ResetParamsSnapshot() {
	m.params_snapshot = nil
	delete(m.clearedFields, analysis.FieldParamsSnapshot)
}

// SetOutputText sets the "output_text" field.
func (m *AnalysisMutation) SetOutputText(s string) {
	m.output_text = &s
}

// OutputText returns the value of the "output_text" field in the mutation.
func (m *AnalysisMutation) OutputText() (r string, exists bool) {
	v := m.output_text
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputText returns the old "output_text" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldOutputText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputText: %w", err)
	}
	return oldValue.OutputText, nil
}

// ResetOutputText resets all changes to the "output_text" field.
func (m *AnalysisMutation) ResetOutputText() {
	m.output_text = nil
}

// SetTokensUsed sets the "tokens_used" field.
func (m *AnalysisMutation) SetTokensUsed(i int) {
	m.tokens_used = &i
	m.addtokens_used = nil
}

// TokensUsed returns the value of the "tokens_used" field in the mutation.
func (m *AnalysisMutation) TokensUsed() (r int, exists bool) {
	v := m.tokens_used
	if v == nil {
		return
	}
	return *v, true
}

// OldTokensUsed returns the old "tokens_used" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldTokensUsed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTokensUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTokensUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTokensUsed: %w", err)
	}
	return oldValue.TokensUsed, nil
}

// AddTokensUsed adds i to the "tokens_used" field.
func (m *AnalysisMutation) AddTokensUsed(i int) {
	if m.addtokens_used != nil {
		*m.addtokens_used += i
	} else {
		m.addtokens_used = &i
	}
}

// AddedTokensUsed returns the value that was added to the "tokens_used" field in this mutation.
func (m *AnalysisMutation) AddedTokensUsed() (r int, exists bool) {
	v := m.addtokens_used
	if v == nil {
		return
	}
	return *v, true
}

// ResetTokensUsed resets all changes to the "tokens_used" field.
func (m *AnalysisMutation) ResetTokensUsed() {
	m.tokens_used = nil
	m.addtokens_used = nil
}

// SetCostEstimate sets the "cost_estimate" field.
func (m *AnalysisMutation) SetCostEstimate(f float64) {
	m.cost_estimate = &f
	m.addcost_estimate = nil
}

// CostEstimate returns the value of the "cost_estimate" field in the mutation.
func (m *AnalysisMutation) CostEstimate() (r float64, exists bool) {
	v := m.cost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// OldCostEstimate returns the old "cost_estimate" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCostEstimate(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCostEstimate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCostEstimate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCostEstimate: %w", err)
	}
	return oldValue.CostEstimate, nil
}

// AddCostEstimate adds f to the "cost_estimate" field.
func (m *AnalysisMutation) AddCostEstimate(f float64) {
	if m.addcost_estimate != nil {
		*m.addcost_estimate += f
	} else {
		m.addcost_estimate = &f
	}
}

// AddedCostEstimate returns the value that was added to the "cost_estimate" field in this mutation.
func (m *AnalysisMutation) AddedCostEstimate() (r float64, exists bool) {
	v := m.addcost_estimate
	if v == nil {
		return
	}
	return *v, true
}

// ResetCostEstimate resets all changes to the "cost_estimate" field.
func (m *AnalysisMutation) ResetCostEstimate() {
	m.cost_estimate = nil
	m.addcost_estimate = nil
}

// SetElapsedMs sets the "elapsed_ms" field.
func (m *AnalysisMutation) SetElapsedMs(i int64) {
	m.elapsed_ms = &i
	m.addelapsed_ms = nil
}

// ElapsedMs returns the value of the "elapsed_ms" field in the mutation.
func (m *AnalysisMutation) ElapsedMs() (r int64, exists bool) {
	v := m.elapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// OldElapsedMs returns the old "elapsed_ms" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldElapsedMs(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldElapsedMs is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldElapsedMs requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldElapsedMs: %w", err)
	}
	return oldValue.ElapsedMs, nil
}

// AddElapsedMs adds i to the "elapsed_ms" field.
func (m *AnalysisMutation) AddElapsedMs(i int64) {
	if m.addelapsed_ms != nil {
		*m.addelapsed_ms += i
	} else {
		m.addelapsed_ms = &i
	}
}

// AddedElapsedMs returns the value that was added to the "elapsed_ms" field in this mutation.
func (m *AnalysisMutation) AddedElapsedMs() (r int64, exists bool) {
	v := m.addelapsed_ms
	if v == nil {
		return
	}
	return *v, true
}

// ResetElapsedMs resets all changes to the "elapsed_ms" field.
func (m *AnalysisMutation) ResetElapsedMs() {
	m.elapsed_ms = nil
	m.addelapsed_ms = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Analysis entity.
// If the Analysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearPost clears the "post" edge to the Post entity.
func (m *AnalysisMutation) ClearPost() {
	m.clearedpost = true
	m.clearedFields[analysis.FieldPostID] = struct{}{}
}

// PostCleared reports if the "post" edge to the Post entity was cleared.
func (m *AnalysisMutation) PostCleared() bool {
	return m.clearedpost
}

// PostIDs returns the "post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PostID instead. It exists only for internal usage by the builders.
func (m *AnalysisMutation) PostIDs() (ids []string) {
	if id := m.post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPost resets all changes to the "post" edge.
func (m *AnalysisMutation) ResetPost() {
	m.post = nil
	m.clearedpost = false
}

// Where appends a list predicates to the AnalysisMutation builder.
func (m *AnalysisMutation) Where(ps ...predicate.Analysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Analysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Analysis).
func (m *AnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AnalysisMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.post != nil {
		fields = append(fields, analysis.FieldPostID)
	}
	if m.model != nil {
		fields = append(fields, analysis.FieldModel)
	}
	if m.prompt_snapshot != nil {
		fields = append(fields, analysis.FieldPromptSnapshot)
	}
	if m.params_snapshot != nil {
		fields = append(fields, analysis.FieldParamsSnapshot)
	}
	if m.output_text != nil {
		fields = append(fields, analysis.FieldOutputText)
	}
	if m.tokens_used != nil {
		fields = append(fields, analysis.FieldTokensUsed)
	}
	if m.cost_estimate != nil {
		fields = append(fields, analysis.FieldCostEstimate)
	}
	if m.elapsed_ms != nil {
		fields = append(fields, analysis.FieldElapsedMs)
	}
	if m.created_at != nil {
		fields = append(fields, analysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldPostID:
		return m.PostID()
	case analysis.FieldModel:
		return m.Model()
	case analysis.FieldPromptSnapshot:
		return m.PromptSnapshot()
	case analysis.FieldParamsSnapshot:
		return m.ParamsSnapshot()
	case analysis.FieldOutputText:
		return m.OutputText()
	case analysis.FieldTokensUsed:
		return m.TokensUsed()
	case analysis.FieldCostEstimate:
		return m.CostEstimate()
	case analysis.FieldElapsedMs:
		return m.ElapsedMs()
	case analysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case analysis.FieldPostID:
		return m.OldPostID(ctx)
	case analysis.FieldModel:
		return m.OldModel(ctx)
	case analysis.FieldPromptSnapshot:
		return m.OldPromptSnapshot(ctx)
	case analysis.FieldParamsSnapshot:
		return m.OldParamsSnapshot(ctx)
	case analysis.FieldOutputText:
		return m.OldOutputText(ctx)
	case analysis.FieldTokensUsed:
		return m.OldTokensUsed(ctx)
	case analysis.FieldCostEstimate:
		return m.OldCostEstimate(ctx)
	case analysis.FieldElapsedMs:
		return m.OldElapsedMs(ctx)
	case analysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Analysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case analysis.FieldModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModel(v)
		return nil
	case analysis.FieldPromptSnapshot:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptSnapshot(v)
		return nil
	case analysis.FieldParamsSnapshot:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParamsSnapshot(v)
		return nil
	case analysis.FieldOutputText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputText(v)
		return nil
	case analysis.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTokensUsed(v)
		return nil
	case analysis.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCostEstimate(v)
		return nil
	case analysis.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetElapsedMs(v)
		return nil
	case analysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addtokens_used != nil {
		fields = append(fields, analysis.FieldTokensUsed)
	}
	if m.addcost_estimate != nil {
		fields = append(fields, analysis.FieldCostEstimate)
	}
	if m.addelapsed_ms != nil {
		fields = append(fields, analysis.FieldElapsedMs)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case analysis.FieldTokensUsed:
		return m.AddedTokensUsed()
	case analysis.FieldCostEstimate:
		return m.AddedCostEstimate()
	case analysis.FieldElapsedMs:
		return m.AddedElapsedMs()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case analysis.FieldTokensUsed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTokensUsed(v)
		return nil
	case analysis.FieldCostEstimate:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCostEstimate(v)
		return nil
	case analysis.FieldElapsedMs:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddElapsedMs(v)
		return nil
	}
	return fmt.Errorf("unknown Analysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(analysis.FieldParamsSnapshot) {
		fields = append(fields, analysis.FieldParamsSnapshot)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AnalysisMutation) ClearField(name string) error {
	switch name {
	case analysis.FieldParamsSnapshot:
		m.ClearParamsSnapshot()
		return nil
	}
	return fmt.Errorf("unknown Analysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AnalysisMutation) ResetField(name string) error {
	switch name {
	case analysis.FieldPostID:
		m.ResetPostID()
		return nil
	case analysis.FieldModel:
		m.ResetModel()
		return nil
	case analysis.FieldPromptSnapshot:
		m.ResetPromptSnapshot()
		return nil
	case analysis.FieldParamsSnapshot:
		m.ResetParamsSnapshot()
		return nil
	case analysis.FieldOutputText:
		m.ResetOutputText()
		return nil
	case analysis.FieldTokensUsed:
		m.ResetTokensUsed()
		return nil
	case analysis.FieldCostEstimate:
		m.ResetCostEstimate()
		return nil
	case analysis.FieldElapsedMs:
		m.ResetElapsedMs()
		return nil
	case analysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Analysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.post != nil {
		edges = append(edges, analysis.EdgePost)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case analysis.EdgePost:
		if id := m.post; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpost {
		edges = append(edges, analysis.EdgePost)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case analysis.EdgePost:
		return m.clearedpost
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AnalysisMutation) ClearEdge(name string) error {
	switch name {
	case analysis.EdgePost:
		m.ClearPost()
		return nil
	}
	return fmt.Errorf("unknown Analysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AnalysisMutation) ResetEdge(name string) error {
	switch name {
	case analysis.EdgePost:
		m.ResetPost()
		return nil
	}
	return fmt.Errorf("unknown Analysis edge %s", name)
}

// DispatchRecordMutation represents an operation that mutates the DispatchRecord nodes in the graph.
type DispatchRecordMutation struct {
	config
	op                Op
	typ               string
	id                *string
	destination       *string
	attempt_number    *int
	addattempt_number *int
	outcome           *dispatchrecord.Outcome
	error_detail      *string
	sent_at           *time.Time
	clearedFields     map[string]struct{}
	post              *string
	clearedpost       bool
	done              bool
	oldValue          func(context.Context) (*DispatchRecord, error)
	predicates        []predicate.DispatchRecord
}

var _ ent.Mutation = (*DispatchRecordMutation)(nil)

// dispatchrecordOption allows management of the mutation configuration using functional options.
type dispatchrecordOption func(*DispatchRecordMutation)

// newDispatchRecordMutation creates new mutation for the DispatchRecord entity.
func newDispatchRecordMutation(c config, op Op, opts ...dispatchrecordOption) *DispatchRecordMutation {
	m := &DispatchRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeDispatchRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDispatchRecordID sets the ID field of the mutation.
func withDispatchRecordID(id string) dispatchrecordOption {
	return func(m *DispatchRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *DispatchRecord
		)
		m.oldValue = func(ctx context.Context) (*DispatchRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DispatchRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDispatchRecord sets the old DispatchRecord of the mutation.
func withDispatchRecord(node *DispatchRecord) dispatchrecordOption {
	return func(m *DispatchRecordMutation) {
		m.oldValue = func(context.Context) (*DispatchRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DispatchRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DispatchRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DispatchRecord entities.
func (m *DispatchRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DispatchRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DispatchRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DispatchRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPostID sets the "post_id" field.
func (m *DispatchRecordMutation) SetPostID(s string) {
	m.post = &s
}

// PostID returns the value of the "post_id" field in the mutation.
func (m *DispatchRecordMutation) PostID() (r string, exists bool) {
	v := m.post
	if v == nil {
		return
	}
	return *v, true
}

// OldPostID returns the old "post_id" field's value of the DispatchRecord entity.
// If the DispatchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchRecordMutation) OldPostID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostID: %w", err)
	}
	return oldValue.PostID, nil
}

// ResetPostID resets all changes to the "post_id" field.
func (m *DispatchRecordMutation) ResetPostID() {
	m.post = nil
}

// SetDestination sets the "destination" field.
func (m *DispatchRecordMutation) SetDestination(s string) {
	m.destination = &s
}

// Destination returns the value of the "destination" field in the mutation.
func (m *DispatchRecordMutation) Destination() (r string, exists bool) {
	v := m.destination
	if v == nil {
		return
	}
	return *v, true
}

// OldDestination returns the old "destination" field's value of the DispatchRecord entity.
// If the DispatchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchRecordMutation) OldDestination(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDestination is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDestination requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDestination: %w", err)
	}
	return oldValue.Destination, nil
}

// ResetDestination resets all changes to the "destination" field.
func (m *DispatchRecordMutation) ResetDestination() {
	m.destination = nil
}

// SetAttemptNumber sets the "attempt_number" field.
func (m *DispatchRecordMutation) SetAttemptNumber(i int) {
	m.attempt_number = &i
	m.addattempt_number = nil
}

// AttemptNumber returns the value of the "attempt_number" field in the mutation.
func (m *DispatchRecordMutation) AttemptNumber() (r int, exists bool) {
	v := m.attempt_number
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptNumber returns the old "attempt_number" field's value of the DispatchRecord entity.
// If the DispatchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchRecordMutation) OldAttemptNumber(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptNumber is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptNumber requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptNumber: %w", err)
	}
	return oldValue.AttemptNumber, nil
}

// AddAttemptNumber adds i to the "attempt_number" field.
func (m *DispatchRecordMutation) AddAttemptNumber(i int) {
	if m.addattempt_number != nil {
		*m.addattempt_number += i
	} else {
		m.addattempt_number = &i
	}
}

// AddedAttemptNumber returns the value that was added to the "attempt_number" field in this mutation.
func (m *DispatchRecordMutation) AddedAttemptNumber() (r int, exists bool) {
	v := m.addattempt_number
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptNumber resets all changes to the "attempt_number" field.
func (m *DispatchRecordMutation) ResetAttemptNumber() {
	m.attempt_number = nil
	m.addattempt_number = nil
}

// SetOutcome sets the "outcome" field.
func (m *DispatchRecordMutation) SetOutcome(d dispatchrecord.Outcome) {
	m.outcome = &d
}

// Outcome returns the value of the "outcome" field in the mutation.
func (m *DispatchRecordMutation) Outcome() (r dispatchrecord.Outcome, exists bool) {
	v := m.outcome
	if v == nil {
		return
	}
	return *v, true
}

// OldOutcome returns the old "outcome" field's value of the DispatchRecord entity.
// If the DispatchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchRecordMutation) OldOutcome(ctx context.Context) (v dispatchrecord.Outcome, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutcome is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutcome requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutcome: %w", err)
	}
	return oldValue.Outcome, nil
}

// ResetOutcome resets all changes to the "outcome" field.
func (m *DispatchRecordMutation) ResetOutcome() {
	m.outcome = nil
}

// SetErrorDetail sets the "error_detail" field.
func (m *DispatchRecordMutation) SetErrorDetail(s string) {
	m.error_detail = &s
}

// ErrorDetail returns the value of the "error_detail" field in the mutation.
func (m *DispatchRecordMutation) ErrorDetail() (r string, exists bool) {
	v := m.error_detail
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorDetail returns the old "error_detail" field's value of the DispatchRecord entity.
// If the DispatchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchRecordMutation) OldErrorDetail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorDetail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorDetail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorDetail: %w", err)
	}
	return oldValue.ErrorDetail, nil
}

// ClearErrorDetail clears the value of the "error_detail" field.
func (m *DispatchRecordMutation) ClearErrorDetail() {
	m.error_detail = nil
	m.clearedFields[dispatchrecord.FieldErrorDetail] = struct{}{}
}

// ErrorDetailCleared returns if the "error_detail" field was cleared in this mutation.
func (m *DispatchRecordMutation) ErrorDetailCleared() bool {
	_, ok := m.clearedFields[dispatchrecord.FieldErrorDetail]
	return ok
}

// ResetErrorDetail resets all changes to the "error_detail" field.
func (m *DispatchRecordMutation) ResetErrorDetail() {
	m.error_detail = nil
	delete(m.clearedFields, dispatchrecord.FieldErrorDetail)
}

// SetSentAt sets the "sent_at" field.
func (m *DispatchRecordMutation) SetSentAt(t time.Time) {
	m.sent_at = &t
}

// SentAt returns the value of the "sent_at" field in the mutation.
func (m *DispatchRecordMutation) SentAt() (r time.Time, exists bool) {
	v := m.sent_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSentAt returns the old "sent_at" field's value of the DispatchRecord entity.
// If the DispatchRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DispatchRecordMutation) OldSentAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSentAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSentAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSentAt: %w", err)
	}
	return oldValue.SentAt, nil
}

// ResetSentAt resets all changes to the "sent_at" field.
func (m *DispatchRecordMutation) ResetSentAt() {
	m.sent_at = nil
}

// ClearPost clears the "post" edge to the Post entity.
func (m *DispatchRecordMutation) ClearPost() {
	m.clearedpost = true
	m.clearedFields[dispatchrecord.FieldPostID] = struct{}{}
}

// PostCleared reports if the "post" edge to the Post entity was cleared.
func (m *DispatchRecordMutation) PostCleared() bool {
	return m.clearedpost
}

// PostIDs returns the "post" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PostID instead. It exists only for internal usage by the builders.
func (m *DispatchRecordMutation) PostIDs() (ids []string) {
	if id := m.post; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPost resets all changes to the "post" edge.
func (m *DispatchRecordMutation) ResetPost() {
	m.post = nil
	m.clearedpost = false
}

// Where appends a list predicates to the DispatchRecordMutation builder.
func (m *DispatchRecordMutation) Where(ps ...predicate.DispatchRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DispatchRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DispatchRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DispatchRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DispatchRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DispatchRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DispatchRecord).
func (m *DispatchRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DispatchRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.post != nil {
		fields = append(fields, dispatchrecord.FieldPostID)
	}
	if m.destination != nil {
		fields = append(fields, dispatchrecord.FieldDestination)
	}
	if m.attempt_number != nil {
		fields = append(fields, dispatchrecord.FieldAttemptNumber)
	}
	if m.outcome != nil {
		fields = append(fields, dispatchrecord.FieldOutcome)
	}
	if m.error_detail != nil {
		fields = append(fields, dispatchrecord.FieldErrorDetail)
	}
	if m.sent_at != nil {
		fields = append(fields, dispatchrecord.FieldSentAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DispatchRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case dispatchrecord.FieldPostID:
		return m.PostID()
	case dispatchrecord.FieldDestination:
		return m.Destination()
	case dispatchrecord.FieldAttemptNumber:
		return m.AttemptNumber()
	case dispatchrecord.FieldOutcome:
		return m.Outcome()
	case dispatchrecord.FieldErrorDetail:
		return m.ErrorDetail()
	case dispatchrecord.FieldSentAt:
		return m.SentAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DispatchRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case dispatchrecord.FieldPostID:
		return m.OldPostID(ctx)
	case dispatchrecord.FieldDestination:
		return m.OldDestination(ctx)
	case dispatchrecord.FieldAttemptNumber:
		return m.OldAttemptNumber(ctx)
	case dispatchrecord.FieldOutcome:
		return m.OldOutcome(ctx)
	case dispatchrecord.FieldErrorDetail:
		return m.OldErrorDetail(ctx)
	case dispatchrecord.FieldSentAt:
		return m.OldSentAt(ctx)
	}
	return nil, fmt.Errorf("unknown DispatchRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DispatchRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case dispatchrecord.FieldPostID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostID(v)
		return nil
	case dispatchrecord.FieldDestination:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDestination(v)
		return nil
	case dispatchrecord.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptNumber(v)
		return nil
	case dispatchrecord.FieldOutcome:
		v, ok := value.(dispatchrecord.Outcome)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutcome(v)
		return nil
	case dispatchrecord.FieldErrorDetail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorDetail(v)
		return nil
	case dispatchrecord.FieldSentAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSentAt(v)
		return nil
	}
	return fmt.Errorf("unknown DispatchRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DispatchRecordMutation) AddedFields() []string {
	var fields []string
	if m.addattempt_number != nil {
		fields = append(fields, dispatchrecord.FieldAttemptNumber)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DispatchRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case dispatchrecord.FieldAttemptNumber:
		return m.AddedAttemptNumber()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DispatchRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case dispatchrecord.FieldAttemptNumber:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptNumber(v)
		return nil
	}
	return fmt.Errorf("unknown DispatchRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DispatchRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(dispatchrecord.FieldErrorDetail) {
		fields = append(fields, dispatchrecord.FieldErrorDetail)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DispatchRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DispatchRecordMutation) ClearField(name string) error {
	switch name {
	case dispatchrecord.FieldErrorDetail:
		m.ClearErrorDetail()
		return nil
	}
	return fmt.Errorf("unknown DispatchRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DispatchRecordMutation) ResetField(name string) error {
	switch name {
	case dispatchrecord.FieldPostID:
		m.ResetPostID()
		return nil
	case dispatchrecord.FieldDestination:
		m.ResetDestination()
		return nil
	case dispatchrecord.FieldAttemptNumber:
		m.ResetAttemptNumber()
		return nil
	case dispatchrecord.FieldOutcome:
		m.ResetOutcome()
		return nil
	case dispatchrecord.FieldErrorDetail:
		m.ResetErrorDetail()
		return nil
	case dispatchrecord.FieldSentAt:
		m.ResetSentAt()
		return nil
	}
	return fmt.Errorf("unknown DispatchRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DispatchRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.post != nil {
		edges = append(edges, dispatchrecord.EdgePost)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DispatchRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case dispatchrecord.EdgePost:
		if id := m.post; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DispatchRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DispatchRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DispatchRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpost {
		edges = append(edges, dispatchrecord.EdgePost)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DispatchRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case dispatchrecord.EdgePost:
		return m.clearedpost
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DispatchRecordMutation) ClearEdge(name string) error {
	switch name {
	case dispatchrecord.EdgePost:
		m.ClearPost()
		return nil
	}
	return fmt.Errorf("unknown DispatchRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DispatchRecordMutation) ResetEdge(name string) error {
	switch name {
	case dispatchrecord.EdgePost:
		m.ResetPost()
		return nil
	}
	return fmt.Errorf("unknown DispatchRecord edge %s", name)
}

// PostMutation represents an operation that mutates the Post nodes in the graph.
type PostMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	text                    *string
	created_at              *time.Time
	ingested_at             *time.Time
	likes                   *int
	addlikes                *int
	reshares                *int
	addreshares             *int
	replies                 *int
	addreplies              *int
	media                   *[]models.Media
	appendmedia             []models.Media
	status                  *post.Status
	fail_reason             *string
	retry_after             *time.Time
	analysis_attempts       *int
	addanalysis_attempts    *int
	dispatch_attempts       *int
	adddispatch_attempts    *int
	pod_id                  *string
	claimed_at              *time.Time
	clearedFields           map[string]struct{}
	account                 *string
	clearedaccount          bool
	analysis                *string
	clearedanalysis         bool
	dispatch_records        map[string]struct{}
	removeddispatch_records map[string]struct{}
	cleareddispatch_records bool
	done                    bool
	oldValue                func(context.Context) (*Post, error)
	predicates              []predicate.Post
}

var _ ent.Mutation = (*PostMutation)(nil)

// postOption allows management of the mutation configuration using functional options.
type postOption func(*PostMutation)

// newPostMutation creates new mutation for the Post entity.
func newPostMutation(c config, op Op, opts ...postOption) *PostMutation {
	m := &PostMutation{
		config:        c,
		op:            op,
		typ:           TypePost,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPostID sets the ID field of the mutation.
func withPostID(id string) postOption {
	return func(m *PostMutation) {
		var (
			err   error
			once  sync.Once
			value *Post
		)
		m.oldValue = func(ctx context.Context) (*Post, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Post.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPost sets the old Post of the mutation.
func withPost(node *Post) postOption {
	return func(m *PostMutation) {
		m.oldValue = func(context.Context) (*Post, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PostMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PostMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Post entities.
func (m *PostMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PostMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PostMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Post.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAccountUsername sets the "account_username" field.
func (m *PostMutation) SetAccountUsername(s string) {
	m.account = &s
}

// AccountUsername returns the value of the "account_username" field in the mutation.
func (m *PostMutation) AccountUsername() (r string, exists bool) {
	v := m.account
	if v == nil {
		return
	}
	return *v, true
}

// OldAccountUsername returns the old "account_username" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldAccountUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccountUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccountUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccountUsername: %w", err)
	}
	return oldValue.AccountUsername, nil
}

// ResetAccountUsername resets all changes to the "account_username" field.
func (m *PostMutation) ResetAccountUsername() {
	m.account = nil
}

// SetText sets the "text" field.
func (m *PostMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *PostMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *PostMutation) ResetText() {
	m.text = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PostMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PostMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PostMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetIngestedAt sets the "ingested_at" field.
func (m *PostMutation) SetIngestedAt(t time.Time) {
	m.ingested_at = &t
}

// IngestedAt returns the value of the "ingested_at" field in the mutation.
func (m *PostMutation) IngestedAt() (r time.Time, exists bool) {
	v := m.ingested_at
	if v == nil {
		return
	}
	return *v, true
}

// OldIngestedAt returns the old "ingested_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldIngestedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIngestedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIngestedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIngestedAt: %w", err)
	}
	return oldValue.IngestedAt, nil
}

// ResetIngestedAt resets all changes to the "ingested_at" field.
func (m *PostMutation) ResetIngestedAt() {
	m.ingested_at = nil
}

// SetLikes sets the "likes" field.
func (m *PostMutation) SetLikes(i int) {
	m.likes = &i
	m.addlikes = nil
}

// Likes returns the value of the "likes" field in the mutation.
func (m *PostMutation) Likes() (r int, exists bool) {
	v := m.likes
	if v == nil {
		return
	}
	return *v, true
}

// OldLikes returns the old "likes" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldLikes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLikes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLikes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLikes: %w", err)
	}
	return oldValue.Likes, nil
}

// AddLikes adds i to the "likes" field.
func (m *PostMutation) AddLikes(i int) {
	if m.addlikes != nil {
		*m.addlikes += i
	} else {
		m.addlikes = &i
	}
}

// AddedLikes returns the value that was added to the "likes" field in this mutation.
func (m *PostMutation) AddedLikes() (r int, exists bool) {
	v := m.addlikes
	if v == nil {
		return
	}
	return *v, true
}

// ResetLikes resets all changes to the "likes" field.
func (m *PostMutation) ResetLikes() {
	m.likes = nil
	m.addlikes = nil
}

// SetReshares sets the "reshares" field.
func (m *PostMutation) SetReshares(i int) {
	m.reshares = &i
	m.addreshares = nil
}

// Reshares returns the value of the "reshares" field in the mutation.
func (m *PostMutation) Reshares() (r int, exists bool) {
	v := m.reshares
	if v == nil {
		return
	}
	return *v, true
}

// OldReshares returns the old "reshares" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldReshares(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReshares is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReshares requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReshares: %w", err)
	}
	return oldValue.Reshares, nil
}

// AddReshares adds i to the "reshares" field.
func (m *PostMutation) AddReshares(i int) {
	if m.addreshares != nil {
		*m.addreshares += i
	} else {
		m.addreshares = &i
	}
}

// AddedReshares returns the value that was added to the "reshares" field in this mutation.
func (m *PostMutation) AddedReshares() (r int, exists bool) {
	v := m.addreshares
	if v == nil {
		return
	}
	return *v, true
}

// ResetReshares resets all changes to the "reshares" field.
func (m *PostMutation) ResetReshares() {
	m.reshares = nil
	m.addreshares = nil
}

// SetReplies sets the "replies" field.
func (m *PostMutation) SetReplies(i int) {
	m.replies = &i
	m.addreplies = nil
}

// Replies returns the value of the "replies" field in the mutation.
func (m *PostMutation) Replies() (r int, exists bool) {
	v := m.replies
	if v == nil {
		return
	}
	return *v, true
}

// OldReplies returns the old "replies" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldReplies(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReplies is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReplies requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReplies: %w", err)
	}
	return oldValue.Replies, nil
}

// AddReplies adds i to the "replies" field.
func (m *PostMutation) AddReplies(i int) {
	if m.addreplies != nil {
		*m.addreplies += i
	} else {
		m.addreplies = &i
	}
}

// AddedReplies returns the value that was added to the "replies" field in this mutation.
func (m *PostMutation) AddedReplies() (r int, exists bool) {
	v := m.addreplies
	if v == nil {
		return
	}
	return *v, true
}

// ResetReplies resets all changes to the "replies" field.
func (m *PostMutation) ResetReplies() {
	m.replies = nil
	m.addreplies = nil
}

// SetMedia sets the "media" field.
func (m *PostMutation) SetMedia(value []models.Media) {
	m.media = &value
	m.appendmedia = nil
}

// Media returns the value of the "media" field in the mutation.
func (m *PostMutation) Media() (r []models.Media, exists bool) {
	v := m.media
	if v == nil {
		return
	}
	return *v, true
}

// OldMedia returns the old "media" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldMedia(ctx context.Context) (v []models.Media, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMedia is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMedia requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMedia: %w", err)
	}
	return oldValue.Media, nil
}

// AppendMedia adds value to the "media" field.
func (m *PostMutation) AppendMedia(value []models.Media) {
	m.appendmedia = append(m.appendmedia, value...)
}

// AppendedMedia returns the list of values that were appended to the "media" field in this mutation.
func (m *PostMutation) AppendedMedia() ([]models.Media, bool) {
	if len(m.appendmedia) == 0 {
		return nil, false
	}
	return m.appendmedia, true
}

// ClearMedia clears the value of the "media" field.
func (m *PostMutation) ClearMedia() {
	m.media = nil
	m.appendmedia = nil
	m.clearedFields[post.FieldMedia] = struct{}{}
}

// MediaCleared returns if the "media" field was cleared in this mutation.
func (m *PostMutation) MediaCleared() bool {
	_, ok := m.clearedFields[post.FieldMedia]
	return ok
}

// ResetMedia resets all changes to the "media" field.
func (m *PostMutation) ResetMedia() {
	m.media = nil
	m.appendmedia = nil
	delete(m.clearedFields, post.FieldMedia)
}

// SetStatus sets the "status" field.
func (m *PostMutation) SetStatus(po post.Status) {
	m.status = &po
}

// Status returns the value of the "status" field in the mutation.
func (m *PostMutation) Status() (r post.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldStatus(ctx context.Context) (v post.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PostMutation) ResetStatus() {
	m.status = nil
}

// SetFailReason sets the "fail_reason" field.
func (m *PostMutation) SetFailReason(s string) {
	m.fail_reason = &s
}

// FailReason returns the value of the "fail_reason" field in the mutation.
func (m *PostMutation) FailReason() (r string, exists bool) {
	v := m.fail_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldFailReason returns the old "fail_reason" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldFailReason(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailReason: %w", err)
	}
	return oldValue.FailReason, nil
}

// ClearFailReason clears the value of the "fail_reason" field.
func (m *PostMutation) ClearFailReason() {
	m.fail_reason = nil
	m.clearedFields[post.FieldFailReason] = struct{}{}
}

// FailReasonCleared returns if the "fail_reason" field was cleared in this mutation.
func (m *PostMutation) FailReasonCleared() bool {
	_, ok := m.clearedFields[post.FieldFailReason]
	return ok
}

// ResetFailReason resets all changes to the "fail_reason" field.
func (m *PostMutation) ResetFailReason() {
	m.fail_reason = nil
	delete(m.clearedFields, post.FieldFailReason)
}

// SetRetryAfter sets the "retry_after" field.
func (m *PostMutation) SetRetryAfter(t time.Time) {
	m.retry_after = &t
}

// RetryAfter returns the value of the "retry_after" field in the mutation.
func (m *PostMutation) RetryAfter() (r time.Time, exists bool) {
	v := m.retry_after
	if v == nil {
		return
	}
	return *v, true
}

// OldRetryAfter returns the old "retry_after" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldRetryAfter(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRetryAfter is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRetryAfter requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRetryAfter: %w", err)
	}
	return oldValue.RetryAfter, nil
}

// ClearRetryAfter clears the value of the "retry_after" field.
func (m *PostMutation) ClearRetryAfter() {
	m.retry_after = nil
	m.clearedFields[post.FieldRetryAfter] = struct{}{}
}

// RetryAfterCleared returns if the "retry_after" field was cleared in this mutation.
func (m *PostMutation) RetryAfterCleared() bool {
	_, ok := m.clearedFields[post.FieldRetryAfter]
	return ok
}

// ResetRetryAfter resets all changes to the "retry_after" field.
func (m *PostMutation) ResetRetryAfter() {
	m.retry_after = nil
	delete(m.clearedFields, post.FieldRetryAfter)
}

// SetAnalysisAttempts sets the "analysis_attempts" field.
func (m *PostMutation) SetAnalysisAttempts(i int) {
	m.analysis_attempts = &i
	m.addanalysis_attempts = nil
}

// AnalysisAttempts returns the value of the "analysis_attempts" field in the mutation.
func (m *PostMutation) AnalysisAttempts() (r int, exists bool) {
	v := m.analysis_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisAttempts returns the old "analysis_attempts" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldAnalysisAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisAttempts: %w", err)
	}
	return oldValue.AnalysisAttempts, nil
}

// AddAnalysisAttempts adds i to the "analysis_attempts" field.
func (m *PostMutation) AddAnalysisAttempts(i int) {
	if m.addanalysis_attempts != nil {
		*m.addanalysis_attempts += i
	} else {
		m.addanalysis_attempts = &i
	}
}

// AddedAnalysisAttempts returns the value that was added to the "analysis_attempts" field in this mutation.
func (m *PostMutation) AddedAnalysisAttempts() (r int, exists bool) {
	v := m.addanalysis_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAnalysisAttempts resets all changes to the "analysis_attempts" field.
func (m *PostMutation) ResetAnalysisAttempts() {
	m.analysis_attempts = nil
	m.addanalysis_attempts = nil
}

// SetDispatchAttempts sets the "dispatch_attempts" field.
func (m *PostMutation) SetDispatchAttempts(i int) {
	m.dispatch_attempts = &i
	m.adddispatch_attempts = nil
}

// DispatchAttempts returns the value of the "dispatch_attempts" field in the mutation.
func (m *PostMutation) DispatchAttempts() (r int, exists bool) {
	v := m.dispatch_attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldDispatchAttempts returns the old "dispatch_attempts" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldDispatchAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDispatchAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDispatchAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDispatchAttempts: %w", err)
	}
	return oldValue.DispatchAttempts, nil
}

// AddDispatchAttempts adds i to the "dispatch_attempts" field.
func (m *PostMutation) AddDispatchAttempts(i int) {
	if m.adddispatch_attempts != nil {
		*m.adddispatch_attempts += i
	} else {
		m.adddispatch_attempts = &i
	}
}

// AddedDispatchAttempts returns the value that was added to the "dispatch_attempts" field in this mutation.
func (m *PostMutation) AddedDispatchAttempts() (r int, exists bool) {
	v := m.adddispatch_attempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetDispatchAttempts resets all changes to the "dispatch_attempts" field.
func (m *PostMutation) ResetDispatchAttempts() {
	m.dispatch_attempts = nil
	m.adddispatch_attempts = nil
}

// SetPodID sets the "pod_id" field.
func (m *PostMutation) SetPodID(s string) {
	m.pod_id = &s
}

// PodID returns the value of the "pod_id" field in the mutation.
func (m *PostMutation) PodID() (r string, exists bool) {
	v := m.pod_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPodID returns the old "pod_id" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldPodID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPodID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPodID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPodID: %w", err)
	}
	return oldValue.PodID, nil
}

// ClearPodID clears the value of the "pod_id" field.
func (m *PostMutation) ClearPodID() {
	m.pod_id = nil
	m.clearedFields[post.FieldPodID] = struct{}{}
}

// PodIDCleared returns if the "pod_id" field was cleared in this mutation.
func (m *PostMutation) PodIDCleared() bool {
	_, ok := m.clearedFields[post.FieldPodID]
	return ok
}

// ResetPodID resets all changes to the "pod_id" field.
func (m *PostMutation) ResetPodID() {
	m.pod_id = nil
	delete(m.clearedFields, post.FieldPodID)
}

// SetClaimedAt sets the "claimed_at" field.
func (m *PostMutation) SetClaimedAt(t time.Time) {
	m.claimed_at = &t
}

// ClaimedAt returns the value of the "claimed_at" field in the mutation.
func (m *PostMutation) ClaimedAt() (r time.Time, exists bool) {
	v := m.claimed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldClaimedAt returns the old "claimed_at" field's value of the Post entity.
// If the Post object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PostMutation) OldClaimedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClaimedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClaimedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClaimedAt: %w", err)
	}
	return oldValue.ClaimedAt, nil
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (m *PostMutation) ClearClaimedAt() {
	m.claimed_at = nil
	m.clearedFields[post.FieldClaimedAt] = struct{}{}
}

// ClaimedAtCleared returns if the "claimed_at" field was cleared in this mutation.
func (m *PostMutation) ClaimedAtCleared() bool {
	_, ok := m.clearedFields[post.FieldClaimedAt]
	return ok
}

// ResetClaimedAt resets all changes to the "claimed_at" field.
func (m *PostMutation) ResetClaimedAt() {
	m.claimed_at = nil
	delete(m.clearedFields, post.FieldClaimedAt)
}

// SetAccountID sets the "account" edge to the Account entity by id.
func (m *PostMutation) SetAccountID(id string) {
	m.account = &id
}

// ClearAccount clears the "account" edge to the Account entity.
func (m *PostMutation) ClearAccount() {
	m.clearedaccount = true
	m.clearedFields[post.FieldAccountUsername] = struct{}{}
}

// AccountCleared reports if the "account" edge to the Account entity was cleared.
func (m *PostMutation) AccountCleared() bool {
	return m.clearedaccount
}

// AccountID returns the "account" edge ID in the mutation.
func (m *PostMutation) AccountID() (id string, exists bool) {
	if m.account != nil {
		return *m.account, true
	}
	return
}

// AccountIDs returns the "account" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AccountID instead. It exists only for internal usage by the builders.
func (m *PostMutation) AccountIDs() (ids []string) {
	if id := m.account; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAccount resets all changes to the "account" edge.
func (m *PostMutation) ResetAccount() {
	m.account = nil
	m.clearedaccount = false
}

// SetAnalysisID sets the "analysis" edge to the Analysis entity by id.
func (m *PostMutation) SetAnalysisID(id string) {
	m.analysis = &id
}

// ClearAnalysis clears the "analysis" edge to the Analysis entity.
func (m *PostMutation) ClearAnalysis() {
	m.clearedanalysis = true
}

// AnalysisCleared reports if the "analysis" edge to the Analysis entity was cleared.
func (m *PostMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisID returns the "analysis" edge ID in the mutation.
func (m *PostMutation) AnalysisID() (id string, exists bool) {
	if m.analysis != nil {
		return *m.analysis, true
	}
	return
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *PostMutation) AnalysisIDs() (ids []string) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *PostMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// AddDispatchRecordIDs adds the "dispatch_records" edge to the DispatchRecord entity by ids.
func (m *PostMutation) AddDispatchRecordIDs(ids ...string) {
	if m.dispatch_records == nil {
		m.dispatch_records = make(map[string]struct{})
	}
	for i := range ids {
		m.dispatch_records[ids[i]] = struct{}{}
	}
}

// ClearDispatchRecords clears the "dispatch_records" edge to the DispatchRecord entity.
func (m *PostMutation) ClearDispatchRecords() {
	m.cleareddispatch_records = true
}

// DispatchRecordsCleared reports if the "dispatch_records" edge to the DispatchRecord entity was cleared.
func (m *PostMutation) DispatchRecordsCleared() bool {
	return m.cleareddispatch_records
}

// RemoveDispatchRecordIDs removes the "dispatch_records" edge to the DispatchRecord entity by IDs.
func (m *PostMutation) RemoveDispatchRecordIDs(ids ...string) {
	if m.removeddispatch_records == nil {
		m.removeddispatch_records = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.dispatch_records, ids[i])
		m.removeddispatch_records[ids[i]] = struct{}{}
	}
}

// RemovedDispatchRecords returns the removed IDs of the "dispatch_records" edge to the DispatchRecord entity.
func (m *PostMutation) RemovedDispatchRecordsIDs() (ids []string) {
	for id := range m.removeddispatch_records {
		ids = append(ids, id)
	}
	return
}

// DispatchRecordsIDs returns the "dispatch_records" edge IDs in the mutation.
func (m *PostMutation) DispatchRecordsIDs() (ids []string) {
	for id := range m.dispatch_records {
		ids = append(ids, id)
	}
	return
}

// ResetDispatchRecords resets all changes to the "dispatch_records" edge.
func (m *PostMutation) ResetDispatchRecords() {
	m.dispatch_records = nil
	m.cleareddispatch_records = false
	m.removeddispatch_records = nil
}

// Where appends a list predicates to the PostMutation builder.
func (m *PostMutation) Where(ps ...predicate.Post) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PostMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PostMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Post, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PostMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PostMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Post).
func (m *PostMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PostMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.account != nil {
		fields = append(fields, post.FieldAccountUsername)
	}
	if m.text != nil {
		fields = append(fields, post.FieldText)
	}
	if m.created_at != nil {
		fields = append(fields, post.FieldCreatedAt)
	}
	if m.ingested_at != nil {
		fields = append(fields, post.FieldIngestedAt)
	}
	if m.likes != nil {
		fields = append(fields, post.FieldLikes)
	}
	if m.reshares != nil {
		fields = append(fields, post.FieldReshares)
	}
	if m.replies != nil {
		fields = append(fields, post.FieldReplies)
	}
	if m.media != nil {
		fields = append(fields, post.FieldMedia)
	}
	if m.status != nil {
		fields = append(fields, post.FieldStatus)
	}
	if m.fail_reason != nil {
		fields = append(fields, post.FieldFailReason)
	}
	if m.retry_after != nil {
		fields = append(fields, post.FieldRetryAfter)
	}
	if m.analysis_attempts != nil {
		fields = append(fields, post.FieldAnalysisAttempts)
	}
	if m.dispatch_attempts != nil {
		fields = append(fields, post.FieldDispatchAttempts)
	}
	if m.pod_id != nil {
		fields = append(fields, post.FieldPodID)
	}
	if m.claimed_at != nil {
		fields = append(fields, post.FieldClaimedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PostMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case post.FieldAccountUsername:
		return m.AccountUsername()
	case post.FieldText:
		return m.Text()
	case post.FieldCreatedAt:
		return m.CreatedAt()
	case post.FieldIngestedAt:
		return m.IngestedAt()
	case post.FieldLikes:
		return m.Likes()
	case post.FieldReshares:
		return m.Reshares()
	case post.FieldReplies:
		return m.Replies()
	case post.FieldMedia:
		return m.Media()
	case post.FieldStatus:
		return m.Status()
	case post.FieldFailReason:
		return m.FailReason()
	case post.FieldRetryAfter:
		return m.RetryAfter()
	case post.FieldAnalysisAttempts:
		return m.AnalysisAttempts()
	case post.FieldDispatchAttempts:
		return m.DispatchAttempts()
	case post.FieldPodID:
		return m.PodID()
	case post.FieldClaimedAt:
		return m.ClaimedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PostMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case post.FieldAccountUsername:
		return m.OldAccountUsername(ctx)
	case post.FieldText:
		return m.OldText(ctx)
	case post.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case post.FieldIngestedAt:
		return m.OldIngestedAt(ctx)
	case post.FieldLikes:
		return m.OldLikes(ctx)
	case post.FieldReshares:
		return m.OldReshares(ctx)
	case post.FieldReplies:
		return m.OldReplies(ctx)
	case post.FieldMedia:
		return m.OldMedia(ctx)
	case post.FieldStatus:
		return m.OldStatus(ctx)
	case post.FieldFailReason:
		return m.OldFailReason(ctx)
	case post.FieldRetryAfter:
		return m.OldRetryAfter(ctx)
	case post.FieldAnalysisAttempts:
		return m.OldAnalysisAttempts(ctx)
	case post.FieldDispatchAttempts:
		return m.OldDispatchAttempts(ctx)
	case post.FieldPodID:
		return m.OldPodID(ctx)
	case post.FieldClaimedAt:
		return m.OldClaimedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Post field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostMutation) SetField(name string, value ent.Value) error {
	switch name {
	case post.FieldAccountUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccountUsername(v)
		return nil
	case post.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case post.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case post.FieldIngestedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIngestedAt(v)
		return nil
	case post.FieldLikes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLikes(v)
		return nil
	case post.FieldReshares:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReshares(v)
		return nil
	case post.FieldReplies:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReplies(v)
		return nil
	case post.FieldMedia:
		v, ok := value.([]models.Media)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMedia(v)
		return nil
	case post.FieldStatus:
		v, ok := value.(post.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case post.FieldFailReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailReason(v)
		return nil
	case post.FieldRetryAfter:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRetryAfter(v)
		return nil
	case post.FieldAnalysisAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisAttempts(v)
		return nil
	case post.FieldDispatchAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDispatchAttempts(v)
		return nil
	case post.FieldPodID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPodID(v)
		return nil
	case post.FieldClaimedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClaimedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Post field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PostMutation) AddedFields() []string {
	var fields []string
	if m.addlikes != nil {
		fields = append(fields, post.FieldLikes)
	}
	if m.addreshares != nil {
		fields = append(fields, post.FieldReshares)
	}
	if m.addreplies != nil {
		fields = append(fields, post.FieldReplies)
	}
	if m.addanalysis_attempts != nil {
		fields = append(fields, post.FieldAnalysisAttempts)
	}
	if m.adddispatch_attempts != nil {
		fields = append(fields, post.FieldDispatchAttempts)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PostMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case post.FieldLikes:
		return m.AddedLikes()
	case post.FieldReshares:
		return m.AddedReshares()
	case post.FieldReplies:
		return m.AddedReplies()
	case post.FieldAnalysisAttempts:
		return m.AddedAnalysisAttempts()
	case post.FieldDispatchAttempts:
		return m.AddedDispatchAttempts()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PostMutation) AddField(name string, value ent.Value) error {
	switch name {
	case post.FieldLikes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLikes(v)
		return nil
	case post.FieldReshares:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReshares(v)
		return nil
	case post.FieldReplies:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddReplies(v)
		return nil
	case post.FieldAnalysisAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAnalysisAttempts(v)
		return nil
	case post.FieldDispatchAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDispatchAttempts(v)
		return nil
	}
	return fmt.Errorf("unknown Post numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PostMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(post.FieldMedia) {
		fields = append(fields, post.FieldMedia)
	}
	if m.FieldCleared(post.FieldFailReason) {
		fields = append(fields, post.FieldFailReason)
	}
	if m.FieldCleared(post.FieldRetryAfter) {
		fields = append(fields, post.FieldRetryAfter)
	}
	if m.FieldCleared(post.FieldPodID) {
		fields = append(fields, post.FieldPodID)
	}
	if m.FieldCleared(post.FieldClaimedAt) {
		fields = append(fields, post.FieldClaimedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PostMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PostMutation) ClearField(name string) error {
	switch name {
	case post.FieldMedia:
		m.ClearMedia()
		return nil
	case post.FieldFailReason:
		m.ClearFailReason()
		return nil
	case post.FieldRetryAfter:
		m.ClearRetryAfter()
		return nil
	case post.FieldPodID:
		m.ClearPodID()
		return nil
	case post.FieldClaimedAt:
		m.ClearClaimedAt()
		return nil
	}
	return fmt.Errorf("unknown Post nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PostMutation) ResetField(name string) error {
	switch name {
	case post.FieldAccountUsername:
		m.ResetAccountUsername()
		return nil
	case post.FieldText:
		m.ResetText()
		return nil
	case post.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case post.FieldIngestedAt:
		m.ResetIngestedAt()
		return nil
	case post.FieldLikes:
		m.ResetLikes()
		return nil
	case post.FieldReshares:
		m.ResetReshares()
		return nil
	case post.FieldReplies:
		m.ResetReplies()
		return nil
	case post.FieldMedia:
		m.ResetMedia()
		return nil
	case post.FieldStatus:
		m.ResetStatus()
		return nil
	case post.FieldFailReason:
		m.ResetFailReason()
		return nil
	case post.FieldRetryAfter:
		m.ResetRetryAfter()
		return nil
	case post.FieldAnalysisAttempts:
		m.ResetAnalysisAttempts()
		return nil
	case post.FieldDispatchAttempts:
		m.ResetDispatchAttempts()
		return nil
	case post.FieldPodID:
		m.ResetPodID()
		return nil
	case post.FieldClaimedAt:
		m.ResetClaimedAt()
		return nil
	}
	return fmt.Errorf("unknown Post field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PostMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.account != nil {
		edges = append(edges, post.EdgeAccount)
	}
	if m.analysis != nil {
		edges = append(edges, post.EdgeAnalysis)
	}
	if m.dispatch_records != nil {
		edges = append(edges, post.EdgeDispatchRecords)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PostMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case post.EdgeAccount:
		if id := m.account; id != nil {
			return []ent.Value{*id}
		}
	case post.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	case post.EdgeDispatchRecords:
		ids := make([]ent.Value, 0, len(m.dispatch_records))
		for id := range m.dispatch_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PostMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removeddispatch_records != nil {
		edges = append(edges, post.EdgeDispatchRecords)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PostMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case post.EdgeDispatchRecords:
		ids := make([]ent.Value, 0, len(m.removeddispatch_records))
		for id := range m.removeddispatch_records {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PostMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedaccount {
		edges = append(edges, post.EdgeAccount)
	}
	if m.clearedanalysis {
		edges = append(edges, post.EdgeAnalysis)
	}
	if m.cleareddispatch_records {
		edges = append(edges, post.EdgeDispatchRecords)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PostMutation) EdgeCleared(name string) bool {
	switch name {
	case post.EdgeAccount:
		return m.clearedaccount
	case post.EdgeAnalysis:
		return m.clearedanalysis
	case post.EdgeDispatchRecords:
		return m.cleareddispatch_records
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PostMutation) ClearEdge(name string) error {
	switch name {
	case post.EdgeAccount:
		m.ClearAccount()
		return nil
	case post.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown Post unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PostMutation) ResetEdge(name string) error {
	switch name {
	case post.EdgeAccount:
		m.ResetAccount()
		return nil
	case post.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	case post.EdgeDispatchRecords:
		m.ResetDispatchRecords()
		return nil
	}
	return fmt.Errorf("unknown Post edge %s", name)
}

// SettingMutation represents an operation that mutates the Setting nodes in the graph.
type SettingMutation struct {
	config
	op            Op
	typ           string
	id            *string
	value         *string
	updated_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Setting, error)
	predicates    []predicate.Setting
}

var _ ent.Mutation = (*SettingMutation)(nil)

// settingOption allows management of the mutation configuration using functional options.
type settingOption func(*SettingMutation)

// newSettingMutation creates new mutation for the Setting entity.
func newSettingMutation(c config, op Op, opts ...settingOption) *SettingMutation {
	m := &SettingMutation{
		config:        c,
		op:            op,
		typ:           TypeSetting,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSettingID sets the ID field of the mutation.
func withSettingID(id string) settingOption {
	return func(m *SettingMutation) {
		var (
			err   error
			once  sync.Once
			value *Setting
		)
		m.oldValue = func(ctx context.Context) (*Setting, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Setting.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSetting sets the old Setting of the mutation.
func withSetting(node *Setting) settingOption {
	return func(m *SettingMutation) {
		m.oldValue = func(context.Context) (*Setting, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SettingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SettingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Setting entities.
func (m *SettingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SettingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SettingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Setting.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetValue sets the "value" field.
func (m *SettingMutation) SetValue(s string) {
	m.value = &s
}

// Value returns the value of the "value" field in the mutation.
func (m *SettingMutation) Value() (r string, exists bool) {
	v := m.value
	if v == nil {
		return
	}
	return *v, true
}

// OldValue returns the old "value" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValue: %w", err)
	}
	return oldValue.Value, nil
}

// ResetValue resets all changes to the "value" field.
func (m *SettingMutation) ResetValue() {
	m.value = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SettingMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SettingMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Setting entity.
// If the Setting object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SettingMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SettingMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the SettingMutation builder.
func (m *SettingMutation) Where(ps ...predicate.Setting) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SettingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SettingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Setting, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SettingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SettingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Setting).
func (m *SettingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SettingMutation) Fields() []string {
	fields := make([]string, 0, 2)
	if m.value != nil {
		fields = append(fields, setting.FieldValue)
	}
	if m.updated_at != nil {
		fields = append(fields, setting.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SettingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case setting.FieldValue:
		return m.Value()
	case setting.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SettingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case setting.FieldValue:
		return m.OldValue(ctx)
	case setting.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Setting field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case setting.FieldValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValue(v)
		return nil
	case setting.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SettingMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SettingMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SettingMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Setting numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SettingMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SettingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SettingMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Setting nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SettingMutation) ResetField(name string) error {
	switch name {
	case setting.FieldValue:
		m.ResetValue()
		return nil
	case setting.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Setting field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SettingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SettingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SettingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SettingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SettingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SettingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SettingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Setting unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SettingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Setting edge %s", name)
}
