// Code generated by ent, DO NOT EDIT.

package account

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/signalhouse/postwatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldID, id))
}

// Enabled applies equality check predicate on the "enabled" field. It's identical to EnabledEQ.
func Enabled(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEnabled, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// LastPolledAt applies equality check predicate on the "last_polled_at" field. It's identical to LastPolledAtEQ.
func LastPolledAt(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastPolledAt, v))
}

// LastSeenPostID applies equality check predicate on the "last_seen_post_id" field. It's identical to LastSeenPostIDEQ.
func LastSeenPostID(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastSeenPostID, v))
}

// EnabledEQ applies the EQ predicate on the "enabled" field.
func EnabledEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldEnabled, v))
}

// EnabledNEQ applies the NEQ predicate on the "enabled" field.
func EnabledNEQ(v bool) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldEnabled, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldCreatedAt, v))
}

// LastPolledAtEQ applies the EQ predicate on the "last_polled_at" field.
func LastPolledAtEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastPolledAt, v))
}

// LastPolledAtNEQ applies the NEQ predicate on the "last_polled_at" field.
func LastPolledAtNEQ(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLastPolledAt, v))
}

// LastPolledAtIn applies the In predicate on the "last_polled_at" field.
func LastPolledAtIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLastPolledAt, vs...))
}

// LastPolledAtNotIn applies the NotIn predicate on the "last_polled_at" field.
func LastPolledAtNotIn(vs ...time.Time) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLastPolledAt, vs...))
}

// LastPolledAtGT applies the GT predicate on the "last_polled_at" field.
func LastPolledAtGT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLastPolledAt, v))
}

// LastPolledAtGTE applies the GTE predicate on the "last_polled_at" field.
func LastPolledAtGTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLastPolledAt, v))
}

// LastPolledAtLT applies the LT predicate on the "last_polled_at" field.
func LastPolledAtLT(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLastPolledAt, v))
}

// LastPolledAtLTE applies the LTE predicate on the "last_polled_at" field.
func LastPolledAtLTE(v time.Time) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLastPolledAt, v))
}

// LastPolledAtIsNil applies the IsNil predicate on the "last_polled_at" field.
func LastPolledAtIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldLastPolledAt))
}

// LastPolledAtNotNil applies the NotNil predicate on the "last_polled_at" field.
func LastPolledAtNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldLastPolledAt))
}

// LastSeenPostIDEQ applies the EQ predicate on the "last_seen_post_id" field.
func LastSeenPostIDEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldEQ(FieldLastSeenPostID, v))
}

// LastSeenPostIDNEQ applies the NEQ predicate on the "last_seen_post_id" field.
func LastSeenPostIDNEQ(v string) predicate.Account {
	return predicate.Account(sql.FieldNEQ(FieldLastSeenPostID, v))
}

// LastSeenPostIDIn applies the In predicate on the "last_seen_post_id" field.
func LastSeenPostIDIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldIn(FieldLastSeenPostID, vs...))
}

// LastSeenPostIDNotIn applies the NotIn predicate on the "last_seen_post_id" field.
func LastSeenPostIDNotIn(vs ...string) predicate.Account {
	return predicate.Account(sql.FieldNotIn(FieldLastSeenPostID, vs...))
}

// LastSeenPostIDGT applies the GT predicate on the "last_seen_post_id" field.
func LastSeenPostIDGT(v string) predicate.Account {
	return predicate.Account(sql.FieldGT(FieldLastSeenPostID, v))
}

// LastSeenPostIDGTE applies the GTE predicate on the "last_seen_post_id" field.
func LastSeenPostIDGTE(v string) predicate.Account {
	return predicate.Account(sql.FieldGTE(FieldLastSeenPostID, v))
}

// LastSeenPostIDLT applies the LT predicate on the "last_seen_post_id" field.
func LastSeenPostIDLT(v string) predicate.Account {
	return predicate.Account(sql.FieldLT(FieldLastSeenPostID, v))
}

// LastSeenPostIDLTE applies the LTE predicate on the "last_seen_post_id" field.
func LastSeenPostIDLTE(v string) predicate.Account {
	return predicate.Account(sql.FieldLTE(FieldLastSeenPostID, v))
}

// LastSeenPostIDContains applies the Contains predicate on the "last_seen_post_id" field.
func LastSeenPostIDContains(v string) predicate.Account {
	return predicate.Account(sql.FieldContains(FieldLastSeenPostID, v))
}

// LastSeenPostIDHasPrefix applies the HasPrefix predicate on the "last_seen_post_id" field.
func LastSeenPostIDHasPrefix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasPrefix(FieldLastSeenPostID, v))
}

// LastSeenPostIDHasSuffix applies the HasSuffix predicate on the "last_seen_post_id" field.
func LastSeenPostIDHasSuffix(v string) predicate.Account {
	return predicate.Account(sql.FieldHasSuffix(FieldLastSeenPostID, v))
}

// LastSeenPostIDIsNil applies the IsNil predicate on the "last_seen_post_id" field.
func LastSeenPostIDIsNil() predicate.Account {
	return predicate.Account(sql.FieldIsNull(FieldLastSeenPostID))
}

// LastSeenPostIDNotNil applies the NotNil predicate on the "last_seen_post_id" field.
func LastSeenPostIDNotNil() predicate.Account {
	return predicate.Account(sql.FieldNotNull(FieldLastSeenPostID))
}

// LastSeenPostIDEqualFold applies the EqualFold predicate on the "last_seen_post_id" field.
func LastSeenPostIDEqualFold(v string) predicate.Account {
	return predicate.Account(sql.FieldEqualFold(FieldLastSeenPostID, v))
}

// LastSeenPostIDContainsFold applies the ContainsFold predicate on the "last_seen_post_id" field.
func LastSeenPostIDContainsFold(v string) predicate.Account {
	return predicate.Account(sql.FieldContainsFold(FieldLastSeenPostID, v))
}

// HasPosts applies the HasEdge predicate on the "posts" edge.
func HasPosts() predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, PostsTable, PostsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPostsWith applies the HasEdge predicate on the "posts" edge with a given conditions (other predicates).
func HasPostsWith(preds ...predicate.Post) predicate.Account {
	return predicate.Account(func(s *sql.Selector) {
		step := newPostsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Account) predicate.Account {
	return predicate.Account(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Account) predicate.Account {
	return predicate.Account(sql.NotPredicates(p))
}
