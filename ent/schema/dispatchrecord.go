package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DispatchRecord is an append-only log of outbound delivery attempts.
// The newest row per (post, destination) is canonical.
type DispatchRecord struct {
	ent.Schema
}

// Fields of the DispatchRecord.
func (DispatchRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("record_id").
			Unique().
			Immutable(),
		field.String("post_id").
			Immutable(),
		field.String("destination").
			NotEmpty(),
		field.Int("attempt_number").
			Default(1),
		field.Enum("outcome").
			Values("ok", "transient_fail", "permanent_fail"),
		field.String("error_detail").
			Optional(),
		field.Time("sent_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the DispatchRecord.
func (DispatchRecord) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("post", Post.Type).
			Ref("dispatch_records").
			Field("post_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the DispatchRecord.
func (DispatchRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("post_id", "sent_at"),
	}
}
