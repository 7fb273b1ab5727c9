package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/signalhouse/postwatch/pkg/models"
)

// Post holds the schema definition for an ingested source post.
// The post id is supplied by the upstream source and is globally unique.
type Post struct {
	ent.Schema
}

// Fields of the Post.
func (Post) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("post_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("account_username").
			NotEmpty(),
		field.Text("text").
			Comment("Canonical textual content, may be empty"),
		field.Time("created_at").
			Immutable().
			Comment("Timestamp at the source"),
		field.Time("ingested_at").
			Default(time.Now).
			Immutable(),
		field.Int("likes").
			Default(0),
		field.Int("reshares").
			Default(0),
		field.Int("replies").
			Default(0),
		field.JSON("media", []models.Media{}).
			Optional(),
		field.Enum("status").
			Values("new", "analyzing", "analyzed", "dispatching", "dispatched", "failed").
			Default("new"),
		field.String("fail_reason").
			Optional(),
		field.Time("retry_after").
			Optional().
			Nillable().
			Comment("Post is not claimable before this time"),
		field.Int("analysis_attempts").
			Default(0),
		field.Int("dispatch_attempts").
			Default(0),
		field.String("pod_id").
			Optional().
			Comment("Pod currently holding the claim"),
		field.Time("claimed_at").
			Optional().
			Nillable().
			Comment("For stale-claim recovery"),
	}
}

// Edges of the Post.
func (Post) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("posts").
			Field("account_username").
			Unique().
			Required(),
		edge.To("analysis", Analysis.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("dispatch_records", DispatchRecord.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Post.
func (Post) Indexes() []ent.Index {
	return []ent.Index{
		// Claim scans
		index.Fields("status", "created_at"),
		// Idempotent upsert lookups and per-account listing
		index.Fields("account_username", "created_at"),
		// Stale-claim recovery
		index.Fields("status", "claimed_at"),
	}
}
