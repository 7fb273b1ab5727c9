package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Analysis holds the LLM output for a post. One row per post; written in the
// same transaction as the analyzing→analyzed status transition, immutable after.
type Analysis struct {
	ent.Schema
}

// Fields of the Analysis.
func (Analysis) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("analysis_id").
			Unique().
			Immutable(),
		field.String("post_id").
			Unique().
			Immutable(),
		field.String("model"),
		field.Text("prompt_snapshot").
			Comment("Rendered prompt as sent to the model"),
		field.JSON("params_snapshot", map[string]interface{}{}).
			Optional(),
		field.Text("output_text"),
		field.Int("tokens_used").
			Default(0),
		field.Float("cost_estimate").
			Default(0),
		field.Int64("elapsed_ms").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Analysis.
func (Analysis) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("post", Post.Type).
			Ref("analysis").
			Field("post_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Analysis.
func (Analysis) Indexes() []ent.Index {
	return []ent.Index{
		// Daily cost accounting
		index.Fields("created_at"),
	}
}
