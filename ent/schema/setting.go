package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Setting is a key-value pair for runtime-editable parameters
// (prompt, model, polling interval, toggles). Workers read settings
// once per claim, never per operation.
type Setting struct {
	ent.Schema
}

// Fields of the Setting.
func (Setting) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Unique().
			Immutable().
			NotEmpty(),
		field.Text("value"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
