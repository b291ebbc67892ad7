package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// ProfileRecord is a key-value row holding client-side state: the
// learner profile JSON under one well-known key, the API credential
// under another.
type ProfileRecord struct {
	ent.Schema
}

func (ProfileRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("key").
			Unique().
			Immutable().
			Comment("Well-known record key, e.g. user_profile"),
		field.Text("value").
			Comment("Record payload, JSON for structured records"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last write time"),
	}
}
