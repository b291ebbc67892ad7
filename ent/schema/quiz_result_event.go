package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuizResultEvent records a completed quiz, one row per finished unit.
// The learner profile keeps its own denormalized history; this log is
// the append-only record behind the history command.
type QuizResultEvent struct {
	ent.Schema
}

func (QuizResultEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (QuizResultEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("unit_id").
			Comment("Learning unit this quiz belongs to"),
		field.String("unit_title").
			Default("").
			Comment("Unit title at completion time"),
		field.Int("level").
			Comment("Difficulty level of the unit, 99 for comprehensive tests"),
		field.Int("score").
			Comment("Correct answers"),
		field.Int("total").
			Comment("Question count"),
		field.Int("time_spent_seconds").
			Default(0).
			Comment("Wall-clock duration of the quiz"),
		field.Bool("passed").
			Comment("Whether the score cleared the pass threshold"),
	}
}

func (QuizResultEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("unit_id"),
		index.Fields("passed"),
	}
}
