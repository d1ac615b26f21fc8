package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LearningEvent records a single study interaction. Append-only.
type LearningEvent struct {
	ent.Schema
}

func (LearningEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (LearningEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("word_id").
			NotEmpty(),
		field.String("session_id").
			NotEmpty().
			Comment("Groups events from one study session"),
		field.Bool("correct"),
		field.Float("response_time").
			Comment("Seconds to answer"),
	}
}

func (LearningEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "timestamp"),
		index.Fields("word_id"),
		index.Fields("session_id"),
	}
}
