package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// WordProgress is the per-user, per-word learning record, updated after
// every study interaction.
type WordProgress struct {
	ent.Schema
}

func (WordProgress) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("word_id").
			NotEmpty(),
		field.String("mastery_state").
			Default("new").
			Comment("new, learning, reviewing, mastered, forgotten"),
		field.Int("review_count").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Float("accuracy").
			Default(0).
			Comment("correct_count / review_count"),
		field.Time("last_reviewed_at").
			Optional().
			Nillable(),
		field.Time("next_review_due_at").
			Optional().
			Nillable().
			Comment("Set whenever mastery_state is learning, reviewing, or forgotten"),
	}
}

func (WordProgress) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "word_id").Unique(),
		index.Fields("user_id", "mastery_state"),
		index.Fields("user_id", "next_review_due_at"),
	}
}
