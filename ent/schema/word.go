package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Word is an immutable vocabulary catalog entry.
type Word struct {
	ent.Schema
}

func (Word) Fields() []ent.Field {
	return []ent.Field{
		field.String("word_id").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Stable catalog identifier"),
		field.String("text").
			NotEmpty().
			Comment("Display form"),
		field.String("pos").
			NotEmpty().
			Comment("Part of speech: noun, verb, adjective, adverb, other"),
		field.Int("frequency").
			Default(0).
			Comment("Corpus frequency score, higher = more common"),
		field.Int("grade").
			Range(1, 12).
			Comment("Difficulty grade, ordinal 1-12"),
	}
}

func (Word) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("word_id"),
		index.Fields("pos"),
		index.Fields("grade"),
	}
}
