package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Goal is a learning goal: a named set of catalog words a user works
// through. Word membership lives in GoalWord rows.
type Goal struct {
	ent.Schema
}

func (Goal) Fields() []ent.Field {
	return []ent.Field{
		field.String("goal_id").
			Unique().
			NotEmpty().
			Immutable(),
		field.String("user_id").
			NotEmpty(),
		field.String("name").
			NotEmpty(),
		field.Bool("active").
			Default(false).
			Comment("At most one active goal per user"),
	}
}

func (Goal) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id"),
		index.Fields("user_id", "active"),
	}
}

// GoalWord maps a word into a goal's universe.
type GoalWord struct {
	ent.Schema
}

func (GoalWord) Fields() []ent.Field {
	return []ent.Field{
		field.String("goal_id").
			NotEmpty(),
		field.String("word_id").
			NotEmpty(),
	}
}

func (GoalWord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("goal_id", "word_id").Unique(),
	}
}
