// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GoalsColumns holds the columns for the "goals" table.
	GoalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "goal_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: false},
	}
	// GoalsTable holds the schema information for the "goals" table.
	GoalsTable = &schema.Table{
		Name:       "goals",
		Columns:    GoalsColumns,
		PrimaryKey: []*schema.Column{GoalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goal_goal_id",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[1]},
			},
			{
				Name:    "goal_user_id_active",
				Unique:  false,
				Columns: []*schema.Column{GoalsColumns[2], GoalsColumns[4]},
			},
		},
	}
	// GoalWordsColumns holds the columns for the "goal_words" table.
	GoalWordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "goal_id", Type: field.TypeString},
		{Name: "word_id", Type: field.TypeString},
	}
	// GoalWordsTable holds the schema information for the "goal_words" table.
	GoalWordsTable = &schema.Table{
		Name:       "goal_words",
		Columns:    GoalWordsColumns,
		PrimaryKey: []*schema.Column{GoalWordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "goalword_goal_id_word_id",
				Unique:  true,
				Columns: []*schema.Column{GoalWordsColumns[1], GoalWordsColumns[2]},
			},
		},
	}
	// LearningEventsColumns holds the columns for the "learning_events" table.
	LearningEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "word_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "response_time", Type: field.TypeFloat64},
	}
	// LearningEventsTable holds the schema information for the "learning_events" table.
	LearningEventsTable = &schema.Table{
		Name:       "learning_events",
		Columns:    LearningEventsColumns,
		PrimaryKey: []*schema.Column{LearningEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "learningevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[1]},
			},
			{
				Name:    "learningevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[2]},
			},
			{
				Name:    "learningevent_user_id_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[3], LearningEventsColumns[2]},
			},
			{
				Name:    "learningevent_word_id",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[4]},
			},
			{
				Name:    "learningevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{LearningEventsColumns[5]},
			},
		},
	}
	// WordsColumns holds the columns for the "words" table.
	WordsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "word_id", Type: field.TypeString, Unique: true},
		{Name: "text", Type: field.TypeString},
		{Name: "pos", Type: field.TypeString},
		{Name: "frequency", Type: field.TypeInt, Default: 0},
		{Name: "grade", Type: field.TypeInt},
	}
	// WordsTable holds the schema information for the "words" table.
	WordsTable = &schema.Table{
		Name:       "words",
		Columns:    WordsColumns,
		PrimaryKey: []*schema.Column{WordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "word_word_id",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[1]},
			},
			{
				Name:    "word_pos",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[3]},
			},
			{
				Name:    "word_grade",
				Unique:  false,
				Columns: []*schema.Column{WordsColumns[5]},
			},
		},
	}
	// WordProgressesColumns holds the columns for the "word_progresses" table.
	WordProgressesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "word_id", Type: field.TypeString},
		{Name: "mastery_state", Type: field.TypeString, Default: "new"},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "accuracy", Type: field.TypeFloat64, Default: 0},
		{Name: "last_reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "next_review_due_at", Type: field.TypeTime, Nullable: true},
	}
	// WordProgressesTable holds the schema information for the "word_progresses" table.
	WordProgressesTable = &schema.Table{
		Name:       "word_progresses",
		Columns:    WordProgressesColumns,
		PrimaryKey: []*schema.Column{WordProgressesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "wordprogress_user_id_word_id",
				Unique:  true,
				Columns: []*schema.Column{WordProgressesColumns[1], WordProgressesColumns[2]},
			},
			{
				Name:    "wordprogress_user_id_mastery_state",
				Unique:  false,
				Columns: []*schema.Column{WordProgressesColumns[1], WordProgressesColumns[3]},
			},
			{
				Name:    "wordprogress_user_id_next_review_due_at",
				Unique:  false,
				Columns: []*schema.Column{WordProgressesColumns[1], WordProgressesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GoalsTable,
		GoalWordsTable,
		LearningEventsTable,
		WordsTable,
		WordProgressesTable,
	}
)

func init() {
}
