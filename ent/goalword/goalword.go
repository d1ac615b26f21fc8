// Code generated by ent, DO NOT EDIT.

package goalword

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the goalword type in the database.
	Label = "goal_word"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldGoalID holds the string denoting the goal_id field in the database.
	FieldGoalID = "goal_id"
	// FieldWordID holds the string denoting the word_id field in the database.
	FieldWordID = "word_id"
	// Table holds the table name of the goalword in the database.
	Table = "goal_words"
)

// Columns holds all SQL columns for goalword fields.
var Columns = []string{
	FieldID,
	FieldGoalID,
	FieldWordID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// GoalIDValidator is a validator for the "goal_id" field. It is called by the builders before save.
	GoalIDValidator func(string) error
	// WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	WordIDValidator func(string) error
)

// OrderOption defines the ordering options for the GoalWord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByGoalID orders the results by the goal_id field.
func ByGoalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGoalID, opts...).ToFunc()
}

// ByWordID orders the results by the word_id field.
func ByWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordID, opts...).ToFunc()
}
