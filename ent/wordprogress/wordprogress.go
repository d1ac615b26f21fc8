// Code generated by ent, DO NOT EDIT.

package wordprogress

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the wordprogress type in the database.
	Label = "word_progress"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldWordID holds the string denoting the word_id field in the database.
	FieldWordID = "word_id"
	// FieldMasteryState holds the string denoting the mastery_state field in the database.
	FieldMasteryState = "mastery_state"
	// FieldReviewCount holds the string denoting the review_count field in the database.
	FieldReviewCount = "review_count"
	// FieldCorrectCount holds the string denoting the correct_count field in the database.
	FieldCorrectCount = "correct_count"
	// FieldAccuracy holds the string denoting the accuracy field in the database.
	FieldAccuracy = "accuracy"
	// FieldLastReviewedAt holds the string denoting the last_reviewed_at field in the database.
	FieldLastReviewedAt = "last_reviewed_at"
	// FieldNextReviewDueAt holds the string denoting the next_review_due_at field in the database.
	FieldNextReviewDueAt = "next_review_due_at"
	// Table holds the table name of the wordprogress in the database.
	Table = "word_progresses"
)

// Columns holds all SQL columns for wordprogress fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldWordID,
	FieldMasteryState,
	FieldReviewCount,
	FieldCorrectCount,
	FieldAccuracy,
	FieldLastReviewedAt,
	FieldNextReviewDueAt,
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
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// WordIDValidator is a validator for the "word_id" field. It is called by the builders before save.
	WordIDValidator func(string) error
	// DefaultMasteryState holds the default value on creation for the "mastery_state" field.
	DefaultMasteryState string
	// DefaultReviewCount holds the default value on creation for the "review_count" field.
	DefaultReviewCount int
	// DefaultCorrectCount holds the default value on creation for the "correct_count" field.
	DefaultCorrectCount int
	// DefaultAccuracy holds the default value on creation for the "accuracy" field.
	DefaultAccuracy float64
)

// OrderOption defines the ordering options for the WordProgress queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByWordID orders the results by the word_id field.
func ByWordID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWordID, opts...).ToFunc()
}

// ByMasteryState orders the results by the mastery_state field.
func ByMasteryState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryState, opts...).ToFunc()
}

// ByReviewCount orders the results by the review_count field.
func ByReviewCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewCount, opts...).ToFunc()
}

// ByCorrectCount orders the results by the correct_count field.
func ByCorrectCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectCount, opts...).ToFunc()
}

// ByAccuracy orders the results by the accuracy field.
func ByAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccuracy, opts...).ToFunc()
}

// ByLastReviewedAt orders the results by the last_reviewed_at field.
func ByLastReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastReviewedAt, opts...).ToFunc()
}

// ByNextReviewDueAt orders the results by the next_review_due_at field.
func ByNextReviewDueAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNextReviewDueAt, opts...).ToFunc()
}
