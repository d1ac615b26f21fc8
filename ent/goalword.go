// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/marchenko/lexrec/ent/goalword"
)

// GoalWord is the model entity for the GoalWord schema.
type GoalWord struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// GoalID holds the value of the "goal_id" field.
	GoalID string `json:"goal_id,omitempty"`
	// WordID holds the value of the "word_id" field.
	WordID       string `json:"word_id,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GoalWord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case goalword.FieldID:
			values[i] = new(sql.NullInt64)
		case goalword.FieldGoalID, goalword.FieldWordID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GoalWord fields.
func (_m *GoalWord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case goalword.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case goalword.FieldGoalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field goal_id", values[i])
			} else if value.Valid {
				_m.GoalID = value.String
			}
		case goalword.FieldWordID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field word_id", values[i])
			} else if value.Valid {
				_m.WordID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GoalWord.
// This includes values selected through modifiers, order, etc.
func (_m *GoalWord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GoalWord.
// Note that you need to call GoalWord.Unwrap() before calling this method if this GoalWord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GoalWord) Update() *GoalWordUpdateOne {
	return NewGoalWordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GoalWord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GoalWord) Unwrap() *GoalWord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GoalWord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GoalWord) String() string {
	var builder strings.Builder
	builder.WriteString("GoalWord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("goal_id=")
	builder.WriteString(_m.GoalID)
	builder.WriteString(", ")
	builder.WriteString("word_id=")
	builder.WriteString(_m.WordID)
	builder.WriteByte(')')
	return builder.String()
}

// GoalWords is a parsable slice of GoalWord.
type GoalWords []*GoalWord
