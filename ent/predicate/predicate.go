// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Goal is the predicate function for goal builders.
type Goal func(*sql.Selector)

// GoalWord is the predicate function for goalword builders.
type GoalWord func(*sql.Selector)

// LearningEvent is the predicate function for learningevent builders.
type LearningEvent func(*sql.Selector)

// Word is the predicate function for word builders.
type Word func(*sql.Selector)

// WordProgress is the predicate function for wordprogress builders.
type WordProgress func(*sql.Selector)
