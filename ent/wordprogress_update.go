// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marchenko/lexrec/ent/predicate"
	"github.com/marchenko/lexrec/ent/wordprogress"
)

// WordProgressUpdate is the builder for updating WordProgress entities.
type WordProgressUpdate struct {
	config
	hooks    []Hook
	mutation *WordProgressMutation
}

// Where appends a list predicates to the WordProgressUpdate builder.
func (_u *WordProgressUpdate) Where(ps ...predicate.WordProgress) *WordProgressUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *WordProgressUpdate) SetUserID(v string) *WordProgressUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableUserID(v *string) *WordProgressUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *WordProgressUpdate) SetWordID(v string) *WordProgressUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableWordID(v *string) *WordProgressUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetMasteryState sets the "mastery_state" field.
func (_u *WordProgressUpdate) SetMasteryState(v string) *WordProgressUpdate {
	_u.mutation.SetMasteryState(v)
	return _u
}

// SetNillableMasteryState sets the "mastery_state" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableMasteryState(v *string) *WordProgressUpdate {
	if v != nil {
		_u.SetMasteryState(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *WordProgressUpdate) SetReviewCount(v int) *WordProgressUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableReviewCount(v *int) *WordProgressUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *WordProgressUpdate) AddReviewCount(v int) *WordProgressUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *WordProgressUpdate) SetCorrectCount(v int) *WordProgressUpdate {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableCorrectCount(v *int) *WordProgressUpdate {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *WordProgressUpdate) AddCorrectCount(v int) *WordProgressUpdate {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *WordProgressUpdate) SetAccuracy(v float64) *WordProgressUpdate {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableAccuracy(v *float64) *WordProgressUpdate {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *WordProgressUpdate) AddAccuracy(v float64) *WordProgressUpdate {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *WordProgressUpdate) SetLastReviewedAt(v time.Time) *WordProgressUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableLastReviewedAt(v *time.Time) *WordProgressUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *WordProgressUpdate) ClearLastReviewedAt() *WordProgressUpdate {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewDueAt sets the "next_review_due_at" field.
func (_u *WordProgressUpdate) SetNextReviewDueAt(v time.Time) *WordProgressUpdate {
	_u.mutation.SetNextReviewDueAt(v)
	return _u
}

// SetNillableNextReviewDueAt sets the "next_review_due_at" field if the given value is not nil.
func (_u *WordProgressUpdate) SetNillableNextReviewDueAt(v *time.Time) *WordProgressUpdate {
	if v != nil {
		_u.SetNextReviewDueAt(*v)
	}
	return _u
}

// ClearNextReviewDueAt clears the value of the "next_review_due_at" field.
func (_u *WordProgressUpdate) ClearNextReviewDueAt() *WordProgressUpdate {
	_u.mutation.ClearNextReviewDueAt()
	return _u
}

// Mutation returns the WordProgressMutation object of the builder.
func (_u *WordProgressUpdate) Mutation() *WordProgressMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WordProgressUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordProgressUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WordProgressUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordProgressUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordProgressUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := wordprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WordProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := wordprogress.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "WordProgress.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WordProgressUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wordprogress.Table, wordprogress.Columns, sqlgraph.NewFieldSpec(wordprogress.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(wordprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(wordprogress.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryState(); ok {
		_spec.SetField(wordprogress.FieldMasteryState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(wordprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(wordprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(wordprogress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(wordprogress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(wordprogress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(wordprogress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(wordprogress.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(wordprogress.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewDueAt(); ok {
		_spec.SetField(wordprogress.FieldNextReviewDueAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewDueAtCleared() {
		_spec.ClearField(wordprogress.FieldNextReviewDueAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wordprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WordProgressUpdateOne is the builder for updating a single WordProgress entity.
type WordProgressUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WordProgressMutation
}

// SetUserID sets the "user_id" field.
func (_u *WordProgressUpdateOne) SetUserID(v string) *WordProgressUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableUserID(v *string) *WordProgressUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *WordProgressUpdateOne) SetWordID(v string) *WordProgressUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableWordID(v *string) *WordProgressUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetMasteryState sets the "mastery_state" field.
func (_u *WordProgressUpdateOne) SetMasteryState(v string) *WordProgressUpdateOne {
	_u.mutation.SetMasteryState(v)
	return _u
}

// SetNillableMasteryState sets the "mastery_state" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableMasteryState(v *string) *WordProgressUpdateOne {
	if v != nil {
		_u.SetMasteryState(*v)
	}
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *WordProgressUpdateOne) SetReviewCount(v int) *WordProgressUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableReviewCount(v *int) *WordProgressUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *WordProgressUpdateOne) AddReviewCount(v int) *WordProgressUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// SetCorrectCount sets the "correct_count" field.
func (_u *WordProgressUpdateOne) SetCorrectCount(v int) *WordProgressUpdateOne {
	_u.mutation.ResetCorrectCount()
	_u.mutation.SetCorrectCount(v)
	return _u
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableCorrectCount(v *int) *WordProgressUpdateOne {
	if v != nil {
		_u.SetCorrectCount(*v)
	}
	return _u
}

// AddCorrectCount adds value to the "correct_count" field.
func (_u *WordProgressUpdateOne) AddCorrectCount(v int) *WordProgressUpdateOne {
	_u.mutation.AddCorrectCount(v)
	return _u
}

// SetAccuracy sets the "accuracy" field.
func (_u *WordProgressUpdateOne) SetAccuracy(v float64) *WordProgressUpdateOne {
	_u.mutation.ResetAccuracy()
	_u.mutation.SetAccuracy(v)
	return _u
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableAccuracy(v *float64) *WordProgressUpdateOne {
	if v != nil {
		_u.SetAccuracy(*v)
	}
	return _u
}

// AddAccuracy adds value to the "accuracy" field.
func (_u *WordProgressUpdateOne) AddAccuracy(v float64) *WordProgressUpdateOne {
	_u.mutation.AddAccuracy(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *WordProgressUpdateOne) SetLastReviewedAt(v time.Time) *WordProgressUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableLastReviewedAt(v *time.Time) *WordProgressUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// ClearLastReviewedAt clears the value of the "last_reviewed_at" field.
func (_u *WordProgressUpdateOne) ClearLastReviewedAt() *WordProgressUpdateOne {
	_u.mutation.ClearLastReviewedAt()
	return _u
}

// SetNextReviewDueAt sets the "next_review_due_at" field.
func (_u *WordProgressUpdateOne) SetNextReviewDueAt(v time.Time) *WordProgressUpdateOne {
	_u.mutation.SetNextReviewDueAt(v)
	return _u
}

// SetNillableNextReviewDueAt sets the "next_review_due_at" field if the given value is not nil.
func (_u *WordProgressUpdateOne) SetNillableNextReviewDueAt(v *time.Time) *WordProgressUpdateOne {
	if v != nil {
		_u.SetNextReviewDueAt(*v)
	}
	return _u
}

// ClearNextReviewDueAt clears the value of the "next_review_due_at" field.
func (_u *WordProgressUpdateOne) ClearNextReviewDueAt() *WordProgressUpdateOne {
	_u.mutation.ClearNextReviewDueAt()
	return _u
}

// Mutation returns the WordProgressMutation object of the builder.
func (_u *WordProgressUpdateOne) Mutation() *WordProgressMutation {
	return _u.mutation
}

// Where appends a list predicates to the WordProgressUpdate builder.
func (_u *WordProgressUpdateOne) Where(ps ...predicate.WordProgress) *WordProgressUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WordProgressUpdateOne) Select(field string, fields ...string) *WordProgressUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WordProgress entity.
func (_u *WordProgressUpdateOne) Save(ctx context.Context) (*WordProgress, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WordProgressUpdateOne) SaveX(ctx context.Context) *WordProgress {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WordProgressUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WordProgressUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WordProgressUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := wordprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WordProgress.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := wordprogress.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "WordProgress.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *WordProgressUpdateOne) sqlSave(ctx context.Context) (_node *WordProgress, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(wordprogress.Table, wordprogress.Columns, sqlgraph.NewFieldSpec(wordprogress.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WordProgress.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, wordprogress.FieldID)
		for _, f := range fields {
			if !wordprogress.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != wordprogress.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(wordprogress.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(wordprogress.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MasteryState(); ok {
		_spec.SetField(wordprogress.FieldMasteryState, field.TypeString, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(wordprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(wordprogress.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CorrectCount(); ok {
		_spec.SetField(wordprogress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrectCount(); ok {
		_spec.AddField(wordprogress.FieldCorrectCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Accuracy(); ok {
		_spec.SetField(wordprogress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAccuracy(); ok {
		_spec.AddField(wordprogress.FieldAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(wordprogress.FieldLastReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.LastReviewedAtCleared() {
		_spec.ClearField(wordprogress.FieldLastReviewedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.NextReviewDueAt(); ok {
		_spec.SetField(wordprogress.FieldNextReviewDueAt, field.TypeTime, value)
	}
	if _u.mutation.NextReviewDueAtCleared() {
		_spec.ClearField(wordprogress.FieldNextReviewDueAt, field.TypeTime)
	}
	_node = &WordProgress{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{wordprogress.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
