// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marchenko/lexrec/ent/learningevent"
	"github.com/marchenko/lexrec/ent/predicate"
)

// LearningEventUpdate is the builder for updating LearningEvent entities.
type LearningEventUpdate struct {
	config
	hooks    []Hook
	mutation *LearningEventMutation
}

// Where appends a list predicates to the LearningEventUpdate builder.
func (_u *LearningEventUpdate) Where(ps ...predicate.LearningEvent) *LearningEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *LearningEventUpdate) SetUserID(v string) *LearningEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableUserID(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *LearningEventUpdate) SetWordID(v string) *LearningEventUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableWordID(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LearningEventUpdate) SetSessionID(v string) *LearningEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableSessionID(v *string) *LearningEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *LearningEventUpdate) SetCorrect(v bool) *LearningEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableCorrect(v *bool) *LearningEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTime sets the "response_time" field.
func (_u *LearningEventUpdate) SetResponseTime(v float64) *LearningEventUpdate {
	_u.mutation.ResetResponseTime()
	_u.mutation.SetResponseTime(v)
	return _u
}

// SetNillableResponseTime sets the "response_time" field if the given value is not nil.
func (_u *LearningEventUpdate) SetNillableResponseTime(v *float64) *LearningEventUpdate {
	if v != nil {
		_u.SetResponseTime(*v)
	}
	return _u
}

// AddResponseTime adds value to the "response_time" field.
func (_u *LearningEventUpdate) AddResponseTime(v float64) *LearningEventUpdate {
	_u.mutation.AddResponseTime(v)
	return _u
}

// Mutation returns the LearningEventMutation object of the builder.
func (_u *LearningEventUpdate) Mutation() *LearningEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LearningEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LearningEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := learningevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.word_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := learningevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningevent.Table, learningevent.Columns, sqlgraph.NewFieldSpec(learningevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(learningevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(learningevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(learningevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(learningevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTime(); ok {
		_spec.SetField(learningevent.FieldResponseTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTime(); ok {
		_spec.AddField(learningevent.FieldResponseTime, field.TypeFloat64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LearningEventUpdateOne is the builder for updating a single LearningEvent entity.
type LearningEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LearningEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *LearningEventUpdateOne) SetUserID(v string) *LearningEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableUserID(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *LearningEventUpdateOne) SetWordID(v string) *LearningEventUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableWordID(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *LearningEventUpdateOne) SetSessionID(v string) *LearningEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableSessionID(v *string) *LearningEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *LearningEventUpdateOne) SetCorrect(v bool) *LearningEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableCorrect(v *bool) *LearningEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetResponseTime sets the "response_time" field.
func (_u *LearningEventUpdateOne) SetResponseTime(v float64) *LearningEventUpdateOne {
	_u.mutation.ResetResponseTime()
	_u.mutation.SetResponseTime(v)
	return _u
}

// SetNillableResponseTime sets the "response_time" field if the given value is not nil.
func (_u *LearningEventUpdateOne) SetNillableResponseTime(v *float64) *LearningEventUpdateOne {
	if v != nil {
		_u.SetResponseTime(*v)
	}
	return _u
}

// AddResponseTime adds value to the "response_time" field.
func (_u *LearningEventUpdateOne) AddResponseTime(v float64) *LearningEventUpdateOne {
	_u.mutation.AddResponseTime(v)
	return _u
}

// Mutation returns the LearningEventMutation object of the builder.
func (_u *LearningEventUpdateOne) Mutation() *LearningEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the LearningEventUpdate builder.
func (_u *LearningEventUpdateOne) Where(ps ...predicate.LearningEvent) *LearningEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LearningEventUpdateOne) Select(field string, fields ...string) *LearningEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LearningEvent entity.
func (_u *LearningEventUpdateOne) Save(ctx context.Context) (*LearningEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LearningEventUpdateOne) SaveX(ctx context.Context) *LearningEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LearningEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LearningEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LearningEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := learningevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := learningevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.word_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SessionID(); ok {
		if err := learningevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.session_id": %w`, err)}
		}
	}
	return nil
}

func (_u *LearningEventUpdateOne) sqlSave(ctx context.Context) (_node *LearningEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(learningevent.Table, learningevent.Columns, sqlgraph.NewFieldSpec(learningevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LearningEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, learningevent.FieldID)
		for _, f := range fields {
			if !learningevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != learningevent.FieldID {
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
		_spec.SetField(learningevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(learningevent.FieldWordID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(learningevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(learningevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ResponseTime(); ok {
		_spec.SetField(learningevent.FieldResponseTime, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedResponseTime(); ok {
		_spec.AddField(learningevent.FieldResponseTime, field.TypeFloat64, value)
	}
	_node = &LearningEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{learningevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
