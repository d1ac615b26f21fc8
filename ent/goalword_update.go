// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marchenko/lexrec/ent/goalword"
	"github.com/marchenko/lexrec/ent/predicate"
)

// GoalWordUpdate is the builder for updating GoalWord entities.
type GoalWordUpdate struct {
	config
	hooks    []Hook
	mutation *GoalWordMutation
}

// Where appends a list predicates to the GoalWordUpdate builder.
func (_u *GoalWordUpdate) Where(ps ...predicate.GoalWord) *GoalWordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetGoalID sets the "goal_id" field.
func (_u *GoalWordUpdate) SetGoalID(v string) *GoalWordUpdate {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *GoalWordUpdate) SetNillableGoalID(v *string) *GoalWordUpdate {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *GoalWordUpdate) SetWordID(v string) *GoalWordUpdate {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *GoalWordUpdate) SetNillableWordID(v *string) *GoalWordUpdate {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// Mutation returns the GoalWordMutation object of the builder.
func (_u *GoalWordUpdate) Mutation() *GoalWordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GoalWordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalWordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GoalWordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalWordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalWordUpdate) check() error {
	if v, ok := _u.mutation.GoalID(); ok {
		if err := goalword.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "GoalWord.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := goalword.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "GoalWord.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalWordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goalword.Table, goalword.Columns, sqlgraph.NewFieldSpec(goalword.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(goalword.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(goalword.FieldWordID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goalword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GoalWordUpdateOne is the builder for updating a single GoalWord entity.
type GoalWordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GoalWordMutation
}

// SetGoalID sets the "goal_id" field.
func (_u *GoalWordUpdateOne) SetGoalID(v string) *GoalWordUpdateOne {
	_u.mutation.SetGoalID(v)
	return _u
}

// SetNillableGoalID sets the "goal_id" field if the given value is not nil.
func (_u *GoalWordUpdateOne) SetNillableGoalID(v *string) *GoalWordUpdateOne {
	if v != nil {
		_u.SetGoalID(*v)
	}
	return _u
}

// SetWordID sets the "word_id" field.
func (_u *GoalWordUpdateOne) SetWordID(v string) *GoalWordUpdateOne {
	_u.mutation.SetWordID(v)
	return _u
}

// SetNillableWordID sets the "word_id" field if the given value is not nil.
func (_u *GoalWordUpdateOne) SetNillableWordID(v *string) *GoalWordUpdateOne {
	if v != nil {
		_u.SetWordID(*v)
	}
	return _u
}

// Mutation returns the GoalWordMutation object of the builder.
func (_u *GoalWordUpdateOne) Mutation() *GoalWordMutation {
	return _u.mutation
}

// Where appends a list predicates to the GoalWordUpdate builder.
func (_u *GoalWordUpdateOne) Where(ps ...predicate.GoalWord) *GoalWordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GoalWordUpdateOne) Select(field string, fields ...string) *GoalWordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GoalWord entity.
func (_u *GoalWordUpdateOne) Save(ctx context.Context) (*GoalWord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GoalWordUpdateOne) SaveX(ctx context.Context) *GoalWord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GoalWordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GoalWordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GoalWordUpdateOne) check() error {
	if v, ok := _u.mutation.GoalID(); ok {
		if err := goalword.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "GoalWord.goal_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WordID(); ok {
		if err := goalword.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "GoalWord.word_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GoalWordUpdateOne) sqlSave(ctx context.Context) (_node *GoalWord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(goalword.Table, goalword.Columns, sqlgraph.NewFieldSpec(goalword.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GoalWord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, goalword.FieldID)
		for _, f := range fields {
			if !goalword.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != goalword.FieldID {
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
	if value, ok := _u.mutation.GoalID(); ok {
		_spec.SetField(goalword.FieldGoalID, field.TypeString, value)
	}
	if value, ok := _u.mutation.WordID(); ok {
		_spec.SetField(goalword.FieldWordID, field.TypeString, value)
	}
	_node = &GoalWord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{goalword.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
