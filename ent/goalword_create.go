// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marchenko/lexrec/ent/goalword"
)

// GoalWordCreate is the builder for creating a GoalWord entity.
type GoalWordCreate struct {
	config
	mutation *GoalWordMutation
	hooks    []Hook
}

// SetGoalID sets the "goal_id" field.
func (_c *GoalWordCreate) SetGoalID(v string) *GoalWordCreate {
	_c.mutation.SetGoalID(v)
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *GoalWordCreate) SetWordID(v string) *GoalWordCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// Mutation returns the GoalWordMutation object of the builder.
func (_c *GoalWordCreate) Mutation() *GoalWordMutation {
	return _c.mutation
}

// Save creates the GoalWord in the database.
func (_c *GoalWordCreate) Save(ctx context.Context) (*GoalWord, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GoalWordCreate) SaveX(ctx context.Context) *GoalWord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalWordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalWordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GoalWordCreate) check() error {
	if _, ok := _c.mutation.GoalID(); !ok {
		return &ValidationError{Name: "goal_id", err: errors.New(`ent: missing required field "GoalWord.goal_id"`)}
	}
	if v, ok := _c.mutation.GoalID(); ok {
		if err := goalword.GoalIDValidator(v); err != nil {
			return &ValidationError{Name: "goal_id", err: fmt.Errorf(`ent: validator failed for field "GoalWord.goal_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "GoalWord.word_id"`)}
	}
	if v, ok := _c.mutation.WordID(); ok {
		if err := goalword.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "GoalWord.word_id": %w`, err)}
		}
	}
	return nil
}

func (_c *GoalWordCreate) sqlSave(ctx context.Context) (*GoalWord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GoalWordCreate) createSpec() (*GoalWord, *sqlgraph.CreateSpec) {
	var (
		_node = &GoalWord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(goalword.Table, sqlgraph.NewFieldSpec(goalword.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.GoalID(); ok {
		_spec.SetField(goalword.FieldGoalID, field.TypeString, value)
		_node.GoalID = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(goalword.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	return _node, _spec
}

// GoalWordCreateBulk is the builder for creating many GoalWord entities in bulk.
type GoalWordCreateBulk struct {
	config
	err      error
	builders []*GoalWordCreate
}

// Save creates the GoalWord entities in the database.
func (_c *GoalWordCreateBulk) Save(ctx context.Context) ([]*GoalWord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GoalWord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GoalWordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GoalWordCreateBulk) SaveX(ctx context.Context) []*GoalWord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GoalWordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GoalWordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
