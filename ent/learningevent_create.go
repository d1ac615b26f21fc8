// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marchenko/lexrec/ent/learningevent"
)

// LearningEventCreate is the builder for creating a LearningEvent entity.
type LearningEventCreate struct {
	config
	mutation *LearningEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *LearningEventCreate) SetSequence(v int64) *LearningEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *LearningEventCreate) SetTimestamp(v time.Time) *LearningEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *LearningEventCreate) SetNillableTimestamp(v *time.Time) *LearningEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *LearningEventCreate) SetUserID(v string) *LearningEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *LearningEventCreate) SetWordID(v string) *LearningEventCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *LearningEventCreate) SetSessionID(v string) *LearningEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *LearningEventCreate) SetCorrect(v bool) *LearningEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetResponseTime sets the "response_time" field.
func (_c *LearningEventCreate) SetResponseTime(v float64) *LearningEventCreate {
	_c.mutation.SetResponseTime(v)
	return _c
}

// Mutation returns the LearningEventMutation object of the builder.
func (_c *LearningEventCreate) Mutation() *LearningEventMutation {
	return _c.mutation
}

// Save creates the LearningEvent in the database.
func (_c *LearningEventCreate) Save(ctx context.Context) (*LearningEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LearningEventCreate) SaveX(ctx context.Context) *LearningEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LearningEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := learningevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LearningEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "LearningEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "LearningEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "LearningEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := learningevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "LearningEvent.word_id"`)}
	}
	if v, ok := _c.mutation.WordID(); ok {
		if err := learningevent.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.word_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "LearningEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := learningevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "LearningEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "LearningEvent.correct"`)}
	}
	if _, ok := _c.mutation.ResponseTime(); !ok {
		return &ValidationError{Name: "response_time", err: errors.New(`ent: missing required field "LearningEvent.response_time"`)}
	}
	return nil
}

func (_c *LearningEventCreate) sqlSave(ctx context.Context) (*LearningEvent, error) {
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

func (_c *LearningEventCreate) createSpec() (*LearningEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &LearningEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(learningevent.Table, sqlgraph.NewFieldSpec(learningevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(learningevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(learningevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(learningevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(learningevent.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(learningevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(learningevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.ResponseTime(); ok {
		_spec.SetField(learningevent.FieldResponseTime, field.TypeFloat64, value)
		_node.ResponseTime = value
	}
	return _node, _spec
}

// LearningEventCreateBulk is the builder for creating many LearningEvent entities in bulk.
type LearningEventCreateBulk struct {
	config
	err      error
	builders []*LearningEventCreate
}

// Save creates the LearningEvent entities in the database.
func (_c *LearningEventCreateBulk) Save(ctx context.Context) ([]*LearningEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LearningEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LearningEventMutation)
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
func (_c *LearningEventCreateBulk) SaveX(ctx context.Context) []*LearningEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LearningEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LearningEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
