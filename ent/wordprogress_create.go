// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/marchenko/lexrec/ent/wordprogress"
)

// WordProgressCreate is the builder for creating a WordProgress entity.
type WordProgressCreate struct {
	config
	mutation *WordProgressMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *WordProgressCreate) SetUserID(v string) *WordProgressCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetWordID sets the "word_id" field.
func (_c *WordProgressCreate) SetWordID(v string) *WordProgressCreate {
	_c.mutation.SetWordID(v)
	return _c
}

// SetMasteryState sets the "mastery_state" field.
func (_c *WordProgressCreate) SetMasteryState(v string) *WordProgressCreate {
	_c.mutation.SetMasteryState(v)
	return _c
}

// SetNillableMasteryState sets the "mastery_state" field if the given value is not nil.
func (_c *WordProgressCreate) SetNillableMasteryState(v *string) *WordProgressCreate {
	if v != nil {
		_c.SetMasteryState(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *WordProgressCreate) SetReviewCount(v int) *WordProgressCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *WordProgressCreate) SetNillableReviewCount(v *int) *WordProgressCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetCorrectCount sets the "correct_count" field.
func (_c *WordProgressCreate) SetCorrectCount(v int) *WordProgressCreate {
	_c.mutation.SetCorrectCount(v)
	return _c
}

// SetNillableCorrectCount sets the "correct_count" field if the given value is not nil.
func (_c *WordProgressCreate) SetNillableCorrectCount(v *int) *WordProgressCreate {
	if v != nil {
		_c.SetCorrectCount(*v)
	}
	return _c
}

// SetAccuracy sets the "accuracy" field.
func (_c *WordProgressCreate) SetAccuracy(v float64) *WordProgressCreate {
	_c.mutation.SetAccuracy(v)
	return _c
}

// SetNillableAccuracy sets the "accuracy" field if the given value is not nil.
func (_c *WordProgressCreate) SetNillableAccuracy(v *float64) *WordProgressCreate {
	if v != nil {
		_c.SetAccuracy(*v)
	}
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *WordProgressCreate) SetLastReviewedAt(v time.Time) *WordProgressCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_c *WordProgressCreate) SetNillableLastReviewedAt(v *time.Time) *WordProgressCreate {
	if v != nil {
		_c.SetLastReviewedAt(*v)
	}
	return _c
}

// SetNextReviewDueAt sets the "next_review_due_at" field.
func (_c *WordProgressCreate) SetNextReviewDueAt(v time.Time) *WordProgressCreate {
	_c.mutation.SetNextReviewDueAt(v)
	return _c
}

// SetNillableNextReviewDueAt sets the "next_review_due_at" field if the given value is not nil.
func (_c *WordProgressCreate) SetNillableNextReviewDueAt(v *time.Time) *WordProgressCreate {
	if v != nil {
		_c.SetNextReviewDueAt(*v)
	}
	return _c
}

// Mutation returns the WordProgressMutation object of the builder.
func (_c *WordProgressCreate) Mutation() *WordProgressMutation {
	return _c.mutation
}

// Save creates the WordProgress in the database.
func (_c *WordProgressCreate) Save(ctx context.Context) (*WordProgress, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WordProgressCreate) SaveX(ctx context.Context) *WordProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordProgressCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordProgressCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WordProgressCreate) defaults() {
	if _, ok := _c.mutation.MasteryState(); !ok {
		v := wordprogress.DefaultMasteryState
		_c.mutation.SetMasteryState(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := wordprogress.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		v := wordprogress.DefaultCorrectCount
		_c.mutation.SetCorrectCount(v)
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		v := wordprogress.DefaultAccuracy
		_c.mutation.SetAccuracy(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WordProgressCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "WordProgress.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := wordprogress.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "WordProgress.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WordID(); !ok {
		return &ValidationError{Name: "word_id", err: errors.New(`ent: missing required field "WordProgress.word_id"`)}
	}
	if v, ok := _c.mutation.WordID(); ok {
		if err := wordprogress.WordIDValidator(v); err != nil {
			return &ValidationError{Name: "word_id", err: fmt.Errorf(`ent: validator failed for field "WordProgress.word_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MasteryState(); !ok {
		return &ValidationError{Name: "mastery_state", err: errors.New(`ent: missing required field "WordProgress.mastery_state"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "WordProgress.review_count"`)}
	}
	if _, ok := _c.mutation.CorrectCount(); !ok {
		return &ValidationError{Name: "correct_count", err: errors.New(`ent: missing required field "WordProgress.correct_count"`)}
	}
	if _, ok := _c.mutation.Accuracy(); !ok {
		return &ValidationError{Name: "accuracy", err: errors.New(`ent: missing required field "WordProgress.accuracy"`)}
	}
	return nil
}

func (_c *WordProgressCreate) sqlSave(ctx context.Context) (*WordProgress, error) {
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

func (_c *WordProgressCreate) createSpec() (*WordProgress, *sqlgraph.CreateSpec) {
	var (
		_node = &WordProgress{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(wordprogress.Table, sqlgraph.NewFieldSpec(wordprogress.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(wordprogress.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.WordID(); ok {
		_spec.SetField(wordprogress.FieldWordID, field.TypeString, value)
		_node.WordID = value
	}
	if value, ok := _c.mutation.MasteryState(); ok {
		_spec.SetField(wordprogress.FieldMasteryState, field.TypeString, value)
		_node.MasteryState = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(wordprogress.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.CorrectCount(); ok {
		_spec.SetField(wordprogress.FieldCorrectCount, field.TypeInt, value)
		_node.CorrectCount = value
	}
	if value, ok := _c.mutation.Accuracy(); ok {
		_spec.SetField(wordprogress.FieldAccuracy, field.TypeFloat64, value)
		_node.Accuracy = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(wordprogress.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = &value
	}
	if value, ok := _c.mutation.NextReviewDueAt(); ok {
		_spec.SetField(wordprogress.FieldNextReviewDueAt, field.TypeTime, value)
		_node.NextReviewDueAt = &value
	}
	return _node, _spec
}

// WordProgressCreateBulk is the builder for creating many WordProgress entities in bulk.
type WordProgressCreateBulk struct {
	config
	err      error
	builders []*WordProgressCreate
}

// Save creates the WordProgress entities in the database.
func (_c *WordProgressCreateBulk) Save(ctx context.Context) ([]*WordProgress, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WordProgress, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WordProgressMutation)
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
func (_c *WordProgressCreateBulk) SaveX(ctx context.Context) []*WordProgress {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WordProgressCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WordProgressCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
