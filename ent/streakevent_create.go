// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/starpathlabs/starpath/ent/streakevent"
)

// StreakEventCreate is the builder for creating a StreakEvent entity.
type StreakEventCreate struct {
	config
	mutation *StreakEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *StreakEventCreate) SetSequence(v int64) *StreakEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *StreakEventCreate) SetTimestamp(v time.Time) *StreakEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *StreakEventCreate) SetNillableTimestamp(v *time.Time) *StreakEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetAction sets the "action" field.
func (_c *StreakEventCreate) SetAction(v string) *StreakEventCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetCount sets the "count" field.
func (_c *StreakEventCreate) SetCount(v int) *StreakEventCreate {
	_c.mutation.SetCount(v)
	return _c
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_c *StreakEventCreate) SetNillableCount(v *int) *StreakEventCreate {
	if v != nil {
		_c.SetCount(*v)
	}
	return _c
}

// SetMilestone sets the "milestone" field.
func (_c *StreakEventCreate) SetMilestone(v int) *StreakEventCreate {
	_c.mutation.SetMilestone(v)
	return _c
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_c *StreakEventCreate) SetNillableMilestone(v *int) *StreakEventCreate {
	if v != nil {
		_c.SetMilestone(*v)
	}
	return _c
}

// Mutation returns the StreakEventMutation object of the builder.
func (_c *StreakEventCreate) Mutation() *StreakEventMutation {
	return _c.mutation
}

// Save creates the StreakEvent in the database.
func (_c *StreakEventCreate) Save(ctx context.Context) (*StreakEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StreakEventCreate) SaveX(ctx context.Context) *StreakEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StreakEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := streakevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.Count(); !ok {
		v := streakevent.DefaultCount
		_c.mutation.SetCount(v)
	}
	if _, ok := _c.mutation.Milestone(); !ok {
		v := streakevent.DefaultMilestone
		_c.mutation.SetMilestone(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StreakEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "StreakEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "StreakEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "StreakEvent.action"`)}
	}
	if v, ok := _c.mutation.Action(); ok {
		if err := streakevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "StreakEvent.action": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Count(); !ok {
		return &ValidationError{Name: "count", err: errors.New(`ent: missing required field "StreakEvent.count"`)}
	}
	if _, ok := _c.mutation.Milestone(); !ok {
		return &ValidationError{Name: "milestone", err: errors.New(`ent: missing required field "StreakEvent.milestone"`)}
	}
	return nil
}

func (_c *StreakEventCreate) sqlSave(ctx context.Context) (*StreakEvent, error) {
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

func (_c *StreakEventCreate) createSpec() (*StreakEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &StreakEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(streakevent.Table, sqlgraph.NewFieldSpec(streakevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(streakevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(streakevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(streakevent.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.Count(); ok {
		_spec.SetField(streakevent.FieldCount, field.TypeInt, value)
		_node.Count = value
	}
	if value, ok := _c.mutation.Milestone(); ok {
		_spec.SetField(streakevent.FieldMilestone, field.TypeInt, value)
		_node.Milestone = value
	}
	return _node, _spec
}

// StreakEventCreateBulk is the builder for creating many StreakEvent entities in bulk.
type StreakEventCreateBulk struct {
	config
	err      error
	builders []*StreakEventCreate
}

// Save creates the StreakEvent entities in the database.
func (_c *StreakEventCreateBulk) Save(ctx context.Context) ([]*StreakEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StreakEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StreakEventMutation)
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
func (_c *StreakEventCreateBulk) SaveX(ctx context.Context) []*StreakEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StreakEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StreakEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
