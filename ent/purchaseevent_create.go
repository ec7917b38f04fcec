// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/starpathlabs/starpath/ent/purchaseevent"
)

// PurchaseEventCreate is the builder for creating a PurchaseEvent entity.
type PurchaseEventCreate struct {
	config
	mutation *PurchaseEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PurchaseEventCreate) SetSequence(v int64) *PurchaseEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PurchaseEventCreate) SetTimestamp(v time.Time) *PurchaseEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PurchaseEventCreate) SetNillableTimestamp(v *time.Time) *PurchaseEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetCosmeticID sets the "cosmetic_id" field.
func (_c *PurchaseEventCreate) SetCosmeticID(v string) *PurchaseEventCreate {
	_c.mutation.SetCosmeticID(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *PurchaseEventCreate) SetPrice(v int) *PurchaseEventCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// Mutation returns the PurchaseEventMutation object of the builder.
func (_c *PurchaseEventCreate) Mutation() *PurchaseEventMutation {
	return _c.mutation
}

// Save creates the PurchaseEvent in the database.
func (_c *PurchaseEventCreate) Save(ctx context.Context) (*PurchaseEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PurchaseEventCreate) SaveX(ctx context.Context) *PurchaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PurchaseEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := purchaseevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PurchaseEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PurchaseEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PurchaseEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.CosmeticID(); !ok {
		return &ValidationError{Name: "cosmetic_id", err: errors.New(`ent: missing required field "PurchaseEvent.cosmetic_id"`)}
	}
	if v, ok := _c.mutation.CosmeticID(); ok {
		if err := purchaseevent.CosmeticIDValidator(v); err != nil {
			return &ValidationError{Name: "cosmetic_id", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.cosmetic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Price(); !ok {
		return &ValidationError{Name: "price", err: errors.New(`ent: missing required field "PurchaseEvent.price"`)}
	}
	return nil
}

func (_c *PurchaseEventCreate) sqlSave(ctx context.Context) (*PurchaseEvent, error) {
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

func (_c *PurchaseEventCreate) createSpec() (*PurchaseEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PurchaseEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(purchaseevent.Table, sqlgraph.NewFieldSpec(purchaseevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(purchaseevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(purchaseevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.CosmeticID(); ok {
		_spec.SetField(purchaseevent.FieldCosmeticID, field.TypeString, value)
		_node.CosmeticID = value
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(purchaseevent.FieldPrice, field.TypeInt, value)
		_node.Price = value
	}
	return _node, _spec
}

// PurchaseEventCreateBulk is the builder for creating many PurchaseEvent entities in bulk.
type PurchaseEventCreateBulk struct {
	config
	err      error
	builders []*PurchaseEventCreate
}

// Save creates the PurchaseEvent entities in the database.
func (_c *PurchaseEventCreateBulk) Save(ctx context.Context) ([]*PurchaseEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PurchaseEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PurchaseEventMutation)
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
func (_c *PurchaseEventCreateBulk) SaveX(ctx context.Context) []*PurchaseEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
