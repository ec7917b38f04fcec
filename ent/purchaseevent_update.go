// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/starpathlabs/starpath/ent/predicate"
	"github.com/starpathlabs/starpath/ent/purchaseevent"
)

// PurchaseEventUpdate is the builder for updating PurchaseEvent entities.
type PurchaseEventUpdate struct {
	config
	hooks    []Hook
	mutation *PurchaseEventMutation
}

// Where appends a list predicates to the PurchaseEventUpdate builder.
func (_u *PurchaseEventUpdate) Where(ps ...predicate.PurchaseEvent) *PurchaseEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCosmeticID sets the "cosmetic_id" field.
func (_u *PurchaseEventUpdate) SetCosmeticID(v string) *PurchaseEventUpdate {
	_u.mutation.SetCosmeticID(v)
	return _u
}

// SetNillableCosmeticID sets the "cosmetic_id" field if the given value is not nil.
func (_u *PurchaseEventUpdate) SetNillableCosmeticID(v *string) *PurchaseEventUpdate {
	if v != nil {
		_u.SetCosmeticID(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PurchaseEventUpdate) SetPrice(v int) *PurchaseEventUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PurchaseEventUpdate) SetNillablePrice(v *int) *PurchaseEventUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PurchaseEventUpdate) AddPrice(v int) *PurchaseEventUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// Mutation returns the PurchaseEventMutation object of the builder.
func (_u *PurchaseEventUpdate) Mutation() *PurchaseEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PurchaseEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PurchaseEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseEventUpdate) check() error {
	if v, ok := _u.mutation.CosmeticID(); ok {
		if err := purchaseevent.CosmeticIDValidator(v); err != nil {
			return &ValidationError{Name: "cosmetic_id", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.cosmetic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PurchaseEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseevent.Table, purchaseevent.Columns, sqlgraph.NewFieldSpec(purchaseevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CosmeticID(); ok {
		_spec.SetField(purchaseevent.FieldCosmeticID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(purchaseevent.FieldPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(purchaseevent.FieldPrice, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PurchaseEventUpdateOne is the builder for updating a single PurchaseEvent entity.
type PurchaseEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PurchaseEventMutation
}

// SetCosmeticID sets the "cosmetic_id" field.
func (_u *PurchaseEventUpdateOne) SetCosmeticID(v string) *PurchaseEventUpdateOne {
	_u.mutation.SetCosmeticID(v)
	return _u
}

// SetNillableCosmeticID sets the "cosmetic_id" field if the given value is not nil.
func (_u *PurchaseEventUpdateOne) SetNillableCosmeticID(v *string) *PurchaseEventUpdateOne {
	if v != nil {
		_u.SetCosmeticID(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *PurchaseEventUpdateOne) SetPrice(v int) *PurchaseEventUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *PurchaseEventUpdateOne) SetNillablePrice(v *int) *PurchaseEventUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *PurchaseEventUpdateOne) AddPrice(v int) *PurchaseEventUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// Mutation returns the PurchaseEventMutation object of the builder.
func (_u *PurchaseEventUpdateOne) Mutation() *PurchaseEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PurchaseEventUpdate builder.
func (_u *PurchaseEventUpdateOne) Where(ps ...predicate.PurchaseEvent) *PurchaseEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PurchaseEventUpdateOne) Select(field string, fields ...string) *PurchaseEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PurchaseEvent entity.
func (_u *PurchaseEventUpdateOne) Save(ctx context.Context) (*PurchaseEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseEventUpdateOne) SaveX(ctx context.Context) *PurchaseEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PurchaseEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseEventUpdateOne) check() error {
	if v, ok := _u.mutation.CosmeticID(); ok {
		if err := purchaseevent.CosmeticIDValidator(v); err != nil {
			return &ValidationError{Name: "cosmetic_id", err: fmt.Errorf(`ent: validator failed for field "PurchaseEvent.cosmetic_id": %w`, err)}
		}
	}
	return nil
}

func (_u *PurchaseEventUpdateOne) sqlSave(ctx context.Context) (_node *PurchaseEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaseevent.Table, purchaseevent.Columns, sqlgraph.NewFieldSpec(purchaseevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PurchaseEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, purchaseevent.FieldID)
		for _, f := range fields {
			if !purchaseevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != purchaseevent.FieldID {
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
	if value, ok := _u.mutation.CosmeticID(); ok {
		_spec.SetField(purchaseevent.FieldCosmeticID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(purchaseevent.FieldPrice, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(purchaseevent.FieldPrice, field.TypeInt, value)
	}
	_node = &PurchaseEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaseevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
