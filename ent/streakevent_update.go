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
	"github.com/starpathlabs/starpath/ent/streakevent"
)

// StreakEventUpdate is the builder for updating StreakEvent entities.
type StreakEventUpdate struct {
	config
	hooks    []Hook
	mutation *StreakEventMutation
}

// Where appends a list predicates to the StreakEventUpdate builder.
func (_u *StreakEventUpdate) Where(ps ...predicate.StreakEvent) *StreakEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *StreakEventUpdate) SetAction(v string) *StreakEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *StreakEventUpdate) SetNillableAction(v *string) *StreakEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *StreakEventUpdate) SetCount(v int) *StreakEventUpdate {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *StreakEventUpdate) SetNillableCount(v *int) *StreakEventUpdate {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *StreakEventUpdate) AddCount(v int) *StreakEventUpdate {
	_u.mutation.AddCount(v)
	return _u
}

// SetMilestone sets the "milestone" field.
func (_u *StreakEventUpdate) SetMilestone(v int) *StreakEventUpdate {
	_u.mutation.ResetMilestone()
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *StreakEventUpdate) SetNillableMilestone(v *int) *StreakEventUpdate {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// AddMilestone adds value to the "milestone" field.
func (_u *StreakEventUpdate) AddMilestone(v int) *StreakEventUpdate {
	_u.mutation.AddMilestone(v)
	return _u
}

// Mutation returns the StreakEventMutation object of the builder.
func (_u *StreakEventUpdate) Mutation() *StreakEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StreakEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StreakEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreakEventUpdate) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := streakevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "StreakEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *StreakEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streakevent.Table, streakevent.Columns, sqlgraph.NewFieldSpec(streakevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(streakevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(streakevent.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(streakevent.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(streakevent.FieldMilestone, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMilestone(); ok {
		_spec.AddField(streakevent.FieldMilestone, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StreakEventUpdateOne is the builder for updating a single StreakEvent entity.
type StreakEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StreakEventMutation
}

// SetAction sets the "action" field.
func (_u *StreakEventUpdateOne) SetAction(v string) *StreakEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *StreakEventUpdateOne) SetNillableAction(v *string) *StreakEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetCount sets the "count" field.
func (_u *StreakEventUpdateOne) SetCount(v int) *StreakEventUpdateOne {
	_u.mutation.ResetCount()
	_u.mutation.SetCount(v)
	return _u
}

// SetNillableCount sets the "count" field if the given value is not nil.
func (_u *StreakEventUpdateOne) SetNillableCount(v *int) *StreakEventUpdateOne {
	if v != nil {
		_u.SetCount(*v)
	}
	return _u
}

// AddCount adds value to the "count" field.
func (_u *StreakEventUpdateOne) AddCount(v int) *StreakEventUpdateOne {
	_u.mutation.AddCount(v)
	return _u
}

// SetMilestone sets the "milestone" field.
func (_u *StreakEventUpdateOne) SetMilestone(v int) *StreakEventUpdateOne {
	_u.mutation.ResetMilestone()
	_u.mutation.SetMilestone(v)
	return _u
}

// SetNillableMilestone sets the "milestone" field if the given value is not nil.
func (_u *StreakEventUpdateOne) SetNillableMilestone(v *int) *StreakEventUpdateOne {
	if v != nil {
		_u.SetMilestone(*v)
	}
	return _u
}

// AddMilestone adds value to the "milestone" field.
func (_u *StreakEventUpdateOne) AddMilestone(v int) *StreakEventUpdateOne {
	_u.mutation.AddMilestone(v)
	return _u
}

// Mutation returns the StreakEventMutation object of the builder.
func (_u *StreakEventUpdateOne) Mutation() *StreakEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the StreakEventUpdate builder.
func (_u *StreakEventUpdateOne) Where(ps ...predicate.StreakEvent) *StreakEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StreakEventUpdateOne) Select(field string, fields ...string) *StreakEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StreakEvent entity.
func (_u *StreakEventUpdateOne) Save(ctx context.Context) (*StreakEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StreakEventUpdateOne) SaveX(ctx context.Context) *StreakEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StreakEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StreakEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StreakEventUpdateOne) check() error {
	if v, ok := _u.mutation.Action(); ok {
		if err := streakevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "StreakEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *StreakEventUpdateOne) sqlSave(ctx context.Context) (_node *StreakEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(streakevent.Table, streakevent.Columns, sqlgraph.NewFieldSpec(streakevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StreakEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, streakevent.FieldID)
		for _, f := range fields {
			if !streakevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != streakevent.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(streakevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.Count(); ok {
		_spec.SetField(streakevent.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCount(); ok {
		_spec.AddField(streakevent.FieldCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Milestone(); ok {
		_spec.SetField(streakevent.FieldMilestone, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMilestone(); ok {
		_spec.AddField(streakevent.FieldMilestone, field.TypeInt, value)
	}
	_node = &StreakEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{streakevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
