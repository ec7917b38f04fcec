// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/starpathlabs/starpath/ent/completionevent"
	"github.com/starpathlabs/starpath/ent/predicate"
)

// CompletionEventUpdate is the builder for updating CompletionEvent entities.
type CompletionEventUpdate struct {
	config
	hooks    []Hook
	mutation *CompletionEventMutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdate) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *CompletionEventUpdate) SetModuleID(v string) *CompletionEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableModuleID(v *string) *CompletionEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetGalaxyID sets the "galaxy_id" field.
func (_u *CompletionEventUpdate) SetGalaxyID(v int) *CompletionEventUpdate {
	_u.mutation.ResetGalaxyID()
	_u.mutation.SetGalaxyID(v)
	return _u
}

// SetNillableGalaxyID sets the "galaxy_id" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableGalaxyID(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetGalaxyID(*v)
	}
	return _u
}

// AddGalaxyID adds value to the "galaxy_id" field.
func (_u *CompletionEventUpdate) AddGalaxyID(v int) *CompletionEventUpdate {
	_u.mutation.AddGalaxyID(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *CompletionEventUpdate) SetXpAwarded(v int) *CompletionEventUpdate {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableXpAwarded(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *CompletionEventUpdate) AddXpAwarded(v int) *CompletionEventUpdate {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetTokensQueued sets the "tokens_queued" field.
func (_u *CompletionEventUpdate) SetTokensQueued(v int) *CompletionEventUpdate {
	_u.mutation.ResetTokensQueued()
	_u.mutation.SetTokensQueued(v)
	return _u
}

// SetNillableTokensQueued sets the "tokens_queued" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableTokensQueued(v *int) *CompletionEventUpdate {
	if v != nil {
		_u.SetTokensQueued(*v)
	}
	return _u
}

// AddTokensQueued adds value to the "tokens_queued" field.
func (_u *CompletionEventUpdate) AddTokensQueued(v int) *CompletionEventUpdate {
	_u.mutation.AddTokensQueued(v)
	return _u
}

// SetSynced sets the "synced" field.
func (_u *CompletionEventUpdate) SetSynced(v bool) *CompletionEventUpdate {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *CompletionEventUpdate) SetNillableSynced(v *bool) *CompletionEventUpdate {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdate) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompletionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompletionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdate) check() error {
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := completionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(completionevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GalaxyID(); ok {
		_spec.SetField(completionevent.FieldGalaxyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGalaxyID(); ok {
		_spec.AddField(completionevent.FieldGalaxyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(completionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(completionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensQueued(); ok {
		_spec.SetField(completionevent.FieldTokensQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensQueued(); ok {
		_spec.AddField(completionevent.FieldTokensQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(completionevent.FieldSynced, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompletionEventUpdateOne is the builder for updating a single CompletionEvent entity.
type CompletionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompletionEventMutation
}

// SetModuleID sets the "module_id" field.
func (_u *CompletionEventUpdateOne) SetModuleID(v string) *CompletionEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableModuleID(v *string) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetGalaxyID sets the "galaxy_id" field.
func (_u *CompletionEventUpdateOne) SetGalaxyID(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetGalaxyID()
	_u.mutation.SetGalaxyID(v)
	return _u
}

// SetNillableGalaxyID sets the "galaxy_id" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableGalaxyID(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetGalaxyID(*v)
	}
	return _u
}

// AddGalaxyID adds value to the "galaxy_id" field.
func (_u *CompletionEventUpdateOne) AddGalaxyID(v int) *CompletionEventUpdateOne {
	_u.mutation.AddGalaxyID(v)
	return _u
}

// SetXpAwarded sets the "xp_awarded" field.
func (_u *CompletionEventUpdateOne) SetXpAwarded(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetXpAwarded()
	_u.mutation.SetXpAwarded(v)
	return _u
}

// SetNillableXpAwarded sets the "xp_awarded" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableXpAwarded(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetXpAwarded(*v)
	}
	return _u
}

// AddXpAwarded adds value to the "xp_awarded" field.
func (_u *CompletionEventUpdateOne) AddXpAwarded(v int) *CompletionEventUpdateOne {
	_u.mutation.AddXpAwarded(v)
	return _u
}

// SetTokensQueued sets the "tokens_queued" field.
func (_u *CompletionEventUpdateOne) SetTokensQueued(v int) *CompletionEventUpdateOne {
	_u.mutation.ResetTokensQueued()
	_u.mutation.SetTokensQueued(v)
	return _u
}

// SetNillableTokensQueued sets the "tokens_queued" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableTokensQueued(v *int) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetTokensQueued(*v)
	}
	return _u
}

// AddTokensQueued adds value to the "tokens_queued" field.
func (_u *CompletionEventUpdateOne) AddTokensQueued(v int) *CompletionEventUpdateOne {
	_u.mutation.AddTokensQueued(v)
	return _u
}

// SetSynced sets the "synced" field.
func (_u *CompletionEventUpdateOne) SetSynced(v bool) *CompletionEventUpdateOne {
	_u.mutation.SetSynced(v)
	return _u
}

// SetNillableSynced sets the "synced" field if the given value is not nil.
func (_u *CompletionEventUpdateOne) SetNillableSynced(v *bool) *CompletionEventUpdateOne {
	if v != nil {
		_u.SetSynced(*v)
	}
	return _u
}

// Mutation returns the CompletionEventMutation object of the builder.
func (_u *CompletionEventUpdateOne) Mutation() *CompletionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompletionEventUpdate builder.
func (_u *CompletionEventUpdateOne) Where(ps ...predicate.CompletionEvent) *CompletionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompletionEventUpdateOne) Select(field string, fields ...string) *CompletionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompletionEvent entity.
func (_u *CompletionEventUpdateOne) Save(ctx context.Context) (*CompletionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) SaveX(ctx context.Context) *CompletionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompletionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompletionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompletionEventUpdateOne) check() error {
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := completionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "CompletionEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *CompletionEventUpdateOne) sqlSave(ctx context.Context) (_node *CompletionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(completionevent.Table, completionevent.Columns, sqlgraph.NewFieldSpec(completionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompletionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, completionevent.FieldID)
		for _, f := range fields {
			if !completionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != completionevent.FieldID {
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
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(completionevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GalaxyID(); ok {
		_spec.SetField(completionevent.FieldGalaxyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGalaxyID(); ok {
		_spec.AddField(completionevent.FieldGalaxyID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.XpAwarded(); ok {
		_spec.SetField(completionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedXpAwarded(); ok {
		_spec.AddField(completionevent.FieldXpAwarded, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TokensQueued(); ok {
		_spec.SetField(completionevent.FieldTokensQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTokensQueued(); ok {
		_spec.AddField(completionevent.FieldTokensQueued, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Synced(); ok {
		_spec.SetField(completionevent.FieldSynced, field.TypeBool, value)
	}
	_node = &CompletionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{completionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
