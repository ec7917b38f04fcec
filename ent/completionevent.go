// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/starpathlabs/starpath/ent/completionevent"
)

// CompletionEvent is the model entity for the CompletionEvent schema.
type CompletionEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Curriculum module that was completed
	ModuleID string `json:"module_id,omitempty"`
	// Galaxy the module belongs to
	GalaxyID int `json:"galaxy_id,omitempty"`
	// XP granted for this completion
	XpAwarded int `json:"xp_awarded,omitempty"`
	// Token reward handed to the grant queue
	TokensQueued int `json:"tokens_queued,omitempty"`
	// Whether the completion reached the progress store
	Synced       bool `json:"synced,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CompletionEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldSynced:
			values[i] = new(sql.NullBool)
		case completionevent.FieldID, completionevent.FieldSequence, completionevent.FieldGalaxyID, completionevent.FieldXpAwarded, completionevent.FieldTokensQueued:
			values[i] = new(sql.NullInt64)
		case completionevent.FieldModuleID:
			values[i] = new(sql.NullString)
		case completionevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CompletionEvent fields.
func (_m *CompletionEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case completionevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case completionevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case completionevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case completionevent.FieldModuleID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field module_id", values[i])
			} else if value.Valid {
				_m.ModuleID = value.String
			}
		case completionevent.FieldGalaxyID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field galaxy_id", values[i])
			} else if value.Valid {
				_m.GalaxyID = int(value.Int64)
			}
		case completionevent.FieldXpAwarded:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field xp_awarded", values[i])
			} else if value.Valid {
				_m.XpAwarded = int(value.Int64)
			}
		case completionevent.FieldTokensQueued:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field tokens_queued", values[i])
			} else if value.Valid {
				_m.TokensQueued = int(value.Int64)
			}
		case completionevent.FieldSynced:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field synced", values[i])
			} else if value.Valid {
				_m.Synced = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CompletionEvent.
// This includes values selected through modifiers, order, etc.
func (_m *CompletionEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CompletionEvent.
// Note that you need to call CompletionEvent.Unwrap() before calling this method if this CompletionEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CompletionEvent) Update() *CompletionEventUpdateOne {
	return NewCompletionEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CompletionEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CompletionEvent) Unwrap() *CompletionEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CompletionEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CompletionEvent) String() string {
	var builder strings.Builder
	builder.WriteString("CompletionEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("module_id=")
	builder.WriteString(_m.ModuleID)
	builder.WriteString(", ")
	builder.WriteString("galaxy_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.GalaxyID))
	builder.WriteString(", ")
	builder.WriteString("xp_awarded=")
	builder.WriteString(fmt.Sprintf("%v", _m.XpAwarded))
	builder.WriteString(", ")
	builder.WriteString("tokens_queued=")
	builder.WriteString(fmt.Sprintf("%v", _m.TokensQueued))
	builder.WriteString(", ")
	builder.WriteString("synced=")
	builder.WriteString(fmt.Sprintf("%v", _m.Synced))
	builder.WriteByte(')')
	return builder.String()
}

// CompletionEvents is a parsable slice of CompletionEvent.
type CompletionEvents []*CompletionEvent
