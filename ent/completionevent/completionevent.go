// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the completionevent type in the database.
	Label = "completion_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldGalaxyID holds the string denoting the galaxy_id field in the database.
	FieldGalaxyID = "galaxy_id"
	// FieldXpAwarded holds the string denoting the xp_awarded field in the database.
	FieldXpAwarded = "xp_awarded"
	// FieldTokensQueued holds the string denoting the tokens_queued field in the database.
	FieldTokensQueued = "tokens_queued"
	// FieldSynced holds the string denoting the synced field in the database.
	FieldSynced = "synced"
	// Table holds the table name of the completionevent in the database.
	Table = "completion_events"
)

// Columns holds all SQL columns for completionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldModuleID,
	FieldGalaxyID,
	FieldXpAwarded,
	FieldTokensQueued,
	FieldSynced,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	ModuleIDValidator func(string) error
	// DefaultXpAwarded holds the default value on creation for the "xp_awarded" field.
	DefaultXpAwarded int
	// DefaultTokensQueued holds the default value on creation for the "tokens_queued" field.
	DefaultTokensQueued int
	// DefaultSynced holds the default value on creation for the "synced" field.
	DefaultSynced bool
)

// OrderOption defines the ordering options for the CompletionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByGalaxyID orders the results by the galaxy_id field.
func ByGalaxyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGalaxyID, opts...).ToFunc()
}

// ByXpAwarded orders the results by the xp_awarded field.
func ByXpAwarded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXpAwarded, opts...).ToFunc()
}

// ByTokensQueued orders the results by the tokens_queued field.
func ByTokensQueued(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokensQueued, opts...).ToFunc()
}

// BySynced orders the results by the synced field.
func BySynced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSynced, opts...).ToFunc()
}
