// Code generated by ent, DO NOT EDIT.

package completionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/starpathlabs/starpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ModuleID applies equality check predicate on the "module_id" field. It's identical to ModuleIDEQ.
func ModuleID(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldModuleID, v))
}

// GalaxyID applies equality check predicate on the "galaxy_id" field. It's identical to GalaxyIDEQ.
func GalaxyID(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldGalaxyID, v))
}

// XpAwarded applies equality check predicate on the "xp_awarded" field. It's identical to XpAwardedEQ.
func XpAwarded(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// TokensQueued applies equality check predicate on the "tokens_queued" field. It's identical to TokensQueuedEQ.
func TokensQueued(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTokensQueued, v))
}

// Synced applies equality check predicate on the "synced" field. It's identical to SyncedEQ.
func Synced(v bool) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSynced, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ModuleIDEQ applies the EQ predicate on the "module_id" field.
func ModuleIDEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldModuleID, v))
}

// ModuleIDNEQ applies the NEQ predicate on the "module_id" field.
func ModuleIDNEQ(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldModuleID, v))
}

// ModuleIDIn applies the In predicate on the "module_id" field.
func ModuleIDIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldModuleID, vs...))
}

// ModuleIDNotIn applies the NotIn predicate on the "module_id" field.
func ModuleIDNotIn(vs ...string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldModuleID, vs...))
}

// ModuleIDGT applies the GT predicate on the "module_id" field.
func ModuleIDGT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldModuleID, v))
}

// ModuleIDGTE applies the GTE predicate on the "module_id" field.
func ModuleIDGTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldModuleID, v))
}

// ModuleIDLT applies the LT predicate on the "module_id" field.
func ModuleIDLT(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldModuleID, v))
}

// ModuleIDLTE applies the LTE predicate on the "module_id" field.
func ModuleIDLTE(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldModuleID, v))
}

// ModuleIDContains applies the Contains predicate on the "module_id" field.
func ModuleIDContains(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContains(FieldModuleID, v))
}

// ModuleIDHasPrefix applies the HasPrefix predicate on the "module_id" field.
func ModuleIDHasPrefix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasPrefix(FieldModuleID, v))
}

// ModuleIDHasSuffix applies the HasSuffix predicate on the "module_id" field.
func ModuleIDHasSuffix(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldHasSuffix(FieldModuleID, v))
}

// ModuleIDEqualFold applies the EqualFold predicate on the "module_id" field.
func ModuleIDEqualFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEqualFold(FieldModuleID, v))
}

// ModuleIDContainsFold applies the ContainsFold predicate on the "module_id" field.
func ModuleIDContainsFold(v string) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldContainsFold(FieldModuleID, v))
}

// GalaxyIDEQ applies the EQ predicate on the "galaxy_id" field.
func GalaxyIDEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldGalaxyID, v))
}

// GalaxyIDNEQ applies the NEQ predicate on the "galaxy_id" field.
func GalaxyIDNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldGalaxyID, v))
}

// GalaxyIDIn applies the In predicate on the "galaxy_id" field.
func GalaxyIDIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldGalaxyID, vs...))
}

// GalaxyIDNotIn applies the NotIn predicate on the "galaxy_id" field.
func GalaxyIDNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldGalaxyID, vs...))
}

// GalaxyIDGT applies the GT predicate on the "galaxy_id" field.
func GalaxyIDGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldGalaxyID, v))
}

// GalaxyIDGTE applies the GTE predicate on the "galaxy_id" field.
func GalaxyIDGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldGalaxyID, v))
}

// GalaxyIDLT applies the LT predicate on the "galaxy_id" field.
func GalaxyIDLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldGalaxyID, v))
}

// GalaxyIDLTE applies the LTE predicate on the "galaxy_id" field.
func GalaxyIDLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldGalaxyID, v))
}

// XpAwardedEQ applies the EQ predicate on the "xp_awarded" field.
func XpAwardedEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldXpAwarded, v))
}

// XpAwardedNEQ applies the NEQ predicate on the "xp_awarded" field.
func XpAwardedNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldXpAwarded, v))
}

// XpAwardedIn applies the In predicate on the "xp_awarded" field.
func XpAwardedIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldXpAwarded, vs...))
}

// XpAwardedNotIn applies the NotIn predicate on the "xp_awarded" field.
func XpAwardedNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldXpAwarded, vs...))
}

// XpAwardedGT applies the GT predicate on the "xp_awarded" field.
func XpAwardedGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldXpAwarded, v))
}

// XpAwardedGTE applies the GTE predicate on the "xp_awarded" field.
func XpAwardedGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldXpAwarded, v))
}

// XpAwardedLT applies the LT predicate on the "xp_awarded" field.
func XpAwardedLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldXpAwarded, v))
}

// XpAwardedLTE applies the LTE predicate on the "xp_awarded" field.
func XpAwardedLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldXpAwarded, v))
}

// TokensQueuedEQ applies the EQ predicate on the "tokens_queued" field.
func TokensQueuedEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldTokensQueued, v))
}

// TokensQueuedNEQ applies the NEQ predicate on the "tokens_queued" field.
func TokensQueuedNEQ(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldTokensQueued, v))
}

// TokensQueuedIn applies the In predicate on the "tokens_queued" field.
func TokensQueuedIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldIn(FieldTokensQueued, vs...))
}

// TokensQueuedNotIn applies the NotIn predicate on the "tokens_queued" field.
func TokensQueuedNotIn(vs ...int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNotIn(FieldTokensQueued, vs...))
}

// TokensQueuedGT applies the GT predicate on the "tokens_queued" field.
func TokensQueuedGT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGT(FieldTokensQueued, v))
}

// TokensQueuedGTE applies the GTE predicate on the "tokens_queued" field.
func TokensQueuedGTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldGTE(FieldTokensQueued, v))
}

// TokensQueuedLT applies the LT predicate on the "tokens_queued" field.
func TokensQueuedLT(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLT(FieldTokensQueued, v))
}

// TokensQueuedLTE applies the LTE predicate on the "tokens_queued" field.
func TokensQueuedLTE(v int) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldLTE(FieldTokensQueued, v))
}

// SyncedEQ applies the EQ predicate on the "synced" field.
func SyncedEQ(v bool) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldEQ(FieldSynced, v))
}

// SyncedNEQ applies the NEQ predicate on the "synced" field.
func SyncedNEQ(v bool) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.FieldNEQ(FieldSynced, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CompletionEvent) predicate.CompletionEvent {
	return predicate.CompletionEvent(sql.NotPredicates(p))
}
