// Code generated by ent, DO NOT EDIT.

package streakevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/starpathlabs/starpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// Action applies equality check predicate on the "action" field. It's identical to ActionEQ.
func Action(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldAction, v))
}

// Count applies equality check predicate on the "count" field. It's identical to CountEQ.
func Count(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldCount, v))
}

// Milestone applies equality check predicate on the "milestone" field. It's identical to MilestoneEQ.
func Milestone(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldMilestone, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ActionEQ applies the EQ predicate on the "action" field.
func ActionEQ(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldAction, v))
}

// ActionNEQ applies the NEQ predicate on the "action" field.
func ActionNEQ(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldAction, v))
}

// ActionIn applies the In predicate on the "action" field.
func ActionIn(vs ...string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldAction, vs...))
}

// ActionNotIn applies the NotIn predicate on the "action" field.
func ActionNotIn(vs ...string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldAction, vs...))
}

// ActionGT applies the GT predicate on the "action" field.
func ActionGT(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldAction, v))
}

// ActionGTE applies the GTE predicate on the "action" field.
func ActionGTE(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldAction, v))
}

// ActionLT applies the LT predicate on the "action" field.
func ActionLT(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldAction, v))
}

// ActionLTE applies the LTE predicate on the "action" field.
func ActionLTE(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldAction, v))
}

// ActionContains applies the Contains predicate on the "action" field.
func ActionContains(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldContains(FieldAction, v))
}

// ActionHasPrefix applies the HasPrefix predicate on the "action" field.
func ActionHasPrefix(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldHasPrefix(FieldAction, v))
}

// ActionHasSuffix applies the HasSuffix predicate on the "action" field.
func ActionHasSuffix(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldHasSuffix(FieldAction, v))
}

// ActionEqualFold applies the EqualFold predicate on the "action" field.
func ActionEqualFold(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEqualFold(FieldAction, v))
}

// ActionContainsFold applies the ContainsFold predicate on the "action" field.
func ActionContainsFold(v string) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldContainsFold(FieldAction, v))
}

// CountEQ applies the EQ predicate on the "count" field.
func CountEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldCount, v))
}

// CountNEQ applies the NEQ predicate on the "count" field.
func CountNEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldCount, v))
}

// CountIn applies the In predicate on the "count" field.
func CountIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldCount, vs...))
}

// CountNotIn applies the NotIn predicate on the "count" field.
func CountNotIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldCount, vs...))
}

// CountGT applies the GT predicate on the "count" field.
func CountGT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldCount, v))
}

// CountGTE applies the GTE predicate on the "count" field.
func CountGTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldCount, v))
}

// CountLT applies the LT predicate on the "count" field.
func CountLT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldCount, v))
}

// CountLTE applies the LTE predicate on the "count" field.
func CountLTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldCount, v))
}

// MilestoneEQ applies the EQ predicate on the "milestone" field.
func MilestoneEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldEQ(FieldMilestone, v))
}

// MilestoneNEQ applies the NEQ predicate on the "milestone" field.
func MilestoneNEQ(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNEQ(FieldMilestone, v))
}

// MilestoneIn applies the In predicate on the "milestone" field.
func MilestoneIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldIn(FieldMilestone, vs...))
}

// MilestoneNotIn applies the NotIn predicate on the "milestone" field.
func MilestoneNotIn(vs ...int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldNotIn(FieldMilestone, vs...))
}

// MilestoneGT applies the GT predicate on the "milestone" field.
func MilestoneGT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGT(FieldMilestone, v))
}

// MilestoneGTE applies the GTE predicate on the "milestone" field.
func MilestoneGTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldGTE(FieldMilestone, v))
}

// MilestoneLT applies the LT predicate on the "milestone" field.
func MilestoneLT(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLT(FieldMilestone, v))
}

// MilestoneLTE applies the LTE predicate on the "milestone" field.
func MilestoneLTE(v int) predicate.StreakEvent {
	return predicate.StreakEvent(sql.FieldLTE(FieldMilestone, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StreakEvent) predicate.StreakEvent {
	return predicate.StreakEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StreakEvent) predicate.StreakEvent {
	return predicate.StreakEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StreakEvent) predicate.StreakEvent {
	return predicate.StreakEvent(sql.NotPredicates(p))
}
