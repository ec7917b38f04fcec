// Code generated by ent, DO NOT EDIT.

package purchaseevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/starpathlabs/starpath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// CosmeticID applies equality check predicate on the "cosmetic_id" field. It's identical to CosmeticIDEQ.
func CosmeticID(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCosmeticID, v))
}

// Price applies equality check predicate on the "price" field. It's identical to PriceEQ.
func Price(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldPrice, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldTimestamp, v))
}

// CosmeticIDEQ applies the EQ predicate on the "cosmetic_id" field.
func CosmeticIDEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldCosmeticID, v))
}

// CosmeticIDNEQ applies the NEQ predicate on the "cosmetic_id" field.
func CosmeticIDNEQ(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldCosmeticID, v))
}

// CosmeticIDIn applies the In predicate on the "cosmetic_id" field.
func CosmeticIDIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldCosmeticID, vs...))
}

// CosmeticIDNotIn applies the NotIn predicate on the "cosmetic_id" field.
func CosmeticIDNotIn(vs ...string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldCosmeticID, vs...))
}

// CosmeticIDGT applies the GT predicate on the "cosmetic_id" field.
func CosmeticIDGT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldCosmeticID, v))
}

// CosmeticIDGTE applies the GTE predicate on the "cosmetic_id" field.
func CosmeticIDGTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldCosmeticID, v))
}

// CosmeticIDLT applies the LT predicate on the "cosmetic_id" field.
func CosmeticIDLT(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldCosmeticID, v))
}

// CosmeticIDLTE applies the LTE predicate on the "cosmetic_id" field.
func CosmeticIDLTE(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldCosmeticID, v))
}

// CosmeticIDContains applies the Contains predicate on the "cosmetic_id" field.
func CosmeticIDContains(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContains(FieldCosmeticID, v))
}

// CosmeticIDHasPrefix applies the HasPrefix predicate on the "cosmetic_id" field.
func CosmeticIDHasPrefix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasPrefix(FieldCosmeticID, v))
}

// CosmeticIDHasSuffix applies the HasSuffix predicate on the "cosmetic_id" field.
func CosmeticIDHasSuffix(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldHasSuffix(FieldCosmeticID, v))
}

// CosmeticIDEqualFold applies the EqualFold predicate on the "cosmetic_id" field.
func CosmeticIDEqualFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEqualFold(FieldCosmeticID, v))
}

// CosmeticIDContainsFold applies the ContainsFold predicate on the "cosmetic_id" field.
func CosmeticIDContainsFold(v string) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldContainsFold(FieldCosmeticID, v))
}

// PriceEQ applies the EQ predicate on the "price" field.
func PriceEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldEQ(FieldPrice, v))
}

// PriceNEQ applies the NEQ predicate on the "price" field.
func PriceNEQ(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNEQ(FieldPrice, v))
}

// PriceIn applies the In predicate on the "price" field.
func PriceIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldIn(FieldPrice, vs...))
}

// PriceNotIn applies the NotIn predicate on the "price" field.
func PriceNotIn(vs ...int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldNotIn(FieldPrice, vs...))
}

// PriceGT applies the GT predicate on the "price" field.
func PriceGT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGT(FieldPrice, v))
}

// PriceGTE applies the GTE predicate on the "price" field.
func PriceGTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldGTE(FieldPrice, v))
}

// PriceLT applies the LT predicate on the "price" field.
func PriceLT(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLT(FieldPrice, v))
}

// PriceLTE applies the LTE predicate on the "price" field.
func PriceLTE(v int) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.FieldLTE(FieldPrice, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PurchaseEvent) predicate.PurchaseEvent {
	return predicate.PurchaseEvent(sql.NotPredicates(p))
}
