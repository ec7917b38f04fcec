// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/starpathlabs/starpath/ent/completionevent"
	"github.com/starpathlabs/starpath/ent/purchaseevent"
	"github.com/starpathlabs/starpath/ent/rewardevent"
	"github.com/starpathlabs/starpath/ent/schema"
	"github.com/starpathlabs/starpath/ent/snapshot"
	"github.com/starpathlabs/starpath/ent/streakevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	completioneventMixin := schema.CompletionEvent{}.Mixin()
	completioneventMixinFields0 := completioneventMixin[0].Fields()
	_ = completioneventMixinFields0
	completioneventFields := schema.CompletionEvent{}.Fields()
	_ = completioneventFields
	// completioneventDescTimestamp is the schema descriptor for timestamp field.
	completioneventDescTimestamp := completioneventMixinFields0[1].Descriptor()
	// completionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	completionevent.DefaultTimestamp = completioneventDescTimestamp.Default.(func() time.Time)
	// completioneventDescModuleID is the schema descriptor for module_id field.
	completioneventDescModuleID := completioneventFields[0].Descriptor()
	// completionevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	completionevent.ModuleIDValidator = completioneventDescModuleID.Validators[0].(func(string) error)
	// completioneventDescXpAwarded is the schema descriptor for xp_awarded field.
	completioneventDescXpAwarded := completioneventFields[2].Descriptor()
	// completionevent.DefaultXpAwarded holds the default value on creation for the xp_awarded field.
	completionevent.DefaultXpAwarded = completioneventDescXpAwarded.Default.(int)
	// completioneventDescTokensQueued is the schema descriptor for tokens_queued field.
	completioneventDescTokensQueued := completioneventFields[3].Descriptor()
	// completionevent.DefaultTokensQueued holds the default value on creation for the tokens_queued field.
	completionevent.DefaultTokensQueued = completioneventDescTokensQueued.Default.(int)
	// completioneventDescSynced is the schema descriptor for synced field.
	completioneventDescSynced := completioneventFields[4].Descriptor()
	// completionevent.DefaultSynced holds the default value on creation for the synced field.
	completionevent.DefaultSynced = completioneventDescSynced.Default.(bool)
	purchaseeventMixin := schema.PurchaseEvent{}.Mixin()
	purchaseeventMixinFields0 := purchaseeventMixin[0].Fields()
	_ = purchaseeventMixinFields0
	purchaseeventFields := schema.PurchaseEvent{}.Fields()
	_ = purchaseeventFields
	// purchaseeventDescTimestamp is the schema descriptor for timestamp field.
	purchaseeventDescTimestamp := purchaseeventMixinFields0[1].Descriptor()
	// purchaseevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	purchaseevent.DefaultTimestamp = purchaseeventDescTimestamp.Default.(func() time.Time)
	// purchaseeventDescCosmeticID is the schema descriptor for cosmetic_id field.
	purchaseeventDescCosmeticID := purchaseeventFields[0].Descriptor()
	// purchaseevent.CosmeticIDValidator is a validator for the "cosmetic_id" field. It is called by the builders before save.
	purchaseevent.CosmeticIDValidator = purchaseeventDescCosmeticID.Validators[0].(func(string) error)
	rewardeventMixin := schema.RewardEvent{}.Mixin()
	rewardeventMixinFields0 := rewardeventMixin[0].Fields()
	_ = rewardeventMixinFields0
	rewardeventFields := schema.RewardEvent{}.Fields()
	_ = rewardeventFields
	// rewardeventDescTimestamp is the schema descriptor for timestamp field.
	rewardeventDescTimestamp := rewardeventMixinFields0[1].Descriptor()
	// rewardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rewardevent.DefaultTimestamp = rewardeventDescTimestamp.Default.(func() time.Time)
	// rewardeventDescKind is the schema descriptor for kind field.
	rewardeventDescKind := rewardeventFields[0].Descriptor()
	// rewardevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	rewardevent.KindValidator = rewardeventDescKind.Validators[0].(func(string) error)
	// rewardeventDescAmount is the schema descriptor for amount field.
	rewardeventDescAmount := rewardeventFields[2].Descriptor()
	// rewardevent.DefaultAmount holds the default value on creation for the amount field.
	rewardevent.DefaultAmount = rewardeventDescAmount.Default.(int)
	// rewardeventDescReason is the schema descriptor for reason field.
	rewardeventDescReason := rewardeventFields[3].Descriptor()
	// rewardevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	rewardevent.ReasonValidator = rewardeventDescReason.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
	streakeventMixin := schema.StreakEvent{}.Mixin()
	streakeventMixinFields0 := streakeventMixin[0].Fields()
	_ = streakeventMixinFields0
	streakeventFields := schema.StreakEvent{}.Fields()
	_ = streakeventFields
	// streakeventDescTimestamp is the schema descriptor for timestamp field.
	streakeventDescTimestamp := streakeventMixinFields0[1].Descriptor()
	// streakevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	streakevent.DefaultTimestamp = streakeventDescTimestamp.Default.(func() time.Time)
	// streakeventDescAction is the schema descriptor for action field.
	streakeventDescAction := streakeventFields[0].Descriptor()
	// streakevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	streakevent.ActionValidator = streakeventDescAction.Validators[0].(func(string) error)
	// streakeventDescCount is the schema descriptor for count field.
	streakeventDescCount := streakeventFields[1].Descriptor()
	// streakevent.DefaultCount holds the default value on creation for the count field.
	streakevent.DefaultCount = streakeventDescCount.Default.(int)
	// streakeventDescMilestone is the schema descriptor for milestone field.
	streakeventDescMilestone := streakeventFields[2].Descriptor()
	// streakevent.DefaultMilestone holds the default value on creation for the milestone field.
	streakevent.DefaultMilestone = streakeventDescMilestone.Default.(int)
}
