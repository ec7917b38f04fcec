package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RewardEvent records reward activity: mystery box grants and opens, token
// grants queued for the payment rail, and grant failures.
type RewardEvent struct {
	ent.Schema
}

func (RewardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RewardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("kind").
			NotEmpty().
			Comment("box-granted, box-opened, tokens-queued, or grant-failed"),
		field.String("rarity").
			Optional().
			Nillable().
			Comment("Box rarity (box events only)"),
		field.Int("amount").
			Default(0).
			Comment("Token amount (token events only)"),
		field.String("reason").
			NotEmpty().
			Comment("What earned the reward"),
		field.String("box_id").
			Optional().
			Nillable().
			Comment("Box UUID (box events only)"),
	}
}

func (RewardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
		index.Fields("box_id"),
	}
}
