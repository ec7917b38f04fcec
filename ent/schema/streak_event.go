package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreakEvent records daily streak activity (check-ins and milestone claims).
type StreakEvent struct {
	ent.Schema
}

func (StreakEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (StreakEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("action").
			NotEmpty().
			Comment("check or claim"),
		field.Int("count").
			Default(0).
			Comment("Streak length after the action"),
		field.Int("milestone").
			Default(0).
			Comment("Milestone day reached or claimed (0 if none)"),
	}
}

func (StreakEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("action"),
	}
}
