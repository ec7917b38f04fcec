package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CompletionEvent records a finished module.
type CompletionEvent struct {
	ent.Schema
}

func (CompletionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (CompletionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("module_id").
			NotEmpty().
			Comment("Curriculum module that was completed"),
		field.Int("galaxy_id").
			Comment("Galaxy the module belongs to"),
		field.Int("xp_awarded").
			Default(0).
			Comment("XP granted for this completion"),
		field.Int("tokens_queued").
			Default(0).
			Comment("Token reward handed to the grant queue"),
		field.Bool("synced").
			Default(false).
			Comment("Whether the completion reached the progress store"),
	}
}

func (CompletionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("module_id"),
		index.Fields("synced"),
	}
}
