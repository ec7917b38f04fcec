package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PurchaseEvent records a cosmetic bought from the shop.
type PurchaseEvent struct {
	ent.Schema
}

func (PurchaseEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PurchaseEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("cosmetic_id").
			NotEmpty().
			Comment("Catalog item that was purchased"),
		field.Int("price").
			Comment("Token price paid"),
	}
}

func (PurchaseEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("cosmetic_id"),
	}
}
