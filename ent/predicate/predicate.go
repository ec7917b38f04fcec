// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CompletionEvent is the predicate function for completionevent builders.
type CompletionEvent func(*sql.Selector)

// PurchaseEvent is the predicate function for purchaseevent builders.
type PurchaseEvent func(*sql.Selector)

// RewardEvent is the predicate function for rewardevent builders.
type RewardEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// StreakEvent is the predicate function for streakevent builders.
type StreakEvent func(*sql.Selector)
