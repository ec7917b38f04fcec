// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CompletionEventsColumns holds the columns for the "completion_events" table.
	CompletionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "module_id", Type: field.TypeString},
		{Name: "galaxy_id", Type: field.TypeInt},
		{Name: "xp_awarded", Type: field.TypeInt, Default: 0},
		{Name: "tokens_queued", Type: field.TypeInt, Default: 0},
		{Name: "synced", Type: field.TypeBool, Default: false},
	}
	// CompletionEventsTable holds the schema information for the "completion_events" table.
	CompletionEventsTable = &schema.Table{
		Name:       "completion_events",
		Columns:    CompletionEventsColumns,
		PrimaryKey: []*schema.Column{CompletionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "completionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[1]},
			},
			{
				Name:    "completionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[2]},
			},
			{
				Name:    "completionevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[3]},
			},
			{
				Name:    "completionevent_synced",
				Unique:  false,
				Columns: []*schema.Column{CompletionEventsColumns[7]},
			},
		},
	}
	// PurchaseEventsColumns holds the columns for the "purchase_events" table.
	PurchaseEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "cosmetic_id", Type: field.TypeString},
		{Name: "price", Type: field.TypeInt},
	}
	// PurchaseEventsTable holds the schema information for the "purchase_events" table.
	PurchaseEventsTable = &schema.Table{
		Name:       "purchase_events",
		Columns:    PurchaseEventsColumns,
		PrimaryKey: []*schema.Column{PurchaseEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "purchaseevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[1]},
			},
			{
				Name:    "purchaseevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[2]},
			},
			{
				Name:    "purchaseevent_cosmetic_id",
				Unique:  false,
				Columns: []*schema.Column{PurchaseEventsColumns[3]},
			},
		},
	}
	// RewardEventsColumns holds the columns for the "reward_events" table.
	RewardEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "kind", Type: field.TypeString},
		{Name: "rarity", Type: field.TypeString, Nullable: true},
		{Name: "amount", Type: field.TypeInt, Default: 0},
		{Name: "reason", Type: field.TypeString},
		{Name: "box_id", Type: field.TypeString, Nullable: true},
	}
	// RewardEventsTable holds the schema information for the "reward_events" table.
	RewardEventsTable = &schema.Table{
		Name:       "reward_events",
		Columns:    RewardEventsColumns,
		PrimaryKey: []*schema.Column{RewardEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rewardevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[1]},
			},
			{
				Name:    "rewardevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[2]},
			},
			{
				Name:    "rewardevent_kind",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[3]},
			},
			{
				Name:    "rewardevent_box_id",
				Unique:  false,
				Columns: []*schema.Column{RewardEventsColumns[7]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// StreakEventsColumns holds the columns for the "streak_events" table.
	StreakEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "action", Type: field.TypeString},
		{Name: "count", Type: field.TypeInt, Default: 0},
		{Name: "milestone", Type: field.TypeInt, Default: 0},
	}
	// StreakEventsTable holds the schema information for the "streak_events" table.
	StreakEventsTable = &schema.Table{
		Name:       "streak_events",
		Columns:    StreakEventsColumns,
		PrimaryKey: []*schema.Column{StreakEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "streakevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[1]},
			},
			{
				Name:    "streakevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[2]},
			},
			{
				Name:    "streakevent_action",
				Unique:  false,
				Columns: []*schema.Column{StreakEventsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CompletionEventsTable,
		PurchaseEventsTable,
		RewardEventsTable,
		SnapshotsTable,
		StreakEventsTable,
	}
)

func init() {
}
