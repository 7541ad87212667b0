package domain

import "time"

type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

type EntityType string

const (
	EntityAccount          EntityType = "account"
	EntityTransaction      EntityType = "transaction"
	EntityCategory         EntityType = "category"
	EntityRecurringExpense EntityType = "recurring_expense"
	EntityIncomeSource     EntityType = "income_source"
	EntitySavingsGoal      EntityType = "savings_goal"
	EntitySettings         EntityType = "settings"
	EntityNetWorth         EntityType = "net_worth"
)

// MaxActivityEntries is the number of newest entries kept in the activity log
const MaxActivityEntries = 500

type ActivityEntry struct {
	ID          string         `json:"id"`
	Action      ActivityAction `json:"action"`
	EntityType  EntityType     `json:"entityType"`
	EntityID    string         `json:"entityId"`
	Description string         `json:"description"`
	Timestamp   time.Time      `json:"timestamp"`
}

type ActivityRepository interface {
	// Append stores the entry and drops the oldest entries beyond MaxActivityEntries
	Append(entry *ActivityEntry) error
	// List returns up to limit entries, newest first
	List(limit int) ([]*ActivityEntry, error)
}
