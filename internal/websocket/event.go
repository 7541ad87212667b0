package websocket

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeCreated   EventType = "created"
	EventTypeUpdated   EventType = "updated"
	EventTypeDeleted   EventType = "deleted"
	EventTypeRecorded  EventType = "recorded"
	EventTypeCompleted EventType = "completed"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeAccount          EntityType = "account"
	EntityTypeTransaction      EntityType = "transaction"
	EntityTypeCategory         EntityType = "category"
	EntityTypeRecurringExpense EntityType = "recurring_expense"
	EntityTypeIncomeSource     EntityType = "income_source"
	EntityTypeSavingsGoal      EntityType = "savings_goal"
	EntityTypeSettings         EntityType = "settings"
	EntityTypeNetWorth         EntityType = "net_worth"
	EntityTypeBackup           EntityType = "backup"
)

// entityTypes lists every entity the feed reports on
var entityTypes = map[EntityType]bool{
	EntityTypeAccount:          true,
	EntityTypeTransaction:      true,
	EntityTypeCategory:         true,
	EntityTypeRecurringExpense: true,
	EntityTypeIncomeSource:     true,
	EntityTypeSavingsGoal:      true,
	EntityTypeSettings:         true,
	EntityTypeNetWorth:         true,
	EntityTypeBackup:           true,
}

// ParseEntityTypes parses a comma-separated subscription list such as
// "transaction,account". An empty list subscribes to everything.
func ParseEntityTypes(raw string) ([]EntityType, error) {
	var entities []EntityType
	for _, part := range strings.Split(raw, ",") {
		name := EntityType(strings.ToLower(strings.TrimSpace(part)))
		if name == "" {
			continue
		}
		if !entityTypes[name] {
			return nil, fmt.Errorf("unknown entity type %q", name)
		}
		entities = append(entities, name)
	}
	return entities, nil
}

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string     `json:"type"`      // Combined type e.g. "transaction.created"
	Entity    EntityType `json:"entity"`    // Entity type e.g. "transaction"
	Payload   any        `json:"payload"`   // Entity data or a small summary
	Timestamp time.Time  `json:"timestamp"` // Event timestamp
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload any) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// NetWorthRecorded creates a net_worth.recorded event
func NetWorthRecorded(payload any) Event {
	return NewEvent(EventTypeRecorded, EntityTypeNetWorth, payload)
}

// BackupCompleted creates a backup.completed event
func BackupCompleted(payload any) Event {
	return NewEvent(EventTypeCompleted, EntityTypeBackup, payload)
}
