package service

import (
	"time"

	"github.com/dafibh/kasboek/kasboek-backend/internal/domain"
	"github.com/dafibh/kasboek/kasboek-backend/internal/websocket"
	"github.com/rs/zerolog/log"
)

// DefaultActivityLimit is how many entries List returns when no limit is given
const DefaultActivityLimit = 50

// ActivityRecorder records a change to an entity
type ActivityRecorder interface {
	Record(action domain.ActivityAction, entity domain.EntityType, entityID, description string, payload any)
}

// ActivityService keeps the activity log and fans changes out to websocket clients
type ActivityService struct {
	activityRepo   domain.ActivityRepository
	eventPublisher websocket.EventPublisher
}

// NewActivityService creates a new ActivityService
func NewActivityService(activityRepo domain.ActivityRepository) *ActivityService {
	return &ActivityService{activityRepo: activityRepo}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *ActivityService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// Record appends an entry to the activity log and publishes the matching event.
// A failed append is logged and does not fail the change that triggered it.
func (s *ActivityService) Record(action domain.ActivityAction, entity domain.EntityType, entityID, description string, payload any) {
	entry := &domain.ActivityEntry{
		Action:      action,
		EntityType:  entity,
		EntityID:    entityID,
		Description: description,
		Timestamp:   time.Now().UTC(),
	}
	if err := s.activityRepo.Append(entry); err != nil {
		log.Error().Err(err).
			Str("action", string(action)).
			Str("entity_type", string(entity)).
			Str("entity_id", entityID).
			Msg("Failed to append activity entry")
	}

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(websocket.NewEvent(websocket.EventType(action), websocket.EntityType(entity), payload))
	}
}

// List returns up to limit entries, newest first. A limit of zero or less uses DefaultActivityLimit
// and the limit is capped at the log size.
func (s *ActivityService) List(limit int) ([]*domain.ActivityEntry, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > domain.MaxActivityEntries {
		limit = domain.MaxActivityEntries
	}
	return s.activityRepo.List(limit)
}

// activityLog is embedded by services that report their changes
type activityLog struct {
	recorder ActivityRecorder
}

// SetActivityRecorder sets where changes are reported
func (a *activityLog) SetActivityRecorder(recorder ActivityRecorder) {
	a.recorder = recorder
}

func (a *activityLog) record(action domain.ActivityAction, entity domain.EntityType, entityID, description string, payload any) {
	if a.recorder != nil {
		a.recorder.Record(action, entity, entityID, description, payload)
	}
}
