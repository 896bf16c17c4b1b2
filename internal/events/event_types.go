package events

import (
	"time"

	"github.com/atlas-rto/workforce-matrix/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStaffCreated     EventType = "staff_created"
	EventStaffUpdated     EventType = "staff_updated"
	EventStaffDeleted     EventType = "staff_deleted"
	EventSubRecordAdded   EventType = "subrecord_added"
	EventSubRecordDeleted EventType = "subrecord_deleted"
	EventRosterImported   EventType = "roster_imported"
)

// AllTypes lists every roster event type for blanket subscriptions.
func AllTypes() []EventType {
	return []EventType{
		EventStaffCreated,
		EventStaffUpdated,
		EventStaffDeleted,
		EventSubRecordAdded,
		EventSubRecordDeleted,
		EventRosterImported,
	}
}

// Event represents a roster mutation emitted by the store.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	AtlasID   string      `json:"atlas_id,omitempty"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload,omitempty"`
}

// StaffCreatedPayload payload.
type StaffCreatedPayload struct {
	StaffID  int             `json:"staff_id"`
	Name     string          `json:"name"`
	Position domain.Position `json:"position"`
	State    string          `json:"state"`
}

// StaffUpdatedPayload payload.
type StaffUpdatedPayload struct {
	StaffID    int    `json:"staff_id"`
	Section    string `json:"section"`
	OldAtlasID string `json:"old_atlas_id,omitempty"`
}

// SubRecordPayload payload for add/delete of ordered sub-records.
type SubRecordPayload struct {
	StaffID int            `json:"staff_id"`
	Section domain.Section `json:"section"`
	Index   int            `json:"index"`
}

// RosterImportedPayload payload.
type RosterImportedPayload struct {
	RecordCount int `json:"record_count"`
}
