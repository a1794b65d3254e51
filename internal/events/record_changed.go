package events

import "time"

const RecordChangedTopic = "leave.record.changed.v1"

const (
	RecordCreated = "record_created"
	RecordUpdated = "record_updated"
	RecordDeleted = "record_deleted"
)

// RecordChangedEvent is published through the outbox after every mutation.
// The date fields carry the day coverage so consumers can invalidate the
// affected calendar months without reloading the record.
type RecordChangedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	RecordID   string    `json:"record_id"`
	Name       string    `json:"name"`
	Date       *string   `json:"date,omitempty"`
	StartDate  *string   `json:"start_date,omitempty"`
	EndDate    *string   `json:"end_date,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
