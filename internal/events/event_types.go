package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventStudentCreated EventType = "student_created"
	EventStudentUpdated EventType = "student_updated"
	EventStudentDeleted EventType = "student_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	StudentID int64       `json:"student_id"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// StudentChangedPayload carries the record fields affected by a create or update.
type StudentChangedPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
