package models

// Person change operations published to Kafka.
const (
	PersonCreated = "created"
	PersonUpdated = "updated"
	PersonDeleted = "deleted"
)

// PersonEvent represents a person change published to Kafka.
type PersonEvent struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix timestamp (in seconds) when the change happened.
	UserID    string `json:"user_id"`   // UserID is the identifier of the record's owner.
	PersonID  int64  `json:"person_id"` // PersonID is the global identifier of the changed record.
	Seq       int64  `json:"seq"`       // Seq is the record's per-owner sequence number.
	Operation string `json:"operation"` // Operation is one of "created", "updated", "deleted".
}
