package events

import "time"

// Topic is the stream record lifecycle events are published to.
const Topic = "loan_records"

// RecordAdded is emitted after a record has been confirmed by the store.
type RecordAdded struct {
	RecordID     string    `json:"record_id"`
	Party        string    `json:"party"`
	Kind         string    `json:"kind"`
	Principal    int64     `json:"principal"`
	WithInterest int64     `json:"with_interest"`
	Date         string    `json:"date"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// RecordDeleted is emitted after a record has been removed from the store.
type RecordDeleted struct {
	RecordID   string    `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
