package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Event is a store notification as delivered on the wire: an event type plus
// an opaque payload whose shape depends on the type.
type Event struct {
	EventType string          `json:"event_type"`
	Timestamp string          `json:"event_timestamp,omitempty"`
	Data      json.RawMessage `json:"event,omitempty"`
}

// EventRecord is the flattened row stored in the local event history.
// SourceID and FlowID are best-effort extractions from the payload and may
// be empty for event types that carry neither.
type EventRecord struct {
	ID         string
	EventType  string
	SourceID   string
	FlowID     string
	Timerange  string
	ReceivedAt time.Time
	Payload    string
}

// NewEventRecord flattens a wire event into a history row with a fresh
// record ID.
func NewEventRecord(ev Event) EventRecord {
	rec := EventRecord{
		ID:         uuid.NewString(),
		EventType:  ev.EventType,
		ReceivedAt: time.Now().UTC(),
		Payload:    string(ev.Data),
	}

	// Pull out the IDs the history table indexes on, if the payload has them.
	var fields struct {
		ID        string `json:"id"`
		SourceID  string `json:"source_id"`
		FlowID    string `json:"flow_id"`
		Timerange string `json:"timerange"`
	}
	if err := json.Unmarshal(ev.Data, &fields); err == nil {
		rec.SourceID = fields.SourceID
		rec.FlowID = fields.FlowID
		rec.Timerange = fields.Timerange
		if rec.FlowID == "" && rec.SourceID == "" {
			// Single-entity events carry a bare "id"; classify by type prefix.
			if len(ev.EventType) >= 5 && ev.EventType[:5] == "flows" {
				rec.FlowID = fields.ID
			} else {
				rec.SourceID = fields.ID
			}
		}
	}

	return rec
}
