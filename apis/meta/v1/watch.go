package v1

import "encoding/json"

// EventType is the change type carried by a watch event.
type EventType string

// Watch event types as transmitted on the wire.
const (
	Added    EventType = "ADDED"
	Modified EventType = "MODIFIED"
	Deleted  EventType = "DELETED"
	Error    EventType = "ERROR"
)

// WatchEvent is the envelope decoded from one frame of a watch stream. The
// object payload is kept raw here: for ADDED/MODIFIED/DELETED it is the
// watched resource type, for ERROR it is a Status.
type WatchEvent struct {
	// Type is the change type for this event.
	Type EventType `json:"type"`
	// Object is the undecoded event payload.
	Object json.RawMessage `json:"object"`
}
