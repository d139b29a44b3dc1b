package v1

// Values of Status.Status.
const (
	StatusSuccess = "Success"
	StatusFailure = "Failure"
)

// StatusTypeMeta is the envelope pair the server stamps on Status objects.
var StatusTypeMeta = TypeMeta{APIVersion: "v1", Kind: "Status"}

// Status is the structured payload the server returns when a request fails.
// It is the canonical application-level error channel, as opposed to
// transport failures which never reach the server.
type Status struct {
	TypeMeta `json:",inline"`
	// Metadata is standard list metadata.
	Metadata ListMeta `json:"metadata,omitempty"`
	// Status is "Success" or "Failure".
	Status string `json:"status,omitempty"`
	// Message is a human-readable description of the failure.
	Message string `json:"message,omitempty"`
	// Reason is a machine-readable one-word failure category.
	Reason string `json:"reason,omitempty"`
	// Details holds reason-specific extended data.
	Details *StatusDetails `json:"details,omitempty"`
	// Code is the suggested HTTP status code.
	Code int32 `json:"code,omitempty"`
}

// StatusDetails carries extended, reason-specific failure data.
type StatusDetails struct {
	// Name is the name of the resource the failure relates to.
	Name string `json:"name,omitempty"`
	// Group is the API group of that resource.
	Group string `json:"group,omitempty"`
	// Kind is the kind of that resource.
	Kind string `json:"kind,omitempty"`
	// Causes lists the individual underlying causes.
	Causes []StatusCause `json:"causes,omitempty"`
	// RetryAfterSeconds suggests how long a client should wait before
	// retrying; this client never retries on its own.
	RetryAfterSeconds int32 `json:"retryAfterSeconds,omitempty"`
}

// StatusCause describes one underlying cause of a failure.
type StatusCause struct {
	// Reason is a machine-readable cause category.
	Reason string `json:"reason,omitempty"`
	// Message is a human-readable description of the cause.
	Message string `json:"message,omitempty"`
	// Field names the request field the cause relates to.
	Field string `json:"field,omitempty"`
}
