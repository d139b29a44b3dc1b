package v1

// Time is an RFC3339 timestamp as transmitted on the wire.
type Time = string

// ObjectMeta is the standard metadata block carried by every API object.
// Name and Namespace are both optional on a submitted object; operations
// that address a single object require Name to be present.
type ObjectMeta struct {
	// Name is the object name, unique within its namespace.
	Name string `json:"name,omitempty"`
	// Namespace qualifies the object for namespace-scoped resources.
	Namespace string `json:"namespace,omitempty"`
	// UID is the server-assigned unique identifier.
	UID string `json:"uid,omitempty"`
	// ResourceVersion is the server-assigned version of this object.
	ResourceVersion string `json:"resourceVersion,omitempty"`
	// CreationTimestamp records when the object was created.
	CreationTimestamp Time `json:"creationTimestamp,omitempty"`
	// Labels are key/value pairs used for selection.
	Labels map[string]string `json:"labels,omitempty"`
	// Annotations are unstructured key/value metadata.
	Annotations map[string]string `json:"annotations,omitempty"`
}

// ListMeta is the metadata block carried by list responses. A non-empty
// Continue token means further pages exist; an empty token marks the last
// page of a paginated list.
type ListMeta struct {
	// ResourceVersion is the collection version the list was read at.
	ResourceVersion string `json:"resourceVersion,omitempty"`
	// Continue is the opaque continuation cursor for the next page.
	Continue string `json:"continue,omitempty"`
}

// Object is implemented by every single-object API type. ExpectedTypeMeta
// returns the apiVersion/kind constants for the type; GetTypeMeta exposes
// the envelope as decoded from (or stamped onto) the wire.
type Object interface {
	GetTypeMeta() *TypeMeta
	ExpectedTypeMeta() TypeMeta
	GetObjectMeta() *ObjectMeta
}

// List is implemented by every list API type. ListItems returns the items
// in server order; GetListMeta exposes the continuation cursor.
type List interface {
	GetTypeMeta() *TypeMeta
	ExpectedTypeMeta() TypeMeta
	GetListMeta() *ListMeta
	ListItems() []Object
}
