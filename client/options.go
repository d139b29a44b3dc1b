package client

import (
	"fmt"

	"github.com/google/go-querystring/query"
)

// GetOptions modifies single-object read and write requests. Fields equal to
// their defaults are omitted from the encoded query string.
type GetOptions struct {
	// Pretty asks the server to pretty-print the response body.
	Pretty bool `url:"pretty,omitempty"`
}

// ListOptions modifies list and watch requests. Fields equal to their
// defaults are omitted from the encoded query string; a fully-default value
// produces no query string at all.
type ListOptions struct {
	// ResourceVersion is the collection version to read or watch from.
	ResourceVersion string `url:"resourceVersion,omitempty"`
	// TimeoutSeconds is forwarded to the server; the client enforces no
	// timeout of its own.
	TimeoutSeconds uint32 `url:"timeoutSeconds,omitempty"`
	// Watch requests a change stream instead of a list. Watch operations
	// force this to true regardless of the caller-supplied value.
	Watch bool `url:"watch,omitempty"`
	// Pretty asks the server to pretty-print each payload.
	Pretty bool `url:"pretty,omitempty"`
	// FieldSelector restricts the result by field values.
	FieldSelector string `url:"fieldSelector,omitempty"`
	// LabelSelector restricts the result by label values.
	LabelSelector string `url:"labelSelector,omitempty"`
	// IncludeUninitialized includes objects that have not finished
	// initialization.
	IncludeUninitialized bool `url:"includeUninitialized,omitempty"`
	// Limit caps the number of items in one page.
	Limit uint32 `url:"limit,omitempty"`
	// Continue is the opaque cursor from the previous page.
	Continue string `url:"continue,omitempty"`
}

// encodeQuery encodes an options value as a URL query string. Default-valued
// fields are dropped, so fully-default options encode to the empty string.
func encodeQuery(opts interface{}) (string, error) {
	values, err := query.Values(opts)
	if err != nil {
		return "", fmt.Errorf("unable to encode URL parameters: %w", err)
	}
	return values.Encode(), nil
}
